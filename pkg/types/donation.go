package types

import "time"

type DonationStatus string

const (
	DonationStatusAvailable DonationStatus = "available"
	DonationStatusClaimed   DonationStatus = "claimed"
	DonationStatusCollected DonationStatus = "collected"
	DonationStatusExpired   DonationStatus = "expired"
)

type FoodDonation struct {
	ID              int64          `db:"donation_id" json:"donationId"`
	DonorID         int64          `db:"donor_id" json:"donorId"`
	FoodCategory    string         `db:"food_category" json:"foodCategory"`
	FoodType        string         `db:"food_type" json:"foodType"`
	Quantity        string         `db:"quantity" json:"quantity"`
	Description     string         `db:"description" json:"description"`
	PickupAddressID int64          `db:"pickup_address_id" json:"pickupAddressId"`
	AvailableFrom   time.Time      `db:"available_from" json:"availableFrom"`
	AvailableTo     time.Time      `db:"available_to" json:"availableTo"`
	Status          DonationStatus `db:"status" json:"status"`
	CreatedAt       time.Time      `db:"created_at" json:"createdAt"`
}

// DonationListing is a donation joined with its pickup address and the
// donor's contact details, as served by the listing endpoint.
type DonationListing struct {
	FoodDonation

	StreetAddress string  `db:"street_address" json:"street"`
	City          string  `db:"city" json:"city"`
	State         string  `db:"state" json:"state"`
	ZipCode       string  `db:"zip_code" json:"zipCode"`
	Latitude      float64 `db:"latitude" json:"latitude"`
	Longitude     float64 `db:"longitude" json:"longitude"`

	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
	Phone     string `db:"phone" json:"phone"`
}
