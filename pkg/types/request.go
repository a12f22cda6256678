package types

import "time"

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusMatched   RequestStatus = "matched"
	RequestStatusFulfilled RequestStatus = "fulfilled"
	RequestStatusCancelled RequestStatus = "cancelled"
)

type FoodRequest struct {
	ID                int64         `db:"request_id" json:"requestId"`
	ReceiverID        int64         `db:"receiver_id" json:"receiverId"`
	FoodCategory      string        `db:"food_category" json:"foodCategory"`
	FoodType          string        `db:"food_type" json:"foodType"`
	Quantity          string        `db:"quantity" json:"quantity"`
	Description       string        `db:"description" json:"description"`
	DeliveryAddressID int64         `db:"delivery_address_id" json:"deliveryAddressId"`
	NeededBy          time.Time     `db:"needed_by" json:"neededBy"`
	Status            RequestStatus `db:"status" json:"status"`
	CreatedAt         time.Time     `db:"created_at" json:"createdAt"`
}

// RequestListing is a request joined with its delivery address and the
// receiver's contact details.
type RequestListing struct {
	FoodRequest

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
