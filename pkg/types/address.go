package types

import "time"

// Address is created alongside a donation or request, one row per
// submission. Rows are never shared between entities.
type Address struct {
	ID            int64     `db:"address_id" json:"addressId"`
	UserID        int64     `db:"user_id" json:"-"`
	StreetAddress string    `db:"street_address" json:"street"`
	City          string    `db:"city" json:"city"`
	State         string    `db:"state" json:"state"`
	ZipCode       string    `db:"zip_code" json:"zipCode"`
	Latitude      float64   `db:"latitude" json:"latitude"`
	Longitude     float64   `db:"longitude" json:"longitude"`
	CreatedAt     time.Time `db:"created_at" json:"-"`
}
