package types

import "time"

type UserRole string

const (
	UserRoleDonor     UserRole = "donor"
	UserRoleReceiver  UserRole = "receiver"
	UserRoleVolunteer UserRole = "volunteer"
)

type User struct {
	ID           int64     `db:"user_id" json:"id"`
	FirstName    string    `db:"first_name" json:"firstName"`
	LastName     string    `db:"last_name" json:"lastName"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         UserRole  `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
}
