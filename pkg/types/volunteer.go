package types

import "time"

type Volunteer struct {
	ID                    int64     `db:"volunteer_id" json:"volunteerId"`
	UserID                int64     `db:"user_id" json:"userId"`
	HasVehicle            bool      `db:"has_vehicle" json:"hasVehicle"`
	VehicleType           string    `db:"vehicle_type" json:"vehicleType"`
	EmergencyContactName  string    `db:"emergency_contact_name" json:"emergencyContactName"`
	EmergencyContactPhone string    `db:"emergency_contact_phone" json:"emergencyContactPhone"`
	CreatedAt             time.Time `db:"created_at" json:"-"`
}

// VolunteerAvailability holds one row per day of the week the volunteer
// can take assignments.
type VolunteerAvailability struct {
	VolunteerID int64  `db:"volunteer_id"`
	DayOfWeek   string `db:"day_of_week"`
}

// VolunteerTask holds one row per task type the volunteer prefers.
type VolunteerTask struct {
	VolunteerID int64  `db:"volunteer_id"`
	TaskType    string `db:"task_type"`
}
