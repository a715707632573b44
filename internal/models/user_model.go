package models

import "time"

type User struct {
	ID             int64     `db:"id" json:"id"`
	GoogleID       string    `db:"google_id" json:"google_id"`
	Email          string    `db:"email" json:"email"`
	Name           string    `db:"name" json:"name"`
	Username       string    `db:"username" json:"username"`
	ProfilePicture string    `db:"profile_picture" json:"profile_picture"`
	Plan           string    `db:"plan" json:"plan"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

const (
	PlanFree    = "free"
	PlanCreator = "creator"
	PlanAgency  = "agency"
)
