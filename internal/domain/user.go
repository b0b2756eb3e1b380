package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	ProfileImage *string   `db:"profile_image" json:"profileImage,omitempty"`
	Location     *string   `db:"location" json:"location,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

type NewUser struct {
	Username     string
	Email        string
	Name         string
	ProfileImage *string
	Location     *string
}
