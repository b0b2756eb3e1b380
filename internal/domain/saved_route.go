package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedRoute is a user's bookmark on a route. Membership is set-like: a
// given (UserID, RouteID) pair exists at most once.
type SavedRoute struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	RouteID   uuid.UUID `db:"route_id" json:"routeId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
