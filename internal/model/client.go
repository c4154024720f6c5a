package model

import "time"

// Client represents one dashboard user. Every position, snapshot and rate set
// in the system is scoped to a client; the owning client of a record never
// changes after creation.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birthDate"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
