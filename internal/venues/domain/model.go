package domain

import "errors"

// Venue is a fixed-capacity physical location. Events can only be
// scheduled into a venue after department approval.
type Venue struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	Available bool   `json:"available"`
}

var ErrVenueNotFound = errors.New("venue not found")
