package domain

import (
	"errors"
	"time"
)

// ClubMember is a leadership or core-team entry owned by a club. Core
// team membership is append-only; insertion order is display order.
type ClubMember struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Designation      string `json:"designation"`
	Photo            string `json:"photo,omitempty"`
	IsPresident      bool   `json:"is_president,omitempty"`
	IsFacultyAdvisor bool   `json:"is_faculty_advisor,omitempty"`
}

// Club is a student organization with a leadership record and roster.
type Club struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Logo           string       `json:"logo,omitempty"`
	FacultyAdvisor ClubMember   `json:"faculty_advisor"`
	President      ClubMember   `json:"president"`
	CoreTeam       []ClubMember `json:"core_team"`
	EventsCount    int          `json:"events_count"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// CreateClubRequest carries the fields of a new club record.
type CreateClubRequest struct {
	ID             string // pre-assigned at signup for club-role users
	Name           string
	Description    string
	Logo           string
	FacultyAdvisor ClubMember
	President      ClubMember
}

// UpdateClubRequest carries optional profile updates.
type UpdateClubRequest struct {
	Name        *string
	Description *string
	Logo        *string
}

var (
	ErrClubNotFound = errors.New("club not found")
	ErrInvalidClub  = errors.New("invalid club payload")
)
