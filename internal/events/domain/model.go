package domain

import "time"

// Event is a proposed or scheduled campus activity owned by a club.
// Venue and Time are only set once the club picks a venue after
// department approval.
type Event struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	Description          string             `json:"description"`
	Date                 string             `json:"date"` // YYYY-MM-DD
	Time                 string             `json:"time,omitempty"`
	Venue                string             `json:"venue,omitempty"`
	ExpectedParticipants int                `json:"expected_participants"`
	GuestName            string             `json:"guest_name,omitempty"`
	Poster               string             `json:"poster,omitempty"`
	ProposalPDF          string             `json:"proposal_pdf,omitempty"`
	M2MPDF               string             `json:"m2m_pdf,omitempty"`
	ClubID               string             `json:"club_id"`
	ClubName             string             `json:"club_name"`
	Status               Status             `json:"status"`
	Feedback             string             `json:"feedback,omitempty"`
	Participants         []EventParticipant `json:"participants"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

// EventParticipant is one student's registration against one event.
type EventParticipant struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	StudentID     string    `json:"student_id"`
	StudentName   string    `json:"student_name"`
	StudentUID    string    `json:"student_uid"`
	StudentEmail  string    `json:"student_email"`
	StudentBranch string    `json:"student_branch,omitempty"`
	StudentSec    string    `json:"student_sec,omitempty"`
	RegisteredAt  time.Time `json:"registered_at"`
}

// HasParticipant reports whether the student is already registered.
func (e *Event) HasParticipant(studentID string) bool {
	for _, p := range e.Participants {
		if p.StudentID == studentID {
			return true
		}
	}
	return false
}

// CreateEventRequest carries the club-supplied fields of a new proposal.
// Status, participants and timestamps are assigned by the service.
type CreateEventRequest struct {
	Name                 string
	Description          string
	Date                 string
	ExpectedParticipants int
	GuestName            string
	Poster               string
	ProposalPDF          string
	M2MPDF               string
	ClubID               string
	ClubName             string
}

// RegisterRequest carries one student's registration details.
type RegisterRequest struct {
	StudentID     string
	StudentName   string
	StudentUID    string
	StudentEmail  string
	StudentBranch string
	StudentSec    string
}

// Decision is one append-only audit entry for a lifecycle action.
type Decision struct {
	ID        int64     `json:"id"`
	EventID   string    `json:"event_id"`
	Action    Action    `json:"action"`
	ActorID   string    `json:"actor_id"`
	Feedback  string    `json:"feedback,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
