package http

type createEventRequest struct {
	Name                 string `json:"name" binding:"required"`
	Description          string `json:"description" binding:"required"`
	Date                 string `json:"date" binding:"required"`
	ExpectedParticipants int    `json:"expected_participants" binding:"required"`
	GuestName            string `json:"guest_name,omitempty"`
	Poster               string `json:"poster,omitempty"`
	ProposalPDF          string `json:"proposal_pdf,omitempty"`
	M2MPDF               string `json:"m2m_pdf,omitempty"`
}

type rejectRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

type selectVenueRequest struct {
	Venue string `json:"venue" binding:"required"`
	Time  string `json:"time" binding:"required"`
}

type registerMember struct {
	StudentUID    string `json:"student_uid,omitempty"`
	StudentEmail  string `json:"student_email,omitempty"`
	StudentName   string `json:"student_name,omitempty"`
	StudentBranch string `json:"student_branch,omitempty"`
	StudentSec    string `json:"student_sec,omitempty"`
}

type registerTeamRequest struct {
	Members []registerMember `json:"members" binding:"required"`
}
