package dto

// PlanRequest represents the meeting-planning form input. All five fields
// are embedded verbatim into the planning prompt.
type PlanRequest struct {
	CompanyName string `json:"company_name" validate:"required,min=1,max=255"`
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Objective   string `json:"objective" validate:"required,min=1"`
	Duration    int    `json:"duration" validate:"required,gt=0"`
	Attendees   string `json:"attendees" validate:"required,min=1"`
}

// PlanResponse represents the /plan success payload
type PlanResponse struct {
	Status string `json:"status"`
	Plan   string `json:"plan"`
}

// PlanErrorResponse represents the /plan failure payload. Plan is always
// present (empty) so the UI can render without nil checks.
type PlanErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Plan    string `json:"plan"`
}
