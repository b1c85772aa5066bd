package dto

// TaskItem represents a single assigned task extracted from the meeting.
// Every field is optional in the model's reply and defaults to empty.
type TaskItem struct {
	Assignee string `json:"assignee"`
	Task     string `json:"task"`
	Deadline string `json:"deadline"`
}

// SummaryResult is the structured summary produced from a transcript.
// Invariant: Summary is always populated, even when the model's reply could
// not be parsed as JSON; the remaining fields then default to empty.
type SummaryResult struct {
	Summary       string     `json:"summary"`
	ActionPoints  []string   `json:"action_points"`
	Tasks         []TaskItem `json:"tasks"`
	Deadlines     []string   `json:"deadlines"`
	FollowupEmail string     `json:"followup_email"`
	Whatsapp      string     `json:"whatsapp"`
}

// NewSummaryResult returns a SummaryResult with all sequence fields
// initialized empty so they marshal as [] rather than null
func NewSummaryResult() SummaryResult {
	return SummaryResult{
		ActionPoints: []string{},
		Tasks:        []TaskItem{},
		Deadlines:    []string{},
	}
}

// Normalize fills nil sequences with empty defaults in place
func (r *SummaryResult) Normalize() {
	if r.ActionPoints == nil {
		r.ActionPoints = []string{}
	}
	if r.Tasks == nil {
		r.Tasks = []TaskItem{}
	}
	if r.Deadlines == nil {
		r.Deadlines = []string{}
	}
}

// SummarizeResponse represents the /summarize success payload
type SummarizeResponse struct {
	SummaryResult
	Transcript string `json:"transcript,omitempty"`
}
