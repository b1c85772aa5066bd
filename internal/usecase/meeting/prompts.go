package meeting

import (
	"encoding/json"
	"fmt"

	"github.com/smartmeethq/meeting-assistant-api/internal/adapter/dto"
)

const planPromptTemplate = `You are an expert meeting planner.

Create a structured meeting plan including:
- A time-boxed agenda for the full duration
- Recommended technical approach and tech stack
- Key discussion points
- Expected tasks with suggested owners
- Expected outcomes

Company: %s
Title: %s
Objective: %s
Duration: %d minutes
Attendees: %s
`

const summaryPromptTemplate = `Return ONLY a valid JSON object, no markdown, no commentary, with exactly these keys:
- "summary": string, a concise summary of the meeting
- "action_points": array of strings
- "tasks": array of objects with keys "assignee", "task", "deadline"
- "deadlines": array of strings
- "followup_email": string, a professional follow-up email covering the summary and tasks
- "whatsapp": string, a short WhatsApp-style recap

Transcript:
%s
`

const emailPromptTemplate = `Write a professional follow-up email.

Summary:
%s

Tasks:
%s
`

const whatsappPromptTemplate = `Create a short WhatsApp-style recap.

Summary:
%s
`

// buildPlanPrompt embeds all five request fields verbatim. The prompt is
// deterministic for a given request.
func buildPlanPrompt(req dto.PlanRequest) string {
	return fmt.Sprintf(planPromptTemplate,
		req.CompanyName,
		req.Title,
		req.Objective,
		req.Duration,
		req.Attendees,
	)
}

func buildSummaryPrompt(transcript string) string {
	return fmt.Sprintf(summaryPromptTemplate, transcript)
}

func buildEmailPrompt(summary string, tasks []dto.TaskItem) string {
	tasksJSON, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		tasksJSON = []byte("[]")
	}
	return fmt.Sprintf(emailPromptTemplate, summary, string(tasksJSON))
}

func buildWhatsappPrompt(summary string) string {
	return fmt.Sprintf(whatsappPromptTemplate, summary)
}
