package meeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartmeethq/meeting-assistant-api/internal/adapter/dto"
)

func TestExtractSummary_CleanJSON(t *testing.T) {
	raw := `{"summary":"Discussed roadmap","action_points":["ship v1"],"tasks":[{"assignee":"Ann","task":"Write spec","deadline":"Fri"}],"deadlines":["Friday"]}`

	result := ExtractSummary(raw)

	assert.Equal(t, "Discussed roadmap", result.Summary)
	assert.Equal(t, []string{"ship v1"}, result.ActionPoints)
	require.Len(t, result.Tasks, 1)
	assert.Equal(t, dto.TaskItem{Assignee: "Ann", Task: "Write spec", Deadline: "Fri"}, result.Tasks[0])
	assert.Equal(t, []string{"Friday"}, result.Deadlines)
}

func TestExtractSummary_JSONWrappedInProse(t *testing.T) {
	raw := "Here you go:\n{\"summary\":\"Discussed X\",\"tasks\":[{\"assignee\":\"Ann\",\"task\":\"Write spec\",\"deadline\":\"Fri\"}]}\nThanks!"

	result := ExtractSummary(raw)

	assert.Equal(t, "Discussed X", result.Summary)
	require.Len(t, result.Tasks, 1)
	assert.Equal(t, "Ann", result.Tasks[0].Assignee)
	assert.Equal(t, "Write spec", result.Tasks[0].Task)
	assert.Equal(t, "Fri", result.Tasks[0].Deadline)
	assert.Equal(t, []string{}, result.ActionPoints)
	assert.Equal(t, []string{}, result.Deadlines)
}

func TestExtractSummary_MarkdownFences(t *testing.T) {
	raw := "```json\n{\"summary\":\"Weekly sync\",\"action_points\":[\"review PRs\"]}\n```"

	result := ExtractSummary(raw)

	assert.Equal(t, "Weekly sync", result.Summary)
	assert.Equal(t, []string{"review PRs"}, result.ActionPoints)
}

func TestExtractSummary_MissingKeysDefaultEmpty(t *testing.T) {
	result := ExtractSummary(`{"summary":"Short call"}`)

	assert.Equal(t, "Short call", result.Summary)
	assert.NotNil(t, result.ActionPoints)
	assert.NotNil(t, result.Tasks)
	assert.NotNil(t, result.Deadlines)
	assert.Empty(t, result.ActionPoints)
	assert.Empty(t, result.Tasks)
	assert.Empty(t, result.Deadlines)
	assert.Empty(t, result.FollowupEmail)
	assert.Empty(t, result.Whatsapp)
}

func TestExtractSummary_NoBracesDegrades(t *testing.T) {
	raw := "  The meeting went well, everyone agreed on the plan.  "

	result := ExtractSummary(raw)

	assert.Equal(t, "The meeting went well, everyone agreed on the plan.", result.Summary)
	assert.Empty(t, result.ActionPoints)
	assert.Empty(t, result.Tasks)
	assert.Empty(t, result.Deadlines)
}

func TestExtractSummary_MalformedJSONDegrades(t *testing.T) {
	raw := "Result: {summary: not quoted, so not JSON}"

	result := ExtractSummary(raw)

	assert.Equal(t, "Result: {summary: not quoted, so not JSON}", result.Summary)
	assert.Empty(t, result.Tasks)
}

func TestExtractSummary_IdempotentOnMalformedInput(t *testing.T) {
	raw := "no json here at all"

	first := ExtractSummary(raw)
	second := ExtractSummary(raw)

	assert.Equal(t, first, second)
	assert.Equal(t, "no json here at all", second.Summary)
}

func TestExtractSummary_BracesOutOfOrderDegrades(t *testing.T) {
	raw := "} backwards {"

	result := ExtractSummary(raw)

	assert.Equal(t, "} backwards {", result.Summary)
}
