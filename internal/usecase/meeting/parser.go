package meeting

import (
	"encoding/json"
	"strings"

	"github.com/smartmeethq/meeting-assistant-api/internal/adapter/dto"
)

// ExtractSummary performs best-effort extraction of a structured summary
// from a free-text model reply.
//
// Contract: the reply may wrap the JSON object in prose, markdown fences, or
// surrounding commentary. Extraction takes the substring between the first
// '{' and the last '}' and parses it. On success, declared-but-absent keys
// default to empty string/sequence. On any failure (no braces, malformed
// JSON) the result degrades to {summary: <trimmed original reply>} with all
// other fields empty. This function never fails; repeated calls on the same
// input produce the same output.
func ExtractSummary(raw string) dto.SummaryResult {
	candidate := stripFences(raw)

	start := strings.Index(candidate, "{")
	end := strings.LastIndex(candidate, "}")
	if start == -1 || end == -1 || end < start {
		return degradedResult(raw)
	}

	var result dto.SummaryResult
	if err := json.Unmarshal([]byte(candidate[start:end+1]), &result); err != nil {
		return degradedResult(raw)
	}

	result.Normalize()
	return result
}

// degradedResult carries the raw reply in the summary field so the caller
// always gets usable text back
func degradedResult(raw string) dto.SummaryResult {
	result := dto.NewSummaryResult()
	result.Summary = strings.TrimSpace(raw)
	return result
}

// stripFences removes a surrounding markdown code block, if present
func stripFences(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
