package service

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-learnly/models"
)

// maxPromptDocumentRunes bounds how much extracted text is embedded in the
// summary prompt.
const maxPromptDocumentRunes = 4000

const fallbackSummaryTitle = "PDF Document"

const summaryPromptTemplate = `Analyze the following document text and produce a structured summary.
Respond with a single JSON object and nothing else, using exactly these keys:
{
  "title": "a short title for the document",
  "summary": "a concise summary of the document",
  "key_points": ["key point", "..."],
  "main_topics": ["topic", "..."],
  "conclusion": "the main conclusion or takeaway"
}

Document text:
`

// buildSummaryPrompt embeds at most maxPromptDocumentRunes runes of text.
func buildSummaryPrompt(text string) string {
	return summaryPromptTemplate + truncateRunes(text, maxPromptDocumentRunes)
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}

	return s
}

// decodeSummary parses the model reply into a summary. Replies wrapped in
// markdown fences or surrounded by prose are accepted as long as they hold
// one JSON object. Anything else yields the fallback summary with the raw
// reply as its text and parsed set to false.
func decodeSummary(reply string) (summary models.DocumentSummary, parsed bool) {
	candidate := extractJSONObject(reply)
	if candidate != "" && json.Unmarshal([]byte(candidate), &summary) == nil {
		return normalizeSummary(summary), true
	}

	return normalizeSummary(models.DocumentSummary{
		Title:   fallbackSummaryTitle,
		Summary: reply,
	}), false
}

// extractJSONObject strips ``` fences and returns the text between the first
// '{' and the last '}', or "" if there is none.
func extractJSONObject(reply string) string {
	s := strings.TrimSpace(reply)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```JSON")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return ""
	}

	return s[start : end+1]
}

// normalizeSummary makes list fields encode as [] rather than null.
func normalizeSummary(s models.DocumentSummary) models.DocumentSummary {
	if s.KeyPoints == nil {
		s.KeyPoints = []string{}
	}
	if s.MainTopics == nil {
		s.MainTopics = []string{}
	}

	return s
}
