package domain

import "fmt"

// Detail levels for the documentation_query prompt.
const (
	DetailBrief         = "brief"
	DetailMedium        = "medium"
	DetailComprehensive = "comprehensive"
)

// QueryPrompt maps a topic and detail level onto one of three literal
// prompt templates. Unrecognised detail levels fall back to medium.
func QueryPrompt(topic, detailLevel string) string {
	switch detailLevel {
	case DetailBrief:
		return fmt.Sprintf("Provide a brief summary of %s from the documentation.", topic)
	case DetailComprehensive:
		return fmt.Sprintf("Provide a comprehensive explanation of %s including all details, examples, and related concepts from the documentation.", topic)
	default:
		return fmt.Sprintf("Explain %s with examples and key points from the documentation.", topic)
	}
}
