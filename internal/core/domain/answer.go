package domain

// Confidence markers attached to ask results.
const (
	ConfidenceHigh = "high"
	ConfidenceLow  = "low"
)

// NoRelevantDocsAnswer is returned when no document contributed any
// context for a question. It is a result, not an error.
const NoRelevantDocsAnswer = "I couldn't find relevant documentation to answer your question."

// DisplayContextLimit caps how much raw context is echoed back in
// fallback responses that carry the context instead of an answer.
const DisplayContextLimit = 500

// Answer is the result of an ask operation. Depending on whether an
// external model was available and whether the call succeeded, either
// Answer or Context carries the payload; Sources is always populated
// when any document contributed.
type Answer struct {
	// Question is the question that was asked.
	Question string

	// Answer is the generated answer text, when delegation succeeded
	// or when no documentation was found (the canned response).
	Answer string

	// Context is the raw assembled context, display-truncated, carried
	// on the fallback paths where no answer was generated.
	Context string

	// Sources lists the contributing document paths.
	Sources []string

	// ContextLength is the total assembled context length in characters.
	ContextLength int

	// Model names the external model that produced Answer, when one did.
	Model string

	// Confidence is "high" for generated answers, "low" otherwise.
	Confidence string

	// Note explains context-only responses when no credential is
	// configured and generation is left to the hosting platform.
	Note string

	// Err carries the delegation error detail on the fallback path.
	Err string
}
