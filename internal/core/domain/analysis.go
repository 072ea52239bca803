package domain

// Recognised analysis task identifiers. The set is closed: anything
// else is rejected with an UnknownTaskError enumerating these values.
const (
	TaskFindGaps              = "find_gaps"
	TaskGenerateOutline       = "generate_outline"
	TaskCheckConsistency      = "check_consistency"
	TaskExtractExamples       = "extract_examples"
	TaskIdentifyPrerequisites = "identify_prerequisites"
	TaskSuggestImprovements   = "suggest_improvements"
)

// OutputFormatSummary is the default analysis output format.
const OutputFormatSummary = "summary"

// AnalysisTasks returns the closed set of valid task identifiers.
func AnalysisTasks() []string {
	return []string{
		TaskFindGaps,
		TaskGenerateOutline,
		TaskCheckConsistency,
		TaskExtractExamples,
		TaskIdentifyPrerequisites,
		TaskSuggestImprovements,
	}
}

// ValidAnalysisTask reports whether task is in the recognised set.
func ValidAnalysisTask(task string) bool {
	for _, t := range AnalysisTasks() {
		if t == task {
			return true
		}
	}
	return false
}

// SuggestedModel recommends which external model a specialised agent
// should use for the given task.
func SuggestedModel(task string) string {
	if task == TaskFindGaps || task == TaskCheckConsistency {
		return "gpt-4"
	}
	return "claude-3-5-sonnet"
}

// AnalysisReport is a structured hand-off placeholder. No analysis is
// performed locally; the report states which documents a specialised
// agent should process and how.
type AnalysisReport struct {
	// Task is the validated task identifier.
	Task string

	// DocumentsAnalyzed is the number of documents in scope.
	DocumentsAnalyzed int

	// OutputFormat is the requested output format, passed through.
	OutputFormat string

	// Summary is a one-line readiness statement.
	Summary string

	// Documents lists the paths in scope for the task.
	Documents []string

	// NextSteps describes how the hand-off proceeds.
	NextSteps []string

	// HandoffReady is always true for a validated task.
	HandoffReady bool

	// SuggestedModel recommends a model for the receiving agent.
	SuggestedModel string
}
