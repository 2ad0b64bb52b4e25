package constants

// DocStatus is the canonical processing status for rows in documents.
type DocStatus string

// Stable values (store these exact strings in DB).
const (
	DocStatusQueued     DocStatus = "QUEUED"      // queued for processing
	DocStatusRunning    DocStatus = "RUNNING"     // in progress
	DocStatusExtractOK  DocStatus = "EXTRACT_OK"  // stage 1 completed (text extracted)
	DocStatusGenerateOK DocStatus = "GENERATE_OK" // stage 2 completed (study set generated)
	DocStatusFailed     DocStatus = "FAILED"      // terminal failure
)

// ExtractionMethod identifies which backend produced the accepted text.
type ExtractionMethod string

const (
	MethodPrimary       ExtractionMethod = "primary"
	MethodFallback      ExtractionMethod = "fallback"
	MethodTableFallback ExtractionMethod = "table-fallback"
)

// DocStatusValues lists every stable status string, for schema validation.
var DocStatusValues = []string{
	string(DocStatusQueued),
	string(DocStatusRunning),
	string(DocStatusExtractOK),
	string(DocStatusGenerateOK),
	string(DocStatusFailed),
}

// ExtractionMethodValues lists the accepted extraction method strings.
var ExtractionMethodValues = []string{
	string(MethodPrimary),
	string(MethodFallback),
	string(MethodTableFallback),
}

// ChatRole is the author of one conversation turn.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatRoleValues lists the accepted chat role strings.
var ChatRoleValues = []string{
	string(ChatRoleUser),
	string(ChatRoleAssistant),
}

// GenerationTask names the three study-set generation tasks.
type GenerationTask string

const (
	TaskSummary    GenerationTask = "summary"
	TaskFlashcards GenerationTask = "flashcards"
	TaskQuiz       GenerationTask = "quiz"
)
