// Where: internal/generator/outcome.go
// What: Per-request generation outcome classification.
// Why: The run loop only needs success/failure plus a reason for reporting.
package generator

// FailureReason classifies why a request failed.
type FailureReason string

const (
	ReasonToolMissing FailureReason = "tool-missing"
	ReasonNonZeroExit FailureReason = "non-zero-exit"
	ReasonTimeout     FailureReason = "timeout"
	ReasonFilesystem  FailureReason = "filesystem"
)

// Outcome is the result of processing one request. On success ModelPath
// points at the written STL; on failure Reason says why and Detail carries
// the captured tool output or error text for the console.
type Outcome struct {
	Success   bool
	Reason    FailureReason
	Detail    string
	ModelPath string
}

func success(modelPath string) Outcome {
	return Outcome{Success: true, ModelPath: modelPath}
}

func failure(reason FailureReason, detail string) Outcome {
	return Outcome{Reason: reason, Detail: detail}
}
