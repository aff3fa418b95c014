package types

// WorkerResult is one invoked worker's contribution to the final answer:
// a human-readable content block plus the raw structured payload it was
// rendered from. Results are appended in invocation order.
type WorkerResult struct {
	Worker  string `json:"worker"`
	Content string `json:"content"`
	Raw     any    `json:"raw,omitempty"`
}

// ToolTrace is one append-only trace entry recording an actor invocation.
// Input and Output are bounded human-readable summaries, not full payloads.
type ToolTrace struct {
	Actor  string `json:"actor"`
	Input  string `json:"input,omitempty"`
	Output string `json:"output"`
}

// GovernanceVerdict carries the advisory outcomes of the bias and risk
// checks, plus the role the request was evaluated under. "OK" marks a clean
// pass; anything else is a warning carried alongside the answer.
type GovernanceVerdict struct {
	Bias string `json:"bias"`
	Risk string `json:"risk"`
	Role Role   `json:"role"`
}

// SupervisorResponse is the complete answer for one request: redacted text,
// the governance verdict, and the full ordered trace of every decision made.
type SupervisorResponse struct {
	Answer     string            `json:"answer"`
	Governance GovernanceVerdict `json:"governance"`
	ToolTraces []ToolTrace       `json:"tool_traces"`
}
