// pkg/api/results_v1.go
package api

// ResultV1 is the stable JSON/JSONL schema for one formula evaluation.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	Case    string             `json:"case"`
	Formula string             `json:"formula"`
	Args    map[string]float64 `json:"args"`
	Status  string             `json:"status"` // "ok" | "error" | "pass" | "fail"
	Value   *float64           `json:"value,omitempty"`
	Unit    string             `json:"unit,omitempty"`
	Error   *ErrorV1           `json:"error,omitempty"`
	Expect  *ExpectV1          `json:"expect,omitempty"`
	Source  string             `json:"source,omitempty"`
}

// ErrorV1 describes a failed evaluation.
type ErrorV1 struct {
	Kind    string `json:"kind"` // "parameter" | "domain" | "input"
	Message string `json:"message"`
}

// ExpectV1 echoes a case-file expectation next to the result it was checked against.
type ExpectV1 struct {
	Value     *float64 `json:"value,omitempty"`
	Tolerance float64  `json:"tolerance,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// ReportV1 wraps all results of one run (json output).
type ReportV1 struct {
	RunID   string     `json:"run_id"`
	Passed  int        `json:"passed"`
	Failed  int        `json:"failed"`
	Results []ResultV1 `json:"results"`
}
