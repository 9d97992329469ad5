// pkg/api/formulas_v1.go
package api

// FormulaV1 is the stable JSON schema for one catalog entry ("formulas -o json").
type FormulaV1 struct {
	Name    string    `json:"name"`
	Symbol  string    `json:"symbol"`
	Unit    string    `json:"unit,omitempty"`
	Aliases []string  `json:"aliases,omitempty"`
	Params  []ParamV1 `json:"params"`
}

// ParamV1 describes one formula input.
type ParamV1 struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Unit     string `json:"unit,omitempty"`
	Optional bool   `json:"optional,omitempty"`
}
