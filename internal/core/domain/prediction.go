package domain

// SalaryEstimate is the outcome of one form submission.
type SalaryEstimate struct {
	Query    EmployeeQuery `json:"query"`
	Features FeatureVector `json:"features"`
	Raw      float64       `json:"raw"`
	Amount   int64         `json:"amount"`
}

// ModelInfo describes the loaded model for the page caption and health probe.
type ModelInfo struct {
	Description string   `json:"description"`
	Features    int      `json:"features"`
	Columns     []string `json:"columns,omitempty"`
}
