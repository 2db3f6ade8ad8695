package models

// Report is one archived cashflow report row. Request and result are stored
// as JSON so the archive survives schema changes in the engine output.
type Report struct {
	ID           int64  `json:"id"`
	Hash         string `json:"hash"`
	Jurisdiction string `json:"jurisdiction"`
	LoanType     string `json:"loanType"`
	RequestJSON  string `json:"requestJson,omitempty"`
	ResultJSON   string `json:"resultJson,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// ReportSummary is the listing view of the archive.
type ReportSummary struct {
	ID           int64  `json:"id"`
	Hash         string `json:"hash"`
	Jurisdiction string `json:"jurisdiction"`
	LoanType     string `json:"loanType"`
	CreatedAt    string `json:"createdAt"`
}
