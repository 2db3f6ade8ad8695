package services

import (
	"errors"

	"github.com/username/propfolio/src/models"
)

var (
	ErrReportNotFound = errors.New("report not found")
	ErrArchiveFailed  = errors.New("report archive failed")
)

// ReportRequest is the service-level envelope around the engine input: the
// sparse cashflow fields plus jurisdiction, loan type, an optional fixed
// as-of date (for reproducible output) and an optional delivery address.
type ReportRequest struct {
	models.CashflowInput

	Jurisdiction string          `json:"jurisdiction"`
	LoanType     models.LoanType `json:"loanType,omitempty"`
	AsOf         string          `json:"asOf,omitempty"`      // YYYY-MM-DD; defaults to today
	DeliverTo    string          `json:"deliverTo,omitempty"` // optional email delivery
}

// ReportService generates, caches and archives cashflow reports.
type ReportService interface {
	GenerateReport(req ReportRequest) (*models.CashflowResult, error)
	ListReports(limit int) ([]models.ReportSummary, error)
	GetReport(id int64) (*models.Report, error)
}

// ReportStore is the archive persistence boundary.
type ReportStore interface {
	Insert(report models.Report) (int64, error)
	List(limit int) ([]models.ReportSummary, error)
	GetByID(id int64) (*models.Report, error)
}

// EmailService delivers a rendered report summary to a recipient.
type EmailService interface {
	SendReportSummary(toEmail, subject, body string) error
}
