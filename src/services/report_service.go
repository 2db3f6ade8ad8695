package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/username/propfolio/src/cache"
	"github.com/username/propfolio/src/logger"
	"github.com/username/propfolio/src/metrics"
	"github.com/username/propfolio/src/models"
	"github.com/username/propfolio/src/processors"
	"github.com/username/propfolio/src/utils"
)

// reportServiceImpl implements ReportService around the pure cashflow
// processor: cache lookup, computation, archive, optional delivery.
type reportServiceImpl struct {
	processor    processors.CashflowProcessor
	reportCache  cache.ReportCache
	store        ReportStore
	emailService EmailService
}

func NewReportService(
	processor processors.CashflowProcessor,
	reportCache cache.ReportCache,
	store ReportStore,
	emailService EmailService,
) ReportService {
	return &reportServiceImpl{
		processor:    processor,
		reportCache:  reportCache,
		store:        store,
		emailService: emailService,
	}
}

// cacheEnvelope is the normalized request identity hashed into the cache and
// archive key. AsOf is part of the identity: two requests for different days
// are different reports.
type cacheEnvelope struct {
	Input        models.CashflowInput `json:"input"`
	Jurisdiction string               `json:"jurisdiction"`
	LoanType     models.LoanType      `json:"loanType"`
	AsOf         string               `json:"asOf"`
}

func (s *reportServiceImpl) GenerateReport(req ReportRequest) (*models.CashflowResult, error) {
	start := time.Now()
	loanType := req.LoanType.Normalize()

	asOf := time.Now().UTC()
	if req.AsOf != "" {
		if parsed, err := utils.ParseReportDate(req.AsOf); err == nil {
			asOf = parsed
		} else {
			logger.L.Warn("Ignoring malformed asOf date", "asOf", req.AsOf, "error", err)
		}
	}
	asOfStr := utils.FormatReportDate(asOf)

	hash, err := utils.HashRequest(cacheEnvelope{
		Input:        req.CashflowInput,
		Jurisdiction: req.Jurisdiction,
		LoanType:     loanType,
		AsOf:         asOfStr,
	})
	if err != nil {
		// Hashing only gates the cache; generation continues without it.
		logger.L.Warn("Failed to hash report request, bypassing cache", "error", err)
	}

	if hash != "" {
		if cached, found := s.reportCache.Get(hash); found {
			var result models.CashflowResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				metrics.CacheLookups.WithLabelValues("hit").Inc()
				metrics.ReportRequests.WithLabelValues(result.Jurisdiction, string(loanType), "cached").Inc()
				logger.L.Debug("Report served from cache", "hash", hash)
				return &result, nil
			}
			logger.L.Warn("Discarding undecodable cache entry", "hash", hash, "error", err)
		}
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	result := s.processor.Calculate(req.CashflowInput, req.Jurisdiction, loanType, asOf)

	resultJSON, err := json.Marshal(result)
	if err != nil {
		// The result is plain data; this should never fire.
		return nil, fmt.Errorf("error marshaling report result: %w", err)
	}

	if hash != "" {
		if err := s.reportCache.Set(hash, string(resultJSON)); err != nil {
			logger.L.Warn("Failed to cache report", "hash", hash, "error", err)
		}
	}

	// Archive failures are logged, not surfaced: the report itself is
	// complete and the caller has no retry path for this step.
	requestJSON, err := json.Marshal(req)
	if err != nil {
		requestJSON = []byte("{}")
	}
	if _, err := s.store.Insert(models.Report{
		Hash:         hash,
		Jurisdiction: result.Jurisdiction,
		LoanType:     string(loanType),
		RequestJSON:  string(requestJSON),
		ResultJSON:   string(resultJSON),
	}); err != nil {
		logger.L.Error("Failed to archive report", "hash", hash, "error", err)
	}

	if req.DeliverTo != "" {
		subject := fmt.Sprintf("Cashflow report: %s purchase at %s", result.Jurisdiction, result.PurchasePrice.Display)
		if err := s.emailService.SendReportSummary(req.DeliverTo, subject, summaryBody(&result)); err != nil {
			logger.L.Error("Failed to deliver report summary", "to", req.DeliverTo, "error", err)
		}
	}

	metrics.ReportRequests.WithLabelValues(result.Jurisdiction, string(loanType), "generated").Inc()
	metrics.ReportDuration.Observe(time.Since(start).Seconds())
	logger.L.Info("Report generated", "jurisdiction", result.Jurisdiction, "loanType", loanType, "duration", time.Since(start))
	return &result, nil
}

func (s *reportServiceImpl) ListReports(limit int) ([]models.ReportSummary, error) {
	return s.store.List(limit)
}

func (s *reportServiceImpl) GetReport(id int64) (*models.Report, error) {
	return s.store.GetByID(id)
}

// summaryBody renders the plain-text summary used for email delivery.
func summaryBody(r *models.CashflowResult) string {
	return fmt.Sprintf(`Cashflow projection as of %s

Purchase price:       %s
Deposit:              %s (%s)
Loan:                 %s (LVR %s)
Stamp duty:           %s
Mortgage fee:         %s
LMI:                  %s
Total funds required: %s

Rent (lower tier):    %s/wk, gross yield %s
Rent (higher tier):   %s/wk, gross yield %s
%s:                   %s/yr
Pre-tax cashflow:     %s/yr (lower tier)
Post-tax cashflow:    %s/yr (lower tier, tax bracket %s)
`,
		r.AsOf,
		r.PurchasePrice.Display,
		r.Deposit.Display, r.DepositPercentDisplay,
		r.LoanAmount.Display, r.LVRDisplay,
		r.StampDuty.Display,
		r.MortgageFee.Display,
		r.LMI.Display,
		r.TotalFundsRequired.Display,
		r.RentLower.WeeklyDisplay, r.YieldLowerDisplay,
		r.RentHigher.WeeklyDisplay, r.YieldHigherDisplay,
		r.ExpenseLabel, r.TotalExpenses.AnnualDisplay,
		r.PreTaxCashflowLower.AnnualDisplay,
		r.PostTaxCashflowLower.AnnualDisplay, r.TaxBracketDisplay,
	)
}
