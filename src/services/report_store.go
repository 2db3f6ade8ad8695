package services

import (
	"database/sql"
	"fmt"

	"github.com/username/propfolio/src/database"
	"github.com/username/propfolio/src/models"
)

// sqliteReportStore implements ReportStore on the shared sqlite handle.
type sqliteReportStore struct{}

func NewReportStore() ReportStore {
	return &sqliteReportStore{}
}

func (s *sqliteReportStore) Insert(report models.Report) (int64, error) {
	res, err := database.DB.Exec(
		`INSERT INTO reports (hash, jurisdiction, loan_type, request_json, result_json) VALUES (?, ?, ?, ?, ?)`,
		report.Hash, report.Jurisdiction, report.LoanType, report.RequestJSON, report.ResultJSON,
	)
	if err != nil {
		return 0, fmt.Errorf("error inserting report: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading inserted report id: %w", err)
	}
	return id, nil
}

func (s *sqliteReportStore) List(limit int) ([]models.ReportSummary, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := database.DB.Query(
		`SELECT id, hash, jurisdiction, loan_type, created_at FROM reports ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying reports: %w", err)
	}
	defer rows.Close()

	summaries := []models.ReportSummary{}
	for rows.Next() {
		var s models.ReportSummary
		if err := rows.Scan(&s.ID, &s.Hash, &s.Jurisdiction, &s.LoanType, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning report row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}
	return summaries, nil
}

func (s *sqliteReportStore) GetByID(id int64) (*models.Report, error) {
	var r models.Report
	err := database.DB.QueryRow(
		`SELECT id, hash, jurisdiction, loan_type, request_json, result_json, created_at FROM reports WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Hash, &r.Jurisdiction, &r.LoanType, &r.RequestJSON, &r.ResultJSON, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying report %d: %w", id, err)
	}
	return &r, nil
}
