package utils

import "time"

// ReportDateFormat is the wire format for asOf dates in report requests
// and archived report rows.
const ReportDateFormat = "2006-01-02"

func ParseReportDate(dateStr string) (time.Time, error) {
	return time.Parse(ReportDateFormat, dateStr)
}

func FormatReportDate(t time.Time) string {
	return t.Format(ReportDateFormat)
}
