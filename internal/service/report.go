package service

import (
	"fmt"
	"io"
	"time"

	apperrors "coffee-shop-backend/internal/errors"
	"coffee-shop-backend/internal/recurrence"
	"coffee-shop-backend/internal/report"
	"coffee-shop-backend/internal/repository"

	"github.com/xuri/excelize/v2"
)

const revenueSheet = "Revenue"

// ReportService builds revenue reports from paid payments
type ReportService struct {
	payments repository.PaymentRepositoryInterface
	loc      *time.Location
}

// Ensure ReportService implements ReportServiceInterface
var _ ReportServiceInterface = (*ReportService)(nil)

// NewReportService creates a new report service; buckets are cut in loc
func NewReportService(payments repository.PaymentRepositoryInterface, loc *time.Location) *ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportService{payments: payments, loc: loc}
}

// RevenueReportRequest carries the query parameters of a revenue report
type RevenueReportRequest struct {
	View    string `form:"view" example:"monthly"`
	From    string `form:"from" example:"2024-01-01"`
	To      string `form:"to" example:"2024-12-31"`
	Buckets int    `form:"buckets" example:"6"`
}

// RevenueReportMeta describes the parameters a report was built with
type RevenueReportMeta struct {
	View  report.View `json:"view"`
	From  string      `json:"from,omitempty"`
	To    string      `json:"to,omitempty"`
	Count int         `json:"count"`
}

// RevenueReportResponse is the revenue report payload
type RevenueReportResponse struct {
	Data []report.Bucket   `json:"data"`
	Meta RevenueReportMeta `json:"meta"`
}

// Revenue aggregates paid payments in the requested window
func (s *ReportService) Revenue(req *RevenueReportRequest) (*RevenueReportResponse, error) {
	view := report.ParseView(req.View)

	var from, to *time.Time
	var fromDate, toDate time.Time
	if req.From != "" {
		d, err := recurrence.ParseDate(req.From)
		if err != nil {
			return nil, apperrors.NewValidationError("from", err.Error())
		}
		fromDate = d
		start := s.startOfDay(d)
		from = &start
	}
	if req.To != "" {
		d, err := recurrence.ParseDate(req.To)
		if err != nil {
			return nil, apperrors.NewValidationError("to", err.Error())
		}
		toDate = d
		end := s.startOfDay(d.AddDate(0, 0, 1))
		to = &end
	}
	if from != nil && to != nil && fromDate.After(toDate) {
		return nil, apperrors.NewValidationError("to", "from must not be after to")
	}

	payments, err := s.payments.GetPaidBetween(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	buckets := report.Latest(report.Aggregate(view, payments, s.loc), req.Buckets)

	meta := RevenueReportMeta{View: view, Count: len(buckets)}
	if from != nil {
		meta.From = recurrence.FormatDate(fromDate)
	}
	if to != nil {
		meta.To = recurrence.FormatDate(toDate)
	}
	return &RevenueReportResponse{Data: buckets, Meta: meta}, nil
}

// ExportRevenue writes the revenue report as an xlsx workbook
func (s *ReportService) ExportRevenue(req *RevenueReportRequest, w io.Writer) error {
	rep, err := s.Revenue(req)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", revenueSheet); err != nil {
		return fmt.Errorf("failed to prepare workbook: %w", err)
	}

	header := []interface{}{"Bucket start", "Total", "Orders", "Average order value"}
	if err := f.SetSheetRow(revenueSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, b := range rep.Data {
		total, _ := b.TotalSum.Float64()
		avg, _ := b.AvgOrderValue.Float64()
		row := []interface{}{b.BucketStart, total, b.OrderCount, avg}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(revenueSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	grand, _ := report.Total(rep.Data).Float64()
	cell, err := excelize.CoordinatesToCellName(1, len(rep.Data)+2)
	if err != nil {
		return err
	}
	footer := []interface{}{"Total", grand}
	if err := f.SetSheetRow(revenueSheet, cell, &footer); err != nil {
		return fmt.Errorf("failed to write totals: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// startOfDay returns the instant the civil date begins in the business zone
func (s *ReportService) startOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, s.loc)
}
