package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Aravind-ihub855/Mom-Automation/internal/model"

	"gorm.io/gorm"
)

// maxFieldWords caps the yesterday/today fields, counted on whitespace.
const maxFieldWords = 10

const dateLayout = "2006-01-02"

// ReportService owns the report lifecycle: validated submission, existence
// lookup and per-date listing.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// Submit validates and stores one report. The one-per-(date,member) rule is
// enforced by the database's composite unique index, not a pre-read, so
// concurrent duplicates resolve to exactly one winner.
func (s *ReportService) Submit(ctx context.Context, date, name, yesterday, today, blockers string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if strings.TrimSpace(yesterday) == "" || strings.TrimSpace(today) == "" {
		return fmt.Errorf("%w: yesterday's tasks and today's priorities cannot be empty", ErrValidation)
	}
	if len(strings.Fields(yesterday)) > maxFieldWords || len(strings.Fields(today)) > maxFieldWords {
		return fmt.Errorf("%w: each field must not exceed %d words", ErrValidation, maxFieldWords)
	}

	report := model.Report{
		ReportDate: date,
		MemberName: name,
		Yesterday:  yesterday,
		Today:      today,
		Blockers:   blockers,
	}
	err := s.db.WithContext(ctx).Create(&report).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: report already exists for this user and date", ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// Lookup fetches one member's report for a date, ErrNotFound when absent.
func (s *ReportService) Lookup(ctx context.Context, date, name string) (*model.Report, error) {
	var report model.Report
	err := s.db.WithContext(ctx).
		Where("report_date = ? AND member_name = ?", date, name).
		First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: no report for %s on %s", ErrNotFound, name, date)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup report: %w", err)
	}
	return &report, nil
}

// ListByDate returns every report for a date in insertion order.
func (s *ReportService) ListByDate(ctx context.Context, date string) ([]model.Report, error) {
	var reports []model.Report
	err := s.db.WithContext(ctx).
		Where("report_date = ?", date).
		Order("id").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

// Rows numbers the date's reports for display, 1-based.
func (s *ReportService) Rows(ctx context.Context, date string) ([]model.ReportRow, error) {
	reports, err := s.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	rows := make([]model.ReportRow, 0, len(reports))
	for i, r := range reports {
		rows = append(rows, model.ReportRow{
			SNo:       i + 1,
			Name:      r.MemberName,
			Yesterday: r.Yesterday,
			Today:     r.Today,
			Blockers:  r.Blockers,
		})
	}
	return rows, nil
}
