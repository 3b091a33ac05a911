package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Aravind-ihub855/Mom-Automation/internal/model"

	"gorm.io/gorm"
)

// ActionItemService consolidates one date's reports into a bullet list of
// distinct action items via the external model, caching the result per date.
type ActionItemService struct {
	db  *gorm.DB
	llm TextGenerator
}

func NewActionItemService(db *gorm.DB, llm TextGenerator) *ActionItemService {
	return &ActionItemService{db: db, llm: llm}
}

// Generate returns the action items for a date, generating and caching them
// on first call. The external model is never invoked again for a date once a
// cache row exists; failed generations store nothing so a retry can succeed.
func (s *ActionItemService) Generate(ctx context.Context, date string) (string, error) {
	reports, err := s.reportsFor(ctx, date)
	if err != nil {
		return "", err
	}
	if len(reports) == 0 {
		return "", fmt.Errorf("%w: no reports found for this date", ErrNotFound)
	}

	var cached model.ActionItems
	err = s.db.WithContext(ctx).Where("report_date = ?", date).First(&cached).Error
	if err == nil {
		return cached.Items, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("read action items cache: %w", err)
	}

	text, err := s.llm.Generate(ctx, buildConsolidationPrompt(reports))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	text = strings.TrimSpace(text)

	err = s.db.WithContext(ctx).Create(&model.ActionItems{ReportDate: date, Items: text}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// concurrent generation for the same date: the first writer wins and
		// its text becomes the permanent cache
		var winner model.ActionItems
		if err := s.db.WithContext(ctx).Where("report_date = ?", date).First(&winner).Error; err != nil {
			return "", fmt.Errorf("read winning action items: %w", err)
		}
		return winner.Items, nil
	}
	if err != nil {
		return "", fmt.Errorf("cache action items: %w", err)
	}
	return text, nil
}

// Cached returns the generated text for a date, or empty when nothing has
// been generated yet.
func (s *ActionItemService) Cached(ctx context.Context, date string) (string, error) {
	var cached model.ActionItems
	err := s.db.WithContext(ctx).Where("report_date = ?", date).First(&cached).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read action items cache: %w", err)
	}
	return cached.Items, nil
}

func (s *ActionItemService) reportsFor(ctx context.Context, date string) ([]model.Report, error) {
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

func buildConsolidationPrompt(reports []model.Report) string {
	var content strings.Builder
	content.WriteString("Daily Reports:\n")
	for _, r := range reports {
		fmt.Fprintf(&content, "%s:\n- Yesterday: %s\n- Today: %s\n- Blockers: %s\n\n",
			r.MemberName, r.Yesterday, r.Today, r.Blockers)
	}

	return fmt.Sprintf(`From the following daily reports, extract the main and unique action items based on the 'Today's Priorities' field.
Follow these guidelines:
- Extract each distinct task as a separate action item - do not combine unrelated tasks, even if they come from the same person.
- Only consolidate tasks that are directly related (e.g., multiple aspects of the same feature like "enhancing and testing" the same agents).
- Focus on the primary objectives for the day.
- Each action item should be distinct and represent a unique goal or task.
- Output in bullet point format using this structure:
• [Action Item]
- Ensure no unrelated tasks are merged together.

Reports:
%s`, content.String())
}
