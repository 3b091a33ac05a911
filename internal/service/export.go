package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Consolidated Report"

// ExportService renders a date's reports plus cached action items into a
// downloadable xlsx workbook.
type ExportService struct {
	reports *ReportService
	items   *ActionItemService
}

func NewExportService(reports *ReportService, items *ActionItemService) *ExportService {
	return &ExportService{reports: reports, items: items}
}

// Build produces the workbook bytes and the download filename for a date.
// ErrNotFound when the date has no reports.
func (s *ExportService) Build(ctx context.Context, date string) ([]byte, string, error) {
	reports, err := s.reports.ListByDate(ctx, date)
	if err != nil {
		return nil, "", err
	}
	if len(reports) == 0 {
		return nil, "", fmt.Errorf("%w: no reports found for this date", ErrNotFound)
	}
	items, err := s.items.Cached(ctx, date)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", exportSheet)

	titleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	headStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	f.MergeCell(exportSheet, "A1", "E1")
	f.SetCellValue(exportSheet, "A1", "MOM Consolidated Report - "+date)
	f.SetCellStyle(exportSheet, "A1", "E1", titleStyle)

	f.SetCellValue(exportSheet, "A3", "Daily Progress Reports")
	f.SetCellStyle(exportSheet, "A3", "A3", headStyle)

	headers := []string{"S.No", "Team Member", "Yesterday's Tasks", "Today's Priorities", "Blockers"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(exportSheet, cell, h)
		f.SetCellStyle(exportSheet, cell, cell, headStyle)
	}

	for i, r := range reports {
		blockers := r.Blockers
		if blockers == "" {
			blockers = "None"
		}
		row := strconv.Itoa(i + 5)
		f.SetCellValue(exportSheet, "A"+row, i+1)
		f.SetCellValue(exportSheet, "B"+row, r.MemberName)
		f.SetCellValue(exportSheet, "C"+row, r.Yesterday)
		f.SetCellValue(exportSheet, "D"+row, r.Today)
		f.SetCellValue(exportSheet, "E"+row, blockers)
	}

	if items != "" {
		headRow := 6 + len(reports)
		headCell := "A" + strconv.Itoa(headRow)
		f.SetCellValue(exportSheet, headCell, "Action Items")
		f.SetCellStyle(exportSheet, headCell, headCell, headStyle)
		f.SetCellValue(exportSheet, "A"+strconv.Itoa(headRow+1), items)
	}

	f.SetColWidth(exportSheet, "B", "E", 32)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), fmt.Sprintf("mom-report-%s.xlsx", date), nil
}
