package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newExportFixture(t *testing.T) (*ExportService, *ReportService, *ActionItemService) {
	db := newTestDB(t)
	reports := NewReportService(db)
	items := NewActionItemService(db, &fakeGenerator{text: "• Review the PR"})
	return NewExportService(reports, items), reports, items
}

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(exportSheet, ref)
	require.NoError(t, err)
	return v
}

func TestBuildNoReports(t *testing.T) {
	export, _, _ := newExportFixture(t)
	_, _, err := export.Build(context.Background(), "2024-01-01")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBuildWithoutActionItems(t *testing.T) {
	export, reports, _ := newExportFixture(t)
	ctx := context.Background()

	submitReport(t, reports, "2024-01-01", "Alice", "wrote tests", "review PR", "")

	data, filename, err := export.Build(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "mom-report-2024-01-01.xlsx", filename)

	f := openWorkbook(t, data)
	assert.Equal(t, "MOM Consolidated Report - 2024-01-01", cell(t, f, "A1"))
	assert.Equal(t, "S.No", cell(t, f, "A4"))
	assert.Equal(t, "Team Member", cell(t, f, "B4"))
	assert.Equal(t, "1", cell(t, f, "A5"))
	assert.Equal(t, "Alice", cell(t, f, "B5"))
	assert.Equal(t, "wrote tests", cell(t, f, "C5"))
	assert.Equal(t, "review PR", cell(t, f, "D5"))
	assert.Equal(t, "None", cell(t, f, "E5"), "empty blockers render as None")

	// no Action Items section without a cached generation
	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	for _, row := range rows {
		for _, v := range row {
			assert.NotEqual(t, "Action Items", v)
		}
	}
}

func TestBuildWithActionItems(t *testing.T) {
	export, reports, items := newExportFixture(t)
	ctx := context.Background()

	submitReport(t, reports, "2024-01-01", "Alice", "wrote tests", "review PR", "ci flaky")
	submitReport(t, reports, "2024-01-01", "Bob", "deployed", "monitor", "")
	_, err := items.Generate(ctx, "2024-01-01")
	require.NoError(t, err)

	data, _, err := export.Build(ctx, "2024-01-01")
	require.NoError(t, err)

	f := openWorkbook(t, data)
	assert.Equal(t, "ci flaky", cell(t, f, "E5"))
	assert.Equal(t, "2", cell(t, f, "A6"))
	assert.Equal(t, "None", cell(t, f, "E6"))
	assert.Equal(t, "Action Items", cell(t, f, "A8"))
	assert.Equal(t, "• Review the PR", cell(t, f, "A9"))
}
