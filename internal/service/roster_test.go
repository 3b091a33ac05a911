package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterAddAndList(t *testing.T) {
	svc := NewRosterService(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "Alice"))
	require.NoError(t, svc.Add(ctx, "Bob"))

	assert.ErrorIs(t, svc.Add(ctx, "Alice"), ErrConflict)
	assert.ErrorIs(t, svc.Add(ctx, "   "), ErrValidation)

	names, err := svc.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, names)
}

func TestDeleteCascadesOwnReportsOnly(t *testing.T) {
	db := newTestDB(t)
	roster := NewRosterService(db)
	reports := NewReportService(db)
	ctx := context.Background()

	require.NoError(t, roster.Add(ctx, "Alice"))
	require.NoError(t, roster.Add(ctx, "Bob"))
	submitReport(t, reports, "2024-01-01", "Alice", "wrote tests", "review PR", "")
	submitReport(t, reports, "2024-01-02", "Alice", "reviewed PR", "merge it", "")
	submitReport(t, reports, "2024-01-01", "Bob", "deployed", "monitor", "")

	require.NoError(t, roster.Delete(ctx, "Alice"))

	names, err := roster.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob"}, names)

	day1, err := reports.ListByDate(ctx, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, day1, 1)
	assert.Equal(t, "Bob", day1[0].MemberName)

	day2, err := reports.ListByDate(ctx, "2024-01-02")
	require.NoError(t, err)
	assert.Empty(t, day2)
}

func TestDeleteUnknownMember(t *testing.T) {
	svc := NewRosterService(newTestDB(t))
	assert.ErrorIs(t, svc.Delete(context.Background(), "Nobody"), ErrNotFound)
}
