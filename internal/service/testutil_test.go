package service

import (
	"context"
	"testing"

	"github.com/Aravind-ihub855/Mom-Automation/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Admin{}, &model.Member{}, &model.Report{}, &model.ActionItems{}))
	return db
}

func submitReport(t *testing.T, svc *ReportService, date, name, yesterday, today, blockers string) {
	t.Helper()
	require.NoError(t, svc.Submit(context.Background(), date, name, yesterday, today, blockers))
}
