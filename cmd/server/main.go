package main

import (
	"context"
	"crypto/rand"
	"flag"
	"log/slog"
	"os"

	"github.com/Aravind-ihub855/Mom-Automation/internal/config"
	"github.com/Aravind-ihub855/Mom-Automation/internal/handler"
	"github.com/Aravind-ihub855/Mom-Automation/internal/logger"
	"github.com/Aravind-ihub855/Mom-Automation/internal/model"
	"github.com/Aravind-ihub855/Mom-Automation/internal/service"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&model.Admin{}, &model.Member{}, &model.Report{}, &model.ActionItems{}); err != nil {
		slog.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	secret := []byte(cfg.Session.Secret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		rand.Read(secret)
		slog.Warn("session secret not configured, sessions will not survive a restart")
	}

	authSvc := service.NewAuthService(db, secret)
	if err := authSvc.Bootstrap(context.Background(), cfg.Admin.Email, cfg.Admin.Password); err != nil {
		slog.Error("admin bootstrap failed", "err", err)
		os.Exit(1)
	}

	rosterSvc := service.NewRosterService(db)
	reportSvc := service.NewReportService(db)
	llm := service.NewGeminiClient(cfg.Gemini.BaseURL, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.GeminiTimeout())
	itemSvc := service.NewActionItemService(db, llm)
	exportSvc := service.NewExportService(reportSvc, itemSvc)

	r := handler.NewRouter(handler.Handlers{
		Auth:          handler.NewAuthHandler(authSvc),
		Pages:         handler.NewPageHandler(rosterSvc),
		Reports:       handler.NewReportHandler(reportSvc),
		Users:         handler.NewUserHandler(rosterSvc),
		ActionItems:   handler.NewActionItemHandler(itemSvc),
		Export:        handler.NewExportHandler(exportSvc),
		SessionSecret: secret,
		AdminLookup:   authSvc.AdminExists,
	})

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
