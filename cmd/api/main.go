package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/exchangerate"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/exchangerate/ratesclient"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs/whmcsclient"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/metrics"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"

	_ "time/tzdata"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := log.Configure(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	for _, warning := range cfg.Warnings() {
		logrus.Warn(warning)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	calendar := utils.NewRegionalCalendar()

	whmcsClient := whmcsclient.NewClient(cfg.WHMCS)
	whmcsIntegrator := whmcs.New(cfg, whmcsClient, calendar, m)

	ratesClient := ratesclient.NewClient(cfg.ExchangeRate)
	converter := exchangerate.New(cfg, ratesClient, m)

	reportingService := reporting.NewService(cfg, whmcsIntegrator, converter, calendar, m)

	cacheWarmupService := scheduler.NewCacheWarmupService(reportingService, cfg, m)
	if err := cacheWarmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento do cache")
	}

	server, err := api.New(cfg, reportingService, cacheWarmupService, m)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
