package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/exchangerate"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/exchangerate/ratesclient"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs/whmcsclient"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"

	_ "time/tzdata"
)

const reportTimeout = 2 * time.Minute

type flags struct {
	Date    string
	JSON    bool
	Verbose bool
}

func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Date, "date", "", "Dia de referência no formato YYYY-MM-DD (padrão: hoje no fuso regional)")
	flagSet.BoolVar(&f.JSON, "json", false, "Imprime o resumo em JSON")
	flagSet.BoolVarP(&f.Verbose, "verbose", "v", false, "Mostra os logs de debug")
}

func main() {
	f := &flags{}
	flagSet := pflag.NewFlagSet("salesreport", pflag.ExitOnError)
	f.Bind(flagSet)
	_ = flagSet.Parse(os.Args[1:])

	if err := run(f); err != nil {
		logrus.Fatal(err)
	}
}

func run(f *flags) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	level := "warn"
	if f.Verbose {
		level = "debug"
	}
	if _, err := log.Configure(level); err != nil {
		return err
	}

	calendar, err := calendarFor(f.Date)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	whmcsIntegrator := whmcs.New(cfg, whmcsclient.NewClient(cfg.WHMCS), calendar, nil)
	converter := exchangerate.New(cfg, ratesclient.NewClient(cfg.ExchangeRate), nil)
	service := reporting.NewService(cfg, whmcsIntegrator, converter, calendar, nil)

	summary, _, err := service.Summary(ctx)
	if err != nil {
		fmt.Println("Failed to fetch sales statistics")
		return err
	}

	users, _, err := service.RecentUserSales(ctx)
	if err != nil {
		return err
	}

	if f.JSON {
		return writeJSONReport(os.Stdout, summary, users)
	}

	return writeReport(os.Stdout, summary, users)
}

// calendarFor fixa o relógio ao meio-dia do dia informado; vazio usa o relógio real
func calendarFor(date string) (*utils.RegionalCalendar, error) {
	if date == "" {
		return utils.NewRegionalCalendar(), nil
	}

	parsed, err := utils.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q, use YYYY-MM-DD: %w", date, err)
	}

	loc := utils.RegionalLocation()
	reference := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 12, 0, 0, 0, loc)

	return utils.NewRegionalCalendarWithClock(func() time.Time { return reference }), nil
}
