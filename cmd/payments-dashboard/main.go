package main

import (
	"context"
	"os"

	"github.com/diillson/payments-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/payments-dashboard-go/internal/adapter/driven/dataset"
	"github.com/diillson/payments-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/payments-dashboard-go/internal/adapter/driven/memory"
	"github.com/diillson/payments-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/payments-dashboard-go/internal/application/usecase"
	"github.com/diillson/payments-dashboard-go/pkg/console"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	// Inicializa os repositórios
	datasetRepo := dataset.NewDatasetRepository(logger)
	store := memory.NewRecordStore()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	dashboardUseCase := usecase.NewDashboardUseCase(
		datasetRepo,
		store,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app := cli.NewCLIApp(logger)
	app.SetDashboardUseCase(dashboardUseCase)

	if err := app.Execute(context.Background()); err != nil {
		consoleImpl.LogError("%s", err)
		os.Exit(1)
	}
}
