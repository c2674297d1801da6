package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang-stock-forecast/internal/forecaster/chart"
	"golang-stock-forecast/internal/forecaster/config"
	"golang-stock-forecast/internal/forecaster/delivery/console"
	"golang-stock-forecast/internal/forecaster/delivery/tui"
	"golang-stock-forecast/internal/forecaster/repository"
	"golang-stock-forecast/internal/forecaster/service"
	"golang-stock-forecast/internal/forecaster/ui"
	"golang-stock-forecast/pkg/common"
	"golang-stock-forecast/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	configPath string
	ticker     string
	days       int
	htmlOutput string
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Requests one forecast and prints it",
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if days <= 0 || days > common.MaxHorizonDays {
			return fmt.Errorf("--days must be between 1 and %d", common.MaxHorizonDays)
		}
		return nil
	},
	RunE: runPredict,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Starts the interactive forecast form",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}

func newLogger(cfg *config.Config, fallbackPaths ...string) *logger.Logger {
	paths := cfg.Logger.OutputPaths
	if len(paths) == 0 {
		paths = fallbackPaths
	}
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding, paths...)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return appLogger
}

func newOrchestrator(cfg *config.Config, regions ui.Regions, renderer *chart.Renderer, appLogger *logger.Logger) (service.Orchestrator, *ui.Manager) {
	predictionRepo := repository.NewPredictionRepository(cfg, appLogger)
	stockInfoRepo := repository.NewStockInfoRepository(cfg, appLogger)
	manager := ui.NewManager(regions, ui.SystemClock{}, cfg.UI.ErrorDismissAfter, appLogger)
	return service.NewOrchestrator(predictionRepo, stockInfoRepo, renderer, manager, appLogger), manager
}

func chartSurface(cfg *config.Config, html string) chart.Surface {
	terminal := chart.TerminalSurface{Width: cfg.UI.ChartWidth, Height: cfg.UI.ChartHeight}
	if html == "" {
		return terminal
	}
	return chart.MultiSurface{terminal, chart.HTMLSurface{Path: html}}
}

func runPredict(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := loadConfig()
	appLogger := newLogger(cfg, "stderr")
	defer func() { _ = appLogger.Sync() }()

	if htmlOutput == "" {
		htmlOutput = cfg.UI.HTMLOutput
	}

	// the HTML page is the output, so the renderer is not closed here
	renderer := chart.NewRenderer(chartSurface(cfg, htmlOutput))
	regions := console.NewRegions(cmd.OutOrStdout())
	orch, manager := newOrchestrator(cfg, regions, renderer, appLogger)
	defer manager.Close()

	err := orch.Submit(ctx, ticker, strconv.Itoa(days))
	orch.Wait()
	if err != nil {
		cmd.SilenceUsage = true
		return err
	}

	regions.PrintChart(renderer.View())
	if htmlOutput != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Chart written to %s\n", htmlOutput)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := loadConfig()
	// the terminal belongs to the form, so logs go to a file unless configured otherwise
	appLogger := newLogger(cfg, "forecast-client.log")
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting forecast form", logger.Field("name", cfg.App.Name), logger.Field("base_url", cfg.PredictionAPI.BaseURL))

	renderer := chart.NewRenderer(chartSurface(cfg, cfg.UI.HTMLOutput))
	defer renderer.Close()
	regions := tui.NewRegions()
	orch, manager := newOrchestrator(cfg, regions, renderer, appLogger)
	defer manager.Close()

	return tui.Run(ctx, orch, regions, renderer.View, cfg.UI.DefaultDays)
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "forecast-client",
		Short:         "Stock price forecast client",
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-client.yaml", "Path to the configuration file")

	predictCmd.Flags().StringVarP(&ticker, "ticker", "t", "", "Stock ticker symbol, e.g. AAPL")
	predictCmd.Flags().IntVarP(&days, "days", "d", common.DefaultHorizonDays, "Number of days to forecast")
	predictCmd.Flags().StringVar(&htmlOutput, "html", "", "Also write the chart as an HTML page to this path")

	rootCmd.AddCommand(predictCmd, tuiCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing forecast-client CLI: %s\n", err)
		os.Exit(1)
	}
}
