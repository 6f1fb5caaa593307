package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"stock-target-deviation/internal/checker/config"
	"stock-target-deviation/internal/checker/repository"
	"stock-target-deviation/internal/checker/service"
	"stock-target-deviation/pkg/common"
	"stock-target-deviation/pkg/logger"
	"stock-target-deviation/pkg/report"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath       string
	inputPath        string
	thresholdPercent float64
)

var rootCmd = &cobra.Command{
	Use:   "deviation-check",
	Short: "Reports analyst price targets that deviate from the reference price",
	Long: `deviation-check loads an earnings data file, compares every analyst price
target with the built-in reference price of its symbol and prints the targets
whose deviation exceeds the threshold, largest first.`,
	Args: cobra.NoArgs,
	Run:  runCheck,
}

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Lists the reference price table",
	Args:  cobra.NoArgs,
	Run:   runPrices,
}

func loadConfig(cmd *cobra.Command) *config.Config {
	// A .env file is optional.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cmd.Flags().Changed("input") {
		cfg.Checker.InputPath = inputPath
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Checker.ThresholdPercent = thresholdPercent
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func newPriceRepository(cfg *config.Config, appLogger *logger.Logger) repository.PriceRepository {
	prices, err := repository.NewPriceRepository(repository.DefaultPriceSnapshot(), cfg.Checker.PriceEntries())
	if err != nil {
		appLogger.Fatal("Failed to build price table", zap.Error(err))
	}
	return prices
}

func runCheck(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	cfg := loadConfig(cmd)

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	prices := newPriceRepository(cfg, appLogger)
	threshold := cfg.Checker.Threshold()

	earningsRepo := repository.NewEarningsRepository(appLogger)
	deviationSvc := service.NewDeviationService(appLogger, prices, threshold)
	reporter := report.NewTableReporter(cmd.OutOrStdout(), threshold)
	checkerSvc := service.NewCheckerService(appLogger, earningsRepo, deviationSvc, reporter)

	if _, err := checkerSvc.Run(ctx, cfg.Checker.InputPath); err != nil {
		appLogger.Fatal("Deviation check failed", zap.Error(err))
	}
}

func runPrices(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	prices := newPriceRepository(cfg, appLogger)
	if err := report.FormatPriceTable(cmd.OutOrStdout(), prices.Entries()); err != nil {
		appLogger.Fatal("Failed to print price table", zap.Error(err))
	}
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", common.DefaultConfigPath, "Path to the configuration file")
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", common.DefaultInputPath, "Path to the earnings data file")
	rootCmd.Flags().Float64VarP(&thresholdPercent, "threshold", "t", common.DefaultThresholdPercent, "Deviation threshold in percent")

	rootCmd.AddCommand(pricesCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing deviation-check CLI: %s\n", err)
		os.Exit(1)
	}
}
