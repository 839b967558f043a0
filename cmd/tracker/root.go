package main

import (
	"context"
	"fmt"
	"go-application-tracker/config"
	"go-application-tracker/internal/app"
	"go-application-tracker/internal/delivery/cli"
	"go-application-tracker/pkg/audit"
	"go-application-tracker/pkg/logger"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagStrict    bool
	flagExportDir string
	flagLogLevel  string
	flagAuditLog  string
)

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Interactive in-memory job application tracker",
	Long: `Record applications, queue them for review, shortlist or reject them,
track stages, search, and generate or export reports. Nothing is persisted
between runs; type 9 or "exit" to quit.`,
	SilenceUsage: true,
	RunE:         runTracker,
}

func init() {
	rootCmd.Flags().BoolVar(&flagStrict, "strict", false, "refuse to re-decide shortlisted or rejected applications")
	rootCmd.Flags().StringVar(&flagExportDir, "export-dir", "", "directory for exported reports (default $REPORT_EXPORT_DIR)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error (default $LOG_LEVEL)")
	rootCmd.Flags().StringVar(&flagAuditLog, "audit-log", "", `audit sink: stderr, stdout, a file, or "off" (default $AUDIT_LOG_PATH)`)
}

func runTracker(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cmd, cfg)

	log := logger.Init(cfg.LogLevel, os.Stderr)
	log.Info("Starting application tracker", "env", cfg.Environment, "strict", cfg.StrictDecisions)

	zapLogger, err := audit.NewZapLogger(cfg.AuditLogPath)
	if err != nil {
		return fmt.Errorf("building audit logger: %w", err)
	}
	auditLog := audit.New(zapLogger, cfg.ServiceName, cfg.Environment)
	defer func() { _ = auditLog.Sync() }()

	state := app.New(cfg, auditLog, log)
	menu := cli.NewMenu(state.Dispatcher, cmd.InOrStdin(), cmd.OutOrStdout(), cli.MenuOptions{
		ExportDir:    cfg.ExportDir,
		ExportFormat: cfg.ExportFormat,
	})

	if err := menu.Run(context.Background()); err != nil {
		return err
	}
	log.Info("Application tracker exiting")
	return nil
}

// applyFlags lets explicitly set flags override the environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.StrictDecisions = flagStrict
	}
	if flags.Changed("export-dir") {
		cfg.ExportDir = flagExportDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("audit-log") {
		cfg.AuditLogPath = flagAuditLog
	}
}
