// Package main provides the hrmanager binary entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"go-hr-manager/config"
	"go-hr-manager/internal/delivery/cli"
	"go-hr-manager/internal/domain"
	"go-hr-manager/internal/export"
	"go-hr-manager/internal/storage/jsonfile"
	"go-hr-manager/internal/usecase"
	"go-hr-manager/pkg/apperror"
	"go-hr-manager/pkg/audit"
	"go-hr-manager/pkg/logger"
	"go-hr-manager/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "hrmanager"
)

// errCommandFailed wraps the error of a command run through exec.
var errCommandFailed = errors.New("command failed")

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		// A failed exec command has already printed its message.
		if !errors.Is(err, errCommandFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

type options struct {
	configPath string
	dataDir    string
	logLevel   string
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Manage candidates, positions and interviews",
		Long: `hrmanager keeps track of candidates, the positions they applied for and
the interviews scheduled between them. Commands are typed at the prompt;
type "help" to list them. Data is saved to three JSON files after every change.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.close()
			return cli.NewREPL(app.logic, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "Directory holding the data files")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "exec COMMAND...",
		Short: "Run a single HR manager command and exit",
		Example: `  hrmanager exec add_p pos/HR Manager
  hrmanager exec list_c`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.close()
			_, err = cli.NewREPL(app.logic, strings.NewReader(""), cmd.OutOrStdout()).RunLine(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("%w: %w", errCommandFailed, err)
			}
			return nil
		},
	})

	var exportFormat, exportOut string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the HR data to a spreadsheet",
		Example: `  hrmanager export
  hrmanager export --format csv --out candidates.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			data, err := newStorage(cfg, validation.New()).Load(cmd.Context())
			if err != nil {
				return err
			}

			b, name, err := export.Export(data, export.Format(exportFormat), time.Now())
			if err != nil {
				return err
			}
			if exportOut == "" {
				exportOut = name
			}
			if err := os.WriteFile(exportOut, b, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d candidates, %d positions and %d interviews to %s\n",
				len(data.Candidates), len(data.Positions), len(data.Interviews), exportOut)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(export.FormatXLSX), "Output format (xlsx, csv)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: timestamped name)")
	cmd.AddCommand(exportCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "verify-audit",
		Short: "Check the hash chain of the audit trail",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			f, err := os.Open(cfg.AuditPath())
			if err != nil {
				return fmt.Errorf("open audit trail: %w", err)
			}
			defer f.Close()

			report, err := audit.VerifyChain(f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d events in %d runs, %d chain breaks\n",
				report.Status, report.TotalEvents, report.Segments, report.ChainBreaks)
			for _, d := range report.Details {
				fmt.Fprintln(cmd.OutOrStdout(), "  "+d)
			}
			if report.ChainBreaks > 0 {
				return fmt.Errorf("audit trail is %s", report.Status)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

type app struct {
	logic   domain.LogicUsecase
	audit   *audit.Logger
	logFile *os.File
}

func (a *app) close() {
	_ = a.audit.Sync()
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

// loadConfig applies the command-line flags on top of the loaded config.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.dataDir != "" {
		cfg.DataDir = opts.dataDir
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	return cfg, nil
}

func newStorage(cfg *config.Config, validate *validator.Validate) domain.HrStorage {
	return jsonfile.NewStorage(jsonfile.Paths{
		Candidates: cfg.CandidatesPath(),
		Positions:  cfg.PositionsPath(),
		Interviews: cfg.InterviewsPath(),
	}, validate)
}

func setup(ctx context.Context, opts options, stderr io.Writer) (*app, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	a := &app{}
	var logOut io.Writer = stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		logOut = f
	}
	logger.Init(logOut, cfg.LogLevel)

	a.audit = audit.Nop()
	if cfg.AuditEnabled {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		al, err := audit.New(appName, cfg.AuditPath())
		if err != nil {
			logger.Log.Warn("audit trail disabled", "error", err)
		} else {
			a.audit = al
		}
	}

	validate := validation.New()
	storage := newStorage(cfg, validate)

	model, err := usecase.LoadModel(ctx, storage, a.audit)
	switch {
	case apperror.IsDataConversion(err):
		fmt.Fprintf(stderr, "Warning: %v\nStarting with an empty HR manager.\n", err)
	case err != nil:
		return nil, err
	}

	a.logic = usecase.NewLogicUsecase(model, storage, validate, a.audit)
	return a, nil
}
