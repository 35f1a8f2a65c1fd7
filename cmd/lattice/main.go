package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lattice/cmd/lattice/chat"
	"lattice/internal/auth"
	"lattice/internal/config"
	"lattice/internal/logging"
	"lattice/internal/render"
	"lattice/internal/search"
	"lattice/internal/ui"
)

var version = "dev"

var (
	// Global flags
	verbose    bool
	configPath string
	timeoutSec int

	// Query flags
	asAlias       string
	queryPassword string
	plainOutput   bool

	cfg         *config.Config
	logger      *zap.Logger
	closeLogger func()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lattice",
	Short: "Lattice - conversational startup search client",
	Long: `Lattice is a terminal client for the Lattice startup-search backend.

Queries are sent as natural language; the backend decides whether to
answer with startup results, aggregate analytics, financial statements
or web results, and the client renders each kind accordingly.

Run without arguments to start the interactive chat interface.`,
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if closeLogger != nil {
			closeLogger()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return chat.Run(cfg, logger)
	},
}

// Assigned in init rather than in the composite literal above because the
// function body refers to rootCmd, which would otherwise be an
// initialization cycle.
func rootPersistentPreRunE(cmd *cobra.Command, args []string) error {
	// Secrets such as LATTICE_API_KEY commonly live in a local .env.
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("timeout") {
		cfg.API.TimeoutSeconds = timeoutSec
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	// The interactive UI owns the terminal, so it logs to a file.
	// Every other command logs to stderr.
	if cmd == rootCmd {
		logger, closeLogger, err = logging.NewFileLogger(cfg.Logging)
		if err != nil {
			return err
		}
		return nil
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(logging.ParseLevel(cfg.Logging.Level))
	if verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err = zapCfg.Build()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	closeLogger = func() { _ = logger.Sync() }
	return nil
}

// queryCmd runs a single search without the TUI, for scripting.
var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Run a single search and print the result",
	Long: `Sends one query to the backend and prints the rendered result to stdout.

The workspace alias defaults to the configured admin alias. Use --as to
query as a restricted workspace.

Example:
  lattice query --as acme "서울에 있는 핀테크"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the client version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lattice %s\n", version)
	},
}

func init() {
	rootCmd.PersistentPreRunE = rootPersistentPreRunE
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ./config.yaml, ~/.lattice/config.yaml)")
	rootCmd.PersistentFlags().IntVar(&timeoutSec, "timeout", config.DefaultTimeoutSeconds, "Request timeout in seconds")

	queryCmd.Flags().StringVar(&asAlias, "as", "", "Workspace alias to query as (default: admin alias)")
	queryCmd.Flags().StringVar(&queryPassword, "password", "", "Password for the workspace alias, if required")
	queryCmd.Flags().BoolVar(&plainOutput, "plain", false, "Disable colored output")

	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runQuery performs one authenticated search end to end.
func runQuery(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	alias := asAlias
	if alias == "" {
		alias = cfg.Auth.AdminAlias
	}

	gate := auth.NewGate(cfg.Auth.AdminAlias, cfg.Auth.Workspaces, cfg.Auth.Passwords)
	wctx, err := gate.Authenticate(alias, queryPassword)
	if err != nil {
		return fmt.Errorf("authenticating %q: %w", alias, err)
	}
	logger.Debug("authenticated",
		zap.String("alias", wctx.Alias),
		zap.Bool("admin", wctx.IsAdmin()))

	query := joinArgs(args)
	client := search.NewClient(cfg.API, logger)
	resp, err := client.Search(context.Background(), query, wctx)
	if err != nil {
		return err
	}

	styles := ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))
	if plainOutput {
		styles = ui.PlainStyles()
	}

	variant := search.Classify(resp.Status, resp.Envelope)
	fmt.Println(render.Result(variant, resp.Envelope, styles))
	return nil
}

func joinArgs(args []string) string {
	result := ""
	for i, arg := range args {
		if i > 0 {
			result += " "
		}
		result += arg
	}
	return result
}
