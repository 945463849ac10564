// Command consolectl runs console operations against the association backend
// from a terminal. Results are printed as YAML.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"association-console/internal/backend"
	"association-console/pkg/config"
)

var (
	// Global flags
	verbose    bool
	token      string
	backendURL string
	timeout    time.Duration

	logger *zap.Logger
	client *backend.Client
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "consolectl",
	Short: "Association console operations from the command line",
	Long: `consolectl talks to the association REST backend with the same rules as
the web console: dons export, batch equipment creation, dispatch returns and
the pending session.

The bearer token comes from --token or CONSOLE_TOKEN.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		zcfg.OutputPaths = []string{"stderr"}
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg = config.New()
		if token == "" {
			token = os.Getenv("CONSOLE_TOKEN")
		}
		if token == "" {
			return fmt.Errorf("no token: use --token or set CONSOLE_TOKEN")
		}
		baseURL := cfg.Backend.BaseURL
		if backendURL != "" {
			baseURL = strings.TrimRight(backendURL, "/")
		}
		client = backend.New(baseURL, cfg.Backend.Timeout, logger, backend.WithStaticToken(token))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Backend bearer token (or set CONSOLE_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "Backend base URL (default: BACKEND_BASE_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Operation timeout")

	rootCmd.AddCommand(donsCmd)
	rootCmd.AddCommand(equipmentCmd)
	rootCmd.AddCommand(dispatchesCmd)
	rootCmd.AddCommand(sessionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// printYAML goes through JSON first so the output keys match the API.
func printYAML(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}
