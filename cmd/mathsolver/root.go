package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rhuss/mathsolver/pkg/config"
	"github.com/rhuss/mathsolver/pkg/provider"
	"github.com/rhuss/mathsolver/pkg/provider/registry"
)

// Exit codes
const (
	ExitSuccess  = 0
	ExitConfig   = 1
	ExitUnsolved = 2
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	cfgFile string

	// Loaded configuration
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mathsolver",
	Short: "Solve math problems with a chain of AI and computational services",
	Long: `mathsolver forwards a math question to Gemini, WolframAlpha and
Hugging Face in order and returns the first answer.

Providers without credentials are skipped. Credentials come from the
config file or the GEMINI_API_KEY, WOLFRAM_API_KEY and HF_API_KEY
environment variables.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $MATHSOLVER_CONFIG, ./config.yaml or /etc/mathsolver/config.yaml)")
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return exitWithCode(ExitConfig, err)
	}
	return nil
}

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.code, e.err)
}

func (e *exitError) Unwrap() error {
	return e.err
}

func exitWithCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

// closeProviders releases the chain and logs close failures.
func closeProviders(chain []provider.Provider) {
	if err := registry.Close(chain); err != nil {
		slog.Warn("closing providers", "error", err)
	}
}
