package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rhuss/mathsolver/pkg/api"
	"github.com/rhuss/mathsolver/pkg/debug"
	"github.com/rhuss/mathsolver/pkg/engine"
	"github.com/rhuss/mathsolver/pkg/provider/registry"
)

var (
	jsonOutput bool
	verbose    bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question...]",
	Short: "Solve a question from the command line",
	Long: `Solve a question from the command line.

With arguments, the arguments joined by spaces are the question. Without
arguments the question is read from stdin when it is piped, or questions
are read one per line from an interactive prompt.

Examples:
  mathsolver ask "integrate x^2 from 0 to 3"
  echo "solve 2x + 3 = 7" | mathsolver ask --json
  mathsolver ask --verbose`,
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit JSON output")
	askCmd.Flags().BoolVar(&verbose, "verbose", false, "log every provider attempt")
}

func runAsk(cmd *cobra.Command, args []string) error {
	if verbose {
		debug.Init(os.Stderr, cfg.Observability.Debug, "DEBUG")
	} else {
		debug.Init(os.Stderr, cfg.Observability.Debug, "ERROR")
	}

	chain, err := registry.Build(cfg.Providers)
	if err != nil {
		return exitWithCode(ExitConfig, fmt.Errorf("building providers: %w", err))
	}
	defer closeProviders(chain)

	var opts []engine.Option
	if !verbose {
		opts = append(opts, engine.WithLogger(slog.New(slog.DiscardHandler)))
	}
	eng := engine.New(chain, opts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()

	if len(args) > 0 {
		return ask(ctx, eng, out, strings.Join(args, " "))
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return exitWithCode(ExitConfig, fmt.Errorf("reading stdin: %w", err))
		}
		return ask(ctx, eng, out, string(data))
	}

	return interactive(ctx, eng, cmd.InOrStdin(), out)
}

// interactive reads one question per line until EOF, "exit" or "quit".
// Failures are printed and the loop continues.
func interactive(ctx context.Context, eng *engine.Engine, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "mathsolver %s (providers: %s). Type \"exit\" to quit.\n",
		version, strings.Join(eng.Providers(), ", "))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		if err := ask(ctx, eng, out, line); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", unwrapExit(err))
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// ask solves one question and prints the outcome. Unsolved questions
// return an exit error so scripts can detect them.
func ask(ctx context.Context, eng *engine.Engine, out io.Writer, question string) error {
	if err := api.ValidateSolveRequest(&api.SolveRequest{Question: question}); err != nil {
		if jsonOutput {
			logWriteError(writeJSON(out, err.Response()))
		}
		return exitWithCode(ExitConfig, err)
	}

	outcome := eng.Solve(ctx, question)

	if verbose {
		for _, a := range outcome.Attempts {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", a.Provider, a.Failure.Error())
		}
	}

	if !outcome.Solved() {
		if jsonOutput {
			logWriteError(writeJSON(out, api.ErrorResponse{Error: api.MsgAllProvidersFailed}))
		}
		return exitWithCode(ExitUnsolved, &engine.ExhaustedError{Attempts: outcome.Attempts})
	}

	if jsonOutput {
		if err := writeJSON(out, api.SolveResponse{Result: outcome.Text, Provider: outcome.Provider}); err != nil {
			return fmt.Errorf("writing answer: %w", err)
		}
		return nil
	}

	fmt.Fprintln(out, outcome.Text)
	if verbose {
		fmt.Fprintf(os.Stderr, "  answered by %s\n", outcome.Provider)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// logWriteError reports an output failure that must not mask the exit code.
func logWriteError(err error) {
	if err != nil {
		slog.Error("writing JSON output", "error", err)
	}
}

func unwrapExit(err error) error {
	if e, ok := err.(*exitError); ok {
		return e.err
	}
	return err
}
