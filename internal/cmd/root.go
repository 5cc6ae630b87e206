// Package cmd wires the lucid CLI. The normalization core stays pure;
// everything about flags, files, exit codes and styling lives here.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lucid-sh/lucid/internal/config"
	"github.com/lucid-sh/lucid/internal/pipeline"
)

var (
	flagFile        string
	flagNotation    bool
	flagInstruction bool
	flagJSON        bool
	flagAll         bool
	flagStrict      bool
	flagNoColor     bool
	verbose         bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

var rootCmd = &cobra.Command{
	Use:   "lucid [request]",
	Short: "lucid - turn vague requests into structured, ready-to-send instructions",
	Long: `lucid normalizes a natural-language request into a structured intent
record: goal, task type, audience, domain, hard and soft constraints,
output expectations, contradictions, and the assumptions applied.

The record is rendered two ways: a line-oriented @-tagged notation for
tools, and a compiled natural-language instruction ready to paste into
an AI chat. Normalization is fully rule-based and deterministic; no
network calls are made.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoot,
	// Usage on bad flags, not on normalization outcomes.
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", "read the request from a file")
	rootCmd.Flags().BoolVar(&flagNotation, "notation", false, "print the @-tagged notation (default)")
	rootCmd.Flags().BoolVar(&flagInstruction, "instruction", false, "print the compiled instruction")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "print the full intent record as JSON")
	rootCmd.Flags().BoolVar(&flagAll, "all", false, "print record, notation and instruction")
	rootCmd.Flags().BoolVar(&flagStrict, "strict", false, "exit 2 when a blocking conflict is found")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable styled output")
}

func runRoot(cmd *cobra.Command, args []string) error {
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	raw, err := readRequest(cmd, args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	mode := outputMode(cfg)
	logger.Debug("normalizing", "mode", mode, "bytes", len(raw))

	res := pipeline.Normalize(raw)
	logger.Debug("normalized",
		"task", res.Intent.TaskType,
		"conflicts", len(res.Intent.Conflicts),
		"clarify", res.Intent.RequiresClarification)

	if err := printResult(cmd.OutOrStdout(), res, mode, cfg.Color && !flagNoColor); err != nil {
		return err
	}

	if flagStrict && res.Intent.RequiresClarification {
		os.Exit(2)
	}
	return nil
}

// readRequest takes the request text from the argument, --file, or piped
// stdin, in that order.
func readRequest(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if flagFile != "" {
		data, err := os.ReadFile(flagFile)
		if err != nil {
			return "", fmt.Errorf("read request: %w", err)
		}
		return string(data), nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	return "", fmt.Errorf("no request given: pass it as an argument, via --file, or on stdin")
}

func outputMode(cfg *config.Config) string {
	switch {
	case flagAll:
		return config.OutputAll
	case flagJSON:
		return config.OutputJSON
	case flagInstruction:
		return config.OutputInstruction
	case flagNotation:
		return config.OutputNotation
	}
	return cfg.Output
}

func printResult(w io.Writer, res *pipeline.Result, mode string, color bool) error {
	switch mode {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Intent)

	case config.OutputInstruction:
		fmt.Fprintln(w, res.Instruction)
		return nil

	case config.OutputAll:
		heading := func(s string) string {
			if color {
				return styleHeading.Render(s)
			}
			return s
		}
		data, err := json.MarshalIndent(res.Intent, "", "  ")
		if err != nil {
			return err
		}
		sections := []string{
			heading("NOTATION") + "\n" + res.Notation,
			heading("INSTRUCTION") + "\n" + res.Instruction,
			heading("RECORD") + "\n" + string(data),
		}
		fmt.Fprintln(w, strings.Join(sections, "\n\n"))
		return nil

	default:
		fmt.Fprintln(w, res.Notation)
		return nil
	}
}
