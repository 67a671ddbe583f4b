// Package cli implements the cobra-based CLI commands for gen.
//
// The root command is the test input generator itself ("gen N M filename").
// The batch and count subcommands are defined in their own files. This file
// defines the root command, the global flags, and exit code handling.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/subpalindromes/internal/config"
	"github.com/shinji-kodama/subpalindromes/internal/generator"
	"github.com/shinji-kodama/subpalindromes/internal/model"
	"github.com/shinji-kodama/subpalindromes/internal/output"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	jsonOutput bool

	// verbose lowers the log level to debug.
	verbose bool

	// configPath names an optional settings file.
	configPath string

	// settings is resolved in PersistentPreRunE before any command runs.
	settings = &config.Settings{}
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// usageLine is printed after every usage error.
const usageLine = "Usage: gen N M filename"

// NewRootCommand creates and configures the root cobra command.
//
// Invoked with three positional arguments the root command generates one
// test input. The batch and count subcommands are registered here too.
func NewRootCommand() *cobra.Command {
	settings = &config.Settings{}

	rootCmd := &cobra.Command{
		Use:   "gen <N> <M> <filename>",
		Short: "Generate random lowercase test inputs for the subpalindromes exercise",
		Long: `gen writes a random string of N lowercase letters, drawn uniformly from the
first M letters of the alphabet, to filename. The file holds a single line:
the string, one space, and a newline. An existing file is overwritten.

  N  string length, an integer >= 1
  M  alphabet size, an integer in [1, 26]

Pass negative numbers after "--", e.g. gen -- -1 5 out.txt.

Examples:
  gen 5 1 out.txt           # writes "aaaaa \n"
  gen --seed 42 1000 3 case.txt
  gen batch cases.yaml
  gen count case.txt`,

		// Argument count is checked by ParseArgs so that a wrong count is
		// reported as a usage error with its own message.
		Args: cobra.ArbitraryArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initSettings(cmd)
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), args)
		},
	}

	// Any flag parse error (including a negative number read as a flag)
	// is a usage error.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return model.NewUsageError(err.Error())
	})

	// PersistentFlags are inherited by all subcommands.
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (yaml, json or toml)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for reproducible output (default: random)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default: warn)")

	rootCmd.AddCommand(NewBatchCommand())
	rootCmd.AddCommand(NewCountCommand())

	return rootCmd
}

// initSettings resolves settings and configures logging for this run.
func initSettings(cmd *cobra.Command) error {
	s, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	settings = s

	level := s.LogLevel
	if verbose {
		level = debugLevel
	}
	setupLogging(cmd.ErrOrStderr(), level)

	VerboseLog("Settings resolved (config=%q, seeded=%t)", configPath, s.HasSeed)
	return nil
}

// newSampler returns the configured random source: seeded when a seed was
// given, random otherwise.
func newSampler() generator.Sampler {
	if settings.HasSeed {
		return generator.NewSeededSampler(settings.Seed)
	}
	return generator.NewSampler()
}

// runGenerate is the main logic of the root command: parse, generate, write.
func runGenerate(w io.Writer, args []string) error {
	// Step 1: Validate the three positional arguments.
	params, err := ParseArgs(args)
	if err != nil {
		return err
	}

	// Step 2: Generate the string.
	content := generator.Generate(newSampler(), params.Length, params.AlphabetSize)
	VerboseLog("Generated %d characters from %q", params.Length, model.Alphabet(params.AlphabetSize))

	// Step 3: Write it all-or-nothing.
	if err := output.WriteFile(params.OutputPath, content); err != nil {
		return err
	}
	VerboseLog("Wrote %s", params.OutputPath)

	// Stdout stays empty in text mode; JSON mode prints a summary.
	if IsJSONOutput() {
		data, _ := json.Marshal(params)
		fmt.Fprintln(w, string(data))
	}
	return nil
}

// Execute runs the root command and exits the process with the resulting
// exit code. This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	os.Exit(Run(rootCmd, os.Args[1:]))
}

// Run executes rootCmd with args and translates the outcome into an exit
// code. CLIError types carry their own exit codes; other errors default to
// exit code 1. Errors are printed to the command's stderr.
func Run(rootCmd *cobra.Command, args []string) int {
	rootCmd.SetArgs(args)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return int(model.ExitSuccess)
	}

	stderr := rootCmd.ErrOrStderr()

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(stderr, cliErr.Kind, cliErr.Message, cliErr.Err)
		if cliErr.Kind == model.KindUsage && !IsJSONOutput() {
			printUsage(stderr, rootCmd, cmd)
		}
		return int(cliErr.Code)
	}

	// Generic error: exit with code 1.
	printError(stderr, "", err.Error(), nil)
	return int(model.ExitGeneralError)
}

// printUsage prints the one-line usage of the command that failed.
func printUsage(w io.Writer, rootCmd, cmd *cobra.Command) {
	if cmd == nil || cmd == rootCmd {
		fmt.Fprintln(w, usageLine)
		return
	}
	fmt.Fprintf(w, "Usage: %s\n", cmd.UseLine())
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(w io.Writer, kind model.ErrorKind, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"message": message,
		}
		if kind != "" {
			errObj["kind"] = kind.String()
		}
		if underlying != nil {
			errObj["detail"] = underlying.Error()
		}
		// Errors go to stderr even in JSON mode; stdout is reserved for
		// successful command output.
		data, _ := json.MarshalIndent(map[string]interface{}{"error": errObj}, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
