// batch.go implements the "gen batch" command.
//
// The batch command writes every test input listed in a manifest file.
// The whole manifest is validated before the first file is written; after
// that, cases are written in order and the first I/O failure stops the run.

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/subpalindromes/internal/generator"
	"github.com/shinji-kodama/subpalindromes/internal/manifest"
	"github.com/shinji-kodama/subpalindromes/internal/model"
	"github.com/shinji-kodama/subpalindromes/internal/output"
)

// NewBatchCommand creates the "batch" cobra command.
func NewBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <manifest>",
		Short: "Generate every test input listed in a manifest",
		Long: `Generate a set of test inputs described by a manifest file.

The manifest format is chosen by extension: .json/.jsonc (comments allowed),
.yaml/.yml, or .hcl. It lists named cases with their N and M, plus an
optional seed and output directory:

  seed: 42          # case i uses seed+i
  dir: cases        # relative to the manifest
  cases:
    - {name: small.txt, length: 10, alphabet_size: 2}
    - {name: large.txt, length: 100000, alphabet_size: 26}

A manifest without a seed uses --seed (or the settings file) when given.

Examples:
  gen batch cases.yaml
  gen batch --json cases.hcl`,

		Args: exactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}

	return cmd
}

func runBatch(ctx context.Context, w io.Writer, manifestPath string) error {
	// Step 1: Load and validate the whole manifest up front.
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	if m.Seed == nil && settings.HasSeed {
		seed := settings.Seed
		m.Seed = &seed
	}
	plan := m.Plan()
	VerboseLog("Loaded %d cases from %s (output dir %s)", len(plan), manifestPath, m.OutputDir())

	// Step 2: Write cases in order.
	written := make([]model.Params, 0, len(plan))
	for i, p := range plan {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Case names may contain subdirectories; create them like any
		// other part of the output directory.
		dir := filepath.Dir(p.OutputPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return model.WrapIOError(fmt.Sprintf("cannot create %s", dir), err)
		}

		var sampler generator.Sampler
		if seed, ok := m.SeedFor(i); ok {
			sampler = generator.NewSeededSampler(seed)
		} else {
			sampler = generator.NewSampler()
		}

		content := generator.Generate(sampler, p.Length, p.AlphabetSize)
		if err := output.WriteFile(p.OutputPath, content); err != nil {
			return err
		}
		VerboseLog("Wrote %s (N=%d, M=%d)", p.OutputPath, p.Length, p.AlphabetSize)

		written = append(written, p)
	}

	// Step 3: Report.
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]interface{}{"files": written}, "", "  ")
		fmt.Fprintln(w, string(data))
		return nil
	}
	for _, p := range written {
		fmt.Fprintf(w, "wrote %s (N=%d, M=%d)\n", p.OutputPath, p.Length, p.AlphabetSize)
	}
	return nil
}
