// count.go implements the "gen count" command.
//
// The count command is the consumer side of a generated test input: it reads
// the source string and prints, for every position, how many odd-length and
// even-length palindromes are centred there. Output is a text report in the
// driver's block layout, JSON (--json), or YAML (--yaml).

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/subpalindromes/internal/model"
	"github.com/shinji-kodama/subpalindromes/internal/subpali"
)

// countFlags holds the flag values for the count command.
type countFlags struct {
	algorithm string // --algorithm: manacher or trivial
	yaml      bool   // --yaml: YAML report
}

// algorithms maps --algorithm values to implementations.
var algorithms = map[string]subpali.Algorithm{
	"manacher": subpali.Manacher,
	"trivial":  subpali.Trivial,
}

// NewCountCommand creates the "count" cobra command.
func NewCountCommand() *cobra.Command {
	flags := &countFlags{}

	cmd := &cobra.Command{
		Use:   "count [file|-]",
		Short: "Count subpalindromes at every position of a test input",
		Long: `Read a test input and report, for every position, the number of odd-length
palindromes centred there and the number of even-length palindromes whose
right centre it is.

The first whitespace-separated token of the input is used, so files written
by gen (with their trailing space and newline) are read as-is. With no
argument or "-", the input is read from stdin.

Examples:
  gen count case.txt
  gen count --algorithm trivial case.txt
  echo abba | gen count --json`,

		Args: maxArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			return runCount(cmd.InOrStdin(), cmd.OutOrStdout(), source, flags)
		},
	}

	cmd.Flags().StringVar(&flags.algorithm, "algorithm", "manacher",
		"Counting algorithm: manacher or trivial")
	cmd.Flags().BoolVar(&flags.yaml, "yaml", false, "Output in YAML format")

	return cmd
}

// countReport is the JSON/YAML document printed by the count command.
type countReport struct {
	Source    string          `json:"source" yaml:"source"`
	Positions []countPosition `json:"positions" yaml:"positions"`
	Total     int             `json:"total" yaml:"total"`
}

type countPosition struct {
	Position int `json:"position" yaml:"position"`
	Odd      int `json:"odd" yaml:"odd"`
	Even     int `json:"even" yaml:"even"`
}

func runCount(stdin io.Reader, stdout io.Writer, source string, flags *countFlags) error {
	algo, ok := algorithms[flags.algorithm]
	if !ok {
		return model.NewUsageError(fmt.Sprintf("unknown algorithm %q: valid values are manacher, trivial", flags.algorithm))
	}

	s, err := readSource(stdin, source)
	if err != nil {
		return err
	}
	VerboseLog("Counting subpalindromes of %d characters with %s", len(s), flags.algorithm)

	infos := algo(s)

	switch {
	case IsJSONOutput():
		data, _ := json.MarshalIndent(newCountReport(s, infos), "", "  ")
		fmt.Fprintln(stdout, string(data))
	case flags.yaml:
		data, err := yaml.Marshal(newCountReport(s, infos))
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Fprint(stdout, string(data))
	default:
		printCountText(stdout, infos)
	}
	return nil
}

// readSource returns the first whitespace-separated token of the named
// input ("-" for stdin).
func readSource(stdin io.Reader, source string) (string, error) {
	var (
		data []byte
		err  error
	)
	if source == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return "", model.WrapInputError(fmt.Sprintf("cannot read %s", source), err)
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return "", model.WrapInputError(fmt.Sprintf("%s contains no source string", source), nil)
	}
	return fields[0], nil
}

func newCountReport(s string, infos []subpali.Info) countReport {
	report := countReport{
		Source:    s,
		Positions: make([]countPosition, 0, len(infos)),
		Total:     subpali.Total(infos),
	}
	for i, info := range infos {
		report.Positions = append(report.Positions, countPosition{Position: i, Odd: info.Odd, Even: info.Even})
	}
	return report
}

// printCountText prints one block per position:
//
//	Position 0
//	Odd-length subpalindromes count: 1
//	Even-length subpalindromes count: 0
func printCountText(w io.Writer, infos []subpali.Info) {
	for i, info := range infos {
		fmt.Fprintf(w, "Position %d\n", i)
		fmt.Fprintf(w, "Odd-length subpalindromes count: %d\n", info.Odd)
		fmt.Fprintf(w, "Even-length subpalindromes count: %d\n", info.Even)
		fmt.Fprintln(w)
	}
}
