package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/subpalindromes/internal/model"
)

// ParseArgs converts the generator's positional arguments into validated
// Params. It expects exactly three tokens: N, M and the output path.
//
// A wrong token count is a usage error. A non-integer or out-of-range N or
// M is a domain error. Both map to exit code 1. ParseArgs produces no
// output.
func ParseArgs(args []string) (model.Params, error) {
	if len(args) != 3 {
		return model.Params{}, model.NewUsageError(
			fmt.Sprintf("wrong number of arguments: expected 3, got %d", len(args)))
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return model.Params{}, model.NewDomainError(fmt.Sprintf("Domain error: N must be an integer (got %q)", args[0]))
	}
	m, err := strconv.Atoi(args[1])
	if err != nil {
		return model.Params{}, model.NewDomainError(fmt.Sprintf("Domain error: M must be an integer (got %q)", args[1]))
	}

	params := model.Params{Length: n, AlphabetSize: m, OutputPath: args[2]}
	if err := params.Validate(); err != nil {
		return model.Params{}, err
	}
	return params, nil
}

// exactArgs is cobra.ExactArgs with a usage error in place of cobra's
// plain error, so a wrong count exits through the same path as the root
// command.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return model.NewUsageError(fmt.Sprintf("%s: expected %d argument(s), got %d",
				cmd.CommandPath(), n, len(args)))
		}
		return nil
	}
}

// maxArgs is cobra.MaximumNArgs with a usage error.
func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return model.NewUsageError(fmt.Sprintf("%s: expected at most %d argument(s), got %d",
				cmd.CommandPath(), n, len(args)))
		}
		return nil
	}
}
