package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/subpalindromes/internal/model"
)

// runCLI executes a fresh root command in-process and returns its exit code
// and captured output.
func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))

	if args == nil {
		args = []string{}
	}
	code := Run(cmd, args)
	return code, stdout.String(), stderr.String()
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// TestParseArgs verifies token count, integer parsing and domain checks.
func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		want     model.Params
		wantKind model.ErrorKind
	}{
		{"valid", []string{"5", "1", "out.txt"}, model.Params{Length: 5, AlphabetSize: 1, OutputPath: "out.txt"}, ""},
		{"upper bounds", []string{"1", "26", "x"}, model.Params{Length: 1, AlphabetSize: 26, OutputPath: "x"}, ""},
		{"no args", []string{}, model.Params{}, model.KindUsage},
		{"two args", []string{"5", "1"}, model.Params{}, model.KindUsage},
		{"four args", []string{"5", "1", "out.txt", "extra"}, model.Params{}, model.KindUsage},
		{"N zero", []string{"0", "1", "out.txt"}, model.Params{}, model.KindDomain},
		{"N negative", []string{"-3", "1", "out.txt"}, model.Params{}, model.KindDomain},
		{"M zero", []string{"5", "0", "out.txt"}, model.Params{}, model.KindDomain},
		{"M 27", []string{"5", "27", "out.txt"}, model.Params{}, model.KindDomain},
		{"N not a number", []string{"five", "1", "out.txt"}, model.Params{}, model.KindDomain},
		{"M not a number", []string{"5", "1.5", "out.txt"}, model.Params{}, model.KindDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args)
			if tt.wantKind == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			var cliErr *model.CLIError
			require.True(t, errors.As(err, &cliErr))
			assert.Equal(t, tt.wantKind, cliErr.Kind)
			assert.Equal(t, model.ExitGeneralError, cliErr.Code)
		})
	}
}

// TestGenerate_ConcreteScenario checks N=5, M=1 produces exactly "aaaaa \n"
// with no output on stdout.
func TestGenerate_ConcreteScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	code, stdout, stderr := runCLI(t, "", "5", "1", path)

	assert.Equal(t, 0, code, stderr)
	assert.Empty(t, stdout)
	assert.Equal(t, "aaaaa \n", readFile(t, path))
}

// TestGenerate_DomainBoundaries covers the accepted edges of N and M and
// the file layout [a-<M-th letter>]{N} followed by " \n".
func TestGenerate_DomainBoundaries(t *testing.T) {
	tests := []struct {
		n, m    string
		pattern string
	}{
		{"1", "1", `^a \n$`},
		{"1", "26", `^[a-z] \n$`},
		{"40", "3", `^[a-c]{40} \n$`},
		{"200", "26", `^[a-z]{200} \n$`},
	}

	for _, tt := range tests {
		t.Run("N="+tt.n+",M="+tt.m, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.txt")

			code, _, stderr := runCLI(t, "", tt.n, tt.m, path)

			require.Equal(t, 0, code, stderr)
			assert.Regexp(t, regexp.MustCompile(tt.pattern), readFile(t, path))
		})
	}
}

// TestGenerate_RejectedArguments verifies exit code 1, a message on stderr,
// and that an existing output file is left untouched.
func TestGenerate_RejectedArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    func(path string) []string
		wantMsg string
	}{
		{"two args", func(p string) []string { return []string{"5", p} }, "Usage: gen N M filename"},
		{"four args", func(p string) []string { return []string{"5", "1", p, "extra"} }, "Usage: gen N M filename"},
		{"N zero", func(p string) []string { return []string{"0", "1", p} }, "Domain error"},
		{"M zero", func(p string) []string { return []string{"5", "0", p} }, "Domain error"},
		{"M 27", func(p string) []string { return []string{"5", "27", p} }, "Domain error"},
		{"N not integer", func(p string) []string { return []string{"x", "1", p} }, "Domain error"},
		{"negative N read as flag", func(p string) []string { return []string{"-1", "5", p} }, "Usage: gen N M filename"},
		{"negative N after --", func(p string) []string { return []string{"--", "-1", "5", p} }, "Domain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.txt")
			require.NoError(t, os.WriteFile(path, []byte("previous\n"), 0o644))

			code, stdout, stderr := runCLI(t, "", tt.args(path)...)

			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.wantMsg)
			assert.Equal(t, "previous\n", readFile(t, path), "output file must not change")
		})
	}
}

// TestGenerate_RejectedArgumentsCreateNothing verifies that a rejected
// invocation does not create the output file.
func TestGenerate_RejectedArgumentsCreateNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	code, _, _ := runCLI(t, "", "0", "1", path)

	assert.Equal(t, 1, code)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

// TestGenerate_IOError verifies that an unwritable path exits with the I/O
// exit code.
func TestGenerate_IOError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")

	code, _, stderr := runCLI(t, "", "5", "2", path)

	assert.Equal(t, int(model.ExitIOError), code)
	assert.Contains(t, stderr, "cannot write")
}

// TestGenerate_Seed verifies that --seed makes output reproducible.
func TestGenerate_Seed(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")

	code, _, _ := runCLI(t, "", "--seed", "42", "300", "26", a)
	require.Equal(t, 0, code)
	code, _, _ = runCLI(t, "", "--seed", "42", "300", "26", b)
	require.Equal(t, 0, code)

	assert.Equal(t, readFile(t, a), readFile(t, b))
}

// TestGenerate_ConfigSeed verifies that a seed in the settings file is used
// and that --seed overrides it.
func TestGenerate_ConfigSeed(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "gen.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("seed: 42\n"), 0o644))

	fromFile := filepath.Join(dir, "file.txt")
	fromFlag := filepath.Join(dir, "flag.txt")
	other := filepath.Join(dir, "other.txt")

	code, _, stderr := runCLI(t, "", "--config", cfg, "300", "26", fromFile)
	require.Equal(t, 0, code, stderr)
	code, _, _ = runCLI(t, "", "--seed", "42", "300", "26", fromFlag)
	require.Equal(t, 0, code)
	code, _, _ = runCLI(t, "", "--config", cfg, "--seed", "43", "300", "26", other)
	require.Equal(t, 0, code)

	assert.Equal(t, readFile(t, fromFlag), readFile(t, fromFile))
	assert.NotEqual(t, readFile(t, fromFile), readFile(t, other))
}

// TestGenerate_BadConfig verifies that an unreadable settings file is an
// input error.
func TestGenerate_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	code, _, stderr := runCLI(t, "", "--config", filepath.Join(t.TempDir(), "absent.yaml"), "5", "1", path)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "cannot load settings")
}

// TestGenerate_JSON verifies the JSON summary and JSON error formats.
func TestGenerate_JSON(t *testing.T) {
	t.Run("summary", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")

		code, stdout, _ := runCLI(t, "", "--json", "4", "2", path)
		require.Equal(t, 0, code)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(stdout), &got))
		assert.Equal(t, path, got["path"])
		assert.Equal(t, float64(4), got["length"])
		assert.Equal(t, float64(2), got["alphabetSize"])
	})

	t.Run("error", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "", "--json", "5", "27", "out.txt")
		require.Equal(t, 1, code)
		assert.Empty(t, stdout)

		var got map[string]map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(stderr), &got))
		assert.Equal(t, "domain", got["error"]["kind"])
		assert.Contains(t, got["error"]["message"], "M must be in [1, 26]")
	})
}

// TestGenerate_Verbose verifies that debug logs go to stderr only.
func TestGenerate_Verbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	code, stdout, stderr := runCLI(t, "", "-v", "3", "1", path)

	require.Equal(t, 0, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Wrote "+path)
	assert.Equal(t, "aaa \n", readFile(t, path))
}

// TestGenerate_QuietByDefault verifies that a successful default run
// prints nothing at all.
func TestGenerate_QuietByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	code, stdout, stderr := runCLI(t, "", "3", "1", path)

	require.Equal(t, 0, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}
