package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/subpalindromes/internal/model"
)

// Manifest is the decoded form of a batch file.
type Manifest struct {
	// Seed makes the whole batch reproducible. Case i uses Seed+i, so a
	// single case can be regenerated on its own. Nil means random.
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty" hcl:"seed,optional"`

	// Dir is the output directory. Relative paths are resolved against the
	// directory containing the manifest; empty means that directory itself.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty" hcl:"dir,optional"`

	// Cases lists the test inputs to generate, in write order.
	Cases []Case `json:"cases" yaml:"cases" hcl:"case,block"`

	// baseDir is the directory of the manifest file, set by Load.
	baseDir string
}

// Case describes one generated file.
type Case struct {
	// Name is the output file name, relative to the manifest's Dir.
	Name string `json:"name" yaml:"name" hcl:"name,label"`

	// Length is N.
	Length int `json:"length" yaml:"length" hcl:"length"`

	// AlphabetSize is M.
	AlphabetSize int `json:"alphabet_size" yaml:"alphabet_size" hcl:"alphabet_size"`
}

// Load reads and validates the manifest at path. The decoder is chosen by
// file extension. Read and parse failures are KindInput errors; invalid
// case values are KindDomain errors.
func Load(path string) (*Manifest, error) {
	var (
		m   *Manifest
		err error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", ".jsonc":
		m, err = loadJSON(path)
	case ".yaml", ".yml":
		m, err = loadYAML(path)
	case ".hcl":
		m, err = loadHCL(path)
	default:
		return nil, model.WrapInputError(
			fmt.Sprintf("unsupported manifest format %q", ext),
			fmt.Errorf("expected .json, .jsonc, .yaml, .yml or .hcl"))
	}
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, model.WrapInputError(fmt.Sprintf("cannot resolve %s", path), err)
	}
	m.baseDir = filepath.Dir(abs)

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func readManifest(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapInputError(fmt.Sprintf("cannot read manifest %s", path), err)
	}
	return data, nil
}

func loadJSON(path string) (*Manifest, error) {
	data, err := readManifest(path)
	if err != nil {
		return nil, err
	}

	// Strip comments and trailing commas first; encoding/json does the rest.
	var m Manifest
	if err := json.Unmarshal(jsonc.ToJSON(data), &m); err != nil {
		return nil, model.WrapInputError(fmt.Sprintf("cannot parse manifest %s", path), err)
	}
	return &m, nil
}

func loadYAML(path string) (*Manifest, error) {
	data, err := readManifest(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, model.WrapInputError(fmt.Sprintf("cannot parse manifest %s", path), err)
	}
	return &m, nil
}

func loadHCL(path string) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, model.WrapInputError(fmt.Sprintf("cannot parse manifest %s", path), diags)
	}

	var m Manifest
	if diags := gohcl.DecodeBody(file.Body, nil, &m); diags.HasErrors() {
		return nil, model.WrapInputError(fmt.Sprintf("cannot decode manifest %s", path), diags)
	}
	return &m, nil
}

// Validate checks every case. Names must be non-empty, unique, and local
// to the output directory; N and M follow the same domain rules as the
// command line.
func (m *Manifest) Validate() error {
	if len(m.Cases) == 0 {
		return model.WrapInputError("manifest has no cases", nil)
	}

	seen := make(map[string]int, len(m.Cases))
	for i, c := range m.Cases {
		if c.Name == "" {
			return model.WrapInputError(fmt.Sprintf("case #%d: name must not be empty", i+1), nil)
		}
		if !filepath.IsLocal(c.Name) {
			return model.WrapInputError(
				fmt.Sprintf("case %q: name must be a relative path inside the output directory", c.Name), nil)
		}

		key := filepath.Clean(c.Name)
		if prev, ok := seen[key]; ok {
			return model.WrapInputError(
				fmt.Sprintf("case %q: duplicates case #%d", c.Name, prev+1), nil)
		}
		seen[key] = i

		p := model.Params{Length: c.Length, AlphabetSize: c.AlphabetSize}
		if err := p.Validate(); err != nil {
			return model.NewDomainError(fmt.Sprintf("case %q: %s", c.Name, err.Error()))
		}
	}
	return nil
}

// OutputDir returns the absolute directory case files are written to.
func (m *Manifest) OutputDir() string {
	if filepath.IsAbs(m.Dir) {
		return m.Dir
	}
	return filepath.Join(m.baseDir, m.Dir)
}

// Plan resolves every case into validated generator parameters.
func (m *Manifest) Plan() []model.Params {
	dir := m.OutputDir()

	plan := make([]model.Params, 0, len(m.Cases))
	for _, c := range m.Cases {
		plan = append(plan, model.Params{
			Length:       c.Length,
			AlphabetSize: c.AlphabetSize,
			OutputPath:   filepath.Join(dir, c.Name),
		})
	}
	return plan
}

// SeedFor returns the seed for case i, or false when the batch is random.
func (m *Manifest) SeedFor(i int) (uint64, bool) {
	if m.Seed == nil {
		return 0, false
	}
	return *m.Seed + uint64(i), true
}
