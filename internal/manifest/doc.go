// Package manifest loads batch descriptions of test inputs.
//
// A manifest lists named cases, each with its own N (length) and M
// (alphabet size), plus an optional seed and output directory. Three
// encodings are accepted, selected by file extension:
//   - .json / .jsonc: JSON with comments, stripped with github.com/tidwall/jsonc
//   - .yaml / .yml: decoded with gopkg.in/yaml.v3
//   - .hcl: decoded with github.com/hashicorp/hcl/v2 (one "case" block per case)
//
// Every case is validated before any file is written, so a bad manifest
// never produces a partial batch.
package manifest
