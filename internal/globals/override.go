package globals

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideDocument is the shape of the override file named by
// `--config-file`: a `globals:` map of name to writability plus a
// `writable-globals:` shorthand list for names that are simply
// writable=true, mirroring how quick-lint-js's own
// --config-file global overrides separate "declared" from "writable".
type overrideDocument struct {
	Globals         map[string]bool `yaml:"globals"`
	WritableGlobals []string        `yaml:"writable-globals"`
}

// LoadOverrideFile reads a YAML document of additional globals from
// path and returns a new Set combining base with the overrides, base
// left untouched. Per spec.md §1's note that configuration-file loading
// is a real, wired external collaborator, not a stub.
func LoadOverrideFile(path string, base *Set) (*Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("globals: reading override file: %w", err)
	}

	var doc overrideDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("globals: parsing override file %s: %w", path, err)
	}

	result := base.Clone()
	for name, writable := range doc.Globals {
		if writable {
			result.addWritable(name)
		} else {
			result.addReadonly(name)
		}
	}
	result.addWritable(doc.WritableGlobals...)
	return result, nil
}
