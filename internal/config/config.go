package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds project-level settings loaded from colmerge.yml.
// Command-line flags override any value set here.
type ProjectConfig struct {
	Inputs    []string `yaml:"inputs,omitempty"`
	Format    string   `yaml:"format,omitempty"`
	Delimiter string   `yaml:"delimiter,omitempty"`
	TrimSpace bool     `yaml:"trimSpace,omitempty"`
	Output    string   `yaml:"output,omitempty"`
	Verbose   bool     `yaml:"verbose,omitempty"`
}

// Load attempts to read colmerge.yml or colmerge.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"colmerge.yml", "colmerge.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}
