package viewkit

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file form of a Manager's configuration.
//
//	engine: mustache
//	template: index
//	extension: mustache
//	paths:
//	  - ./views/theme
//	  - ./views/default
//	options:
//	  helpers: {}
//	data:
//	  title: Welcome
type Config struct {
	Engine    string         `yaml:"engine"`
	Template  string         `yaml:"template"`
	Extension string         `yaml:"extension"`
	Paths     []string       `yaml:"paths"`
	Options   map[string]any `yaml:"options"`
	Data      map[string]any `yaml:"data"`
}

// ParseConfig decodes a YAML (or JSON) configuration document.
func ParseConfig(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, NewConfigError(ErrMsgConfigParse, "", err)
	}
	return &cfg, nil
}

// LoadConfig reads and decodes the configuration file at path.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError(ErrMsgConfigRead, path, err)
	}
	cfg, err := ParseConfig(raw)
	if err != nil {
		return nil, NewConfigError(ErrMsgConfigParse, path, err)
	}
	return cfg, nil
}

// Apply copies the configuration onto m. Empty fields leave the manager's
// current value alone; paths are appended and options and data are merged.
// Data keys are validated as for Manager.MergeData.
func (c *Config) Apply(m *Manager) error {
	if c.Engine != "" {
		if err := m.UseEngine(c.Engine); err != nil {
			return err
		}
	}
	if c.Template != "" {
		m.SetTemplate(c.Template)
	}
	if c.Extension != "" {
		m.SetExtension(c.Extension)
	}
	m.AddPaths(c.Paths)
	m.MergeOptions(c.Options)
	return m.MergeData(c.Data)
}
