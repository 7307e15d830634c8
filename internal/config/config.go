package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ReferencePolicy controls how dangling cross-references are handled at build time.
type ReferencePolicy string

const (
	// ReferencesDrop silently omits unresolved ids from rendered output.
	// This matches the historical page behavior and is the default.
	ReferencesDrop ReferencePolicy = "drop"
	// ReferencesStrict fails the build listing every unresolved id.
	ReferencesStrict ReferencePolicy = "strict"
)

// PlaceholderPolicy controls how missing template placeholder tokens are handled.
type PlaceholderPolicy string

const (
	// PlaceholdersStrict fails the build when a required token is absent.
	PlaceholdersStrict PlaceholderPolicy = "strict"
	// PlaceholdersLenient only warns; the corresponding section is silently
	// absent from output (historical behavior).
	PlaceholdersLenient PlaceholderPolicy = "lenient"
)

// Config represents the application configuration.
type Config struct {
	Data     DataConfig    `yaml:"data"`
	Template string        `yaml:"template"`
	Output   OutputConfig  `yaml:"output"`
	Render   RenderConfig  `yaml:"render"`
	Preview  PreviewConfig `yaml:"preview"`
}

// DataConfig locates the record documents.
type DataConfig struct {
	Directory string `yaml:"directory"`
}

// OutputConfig locates the composed page and build report.
type OutputConfig struct {
	File string `yaml:"file"`
}

// RenderConfig holds the render policies and prose mode.
type RenderConfig struct {
	References   ReferencePolicy   `yaml:"references"`
	Placeholders PlaceholderPolicy `yaml:"placeholders"`
	Markdown     bool              `yaml:"markdown"`
}

// PreviewConfig configures the local preview server.
type PreviewConfig struct {
	Port     int      `yaml:"port"`
	Debounce Duration `yaml:"debounce"`
}

// Duration wraps time.Duration so YAML values like "300ms" or "2s" parse.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler via time.ParseDuration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}
	data, err := os.ReadFile(configPath) // #nosec G304 -- operator-supplied path
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Data.Directory == "" {
		c.Data.Directory = "./data"
	}
	if c.Template == "" {
		c.Template = "./template.html"
	}
	if c.Output.File == "" {
		c.Output.File = "./output/hautu-waka.html"
	}
	if c.Render.References == "" {
		c.Render.References = ReferencesDrop
	}
	if c.Render.Placeholders == "" {
		c.Render.Placeholders = PlaceholdersStrict
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = 8080
	}
	if c.Preview.Debounce == 0 {
		c.Preview.Debounce = Duration(300 * time.Millisecond)
	}
}

func (c *Config) validate() error {
	switch ReferencePolicy(strings.ToLower(string(c.Render.References))) {
	case ReferencesDrop, ReferencesStrict:
		c.Render.References = ReferencePolicy(strings.ToLower(string(c.Render.References)))
	default:
		return fmt.Errorf("invalid render.references %q, valid options: [drop strict]", c.Render.References)
	}
	switch PlaceholderPolicy(strings.ToLower(string(c.Render.Placeholders))) {
	case PlaceholdersStrict, PlaceholdersLenient:
		c.Render.Placeholders = PlaceholderPolicy(strings.ToLower(string(c.Render.Placeholders)))
	default:
		return fmt.Errorf("invalid render.placeholders %q, valid options: [strict lenient]", c.Render.Placeholders)
	}
	return nil
}

// Default returns a configuration with all defaults applied, for callers that
// run without a config file (tests, ad-hoc preview).
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

const exampleConfig = `# wakabuild configuration
data:
  directory: ./data        # holds intro.json, stages.json, tools.json, muscles.json, sources.json
template: ./template.html  # page template with the five placeholder tokens
output:
  file: ./output/hautu-waka.html
render:
  references: drop         # drop | strict (fail on dangling stage/tool references)
  placeholders: strict     # strict | lenient (lenient reproduces the legacy silent behavior)
  markdown: false          # render prose fields (descriptions, intro sections) as markdown
preview:
  port: 8080
  debounce: 300ms
`

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	// #nosec G306 -- configuration is not sensitive
	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
