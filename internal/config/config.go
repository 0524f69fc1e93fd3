// Package config defines the GUC-equivalent knobs spec.md §6 enumerates
// (source_graph, max_memory_mb, node_id_property, node_labels, edge_types,
// auto_reload, reload_debounce_sec), loadable from YAML and validated with
// go-playground/validator struct tags plus a hand-written identifier-shape
// check on node_id_property that the tags can't express.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Config holds one graph's worth of knobs. A deployment with several
// source_graph values runs one Config per graph_name.
type Config struct {
	SourceGraph       string `yaml:"source_graph" validate:"required"`
	MaxMemoryMB       int    `yaml:"max_memory_mb" validate:"min=64,max=131072"`
	NodeIDProperty    string `yaml:"node_id_property"`
	NodeLabels        string `yaml:"node_labels"`
	EdgeTypes         string `yaml:"edge_types"`
	AutoReload        bool   `yaml:"auto_reload"`
	ReloadDebounceSec int    `yaml:"reload_debounce_sec" validate:"min=0,max=3600"`
}

// Default returns a Config with spec.md's documented defaults, ready for a
// caller to override SourceGraph (required, no default) and re-validate.
func Default() Config {
	return Config{
		MaxMemoryMB:       4096,
		NodeLabels:        "*",
		EdgeTypes:         "*",
		AutoReload:        true,
		ReloadDebounceSec: 5,
	}
}

var structValidator = validator.New()

// Validate runs struct-tag validation plus the identifier-shape checks the
// tags can't express: node_id_property must be empty or a plain identifier,
// per the sanitization the original source enforces on user-controlled
// column names.
func (c Config) Validate() error {
	if err := structValidator.Struct(c); err != nil {
		return formatValidationError(err)
	}

	if c.NodeIDProperty != "" && !identPattern.MatchString(c.NodeIDProperty) {
		return fmt.Errorf("config: node_id_property %q is not a plain identifier", c.NodeIDProperty)
	}

	return nil
}

// LoadLabels parses NodeLabels into the filter set pgsource's catalog scan
// matches against, per the label/edge-type filter rules spec.md §9
// supplements: "*" or empty means all, otherwise a comma-separated list.
func (c Config) LoadLabels() []string {
	return parseFilter(c.NodeLabels)
}

// LoadEdgeTypes parses EdgeTypes the same way as LoadLabels.
func (c Config) LoadEdgeTypes() []string {
	return parseFilter(c.EdgeTypes)
}

func parseFilter(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "*" {
		return nil // nil means "match everything" to MatchesFilter
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// MatchesFilter reports whether name passes a label/edge-type filter
// produced by LoadLabels/LoadEdgeTypes (nil or empty filter matches
// everything), mirroring the original's matches_filter.
func MatchesFilter(filter []string, name string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		if f == name {
			return true
		}
	}
	return false
}

// Load reads and validates a Config from a YAML file at path, merging onto
// Default() so unset fields keep their documented defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func formatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %s validation", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
}
