package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHasDocumentedValues(t *testing.T) {
	d := Default()
	assert.Equal(t, 4096, d.MaxMemoryMB)
	assert.Equal(t, "*", d.NodeLabels)
	assert.Equal(t, "*", d.EdgeTypes)
	assert.True(t, d.AutoReload)
	assert.Equal(t, 5, d.ReloadDebounceSec)
}

func TestValidateRejectsMissingSourceGraph(t *testing.T) {
	c := Default()
	err := c.Validate()
	assert.Error(t, err)
}

func TestValidateRejectsMemoryOutOfRange(t *testing.T) {
	c := Default()
	c.SourceGraph = "g"
	c.MaxMemoryMB = 10
	assert.Error(t, c.Validate())

	c.MaxMemoryMB = 200000
	assert.Error(t, c.Validate())
}

func TestValidateRejectsDebounceOutOfRange(t *testing.T) {
	c := Default()
	c.SourceGraph = "g"
	c.ReloadDebounceSec = -1
	assert.Error(t, c.Validate())

	c.ReloadDebounceSec = 4000
	assert.Error(t, c.Validate())
}

func TestValidateRejectsNonIdentifierNodeIDProperty(t *testing.T) {
	c := Default()
	c.SourceGraph = "g"
	c.NodeIDProperty = "not a valid ident"
	assert.Error(t, c.Validate())
}

func TestValidateAcceptsEmptyNodeIDProperty(t *testing.T) {
	c := Default()
	c.SourceGraph = "g"
	c.NodeIDProperty = ""
	assert.NoError(t, c.Validate())
}

func TestLoadLabelsWildcardMeansMatchAll(t *testing.T) {
	c := Default()
	assert.Nil(t, c.LoadLabels())
	assert.True(t, MatchesFilter(c.LoadLabels(), "Anything"))
}

func TestLoadLabelsCommaSeparatedList(t *testing.T) {
	c := Default()
	c.NodeLabels = "Person, Company,  Device"
	labels := c.LoadLabels()
	assert.Equal(t, []string{"Person", "Company", "Device"}, labels)
	assert.True(t, MatchesFilter(labels, "Person"))
	assert.False(t, MatchesFilter(labels, "Vehicle"))
}

func TestLoadFromYAMLFileMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "source_graph: prod\nnode_labels: Person,Company\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.SourceGraph)
	assert.Equal(t, "Person,Company", cfg.NodeLabels)
	assert.Equal(t, 4096, cfg.MaxMemoryMB, "unset fields should keep the default")
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "max_memory_mb: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
}
