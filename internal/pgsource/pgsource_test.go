package pgsource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeIdentAcceptsAlphanumericUnderscore(t *testing.T) {
	assert.NoError(t, SanitizeIdent("knowledge_graph"))
	assert.NoError(t, SanitizeIdent("Graph1"))
}

func TestSanitizeIdentRejectsEmpty(t *testing.T) {
	assert.Error(t, SanitizeIdent(""))
}

func TestSanitizeIdentRejectsSQLMetacharacters(t *testing.T) {
	assert.Error(t, SanitizeIdent("g; DROP TABLE x"))
	assert.Error(t, SanitizeIdent(`g"."other`))
	assert.Error(t, SanitizeIdent("g-1"))
}

func TestExtractJSONStringReturnsValueWhenPresent(t *testing.T) {
	v, ok := extractJSONString(`{"app_id": "c_42", "other": 1}`, "app_id")
	assert.True(t, ok)
	assert.Equal(t, "c_42", v)
}

func TestExtractJSONStringMissingKey(t *testing.T) {
	_, ok := extractJSONString(`{"other": 1}`, "app_id")
	assert.False(t, ok)
}

func TestExtractJSONStringMalformedJSON(t *testing.T) {
	_, ok := extractJSONString(`not json`, "app_id")
	assert.False(t, ok)
}

func TestExtractJSONStringNonStringValue(t *testing.T) {
	_, ok := extractJSONString(`{"app_id": 42}`, "app_id")
	assert.False(t, ok)
}
