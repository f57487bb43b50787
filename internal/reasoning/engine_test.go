package reasoning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault_EmbeddedCatalog(t *testing.T) {
	engine, err := LoadDefault()
	require.NoError(t, err)

	assert.NotEmpty(t, engine.ChainTemplateNames())
	assert.NotEmpty(t, engine.TreeTemplateNames())
	assert.NotEmpty(t, engine.FewShotCategories())
	assert.NotEmpty(t, engine.Principles())
}

func TestLoad_SchemaRejectsMalformedCatalog(t *testing.T) {
	_, err := Load([]byte(`{"chain_of_thought": {"templates": {"x": {"name": "X"}}}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestLoad_MissingTreeSection(t *testing.T) {
	_, err := Load([]byte(`{"chain_of_thought": {"templates": {}}}`))
	assert.Error(t, err)
}
