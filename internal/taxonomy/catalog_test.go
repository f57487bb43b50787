package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/expert-panel/internal/types"
)

func TestLoadDefault_EmbeddedCatalog(t *testing.T) {
	catalog, err := LoadDefault()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, catalog.Len(), 15, "embedded catalog should cover the full taxonomy")

	role, err := catalog.Get("ai-ml-engineer")
	require.NoError(t, err)
	assert.Equal(t, types.CategoryEngineering, role.Category)
	assert.Equal(t, "AI/ML Engineer", role.Name)
	assert.Equal(t, "model development", role.PrimaryCapability())
}

func TestLoad_DuplicateKeyRejected(t *testing.T) {
	doc := []byte(`{
		"roles": [
			{"key": "backend-engineer", "category": "engineering", "name": "Backend Engineer", "capabilities": ["api design"]},
			{"key": "backend-engineer", "category": "data", "name": "Backend Engineer Again", "capabilities": ["api design"]}
		]
	}`)

	_, err := Load(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate role key")
}

func TestLoad_SchemaRejectsMalformedCatalog(t *testing.T) {
	_, err := Load([]byte(`{"roles": [{"key": "no-category"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestCatalog_GetUnknownRole(t *testing.T) {
	catalog, err := LoadDefault()
	require.NoError(t, err)

	_, err = catalog.Get("quantum-plumber")
	require.Error(t, err)

	notFound, ok := err.(*ErrRoleNotFound)
	require.True(t, ok)
	assert.Equal(t, "quantum-plumber", notFound.Key)
}

func TestCatalog_ListByCategory(t *testing.T) {
	catalog, err := LoadDefault()
	require.NoError(t, err)

	all := catalog.List("")
	assert.Equal(t, catalog.Len(), len(all))

	engineering := catalog.List("engineering")
	require.NotEmpty(t, engineering)
	for _, role := range engineering {
		assert.Equal(t, types.CategoryEngineering, role.Category)
	}

	// Unknown category filters to empty, not to an error.
	assert.Empty(t, catalog.List("astrology"))
}

func TestCatalog_ListIsSortedByKey(t *testing.T) {
	catalog, err := LoadDefault()
	require.NoError(t, err)

	roles := catalog.List("")
	for i := 1; i < len(roles); i++ {
		assert.Less(t, roles[i-1].Key, roles[i].Key)
	}
}

func TestCatalog_CategoryOfUnknownDefaultsToSpecialist(t *testing.T) {
	catalog, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, types.CategorySpecialist, catalog.CategoryOf("quantum-plumber"))
	assert.Equal(t, types.CategoryData, catalog.CategoryOf("data-scientist"))
}

func TestCatalog_EveryRoleCategoryConsistent(t *testing.T) {
	catalog, err := LoadDefault()
	require.NoError(t, err)

	for _, role := range catalog.List("") {
		assert.True(t, role.Category.IsValid(), "role %s", role.Key)
		assert.Equal(t, role.Category, catalog.CategoryOf(role.Key), "role %s", role.Key)
		assert.NotEmpty(t, role.Capabilities, "role %s", role.Key)
	}
}
