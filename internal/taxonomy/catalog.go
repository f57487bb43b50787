// Package taxonomy provides the static catalog of expert roles.
//
// The catalog is loaded once at startup from embedded data (or an external
// override file), validated against a JSON Schema plus catalog invariants,
// and is read-only for the lifetime of the process.
package taxonomy

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/daniel/expert-panel/internal/schemas"
	"github.com/daniel/expert-panel/internal/types"
)

// ErrRoleNotFound indicates a role key absent from the catalog.
type ErrRoleNotFound struct {
	Key string
}

func (e *ErrRoleNotFound) Error() string {
	return fmt.Sprintf("role not found: %s", e.Key)
}

// Catalog is the immutable role taxonomy. Safe for concurrent readers once
// constructed.
type Catalog struct {
	roles  map[string]types.Role
	sorted []string
}

// catalogDocument mirrors the on-disk catalog layout.
type catalogDocument struct {
	Roles []types.Role `json:"roles" validate:"required,min=1,dive"`
}

// Load parses and validates a role catalog document. Duplicate keys or an
// unknown category fail the load; degraded catalogs are never accepted.
func Load(data []byte) (*Catalog, error) {
	if err := schemas.Validate(schemas.RoleCatalog, data); err != nil {
		return nil, fmt.Errorf("role catalog rejected by schema: %w", err)
	}

	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse role catalog JSON: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("role catalog failed validation: %w", err)
	}

	roles := make(map[string]types.Role, len(doc.Roles))
	sorted := make([]string, 0, len(doc.Roles))
	for _, role := range doc.Roles {
		if _, exists := roles[role.Key]; exists {
			return nil, fmt.Errorf("duplicate role key in catalog: %s", role.Key)
		}
		if !role.Category.IsValid() {
			return nil, fmt.Errorf("role %s has unknown category %q", role.Key, role.Category)
		}
		roles[role.Key] = role
		sorted = append(sorted, role.Key)
	}
	sort.Strings(sorted)

	return &Catalog{roles: roles, sorted: sorted}, nil
}

// LoadDefault loads the embedded role catalog.
func LoadDefault() (*Catalog, error) {
	return Load(defaultRoles())
}

// Get returns the role for a key, or ErrRoleNotFound.
func (c *Catalog) Get(key string) (types.Role, error) {
	role, ok := c.roles[key]
	if !ok {
		return types.Role{}, &ErrRoleNotFound{Key: key}
	}
	return role, nil
}

// Has reports whether the catalog contains the key.
func (c *Catalog) Has(key string) bool {
	_, ok := c.roles[key]
	return ok
}

// List returns all roles, optionally filtered by category, ordered by key.
// An unknown category filter yields an empty list rather than an error,
// consistent with the lenient scoring surface.
func (c *Catalog) List(categoryFilter string) []types.Role {
	out := make([]types.Role, 0, len(c.sorted))
	for _, key := range c.sorted {
		role := c.roles[key]
		if categoryFilter != "" && role.Category.String() != categoryFilter {
			continue
		}
		out = append(out, role)
	}
	return out
}

// Keys returns all role keys in sorted order.
func (c *Catalog) Keys() []string {
	return append([]string(nil), c.sorted...)
}

// CategoryOf returns the category of a role key. Unknown keys map to the
// specialist category so that scoring can proceed leniently.
func (c *Catalog) CategoryOf(key string) types.Category {
	if role, ok := c.roles[key]; ok {
		return role.Category
	}
	return types.CategorySpecialist
}

// Len returns the number of roles in the catalog.
func (c *Catalog) Len() int {
	return len(c.roles)
}
