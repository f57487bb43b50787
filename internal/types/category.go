// Package types provides type definitions for structured data used throughout the expert-panel system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Category classifies a role within the taxonomy. Every role belongs to
// exactly one category.
type Category string

// The fixed set of role categories.
const (
	CategoryEngineering Category = "engineering"
	CategoryData        Category = "data"
	CategoryBusiness    Category = "business"
	CategoryCreative    Category = "creative"
	CategorySpecialist  Category = "specialist"
)

// Categories returns all valid categories in stable order.
func Categories() []Category {
	return []Category{
		CategoryEngineering,
		CategoryData,
		CategoryBusiness,
		CategoryCreative,
		CategorySpecialist,
	}
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// IsValid returns true if this is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryEngineering, CategoryData, CategoryBusiness, CategoryCreative, CategorySpecialist:
		return true
	default:
		return false
	}
}
