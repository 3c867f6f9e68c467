// Package schema maps listing categories to their allowed property types and
// decides which specification field groups apply to a given selection. It is
// pure lookup logic, so the composer and the serializer can share one source
// of truth for conditional fields.
package schema

import "strings"

// Category of a property listing.
type Category string

const (
	CategoryResidential   Category = "Residential"
	CategoryCommercial    Category = "Commercial"
	CategoryIndustrial    Category = "Industrial"
	CategoryAgricultural  Category = "Agricultural"
	CategoryInstitutional Category = "Institutional"
	CategoryPGCoLiving    Category = "PG/Co-living"
)

// Categories in display order.
var Categories = []Category{
	CategoryResidential,
	CategoryCommercial,
	CategoryIndustrial,
	CategoryAgricultural,
	CategoryInstitutional,
	CategoryPGCoLiving,
}

// propertyTypes keeps the per-category type lists in display order.
var propertyTypes = map[Category][]string{
	CategoryResidential:   {"Apartment", "Villa", "Penthouse", "Studio", "Residential Plot", "Independent House"},
	CategoryCommercial:    {"Office Space", "Retail Shop", "Commercial Plot", "Showroom", "Warehouse"},
	CategoryIndustrial:    {"Factory", "Industrial Shed", "Industrial Plot", "Manufacturing Unit"},
	CategoryAgricultural:  {"Farm Land", "Orchard", "Agricultural Plot"},
	CategoryInstitutional: {"School", "Hospital", "College", "Government Building"},
	CategoryPGCoLiving:    {"Boys PG", "Girls PG", "Co-living", "Student Housing"},
}

// plotKeywords identify land listings by property type name. Matching is
// case-sensitive: the type names are fixed vocabulary, not free text.
var plotKeywords = []string{"Plot", "Land", "Farm"}

// IsValidCategory reports whether c is one of the six known categories.
func IsValidCategory(c string) bool {
	_, ok := propertyTypes[Category(c)]
	return ok
}

// AllowedTypes returns the ordered property types for a category.
// Unknown categories return nil.
func AllowedTypes(c Category) []string {
	types := propertyTypes[c]
	out := make([]string, len(types))
	copy(out, types)
	return out
}

// DefaultType returns the first allowed type for a category, the value the
// composer resets property_type to whenever the category changes.
func DefaultType(c Category) string {
	types := propertyTypes[c]
	if len(types) == 0 {
		return ""
	}
	return types[0]
}

// IsAllowedType reports whether propertyType belongs to the category's set.
func IsAllowedType(c Category, propertyType string) bool {
	for _, t := range propertyTypes[c] {
		if t == propertyType {
			return true
		}
	}
	return false
}

// IsPlotType reports whether a property type names undeveloped land.
func IsPlotType(propertyType string) bool {
	for _, kw := range plotKeywords {
		if strings.Contains(propertyType, kw) {
			return true
		}
	}
	return false
}

// FieldGroup is a block of specification fields that is shown or hidden as a
// whole depending on the category/type selection.
type FieldGroup string

const (
	// GroupBuilding: bedrooms, bathrooms, floor_number, total_floors, furnishing.
	GroupBuilding FieldGroup = "building"
	// GroupCommercial: power_load_kva, ceiling_height_ft.
	GroupCommercial FieldGroup = "commercial"
	// GroupConference: conference_rooms. Split from GroupCommercial because it
	// applies to Commercial listings only, not Industrial.
	GroupConference FieldGroup = "conference"
	// GroupLand: plot_area_sqft, plot_area_acres.
	GroupLand FieldGroup = "land"
	// GroupAgricultural: soil_type, irrigation_source, boundary_wall.
	GroupAgricultural FieldGroup = "agricultural"
)

// Requirement states how a field group applies to a selection.
type Requirement string

const (
	Hidden   Requirement = "hidden"
	Optional Requirement = "optional"
	Required Requirement = "required"
)

// GroupPolicy resolves the visibility of every field group for a
// (category, property type) pair. Required on GroupLand means plot_area_sqft
// is mandatory; the other fields in a required group stay optional.
func GroupPolicy(c Category, propertyType string) map[FieldGroup]Requirement {
	isPlot := IsPlotType(propertyType)

	policy := map[FieldGroup]Requirement{
		GroupBuilding:     Optional,
		GroupCommercial:   Hidden,
		GroupConference:   Hidden,
		GroupLand:         Hidden,
		GroupAgricultural: Hidden,
	}

	if isPlot {
		policy[GroupBuilding] = Hidden
	}
	if c == CategoryCommercial || c == CategoryIndustrial {
		policy[GroupCommercial] = Optional
	}
	if c == CategoryCommercial {
		policy[GroupConference] = Optional
	}
	if isPlot || c == CategoryAgricultural {
		policy[GroupLand] = Required
	}
	if c == CategoryAgricultural {
		policy[GroupAgricultural] = Optional
	}

	return policy
}

// PlotAreaRequired reports whether the selection demands a plot area.
func PlotAreaRequired(c Category, propertyType string) bool {
	return GroupPolicy(c, propertyType)[GroupLand] == Required
}
