package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedTypes_EveryCategoryNonEmpty(t *testing.T) {
	for _, c := range Categories {
		types := AllowedTypes(c)
		require.NotEmpty(t, types, "category %s has no types", c)
		assert.Equal(t, types[0], DefaultType(c))
		assert.True(t, IsAllowedType(c, DefaultType(c)))
	}
}

func TestAllowedTypes_ReturnsCopy(t *testing.T) {
	first := AllowedTypes(CategoryResidential)
	first[0] = "mutated"
	assert.Equal(t, "Apartment", AllowedTypes(CategoryResidential)[0])
}

func TestDefaultType_UnknownCategory(t *testing.T) {
	assert.Equal(t, "", DefaultType(Category("Bogus")))
	assert.False(t, IsValidCategory("Bogus"))
	assert.True(t, IsValidCategory("PG/Co-living"))
}

func TestIsPlotType(t *testing.T) {
	cases := map[string]bool{
		"Residential Plot":  true,
		"Commercial Plot":   true,
		"Farm Land":         true,
		"Orchard":           false,
		"Agricultural Plot": true,
		"Apartment":         false,
		"Warehouse":         false,
		"Industrial Shed":   false,
		"Landmark Tower":    true, // substring match, by contract
		"plot":              false, // case-sensitive
	}
	for name, want := range cases {
		assert.Equal(t, want, IsPlotType(name), "type %q", name)
	}
}

func TestGroupPolicy_ResidentialApartment(t *testing.T) {
	p := GroupPolicy(CategoryResidential, "Apartment")
	assert.Equal(t, Optional, p[GroupBuilding])
	assert.Equal(t, Hidden, p[GroupCommercial])
	assert.Equal(t, Hidden, p[GroupConference])
	assert.Equal(t, Hidden, p[GroupLand])
	assert.Equal(t, Hidden, p[GroupAgricultural])
}

func TestGroupPolicy_ResidentialPlot(t *testing.T) {
	p := GroupPolicy(CategoryResidential, "Residential Plot")
	assert.Equal(t, Hidden, p[GroupBuilding])
	assert.Equal(t, Required, p[GroupLand])
}

func TestGroupPolicy_CommercialVsIndustrial(t *testing.T) {
	commercial := GroupPolicy(CategoryCommercial, "Office Space")
	assert.Equal(t, Optional, commercial[GroupCommercial])
	assert.Equal(t, Optional, commercial[GroupConference])

	industrial := GroupPolicy(CategoryIndustrial, "Factory")
	assert.Equal(t, Optional, industrial[GroupCommercial])
	assert.Equal(t, Hidden, industrial[GroupConference], "conference rooms are commercial-only")
}

func TestGroupPolicy_AgriculturalNonPlotType(t *testing.T) {
	// Orchard has no plot keyword, but the category alone demands land specs.
	p := GroupPolicy(CategoryAgricultural, "Orchard")
	assert.Equal(t, Required, p[GroupLand])
	assert.Equal(t, Optional, p[GroupAgricultural])
	assert.Equal(t, Optional, p[GroupBuilding])

	assert.True(t, PlotAreaRequired(CategoryAgricultural, "Orchard"))
	assert.False(t, PlotAreaRequired(CategoryResidential, "Villa"))
}
