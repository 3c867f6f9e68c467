package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingFields_StepBasics(t *testing.T) {
	d := NewDraft("", "")

	missing := MissingFields(&d, StepBasics)
	assert.ElementsMatch(t, []string{"contact_name", "contact_phone"}, missing)

	d.ContactName = "Asha"
	d.ContactPhone = "9999999999"
	assert.True(t, CanAdvance(&d, StepBasics))
}

func TestMissingFields_StepLocation(t *testing.T) {
	d := NewDraft("Asha", "9999999999")

	missing := MissingFields(&d, StepLocation)
	assert.ElementsMatch(t, []string{"city", "locality", "pincode", "address"}, missing)

	d.City = "Pune"
	d.Locality = "Baner"
	d.Pincode = "411045"
	d.Address = "12 Hillside Road"
	assert.True(t, CanAdvance(&d, StepLocation))
}

func TestMissingFields_PlotAreaGatesLocationStep(t *testing.T) {
	d := NewDraft("Asha", "9999999999")
	d.PropertyType = "Residential Plot"
	d.City = "Pune"
	d.Locality = "Baner"
	d.Pincode = "411045"
	d.Address = "12 Hillside Road"

	assert.Equal(t, []string{"plot_area_sqft"}, MissingFields(&d, StepLocation))

	d.PlotAreaSqft = "not a number"
	assert.Equal(t, []string{"plot_area_sqft"}, MissingFields(&d, StepLocation))

	d.PlotAreaSqft = "-10"
	assert.Equal(t, []string{"plot_area_sqft"}, MissingFields(&d, StepLocation))

	d.PlotAreaSqft = "5000"
	assert.True(t, CanAdvance(&d, StepLocation))
}

func TestMissingFields_StepPricing(t *testing.T) {
	d := NewDraft("Asha", "9999999999")

	assert.Equal(t, []string{"price"}, MissingFields(&d, StepPricing))

	d.Price = "abc"
	assert.Equal(t, []string{"price"}, MissingFields(&d, StepPricing))

	d.Price = "0"
	assert.True(t, CanAdvance(&d, StepPricing))
}

func TestMissingFields_StepImagesNeverGates(t *testing.T) {
	d := NewDraft("", "")
	assert.True(t, CanAdvance(&d, StepImages))
}
