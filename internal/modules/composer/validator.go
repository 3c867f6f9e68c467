package composer

import (
	"strconv"

	"rentify/internal/schema"
)

// Wizard steps, in order. Advancing past StepImages is not possible; the only
// way out of the last step is submission or abandonment.
const (
	StepBasics   = 1
	StepLocation = 2
	StepPricing  = 3
	StepImages   = 4

	MinStep = StepBasics
	MaxStep = StepImages
)

var stepLabels = map[int]string{
	StepBasics:   "Basic Details",
	StepLocation: "Location & Specifications",
	StepPricing:  "Pricing & Amenities",
	StepImages:   "Images & Review",
}

// StepLabel returns the display name for a step.
func StepLabel(step int) string { return stepLabels[step] }

// MissingFields returns the names of fields that block advancing past the
// given step. An empty result means the gate is open. Requirements depend on
// the draft itself: plot-style types pull plot_area_sqft into step 2.
func MissingFields(d *PropertyDraft, step int) []string {
	var missing []string
	require := func(name, value string) {
		if value == "" {
			missing = append(missing, name)
		}
	}

	switch step {
	case StepBasics:
		require("purpose", d.Purpose)
		require("category", d.Category)
		require("property_type", d.PropertyType)
		require("contact_name", d.ContactName)
		require("contact_phone", d.ContactPhone)

	case StepLocation:
		require("city", d.City)
		require("locality", d.Locality)
		require("pincode", d.Pincode)
		require("address", d.Address)
		if schema.PlotAreaRequired(schema.Category(d.Category), d.PropertyType) {
			if !isNonNegativeNumber(d.PlotAreaSqft) {
				missing = append(missing, "plot_area_sqft")
			}
		}

	case StepPricing:
		if !isNonNegativeNumber(d.Price) {
			missing = append(missing, "price")
		}

	case StepImages:
		// Images are optional; nothing gates the final step.
	}

	return missing
}

// CanAdvance reports whether the draft satisfies the step's requirements.
func CanAdvance(d *PropertyDraft, step int) bool {
	return len(MissingFields(d, step)) == 0
}

func isNonNegativeNumber(raw string) bool {
	if raw == "" {
		return false
	}
	n, err := strconv.ParseFloat(raw, 64)
	return err == nil && n >= 0
}
