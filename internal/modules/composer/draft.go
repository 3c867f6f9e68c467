package composer

import (
	"fmt"

	"rentify/internal/schema"
)

// PropertyDraft is the in-memory record the wizard builds. Numeric fields stay
// raw strings until submission: the composer accepts any intermediate input
// and only the serializer decides what a value means. Amenity flags and the
// two standalone checkboxes are real booleans, as they arrive from the client.
type PropertyDraft struct {
	Purpose      string `json:"purpose"`
	Category     string `json:"category"`
	PropertyType string `json:"property_type"`
	IsPlot       bool   `json:"is_plot"`

	City     string `json:"city"`
	Locality string `json:"locality"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark"`
	Address  string `json:"address"`

	Bedrooms    string `json:"bedrooms"`
	Bathrooms   string `json:"bathrooms"`
	FloorNumber string `json:"floor_number"`
	TotalFloors string `json:"total_floors"`
	Furnishing  string `json:"furnishing"`

	PowerLoadKVA    string `json:"power_load_kva"`
	CeilingHeightFt string `json:"ceiling_height_ft"`
	ConferenceRooms string `json:"conference_rooms"`

	PlotAreaSqft     string `json:"plot_area_sqft"`
	PlotAreaAcres    string `json:"plot_area_acres"`
	SoilType         string `json:"soil_type"`
	IrrigationSource string `json:"irrigation_source"`
	BoundaryWall     bool   `json:"boundary_wall"`

	Price       string `json:"price"`
	Deposit     string `json:"deposit"`
	Maintenance string `json:"maintenance"`
	Negotiable  bool   `json:"negotiable"`

	HasLift          bool `json:"has_lift"`
	HasParking       bool `json:"has_parking"`
	HasGym           bool `json:"has_gym"`
	HasPool          bool `json:"has_pool"`
	NearMetro        bool `json:"near_metro"`
	HasSecurity      bool `json:"has_security"`
	HasCCTV          bool `json:"has_cctv"`
	HasWifi          bool `json:"has_wifi"`
	HasAC            bool `json:"has_ac"`
	HasGeyser        bool `json:"has_geyser"`
	HasVideoDoorbell bool `json:"has_video_doorbell"`
	HasFireSafety    bool `json:"has_fire_safety"`
	HasIntercom      bool `json:"has_intercom"`

	TenantPreference string `json:"tenant_preference"`
	ListedBy         string `json:"listed_by"`
	ContactName      string `json:"contact_name"`
	ContactPhone     string `json:"contact_phone"`

	Images []string `json:"images"`
}

// NewDraft seeds a draft with the defaults the wizard opens with and the
// acting user's contact details (editable afterwards).
func NewDraft(contactName, contactPhone string) PropertyDraft {
	return PropertyDraft{
		Purpose:          "Rent",
		Category:         string(schema.CategoryResidential),
		PropertyType:     schema.DefaultType(schema.CategoryResidential),
		Furnishing:       "None",
		TenantPreference: "Any",
		ListedBy:         "Owner",
		ContactName:      contactName,
		ContactPhone:     contactPhone,
		Images:           []string{},
	}
}

// clone returns a deep copy safe to hand out while uploads keep appending.
func (d *PropertyDraft) clone() PropertyDraft {
	out := *d
	out.Images = append([]string(nil), d.Images...)
	return out
}

// applyField applies one raw edit. The category cascade and plot-flag
// recomputation live in Session.SetFields; this is a dumb assignment.
func (d *PropertyDraft) applyField(name string, value any) error {
	if target, ok := d.stringField(name); ok {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s expects a string", ErrFieldType, name)
		}
		*target = s
		return nil
	}

	if target, ok := d.boolField(name); ok {
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %s expects a boolean", ErrFieldType, name)
		}
		*target = b
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnknownField, name)
}

func (d *PropertyDraft) stringField(name string) (*string, bool) {
	switch name {
	case "purpose":
		return &d.Purpose, true
	case "category":
		return &d.Category, true
	case "property_type":
		return &d.PropertyType, true
	case "city":
		return &d.City, true
	case "locality":
		return &d.Locality, true
	case "pincode":
		return &d.Pincode, true
	case "landmark":
		return &d.Landmark, true
	case "address":
		return &d.Address, true
	case "bedrooms":
		return &d.Bedrooms, true
	case "bathrooms":
		return &d.Bathrooms, true
	case "floor_number":
		return &d.FloorNumber, true
	case "total_floors":
		return &d.TotalFloors, true
	case "furnishing":
		return &d.Furnishing, true
	case "power_load_kva":
		return &d.PowerLoadKVA, true
	case "ceiling_height_ft":
		return &d.CeilingHeightFt, true
	case "conference_rooms":
		return &d.ConferenceRooms, true
	case "plot_area_sqft":
		return &d.PlotAreaSqft, true
	case "plot_area_acres":
		return &d.PlotAreaAcres, true
	case "soil_type":
		return &d.SoilType, true
	case "irrigation_source":
		return &d.IrrigationSource, true
	case "price":
		return &d.Price, true
	case "deposit":
		return &d.Deposit, true
	case "maintenance":
		return &d.Maintenance, true
	case "tenant_preference":
		return &d.TenantPreference, true
	case "listed_by":
		return &d.ListedBy, true
	case "contact_name":
		return &d.ContactName, true
	case "contact_phone":
		return &d.ContactPhone, true
	}
	return nil, false
}

func (d *PropertyDraft) boolField(name string) (*bool, bool) {
	switch name {
	case "boundary_wall":
		return &d.BoundaryWall, true
	case "negotiable":
		return &d.Negotiable, true
	case "has_lift":
		return &d.HasLift, true
	case "has_parking":
		return &d.HasParking, true
	case "has_gym":
		return &d.HasGym, true
	case "has_pool":
		return &d.HasPool, true
	case "near_metro":
		return &d.NearMetro, true
	case "has_security":
		return &d.HasSecurity, true
	case "has_cctv":
		return &d.HasCCTV, true
	case "has_wifi":
		return &d.HasWifi, true
	case "has_ac":
		return &d.HasAC, true
	case "has_geyser":
		return &d.HasGeyser, true
	case "has_video_doorbell":
		return &d.HasVideoDoorbell, true
	case "has_fire_safety":
		return &d.HasFireSafety, true
	case "has_intercom":
		return &d.HasIntercom, true
	}
	return nil, false
}
