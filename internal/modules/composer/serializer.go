package composer

import (
	"strconv"

	"rentify/internal/schema"
)

// Payload is the exact JSON body POST /properties expects. Optional numerics
// are pointers so an untouched field serializes as null rather than a
// misleading zero.
type Payload struct {
	Purpose      string `json:"purpose"`
	Category     string `json:"category"`
	PropertyType string `json:"property_type"`
	IsPlot       bool   `json:"is_plot"`

	City     string `json:"city"`
	Locality string `json:"locality"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark"`
	Address  string `json:"address"`

	Bedrooms    *int   `json:"bedrooms"`
	Bathrooms   *int   `json:"bathrooms"`
	FloorNumber *int   `json:"floor_number"`
	TotalFloors *int   `json:"total_floors"`
	Furnishing  string `json:"furnishing"`

	PowerLoadKVA    *int     `json:"power_load_kva"`
	CeilingHeightFt *float64 `json:"ceiling_height_ft"`
	ConferenceRooms *int     `json:"conference_rooms"`

	PlotAreaSqft     *float64 `json:"plot_area_sqft"`
	PlotAreaAcres    *float64 `json:"plot_area_acres"`
	SoilType         string   `json:"soil_type"`
	IrrigationSource string   `json:"irrigation_source"`
	BoundaryWall     bool     `json:"boundary_wall"`

	Price       float64  `json:"price"`
	Deposit     *float64 `json:"deposit"`
	Maintenance *float64 `json:"maintenance"`
	Negotiable  bool     `json:"negotiable"`

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

// Serialize turns a draft into the wire payload. Empty numeric strings become
// nulls; malformed ones collect into the returned field-error map, and no
// payload is produced while the map is non-empty. The plot flag is recomputed
// from the effective property type rather than trusted from the draft.
func Serialize(d *PropertyDraft) (*Payload, map[string]string) {
	errs := make(map[string]string)

	intPtr := func(field, raw string) *int {
		if raw == "" {
			return nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs[field] = "must be a whole number"
			return nil
		}
		return &n
	}
	floatPtr := func(field, raw string) *float64 {
		if raw == "" {
			return nil
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs[field] = "must be a number"
			return nil
		}
		return &f
	}

	var price float64
	if d.Price == "" {
		errs["price"] = "is required"
	} else if f, err := strconv.ParseFloat(d.Price, 64); err != nil {
		errs["price"] = "must be a number"
	} else {
		price = f
	}

	p := &Payload{
		Purpose:      d.Purpose,
		Category:     d.Category,
		PropertyType: d.PropertyType,
		IsPlot:       schema.IsPlotType(d.PropertyType),

		City:     d.City,
		Locality: d.Locality,
		Pincode:  d.Pincode,
		Landmark: d.Landmark,
		Address:  d.Address,

		Bedrooms:    intPtr("bedrooms", d.Bedrooms),
		Bathrooms:   intPtr("bathrooms", d.Bathrooms),
		FloorNumber: intPtr("floor_number", d.FloorNumber),
		TotalFloors: intPtr("total_floors", d.TotalFloors),
		Furnishing:  d.Furnishing,

		PowerLoadKVA:    intPtr("power_load_kva", d.PowerLoadKVA),
		CeilingHeightFt: floatPtr("ceiling_height_ft", d.CeilingHeightFt),
		ConferenceRooms: intPtr("conference_rooms", d.ConferenceRooms),

		PlotAreaSqft:     floatPtr("plot_area_sqft", d.PlotAreaSqft),
		PlotAreaAcres:    floatPtr("plot_area_acres", d.PlotAreaAcres),
		SoilType:         d.SoilType,
		IrrigationSource: d.IrrigationSource,
		BoundaryWall:     d.BoundaryWall,

		Price:       price,
		Deposit:     floatPtr("deposit", d.Deposit),
		Maintenance: floatPtr("maintenance", d.Maintenance),
		Negotiable:  d.Negotiable,

		HasLift:          d.HasLift,
		HasParking:       d.HasParking,
		HasGym:           d.HasGym,
		HasPool:          d.HasPool,
		NearMetro:        d.NearMetro,
		HasSecurity:      d.HasSecurity,
		HasCCTV:          d.HasCCTV,
		HasWifi:          d.HasWifi,
		HasAC:            d.HasAC,
		HasGeyser:        d.HasGeyser,
		HasVideoDoorbell: d.HasVideoDoorbell,
		HasFireSafety:    d.HasFireSafety,
		HasIntercom:      d.HasIntercom,

		TenantPreference: d.TenantPreference,
		ListedBy:         d.ListedBy,
		ContactName:      d.ContactName,
		ContactPhone:     d.ContactPhone,

		Images: append([]string{}, d.Images...),
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return p, nil
}
