package entities

// Category is the closed set of cargo categories the tariff tables know
// about. Free-text extraction only ever produces one of these values;
// anything it cannot classify stays empty and is reported as a missing
// field rather than guessed.
//
// CategoryUnknown exists for callers (e.g. a standalone API) that submit a
// category the tables do not cover: pricing degrades to CategoryGeneral with
// a logged warning, never an error.

type Category string

const (
	CategoryClothing    Category = "clothing"
	CategoryShoes       Category = "shoes"
	CategoryFabric      Category = "fabric"
	CategoryToys        Category = "toys"
	CategoryElectronics Category = "electronics"
	CategoryCosmetics   Category = "cosmetics"
	CategoryHousehold   Category = "household"
	CategoryAutoParts   Category = "autoparts"
	CategoryGeneral     Category = "general"
	CategoryUnknown     Category = "unknown"
)

// Zone is the destination cost tier derived from the city. ZoneUnknown maps
// to the most expensive configured zone when priced.
type Zone int

const ZoneUnknown Zone = 0

// DeliveryOption is chosen by the user after a quote is presented.
type DeliveryOption string

const (
	DeliveryWarehousePickup DeliveryOption = "warehouse_pickup"
	DeliveryDoorToDoor      DeliveryOption = "door_to_door"
)

// Language is the session's active reply/extraction language.
type Language string

const (
	LanguageRussian Language = "ru"
	LanguageKazakh  Language = "kk"
	LanguageChinese Language = "zh"
)

// LineItem is one distinct product entry within a multi-item order.
// Dimensions and weight are per unit; totals are derived, never stored.
type LineItem struct {
	Quantity   int      `json:"quantity"`
	Category   Category `json:"category"`
	UnitLength float64  `json:"unit_length"`
	UnitWidth  float64  `json:"unit_width"`
	UnitHeight float64  `json:"unit_height"`
	UnitWeight float64  `json:"unit_weight"`
}

func (i LineItem) UnitVolume() float64 {
	return i.UnitLength * i.UnitWidth * i.UnitHeight
}

func (i LineItem) TotalWeight() float64 {
	return float64(i.Quantity) * i.UnitWeight
}

func (i LineItem) TotalVolume() float64 {
	return float64(i.Quantity) * i.UnitVolume()
}

// Density is per-unit weight over per-unit volume (equal to the total
// ratio, since quantity cancels).
func (i LineItem) Density() float64 {
	v := i.UnitVolume()
	if v <= 0 {
		return 0
	}
	return i.UnitWeight / v
}

// ShipmentRecord accumulates the shipment attributes collected over a
// session. Fields are filled incrementally by extraction and never
// overwritten once set; density is always derived, never cached.
//
// InvoiceValue doubles as the mode switch: nil means cargo mode (no
// customs), non-nil means invoice mode (duty + VAT apply).

type ShipmentRecord struct {
	Weight float64 `json:"weight"`
	Volume float64 `json:"volume"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Category Category `json:"category"`
	City     string   `json:"city"`
	Zone     Zone     `json:"zone"`

	InvoiceValue   *float64 `json:"invoice_value,omitempty"`
	HasCertificate bool     `json:"has_certificate"`

	Fragile bool `json:"fragile"`
	Rural   bool `json:"rural"`

	DeliveryOption DeliveryOption `json:"delivery_option,omitempty"`

	Items []LineItem `json:"items,omitempty"`
}

func (r ShipmentRecord) HasDimensions() bool {
	return r.Length > 0 && r.Width > 0 && r.Height > 0
}

// EffectiveVolume returns the stated volume, or the one derived from
// dimensions when no direct volume was given.
func (r ShipmentRecord) EffectiveVolume() float64 {
	if r.Volume > 0 {
		return r.Volume
	}
	if r.HasDimensions() {
		return r.Length * r.Width * r.Height
	}
	return 0
}

// Density recomputes weight/volume on every call. Returns 0 when either
// operand is still unset; pricing validates before use.
func (r ShipmentRecord) Density() float64 {
	v := r.EffectiveVolume()
	if v <= 0 {
		return 0
	}
	return r.Weight / v
}

func (r ShipmentRecord) IsInvoiceMode() bool {
	return r.InvoiceValue != nil
}

func (r ShipmentRecord) IsMultiItem() bool {
	return len(r.Items) > 0
}
