package config

import (
	"fmt"
	"os"
	"sort"

	"cargokz/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

// Tables is the full pricing and vocabulary configuration, built once at
// startup and treated as immutable for the process lifetime. Components get
// it by injection; nothing reads it as a global.
//
// Defaults ship in code (see defaults.go); TARIFF_TABLES_FILE may point at a
// YAML file that replaces them wholesale.

type Tables struct {
	ExchangeRate      float64 `yaml:"exchange_rate"`       // KZT per USD
	VATRate           float64 `yaml:"vat_rate"`            // fixed 0.12
	CommissionRate    float64 `yaml:"commission_rate"`     // multi-item commission
	DensityUnitCutoff float64 `yaml:"density_unit_cutoff"` // kg/m3: at/above, T1 bills per kg; below, per m3

	FragileMultiplier float64 `yaml:"fragile_multiplier"`
	RuralMultiplier   float64 `yaml:"rural_multiplier"`

	BrokerFee      float64 `yaml:"broker_fee"`      // KZT
	DeclarationFee float64 `yaml:"declaration_fee"` // KZT
	CertificateFee float64 `yaml:"certificate_fee"` // KZT

	DefaultCategory entities.Category `yaml:"default_category"`

	QuickT1    map[entities.Category][]T1Band `yaml:"quick_t1"`
	DetailedT1 map[entities.Category][]T1Rule `yaml:"detailed_t1"`

	DutyRates           map[entities.Category]float64 `yaml:"duty_rates"`
	CertificateRequired []entities.Category           `yaml:"certificate_required"`

	Cities     []CityEntry                  `yaml:"cities"`
	QuickT2    map[entities.Zone]ZoneRate   `yaml:"quick_t2"`
	DetailedT2 map[entities.Zone]ZoneDetail `yaml:"detailed_t2"`
	DoorFeeUSD map[entities.Zone]float64    `yaml:"door_fee_usd"`

	CategoryKeywords []CategoryKeywords `yaml:"category_keywords"`
	Keywords         Keywords           `yaml:"keywords"`
}

// T1Band is one quick-mode density band: the first band whose MaxDensity is
// at or above the shipment density supplies the rate.
type T1Band struct {
	MaxDensity float64 `yaml:"max_density"`
	Rate       float64 `yaml:"rate"` // USD per kg (or per m3 below the cutoff)
}

// T1Rule is one detailed-mode rule: rules are evaluated descending by
// MinDensity and the first rule at or below the shipment density wins.
type T1Rule struct {
	MinDensity float64 `yaml:"min_density"`
	PricePerKg float64 `yaml:"price_per_kg"`
}

// ZoneRate is the quick-mode last-mile price: Base covers up to 20 kg,
// every kilogram above bills ExtraPerKg.
type ZoneRate struct {
	Base       float64 `yaml:"base"`
	ExtraPerKg float64 `yaml:"extra_per_kg"`
}

// ZoneDetail is the detailed last-mile table: one fixed price per whole-kg
// bucket up to 20 kg, then ExtraPerKg above the boundary.
type ZoneDetail struct {
	Buckets    []float64 `yaml:"buckets"` // Buckets[i] prices weights in (i, i+1] kg; len 20
	ExtraPerKg float64   `yaml:"extra_per_kg"`
}

// CityEntry maps destination keywords (all scripts) onto a zone. Order
// matters: the first entry with a matching keyword wins.
type CityEntry struct {
	Name     string        `yaml:"name"`
	Zone     entities.Zone `yaml:"zone"`
	Keywords []string      `yaml:"keywords"`
}

// CategoryKeywords maps synonym keywords (all scripts) onto a category.
// Order matters: first matching entry wins.
type CategoryKeywords struct {
	Category entities.Category `yaml:"category"`
	Keywords []string          `yaml:"keywords"`
}

// Keywords holds the trigger vocabularies shared by extraction and the
// intake protocol. One generic matcher consumes them; there are no
// per-language code branches.
type Keywords struct {
	WeightUnits []string `yaml:"weight_units"`
	VolumeUnits []string `yaml:"volume_units"`
	MeterUnits  []string `yaml:"meter_units"`
	CmUnits     []string `yaml:"cm_units"`

	InvoiceTriggers []string `yaml:"invoice_triggers"`
	CurrencyTokens  []string `yaml:"currency_tokens"`
	Certificate     []string `yaml:"certificate"`

	Fragile []string `yaml:"fragile"`
	Rural   []string `yaml:"rural"`

	Reset []string `yaml:"reset"`
	Yes   []string `yaml:"yes"`
	No    []string `yaml:"no"`
}

// Load builds the process configuration: defaults, replaced by the YAML file
// named in TARIFF_TABLES_FILE when set. The result is validated; a
// ConfigurationError here must abort startup.
func Load() (Tables, error) {
	t := Default()
	if path := os.Getenv("TARIFF_TABLES_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Tables{}, entities.NewConfigurationError("file", err.Error())
		}
		if err := yaml.Unmarshal(raw, &t); err != nil {
			return Tables{}, entities.NewConfigurationError("file", err.Error())
		}
	}
	if err := t.Validate(); err != nil {
		return Tables{}, err
	}
	return t, nil
}

// Validate checks structural soundness of every table. Lookup code relies on
// these guarantees and never re-checks them per call.
func (t Tables) Validate() error {
	if t.ExchangeRate <= 0 {
		return entities.NewConfigurationError("exchange_rate", "must be positive")
	}
	if t.VATRate < 0 || t.VATRate >= 1 {
		return entities.NewConfigurationError("vat_rate", "must be in [0,1)")
	}
	if t.CommissionRate < 0 || t.CommissionRate >= 1 {
		return entities.NewConfigurationError("commission_rate", "must be in [0,1)")
	}
	if t.DensityUnitCutoff <= 0 {
		return entities.NewConfigurationError("density_unit_cutoff", "must be positive")
	}
	if len(t.QuickT1) == 0 {
		return entities.NewConfigurationError("quick_t1", "empty")
	}
	if _, ok := t.QuickT1[t.DefaultCategory]; !ok {
		return entities.NewConfigurationError("quick_t1", fmt.Sprintf("missing default category %q", t.DefaultCategory))
	}
	for cat, bands := range t.QuickT1 {
		if len(bands) == 0 {
			return entities.NewConfigurationError("quick_t1", fmt.Sprintf("category %q has no bands", cat))
		}
		for i, b := range bands {
			if b.Rate <= 0 {
				return entities.NewConfigurationError("quick_t1", fmt.Sprintf("category %q band %d: non-positive rate", cat, i))
			}
			if i > 0 && bands[i-1].MaxDensity >= b.MaxDensity {
				return entities.NewConfigurationError("quick_t1", fmt.Sprintf("category %q: thresholds not ascending at %d", cat, i))
			}
		}
	}
	if _, ok := t.DetailedT1[t.DefaultCategory]; !ok {
		return entities.NewConfigurationError("detailed_t1", fmt.Sprintf("missing default category %q", t.DefaultCategory))
	}
	for cat, rules := range t.DetailedT1 {
		if len(rules) == 0 {
			return entities.NewConfigurationError("detailed_t1", fmt.Sprintf("category %q has no rules", cat))
		}
		for i, r := range rules {
			if r.MinDensity < 0 || r.PricePerKg <= 0 {
				return entities.NewConfigurationError("detailed_t1", fmt.Sprintf("category %q rule %d malformed", cat, i))
			}
		}
	}
	if len(t.QuickT2) == 0 {
		return entities.NewConfigurationError("quick_t2", "empty")
	}
	for zone, zr := range t.QuickT2 {
		if zone <= 0 || zr.Base <= 0 || zr.ExtraPerKg <= 0 {
			return entities.NewConfigurationError("quick_t2", fmt.Sprintf("zone %d malformed", zone))
		}
	}
	for zone, zd := range t.DetailedT2 {
		if len(zd.Buckets) != 20 {
			return entities.NewConfigurationError("detailed_t2", fmt.Sprintf("zone %d: want 20 buckets, got %d", zone, len(zd.Buckets)))
		}
		for i, p := range zd.Buckets {
			if p <= 0 {
				return entities.NewConfigurationError("detailed_t2", fmt.Sprintf("zone %d bucket %d: non-positive price", zone, i))
			}
		}
		if zd.ExtraPerKg <= 0 {
			return entities.NewConfigurationError("detailed_t2", fmt.Sprintf("zone %d: non-positive extra rate", zone))
		}
	}
	if len(t.Cities) == 0 {
		return entities.NewConfigurationError("cities", "empty")
	}
	for _, c := range t.Cities {
		if _, ok := t.QuickT2[c.Zone]; !ok {
			return entities.NewConfigurationError("cities", fmt.Sprintf("city %q maps to unconfigured zone %d", c.Name, c.Zone))
		}
	}
	if len(t.CategoryKeywords) == 0 {
		return entities.NewConfigurationError("category_keywords", "empty")
	}
	return nil
}

// WorstZone is the most expensive configured zone; unknown destinations
// degrade to it.
func (t Tables) WorstZone() entities.Zone {
	zones := make([]entities.Zone, 0, len(t.QuickT2))
	for z := range t.QuickT2 {
		zones = append(zones, z)
	}
	sort.Slice(zones, func(i, j int) bool { return zones[i] > zones[j] })
	return zones[0]
}

// RequiresCertificate reports whether the category is in the configured
// certificate-required subset.
func (t Tables) RequiresCertificate(cat entities.Category) bool {
	for _, c := range t.CertificateRequired {
		if c == cat {
			return true
		}
	}
	return false
}
