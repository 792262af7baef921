package usecase

import (
	"math"
	"sort"

	"cargokz/internal/domain/entities"
	"cargokz/internal/infrastructure/config"

	"go.uber.org/zap"
)

// TariffResolver answers the two pricing lookups: T1 (line-haul, selected by
// cargo density) and T2 (last mile, selected by zone and weight). Each
// lookup exists in a quick and a detailed variant with deliberately
// different tie-break directions; callers pick the variant, there is no mode
// flag.
//
// Unknown categories and zones never error: they degrade to the configured
// default (category) or the most expensive zone, with a warning logged.

type TariffResolver struct {
	tables config.Tables
	log    *zap.Logger
}

func NewTariffResolver(tables config.Tables, log *zap.Logger) *TariffResolver {
	return &TariffResolver{tables: tables, log: log}
}

// QuickT1Rate walks the ascending density bands and returns the rate of the
// first band whose threshold is at or above the density. Densities beyond
// the last threshold get the last (cheapest) rate.
func (t *TariffResolver) QuickT1Rate(cat entities.Category, density float64) float64 {
	bands, ok := t.tables.QuickT1[cat]
	if !ok {
		t.log.Warn("unknown category, using default rates",
			zap.String("category", string(cat)),
			zap.String("default", string(t.tables.DefaultCategory)))
		bands = t.tables.QuickT1[t.tables.DefaultCategory]
	}
	for _, b := range bands {
		if b.MaxDensity >= density {
			return b.Rate
		}
	}
	return bands[len(bands)-1].Rate
}

// DetailedT1Rate evaluates the rules descending by MinDensity and returns
// the first rule at or below the density: the highest qualifying band. This
// is the opposite tie-break direction from QuickT1Rate and the two must not
// be unified.
func (t *TariffResolver) DetailedT1Rate(cat entities.Category, density float64) float64 {
	rules, ok := t.tables.DetailedT1[cat]
	if !ok {
		t.log.Warn("unknown category in detailed tariff, using default rates",
			zap.String("category", string(cat)),
			zap.String("default", string(t.tables.DefaultCategory)))
		rules = t.tables.DetailedT1[t.tables.DefaultCategory]
	}

	sorted := make([]config.T1Rule, len(rules))
	copy(sorted, rules)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinDensity > sorted[j].MinDensity })

	for _, r := range sorted {
		if r.MinDensity <= density {
			return r.PricePerKg
		}
	}
	return sorted[len(sorted)-1].PricePerKg
}

// QuickT1Cost validates the operands, recomputes density and bills the
// quick-mode rate per kilogram strictly above the density cutoff, per cubic
// meter at or below it. The cutoff equals the first band boundary, so the
// billing unit always matches the selected band's rate.
func (t *TariffResolver) QuickT1Cost(cat entities.Category, weight, volume float64) (rate, cost float64, err error) {
	if weight <= 0 {
		return 0, 0, entities.NewValidationError("weight", "must be positive")
	}
	if volume <= 0 {
		return 0, 0, entities.NewValidationError("volume", "must be positive")
	}
	density := weight / volume
	rate = t.QuickT1Rate(cat, density)
	if density > t.tables.DensityUnitCutoff {
		return rate, rate * weight, nil
	}
	return rate, rate * volume, nil
}

func (t *TariffResolver) zone(z entities.Zone) entities.Zone {
	if _, ok := t.tables.QuickT2[z]; ok {
		return z
	}
	worst := t.tables.WorstZone()
	t.log.Warn("unknown zone, using most expensive",
		zap.Int("zone", int(z)), zap.Int("fallback", int(worst)))
	return worst
}

// QuickT2Cost prices the last mile: flat base up to 20 kg, then the zone's
// per-kg extra rate for every kilogram above.
func (t *TariffResolver) QuickT2Cost(zone entities.Zone, weight float64) (float64, error) {
	if weight <= 0 {
		return 0, entities.NewValidationError("weight", "must be positive")
	}
	zr := t.tables.QuickT2[t.zone(zone)]
	if weight <= 20 {
		return zr.Base, nil
	}
	return zr.Base + (weight-20)*zr.ExtraPerKg, nil
}

// DetailedT2Cost prices the last mile from the 1 kg bucket table: the fixed
// price of the bucket containing the weight up to 20 kg, then the boundary
// price plus the extra-kg rate above.
func (t *TariffResolver) DetailedT2Cost(zone entities.Zone, weight float64) (float64, error) {
	if weight <= 0 {
		return 0, entities.NewValidationError("weight", "must be positive")
	}
	z := t.zone(zone)
	zd, ok := t.tables.DetailedT2[z]
	if !ok {
		// Detailed table is optional per zone; quick rates cover the gap.
		return t.QuickT2Cost(z, weight)
	}
	if weight <= 20 {
		bucket := int(math.Ceil(weight)) - 1
		if bucket < 0 {
			bucket = 0
		}
		return zd.Buckets[bucket], nil
	}
	return zd.Buckets[len(zd.Buckets)-1] + (weight-20)*zd.ExtraPerKg, nil
}

// ApplySurcharges multiplies the fragile and rural factors onto a T2 cost.
// Multiplication keeps the operation commutative regardless of flag order.
func (t *TariffResolver) ApplySurcharges(cost float64, fragile, rural bool) float64 {
	if fragile {
		cost *= t.tables.FragileMultiplier
	}
	if rural {
		cost *= t.tables.RuralMultiplier
	}
	return cost
}

// DoorFee is the flat door-to-door delivery fee for the zone.
func (t *TariffResolver) DoorFee(zone entities.Zone) float64 {
	return t.tables.DoorFeeUSD[t.zone(zone)]
}
