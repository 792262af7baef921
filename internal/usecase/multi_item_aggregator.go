package usecase

import (
	"fmt"

	"cargokz/internal/domain/entities"
	"cargokz/internal/infrastructure/config"
)

// MultiItemAggregator prices an order of several distinct line items. Each
// item is priced individually (quick T1 by its own density, T2 by its total
// weight), then a flat commission is applied once to the aggregate — never
// per item, matching how surcharges and fees are billed per shipment.
//
// If any item cannot be priced the whole aggregation fails: a partial total
// must never be presented as if complete.

type MultiItemAggregator struct {
	tables   config.Tables
	resolver *TariffResolver
}

func NewMultiItemAggregator(tables config.Tables, resolver *TariffResolver) *MultiItemAggregator {
	return &MultiItemAggregator{tables: tables, resolver: resolver}
}

func (a *MultiItemAggregator) Aggregate(items []entities.LineItem, zone entities.Zone) (entities.MultiItemBreakdown, error) {
	if len(items) == 0 {
		return entities.MultiItemBreakdown{}, entities.NewValidationError("items", "empty item list")
	}
	if zone == entities.ZoneUnknown {
		return entities.MultiItemBreakdown{}, entities.NewValidationError("city", "destination not set")
	}

	out := entities.MultiItemBreakdown{Items: make([]entities.ItemCost, 0, len(items))}
	for i, it := range items {
		if it.Category == "" {
			return entities.MultiItemBreakdown{}, fmt.Errorf("item %d: %w",
				i+1, entities.NewValidationError("category", "not set"))
		}
		weight, volume := it.TotalWeight(), it.TotalVolume()
		_, t1, err := a.resolver.QuickT1Cost(it.Category, weight, volume)
		if err != nil {
			return entities.MultiItemBreakdown{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		t2, err := a.resolver.QuickT2Cost(zone, weight)
		if err != nil {
			return entities.MultiItemBreakdown{}, fmt.Errorf("item %d: %w", i+1, err)
		}

		out.Items = append(out.Items, entities.ItemCost{
			Index:    i + 1,
			Quantity: it.Quantity,
			Category: it.Category,
			Weight:   weight,
			Volume:   volume,
			Density:  it.Density(),
			T1:       t1,
			T2:       t2,
		})
		out.TotalWeight += weight
		out.TotalVolume += volume
		out.Subtotal += t1 + t2
	}

	out.Commission = out.Subtotal * a.tables.CommissionRate
	out.Total = out.Subtotal + out.Commission
	return out, nil
}
