package usecase

import (
	"cargokz/internal/domain/entities"
	"cargokz/internal/infrastructure/config"
)

// IQuoteUseCase computes a full cost breakdown from a populated record. It
// is the standalone pricing entry point: the conversational flow uses it
// through the intake use case, a non-conversational API can call it
// directly.

type IQuoteUseCase interface {
	ComputeQuote(rec entities.ShipmentRecord, lang entities.Language) (entities.CostBreakdown, error)
}

type QuoteUseCase struct {
	tables     config.Tables
	resolver   *TariffResolver
	customs    *CustomsCalculator
	aggregator *MultiItemAggregator
	extractor  *TextExtractor
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	tables config.Tables,
	resolver *TariffResolver,
	customs *CustomsCalculator,
	aggregator *MultiItemAggregator,
	extractor *TextExtractor,
) *QuoteUseCase {
	return &QuoteUseCase{
		tables:     tables,
		resolver:   resolver,
		customs:    customs,
		aggregator: aggregator,
		extractor:  extractor,
	}
}

// ComputeQuote prices the record or reports what is still missing. The
// computation is pure: calling it twice on the same record yields the same
// breakdown.
//
// Cargo mode prices with the quick tables; invoice mode (declared invoice
// value, customs involved) uses the detailed tables, which carry the
// opposite T1 tie-break.
func (u *QuoteUseCase) ComputeQuote(rec entities.ShipmentRecord, lang entities.Language) (entities.CostBreakdown, error) {
	if missing := u.extractor.MissingFields(rec, lang); len(missing) > 0 {
		return entities.CostBreakdown{}, &entities.MissingFieldsError{Fields: missing}
	}

	volume := rec.EffectiveVolume()
	b := entities.CostBreakdown{
		Mode:    entities.QuoteModeCargo,
		Weight:  rec.Weight,
		Volume:  volume,
		Density: rec.Density(),
	}
	if rec.IsInvoiceMode() {
		b.Mode = entities.QuoteModeInvoice
	}

	zone := rec.Zone
	if zone == entities.ZoneUnknown {
		zone = u.tables.WorstZone()
	}

	var freight, baseT2 float64
	if rec.IsMultiItem() {
		multi, err := u.aggregator.Aggregate(rec.Items, zone)
		if err != nil {
			return entities.CostBreakdown{}, err
		}
		b.Multi = &multi
		// The aggregate already carries the per-item last mile. The
		// delivery options re-apply only the option-dependent parts to
		// that portion; a second whole-order T2 would bill it twice.
		baseT2 = multi.T2Total()
		freight = multi.Total - baseT2
	} else {
		var err error
		if b.Mode == entities.QuoteModeInvoice {
			b.T1Rate = u.resolver.DetailedT1Rate(rec.Category, b.Density)
			b.T1 = b.T1Rate * rec.Weight
		} else {
			b.T1Rate, b.T1, err = u.resolver.QuickT1Cost(rec.Category, rec.Weight, volume)
			if err != nil {
				return entities.CostBreakdown{}, err
			}
		}
		freight = b.T1

		if b.Mode == entities.QuoteModeInvoice {
			baseT2, err = u.resolver.DetailedT2Cost(zone, rec.Weight)
		} else {
			baseT2, err = u.resolver.QuickT2Cost(zone, rec.Weight)
		}
		if err != nil {
			return entities.CostBreakdown{}, err
		}
	}

	// Warehouse pickup skips the rural multiplier: rural only matters for
	// the last mile to the door.
	pickupT2 := u.resolver.ApplySurcharges(baseT2, rec.Fragile, false)
	doorT2 := u.resolver.ApplySurcharges(baseT2, rec.Fragile, rec.Rural) + u.resolver.DoorFee(zone)

	b.Options = []entities.OptionTotal{
		{Number: 1, Option: entities.DeliveryWarehousePickup, T2: pickupT2, Total: freight + pickupT2},
		{Number: 2, Option: entities.DeliveryDoorToDoor, T2: doorT2, Total: freight + doorT2},
	}

	if b.Mode == entities.QuoteModeInvoice {
		customs, err := u.customs.Compute(*rec.InvoiceValue, rec.Category, rec.Weight, rec.HasCertificate)
		if err != nil {
			return entities.CostBreakdown{}, err
		}
		b.Customs = &customs
	}

	return b, nil
}
