package usecase

import (
	"testing"

	"cargokz/internal/domain/entities"
	"cargokz/internal/infrastructure/config"

	"go.uber.org/zap"
)

func newQuoteUseCase(t *testing.T) *QuoteUseCase {
	t.Helper()
	tables := config.Default()
	log := zap.NewNop()
	resolver := NewTariffResolver(tables, log)
	return NewQuoteUseCase(
		tables,
		resolver,
		NewCustomsCalculator(tables, log),
		NewMultiItemAggregator(tables, resolver),
		NewTextExtractor(tables, log),
	)
}

func completeRecord() entities.ShipmentRecord {
	return entities.ShipmentRecord{
		Weight:   50,
		Volume:   0.5,
		Category: entities.CategoryClothing,
		City:     "Алматы",
		Zone:     1,
	}
}

func TestQuoteUseCase_CargoMode(t *testing.T) {
	uc := newQuoteUseCase(t)

	b, err := uc.ComputeQuote(completeRecord(), entities.LanguageRussian)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Mode != entities.QuoteModeCargo {
		t.Fatalf("mode = %q, want cargo", b.Mode)
	}
	if b.Customs != nil {
		t.Fatal("cargo mode must not carry customs")
	}
	// density 100 -> 250 USD per m3 on 0.5 m3
	if b.T1Rate != 250 || !approx(b.T1, 125) {
		t.Fatalf("T1 = %v at rate %v, want 125 at 250", b.T1, b.T1Rate)
	}

	if len(b.Options) != 2 {
		t.Fatalf("options = %d, want 2", len(b.Options))
	}
	pickup, door := b.Options[0], b.Options[1]
	if pickup.Option != entities.DeliveryWarehousePickup || door.Option != entities.DeliveryDoorToDoor {
		t.Fatalf("options out of order: %+v", b.Options)
	}
	if !approx(pickup.Total, 144) {
		t.Fatalf("pickup total = %v, want 144", pickup.Total)
	}
	if !approx(door.Total, 159) {
		t.Fatalf("door total = %v, want 159 (T2 plus the zone door fee)", door.Total)
	}
}

func TestQuoteUseCase_InvoiceMode(t *testing.T) {
	uc := newQuoteUseCase(t)

	rec := completeRecord()
	value := 1000.0
	rec.InvoiceValue = &value

	b, err := uc.ComputeQuote(rec, entities.LanguageRussian)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Mode != entities.QuoteModeInvoice {
		t.Fatalf("mode = %q, want invoice", b.Mode)
	}
	// invoice mode prices per kg off the detailed table: 0.90/kg at density 100
	if b.T1Rate != 0.90 || !approx(b.T1, 45) {
		t.Fatalf("T1 = %v at rate %v, want 45 at 0.90", b.T1, b.T1Rate)
	}
	if b.Customs == nil {
		t.Fatal("invoice mode must carry customs")
	}
	if b.Customs.TotalLocal != 48000+63360+15000+7000 {
		t.Fatalf("customs total = %v, want %v", b.Customs.TotalLocal, 48000+63360+15000+7000)
	}

	// detailed last mile: 20 kg boundary bucket plus 30 extra kg
	zd := config.Default().DetailedT2[1]
	wantT2 := zd.Buckets[19] + 30*zd.ExtraPerKg
	if !approx(b.Options[0].T2, wantT2) {
		t.Fatalf("pickup T2 = %v, want %v", b.Options[0].T2, wantT2)
	}
}

func TestQuoteUseCase_Surcharges(t *testing.T) {
	uc := newQuoteUseCase(t)

	rec := completeRecord()
	rec.Fragile = true
	rec.Rural = true

	b, err := uc.ComputeQuote(rec, entities.LanguageRussian)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Pickup waives the rural multiplier; door applies both plus the fee.
	if !approx(b.Options[0].T2, 19*1.5) {
		t.Fatalf("pickup T2 = %v, want %v", b.Options[0].T2, 19*1.5)
	}
	if !approx(b.Options[1].T2, 19*1.5*2+15) {
		t.Fatalf("door T2 = %v, want %v", b.Options[1].T2, 19*1.5*2+15)
	}
}

func TestQuoteUseCase_UnknownCityPricesWorstZone(t *testing.T) {
	uc := newQuoteUseCase(t)

	rec := completeRecord()
	rec.City = "Жезказган"
	rec.Zone = entities.ZoneUnknown

	b, err := uc.ComputeQuote(rec, entities.LanguageRussian)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// zone 5: 28 base + 30 kg * 0.90
	if !approx(b.Options[0].T2, 55) {
		t.Fatalf("pickup T2 = %v, want worst-zone 55", b.Options[0].T2)
	}
}

func TestQuoteUseCase_MultiItem(t *testing.T) {
	uc := newQuoteUseCase(t)

	rec := entities.ShipmentRecord{
		Weight:   94,
		Volume:   0.372,
		Category: entities.CategoryClothing,
		City:     "Алматы",
		Zone:     1,
		Items:    twoItems(),
	}

	b, err := uc.ComputeQuote(rec, entities.LanguageRussian)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Multi == nil {
		t.Fatal("expected a multi-item breakdown")
	}
	if !approx(b.Multi.Total, 128.04) {
		t.Fatalf("multi total = %v, want 128.04", b.Multi.Total)
	}

	// The aggregate already prices the last mile per item (16 + 20.2);
	// the pickup option must reuse that portion, not add a second
	// whole-order T2 on top of it.
	if !approx(b.Options[0].T2, 36.2) {
		t.Fatalf("pickup T2 = %v, want the aggregate's own 36.2", b.Options[0].T2)
	}
	if !approx(b.Options[0].Total, b.Multi.Total) {
		t.Fatalf("pickup total = %v, want exactly the aggregate total %v", b.Options[0].Total, b.Multi.Total)
	}
	// door adds only the zone fee on a flag-free order
	if !approx(b.Options[1].Total, b.Multi.Total+15) {
		t.Fatalf("door total = %v, want %v", b.Options[1].Total, b.Multi.Total+15)
	}
}

func TestQuoteUseCase_MultiItemSurcharges(t *testing.T) {
	uc := newQuoteUseCase(t)

	rec := entities.ShipmentRecord{
		Weight:   94,
		Volume:   0.372,
		Category: entities.CategoryClothing,
		City:     "Алматы",
		Zone:     1,
		Items:    twoItems(),
		Rural:    true,
	}

	b, err := uc.ComputeQuote(rec, entities.LanguageRussian)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Rural only doubles the last-mile portion of the door option; the
	// freight-plus-commission part of the aggregate is untouched.
	freight := b.Multi.Total - b.Multi.T2Total()
	if !approx(b.Options[0].Total, freight+36.2) {
		t.Fatalf("pickup total = %v, rural must not apply to pickup", b.Options[0].Total)
	}
	if !approx(b.Options[1].Total, freight+36.2*2+15) {
		t.Fatalf("door total = %v, want %v", b.Options[1].Total, freight+36.2*2+15)
	}
}

func TestQuoteUseCase_MissingFields(t *testing.T) {
	uc := newQuoteUseCase(t)

	_, err := uc.ComputeQuote(entities.ShipmentRecord{Weight: 30}, entities.LanguageRussian)
	mf, ok := entities.IsMissingFields(err)
	if !ok {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	if len(mf.Fields) != 3 {
		t.Fatalf("missing = %v, want category, city and volume", mf.Fields)
	}
}

func TestQuoteUseCase_Deterministic(t *testing.T) {
	uc := newQuoteUseCase(t)

	first, err := uc.ComputeQuote(completeRecord(), entities.LanguageRussian)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.ComputeQuote(completeRecord(), entities.LanguageRussian)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.T1 != second.T1 || first.Options[0].Total != second.Options[0].Total || first.Options[1].Total != second.Options[1].Total {
		t.Fatalf("repeated computation diverged: %+v vs %+v", first, second)
	}
}
