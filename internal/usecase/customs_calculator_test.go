package usecase

import (
	"errors"
	"testing"

	"cargokz/internal/domain/entities"
	"cargokz/internal/infrastructure/config"

	"go.uber.org/zap"
)

func newCustoms(t *testing.T) *CustomsCalculator {
	t.Helper()
	return NewCustomsCalculator(config.Default(), zap.NewNop())
}

func TestCustomsCalculator_Compute(t *testing.T) {
	c := newCustoms(t)

	t.Run("clothing invoice without certificate fee", func(t *testing.T) {
		q, err := c.Compute(1000, entities.CategoryClothing, 50, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// duty 10% = 100 USD, VAT 12% on (1000+100) = 132 USD, at 480 KZT/USD
		if !approx(q.DutyUSD, 100) || q.DutyLocal != 48000 {
			t.Fatalf("duty = %v USD / %v KZT, want 100 / 48000", q.DutyUSD, q.DutyLocal)
		}
		if !approx(q.VATUSD, 132) || q.VATLocal != 63360 {
			t.Fatalf("vat = %v USD / %v KZT, want 132 / 63360", q.VATUSD, q.VATLocal)
		}
		if q.BrokerFee != 15000 || q.DeclarationFee != 7000 {
			t.Fatalf("fees = %v / %v, want 15000 / 7000", q.BrokerFee, q.DeclarationFee)
		}
		if q.CertificateFee != 0 {
			t.Fatalf("clothing must not carry a certificate fee, got %v", q.CertificateFee)
		}
		if q.TotalLocal != 48000+63360+15000+7000 {
			t.Fatalf("total = %v, want %v", q.TotalLocal, 48000+63360+15000+7000)
		}
	})

	t.Run("certificate fee charged when required and absent", func(t *testing.T) {
		q, err := c.Compute(500, entities.CategoryCosmetics, 10, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.CertificateFee != 30000 {
			t.Fatalf("certificate fee = %v, want 30000", q.CertificateFee)
		}
	})

	t.Run("certificate fee waived when the shipper holds one", func(t *testing.T) {
		with, err := c.Compute(500, entities.CategoryCosmetics, 10, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		without, _ := c.Compute(500, entities.CategoryCosmetics, 10, false)
		if with.CertificateFee != 0 {
			t.Fatalf("certificate fee = %v, want 0", with.CertificateFee)
		}
		if without.TotalLocal-with.TotalLocal != 30000 {
			t.Fatalf("totals differ by %v, want exactly the certificate fee", without.TotalLocal-with.TotalLocal)
		}
	})

	t.Run("unknown category gets zero duty, VAT still applies", func(t *testing.T) {
		q, err := c.Compute(1000, entities.Category("furniture"), 50, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.DutyUSD != 0 || q.DutyLocal != 0 {
			t.Fatalf("duty = %v / %v, want zero", q.DutyUSD, q.DutyLocal)
		}
		if !approx(q.VATUSD, 120) {
			t.Fatalf("vat = %v USD, want 120", q.VATUSD)
		}
	})

	t.Run("USD amounts stay unrounded", func(t *testing.T) {
		// duty 10% of 333 = 33.3; VAT 12% of 366.3 = 43.956
		q, err := c.Compute(333, entities.CategoryClothing, 10, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !approx(q.DutyUSD, 33.3) || !approx(q.VATUSD, 43.956) {
			t.Fatalf("duty %v / vat %v USD, want 33.3 / 43.956", q.DutyUSD, q.VATUSD)
		}
	})

	t.Run("negative invoice value rejected", func(t *testing.T) {
		_, err := c.Compute(-1, entities.CategoryClothing, 10, false)
		var ve *entities.ValidationError
		if !errors.As(err, &ve) || ve.Field != "invoice_value" {
			t.Fatalf("expected invoice_value validation error, got %v", err)
		}
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		_, err := c.Compute(100, entities.CategoryClothing, -5, false)
		var ve *entities.ValidationError
		if !errors.As(err, &ve) || ve.Field != "weight" {
			t.Fatalf("expected weight validation error, got %v", err)
		}
	})
}

func TestCustomsCalculator_RequiresCertificate(t *testing.T) {
	c := newCustoms(t)

	for _, cat := range []entities.Category{entities.CategoryCosmetics, entities.CategoryElectronics, entities.CategoryToys} {
		if !c.RequiresCertificate(cat) {
			t.Fatalf("%s must require a certificate", cat)
		}
	}
	if c.RequiresCertificate(entities.CategoryClothing) {
		t.Fatal("clothing must not require a certificate")
	}
}
