package usecase

import (
	"math"

	"cargokz/internal/domain/entities"
	"cargokz/internal/infrastructure/config"

	"go.uber.org/zap"
)

// CustomsCalculator computes the duty/VAT/fee portion of an invoice-mode
// quote. Duty and VAT math runs unrounded in USD; only the local-currency
// display amounts are rounded, so rounding error never compounds.

type CustomsCalculator struct {
	tables config.Tables
	log    *zap.Logger
}

func NewCustomsCalculator(tables config.Tables, log *zap.Logger) *CustomsCalculator {
	return &CustomsCalculator{tables: tables, log: log}
}

// Compute builds the full customs quote. An unknown category carries a zero
// duty rate with a warning, never an error.
func (c *CustomsCalculator) Compute(invoiceValue float64, cat entities.Category, weight float64, hasCertificate bool) (entities.CustomsQuote, error) {
	if invoiceValue < 0 {
		return entities.CustomsQuote{}, entities.NewValidationError("invoice_value", "must not be negative")
	}
	if weight < 0 {
		return entities.CustomsQuote{}, entities.NewValidationError("weight", "must not be negative")
	}

	dutyRate, ok := c.tables.DutyRates[cat]
	if !ok {
		c.log.Warn("unknown category for duty, applying zero rate",
			zap.String("category", string(cat)))
		dutyRate = 0
	}

	rate := c.tables.ExchangeRate
	dutyUSD := invoiceValue * dutyRate
	vatUSD := (invoiceValue + dutyUSD) * c.tables.VATRate

	q := entities.CustomsQuote{
		DutyUSD:        dutyUSD,
		DutyLocal:      math.Round(dutyUSD * rate),
		VATUSD:         vatUSD,
		VATLocal:       math.Round(vatUSD * rate),
		BrokerFee:      c.tables.BrokerFee,
		DeclarationFee: c.tables.DeclarationFee,
	}
	if c.tables.RequiresCertificate(cat) && !hasCertificate {
		q.CertificateFee = c.tables.CertificateFee
	}
	q.TotalLocal = q.DutyLocal + q.VATLocal + q.BrokerFee + q.DeclarationFee + q.CertificateFee
	return q, nil
}

// RequiresCertificate reports whether the category needs a conformity
// certificate for import.
func (c *CustomsCalculator) RequiresCertificate(cat entities.Category) bool {
	return c.tables.RequiresCertificate(cat)
}
