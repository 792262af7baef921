package usecase

import (
	"fmt"
	"strings"

	"cargokz/internal/domain/entities"
	"cargokz/internal/infrastructure/config"

	"golang.org/x/text/message"
)

// QuoteFormatter renders breakdowns and protocol prompts in the session
// language. Numbers go through an x/text printer so thousands grouping and
// decimal separators follow the locale.

type QuoteFormatter struct {
	tables config.Tables
}

func NewQuoteFormatter(tables config.Tables) *QuoteFormatter {
	return &QuoteFormatter{tables: tables}
}

func (f *QuoteFormatter) printer(lang entities.Language) *message.Printer {
	return message.NewPrinter(languageTag(lang))
}

func usd(p *message.Printer, v float64) string {
	return p.Sprintf("%.2f", v)
}

func kzt(p *message.Printer, v float64) string {
	return p.Sprintf("%.0f", v)
}

// MissingPrompt lists what the user still has to provide.
func (f *QuoteFormatter) MissingPrompt(fields []string, lang entities.Language) string {
	lines := make([]string, 0, len(fields)+1)
	lines = append(lines, localize(lang, msgMissingIntro))
	for _, field := range fields {
		lines = append(lines, "— "+field)
	}
	return strings.Join(lines, "\n")
}

// Breakdown renders the full quote with both delivery options and the
// option prompt.
func (f *QuoteFormatter) Breakdown(b entities.CostBreakdown, lang entities.Language) string {
	p := f.printer(lang)
	var lines []string
	lines = append(lines, fmt.Sprintf(localize(lang, msgQuoteHeader), b.Weight, b.Volume, b.Density))

	if b.Multi != nil {
		for _, it := range b.Multi.Items {
			lines = append(lines, fmt.Sprintf(localize(lang, msgQuoteItem),
				it.Index, it.Quantity, it.Weight, it.Volume, usd(p, it.T1+it.T2)))
		}
		lines = append(lines, fmt.Sprintf(localize(lang, msgQuoteCommission),
			f.tables.CommissionRate*100, usd(p, b.Multi.Commission)))
		lines = append(lines, fmt.Sprintf(localize(lang, msgQuoteFreight), usd(p, b.Multi.Total)))
	} else {
		lines = append(lines, fmt.Sprintf(localize(lang, msgQuoteFreight), usd(p, b.T1)))
	}

	if b.Customs != nil {
		lines = append(lines,
			fmt.Sprintf(localize(lang, msgQuoteDuty), kzt(p, b.Customs.DutyLocal)),
			fmt.Sprintf(localize(lang, msgQuoteVAT), kzt(p, b.Customs.VATLocal)),
			fmt.Sprintf(localize(lang, msgQuoteBroker), kzt(p, b.Customs.BrokerFee)),
			fmt.Sprintf(localize(lang, msgQuoteDecl), kzt(p, b.Customs.DeclarationFee)))
		if b.Customs.CertificateFee > 0 {
			lines = append(lines, fmt.Sprintf(localize(lang, msgQuoteCert), kzt(p, b.Customs.CertificateFee)))
		}
		lines = append(lines, fmt.Sprintf(localize(lang, msgQuoteCustoms), kzt(p, b.Customs.TotalLocal)))
	}

	for _, o := range b.Options {
		key := msgOptionPickup
		if o.Option == entities.DeliveryDoorToDoor {
			key = msgOptionDoor
		}
		lines = append(lines, fmt.Sprintf(localize(lang, key), usd(p, o.Total)))
	}
	lines = append(lines, localize(lang, msgOptionPrompt))
	return strings.Join(lines, "\n")
}

func (f *QuoteFormatter) ConfirmPrompt(total float64, lang entities.Language) string {
	return fmt.Sprintf(localize(lang, msgConfirmPrompt), usd(f.printer(lang), total))
}

func (f *QuoteFormatter) ReenterField(field string, lang entities.Language) string {
	return fmt.Sprintf(localize(lang, msgReenterField), field)
}

func (f *QuoteFormatter) Text(key string, lang entities.Language) string {
	return localize(lang, key)
}
