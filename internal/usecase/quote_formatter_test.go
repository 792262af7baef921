package usecase

import (
	"strings"
	"testing"

	"cargokz/internal/domain/entities"
	"cargokz/internal/infrastructure/config"
)

func sampleBreakdown() entities.CostBreakdown {
	return entities.CostBreakdown{
		Mode:    entities.QuoteModeCargo,
		Weight:  50,
		Volume:  0.5,
		Density: 100,
		T1Rate:  250,
		T1:      125,
		Options: []entities.OptionTotal{
			{Number: 1, Option: entities.DeliveryWarehousePickup, T2: 19, Total: 144},
			{Number: 2, Option: entities.DeliveryDoorToDoor, T2: 34, Total: 159},
		},
	}
}

func TestQuoteFormatter_Breakdown(t *testing.T) {
	f := NewQuoteFormatter(config.Default())

	t.Run("russian cargo quote", func(t *testing.T) {
		out := f.Breakdown(sampleBreakdown(), entities.LanguageRussian)
		for _, want := range []string{"Расчет доставки", "Самовывоз со склада", "Доставка до двери", "Выберите вариант"} {
			if !strings.Contains(out, want) {
				t.Fatalf("breakdown missing %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, "Пошлина") {
			t.Fatalf("cargo quote must not mention customs:\n%s", out)
		}
	})

	t.Run("customs block in invoice mode", func(t *testing.T) {
		b := sampleBreakdown()
		b.Mode = entities.QuoteModeInvoice
		b.Customs = &entities.CustomsQuote{
			DutyLocal: 48000, VATLocal: 63360,
			BrokerFee: 15000, DeclarationFee: 7000,
			TotalLocal: 133360,
		}
		out := f.Breakdown(b, entities.LanguageRussian)
		for _, want := range []string{"Пошлина", "НДС", "Брокер", "Декларация", "Таможенные платежи"} {
			if !strings.Contains(out, want) {
				t.Fatalf("breakdown missing %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, "Сертификат") {
			t.Fatalf("zero certificate fee must not be shown:\n%s", out)
		}

		b.Customs.CertificateFee = 30000
		out = f.Breakdown(b, entities.LanguageRussian)
		if !strings.Contains(out, "Сертификат") {
			t.Fatalf("certificate fee must be shown when charged:\n%s", out)
		}
	})

	t.Run("multi-item lines and commission", func(t *testing.T) {
		b := sampleBreakdown()
		b.Multi = &entities.MultiItemBreakdown{
			Items: []entities.ItemCost{
				{Index: 1, Quantity: 2, Category: entities.CategoryClothing, Weight: 40, Volume: 0.192, T1: 30, T2: 16},
				{Index: 2, Quantity: 3, Category: entities.CategoryShoes, Weight: 54, Volume: 0.18, T1: 40.5, T2: 20.2},
			},
			Subtotal: 106.7, Commission: 21.34, Total: 128.04,
		}
		out := f.Breakdown(b, entities.LanguageRussian)
		if !strings.Contains(out, "Позиция 1") || !strings.Contains(out, "Позиция 2") {
			t.Fatalf("item lines missing:\n%s", out)
		}
		if !strings.Contains(out, "Комиссия") {
			t.Fatalf("commission line missing:\n%s", out)
		}
	})

	t.Run("each language renders its own catalog", func(t *testing.T) {
		b := sampleBreakdown()
		kk := f.Breakdown(b, entities.LanguageKazakh)
		zh := f.Breakdown(b, entities.LanguageChinese)
		if !strings.Contains(kk, "Жеткізу есебі") {
			t.Fatalf("kazakh breakdown:\n%s", kk)
		}
		if !strings.Contains(zh, "运费计算") {
			t.Fatalf("chinese breakdown:\n%s", zh)
		}
	})
}

func TestQuoteFormatter_Prompts(t *testing.T) {
	f := NewQuoteFormatter(config.Default())

	t.Run("missing prompt lists every field", func(t *testing.T) {
		out := f.MissingPrompt([]string{"вес (кг)", "город назначения"}, entities.LanguageRussian)
		if !strings.Contains(out, "— вес (кг)") || !strings.Contains(out, "— город назначения") {
			t.Fatalf("missing prompt:\n%s", out)
		}
	})

	t.Run("confirm prompt carries the total", func(t *testing.T) {
		out := f.ConfirmPrompt(159, entities.LanguageRussian)
		if !strings.Contains(out, "Итого") || !strings.Contains(out, "159") {
			t.Fatalf("confirm prompt: %q", out)
		}
	})

	t.Run("reenter prompt names the field", func(t *testing.T) {
		out := f.ReenterField("вес (кг)", entities.LanguageRussian)
		if !strings.Contains(out, "вес (кг)") {
			t.Fatalf("reenter prompt: %q", out)
		}
	})

	t.Run("unknown language falls back to russian", func(t *testing.T) {
		got := f.Text(msgComplete, entities.Language("de"))
		want := f.Text(msgComplete, entities.LanguageRussian)
		if got != want {
			t.Fatalf("fallback text = %q, want %q", got, want)
		}
	})
}
