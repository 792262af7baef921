package usecase

import (
	"testing"

	"cargokz/internal/domain/entities"
	"cargokz/internal/infrastructure/config"

	"go.uber.org/zap"
)

func newExtractor(t *testing.T) *TextExtractor {
	t.Helper()
	return NewTextExtractor(config.Default(), zap.NewNop())
}

func TestTextExtractor_Apply_SingleMessage(t *testing.T) {
	e := newExtractor(t)

	rec, missing := e.Apply("50 кг одежда в алматы, объем 0.5 м3", entities.ShipmentRecord{}, entities.LanguageRussian)
	if rec.Weight != 50 {
		t.Fatalf("weight = %v, want 50", rec.Weight)
	}
	if rec.Category != entities.CategoryClothing {
		t.Fatalf("category = %q, want clothing", rec.Category)
	}
	if rec.City != "Алматы" || rec.Zone != 1 {
		t.Fatalf("city/zone = %q/%d, want Алматы/1", rec.City, rec.Zone)
	}
	if rec.Volume != 0.5 {
		t.Fatalf("volume = %v, want 0.5", rec.Volume)
	}
	if len(missing) != 0 {
		t.Fatalf("missing = %v, want none", missing)
	}
}

func TestTextExtractor_Apply_PartialThenMissing(t *testing.T) {
	e := newExtractor(t)

	_, missing := e.Apply("30 кг обуви", entities.ShipmentRecord{}, entities.LanguageRussian)
	want := []string{"город назначения", "объем (м³) или габариты"}
	if len(missing) != len(want) {
		t.Fatalf("missing = %v, want %v", missing, want)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Fatalf("missing[%d] = %q, want %q", i, missing[i], want[i])
		}
	}
}

func TestTextExtractor_Apply_NeverOverwrites(t *testing.T) {
	e := newExtractor(t)

	rec, _ := e.Apply("50 кг одежда", entities.ShipmentRecord{}, entities.LanguageRussian)
	rec, _ = e.Apply("60 кг обувь в астана", rec, entities.LanguageRussian)

	if rec.Weight != 50 {
		t.Fatalf("weight = %v, want the original 50", rec.Weight)
	}
	if rec.Category != entities.CategoryClothing {
		t.Fatalf("category = %q, want the original clothing", rec.Category)
	}
	if rec.City != "Астана" {
		t.Fatalf("city = %q, the gap should still be filled", rec.City)
	}
}

func TestTextExtractor_Dimensions(t *testing.T) {
	e := newExtractor(t)

	t.Run("cm and m spellings give the same volume", func(t *testing.T) {
		cm, _ := e.Apply("коробка 100x50x40 см", entities.ShipmentRecord{}, entities.LanguageRussian)
		m, _ := e.Apply("коробка 1x0.5x0.4 м", entities.ShipmentRecord{}, entities.LanguageRussian)
		if !approx(cm.EffectiveVolume(), 0.2) {
			t.Fatalf("cm volume = %v, want 0.2", cm.EffectiveVolume())
		}
		if !approx(cm.EffectiveVolume(), m.EffectiveVolume()) {
			t.Fatalf("cm volume %v != m volume %v", cm.EffectiveVolume(), m.EffectiveVolume())
		}
	})

	t.Run("unitless large values read as centimeters", func(t *testing.T) {
		rec, _ := e.Apply("размер 60x40x40", entities.ShipmentRecord{}, entities.LanguageRussian)
		if !approx(rec.EffectiveVolume(), 0.096) {
			t.Fatalf("volume = %v, want 0.096", rec.EffectiveVolume())
		}
	})

	t.Run("labeled dimensions", func(t *testing.T) {
		rec, _ := e.Apply("длина 120 ширина 80 высота 60", entities.ShipmentRecord{}, entities.LanguageRussian)
		if !approx(rec.Length, 1.2) || !approx(rec.Width, 0.8) || !approx(rec.Height, 0.6) {
			t.Fatalf("dims = %v/%v/%v, want 1.2/0.8/0.6", rec.Length, rec.Width, rec.Height)
		}
	})

	t.Run("three bare numbers as a last resort", func(t *testing.T) {
		rec, _ := e.Apply("габариты 2 1.5 1", entities.ShipmentRecord{}, entities.LanguageRussian)
		if !approx(rec.EffectiveVolume(), 3) {
			t.Fatalf("volume = %v, want 3", rec.EffectiveVolume())
		}
	})

	t.Run("direct volume wins over dimensions", func(t *testing.T) {
		rec, _ := e.Apply("0.7 куб.м, коробка 60x40x40 см", entities.ShipmentRecord{}, entities.LanguageRussian)
		if rec.Volume != 0.7 {
			t.Fatalf("volume = %v, want the stated 0.7", rec.Volume)
		}
	})
}

func TestTextExtractor_InvoiceValue(t *testing.T) {
	e := newExtractor(t)

	t.Run("trigger plus currency amount", func(t *testing.T) {
		rec, _ := e.Apply("инвойс на 1000 долларов", entities.ShipmentRecord{}, entities.LanguageRussian)
		if rec.InvoiceValue == nil || *rec.InvoiceValue != 1000 {
			t.Fatalf("invoice value = %v, want 1000", rec.InvoiceValue)
		}
	})

	t.Run("dollar-prefix amount", func(t *testing.T) {
		rec, _ := e.Apply("есть инвойс на $1500", entities.ShipmentRecord{}, entities.LanguageRussian)
		if rec.InvoiceValue == nil || *rec.InvoiceValue != 1500 {
			t.Fatalf("invoice value = %v, want 1500", rec.InvoiceValue)
		}
	})

	t.Run("trigger without a currency amount stays cargo mode", func(t *testing.T) {
		rec, _ := e.Apply("инвойс вышлю позже, там 1000", entities.ShipmentRecord{}, entities.LanguageRussian)
		if rec.InvoiceValue != nil {
			t.Fatalf("invoice value = %v, want nil without a currency token", *rec.InvoiceValue)
		}
	})

	t.Run("currency amount without a trigger stays cargo mode", func(t *testing.T) {
		rec, _ := e.Apply("примерно 1000 долларов", entities.ShipmentRecord{}, entities.LanguageRussian)
		if rec.InvoiceValue != nil {
			t.Fatalf("invoice value = %v, want nil without an invoice trigger", *rec.InvoiceValue)
		}
	})
}

func TestTextExtractor_Flags(t *testing.T) {
	e := newExtractor(t)

	rec, _ := e.Apply("хрупкий груз", entities.ShipmentRecord{}, entities.LanguageRussian)
	if !rec.Fragile {
		t.Fatal("fragile flag not set")
	}
	rec, _ = e.Apply("доставка в село под астаной", rec, entities.LanguageRussian)
	if !rec.Fragile || !rec.Rural {
		t.Fatalf("flags must accumulate: fragile=%v rural=%v", rec.Fragile, rec.Rural)
	}
	rec, _ = e.Apply("сертификат есть", rec, entities.LanguageRussian)
	if !rec.HasCertificate {
		t.Fatal("certificate flag not set")
	}
}

func TestTextExtractor_Chinese(t *testing.T) {
	e := newExtractor(t)

	msg := "50公斤衣服到阿拉木图"
	if DetectLanguage(msg) != entities.LanguageChinese {
		t.Fatal("expected Chinese detection")
	}
	rec, missing := e.Apply(msg, entities.ShipmentRecord{}, entities.LanguageChinese)
	if rec.Weight != 50 {
		t.Fatalf("weight = %v, want 50", rec.Weight)
	}
	if rec.Category != entities.CategoryClothing {
		t.Fatalf("category = %q, want clothing", rec.Category)
	}
	if rec.City != "Алматы" {
		t.Fatalf("city = %q, want Алматы", rec.City)
	}
	if len(missing) != 1 {
		t.Fatalf("missing = %v, want only the volume", missing)
	}
}

func TestTextExtractor_MultiItem(t *testing.T) {
	e := newExtractor(t)

	msg := "2 коробки одежда 60x40x40 см по 20 кг, 3 коробки обувь 50x40x30 см по 18 кг, алматы"
	rec, missing := e.Apply(msg, entities.ShipmentRecord{}, entities.LanguageRussian)

	if len(rec.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(rec.Items))
	}
	first, second := rec.Items[0], rec.Items[1]
	if first.Quantity != 2 || first.Category != entities.CategoryClothing || first.UnitWeight != 20 {
		t.Fatalf("first item = %+v", first)
	}
	if !approx(first.UnitVolume(), 0.096) {
		t.Fatalf("first unit volume = %v, want 0.096", first.UnitVolume())
	}
	if second.Quantity != 3 || second.Category != entities.CategoryShoes || second.UnitWeight != 18 {
		t.Fatalf("second item = %+v", second)
	}
	if !approx(rec.Weight, 94) {
		t.Fatalf("aggregate weight = %v, want 94", rec.Weight)
	}
	if !approx(rec.Volume, 0.372) {
		t.Fatalf("aggregate volume = %v, want 0.372", rec.Volume)
	}
	if len(missing) != 0 {
		t.Fatalf("missing = %v, want none", missing)
	}
}

func TestDetectLanguage(t *testing.T) {
	cases := []struct {
		text string
		want entities.Language
	}{
		{"сколько стоит доставка", entities.LanguageRussian},
		{"жеткізу қанша тұрады", entities.LanguageKazakh},
		{"运费多少钱", entities.LanguageChinese},
		{"hello there", entities.LanguageRussian},
	}
	for _, tc := range cases {
		if got := DetectLanguage(tc.text); got != tc.want {
			t.Fatalf("DetectLanguage(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestTextExtractor_ParseContact(t *testing.T) {
	e := newExtractor(t)

	t.Run("name with local phone", func(t *testing.T) {
		c, ok := e.ParseContact("Иван, 87771234567")
		if !ok {
			t.Fatal("expected a parsed contact")
		}
		if c.Name != "Иван" || c.Phone != "87771234567" {
			t.Fatalf("contact = %+v", c)
		}
	})

	t.Run("spaced phone digits collapse", func(t *testing.T) {
		c, ok := e.ParseContact("Айгүл 8 777 123 45 67")
		if !ok {
			t.Fatal("expected a parsed contact")
		}
		if c.Phone != "87771234567" {
			t.Fatalf("phone = %q, want 87771234567", c.Phone)
		}
	})

	t.Run("phone without a name", func(t *testing.T) {
		if _, ok := e.ParseContact("87771234567"); ok {
			t.Fatal("a bare phone must not parse")
		}
	})

	t.Run("name without a phone", func(t *testing.T) {
		if _, ok := e.ParseContact("Иван"); ok {
			t.Fatal("a bare name must not parse")
		}
	})

	t.Run("too many digits", func(t *testing.T) {
		if _, ok := e.ParseContact("Иван 877712345678901"); ok {
			t.Fatal("an overlong number must not parse")
		}
	})
}

func TestTextExtractor_ProtocolKeywords(t *testing.T) {
	e := newExtractor(t)

	for _, msg := range []string{"/reset", "сброс", "заново", "重新开始"} {
		if !e.IsReset(msg) {
			t.Fatalf("IsReset(%q) = false", msg)
		}
	}
	for _, msg := range []string{"да", "да, оформляем", "иә", "是", "是的"} {
		if !e.IsYes(msg) {
			t.Fatalf("IsYes(%q) = false", msg)
		}
	}
	for _, msg := range []string{"нет", "нет, спасибо", "жоқ", "不", "不要"} {
		if !e.IsNo(msg) {
			t.Fatalf("IsNo(%q) = false", msg)
		}
	}
	if e.IsReset("обычное сообщение") {
		t.Fatal("plain text must not reset")
	}

	// Whole words only: these contain "да", "ок" and "нет" as substrings.
	for _, msg := range []string{"когда доставка?", "куда отправить", "сколько стоит"} {
		if e.IsYes(msg) {
			t.Fatalf("IsYes(%q) = true, substring must not confirm", msg)
		}
	}
	if e.IsNo("монета") {
		t.Fatal(`IsNo("монета") = true, substring must not decline`)
	}
}
