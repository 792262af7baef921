package request

import (
	"strings"

	"cargokz/internal/domain/entities"
)

type LineItemRequest struct {
	Quantity   int     `json:"quantity" binding:"required"`
	Category   string  `json:"category" binding:"required"`
	UnitLength float64 `json:"unit_length" binding:"required"`
	UnitWidth  float64 `json:"unit_width" binding:"required"`
	UnitHeight float64 `json:"unit_height" binding:"required"`
	UnitWeight float64 `json:"unit_weight" binding:"required"`
}

// QuoteRequest is the standalone pricing payload for non-conversational
// callers. City is free text and resolved against the configured
// destination table by the handler.
type QuoteRequest struct {
	Weight float64 `json:"weight" binding:"required"`
	Volume float64 `json:"volume"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Category string `json:"category" binding:"required"`
	City     string `json:"city" binding:"required"`

	InvoiceValue   *float64 `json:"invoice_value"`
	HasCertificate bool     `json:"has_certificate"`

	Fragile bool `json:"fragile"`
	Rural   bool `json:"rural"`

	Language string `json:"language"`

	Items []LineItemRequest `json:"items"`
}

// ToRecord maps the payload onto the domain record. Zone stays unknown
// here; the handler resolves it from the city table.
func (r QuoteRequest) ToRecord() entities.ShipmentRecord {
	rec := entities.ShipmentRecord{
		Weight:         r.Weight,
		Volume:         r.Volume,
		Length:         r.Length,
		Width:          r.Width,
		Height:         r.Height,
		Category:       entities.Category(strings.ToLower(strings.TrimSpace(r.Category))),
		City:           strings.TrimSpace(r.City),
		InvoiceValue:   r.InvoiceValue,
		HasCertificate: r.HasCertificate,
		Fragile:        r.Fragile,
		Rural:          r.Rural,
	}
	for _, it := range r.Items {
		rec.Items = append(rec.Items, entities.LineItem{
			Quantity:   it.Quantity,
			Category:   entities.Category(strings.ToLower(strings.TrimSpace(it.Category))),
			UnitLength: it.UnitLength,
			UnitWidth:  it.UnitWidth,
			UnitHeight: it.UnitHeight,
			UnitWeight: it.UnitWeight,
		})
	}
	return rec
}

func (r QuoteRequest) ResolveLanguage() entities.Language {
	switch strings.ToLower(strings.TrimSpace(r.Language)) {
	case "kk":
		return entities.LanguageKazakh
	case "zh":
		return entities.LanguageChinese
	default:
		return entities.LanguageRussian
	}
}
