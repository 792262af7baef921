package response

import "cargokz/internal/domain/entities"

type CustomsResponse struct {
	DutyUSD        float64 `json:"duty_usd"`
	DutyLocal      float64 `json:"duty_local"`
	VATUSD         float64 `json:"vat_usd"`
	VATLocal       float64 `json:"vat_local"`
	BrokerFee      float64 `json:"broker_fee"`
	DeclarationFee float64 `json:"declaration_fee"`
	CertificateFee float64 `json:"certificate_fee"`
	TotalLocal     float64 `json:"total_local"`
}

type ItemCostResponse struct {
	Index    int     `json:"index"`
	Quantity int     `json:"quantity"`
	Category string  `json:"category"`
	Weight   float64 `json:"weight"`
	Volume   float64 `json:"volume"`
	T1       float64 `json:"t1"`
	T2       float64 `json:"t2"`
}

type OptionResponse struct {
	Number int     `json:"number"`
	Option string  `json:"option"`
	Total  float64 `json:"total"`
}

type QuoteResponse struct {
	Mode    string  `json:"mode"`
	Weight  float64 `json:"weight"`
	Volume  float64 `json:"volume"`
	Density float64 `json:"density"`

	T1 float64 `json:"t1"`

	Customs *CustomsResponse   `json:"customs,omitempty"`
	Items   []ItemCostResponse `json:"items,omitempty"`

	Commission float64          `json:"commission,omitempty"`
	Options    []OptionResponse `json:"options"`
}

// MissingFieldsResponse is the routine "not enough data" outcome for the
// standalone quote endpoint.
type MissingFieldsResponse struct {
	MissingFields []string `json:"missing_fields"`
}

func FromBreakdown(b entities.CostBreakdown) QuoteResponse {
	out := QuoteResponse{
		Mode:    string(b.Mode),
		Weight:  b.Weight,
		Volume:  b.Volume,
		Density: b.Density,
		T1:      b.T1,
	}
	if b.Customs != nil {
		out.Customs = &CustomsResponse{
			DutyUSD:        b.Customs.DutyUSD,
			DutyLocal:      b.Customs.DutyLocal,
			VATUSD:         b.Customs.VATUSD,
			VATLocal:       b.Customs.VATLocal,
			BrokerFee:      b.Customs.BrokerFee,
			DeclarationFee: b.Customs.DeclarationFee,
			CertificateFee: b.Customs.CertificateFee,
			TotalLocal:     b.Customs.TotalLocal,
		}
	}
	if b.Multi != nil {
		out.T1 = b.Multi.Total
		out.Commission = b.Multi.Commission
		for _, it := range b.Multi.Items {
			out.Items = append(out.Items, ItemCostResponse{
				Index:    it.Index,
				Quantity: it.Quantity,
				Category: string(it.Category),
				Weight:   it.Weight,
				Volume:   it.Volume,
				T1:       it.T1,
				T2:       it.T2,
			})
		}
	}
	for _, o := range b.Options {
		out.Options = append(out.Options, OptionResponse{
			Number: o.Number,
			Option: string(o.Option),
			Total:  o.Total,
		})
	}
	return out
}
