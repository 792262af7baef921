package entities

// QuoteMode distinguishes personal/sample shipments (cargo, no customs)
// from commercial ones (invoice, duty + VAT).
type QuoteMode string

const (
	QuoteModeCargo   QuoteMode = "cargo"
	QuoteModeInvoice QuoteMode = "invoice"
)

// CustomsQuote is the customs portion of an invoice-mode quote. USD amounts
// carry the unrounded math; local (KZT) amounts are rounded for display.
// CertificateFee is zero unless the category requires a certificate and the
// shipper does not hold one.
type CustomsQuote struct {
	DutyUSD        float64 `json:"duty_usd"`
	DutyLocal      float64 `json:"duty_local"`
	VATUSD         float64 `json:"vat_usd"`
	VATLocal       float64 `json:"vat_local"`
	BrokerFee      float64 `json:"broker_fee"`
	DeclarationFee float64 `json:"declaration_fee"`
	CertificateFee float64 `json:"certificate_fee"`
	TotalLocal     float64 `json:"total_local"`
}

// ItemCost is the priced form of one LineItem.
type ItemCost struct {
	Index    int      `json:"index"`
	Quantity int      `json:"quantity"`
	Category Category `json:"category"`
	Weight   float64  `json:"weight"`
	Volume   float64  `json:"volume"`
	Density  float64  `json:"density"`
	T1       float64  `json:"t1"`
	T2       float64  `json:"t2"`
}

// MultiItemBreakdown is the aggregate of a multi-item order. Commission is
// applied once, on the summed T1+T2, matching how surcharges are billed per
// shipment rather than per item.
type MultiItemBreakdown struct {
	Items       []ItemCost `json:"items"`
	TotalWeight float64    `json:"total_weight"`
	TotalVolume float64    `json:"total_volume"`
	Subtotal    float64    `json:"subtotal"`
	Commission  float64    `json:"commission"`
	Total       float64    `json:"total"`
}

// T2Total is the last-mile portion already included in Subtotal. Delivery
// options derive their surcharged T2 from it rather than pricing the last
// mile a second time.
func (m MultiItemBreakdown) T2Total() float64 {
	var t float64
	for _, it := range m.Items {
		t += it.T2
	}
	return t
}

// OptionTotal is one selectable delivery option with the grand total the
// user would agree to. Number is the discrete signal ("1"/"2") accepted by
// the intake protocol.
type OptionTotal struct {
	Number int            `json:"number"`
	Option DeliveryOption `json:"option"`
	T2     float64        `json:"t2"`
	Total  float64        `json:"total"`
}

// CostBreakdown is the full quote computed once per completed record and
// cached on the session, so the total confirmed later is exactly the total
// shown. Freight amounts are USD; customs totals are local currency.
type CostBreakdown struct {
	Mode    QuoteMode `json:"mode"`
	Weight  float64   `json:"weight"`
	Volume  float64   `json:"volume"`
	Density float64   `json:"density"`

	T1Rate float64 `json:"t1_rate"`
	T1     float64 `json:"t1"`

	Customs *CustomsQuote       `json:"customs,omitempty"`
	Multi   *MultiItemBreakdown `json:"multi,omitempty"`

	Options []OptionTotal `json:"options"`
}

// OptionByNumber returns the cached option for a discrete choice signal.
func (b CostBreakdown) OptionByNumber(n int) (OptionTotal, bool) {
	for _, o := range b.Options {
		if o.Number == n {
			return o, true
		}
	}
	return OptionTotal{}, false
}
