package config

import "cargokz/internal/domain/entities"

// Default returns the built-in tables for the Китай→Казахстан lane.
// Rates are USD for freight, KZT for customs fees.
func Default() Tables {
	return Tables{
		ExchangeRate:      480,
		VATRate:           0.12,
		CommissionRate:    0.20,
		DensityUnitCutoff: 100,

		FragileMultiplier: 1.5,
		RuralMultiplier:   2.0,

		BrokerFee:      15000,
		DeclarationFee: 7000,
		CertificateFee: 30000,

		DefaultCategory: entities.CategoryGeneral,

		QuickT1: map[entities.Category][]T1Band{
			entities.CategoryClothing: {
				{MaxDensity: 100, Rate: 250}, // per m3
				{MaxDensity: 200, Rate: 0.90},
				{MaxDensity: 400, Rate: 0.75},
				{MaxDensity: 1000, Rate: 0.65},
			},
			entities.CategoryShoes: {
				{MaxDensity: 100, Rate: 260},
				{MaxDensity: 200, Rate: 0.95},
				{MaxDensity: 400, Rate: 0.80},
				{MaxDensity: 1000, Rate: 0.70},
			},
			entities.CategoryFabric: {
				{MaxDensity: 100, Rate: 220},
				{MaxDensity: 200, Rate: 0.80},
				{MaxDensity: 400, Rate: 0.65},
				{MaxDensity: 1000, Rate: 0.55},
			},
			entities.CategoryToys: {
				{MaxDensity: 100, Rate: 270},
				{MaxDensity: 200, Rate: 1.00},
				{MaxDensity: 400, Rate: 0.85},
				{MaxDensity: 1000, Rate: 0.75},
			},
			entities.CategoryElectronics: {
				{MaxDensity: 100, Rate: 320},
				{MaxDensity: 200, Rate: 1.30},
				{MaxDensity: 400, Rate: 1.10},
				{MaxDensity: 1000, Rate: 0.95},
			},
			entities.CategoryCosmetics: {
				{MaxDensity: 100, Rate: 300},
				{MaxDensity: 200, Rate: 1.20},
				{MaxDensity: 400, Rate: 1.00},
				{MaxDensity: 1000, Rate: 0.90},
			},
			entities.CategoryHousehold: {
				{MaxDensity: 100, Rate: 240},
				{MaxDensity: 200, Rate: 0.85},
				{MaxDensity: 400, Rate: 0.70},
				{MaxDensity: 1000, Rate: 0.60},
			},
			entities.CategoryAutoParts: {
				{MaxDensity: 100, Rate: 280},
				{MaxDensity: 200, Rate: 1.10},
				{MaxDensity: 400, Rate: 0.90},
				{MaxDensity: 1000, Rate: 0.80},
			},
			entities.CategoryGeneral: {
				{MaxDensity: 100, Rate: 280},
				{MaxDensity: 200, Rate: 1.10},
				{MaxDensity: 400, Rate: 0.90},
				{MaxDensity: 1000, Rate: 0.80},
			},
		},

		DetailedT1: map[entities.Category][]T1Rule{
			entities.CategoryClothing: {
				{MinDensity: 0, PricePerKg: 2.50},
				{MinDensity: 100, PricePerKg: 0.90},
				{MinDensity: 200, PricePerKg: 0.75},
				{MinDensity: 400, PricePerKg: 0.65},
			},
			entities.CategoryShoes: {
				{MinDensity: 0, PricePerKg: 2.60},
				{MinDensity: 100, PricePerKg: 0.95},
				{MinDensity: 200, PricePerKg: 0.80},
				{MinDensity: 400, PricePerKg: 0.70},
			},
			entities.CategoryFabric: {
				{MinDensity: 0, PricePerKg: 2.20},
				{MinDensity: 100, PricePerKg: 0.80},
				{MinDensity: 200, PricePerKg: 0.65},
				{MinDensity: 400, PricePerKg: 0.55},
			},
			entities.CategoryToys: {
				{MinDensity: 0, PricePerKg: 2.70},
				{MinDensity: 100, PricePerKg: 1.00},
				{MinDensity: 200, PricePerKg: 0.85},
				{MinDensity: 400, PricePerKg: 0.75},
			},
			entities.CategoryElectronics: {
				{MinDensity: 0, PricePerKg: 3.20},
				{MinDensity: 100, PricePerKg: 1.30},
				{MinDensity: 200, PricePerKg: 1.10},
				{MinDensity: 400, PricePerKg: 0.95},
			},
			entities.CategoryCosmetics: {
				{MinDensity: 0, PricePerKg: 3.00},
				{MinDensity: 100, PricePerKg: 1.20},
				{MinDensity: 200, PricePerKg: 1.00},
				{MinDensity: 400, PricePerKg: 0.90},
			},
			entities.CategoryHousehold: {
				{MinDensity: 0, PricePerKg: 2.40},
				{MinDensity: 100, PricePerKg: 0.85},
				{MinDensity: 200, PricePerKg: 0.70},
				{MinDensity: 400, PricePerKg: 0.60},
			},
			entities.CategoryAutoParts: {
				{MinDensity: 0, PricePerKg: 2.80},
				{MinDensity: 100, PricePerKg: 1.10},
				{MinDensity: 200, PricePerKg: 0.90},
				{MinDensity: 400, PricePerKg: 0.80},
			},
			entities.CategoryGeneral: {
				{MinDensity: 0, PricePerKg: 2.80},
				{MinDensity: 100, PricePerKg: 1.10},
				{MinDensity: 200, PricePerKg: 0.90},
				{MinDensity: 400, PricePerKg: 0.80},
			},
		},

		DutyRates: map[entities.Category]float64{
			entities.CategoryClothing:    0.10,
			entities.CategoryShoes:       0.10,
			entities.CategoryFabric:      0.08,
			entities.CategoryToys:        0.05,
			entities.CategoryElectronics: 0.15,
			entities.CategoryCosmetics:   0.20,
			entities.CategoryHousehold:   0.12,
			entities.CategoryAutoParts:   0.15,
			entities.CategoryGeneral:     0.10,
		},

		CertificateRequired: []entities.Category{
			entities.CategoryCosmetics,
			entities.CategoryElectronics,
			entities.CategoryToys,
		},

		Cities: []CityEntry{
			{Name: "Алматы", Zone: 1, Keywords: []string{"алматы", "almaty", "алмата", "阿拉木图"}},
			{Name: "Астана", Zone: 2, Keywords: []string{"астана", "astana", "нур-султан", "阿斯塔纳"}},
			{Name: "Шымкент", Zone: 2, Keywords: []string{"шымкент", "чимкент", "shymkent", "奇姆肯特"}},
			{Name: "Караганда", Zone: 3, Keywords: []string{"караганда", "қарағанды", "karaganda"}},
			{Name: "Тараз", Zone: 3, Keywords: []string{"тараз", "taraz"}},
			{Name: "Павлодар", Zone: 3, Keywords: []string{"павлодар", "pavlodar"}},
			{Name: "Актобе", Zone: 4, Keywords: []string{"актобе", "ақтөбе", "aktobe"}},
			{Name: "Усть-Каменогорск", Zone: 4, Keywords: []string{"усть-каменогорск", "өскемен", "oskemen"}},
			{Name: "Атырау", Zone: 5, Keywords: []string{"атырау", "atyrau"}},
			{Name: "Актау", Zone: 5, Keywords: []string{"актау", "ақтау", "aktau"}},
		},

		QuickT2: map[entities.Zone]ZoneRate{
			1: {Base: 10, ExtraPerKg: 0.30},
			2: {Base: 14, ExtraPerKg: 0.40},
			3: {Base: 18, ExtraPerKg: 0.55},
			4: {Base: 22, ExtraPerKg: 0.70},
			5: {Base: 28, ExtraPerKg: 0.90},
		},

		DetailedT2: map[entities.Zone]ZoneDetail{
			1: {Buckets: bucketRamp(3.0, 0.37), ExtraPerKg: 0.30},
			2: {Buckets: bucketRamp(4.0, 0.53), ExtraPerKg: 0.40},
			3: {Buckets: bucketRamp(5.0, 0.69), ExtraPerKg: 0.55},
			4: {Buckets: bucketRamp(6.0, 0.85), ExtraPerKg: 0.70},
			5: {Buckets: bucketRamp(7.5, 1.08), ExtraPerKg: 0.90},
		},

		DoorFeeUSD: map[entities.Zone]float64{
			1: 15,
			2: 20,
			3: 25,
			4: 35,
			5: 45,
		},

		CategoryKeywords: []CategoryKeywords{
			{Category: entities.CategoryClothing, Keywords: []string{"одежд", "киім", "衣服", "服装", "clothes", "clothing"}},
			{Category: entities.CategoryShoes, Keywords: []string{"обувь", "обуви", "аяқ киім", "鞋", "shoes"}},
			{Category: entities.CategoryFabric, Keywords: []string{"ткан", "мата", "布料", "面料", "fabric"}},
			{Category: entities.CategoryToys, Keywords: []string{"игрушк", "ойыншық", "玩具", "toys"}},
			{Category: entities.CategoryElectronics, Keywords: []string{"электрон", "техник", "телефон", "电子", "手机", "electronics"}},
			{Category: entities.CategoryCosmetics, Keywords: []string{"косметик", "косметика", "化妆品", "cosmetics"}},
			{Category: entities.CategoryHousehold, Keywords: []string{"посуд", "хозтовар", "бытов", "ыдыс", "家居", "household"}},
			{Category: entities.CategoryAutoParts, Keywords: []string{"запчаст", "автозапчаст", "бөлшек", "配件", "汽配", "autoparts"}},
			{Category: entities.CategoryGeneral, Keywords: []string{"разное", "товар общего", "普货", "general"}},
		},

		Keywords: Keywords{
			WeightUnits: []string{"кг", "kg", "килограмм", "келі", "公斤", "千克"},
			VolumeUnits: []string{"м3", "м³", "m3", "куб", "куб.м", "立方", "立方米"},
			MeterUnits:  []string{"м", "m", "метр", "米"},
			CmUnits:     []string{"см", "cm", "сантиметр", "厘米"},

			InvoiceTriggers: []string{"инвойс", "invoice", "发票", "счет-фактур", "шот-фактур"},
			CurrencyTokens:  []string{"$", "usd", "долл", "доллар", "美元"},
			Certificate:     []string{"сертификат есть", "есть сертификат", "сертификат бар", "有证书", "has certificate"},

			Fragile: []string{"хрупк", "сынғыш", "易碎", "fragile"},
			Rural:   []string{"село", "деревн", "поселок", "посёлок", "аул", "ауыл", "сельск", "村", "rural"},

			// CJK has no word boundaries, so the common suffixed forms are
			// listed alongside the bare characters.
			Reset: []string{"/reset", "сброс", "заново", "отмена", "қайта бастау", "болдырмау", "重新开始", "取消"},
			Yes:   []string{"да", "ага", "иә", "ия", "ок", "yes", "是", "是的", "好", "好的"},
			No:    []string{"нет", "жоқ", "no", "不", "不是", "不要", "отказ"},
		},
	}
}

// bucketRamp builds the 20 per-kg bucket prices as a linear ramp from the
// first-kg price.
func bucketRamp(first, step float64) []float64 {
	out := make([]float64, 20)
	for i := range out {
		out[i] = first + step*float64(i)
	}
	return out
}
