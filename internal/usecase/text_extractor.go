package usecase

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"cargokz/internal/domain/entities"
	"cargokz/internal/infrastructure/config"

	"go.uber.org/zap"
)

// TextExtractor turns one free-text message into shipment attributes. It
// only ever fills gaps in the accumulated record: a field set on an earlier
// turn is never overwritten. Extraction is heuristic by contract — anything
// it cannot find is reported as a missing field, never guessed.

type TextExtractor struct {
	tables config.Tables
	log    *zap.Logger

	numRe     *regexp.Regexp
	weightRe  *regexp.Regexp
	volumeRe  *regexp.Regexp
	dimsRe    *regexp.Regexp
	labelRes  [3]*regexp.Regexp
	tripleRe  *regexp.Regexp
	invoiceRe *regexp.Regexp
	prefixRe  *regexp.Regexp
	groupRe   *regexp.Regexp
	phoneRe   *regexp.Regexp
}

const numPat = `(\d+(?:[.,]\d+)?)`

func NewTextExtractor(tables config.Tables, log *zap.Logger) *TextExtractor {
	kw := tables.Keywords
	lenUnit := `(` + alternation(append(append([]string{}, kw.CmUnits...), kw.MeterUnits...)) + `)?`
	cross := `\s*[xх×*]\s*`

	return &TextExtractor{
		tables: tables,
		log:    log,

		numRe:    regexp.MustCompile(numPat),
		weightRe: regexp.MustCompile(numPat + `\s*(?:` + alternation(kw.WeightUnits) + `)`),
		volumeRe: regexp.MustCompile(numPat + `\s*(?:` + alternation(kw.VolumeUnits) + `)`),
		dimsRe:   regexp.MustCompile(numPat + cross + numPat + cross + numPat + `\s*` + lenUnit),
		labelRes: [3]*regexp.Regexp{
			regexp.MustCompile(`(?:длина|ұзындығы|长|length)\D{0,4}` + numPat),
			regexp.MustCompile(`(?:ширина|ені|宽|width)\D{0,4}` + numPat),
			regexp.MustCompile(`(?:высота|биіктігі|高|height)\D{0,4}` + numPat),
		},
		tripleRe:  regexp.MustCompile(numPat + `\s+` + numPat + `\s+` + numPat),
		invoiceRe: regexp.MustCompile(numPat + `\s*(?:` + alternation(kw.CurrencyTokens) + `)`),
		prefixRe:  regexp.MustCompile(`[$]\s*` + numPat),
		groupRe: regexp.MustCompile(`(\d+)\s*(?:шт|мест|коробок|коробки|дана|件|pcs)\.?\s*([^\d]*?)` +
			numPat + cross + numPat + cross + numPat + `\s*` + lenUnit + `[\s,;по]*` +
			numPat + `\s*(?:` + alternation(kw.WeightUnits) + `)`),
		phoneRe: regexp.MustCompile(`\d[\d\s\-\(\)]{7,}\d`),
	}
}

// alternation builds a regexp alternation from literal keywords, longest
// first so e.g. "куб.м" wins over "куб".
func alternation(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = regexp.QuoteMeta(strings.ToLower(w))
	}
	return strings.Join(quoted, "|")
}

func parseNum(s string) float64 {
	v, _ := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	return v
}

// DetectLanguage classifies by script: CJK ideographs mean Chinese,
// Kazakh-specific Cyrillic letters mean Kazakh, any other Cyrillic means
// Russian, and Russian is the default.
func DetectLanguage(text string) entities.Language {
	hasKazakh, hasCyrillic := false, false
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			return entities.LanguageChinese
		}
		if strings.ContainsRune("әғқңөұүһӘҒҚҢӨҰҮҺ", r) {
			hasKazakh = true
		} else if unicode.Is(unicode.Cyrillic, r) {
			hasCyrillic = true
		}
	}
	switch {
	case hasKazakh:
		return entities.LanguageKazakh
	case hasCyrillic:
		return entities.LanguageRussian
	default:
		return entities.LanguageRussian
	}
}

// inferMeters is the single best-effort cm-vs-m rule shared by every
// dimension parser: an explicit cm token means centimeters, an explicit
// meter token means meters, and without either a value above 5 is assumed
// to be centimeters. Lossy by design of the heuristic; documented, not
// exact.
func (e *TextExtractor) inferMeters(v float64, unit string) float64 {
	lu := strings.ToLower(unit)
	for _, cm := range e.tables.Keywords.CmUnits {
		if lu == strings.ToLower(cm) {
			return v / 100
		}
	}
	for _, m := range e.tables.Keywords.MeterUnits {
		if lu == strings.ToLower(m) {
			return v
		}
	}
	if v > 5 {
		return v / 100
	}
	return v
}

func containsAny(lower string, kws []string) bool {
	for _, kw := range kws {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// Apply extracts what it can from msg into rec and returns the updated
// record plus the ordered, localized list of mandatory fields still unset.
func (e *TextExtractor) Apply(msg string, rec entities.ShipmentRecord, lang entities.Language) (entities.ShipmentRecord, []string) {
	lower := strings.ToLower(msg)

	if len(rec.Items) == 0 && e.looksMultiItem(lower) {
		if items := e.parseLineItems(lower); len(items) >= 2 {
			rec.Items = items
			if rec.Weight == 0 {
				for _, it := range items {
					rec.Weight += it.TotalWeight()
				}
			}
			if rec.Volume == 0 && !rec.HasDimensions() {
				for _, it := range items {
					rec.Volume += it.TotalVolume()
				}
			}
		} else {
			e.log.Warn("multi-item classification without parsable groups, treating as single item")
		}
	}

	consumed := lower
	if rec.Weight == 0 && len(rec.Items) == 0 {
		if ms := e.weightRe.FindAllStringSubmatchIndex(lower, -1); len(ms) > 0 {
			if len(ms) > 1 {
				e.log.Warn("ambiguous weight, taking first match", zap.Int("matches", len(ms)))
			}
			rec.Weight = parseNum(lower[ms[0][2]:ms[0][3]])
			consumed = consumed[:ms[0][0]] + strings.Repeat(" ", ms[0][1]-ms[0][0]) + consumed[ms[0][1]:]
		}
	}

	if rec.Volume == 0 && !rec.HasDimensions() && len(rec.Items) == 0 {
		e.extractVolume(consumed, &rec)
	}

	if rec.Category == "" {
		rec.Category = e.matchCategory(lower)
	}

	if rec.City == "" {
		for _, c := range e.tables.Cities {
			if containsAny(lower, c.Keywords) {
				rec.City = c.Name
				rec.Zone = c.Zone
				break
			}
		}
	}

	if rec.InvoiceValue == nil && containsAny(lower, e.tables.Keywords.InvoiceTriggers) {
		// A bare number is not enough: a currency token must accompany it.
		if m := e.invoiceRe.FindStringSubmatch(lower); m != nil {
			v := parseNum(m[1])
			rec.InvoiceValue = &v
		} else if m := e.prefixRe.FindStringSubmatch(lower); m != nil {
			v := parseNum(m[1])
			rec.InvoiceValue = &v
		}
	}

	// Flags accumulate: once true they stay true for the session.
	if containsAny(lower, e.tables.Keywords.Fragile) {
		rec.Fragile = true
	}
	if containsAny(lower, e.tables.Keywords.Rural) {
		rec.Rural = true
	}
	if containsAny(lower, e.tables.Keywords.Certificate) {
		rec.HasCertificate = true
	}

	return rec, e.MissingFields(rec, lang)
}

func (e *TextExtractor) extractVolume(text string, rec *entities.ShipmentRecord) {
	if m := e.volumeRe.FindStringSubmatch(text); m != nil {
		rec.Volume = parseNum(m[1])
		return
	}
	if m := e.dimsRe.FindStringSubmatch(text); m != nil {
		rec.Length = e.inferMeters(parseNum(m[1]), m[4])
		rec.Width = e.inferMeters(parseNum(m[2]), m[4])
		rec.Height = e.inferMeters(parseNum(m[3]), m[4])
		return
	}
	if l, w, h, ok := e.labeledDims(text); ok {
		rec.Length, rec.Width, rec.Height = l, w, h
		return
	}
	// Last resort: three bare numbers in sequence.
	if m := e.tripleRe.FindStringSubmatch(text); m != nil {
		rec.Length = e.inferMeters(parseNum(m[1]), "")
		rec.Width = e.inferMeters(parseNum(m[2]), "")
		rec.Height = e.inferMeters(parseNum(m[3]), "")
	}
}

func (e *TextExtractor) labeledDims(text string) (l, w, h float64, ok bool) {
	var vals [3]float64
	for i, re := range e.labelRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return 0, 0, 0, false
		}
		vals[i] = e.inferMeters(parseNum(m[1]), "")
	}
	return vals[0], vals[1], vals[2], true
}

func (e *TextExtractor) matchCategory(lower string) entities.Category {
	for _, ck := range e.tables.CategoryKeywords {
		if containsAny(lower, ck.Keywords) {
			return ck.Category
		}
	}
	return ""
}

// looksMultiItem classifies a message as a multi-item order when it carries
// two or more distinct quantity or weight token groups.
func (e *TextExtractor) looksMultiItem(lower string) bool {
	if len(e.weightRe.FindAllString(lower, -1)) >= 2 {
		return true
	}
	return len(e.groupRe.FindAllString(lower, -1)) >= 2
}

// parseLineItems scans repeated "<qty> <packaging> <category> <LxWxH> <unit
// weight>" groups. Groups that do not parse are skipped with a warning, not
// fatal.
func (e *TextExtractor) parseLineItems(lower string) []entities.LineItem {
	var items []entities.LineItem
	for _, m := range e.groupRe.FindAllStringSubmatch(lower, -1) {
		qty, err := strconv.Atoi(m[1])
		if err != nil || qty < 1 {
			e.log.Warn("skipping line item group with bad quantity", zap.String("group", m[0]))
			continue
		}
		cat := e.matchCategory(m[2])
		if cat == "" {
			e.log.Warn("line item group without category keyword, using default",
				zap.String("group", m[0]))
			cat = e.tables.DefaultCategory
		}
		it := entities.LineItem{
			Quantity:   qty,
			Category:   cat,
			UnitLength: e.inferMeters(parseNum(m[3]), m[6]),
			UnitWidth:  e.inferMeters(parseNum(m[4]), m[6]),
			UnitHeight: e.inferMeters(parseNum(m[5]), m[6]),
			UnitWeight: parseNum(m[7]),
		}
		if it.UnitWeight <= 0 || it.UnitVolume() <= 0 {
			e.log.Warn("skipping unparsable line item group", zap.String("group", m[0]))
			continue
		}
		items = append(items, it)
	}
	return items
}

// MissingFields lists the mandatory fields still unset, ordered and
// localized. Pricing must not run while this list is non-empty.
func (e *TextExtractor) MissingFields(rec entities.ShipmentRecord, lang entities.Language) []string {
	var missing []string
	if rec.Weight <= 0 {
		missing = append(missing, localize(lang, msgFieldWeight))
	}
	if rec.Category == "" {
		missing = append(missing, localize(lang, msgFieldCategory))
	}
	if rec.City == "" {
		missing = append(missing, localize(lang, msgFieldCity))
	}
	if rec.EffectiveVolume() <= 0 {
		missing = append(missing, localize(lang, msgFieldVolume))
	}
	return missing
}

// ParseContact expects a name plus a 10-11 digit phone in one message.
func (e *TextExtractor) ParseContact(msg string) (entities.Contact, bool) {
	loc := e.phoneRe.FindStringIndex(msg)
	if loc == nil {
		return entities.Contact{}, false
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, msg[loc[0]:loc[1]])
	if len(digits) < 10 || len(digits) > 11 {
		return entities.Contact{}, false
	}
	name := strings.Trim(msg[:loc[0]]+msg[loc[1]:], " \t\n,.;:-")
	if name == "" {
		return entities.Contact{}, false
	}
	return entities.Contact{Name: name, Phone: digits}, true
}

// matchesToken compares whole words against the keyword list. Substring
// matching is wrong for this vocabulary: "когда" contains "да", "сколько"
// contains "ок".
func matchesToken(msg string, kws []string) bool {
	lower := strings.ToLower(strings.TrimSpace(msg))
	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, kw := range kws {
		k := strings.ToLower(kw)
		if lower == k {
			return true
		}
		bare := strings.TrimPrefix(k, "/")
		for _, tok := range tokens {
			if tok == bare {
				return true
			}
		}
	}
	return false
}

// IsReset reports whether the message is one of the reset commands.
func (e *TextExtractor) IsReset(msg string) bool {
	return matchesToken(msg, e.tables.Keywords.Reset)
}

func (e *TextExtractor) IsYes(msg string) bool {
	return matchesToken(msg, e.tables.Keywords.Yes)
}

func (e *TextExtractor) IsNo(msg string) bool {
	return matchesToken(msg, e.tables.Keywords.No)
}
