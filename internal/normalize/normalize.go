// Package normalize turns loosely typed sheet rows into models.Holding.
// It never fails: every field has a fallback.
package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"portfolio/internal/models"
)

// Canonical field keys, as produced by Key for both the decorated workbook
// headers ("Avg. Price ₹") and the plain names ("AvgPrice").
const (
	FieldSymbol          = "symbol"
	FieldName            = "name"
	FieldQuantity        = "quantity"
	FieldAvgPrice        = "avgprice"
	FieldCurrentPrice    = "currentprice"
	FieldSector          = "sector"
	FieldMarketCap       = "marketcap"
	FieldValue           = "value"
	FieldInvestment      = "investment"
	FieldGainLoss        = "gainloss"
	FieldGainLossPercent = "gainlosspercent"
)

var hundred = decimal.NewFromInt(100)

// Key reduces a column header to its canonical field key: lower case, '%'
// spelled "percent", every other non letter/digit rune dropped.
func Key(header string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(header) {
		switch {
		case r == '%':
			b.WriteString("percent")
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// fields indexes a row by canonical key. When two headers collapse to the
// same key the lexically smaller header wins.
type fields map[string]any

func index(row models.Row) fields {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(fields, len(keys))
	for _, k := range keys {
		canon := Key(k)
		if _, ok := out[canon]; ok {
			continue
		}
		out[canon] = row[k]
	}
	return out
}

func Holding(row models.Row) models.Holding {
	f := index(row)
	rawSector := Text(f[FieldSector])
	sector := rawSector
	if sector == "" {
		sector = models.UnknownSector
	}
	capLabel := Text(f[FieldMarketCap])
	return models.Holding{
		Symbol:          Text(f[FieldSymbol]),
		Name:            Text(f[FieldName]),
		Quantity:        Number(f[FieldQuantity]),
		AvgPrice:        Number(f[FieldAvgPrice]),
		CurrentPrice:    Number(f[FieldCurrentPrice]),
		Sector:          sector,
		RawSector:       rawSector,
		MarketCap:       capLabel,
		CapBucket:       MarketCap(capLabel),
		Value:           Number(f[FieldValue]),
		Investment:      Number(f[FieldInvestment]),
		GainLoss:        Number(f[FieldGainLoss]),
		GainLossPercent: Number(f[FieldGainLossPercent]),
	}
}

func Holdings(rows []models.Row) []models.Holding {
	out := make([]models.Holding, 0, len(rows))
	for _, row := range rows {
		out = append(out, Holding(row))
	}
	return out
}

// SymbolKey is the identity used for lookups: trimmed and case-folded.
func SymbolKey(symbol string) string {
	return strings.ToLower(strings.TrimSpace(symbol))
}

// RowSymbolKey returns SymbolKey of the row's Symbol field.
func RowSymbolKey(row models.Row) string {
	return SymbolKey(Text(index(row)[FieldSymbol]))
}

// Align renames each key of fields onto the header sharing its canonical
// key, so "CurrentPrice" lands on an existing "Current Price ₹". The first
// header per key wins; keys with no counterpart are kept as given. When
// fields carries both a header and an alias of it, the header's value is kept.
func Align(fields models.Row, headers []string) models.Row {
	byKey := make(map[string]string, len(headers))
	for _, h := range headers {
		k := Key(h)
		if _, ok := byKey[k]; ok || k == "" {
			continue
		}
		byKey[k] = h
	}
	out := make(models.Row, len(fields))
	for k, v := range fields {
		target, ok := byKey[Key(k)]
		if !ok || target == k {
			out[k] = v
			continue
		}
		if _, exact := fields[target]; exact {
			continue
		}
		out[target] = v
	}
	return out
}

// MarketCap buckets a free-text label by substring, first match wins.
func MarketCap(label string) models.MarketCapBucket {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "large"):
		return models.MarketCapLarge
	case strings.Contains(l, "mid"):
		return models.MarketCapMid
	case strings.Contains(l, "small"):
		return models.MarketCapSmall
	default:
		return models.MarketCapUnknown
	}
}

// Text renders a raw cell as trimmed text; numbers use the shortest form.
func Text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}

// Number coerces a raw cell to a float. Missing or unparseable values are 0.
func Number(v any) float64 {
	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(val)
	case float32:
		return finite(float64(val))
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case int32:
		return float64(val)
	case uint:
		return float64(val)
	case uint64:
		return float64(val)
	case bool:
		if val {
			return 1
		}
		return 0
	case json.Number:
		return parseNumber(val.String())
	case string:
		return parseNumber(val)
	default:
		return parseNumber(fmt.Sprint(val))
	}
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// parseNumber accepts currency decorated text such as "₹1,20,000.50" and
// "15.7%" (read as the fraction 0.157).
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	percent := false
	if strings.HasSuffix(s, "%") {
		percent = true
		s = strings.TrimSuffix(s, "%")
	}
	s = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Sc, r) || r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	if percent {
		d = d.Div(hundred)
	}
	return d.InexactFloat64()
}
