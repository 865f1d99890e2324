package models

type MarketCapBucket string

const (
	MarketCapLarge   MarketCapBucket = "Large"
	MarketCapMid     MarketCapBucket = "Mid"
	MarketCapSmall   MarketCapBucket = "Small"
	MarketCapUnknown MarketCapBucket = "Unknown"
)

// MarketCapBuckets lists every bucket in reporting order.
var MarketCapBuckets = []MarketCapBucket{
	MarketCapLarge,
	MarketCapMid,
	MarketCapSmall,
	MarketCapUnknown,
}

const UnknownSector = "Unknown"

// Holding is a Row after field normalization. Every aggregation reads
// holdings, never raw rows.
type Holding struct {
	Symbol          string          `json:"symbol"`
	Name            string          `json:"name"`
	Quantity        float64         `json:"quantity"`
	AvgPrice        float64         `json:"avgPrice"`
	CurrentPrice    float64         `json:"currentPrice"`
	Sector          string          `json:"sector"`
	MarketCap       string          `json:"marketCap"`
	CapBucket       MarketCapBucket `json:"marketCapBucket"`
	Value           float64         `json:"value"`
	Investment      float64         `json:"investment"`
	GainLoss        float64         `json:"gainLoss"`
	GainLossPercent float64         `json:"gainLossPercent"`

	// RawSector is the trimmed sector label before the Unknown fallback.
	RawSector string `json:"-"`
}
