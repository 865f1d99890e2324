package service

// TimelinePoint is one sample of the benchmark comparison chart.
type TimelinePoint struct {
	Date      string  `json:"date"`
	Portfolio float64 `json:"portfolio"`
	Nifty50   float64 `json:"nifty50"`
	Gold      float64 `json:"gold"`
}

type Returns struct {
	OneMonth    float64 `json:"1month"`
	ThreeMonths float64 `json:"3months"`
	OneYear     float64 `json:"1year"`
}

type Performance struct {
	Timeline []TimelinePoint    `json:"timeline"`
	Returns  map[string]Returns `json:"returns"`
}

// StaticPerformance returns the fixed benchmark comparison. It is not derived
// from the store; there is no price history to derive it from.
func StaticPerformance() Performance {
	return Performance{
		Timeline: []TimelinePoint{
			{Date: "2024-01-01", Portfolio: 650000, Nifty50: 21000, Gold: 62000},
			{Date: "2024-03-01", Portfolio: 680000, Nifty50: 22100, Gold: 64500},
			{Date: "2024-06-01", Portfolio: 700000, Nifty50: 23500, Gold: 68000},
		},
		Returns: map[string]Returns{
			"portfolio": {OneMonth: 2.3, ThreeMonths: 8.1, OneYear: 15.7},
			"nifty50":   {OneMonth: 1.8, ThreeMonths: 6.2, OneYear: 12.4},
			"gold":      {OneMonth: -0.5, ThreeMonths: 4.1, OneYear: 8.9},
		},
	}
}
