package pricing

import "testing"

func TestRate_TierBoundaries(t *testing.T) {
	tests := []struct {
		name          string
		estimatePrice float64
		want          float64
	}{
		{name: "just below lower bound", estimatePrice: 49999.99, want: 0.02},
		{name: "at lower bound", estimatePrice: 50000, want: 0.035},
		{name: "inside middle tier", estimatePrice: 100000, want: 0.035},
		{name: "at upper bound", estimatePrice: 1500000, want: 0.035},
		{name: "just above upper bound", estimatePrice: 1500000.01, want: 0.05},
		{name: "small price", estimatePrice: 1000, want: 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rate(tt.estimatePrice); got != tt.want {
				t.Fatalf("Rate(%v) = %v, want %v", tt.estimatePrice, got, tt.want)
			}
		})
	}
}

func TestPrice_Rounding(t *testing.T) {
	tests := []struct {
		name          string
		estimatePrice float64
		wantRate      float64
		wantFixPrice  int64
	}{
		{name: "middle tier exact", estimatePrice: 100000, wantRate: 0.035, wantFixPrice: 96500},
		{name: "low tier", estimatePrice: 40000, wantRate: 0.02, wantFixPrice: 39200},
		{name: "high tier", estimatePrice: 2000000, wantRate: 0.05, wantFixPrice: 1900000},
		{name: "fractional result rounds down", estimatePrice: 50025, wantRate: 0.035, wantFixPrice: 48274},
		{name: "half rounds away from zero", estimatePrice: 25, wantRate: 0.02, wantFixPrice: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, fixPrice := Price(tt.estimatePrice)
			if rate != tt.wantRate {
				t.Fatalf("rate = %v, want %v", rate, tt.wantRate)
			}
			if fixPrice != tt.wantFixPrice {
				t.Fatalf("fixPrice = %d, want %d", fixPrice, tt.wantFixPrice)
			}
		})
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{rate: 0.02, want: "0,020"},
		{rate: 0.035, want: "0,035"},
		{rate: 0.05, want: "0,050"},
	}

	for _, tt := range tests {
		if got := FormatRate(tt.rate); got != tt.want {
			t.Fatalf("FormatRate(%v) = %q, want %q", tt.rate, got, tt.want)
		}
	}
}

func TestFormatFixPrice(t *testing.T) {
	tests := []struct {
		fixPrice int64
		want     string
	}{
		{fixPrice: 0, want: "0"},
		{fixPrice: 500, want: "500"},
		{fixPrice: 39200, want: "39,200"},
		{fixPrice: 96500, want: "96,500"},
		{fixPrice: 1900000, want: "1,900,000"},
		{fixPrice: -96500, want: "-96,500"},
	}

	for _, tt := range tests {
		if got := FormatFixPrice(tt.fixPrice); got != tt.want {
			t.Fatalf("FormatFixPrice(%d) = %q, want %q", tt.fixPrice, got, tt.want)
		}
	}
}
