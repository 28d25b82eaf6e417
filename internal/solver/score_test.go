package solver

import "testing"

func TestScaleTradeOffTruncates(t *testing.T) {
	tests := []struct {
		tradeOff float64
		want     int64
	}{
		{0, 0},
		{1, 1000},
		{0.5, 500},
		{0.0015, 1},
		{0.9999, 999},
		{1.5, 1500},
	}
	for _, tt := range tests {
		if got := scaleTradeOff(tt.tradeOff); got != tt.want {
			t.Errorf("scaleTradeOff(%v) = %d, want %d", tt.tradeOff, got, tt.want)
		}
	}
}

func TestIncludeGain(t *testing.T) {
	tests := []struct {
		name     string
		tradeOff float64
		cost     int64
		want     int64
	}{
		{"zero trade-off, zero cost", 0, 0, 1},
		{"pure count ignores cost", 1, 9, 1},
		{"blend rewards cheap interval", 0.8, 1, 600},
		{"blend penalizes expensive interval", 0.5, 2, -500},
		{"zero trade-off with cost takes full penalty", 0, 3, -3000},
		{"negative cost penalty floors at zero", 0.5, -4, 500},
		{"trade-off above one extrapolates", 1.5, 2, 1500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := includeGain(tt.tradeOff, scaleTradeOff(tt.tradeOff), tt.cost)
			if got != tt.want {
				t.Errorf("includeGain(%v, cost=%d) = %d, want %d", tt.tradeOff, tt.cost, got, tt.want)
			}
		})
	}
}
