package currency

import "testing"

func TestFormatVND(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{
			name:   "base room price",
			amount: 150000,
			want:   "150.000 ₫",
		},
		{
			name:   "price with surcharges",
			amount: 510000,
			want:   "510.000 ₫",
		},
		{
			name:   "under one thousand",
			amount: 999,
			want:   "999 ₫",
		},
		{
			name:   "zero",
			amount: 0,
			want:   "0 ₫",
		},
		{
			name:   "millions",
			amount: 1250000,
			want:   "1.250.000 ₫",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatVND(tt.amount); got != tt.want {
				t.Errorf("FormatVND(%d) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
