package auction

import "testing"

func TestNextBidStepSchedule(t *testing.T) {
	rules := DefaultRules()

	tcs := []struct {
		current   int
		basePrice int
		want      int
	}{
		{current: 0, basePrice: 50, want: 50},
		{current: 50, basePrice: 50, want: 55},
		{current: 190, basePrice: 50, want: 195},
		{current: 195, basePrice: 50, want: 200},
		{current: 200, basePrice: 50, want: 210},
		{current: 300, basePrice: 50, want: 310},
	}

	for _, tc := range tcs {
		if got := rules.NextBid(tc.current, tc.basePrice); got != tc.want {
			t.Errorf("NextBid(%d, %d) = %d, want %d", tc.current, tc.basePrice, got, tc.want)
		}
	}
}
