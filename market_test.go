package frontier

import (
	"errors"
	"fmt"
	"testing"

	"github.com/etnz/frontier/date"
)

func TestResampleMonthly(t *testing.T) {
	m := NewMarket()
	seedMarket(m, "AAA", map[string]float64{
		"2024-01-02": 10,
		"2024-01-15": 11,
		"2024-01-31": 12, // last observation of January
		"2024-02-01": 13,
		"2024-02-28": 14, // last observation of February (the 29th is not traded)
		"2024-03-03": 15,
	})

	monthly := m.Resample(date.Monthly)
	h := monthly.History("AAA")
	if h.Len() != 3 {
		t.Fatalf("monthly history has %d points, want 3", h.Len())
	}

	testCases := []struct {
		label string
		want  float64
	}{
		{"2024-01-31", 12},
		{"2024-02-29", 14}, // relabelled on the last calendar day of the month
		{"2024-03-31", 15},
	}
	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			v, ok := h.Get(date.MustParse(tc.label))
			if !ok {
				t.Fatalf("no monthly observation on %s", tc.label)
			}
			if v != tc.want {
				t.Errorf("monthly price on %s = %v, want %v", tc.label, v, tc.want)
			}
		})
	}
}

func TestResampleDailyIsIdentity(t *testing.T) {
	m := NewMarket()
	seedMarket(m, "AAA", map[string]float64{"2024-01-02": 10, "2024-01-03": 11})
	if got := m.Resample(date.Daily); got != m {
		t.Error("daily resample should return the market unchanged")
	}
}

// fakeProvider serves canned histories, or an error.
type fakeProvider struct {
	histories map[string][]PriceObservation
	err       error
}

func (p *fakeProvider) Daily(symbols []string, from, to date.Date) (map[string][]PriceObservation, error) {
	if p.err != nil {
		return nil, p.err
	}
	out := make(map[string][]PriceObservation)
	for _, s := range symbols {
		if h, ok := p.histories[s]; ok {
			out[s] = h
		}
	}
	return out, nil
}

func TestFetchMarket(t *testing.T) {
	known := []PriceObservation{
		{Symbol: "AAA", Date: date.MustParse("2024-01-02"), AdjustedClose: 10},
		{Symbol: "AAA", Date: date.MustParse("2024-01-03"), AdjustedClose: 11},
	}

	t.Run("success", func(t *testing.T) {
		provider := &fakeProvider{histories: map[string][]PriceObservation{"AAA": known}}
		m, err := FetchMarket(provider, []string{"AAA"}, date.MustParse("2024-01-01"), date.MustParse("2024-02-01"))
		if err != nil {
			t.Fatalf("FetchMarket: %v", err)
		}
		if !m.Has("AAA") || m.History("AAA").Len() != 2 {
			t.Errorf("market not assembled from provider output")
		}
	})

	t.Run("unknown symbol", func(t *testing.T) {
		provider := &fakeProvider{histories: map[string][]PriceObservation{"AAA": known}}
		_, err := FetchMarket(provider, []string{"AAA", "ZZZ"}, date.MustParse("2024-01-01"), date.MustParse("2024-02-01"))
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("missing history error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		provider := &fakeProvider{err: fmt.Errorf("boom")}
		_, err := FetchMarket(provider, []string{"AAA"}, date.MustParse("2024-01-01"), date.MustParse("2024-02-01"))
		if err == nil {
			t.Error("provider failure must surface to the caller")
		}
	})

	t.Run("no symbols", func(t *testing.T) {
		_, err := FetchMarket(&fakeProvider{}, nil, date.Date{}, date.Date{})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("empty request error = %v, want ErrInvalidInput", err)
		}
	})
}
