package date

import (
	"encoding/json"
	"slices"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		want      Date
		expectErr bool
	}{
		{"Canonical", "2024-01-31", New(2024, time.January, 31), false},
		{"Lenient single digits", "2024-1-2", New(2024, time.January, 2), false},
		{"Normalized overflow", "2024-2-30", New(2024, time.March, 1), false},
		{"Garbage", "not-a-date", Date{}, true},
		{"Empty", "", Date{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if (err != nil) != tc.expectErr {
				t.Fatalf("Parse(%q) error = %v, want error: %v", tc.input, err, tc.expectErr)
			}
			if !tc.expectErr && got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestEndOfMonth(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		want Date
	}{
		{"Mid month", New(2024, time.March, 12), New(2024, time.March, 31)},
		{"Already last day", New(2024, time.April, 30), New(2024, time.April, 30)},
		{"Leap February", New(2024, time.February, 1), New(2024, time.February, 29)},
		{"Plain February", New(2023, time.February, 15), New(2023, time.February, 28)},
		{"December rollover", New(2024, time.December, 2), New(2024, time.December, 31)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.EndOfMonth(); got != tc.want {
				t.Errorf("EndOfMonth(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSameMonth(t *testing.T) {
	a := New(2024, time.March, 1)
	b := New(2024, time.March, 29)
	c := New(2024, time.April, 1)
	if !a.SameMonth(b) {
		t.Errorf("%v and %v should be in the same month", a, b)
	}
	if b.SameMonth(c) {
		t.Errorf("%v and %v should not be in the same month", b, c)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	want := New(2025, time.July, 1)
	raw, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(raw) != `"2025-07-01"` {
		t.Errorf("Marshal = %s, want %q", raw, `"2025-07-01"`)
	}
	var got Date
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}

func TestIterate(t *testing.T) {
	h1 := new(History[float64])
	h1.Append(MustParse("2024-01-02"), 1).Append(MustParse("2024-01-03"), 2)
	h2 := new(History[float64])
	h2.Append(MustParse("2024-01-03"), 3).Append(MustParse("2024-01-05"), 4)

	var got []Date
	for on := range Iterate(h1, h2) {
		got = append(got, on)
	}
	want := []Date{MustParse("2024-01-02"), MustParse("2024-01-03"), MustParse("2024-01-05")}
	if !slices.Equal(got, want) {
		t.Errorf("Iterate = %v, want %v", got, want)
	}
}
