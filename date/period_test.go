package date

import "testing"

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		input     string
		want      Period
		expectErr bool
	}{
		{"daily", Daily, false},
		{"day", Daily, false},
		{"Monthly", Monthly, false},
		{"month", Monthly, false},
		{"weekly", Daily, true},
		{"", Daily, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParsePeriod(tc.input)
			if (err != nil) != tc.expectErr {
				t.Fatalf("ParsePeriod(%q) error = %v, want error: %v", tc.input, err, tc.expectErr)
			}
			if !tc.expectErr && got != tc.want {
				t.Errorf("ParsePeriod(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestPerYear(t *testing.T) {
	if got := Daily.PerYear(); got != 252 {
		t.Errorf("Daily.PerYear() = %d, want 252", got)
	}
	if got := Monthly.PerYear(); got != 12 {
		t.Errorf("Monthly.PerYear() = %d, want 12", got)
	}
}
