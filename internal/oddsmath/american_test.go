package oddsmath

import (
	"math"
	"testing"
)

func TestAmericanToImpliedProbability(t *testing.T) {
	tests := []struct {
		name     string
		american int
		want     float64
	}{
		{name: "even underdog", american: 100, want: 0.5},
		{name: "plus 150", american: 150, want: 0.4},
		{name: "minus 150", american: -150, want: 0.6},
		{name: "heavy favorite", american: -200, want: 2.0 / 3.0},
		{name: "long shot", american: 400, want: 0.2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AmericanToImpliedProbability(tc.american)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestAmericanToImpliedProbabilityRejectsZero(t *testing.T) {
	if _, err := AmericanToImpliedProbability(0); err == nil {
		t.Fatal("expected error for zero odds")
	}
}

func TestAmericanToDecimal(t *testing.T) {
	tests := []struct {
		american int
		want     float64
	}{
		{american: 150, want: 2.5},
		{american: -150, want: 1.0 + 100.0/150.0},
		{american: 100, want: 2.0},
	}

	for _, tc := range tests {
		got, err := AmericanToDecimal(tc.american)
		if err != nil {
			t.Fatalf("AmericanToDecimal(%d): %v", tc.american, err)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("AmericanToDecimal(%d): expected %v, got %v", tc.american, tc.want, got)
		}
	}
}

func TestAmericanToDecimalRejectsZero(t *testing.T) {
	if _, err := AmericanToDecimal(0); err == nil {
		t.Fatal("expected error for zero odds")
	}
}
