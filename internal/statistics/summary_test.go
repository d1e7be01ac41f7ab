package statistics

import (
	"math"
	"testing"
)

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s != (Summary{}) {
		t.Errorf("expected zero summary for empty input, got %+v", s)
	}
}

func TestSummarize_SingleValue(t *testing.T) {
	s := Summarize([]float64{42})
	want := Summary{Count: 1, Min: 42, Max: 42, Mean: 42, Median: 42}
	if s != want {
		t.Errorf("Summarize([42]) = %+v, want %+v", s, want)
	}
}

func TestSummarize_OddCount(t *testing.T) {
	s := Summarize([]float64{9, 1, 5})
	if s.Min != 1 || s.Max != 9 || s.Median != 5 || s.Mean != 5 {
		t.Errorf("unexpected summary %+v", s)
	}
}

func TestSummarize_EvenCount(t *testing.T) {
	s := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if s.Count != 8 {
		t.Errorf("count = %d, want 8", s.Count)
	}
	if s.Median != 4.5 {
		t.Errorf("median = %f, want 4.5", s.Median)
	}
	if s.Mean != 5 {
		t.Errorf("mean = %f, want 5", s.Mean)
	}
	if math.Abs(s.StdDev-2) > 1e-9 {
		t.Errorf("stddev = %f, want 2", s.StdDev)
	}
}

func TestSummarize_DoesNotReorderInput(t *testing.T) {
	in := []float64{3, 1, 2}
	Summarize(in)
	if in[0] != 3 || in[1] != 1 || in[2] != 2 {
		t.Errorf("input was modified: %v", in)
	}
}

func TestRatios(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"efficiency", Efficiency(3, 4), 75},
		{"efficiency no tokens", Efficiency(0, 0), 0},
		{"repetition", RepetitionRate(3, 4), 25},
		{"repetition no tokens", RepetitionRate(0, 0), 0},
		{"share", Share(1, 8), 12.5},
		{"share of nothing", Share(3, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-9 {
				t.Errorf("got %f, want %f", tt.got, tt.want)
			}
		})
	}
}
