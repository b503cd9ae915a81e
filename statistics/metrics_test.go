// File: /statistics/metrics_test.go
package statistics

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregate_CountsMatchRows(t *testing.T) {
	rows := [][]string{
		{"PES16", "SOMETHING"},
		{"1", "x"},
		{"1", "y"},
		{"2", "z"},
		{"1"},
	}

	f := Aggregate(rows)

	var total int
	for _, count := range f {
		total += count
	}
	if total != len(rows) {
		t.Fatalf("expected total %d, got %d", len(rows), total)
	}

	if f["1"] != 3 {
		t.Fatalf("expected 3 yes rows, got %d", f["1"])
	}
	if f["2"] != 1 {
		t.Fatalf("expected 1 no row, got %d", f["2"])
	}
	if f["PES16"] != 1 {
		t.Fatalf("expected header row counted once, got %d", f["PES16"])
	}
}

func TestAggregate_Empty(t *testing.T) {
	f := Aggregate(nil)
	if len(f) != 0 {
		t.Fatalf("expected empty frequencies, got %v", f)
	}
}

func TestVolunteerFrequency(t *testing.T) {
	f := Frequencies{"1": 30, "2": 70}
	if got := VolunteerFrequency(f); !almostEqual(got, 0.3) {
		t.Fatalf("expected 0.3, got %v", got)
	}
}

func TestVolunteerFrequency_EmptyDenominator(t *testing.T) {
	if got := VolunteerFrequency(Frequencies{}); got != 0 {
		t.Fatalf("expected 0 for empty frequencies, got %v", got)
	}
	if got := VolunteerFrequency(nil); got != 0 {
		t.Fatalf("expected 0 for nil frequencies, got %v", got)
	}
}

func TestYouthActivityFrequency(t *testing.T) {
	f := Frequencies{"1": 1, "2": 3}
	if got := YouthActivityFrequency(f); !almostEqual(got, 0.25) {
		t.Fatalf("expected 0.25, got %v", got)
	}
}

func TestOnlineFrequency_AllInPerson(t *testing.T) {
	f := Frequencies{"1": 10, "2": 0, "3": 0, "4": 0, "5": 0}
	if got := OnlineFrequency(f); got != 0 {
		t.Fatalf("expected 0 for all in-person responses, got %v", got)
	}
}

func TestOnlineFrequency_AllOnline(t *testing.T) {
	f := Frequencies{"5": 10}
	if got := OnlineFrequency(f); !almostEqual(got, 1) {
		t.Fatalf("expected 1 for all online responses, got %v", got)
	}
}

func TestOnlineFrequency_Mixed(t *testing.T) {
	// (0*4 + 2*4) / 4 / 8 = 0.25
	f := Frequencies{"1": 4, "3": 4}
	if got := OnlineFrequency(f); !almostEqual(got, 0.25) {
		t.Fatalf("expected 0.25, got %v", got)
	}
}

func TestOnlineFrequency_Empty(t *testing.T) {
	if got := OnlineFrequency(Frequencies{}); got != 0 {
		t.Fatalf("expected 0 for empty frequencies, got %v", got)
	}
}

func TestAverageHours(t *testing.T) {
	// (1*2 + 5*1 + 10*1) / 4 = 4.25
	f := Frequencies{"1": 2, "5": 1, "10": 1}
	if got := AverageHours(f); !almostEqual(got, 4.25) {
		t.Fatalf("expected 4.25, got %v", got)
	}
}

func TestAverageHours_Empty(t *testing.T) {
	if got := AverageHours(Frequencies{}); got != 0 {
		t.Fatalf("expected 0 for empty histogram, got %v", got)
	}
}

func TestAverageHours_IgnoresOutOfRangeKeys(t *testing.T) {
	f := Frequencies{"PTS16E": 1, "0": 5, "501": 5, "10": 2}
	if got := AverageHours(f); !almostEqual(got, 10) {
		t.Fatalf("expected 10, got %v", got)
	}
}

func TestMedianHours(t *testing.T) {
	// half-total = 2; hour 1 brings the running value to exactly 0 which
	// does not stop the walk, hour 5 drives it negative
	f := Frequencies{"1": 2, "5": 1, "10": 1}
	if got := MedianHours(f); got != 5 {
		t.Fatalf("expected median 5, got %d", got)
	}
}

func TestMedianHours_SingleBucket(t *testing.T) {
	f := Frequencies{"42": 9}
	if got := MedianHours(f); got != 42 {
		t.Fatalf("expected median 42, got %d", got)
	}
}

func TestMedianHours_Empty(t *testing.T) {
	if got := MedianHours(Frequencies{}); got != 0 {
		t.Fatalf("expected 0 for empty histogram, got %d", got)
	}
}
