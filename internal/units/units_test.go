package units

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	for name, want := range map[string]System{"": Imperial, "imperial": Imperial, "metric": Metric} {
		got, err := Parse(name)
		if err != nil || got != want {
			t.Errorf("Parse(%q) = %v, %v, want %v", name, got, err, want)
		}
	}
	if _, err := Parse("cubits"); err == nil {
		t.Error("Parse accepted an unknown system")
	}
}

func TestImperialIsIdentity(t *testing.T) {
	if ToFeet(Imperial, 75) != 75 || FromFeet(Imperial, 75) != 75 {
		t.Fatal("imperial distance conversion must be identity")
	}
	if ToSquareFeet(Imperial, 5000) != 5000 || FromSquareFeet(Imperial, 5000) != 5000 {
		t.Fatal("imperial area conversion must be identity")
	}
}

func TestMetricRoundTrip(t *testing.T) {
	if got := FromFeet(Metric, ToFeet(Metric, 22.86)); math.Abs(got-22.86) > 1e-9 {
		t.Errorf("distance round trip = %v, want 22.86", got)
	}
	if got := FromSquareFeet(Metric, ToSquareFeet(Metric, 464.5)); math.Abs(got-464.5) > 1e-9 {
		t.Errorf("area round trip = %v, want 464.5", got)
	}
	// 75 ft is 22.86 m.
	if got := FromFeet(Metric, 75); math.Abs(got-22.86) > 1e-9 {
		t.Errorf("FromFeet(Metric, 75) = %v, want 22.86", got)
	}
}

func TestLabels(t *testing.T) {
	if DistanceLabel(Imperial) != "ft" || AreaLabel(Imperial) != "ft²" {
		t.Error("wrong imperial labels")
	}
	if DistanceLabel(Metric) != "m" || AreaLabel(Metric) != "m²" {
		t.Error("wrong metric labels")
	}
}
