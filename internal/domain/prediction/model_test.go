package prediction

import (
	"reflect"
	"testing"
)

func TestPredictDeterministic(t *testing.T) {
	s := Signals{Users: 5000, Revenue: 120000, GrowthPercent: 18, TeamSize: 6, FundingAmount: 250000}
	first := Predict(s)
	for i := 0; i < 5; i++ {
		if got := Predict(s); !reflect.DeepEqual(first, got) {
			t.Fatalf("expected identical forecasts, got %+v vs %+v", first, got)
		}
	}
}

func TestPredictBounds(t *testing.T) {
	cases := []Signals{
		{},
		{Users: -10, Revenue: -5, GrowthPercent: -3, TeamSize: -1, FundingAmount: -100},
		{Users: 1 << 30, Revenue: 1e12, GrowthPercent: 1e6, TeamSize: 10000, FundingAmount: 1e12},
	}
	for _, s := range cases {
		f := Predict(s)
		if f.Score < 0 || f.Score > 100 {
			t.Fatalf("score out of bounds for %+v: %v", s, f.Score)
		}
	}
}

func TestPredictZeroSignalsRisky(t *testing.T) {
	f := Predict(Signals{})
	if f.Score != 0 {
		t.Fatalf("expected zero score, got %v", f.Score)
	}
	if f.Outlook != OutlookRisky {
		t.Fatalf("expected risky outlook, got %s", f.Outlook)
	}
	if len(f.Drivers) != 0 {
		t.Fatalf("expected no drivers, got %v", f.Drivers)
	}
}

func TestPredictStrongSignalsPromising(t *testing.T) {
	f := Predict(Signals{Users: 200000, Revenue: 5e6, GrowthPercent: 300, TeamSize: 40, FundingAmount: 5e6})
	if f.Outlook != OutlookPromising {
		t.Fatalf("expected promising outlook, got %s (score %v)", f.Outlook, f.Score)
	}
	if len(f.Drivers) == 0 {
		t.Fatalf("expected drivers to be reported")
	}
}
