package fallback

import (
	"testing"

	"marvelous/internal/branch"
)

func TestCallersGetFreshSlices(t *testing.T) {
	first := Projects()
	first[0].ClientName = "mutated"
	if Projects()[0].ClientName == "mutated" {
		t.Fatal("Projects returned a shared backing slice")
	}

	staff := Staff()
	staff[0].Name = "mutated"
	if Staff()[0].Name == "mutated" {
		t.Fatal("Staff returned a shared backing slice")
	}
}

func TestDatasetsCoverBothBranches(t *testing.T) {
	for _, b := range branch.Branches() {
		sel := branch.Selector(b)
		if len(branch.Filter(Projects(), sel)) == 0 {
			t.Errorf("no sample project for %s", b)
		}
		if len(branch.Filter(Staff(), sel)) == 0 {
			t.Errorf("no sample staff for %s", b)
		}
		if len(branch.Filter(Equipment(), sel)) == 0 {
			t.Errorf("no sample equipment for %s", b)
		}
		if len(branch.Filter(Customers(), sel)) == 0 {
			t.Errorf("no sample customer for %s", b)
		}
		if len(branch.Filter(Expenses(), sel)) == 0 {
			t.Errorf("no sample expense for %s", b)
		}
	}
}

func TestRevenueSeriesAreNative(t *testing.T) {
	fr := Revenue(branch.Selector(branch.France))
	cm := Revenue(branch.Selector(branch.Cameroun))
	if len(fr) != len(cm) {
		t.Fatalf("series length mismatch: %d vs %d", len(fr), len(cm))
	}
	for i := range fr {
		// The XAF series is authored independently; it must never be
		// a constant multiple of the EUR one.
		if cm[i].Revenue == fr[i].Revenue*branch.EURToXAF {
			t.Errorf("month %s: Cameroun series is a scaled copy", fr[i].Month)
		}
	}
}

func TestGlobalRevenueConsolidatesInEUR(t *testing.T) {
	fr := Revenue(branch.Selector(branch.France))
	cm := Revenue(branch.Selector(branch.Cameroun))
	all := Revenue(branch.Global)
	for i := range all {
		want := fr[i].Revenue + cm[i].Revenue/branch.EURToXAF
		if all[i].Revenue != want {
			t.Errorf("month %s: got %.2f, want %.2f", all[i].Month, all[i].Revenue, want)
		}
		if all[i].Bookings != fr[i].Bookings+cm[i].Bookings {
			t.Errorf("month %s: bookings not summed", all[i].Month)
		}
	}
}

func TestStatsPerSelector(t *testing.T) {
	if got := Stats(branch.Selector(branch.Cameroun)).Revenue; got != 14900000 {
		t.Errorf("Cameroun revenue = %.0f, want 14900000", got)
	}
	if got := Stats(branch.Selector(branch.France)).Revenue; got != 45280 {
		t.Errorf("France revenue = %.0f, want 45280", got)
	}
	global := Stats(branch.Global)
	if global.Revenue <= 45280 {
		t.Errorf("Global revenue %.2f should exceed the France figure", global.Revenue)
	}
	if global.ActiveClients != 156 {
		t.Errorf("Global active clients = %d, want 156", global.ActiveClients)
	}
}

func TestSegmentationSumsToWhole(t *testing.T) {
	total := 0
	for _, s := range Segmentation() {
		total += s.Share
	}
	if total != 100 {
		t.Fatalf("segmentation shares sum to %d, want 100", total)
	}
}
