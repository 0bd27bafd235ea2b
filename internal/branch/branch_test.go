package branch

import (
	"math"
	"reflect"
	"testing"
)

type tagged struct {
	name string
	b    Branch
}

func (t tagged) BranchTag() Branch { return t.b }

func TestFilter_GlobalIsIdentity(t *testing.T) {
	in := []tagged{
		{"a", France},
		{"b", Cameroun},
		{"c", France},
	}
	out := Filter(in, Global)
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("Global filter changed the sequence: %v != %v", out, in)
	}
}

func TestFilter_ConcreteBranch(t *testing.T) {
	in := []tagged{
		{"a", France},
		{"b", Cameroun},
		{"c", France},
		{"d", Cameroun},
	}

	fr := Filter(in, Selector(France))
	if len(fr) != 2 {
		t.Fatalf("expected 2 France records, got %d", len(fr))
	}
	for _, r := range fr {
		if r.b != France {
			t.Errorf("record %q leaked into France view", r.name)
		}
	}
	// Relative order must be preserved
	if fr[0].name != "a" || fr[1].name != "c" {
		t.Errorf("order not preserved: %v", fr)
	}

	cm := Filter(in, Selector(Cameroun))
	if len(cm) != 2 {
		t.Fatalf("expected 2 Cameroun records, got %d", len(cm))
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := []tagged{{"a", France}, {"b", Cameroun}}
	orig := make([]tagged, len(in))
	copy(orig, in)

	Filter(in, Selector(Cameroun))
	if !reflect.DeepEqual(in, orig) {
		t.Fatal("input slice was mutated")
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	if out := Filter([]tagged{}, Selector(France)); len(out) != 0 {
		t.Fatalf("expected empty result, got %v", out)
	}
}

func TestSelector_Concrete(t *testing.T) {
	if _, ok := Global.Concrete(); ok {
		t.Error("Global must not resolve to a concrete branch")
	}
	if b, ok := Selector("France").Concrete(); !ok || b != France {
		t.Errorf("France selector resolved to %q, %v", b, ok)
	}
	if _, ok := Selector("Atlantis").Concrete(); ok {
		t.Error("unknown selector must not resolve")
	}
}

func TestFormat_Cameroun(t *testing.T) {
	cases := map[float64]string{
		2500000: "2 500 000 XAF",
		0:       "0 XAF",
		950:     "950 XAF",
		1500:    "1 500 XAF",
	}
	for amount, want := range cases {
		if got := Format(amount, Cameroun); got != want {
			t.Errorf("Format(%v, Cameroun) = %q, want %q", amount, got, want)
		}
	}
}

func TestFormat_France(t *testing.T) {
	cases := map[float64]string{
		15000:   "15 000,00 €",
		0:       "0,00 €",
		1234.5:  "1 234,50 €",
		45280:   "45 280,00 €",
		-120.25: "-120,25 €",
	}
	for amount, want := range cases {
		if got := Format(amount, France); got != want {
			t.Errorf("Format(%v, France) = %q, want %q", amount, got, want)
		}
	}
}

func TestFormat_NoFractionInXAF(t *testing.T) {
	got := Format(1234.56, Cameroun)
	if got != "1 235 XAF" {
		t.Errorf("XAF amounts must round to whole units, got %q", got)
	}
}

func TestFormat_Total(t *testing.T) {
	// Non-finite inputs must still produce a string, never panic.
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := Format(v, France); got == "" {
			t.Error("Format returned empty string for non-finite input")
		}
		if got := Format(v, Cameroun); got == "" {
			t.Error("Format returned empty string for non-finite input")
		}
	}
}
