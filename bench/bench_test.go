package bench

import (
	"errors"
	"testing"
	"time"
)

type tickClock struct {
	now  time.Duration
	step time.Duration
}

func (c *tickClock) Now() time.Duration {
	c.now += c.step
	return c.now
}

func named(names ...string) []Benchmark {
	out := make([]Benchmark, len(names))
	for i, n := range names {
		out[i] = Benchmark{Name: n}
	}
	return out
}

func namesOf(list []Benchmark) []string {
	out := make([]string, len(list))
	for i, b := range list {
		out[i] = b.Name
	}
	return out
}

func TestFilter(t *testing.T) {
	input := named("sort/ints", "sort/strings", "hash/sha256", "a")

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"match all", ".*", []string{"sort/ints", "sort/strings", "hash/sha256", "a"}},
		{"prefix group", "sort/.*", []string{"sort/ints", "sort/strings"}},
		{"exact name", "a", []string{"a"}},
		{"whole-name not substring", "sort", nil},
		{"no match", "missing/.*", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(input, tt.pattern)
			if err != nil {
				t.Fatalf("Filter(%q) error: %v", tt.pattern, err)
			}
			gotNames := namesOf(got)
			if len(gotNames) != len(tt.want) {
				t.Fatalf("Filter(%q) = %v, want %v", tt.pattern, gotNames, tt.want)
			}
			for i := range tt.want {
				if gotNames[i] != tt.want[i] {
					t.Errorf("Filter(%q)[%d] = %q, want %q", tt.pattern, i, gotNames[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilter_InvalidPattern(t *testing.T) {
	_, err := Filter(named("a"), "([")
	if err == nil {
		t.Fatal("Filter with a broken pattern should fail")
	}
	var perr *InvalidFilterPatternError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %T, want *InvalidFilterPatternError", err)
	}
	if perr.Pattern != "([" {
		t.Errorf("Pattern = %q, want \"([\"", perr.Pattern)
	}
}

func TestCheckDuplicates(t *testing.T) {
	if err := CheckDuplicates(named("a", "b", "c")); err != nil {
		t.Errorf("unique names should validate, got %v", err)
	}
	if err := CheckDuplicates(nil); err != nil {
		t.Errorf("empty set should validate, got %v", err)
	}

	err := CheckDuplicates(named("a", "b", "a", "b"))
	if err == nil {
		t.Fatal("duplicates should fail validation")
	}
	var derr *DuplicateBenchmarkError
	if !errors.As(err, &derr) {
		t.Fatalf("error = %T, want *DuplicateBenchmarkError", err)
	}
	// First duplicate in registration order
	if derr.Name != "a" {
		t.Errorf("Name = %q, want \"a\"", derr.Name)
	}
}

func TestRegistry_PreservesOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("c", nil)
	r.Register("a", nil)
	r.Register("b", nil)

	got := namesOf(r.All())
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("All() = %v, want %v", got, want)
		}
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
}

func TestPlan_Run(t *testing.T) {
	clk := &tickClock{step: time.Microsecond}
	calls := 0
	plan := NewPlan("p", func() error {
		calls++
		return nil
	}, clk, 10)

	samples, err := plan.Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if calls != 10 {
		t.Errorf("runner called %d times, want 10", calls)
	}
	if len(samples) != 10 {
		t.Fatalf("got %d samples, want 10", len(samples))
	}
	for i, s := range samples {
		// One clock tick elapses between the start and end readings.
		if s != time.Microsecond {
			t.Errorf("sample %d = %v, want 1µs", i, s)
		}
	}
}

func TestPlan_RunFailure(t *testing.T) {
	clk := &tickClock{step: time.Microsecond}
	boom := errors.New("boom")
	calls := 0
	plan := NewPlan("p", func() error {
		calls++
		if calls == 3 {
			return boom
		}
		return nil
	}, clk, 10)

	samples, err := plan.Run()
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want boom", err)
	}
	if samples != nil {
		t.Errorf("failed run returned %d samples, want none", len(samples))
	}
	if calls != 3 {
		t.Errorf("runner called %d times, want 3 (abort on first failure)", calls)
	}
}
