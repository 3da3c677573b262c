package decay

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/mycodecay/internal/strain"
)

func mustLookup(t *testing.T, id string) strain.Profile {
	t.Helper()
	p, ok := strain.Lookup(id)
	if !ok {
		t.Fatalf("strain %s not registered", id)
	}
	return p
}

func TestSimulate_AspergillusDefaultRun(t *testing.T) {
	p := mustLookup(t, strain.AspergillusNiger)

	run, err := Simulate(p, 180, 1000)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	if len(run.Series) != 181 {
		t.Fatalf("expected 181 samples, got %d", len(run.Series))
	}

	want := 1000 * math.Exp(-8.1)
	if math.Abs(run.Series[180]-want) > 1e-9 {
		t.Errorf("series[180] = %v, want %v", run.Series[180], want)
	}
	if math.Abs(run.Series[180]-0.303) > 0.001 {
		t.Errorf("series[180] = %v, want ~0.303", run.Series[180])
	}
	if math.Abs(run.FinalReductionPercent-99.97) > 0.01 {
		t.Errorf("final reduction = %v, want ~99.97", run.FinalReductionPercent)
	}
	if math.Abs(run.RiskScore-0.3999) > 0.0001 {
		t.Errorf("risk score = %v, want ~0.3999", run.RiskScore)
	}
}

func TestSimulate_PenicilliumShortRun(t *testing.T) {
	p := mustLookup(t, strain.PenicilliumChrysogenum)

	run, err := Simulate(p, 30, 500)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	if math.Abs(run.Series[30]-500*math.Exp(-1.05)) > 1e-9 {
		t.Errorf("series[30] = %v", run.Series[30])
	}
	if math.Abs(run.Remaining()-175.0) > 0.1 {
		t.Errorf("remaining = %v, want ~175.0", run.Remaining())
	}
}

func TestSimulate_Invariants(t *testing.T) {
	inputs := []struct {
		days   int
		fibers float64
	}{
		{1, 1},
		{1, 0.001},
		{30, 500},
		{180, 1000},
		{365, 1e6},
		{1000, 42.5},
	}

	for _, p := range strain.All() {
		for _, in := range inputs {
			run, err := Simulate(p, in.days, in.fibers)
			if err != nil {
				t.Fatalf("%s days=%d fibers=%v: %v", p.ID, in.days, in.fibers, err)
			}

			if run.Series[0] != in.fibers {
				t.Errorf("%s: series[0] = %v, want exactly %v", p.ID, run.Series[0], in.fibers)
			}
			for i := 0; i+1 < len(run.Series); i++ {
				if run.Series[i] < run.Series[i+1] {
					t.Errorf("%s: series increases at day %d: %v -> %v", p.ID, i, run.Series[i], run.Series[i+1])
					break
				}
			}
			if run.FinalReductionPercent < 0 || run.FinalReductionPercent > 100 {
				t.Errorf("%s: reduction %v out of [0,100]", p.ID, run.FinalReductionPercent)
			}
			if run.RiskScore < 0 || run.RiskScore > p.ToxinReduction {
				t.Errorf("%s: risk %v out of [0,%v]", p.ID, run.RiskScore, p.ToxinReduction)
			}
			want := p.ToxinReduction * (run.FinalReductionPercent / 100)
			if run.RiskScore != want {
				t.Errorf("%s: risk %v, want %v", p.ID, run.RiskScore, want)
			}
		}
	}
}

func TestSimulate_InvalidInput(t *testing.T) {
	p := mustLookup(t, strain.AspergillusNiger)

	tests := []struct {
		name   string
		days   int
		fibers float64
		want   error
	}{
		{"zero days", 0, 1000, ErrInvalidDays},
		{"negative days", -5, 1000, ErrInvalidDays},
		{"days above bound", MaxDays + 1, 1000, ErrInvalidDays},
		{"max int days", math.MaxInt, 1000, ErrInvalidDays},
		{"zero fibers", 180, 0, ErrInvalidFibers},
		{"negative fibers", 180, -10, ErrInvalidFibers},
		{"NaN fibers", 180, math.NaN(), ErrInvalidFibers},
		{"infinite fibers", 180, math.Inf(1), ErrInvalidFibers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run, err := Simulate(p, tt.days, tt.fibers)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if run != nil {
				t.Error("expected nil run on invalid input")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error %v does not wrap %v", err, tt.want)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("expected *ValidationError, got %T", err)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := Validate(0, 1000)
	expected := "invalid days 0: decay: days must be between 1 and 1000000"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestReductionAt(t *testing.T) {
	p := mustLookup(t, strain.AspergillusNiger)
	run, err := Simulate(p, 60, 100)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	if run.ReductionAt(0) != 0 {
		t.Errorf("reduction at day 0 = %v, want 0", run.ReductionAt(0))
	}
	if run.ReductionAt(60) != run.FinalReductionPercent {
		t.Errorf("reduction at last day %v != final %v", run.ReductionAt(60), run.FinalReductionPercent)
	}
	want := (1 - math.Exp(-0.045*30)) * 100
	if math.Abs(run.ReductionAt(30)-want) > 1e-9 {
		t.Errorf("reduction at day 30 = %v, want %v", run.ReductionAt(30), want)
	}
}

func TestSeries_OutOfRange(t *testing.T) {
	if s := Series(0.1, -1, 10); s != nil {
		t.Errorf("expected nil series, got %v", s)
	}
	if s := Series(0.1, math.MaxInt, 10); s != nil {
		t.Errorf("expected nil series for math.MaxInt days, got %d samples", len(s))
	}
}

func TestSimulate_MaxDays(t *testing.T) {
	p := mustLookup(t, strain.PenicilliumChrysogenum)
	run, err := Simulate(p, MaxDays, 1000)
	if err != nil {
		t.Fatalf("simulate at the bound failed: %v", err)
	}
	if len(run.Series) != MaxDays+1 {
		t.Errorf("expected %d samples, got %d", MaxDays+1, len(run.Series))
	}
}
