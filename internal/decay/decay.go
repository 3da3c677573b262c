package decay

import (
	"math"

	"github.com/san-kum/mycodecay/internal/strain"
)

// MaxDays bounds the simulated period so the series allocation stays small.
// At the slowest registered decay rate the curve is below 1e-300 of the
// initial mass long before this.
const MaxDays = 1_000_000

// Run is the outcome of a single simulation.
type Run struct {
	Strain        strain.Profile
	Days          int
	InitialFibers float64
	// Series holds the fiber count per day, index 0 through Days.
	Series                []float64
	FinalReductionPercent float64
	RiskScore             float64
}

// Validate checks the simulation inputs.
func Validate(days int, initialFibers float64) error {
	if days < 1 || days > MaxDays {
		return &ValidationError{Field: "days", Value: days, Wrapped: ErrInvalidDays}
	}
	if !(initialFibers > 0) || math.IsInf(initialFibers, 1) {
		return &ValidationError{Field: "initial_fibers", Value: initialFibers, Wrapped: ErrInvalidFibers}
	}
	return nil
}

// Series evaluates the decay curve for days 0..days inclusive. It returns
// nil for a negative day count or one above MaxDays.
func Series(rate float64, days int, initialFibers float64) []float64 {
	if days < 0 || days > MaxDays {
		return nil
	}
	s := make([]float64, days+1)
	for i := range s {
		s[i] = initialFibers * math.Exp(-rate*float64(i))
	}
	return s
}

// Simulate validates the inputs and evaluates the decay curve for the given strain.
func Simulate(p strain.Profile, days int, initialFibers float64) (*Run, error) {
	if err := Validate(days, initialFibers); err != nil {
		return nil, err
	}

	series := Series(p.DecayRate, days, initialFibers)
	final := reduction(initialFibers, series[days])

	return &Run{
		Strain:                p,
		Days:                  days,
		InitialFibers:         initialFibers,
		Series:                series,
		FinalReductionPercent: final,
		RiskScore:             p.ToxinReduction * (final / 100),
	}, nil
}

// ReductionAt returns the cumulative reduction percent on the given day.
func (r *Run) ReductionAt(day int) float64 {
	return reduction(r.InitialFibers, r.Series[day])
}

// Remaining returns the fiber count left at the end of the run.
func (r *Run) Remaining() float64 {
	return r.Series[len(r.Series)-1]
}

func reduction(initial, remaining float64) float64 {
	return (initial - remaining) / initial * 100
}
