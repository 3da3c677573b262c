// Package decay evaluates first-order exponential decay of a fiber count
// under a fungal strain.
//
// The model is closed form: the fiber count on day i is
//
//	N(i) = N0 * exp(-k * i)
//
// where k is the strain's daily decay rate. No numerical integration is
// involved, so every sample point is exact up to floating point.
//
// # Example
//
//	p, _ := strain.Lookup(strain.AspergillusNiger)
//	run, err := decay.Simulate(p, 180, 1000)
//	fmt.Println(run.FinalReductionPercent, run.RiskScore)
package decay
