// Package model defines the closed set of parametric curves the fitter can
// use and the registry that resolves configuration names to them.
//
// 🚀 Built-in variants:
//
//	Kind               Form                          Arity
//	SingleExponential  y = a·exp(b·x)                2
//	DoubleExponential  y = a·exp(b·x) + c·exp(d·x)   4
//
// Every Model evaluates itself and its analytic partial derivatives with
// respect to the parameters, which is what Levenberg–Marquardt needs for the
// Jacobian.
//
// ✨ Name resolution is strict:
//
//	Names are lowercased and stripped of '-', '_' and blanks, then looked up
//	in an alias table ("exp1", "single-exponential", "exp2", "biexponential",
//	...). Anything else is ErrUnknownModel: there is no silent fallback to the
//	single exponential.
//
// ⚙️ Usage:
//
//	m, err := model.Lookup("Exp2")
//	if err != nil { /* ErrUnknownModel */ }
//	y := m.Eval(3.5, []float64{1, -0.2, 0.5, -0.01})
package model
