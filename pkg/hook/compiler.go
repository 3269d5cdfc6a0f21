package hook

import "slices"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=compiler.go -destination=mocks/compiler.gen.go -package=mocks

// Snapshot is the state a Unit is compiled from. It is never shared with the
// hook that produced it.
type Snapshot struct {
	Params       []string
	Taps         []*Tap
	Interceptors []Interceptor
}

// NeedsContext reports whether any tap or interceptor asked for a Context.
func (s Snapshot) NeedsContext() bool {
	return slices.ContainsFunc(s.Taps, func(t *Tap) bool { return t.Context }) ||
		slices.ContainsFunc(s.Interceptors, func(i Interceptor) bool { return i.UsesContext })
}

// Compiler turns a snapshot into a Unit for one execution kind. Each
// implementation decides how successive taps chain together and how failures
// propagate.
type Compiler interface {
	Compile(snapshot Snapshot, kind Kind) (*Unit, error)
}

// Unit is a call chain compiled for one execution kind.
type Unit struct {
	kind Kind
	run  func(args []any, done Callback)
}

// NewUnit builds a Unit from run. run must call done exactly once; for
// KindSync units it must do so before returning.
func NewUnit(kind Kind, run func(args []any, done Callback)) *Unit {
	return &Unit{kind: kind, run: run}
}

// Kind returns the execution kind the unit was compiled for.
func (u *Unit) Kind() Kind {
	return u.kind
}

// Run executes the chain and reports completion through done.
func (u *Unit) Run(args []any, done Callback) {
	u.run(args, done)
}
