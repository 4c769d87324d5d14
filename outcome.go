// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genk

import (
	"fmt"
)

// OutcomeKind tags the populated variant of an Outcome.
type OutcomeKind uint8

const (
	// OutcomeCanceled marks a computation that was canceled.
	OutcomeCanceled OutcomeKind = iota
	// OutcomeCompleted marks a computation that completed with a value.
	OutcomeCompleted
	// OutcomeErrored marks a computation that failed with an error.
	OutcomeErrored
)

// Outcome is the three-variant result of running a computation: canceled,
// completed with a value, or errored. Exactly one variant is populated.
type Outcome struct {
	kind  OutcomeKind
	value any
	err   error
}

// Canceled creates the canceled Outcome.
func Canceled() Outcome {
	return Outcome{kind: OutcomeCanceled}
}

// Completed creates an Outcome completed with v.
func Completed(v any) Outcome {
	return Outcome{kind: OutcomeCompleted, value: v}
}

// Errored creates an Outcome failed with err.
func Errored(err error) Outcome {
	return Outcome{kind: OutcomeErrored, err: err}
}

// Kind returns the populated variant's tag.
func (o Outcome) Kind() OutcomeKind {
	return o.kind
}

// IsCanceled returns true if this is the canceled Outcome.
func (o Outcome) IsCanceled() bool {
	return o.kind == OutcomeCanceled
}

// GetCompleted returns the completion value and true, or zero and false.
func (o Outcome) GetCompleted() (any, bool) {
	if o.kind == OutcomeCompleted {
		return o.value, true
	}
	return nil, false
}

// GetErrored returns the error and true, or nil and false.
func (o Outcome) GetErrored() (error, bool) {
	if o.kind == OutcomeErrored {
		return o.err, true
	}
	return nil, false
}

// MatchOutcome pattern matches on the Outcome's variant.
func MatchOutcome[T any](o Outcome, onCanceled func() T, onCompleted func(any) T, onErrored func(error) T) T {
	switch o.kind {
	case OutcomeCompleted:
		return onCompleted(o.value)
	case OutcomeErrored:
		return onErrored(o.err)
	default:
		return onCanceled()
	}
}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o.kind {
	case OutcomeCompleted:
		return fmt.Sprintf("Completed(%v)", o.value)
	case OutcomeErrored:
		return fmt.Sprintf("Errored(%v)", o.err)
	default:
		return "Canceled"
	}
}

// outcomeAlgebra is the ApplicativeError instance for Outcome itself:
// Pure completes, RaiseError fails, Canceled absorbs everything, and
// recovery touches only the errored variant.
type outcomeAlgebra struct{}

// OutcomeAlgebra returns the ApplicativeError bundle for Outcome.
func OutcomeAlgebra() ApplicativeError[Outcome] {
	return outcomeAlgebra{}
}

func (outcomeAlgebra) Pure(v any) Outcome {
	return Completed(v)
}

func (outcomeAlgebra) Map(fa Outcome, f func(any) any) Outcome {
	if fa.kind != OutcomeCompleted {
		return fa
	}
	return Completed(f(fa.value))
}

func (outcomeAlgebra) Ap(ff, fa Outcome) Outcome {
	if ff.kind != OutcomeCompleted {
		return ff
	}
	if fa.kind != OutcomeCompleted {
		return fa
	}
	f, ok := ff.value.(func(any) any)
	if !ok {
		panic("genk: ap on a non-function outcome")
	}
	return Completed(f(fa.value))
}

func (outcomeAlgebra) RaiseError(err error) Outcome {
	return Errored(err)
}

func (outcomeAlgebra) HandleErrorWith(fa Outcome, h func(error) Outcome) Outcome {
	if fa.kind != OutcomeErrored {
		return fa
	}
	return h(fa.err)
}

// OutcomeGenerators specializes ApplicativeError generation to Outcome,
// adding one extra base rule producing the canceled variant directly.
// Completed and Errored arise from the underlying pure and raiseError
// rules as interpreted by the Outcome instance.
type OutcomeGenerators struct {
	Errors Gen[error]
}

func (g OutcomeGenerators) Name() string { return "Outcome" }

func (g OutcomeGenerators) BaseRules(elem Elem) []Rule[Outcome] {
	inner := ApplicativeErrorGenerators[Outcome]{Cap: outcomeAlgebra{}, Errors: g.Errors}
	return append(inner.BaseRules(elem), Rule[Outcome]{Name: "canceled", Build: func() Gen[Outcome] {
		return Const(Canceled())
	}})
}

func (g OutcomeGenerators) RecursiveRules(elem Elem, deeper Deeper[Outcome]) []Rule[Outcome] {
	inner := ApplicativeErrorGenerators[Outcome]{Cap: outcomeAlgebra{}, Errors: g.Errors}
	return inner.RecursiveRules(elem, deeper)
}

// OutcomeGenerator assembles the generator of Outcome values.
func OutcomeGenerator(errors Gen[error], elems []Elem) *Generator[Outcome] {
	return New[Outcome](OutcomeGenerators{Errors: errors}, elems)
}
