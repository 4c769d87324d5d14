// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genk

// Capability bundles describe the effect algebra under test to the
// generator. Each bundle is the fixed operation surface of one capability
// level; the engine only ever calls these operations to build program
// values, it never interprets the programs it builds.
//
// Element values are type-erased as any. Function-valued positions carry
// func(any) any values; the implementation under test recovers concrete
// types at its own boundaries, the same way effect runtimes recover
// erased resume values.

// Applicative is the weakest capability bundle.
type Applicative[F any] interface {
	// Pure lifts a plain value into a program.
	Pure(v any) F
	// Map transforms a program's result with a pure function.
	Map(fa F, f func(v any) any) F
	// Ap applies a function-valued program to a value-valued program.
	// The values of ff are func(any) any.
	Ap(ff F, fa F) F
}

// Monad adds monadic sequencing.
type Monad[F any] interface {
	Applicative[F]
	// FlatMap runs fa and feeds its result into f to obtain the
	// continuation program.
	FlatMap(fa F, f func(v any) F) F
}

// ApplicativeError adds error raising and recovery.
type ApplicativeError[F any] interface {
	Applicative[F]
	// RaiseError lifts an error into a failed program.
	RaiseError(err error) F
	// HandleErrorWith runs fa and, on error, recovers through h.
	HandleErrorWith(fa F, h func(err error) F) F
}

// MonadError is the union of Monad and ApplicativeError.
type MonadError[F any] interface {
	Monad[F]
	ApplicativeError[F]
}

// Safe adds bracketed resource acquisition. C is the outcome-of-use type
// threaded through the release signature; implementations pick whatever
// case type their bracket reports with.
type Safe[F, C any] interface {
	MonadError[F]
	// BracketCase acquires through acquire, feeds the acquired value to
	// use, and guarantees release runs with the value and the outcome of
	// use. Release programs produce Unit-typed results.
	BracketCase(acquire F, use func(v any) F, release func(v any, c C) F) F
}

// Concurrent adds fibers, cancelation, and racing on top of MonadError.
//
// Fiber handles flow through Join and Cancel type-erased as any. RacePair
// programs must produce Race values: the generator deconstructs them to
// decide what happens to the loser.
type Concurrent[F any] interface {
	MonadError[F]
	// Canceled is the self-canceling program.
	Canceled() F
	// Cede cooperatively yields before completing.
	Cede() F
	// Never is the program that never completes.
	Never() F
	// Uncancelable runs fa inside a masking region.
	Uncancelable(fa F) F
	// Start forks fa; the program's value is the fiber handle.
	Start(fa F) F
	// Join waits on a fiber; the program's value is the fiber's Outcome.
	Join(fiber any) F
	// Cancel cancels a fiber and waits for finalization.
	Cancel(fiber any) F
	// RacePair runs two programs concurrently; the program's value is a
	// Race for whichever finished first.
	RacePair(fa F, fb F) F
}

// Race is the erased result of a RacePair program: the outcome of the
// program that finished first and the fiber handle of the one still
// running.
type Race struct {
	Winner Outcome
	Loser  any
}
