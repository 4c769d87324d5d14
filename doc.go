// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package genk generates randomized programs over a layered effect
// algebra for property-testing effect-system implementations.
//
// Given a capability bundle for a computation type F and a pool of
// element-type descriptors, the engine builds syntactically varied,
// semantically valid programs purely from the algebra's operations
// (pure, map, flatMap, raiseError, bracketCase, start, racePair, ...),
// so law-checking tests can exercise an implementation against a wide
// combinatorial space of program shapes.
//
// # Design Philosophy
//
// genk provides:
//   - Named generation rules contributed per capability layer, merged
//     with a deterministic name-collision policy
//   - Depth-bounded recursion as the single termination control
//   - Deterministic generation: every draw threads an explicit
//     *rand.Rand, so a fixed PCG seed reproduces full program sequences
//     for shrinking and replay
//
// The engine is single-threaded per draw and shares no state across
// calls; a Generator may be used from multiple goroutines without
// coordination. It builds programs but never runs them — interpretation,
// and therefore all scheduling of the concurrency the programs describe,
// belongs to the implementation under test.
//
// # Generators
//
// [Gen] is an opaque randomized producer, stateless between draws:
//
//   - [Const]: Always produce a fixed value
//   - [MapGen]: Transform every produced value
//   - [OneOf]: Pick one of several generators per draw
//   - [Lazy]: Defer generator construction until the first draw
//
// # Element Types
//
// [Elem] describes an element type: arbitrary-value generation plus a
// stable structural hash. Callers supply one per element type; the hash
// keys the random streams behind randomly built functions.
//
//   - [Unit], [UnitElem]: Element type of effect-only programs
//   - [Fn]: Deterministic randomly chosen total function between elements
//   - [HashString]: Process-stable FNV-1a string hash for descriptors
//
// # Rules and Merging
//
// A [Rule] pairs a name with a lazy builder of a program generator.
// [MergeRules] concatenates base and recursive rule lists, collapses by
// name with the last definition winning, and orders lexicographically;
// selection is uniform over the deduplicated names. A name defined by two
// layers therefore collapses to one entry instead of doubling its
// selection probability.
//
// # Engine
//
// [Generator] is the depth-bounded engine:
//
//   - [New]: Assemble from a [Layer] and an element pool; configuration
//     errors panic here, never later
//   - [Generator.Generate]: Programs for an element type at depth 0
//   - [Generator.GenerateAt]: Programs at an explicit depth
//   - [Generator.Rules]: The merged rule set offered at a depth
//   - [Generator.WithMaxDepth]: Copy with a different recursion bound
//   - [DefaultMaxDepth]: The bound a new Generator starts with
//
// Recursive rules receive a [Deeper] bound to depth+1 and are offered
// only while depth is strictly below the bound; base rules are available
// at every depth, so generation always terminates.
//
// # Capability Bundles
//
// The implementation under test supplies one interface per capability
// level, element values erased as any:
//
//   - [Applicative]: Pure, Map, Ap
//   - [Monad]: + FlatMap
//   - [ApplicativeError]: + RaiseError, HandleErrorWith
//   - [MonadError]: Union of Monad and ApplicativeError
//   - [Safe]: + BracketCase, generic over the outcome-of-use type C
//   - [Region]: Safe for a scoped-resource type + OpenCase, LiftF
//   - [Concurrent]: + Canceled, Cede, Never, Uncancelable, Start, Join,
//     Cancel, RacePair
//   - [Race]: Erased result of RacePair programs
//
// # Capability Layers
//
// One rule-contributing layer per bundle, weakest to strongest; stronger
// layers reuse and extend the rule lists of the layers they build on:
//
//   - [ApplicativeGenerators]: pure; map, ap
//   - [MonadGenerators]: + flatMap
//   - [ApplicativeErrorGenerators]: + raiseError; handleErrorWith
//   - [MonadErrorGenerators]: Union of the Monad and ApplicativeError
//     rule lists
//   - [BracketGenerators]: + bracketCase
//   - [RegionGenerators]: + openCase, liftF drawn from an auxiliary
//     underlying-type generator
//   - [ConcurrentGenerators]: + canceled, cede, never; uncancelable,
//     start, join, racePair
//
// # Outcome
//
// [Outcome] is the three-variant result of running a computation:
//
//   - [Canceled], [Completed], [Errored]: Constructors
//   - [Outcome.Kind], [Outcome.IsCanceled], [Outcome.GetCompleted],
//     [Outcome.GetErrored]: Accessors
//   - [MatchOutcome]: Pattern matching
//   - [OutcomeAlgebra]: The ApplicativeError instance for Outcome itself
//   - [OutcomeGenerators], [OutcomeGenerator]: ApplicativeError-layer
//     generation specialized to Outcome plus a canceled base rule
//
// # Resources
//
// [ResourceGenerator] assembles a generator of scoped-resource values
// from a [Region] bundle and an auxiliary generator for the underlying
// computation type. The produced values describe acquire-use-release
// semantics; genk never interprets them.
//
// # Example
//
//	intElem := genk.Elem{
//		Name: "int",
//		Arb:  func(r *rand.Rand) any { return r.IntN(100) },
//		Hash: func(v any) uint64 { return uint64(v.(int)) },
//	}
//	errs := func(r *rand.Rand) error { return fmt.Errorf("boom %d", r.IntN(10)) }
//
//	g := genk.New[P](genk.ConcurrentGenerators[P]{Cap: cap, Errors: errs}, []genk.Elem{intElem})
//	r := rand.New(rand.NewPCG(42, 0))
//	program := g.Generate(intElem)(r) // a random P built from cap's operations
package genk
