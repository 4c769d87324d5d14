// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genk

import (
	"math/rand/v2"
)

// Region is the capability bundle of a scoped-resource-carrying
// computation type R over an underlying computation type F. Acquire and
// release steps run in F; the assembled value is the scoped resource R.
// C is the outcome-of-use type threaded through release signatures.
type Region[R, F, C any] interface {
	Safe[R, C]
	// OpenCase acquires through an underlying program and ties release to
	// the outcome of use. Release programs produce Unit-typed results.
	OpenCase(acquire F, release func(v any, c C) F) R
	// LiftF runs an underlying program inside the region.
	LiftF(fa F) R
}

// RegionGenerators specializes Bracket generation to a scoped-resource
// type. Underlying generates programs of the underlying computation type;
// the openCase and liftF base rules draw their acquire, release, and
// lifted steps from it. No recursive rules are added — recursion over R
// stays with the inherited bracket and monad rules.
type RegionGenerators[R, F, C any] struct {
	Cap        Region[R, F, C]
	Errors     Gen[error]
	Underlying func(Elem) Gen[F]
}

func (g RegionGenerators[R, F, C]) Name() string { return "Region" }

func (g RegionGenerators[R, F, C]) BaseRules(elem Elem) []Rule[R] {
	if g.Underlying == nil {
		panic("genk: Region layer without an underlying-type generator")
	}
	rules := BracketGenerators[R, C]{Cap: g.Cap, Errors: g.Errors}.BaseRules(elem)
	return append(rules,
		Rule[R]{Name: "liftF", Build: func() Gen[R] {
			return func(r *rand.Rand) R {
				return g.Cap.LiftF(g.Underlying(elem)(r))
			}
		}},
		Rule[R]{Name: "openCase", Build: func() Gen[R] {
			return func(r *rand.Rand) R {
				acquire := g.Underlying(elem)(r)
				relSeed := r.Uint64()
				release := g.Underlying(UnitElem)
				return g.Cap.OpenCase(acquire, func(v any, _ C) F {
					return release(rand.New(rand.NewPCG(relSeed, elem.Hash(v))))
				})
			}
		}},
	)
}

func (g RegionGenerators[R, F, C]) RecursiveRules(elem Elem, deeper Deeper[R]) []Rule[R] {
	return BracketGenerators[R, C]{Cap: g.Cap, Errors: g.Errors}.RecursiveRules(elem, deeper)
}

// ResourceGenerator assembles a generator of scoped-resource values. It
// is a thin composition: the supplied underlying-type generator becomes
// the Region layer's auxiliary dependency and the engine is reused
// unchanged.
func ResourceGenerator[R, F, C any](cap Region[R, F, C], errors Gen[error], underlying func(Elem) Gen[F], elems []Elem) *Generator[R] {
	return New[R](RegionGenerators[R, F, C]{Cap: cap, Errors: errors, Underlying: underlying}, elems)
}
