// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genk

import (
	"math/rand/v2"
)

// Generator layers for the capability hierarchy, weakest to strongest.
// A stronger layer reuses the weaker layer's rule lists and appends its
// own; colliding names collapse in MergeRules with the later (stronger)
// definition winning.
//
// Rule bodies derive randomly built functions from element hashes: a
// continuation such as flatMap's samples its sub-program on a PCG stream
// keyed by (seed, hash of the bound value), so generated functions are
// total, deterministic per seed, and still vary with their argument.

// ApplicativeGenerators contributes rules for the Applicative bundle.
//
// Base: pure. Recursive: map, ap.
type ApplicativeGenerators[F any] struct {
	Cap Applicative[F]
}

func (g ApplicativeGenerators[F]) Name() string { return "Applicative" }

func (g ApplicativeGenerators[F]) BaseRules(elem Elem) []Rule[F] {
	if g.Cap == nil {
		panic("genk: Applicative layer without a capability bundle")
	}
	return []Rule[F]{
		{Name: "pure", Build: func() Gen[F] {
			return func(r *rand.Rand) F {
				return g.Cap.Pure(elem.Arb(r))
			}
		}},
	}
}

func (g ApplicativeGenerators[F]) RecursiveRules(elem Elem, deeper Deeper[F]) []Rule[F] {
	return []Rule[F]{
		{Name: "map", Build: func() Gen[F] {
			return func(r *rand.Rand) F {
				from := deeper.AnyElem(r)
				fa := deeper.Gen(from)(r)
				return g.Cap.Map(fa, Fn(from, elem, r.Uint64()))
			}
		}},
		{Name: "ap", Build: func() Gen[F] {
			return func(r *rand.Rand) F {
				from := deeper.AnyElem(r)
				via := deeper.AnyElem(r)
				seed := r.Uint64()
				// The function-valued program is a deeper program whose
				// values are mapped to functions from the argument type.
				ff := g.Cap.Map(deeper.Gen(via)(r), func(v any) any {
					return Fn(from, elem, seed^via.Hash(v))
				})
				fa := deeper.Gen(from)(r)
				return g.Cap.Ap(ff, fa)
			}
		}},
	}
}

// MonadGenerators contributes rules for the Monad bundle.
//
// Adds recursive: flatMap.
type MonadGenerators[F any] struct {
	Cap Monad[F]
}

func (g MonadGenerators[F]) Name() string { return "Monad" }

func (g MonadGenerators[F]) BaseRules(elem Elem) []Rule[F] {
	return ApplicativeGenerators[F]{Cap: g.Cap}.BaseRules(elem)
}

func (g MonadGenerators[F]) RecursiveRules(elem Elem, deeper Deeper[F]) []Rule[F] {
	rules := ApplicativeGenerators[F]{Cap: g.Cap}.RecursiveRules(elem, deeper)
	return append(rules, Rule[F]{Name: "flatMap", Build: func() Gen[F] {
		return func(r *rand.Rand) F {
			from := deeper.AnyElem(r)
			fa := deeper.Gen(from)(r)
			seed := r.Uint64()
			cont := deeper.Gen(elem)
			return g.Cap.FlatMap(fa, func(v any) F {
				return cont(rand.New(rand.NewPCG(seed, from.Hash(v))))
			})
		}
	}})
}

// ApplicativeErrorGenerators contributes rules for the ApplicativeError
// bundle. Errors supplies the arbitrary error values raiseError lifts.
//
// Adds base: raiseError. Adds recursive: handleErrorWith.
type ApplicativeErrorGenerators[F any] struct {
	Cap    ApplicativeError[F]
	Errors Gen[error]
}

func (g ApplicativeErrorGenerators[F]) Name() string { return "ApplicativeError" }

func (g ApplicativeErrorGenerators[F]) BaseRules(elem Elem) []Rule[F] {
	if g.Errors == nil {
		panic("genk: ApplicativeError layer without an error generator")
	}
	rules := ApplicativeGenerators[F]{Cap: g.Cap}.BaseRules(elem)
	return append(rules, Rule[F]{Name: "raiseError", Build: func() Gen[F] {
		return func(r *rand.Rand) F {
			return g.Cap.RaiseError(g.Errors(r))
		}
	}})
}

func (g ApplicativeErrorGenerators[F]) RecursiveRules(elem Elem, deeper Deeper[F]) []Rule[F] {
	rules := ApplicativeGenerators[F]{Cap: g.Cap}.RecursiveRules(elem, deeper)
	return append(rules, Rule[F]{Name: "handleErrorWith", Build: func() Gen[F] {
		return func(r *rand.Rand) F {
			fa := deeper.Gen(elem)(r)
			seed := r.Uint64()
			rec := deeper.Gen(elem)
			return g.Cap.HandleErrorWith(fa, func(err error) F {
				return rec(rand.New(rand.NewPCG(seed, errHash(err))))
			})
		}
	}})
}

// MonadErrorGenerators contributes the union of the Monad and
// ApplicativeError rule lists. Duplicate names from the two unions
// (pure, map, ap) collapse in the merge.
type MonadErrorGenerators[F any] struct {
	Cap    MonadError[F]
	Errors Gen[error]
}

func (g MonadErrorGenerators[F]) Name() string { return "MonadError" }

func (g MonadErrorGenerators[F]) BaseRules(elem Elem) []Rule[F] {
	rules := MonadGenerators[F]{Cap: g.Cap}.BaseRules(elem)
	return append(rules, ApplicativeErrorGenerators[F]{Cap: g.Cap, Errors: g.Errors}.BaseRules(elem)...)
}

func (g MonadErrorGenerators[F]) RecursiveRules(elem Elem, deeper Deeper[F]) []Rule[F] {
	rules := MonadGenerators[F]{Cap: g.Cap}.RecursiveRules(elem, deeper)
	return append(rules, ApplicativeErrorGenerators[F]{Cap: g.Cap, Errors: g.Errors}.RecursiveRules(elem, deeper)...)
}

// BracketGenerators contributes rules for the Safe bundle. C is the
// outcome-of-use type threaded through release signatures.
//
// Adds recursive: bracketCase.
type BracketGenerators[F, C any] struct {
	Cap    Safe[F, C]
	Errors Gen[error]
}

func (g BracketGenerators[F, C]) Name() string { return "Bracket" }

func (g BracketGenerators[F, C]) BaseRules(elem Elem) []Rule[F] {
	return MonadErrorGenerators[F]{Cap: g.Cap, Errors: g.Errors}.BaseRules(elem)
}

func (g BracketGenerators[F, C]) RecursiveRules(elem Elem, deeper Deeper[F]) []Rule[F] {
	rules := MonadErrorGenerators[F]{Cap: g.Cap, Errors: g.Errors}.RecursiveRules(elem, deeper)
	return append(rules, Rule[F]{Name: "bracketCase", Build: func() Gen[F] {
		return func(r *rand.Rand) F {
			acqElem := deeper.AnyElem(r)
			acquire := deeper.Gen(acqElem)(r)
			useSeed := r.Uint64()
			use := deeper.Gen(elem)
			relSeed := r.Uint64()
			release := deeper.Gen(UnitElem)
			return g.Cap.BracketCase(acquire,
				func(v any) F {
					return use(rand.New(rand.NewPCG(useSeed, acqElem.Hash(v))))
				},
				func(v any, _ C) F {
					return release(rand.New(rand.NewPCG(relSeed, acqElem.Hash(v))))
				})
		}
	}})
}

// ConcurrentGenerators contributes rules for the Concurrent bundle.
//
// Adds base: canceled, cede, never.
// Adds recursive: uncancelable, start, join, racePair.
type ConcurrentGenerators[F any] struct {
	Cap    Concurrent[F]
	Errors Gen[error]
}

func (g ConcurrentGenerators[F]) Name() string { return "Concurrent" }

func (g ConcurrentGenerators[F]) BaseRules(elem Elem) []Rule[F] {
	rules := MonadErrorGenerators[F]{Cap: g.Cap, Errors: g.Errors}.BaseRules(elem)
	return append(rules,
		Rule[F]{Name: "canceled", Build: func() Gen[F] {
			return func(*rand.Rand) F { return g.Cap.Canceled() }
		}},
		Rule[F]{Name: "cede", Build: func() Gen[F] {
			return func(*rand.Rand) F { return g.Cap.Cede() }
		}},
		Rule[F]{Name: "never", Build: func() Gen[F] {
			return func(*rand.Rand) F { return g.Cap.Never() }
		}},
	)
}

func (g ConcurrentGenerators[F]) RecursiveRules(elem Elem, deeper Deeper[F]) []Rule[F] {
	rules := MonadErrorGenerators[F]{Cap: g.Cap, Errors: g.Errors}.RecursiveRules(elem, deeper)
	return append(rules,
		Rule[F]{Name: "uncancelable", Build: func() Gen[F] {
			return func(r *rand.Rand) F {
				return g.Cap.Uncancelable(deeper.Gen(elem)(r))
			}
		}},
		Rule[F]{Name: "start", Build: func() Gen[F] {
			return func(r *rand.Rand) F {
				fa := deeper.Gen(deeper.AnyElem(r))(r)
				tag := elem.Arb(r)
				return g.Cap.Map(g.Cap.Start(fa), func(any) any { return tag })
			}
		}},
		Rule[F]{Name: "join", Build: func() Gen[F] {
			return func(r *rand.Rand) F {
				fa := deeper.Gen(deeper.AnyElem(r))(r)
				mid := deeper.Gen(deeper.AnyElem(r))(r)
				tag := elem.Arb(r)
				return g.Cap.FlatMap(g.Cap.Start(fa), func(fiber any) F {
					return g.Cap.FlatMap(mid, func(any) F {
						return g.Cap.Map(g.Cap.Join(fiber), func(any) any { return tag })
					})
				})
			}
		}},
		Rule[F]{Name: "racePair", Build: func() Gen[F] {
			return func(r *rand.Rand) F {
				fa := deeper.Gen(deeper.AnyElem(r))(r)
				fb := deeper.Gen(deeper.AnyElem(r))(r)
				cancelLoser := r.IntN(2) == 0
				return g.Cap.FlatMap(g.Cap.RacePair(fa, fb), func(v any) F {
					race, ok := v.(Race)
					if !ok {
						panic("genk: racePair program did not produce a Race value")
					}
					loser := g.Cap.Join(race.Loser)
					if cancelLoser {
						loser = g.Cap.Cancel(race.Loser)
					}
					return g.Cap.Map(loser, func(any) any { return race.Winner })
				})
			}
		}},
	)
}

// errHash keys recovery-function streams by the raised error.
func errHash(err error) uint64 {
	if err == nil {
		return 0
	}
	return HashString(err.Error())
}
