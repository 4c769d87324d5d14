// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genk

import (
	"math/rand/v2"
)

// Elem describes an element type to the generator: how to draw arbitrary
// values of it and how to hash a value structurally. Element values flow
// through the capability operations type-erased as any, so the descriptor
// is the only thing the engine knows about an element type.
//
// Callers supply one Elem per element type they want programs generated
// for. Hash must be a pure function of the value and stable across
// processes — it seeds the random streams behind randomly built functions,
// and an unstable hash would break replay.
type Elem struct {
	Name string
	Arb  Gen[any]
	Hash func(v any) uint64
}

// Unit is the element type of programs generated for effect-only
// positions, such as bracket release steps.
type Unit struct{}

// UnitElem is the element descriptor for Unit.
var UnitElem = Elem{
	Name: "unit",
	Arb:  func(*rand.Rand) any { return Unit{} },
	Hash: func(any) uint64 { return 0 },
}

// Fn builds a deterministic, randomly chosen total function from dom
// values to cod values. The result for an argument x is drawn from
// cod.Arb on a PCG stream keyed by (seed, dom.Hash(x)): equal arguments
// map to equal results, and the same seed reproduces the same function.
func Fn(dom, cod Elem, seed uint64) func(any) any {
	return func(x any) any {
		r := rand.New(rand.NewPCG(seed, dom.Hash(x)))
		return cod.Arb(r)
	}
}

// HashString hashes s with FNV-1a. Unlike hash/maphash this is stable
// across processes, which Elem.Hash requires.
func HashString(s string) uint64 {
	const prime = 1099511628211
	h := uint64(14695981039346656037)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime
	}
	return h
}
