// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genk

import (
	"math/rand/v2"
)

// Gen produces one randomized value of type T per draw from an explicit
// random stream. A Gen holds no state of its own: the same *rand.Rand
// stream position always yields the same value, which makes every
// generated program reproducible under a fixed seed.
type Gen[T any] func(r *rand.Rand) T

// Const lifts a fixed value into a generator that always produces it.
func Const[T any](v T) Gen[T] {
	return func(*rand.Rand) T {
		return v
	}
}

// MapGen applies a pure function to every value a generator produces.
func MapGen[T, U any](g Gen[T], f func(T) U) Gen[U] {
	return func(r *rand.Rand) U {
		return f(g(r))
	}
}

// OneOf picks one of the given generators uniformly at random per draw.
// Panics if no generators are given.
func OneOf[T any](gens ...Gen[T]) Gen[T] {
	if len(gens) == 0 {
		panic("genk: OneOf requires at least one generator")
	}
	return func(r *rand.Rand) T {
		return gens[r.IntN(len(gens))](r)
	}
}

// Lazy defers construction of a generator until the first draw.
// The constructor f runs once per draw, so recursive generator
// definitions stay finite as long as something bounds the recursion.
func Lazy[T any](f func() Gen[T]) Gen[T] {
	return func(r *rand.Rand) T {
		return f()(r)
	}
}
