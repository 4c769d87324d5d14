// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genk

import (
	"math/rand/v2"
	"slices"
)

// DefaultMaxDepth is the recursion bound a new Generator starts with.
const DefaultMaxDepth = 10

// Deeper lets a recursive rule request sub-programs at the next depth.
// Requests are lazy: nothing is generated until the returned Gen draws,
// so an unselected rule never recurses.
type Deeper[F any] interface {
	// Gen returns a generator of sub-programs for the given element type,
	// bound to the requesting step's depth plus one.
	Gen(elem Elem) Gen[F]
	// AnyElem draws a random element descriptor from the engine's pool.
	AnyElem(r *rand.Rand) Elem
}

// Layer contributes named generation rules for one capability level.
// Base rules are terminal constructors available at every depth;
// recursive rules build on sub-programs requested through deeper and are
// pruned once the depth bound is reached. A layer never recurses into
// itself — depth bounding in the engine is the single termination control.
type Layer[F any] interface {
	Name() string
	BaseRules(elem Elem) []Rule[F]
	RecursiveRules(elem Elem, deeper Deeper[F]) []Rule[F]
}

// Generator is the depth-bounded generation engine for programs of
// type F. It holds only immutable configuration; every draw threads its
// own *rand.Rand, so a Generator may be shared across goroutines without
// coordination.
type Generator[F any] struct {
	layer    Layer[F]
	elems    []Elem
	maxDepth int
}

// New assembles a generator from a capability layer and an element pool.
// Configuration errors are fatal and surface here, never later: the
// layer and every element descriptor are validated, and the layer must
// contribute at least one base rule for every element in the pool.
func New[F any](layer Layer[F], elems []Elem) *Generator[F] {
	if layer == nil {
		panic("genk: nil capability layer")
	}
	if len(elems) == 0 {
		panic("genk: empty element pool")
	}
	seen := make(map[string]bool, len(elems))
	for _, e := range elems {
		if e.Name == "" {
			panic("genk: element descriptor without a name")
		}
		if e.Arb == nil {
			panic("genk: element " + e.Name + " has no arbitrary-value generator")
		}
		if e.Hash == nil {
			panic("genk: element " + e.Name + " has no hash function")
		}
		if seen[e.Name] {
			panic("genk: duplicate element descriptor " + e.Name)
		}
		seen[e.Name] = true
	}
	g := &Generator[F]{
		layer:    layer,
		elems:    slices.Clone(elems),
		maxDepth: DefaultMaxDepth,
	}
	for _, e := range g.elems {
		if len(layer.BaseRules(e)) == 0 {
			panic("genk: layer " + layer.Name() + " contributes no base rules for element " + e.Name)
		}
	}
	return g
}

// WithMaxDepth returns a copy of the generator with the given recursion
// bound. Zero means base rules only.
func (g *Generator[F]) WithMaxDepth(d int) *Generator[F] {
	if d < 0 {
		panic("genk: negative depth bound")
	}
	c := *g
	c.maxDepth = d
	return &c
}

// Rules returns the merged, deduplicated, name-ordered rule set offered
// for elem at the given depth. Recursive rules are offered only while
// depth is strictly below the bound; at and beyond the bound the set is
// exactly the base-rule set.
func (g *Generator[F]) Rules(elem Elem, depth int) []Rule[F] {
	base := g.layer.BaseRules(elem)
	if depth >= g.maxDepth {
		return MergeRules(base, nil)
	}
	d := &deeper[F]{g: g, depth: depth + 1}
	return MergeRules(base, g.layer.RecursiveRules(elem, d))
}

// Generate returns a generator of programs for elem, starting at depth 0.
func (g *Generator[F]) Generate(elem Elem) Gen[F] {
	return g.GenerateAt(elem, 0)
}

// GenerateAt returns a generator of programs for elem at an explicit
// depth. Each draw merges the rules offered at that depth, picks one
// uniformly, and invokes its builder; the builder may request deeper
// sub-programs through the engine, and generation always terminates
// because base rules are available at every depth and the bound is
// finite.
func (g *Generator[F]) GenerateAt(elem Elem, depth int) Gen[F] {
	return func(r *rand.Rand) F {
		rules := g.Rules(elem, depth)
		if len(rules) == 0 {
			panic("genk: empty rule set for element " + elem.Name)
		}
		rule := rules[r.IntN(len(rules))]
		return rule.Build()(r)
	}
}

// deeper implements Deeper bound to a fixed depth.
type deeper[F any] struct {
	g     *Generator[F]
	depth int
}

func (d *deeper[F]) Gen(elem Elem) Gen[F] {
	return d.g.GenerateAt(elem, d.depth)
}

func (d *deeper[F]) AnyElem(r *rand.Rand) Elem {
	return d.g.elems[r.IntN(len(d.g.elems))]
}
