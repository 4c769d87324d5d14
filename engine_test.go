// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genk_test

import (
	"math/rand/v2"
	"reflect"
	"slices"
	"sync"
	"testing"

	"code.hybscloud.com/genk"
)

func TestNewNilLayer(t *testing.T) {
	expectPanic(t, "nil capability layer", func() {
		var layer genk.Layer[*node]
		genk.New(layer, testElems)
	})
}

func TestNewEmptyElementPool(t *testing.T) {
	expectPanic(t, "empty element pool", func() {
		genk.New[*node](genk.MonadGenerators[*node]{Cap: treeAlg{}}, nil)
	})
}

func TestNewUnnamedElement(t *testing.T) {
	bad := genk.Elem{Arb: intElem.Arb, Hash: intElem.Hash}
	expectPanic(t, "without a name", func() {
		genk.New[*node](genk.MonadGenerators[*node]{Cap: treeAlg{}}, []genk.Elem{bad})
	})
}

func TestNewElementWithoutArb(t *testing.T) {
	bad := genk.Elem{Name: "int", Hash: intElem.Hash}
	expectPanic(t, "no arbitrary-value generator", func() {
		genk.New[*node](genk.MonadGenerators[*node]{Cap: treeAlg{}}, []genk.Elem{bad})
	})
}

func TestNewElementWithoutHash(t *testing.T) {
	bad := genk.Elem{Name: "int", Arb: intElem.Arb}
	expectPanic(t, "no hash function", func() {
		genk.New[*node](genk.MonadGenerators[*node]{Cap: treeAlg{}}, []genk.Elem{bad})
	})
}

func TestNewDuplicateElement(t *testing.T) {
	expectPanic(t, "duplicate element descriptor", func() {
		genk.New[*node](genk.MonadGenerators[*node]{Cap: treeAlg{}}, []genk.Elem{intElem, intElem})
	})
}

func TestNewMissingErrorGenerator(t *testing.T) {
	// Surfaced at construction through the base-rule probe.
	expectPanic(t, "without an error generator", func() {
		genk.New[*node](genk.ApplicativeErrorGenerators[*node]{Cap: treeAlg{}}, testElems)
	})
}

func TestNewMissingCapability(t *testing.T) {
	expectPanic(t, "without a capability bundle", func() {
		genk.New[*node](genk.ApplicativeGenerators[*node]{}, testElems)
	})
}

func TestWithMaxDepthNegative(t *testing.T) {
	g := genk.New[*node](genk.MonadGenerators[*node]{Cap: treeAlg{}}, testElems)
	expectPanic(t, "negative depth bound", func() {
		g.WithMaxDepth(-1)
	})
}

func TestRulesDepthEnforcement(t *testing.T) {
	g := genk.New[*node](genk.MonadGenerators[*node]{Cap: treeAlg{}}, testElems)

	under := ruleNames(g.Rules(intElem, genk.DefaultMaxDepth-1))
	want := []string{"ap", "flatMap", "map", "pure"}
	if !slices.Equal(under, want) {
		t.Fatalf("below the bound: got %v, want %v", under, want)
	}

	// At the bound and beyond it, the set is exactly the base set.
	for _, depth := range []int{genk.DefaultMaxDepth, genk.DefaultMaxDepth + 1} {
		names := ruleNames(g.Rules(intElem, depth))
		if !slices.Equal(names, []string{"pure"}) {
			t.Fatalf("depth %d: got %v, want [pure]", depth, names)
		}
	}
}

func TestRulesSortedByName(t *testing.T) {
	g := genk.New[*node](genk.ConcurrentGenerators[*node]{Cap: treeAlg{}, Errors: testErrs}, testElems)
	names := ruleNames(g.Rules(intElem, 0))
	if !slices.IsSorted(names) {
		t.Fatalf("rule names not sorted: %v", names)
	}
}

func TestGenerateReproducible(t *testing.T) {
	g := genk.New[*node](genk.ConcurrentGenerators[*node]{Cap: treeAlg{}, Errors: testErrs}, testElems)
	r1 := rand.New(rand.NewPCG(42, 7))
	r2 := rand.New(rand.NewPCG(42, 7))
	gen := g.Generate(intElem)
	for i := range 50 {
		a := gen(r1)
		b := gen(r2)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("draw %d diverged under identical seeds", i)
		}
	}
}

func TestGenerateBeyondBoundTerminates(t *testing.T) {
	g := genk.New[*node](genk.MonadGenerators[*node]{Cap: treeAlg{}}, testElems)
	r := rand.New(rand.NewPCG(42, 0))
	gen := g.GenerateAt(intElem, genk.DefaultMaxDepth+1)
	for range 100 {
		p := gen(r)
		if p == nil {
			t.Fatalf("generation produced nil")
		}
		if p.op != "pure" {
			t.Fatalf("beyond the bound only base rules may fire, got %q", p.op)
		}
	}
}

// Scenario: maxDepth 0 with only the Applicative layer must only ever
// produce pure, since map and ap are recursive and pruned.
func TestScenarioApplicativeDepthZero(t *testing.T) {
	g := genk.New[*node](genk.ApplicativeGenerators[*node]{Cap: treeAlg{}}, testElems).WithMaxDepth(0)
	r := rand.New(rand.NewPCG(42, 0))
	gen := g.Generate(intElem)
	for i := range 1000 {
		p := gen(r)
		if p.op != "pure" {
			t.Fatalf("draw %d produced %q, want pure", i, p.op)
		}
		if len(p.kids) != 0 {
			t.Fatalf("draw %d produced a recursive shape", i)
		}
	}
}

// Scenario: maxDepth 1 with the Monad layer over a two-value element type
// produces pure, map, ap, and flatMap shapes over 10000 samples.
func TestScenarioMonadDepthOne(t *testing.T) {
	g := genk.New[*node](genk.MonadGenerators[*node]{Cap: treeAlg{}}, []genk.Elem{boolElem}).WithMaxDepth(1)
	r := rand.New(rand.NewPCG(42, 0))
	gen := g.Generate(boolElem)
	ops := map[string]int{}
	for range 10000 {
		countOps(gen(r), ops)
	}
	for _, want := range []string{"pure", "map", "ap", "flatMap"} {
		if ops[want] == 0 {
			t.Fatalf("shape %q never produced over 10000 samples (got %v)", want, ops)
		}
	}
}

func TestGenerateConcurrentUse(t *testing.T) {
	g := genk.New[*node](genk.ConcurrentGenerators[*node]{Cap: treeAlg{}, Errors: testErrs}, testElems)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			r := rand.New(rand.NewPCG(seed, 0))
			gen := g.Generate(intElem)
			for range 200 {
				if gen(r) == nil {
					panic("nil program")
				}
			}
		}(uint64(i))
	}
	wg.Wait()
}

func TestWithMaxDepthCopies(t *testing.T) {
	g := genk.New[*node](genk.MonadGenerators[*node]{Cap: treeAlg{}}, testElems)
	shallow := g.WithMaxDepth(0)
	if len(g.Rules(intElem, 0)) == len(shallow.Rules(intElem, 0)) {
		t.Fatalf("WithMaxDepth should not mutate the receiver's bound")
	}
	if !slices.Equal(ruleNames(g.Rules(intElem, 0)), []string{"ap", "flatMap", "map", "pure"}) {
		t.Fatalf("original generator changed by WithMaxDepth")
	}
}
