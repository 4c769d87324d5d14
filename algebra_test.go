// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genk_test

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"code.hybscloud.com/genk"
)

// node is a symbolic program: a tree of algebra operations. The tests
// inspect tree shapes; nothing ever interprets the programs. Function
// arguments are deliberately not stored so trees stay comparable with
// reflect.DeepEqual.
type node struct {
	op   string
	kids []*node
	val  any
	err  error
}

func opNode(op string, kids ...*node) *node {
	return &node{op: op, kids: kids}
}

// countOps accumulates the multiset of operation names in the tree.
func countOps(t *node, into map[string]int) {
	if t == nil {
		return
	}
	into[t.op]++
	for _, k := range t.kids {
		countOps(k, into)
	}
}

// treeAlg builds symbolic programs for every capability bundle.
type treeAlg struct{}

func (treeAlg) Pure(v any) *node { return &node{op: "pure", val: v} }

func (treeAlg) Map(fa *node, _ func(any) any) *node { return opNode("map", fa) }

func (treeAlg) Ap(ff, fa *node) *node { return opNode("ap", ff, fa) }

func (treeAlg) FlatMap(fa *node, _ func(any) *node) *node { return opNode("flatMap", fa) }

func (treeAlg) RaiseError(err error) *node { return &node{op: "raiseError", err: err} }

func (treeAlg) HandleErrorWith(fa *node, _ func(error) *node) *node {
	return opNode("handleErrorWith", fa)
}

func (treeAlg) BracketCase(acquire *node, _ func(any) *node, _ func(any, genk.Outcome) *node) *node {
	return opNode("bracketCase", acquire)
}

func (treeAlg) Canceled() *node { return opNode("canceled") }

func (treeAlg) Cede() *node { return opNode("cede") }

func (treeAlg) Never() *node { return opNode("never") }

func (treeAlg) Uncancelable(fa *node) *node { return opNode("uncancelable", fa) }

func (treeAlg) Start(fa *node) *node { return opNode("start", fa) }

func (treeAlg) Join(any) *node { return opNode("join") }

func (treeAlg) Cancel(any) *node { return opNode("cancel") }

func (treeAlg) RacePair(fa, fb *node) *node { return opNode("racePair", fa, fb) }

var (
	_ genk.Concurrent[*node]         = treeAlg{}
	_ genk.Safe[*node, genk.Outcome] = treeAlg{}
)

var intElem = genk.Elem{
	Name: "int",
	Arb:  func(r *rand.Rand) any { return r.IntN(100) },
	Hash: func(v any) uint64 { return uint64(v.(int)) },
}

var boolElem = genk.Elem{
	Name: "bool",
	Arb:  func(r *rand.Rand) any { return r.IntN(2) == 0 },
	Hash: func(v any) uint64 {
		if v.(bool) {
			return 1
		}
		return 0
	},
}

var strElem = genk.Elem{
	Name: "string",
	Arb: func(r *rand.Rand) any {
		b := make([]byte, r.IntN(9))
		for i := range b {
			b[i] = byte(r.IntN(95) + 32) // printable ASCII
		}
		return string(b)
	},
	Hash: func(v any) uint64 { return genk.HashString(v.(string)) },
}

var testElems = []genk.Elem{intElem, boolElem, strElem}

func testErrs(r *rand.Rand) error {
	return fmt.Errorf("err-%d", r.IntN(8))
}

// ruleNames projects a rule set to its names, preserving order.
func ruleNames[F any](rules []genk.Rule[F]) []string {
	names := make([]string, len(rules))
	for i, rule := range rules {
		names[i] = rule.Name
	}
	return names
}

// expectPanic asserts that f panics with a message containing want.
func expectPanic(t *testing.T, want string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", want)
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, want) {
			t.Fatalf("panic %v, want substring %q", r, want)
		}
	}()
	f()
}
