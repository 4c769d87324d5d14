// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genk

import (
	"maps"
	"slices"
)

// Rule is a named generation rule for programs of type F.
// Build constructs the generator lazily; it is only invoked after the
// rule has been selected, so rules that request deeper sub-programs cost
// nothing unless chosen.
type Rule[F any] struct {
	Name  string
	Build func() Gen[F]
}

// MergeRules merges base and recursive rule lists into the set a
// generation step selects from.
//
// The lists are concatenated (base first), collapsed by name with the
// last definition winning, and ordered lexicographically by name. A name
// contributed by two layers therefore appears exactly once — the stronger
// layer overrides the weaker one instead of doubling the name's selection
// probability — and selection is uniform over the deduplicated names.
func MergeRules[F any](base, recursive []Rule[F]) []Rule[F] {
	byName := make(map[string]Rule[F], len(base)+len(recursive))
	for _, rule := range base {
		byName[rule.Name] = rule
	}
	for _, rule := range recursive {
		byName[rule.Name] = rule
	}
	names := slices.Sorted(maps.Keys(byName))
	merged := make([]Rule[F], len(names))
	for i, name := range names {
		merged[i] = byName[name]
	}
	return merged
}
