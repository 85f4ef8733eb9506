// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"testing"

	"github.com/yamlcore/yaml/internal/testutil/assert"
)

func TestResolver_LeavesExplicitTagsAlone(t *testing.T) {
	r := NewResolver(&Options{})

	scalar := &Node{Kind: ScalarNode, Tag: "!!str", Value: "42"}
	r.Resolve(scalar)
	assert.Equal(t, scalar.Tag, "!!str")
}

func TestResolver_FillsImplicitScalarTags(t *testing.T) {
	r := NewResolver(&Options{})

	cases := []struct {
		value   string
		wantTag string
	}{
		{"42", intTag},
		{"3.14", floatTag},
		{"true", boolTag},
		{"null", nullTag},
		{"plain string", strTag},
	}
	for _, c := range cases {
		n := &Node{Kind: ScalarNode, Value: c.value}
		r.Resolve(n)
		assert.Equalf(t, n.Tag, c.wantTag, "Resolve(%q).Tag = %q, want %q", c.value, n.Tag, c.wantTag)
	}
}

func TestResolver_FillsCollectionTagsAndRecurses(t *testing.T) {
	r := NewResolver(&Options{})

	seq := &Node{
		Kind: SequenceNode,
		Content: []*Node{
			{Kind: ScalarNode, Value: "1"},
			{Kind: ScalarNode, Value: "yes"},
		},
	}
	r.Resolve(seq)

	assert.Equal(t, seq.Tag, seqTag)
	assert.Equal(t, seq.Content[0].Tag, intTag)
	assert.Equal(t, seq.Content[1].Tag, boolTag)
}

func TestResolver_MappingGetsMapTag(t *testing.T) {
	r := NewResolver(&Options{})

	m := &Node{
		Kind: MappingNode,
		Content: []*Node{
			{Kind: ScalarNode, Value: "key"},
			{Kind: ScalarNode, Value: "1"},
		},
	}
	r.Resolve(m)

	assert.Equal(t, m.Tag, mapTag)
	assert.Equal(t, m.Content[0].Tag, strTag)
	assert.Equal(t, m.Content[1].Tag, intTag)
}

func TestResolver_NilNodeIsNoOp(t *testing.T) {
	r := NewResolver(&Options{})
	r.Resolve(nil) // must not panic
}

func TestResolver_AliasNodeLeftAlone(t *testing.T) {
	r := NewResolver(&Options{})
	target := &Node{Kind: ScalarNode, Tag: "!!str", Value: "x"}
	alias := &Node{Kind: AliasNode, Alias: target}

	r.Resolve(alias)

	assert.Equal(t, alias.Tag, "")
}
