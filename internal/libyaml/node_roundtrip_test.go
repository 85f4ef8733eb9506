// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Node-tree equality tests using go-cmp, which reports a structural diff
// on failure instead of assert.DeepEqual's flat boolean -- useful here
// because a mismatch between two composed trees is usually buried a few
// levels down inside nested mappings/sequences.

package libyaml

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/yamlcore/yaml/internal/testutil/assert"
)

func composeAndResolve(t *testing.T, src string) *Node {
	t.Helper()
	l, err := NewLoader(strings.NewReader(src))
	assert.NoError(t, err)
	node := l.ComposeAndResolve()
	assert.NotNil(t, node)
	return node
}

// ignorePositions drops Line/Column, which are meaningless once two
// documents were not parsed from byte-identical input.
var ignorePositions = cmpopts.IgnoreFields(Node{}, "Line", "Column")

func TestComposeAndResolve_DeterministicTree(t *testing.T) {
	const src = `
name: yamlcore
tags: [fast, small]
limits:
  cpu: 2
  memory: 512Mi
enabled: true
`
	a := composeAndResolve(t, src)
	b := composeAndResolve(t, src)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("composing the same document twice produced different trees (-first +second):\n%s", diff)
	}
}

func TestComposeAndResolve_ImplicitTagsResolved(t *testing.T) {
	const src = `
count: 3
ratio: 1.5
flag: false
missing: null
`
	node := composeAndResolve(t, src)
	root := node.Content[0]
	if root.Kind != MappingNode {
		t.Fatalf("root kind = %v, want MappingNode", root.Kind)
	}

	want := map[string]string{
		"count":   intTag,
		"ratio":   floatTag,
		"flag":    boolTag,
		"missing": nullTag,
	}
	got := map[string]string{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		val := root.Content[i+1]
		got[key.Value] = val.ShortTag()
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("resolved tags mismatch (-want +got):\n%s", diff)
	}
}

// TestDumpThenComposeMatches checks that dumping a value and re-composing
// the result yields a node tree equivalent to composing a handwritten
// document with the same content, modulo source position.
func TestDumpThenComposeMatches(t *testing.T) {
	type inner struct {
		CPU    int    `yaml:"cpu"`
		Memory string `yaml:"memory"`
	}
	type config struct {
		Name   string   `yaml:"name"`
		Tags   []string `yaml:"tags"`
		Limits inner    `yaml:"limits"`
	}

	out, err := Dump(config{
		Name:   "yamlcore",
		Tags:   []string{"fast", "small"},
		Limits: inner{CPU: 2, Memory: "512Mi"},
	})
	assert.NoError(t, err)

	const handwritten = `
name: yamlcore
tags:
  - fast
  - small
limits:
  cpu: 2
  memory: 512Mi
`
	dumped := composeAndResolve(t, string(out))
	expected := composeAndResolve(t, handwritten)

	if diff := cmp.Diff(expected, dumped, ignorePositions); diff != "" {
		t.Fatalf("dumped document composes to a different tree than expected (-want +got):\n%s", diff)
	}
}
