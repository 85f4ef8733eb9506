// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This file contains the Resolver, the second stage of the Loader pipeline.
// It walks a composed node tree and fills in the implicit tag of any
// scalar, sequence or mapping node the Composer left untagged.

package libyaml

// A Resolver determines the implicit tag of untagged nodes produced by a
// Composer, before they reach a Constructor.
type Resolver struct {
	options *Options
}

// NewResolver returns a new Resolver configured by opts.
func NewResolver(opts *Options) *Resolver {
	return &Resolver{options: opts}
}

// Resolve walks node and its descendants, assigning an implicit tag to
// any node the Composer left untagged. Nodes that already carry a tag,
// including ones inferred from style (e.g. a quoted scalar), are left
// untouched.
func (r *Resolver) Resolve(node *Node) {
	if node == nil {
		return
	}
	switch node.Kind {
	case DocumentNode, StreamNode:
		for _, c := range node.Content {
			r.Resolve(c)
		}
	case SequenceNode:
		if node.Tag == "" {
			node.Tag = seqTag
		}
		for _, c := range node.Content {
			r.Resolve(c)
		}
	case MappingNode:
		if node.Tag == "" {
			node.Tag = mapTag
		}
		for _, c := range node.Content {
			r.Resolve(c)
		}
	case ScalarNode:
		if node.Tag == "" {
			node.Tag, _ = resolve("", node.Value)
		}
	case AliasNode:
		// The aliased node was resolved when it was first composed.
	}
}
