// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Desolver removes unnecessary tags from YAML nodes.
// This is the inverse of tag resolution - tags that match implicit
// resolution can be omitted from the output.

package libyaml

// Desolver handles tag desolution for YAML nodes.
type Desolver struct {
	opts *Options
}

// NewDesolver creates a new Desolver with the given options.
func NewDesolver(opts *Options) *Desolver {
	return &Desolver{opts: opts}
}

// Desolve walks the node tree and clears tags that the resolver would
// reconstruct anyway from the node's kind and content, so the Serializer
// only ever has to emit a tag when it changes the meaning of the node.
// This is the inverse of Resolver.Resolve().
func (d *Desolver) Desolve(n *Node) {
	if n == nil {
		return
	}
	d.desolve(n)
}

func (d *Desolver) desolve(n *Node) {
	if n.Tag != "" && n.Style&TaggedStyle == 0 {
		stag := shortTag(n.Tag)
		switch n.Kind {
		case ScalarNode:
			switch {
			case stag == strTag && n.Style&(SingleQuotedStyle|DoubleQuotedStyle|LiteralStyle|FoldedStyle) != 0:
				n.Tag = ""
			default:
				if rtag, _ := resolve("", n.Value); rtag == stag {
					n.Tag = ""
				} else if stag == strTag {
					// Dropping the tag would let the value resolve to
					// something other than a string; keep the string
					// meaning by forcing a quoted style instead.
					n.Tag = ""
					n.Style |= DoubleQuotedStyle
				}
			}
		case SequenceNode:
			if stag == seqTag {
				n.Tag = ""
			}
		case MappingNode:
			if stag == mapTag {
				n.Tag = ""
			}
		}
	}

	for _, child := range n.Content {
		d.desolve(child)
	}
}
