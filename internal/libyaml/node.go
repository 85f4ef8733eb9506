// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Node tree: the intermediate representation shared by the Composer,
// Resolver, Constructor, Representer, Desolver and Serializer stages.
// Also defines the short/long tag table and the YAML 1.1 implicit
// resolution rules used while composing and representing scalars.

package libyaml

import (
	"encoding/base64"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the shape of a [Node].
type Kind uint32

const (
	DocumentNode Kind = 1 << iota
	SequenceNode
	MappingNode
	ScalarNode
	AliasNode
	StreamNode
)

// Style holds a bitmask of presentation hints for a [Node].
type Style styleInt

const (
	TaggedStyle Style = 1 << iota
	DoubleQuotedStyle
	SingleQuotedStyle
	LiteralStyle
	FoldedStyle
	FlowStyle
)

// StreamVersionDirective mirrors a %YAML directive captured on a stream node.
type StreamVersionDirective struct {
	Major, Minor int8
}

// StreamTagDirective mirrors a %TAG directive captured on a stream node.
type StreamTagDirective struct {
	Handle, Prefix string
}

// Node represents a node in a YAML document tree, produced by the Composer
// and consumed by the Resolver, Constructor and Serializer.
type Node struct {
	// Kind is the node's kind (DocumentNode, SequenceNode, MappingNode,
	// ScalarNode or AliasNode).
	Kind Kind

	// Style allows customizing the apperance of the node in the tree.
	Style Style

	// Tag holds the YAML tag identifying the type of the node. When
	// empty the implicit tag resolved from Value will be used instead.
	Tag string

	// Value holds the raw text of the node's value for scalar nodes.
	Value string

	// Anchor holds the anchor name for this node, if any.
	Anchor string

	// Alias holds the node this alias node refers to, for AliasNode.
	Alias *Node

	// Content holds contained nodes for documents, mappings and
	// sequences.
	Content []*Node

	// HeadComment, LineComment and FootComment contain comments found
	// immediately before, at the end of, and immediately after the
	// node, respectively.
	HeadComment string
	LineComment string
	FootComment string

	// Line and Column hold the node's position in the original source,
	// with both starting at 1.
	Line   int
	Column int

	// Encoding holds the stream's detected encoding, for StreamNode.
	Encoding Encoding

	// Version holds the %YAML directive captured for the next document,
	// for StreamNode.
	Version *StreamVersionDirective

	// TagDirectives holds the %TAG directives captured for the next
	// document, for StreamNode.
	TagDirectives []StreamTagDirective
}

// IsZero reports whether the node has all of its fields unset.
func (n *Node) IsZero() bool {
	return n.Kind == 0 && n.Style == 0 && n.Tag == "" && n.Value == "" &&
		n.Anchor == "" && n.Alias == nil && n.Content == nil &&
		n.HeadComment == "" && n.LineComment == "" && n.FootComment == "" &&
		n.Line == 0 && n.Column == 0
}

// ShortTag returns the node's tag, resolving an implicit tag from the
// node's value when one was not set explicitly.
func (n *Node) ShortTag() string {
	if n.indicatedString() {
		return strTag
	}
	if n.Tag == "" || n.Tag == "!" {
		switch n.Kind {
		case MappingNode:
			return mapTag
		case SequenceNode:
			return seqTag
		case AliasNode:
			if n.Alias != nil {
				return n.Alias.ShortTag()
			}
		case ScalarNode:
			tag, _ := resolve("", n.Value)
			return tag
		}
		return ""
	}
	return shortTag(n.Tag)
}

// indicatedString reports whether the node's presentation style forces it
// to be interpreted as a plain string, regardless of its content.
func (n *Node) indicatedString() bool {
	return n.Kind == ScalarNode &&
		(shortTag(n.Tag) == strTag ||
			(n.Tag == "" || n.Tag == "!") && n.Style&(SingleQuotedStyle|DoubleQuotedStyle|LiteralStyle|FoldedStyle) != 0)
}

// Short tag names. These are the canonical tags used throughout the
// package once resolved from their long tag:yaml.org,2002:xxx form.
const (
	nullTag      = "!!null"
	boolTag      = "!!bool"
	strTag       = "!!str"
	intTag       = "!!int"
	floatTag     = "!!float"
	timestampTag = "!!timestamp"
	seqTag       = "!!seq"
	mapTag       = "!!map"
	binaryTag    = "!!binary"
	mergeTag     = "!!merge"
)

const longTagPrefix = "tag:yaml.org,2002:"

var longTags = make(map[string]string)
var shortTags = make(map[string]string)

func init() {
	for _, stag := range []string{nullTag, boolTag, strTag, intTag, floatTag, timestampTag, seqTag, mapTag, binaryTag, mergeTag} {
		ltag := longTag(stag)
		longTags[stag] = ltag
		shortTags[ltag] = stag
	}
}

// shortTag converts a tag to its short !!name form, if known.
func shortTag(tag string) string {
	if strings.HasPrefix(tag, longTagPrefix) {
		if stag, ok := shortTags[tag]; ok {
			return stag
		}
		return "!!" + tag[len(longTagPrefix):]
	}
	return tag
}

// longTag converts a tag to its long tag:yaml.org,2002:name form, if known.
func longTag(tag string) string {
	if strings.HasPrefix(tag, "!!") {
		if ltag, ok := longTags[tag]; ok {
			return ltag
		}
		return longTagPrefix + tag[2:]
	}
	return tag
}

func resolvableTag(tag string) bool {
	switch tag {
	case "", strTag, boolTag, intTag, floatTag, nullTag, timestampTag:
		return true
	}
	return false
}

var yamlStyleFloat = regexp.MustCompile(`^[-+]?(\.[0-9]+|[0-9]+(\.[0-9]*)?)([eE][-+]?[0-9]+)?$`)

type resolveMapItem struct {
	value any
	tag   string
}

var resolveTable [256]byte
var resolveMap = make(map[string]resolveMapItem)

func init() {
	t := &resolveTable
	t[int('+')] = 'S'
	t[int('-')] = 'S'
	for _, c := range "0123456789" {
		t[int(c)] = 'D'
	}
	for _, c := range "yYnNtTfFoO~" {
		t[int(c)] = 'M'
	}
	t[int('.')] = '.'

	resolveMapList := []struct {
		v   any
		tag string
		l   []string
	}{
		{true, boolTag, []string{"y", "Y", "yes", "Yes", "YES"}},
		{true, boolTag, []string{"true", "True", "TRUE"}},
		{true, boolTag, []string{"on", "On", "ON"}},
		{false, boolTag, []string{"n", "N", "no", "No", "NO"}},
		{false, boolTag, []string{"false", "False", "FALSE"}},
		{false, boolTag, []string{"off", "Off", "OFF"}},
		{nil, nullTag, []string{"", "~", "null", "Null", "NULL"}},
		{math.NaN(), floatTag, []string{".nan", ".NaN", ".NAN"}},
		{math.Inf(+1), floatTag, []string{".inf", ".Inf", ".INF"}},
		{math.Inf(+1), floatTag, []string{"+.inf", "+.Inf", "+.INF"}},
		{math.Inf(-1), floatTag, []string{"-.inf", "-.Inf", "-.INF"}},
		{"<<", mergeTag, []string{"<<"}},
	}
	for _, item := range resolveMapList {
		for _, s := range item.l {
			resolveMap[s] = resolveMapItem{item.v, item.tag}
		}
	}
}

// resolve applies the YAML 1.1 implicit typing rules to in, returning the
// resolved short tag and the decoded value. If tag is non-empty and not one
// of the core schema tags, in is returned unchanged under that tag.
func resolve(tag string, in string) (rtag string, out any) {
	if !resolvableTag(tag) {
		return tag, in
	}

	defer func() {
		switch tag {
		case "", rtag, strTag, binaryTag:
			return
		case floatTag:
			if rtag == intTag {
				switch v := out.(type) {
				case int64:
					rtag = floatTag
					out = float64(v)
					return
				case int:
					rtag = floatTag
					out = float64(v)
					return
				}
			}
		}
		failf("cannot decode %s `%s` as a %s", shortTag(rtag), in, shortTag(tag))
	}()

	hint := byte('N')
	if in != "" {
		hint = resolveTable[in[0]]
	}
	if hint != 0 && tag != strTag && tag != binaryTag {
		if item, ok := resolveMap[in]; ok {
			return item.tag, item.value
		}

		switch hint {
		case 'M':
			// Already checked the map above.

		case '.':
			floatv, err := strconv.ParseFloat(in, 64)
			if err == nil {
				return floatTag, floatv
			}

		case 'D', 'S':
			if tag == "" || tag == timestampTag {
				if t, ok := parseTimestamp(in); ok {
					return timestampTag, t
				}
			}

			plain := strings.Replace(in, "_", "", -1)
			intv, err := strconv.ParseInt(plain, 0, 64)
			if err == nil {
				if intv == int64(int(intv)) {
					return intTag, int(intv)
				}
				return intTag, intv
			}
			uintv, err := strconv.ParseUint(plain, 0, 64)
			if err == nil {
				return intTag, uintv
			}
			if yamlStyleFloat.MatchString(plain) {
				floatv, err := strconv.ParseFloat(plain, 64)
				if err == nil {
					return floatTag, floatv
				}
			}
			if strings.HasPrefix(plain, "0b") {
				intv, err := strconv.ParseInt(plain[2:], 2, 64)
				if err == nil {
					if intv == int64(int(intv)) {
						return intTag, int(intv)
					}
					return intTag, intv
				}
				uintv, err := strconv.ParseUint(plain[2:], 2, 64)
				if err == nil {
					return intTag, uintv
				}
			} else if strings.HasPrefix(plain, "-0b") {
				intv, err := strconv.ParseInt("-"+plain[3:], 2, 64)
				if err == nil {
					return intTag, int(intv)
				}
			}
		default:
			panic("resolveTable item not yet handled: " + string(rune(hint)) + " (with " + in + ")")
		}
	}
	return strTag, in
}

var allowedTimestampFormats = []string{
	"2006-1-2T15:4:5.999999999Z07:00",
	"2006-1-2t15:4:5.999999999Z07:00",
	"2006-1-2 15:4:5.999999999",
	"2006-1-2",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, format := range allowedTimestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// shouldUseLiteralStyle reports whether a multi-line string should be
// represented with a literal block style rather than a double-quoted one.
func shouldUseLiteralStyle(s string) bool {
	if s == "" {
		return false
	}
	if strings.Contains(s, "\r") {
		return false
	}
	if strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
		return false
	}
	for _, r := range s {
		if !isPrintableRune(r) {
			return false
		}
	}
	return strings.Contains(s, "\n") && !strings.Contains(s, "\n\n\n")
}

func isPrintableRune(r rune) bool {
	switch {
	case r == '\n' || r == '\t':
		return true
	case r < 0x20:
		return false
	case r == 0x7f:
		return false
	}
	return true
}

// encodeBase64 encodes s using standard base64, line-wrapped the way
// libyaml wraps !!binary scalars when representing them.
func encodeBase64(s string) string {
	const lineLen = 64
	encLen := base64.StdEncoding.EncodedLen(len(s))
	lines := encLen/lineLen + 1
	buf := make([]byte, encLen*2+lines)
	in := buf[0:encLen]
	out := buf[encLen:]
	base64.StdEncoding.Encode(in, []byte(s))
	k := 0
	for i := 0; i < len(in); i += lineLen {
		j := i + lineLen
		if j > len(in) {
			j = len(in)
		}
		k += copy(out[k:], in[i:j])
		if lines > 1 {
			out[k] = '\n'
			k++
		}
	}
	return string(out[:k])
}

// fail panics with a YAMLError wrapping err, for use in the marshal/encode
// code paths where Fail is already taken by the composer's public helper.
func fail(err error) {
	panic(&YAMLError{err})
}
