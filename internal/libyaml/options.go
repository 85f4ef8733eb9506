// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Options shared by the Loader and Dumper pipelines, and the functional
// options used to configure them.

package libyaml

import "errors"

var errIndentNegative = errors.New("yaml: indent must be non-negative")

// AliasingRestrictionFunction decides whether an alias may still be expanded
// given the number of aliases and constructed values seen so far in the
// current document. It should return true to allow the expansion.
type AliasingRestrictionFunction func(aliasCount, constructCount int) bool

// DefaultAliasingRestrictions is the aliasing restriction applied when no
// custom AliasingRestrictionFunction is supplied. It limits the ratio of
// alias expansions to constructed values once enough values have been seen,
// guarding against billion-laughs style documents.
func DefaultAliasingRestrictions(aliasCount, constructCount int) bool {
	if aliasCount < alias_ratio_range_low {
		return true
	}
	if aliasCount > alias_ratio_range_high {
		return false
	}
	return aliasCount <= 10*constructCount
}

// Options holds the configuration shared by the Loader and Dumper
// pipelines. Build one with ApplyOptions.
type Options struct {
	// Indent is the number of spaces used per indentation level when
	// emitting YAML.
	Indent int

	// CompactSeqIndent controls whether the "- " of a sequence item
	// counts as part of the indentation of its content.
	CompactSeqIndent bool

	// LineWidth is the preferred maximum line length used when emitting
	// YAML. A negative value disables wrapping.
	LineWidth int

	// Unicode allows unescaped non-ASCII characters in the output.
	Unicode bool

	// Canonical forces the canonical YAML representation.
	Canonical bool

	// LineBreak selects the line break style used when emitting YAML.
	LineBreak LineBreak

	// ExplicitStart forces a "---" document start marker.
	ExplicitStart bool

	// ExplicitEnd forces a "..." document end marker.
	ExplicitEnd bool

	// FlowSimpleCollections renders collections of scalars using flow
	// style even when the overall document uses block style.
	FlowSimpleCollections bool

	// KnownFields requires that every mapping key decoded into a struct
	// correspond to one of its fields.
	KnownFields bool

	// SingleDocument restricts a Loader to reading a single document,
	// returning io.EOF on subsequent reads.
	SingleDocument bool

	// AllDocuments switches Load/Dump to operate over a slice of
	// documents instead of a single value.
	AllDocuments bool

	// UniqueKeys rejects mappings containing duplicate keys.
	UniqueKeys bool

	// StreamNodes enables emission of a StreamNode wrapping the
	// directives that precede each document, instead of discarding them.
	StreamNodes bool

	// FromLegacy marks options built on behalf of the deprecated
	// Unmarshal/Decoder API, relaxing the Loader's single-document
	// trailing-content check to match their historical behavior.
	FromLegacy bool

	// QuotePreference selects which quote style the Representer prefers
	// when a scalar must be quoted.
	QuotePreference QuoteStyle

	// AliasingRestrictionFunction limits alias expansion while
	// constructing values. Defaults to DefaultAliasingRestrictions.
	AliasingRestrictionFunction AliasingRestrictionFunction
}

// Option configures an Options value. Options are applied in order, so
// later options override earlier ones.
type Option func(*Options) error

// defaultOptions returns the baseline configuration used before any Option
// is applied.
func defaultOptions() *Options {
	return &Options{
		Indent:    4,
		LineWidth: 80,
		Unicode:   true,
		LineBreak: LN_BREAK,
	}
}

// ApplyOptions builds an Options value from the given functional options,
// starting from the package defaults.
func ApplyOptions(opts ...Option) (*Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// CombineOptions returns a single Option that applies every opt in order.
// This allows presets built from several options to be passed around and
// combined like any other Option.
func CombineOptions(opts ...Option) Option {
	return func(o *Options) error {
		for _, opt := range opts {
			if opt == nil {
				continue
			}
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

// LegacyOptions holds the fixed configuration used by the deprecated
// Marshal/Unmarshal, Decoder and Encoder APIs.
var LegacyOptions = &Options{
	Indent:     4,
	LineWidth:  80,
	Unicode:    true,
	UniqueKeys: false,
	LineBreak:  LN_BREAK,
	FromLegacy: true,
}

// WithIndent sets the number of spaces used per indentation level.
func WithIndent(spaces int) Option {
	return func(o *Options) error {
		if spaces < 0 {
			return &YAMLError{errIndentNegative}
		}
		o.Indent = spaces
		return nil
	}
}

// WithCompactSeqIndent controls whether "- " counts as indentation.
func WithCompactSeqIndent(enable ...bool) Option {
	v := true
	if len(enable) > 0 {
		v = enable[0]
	}
	return func(o *Options) error {
		o.CompactSeqIndent = v
		return nil
	}
}

// WithLineWidth sets the preferred maximum line length.
func WithLineWidth(width int) Option {
	return func(o *Options) error {
		o.LineWidth = width
		return nil
	}
}

// WithUnicode controls whether unescaped non-ASCII characters are allowed.
func WithUnicode(enable ...bool) Option {
	v := true
	if len(enable) > 0 {
		v = enable[0]
	}
	return func(o *Options) error {
		o.Unicode = v
		return nil
	}
}

// WithCanonical forces the canonical YAML representation.
func WithCanonical(enable ...bool) Option {
	v := true
	if len(enable) > 0 {
		v = enable[0]
	}
	return func(o *Options) error {
		o.Canonical = v
		return nil
	}
}

// WithLineBreak selects the line break style used when emitting YAML.
func WithLineBreak(lb LineBreak) Option {
	return func(o *Options) error {
		o.LineBreak = lb
		return nil
	}
}

// WithExplicitStart forces a "---" document start marker.
func WithExplicitStart(enable ...bool) Option {
	v := true
	if len(enable) > 0 {
		v = enable[0]
	}
	return func(o *Options) error {
		o.ExplicitStart = v
		return nil
	}
}

// WithExplicitEnd forces a "..." document end marker.
func WithExplicitEnd(enable ...bool) Option {
	v := true
	if len(enable) > 0 {
		v = enable[0]
	}
	return func(o *Options) error {
		o.ExplicitEnd = v
		return nil
	}
}

// WithFlowSimpleCollections renders collections of scalars using flow
// style even when the overall document uses block style.
func WithFlowSimpleCollections(enable ...bool) Option {
	v := true
	if len(enable) > 0 {
		v = enable[0]
	}
	return func(o *Options) error {
		o.FlowSimpleCollections = v
		return nil
	}
}

// WithKnownFields requires that decoded mapping keys correspond to struct
// fields.
func WithKnownFields(enable ...bool) Option {
	v := true
	if len(enable) > 0 {
		v = enable[0]
	}
	return func(o *Options) error {
		o.KnownFields = v
		return nil
	}
}

// WithSingleDocument restricts a Loader to a single document.
func WithSingleDocument(enable ...bool) Option {
	v := true
	if len(enable) > 0 {
		v = enable[0]
	}
	return func(o *Options) error {
		o.SingleDocument = v
		return nil
	}
}

// WithAllDocuments switches Load/Dump to operate over a slice of documents.
func WithAllDocuments(enable ...bool) Option {
	v := true
	if len(enable) > 0 {
		v = enable[0]
	}
	return func(o *Options) error {
		o.AllDocuments = v
		return nil
	}
}

// WithUniqueKeys rejects mappings containing duplicate keys.
func WithUniqueKeys(enable ...bool) Option {
	v := true
	if len(enable) > 0 {
		v = enable[0]
	}
	return func(o *Options) error {
		o.UniqueKeys = v
		return nil
	}
}

// WithStreamNodes enables emission of a StreamNode carrying the directives
// that precede each document.
func WithStreamNodes(enable ...bool) Option {
	v := true
	if len(enable) > 0 {
		v = enable[0]
	}
	return func(o *Options) error {
		o.StreamNodes = v
		return nil
	}
}

// WithQuotePreference selects which quote style the Representer prefers
// when a scalar must be quoted.
func WithQuotePreference(q QuoteStyle) Option {
	return func(o *Options) error {
		o.QuotePreference = q
		return nil
	}
}

// WithAliasingRestriction overrides the function used to limit alias
// expansion while constructing values.
func WithAliasingRestriction(fn AliasingRestrictionFunction) Option {
	return func(o *Options) error {
		o.AliasingRestrictionFunction = fn
		return nil
	}
}
