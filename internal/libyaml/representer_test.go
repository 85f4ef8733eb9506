// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"reflect"
	"testing"

	"github.com/yamlcore/yaml/internal/testutil/assert"
)

// TestRepresenter_ForcedQuoteStyle exercises the case where a string needs
// quoting not because of its own style (it's plain) but because it would
// otherwise resolve as a YAML 1.1 ambiguous value -- "yes" resolves as
// !!bool, so representing the Go string "yes" must quote it, and the quote
// character used must follow QuotePreference rather than always being a
// single quote.
func TestRepresenter_ForcedQuoteStyle(t *testing.T) {
	cases := []struct {
		name      string
		pref      QuoteStyle
		wantStyle Style
	}{
		{"default", 0, SingleQuotedStyle},
		{"explicit single", QuoteSingle, SingleQuotedStyle},
		{"double", QuoteDouble, DoubleQuotedStyle},
		{"legacy", QuoteLegacy, DoubleQuotedStyle},
	}
	for _, c := range cases {
		r := NewRepresenter(&Options{QuotePreference: c.pref})
		n := r.stringv("", reflect.ValueOf("yes"))
		assert.Equalf(t, n.Style&(SingleQuotedStyle|DoubleQuotedStyle), c.wantStyle,
			"%s: stringv(\"yes\").Style = %v, want %v", c.name, n.Style, c.wantStyle)
	}
}
