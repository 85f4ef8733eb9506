// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"strings"
	"testing"

	"github.com/yamlcore/yaml/internal/testutil/assert"
)

// TestScan_OverlongSimpleKeyRejected exercises staleSimpleKeys' 1024-byte
// limit on how far a ':' may trail an unquoted mapping key. A key longer
// than that is not a simple key at all per the YAML spec, and the scanner
// must report it rather than scan forever looking for the colon.
func TestScan_OverlongSimpleKeyRejected(t *testing.T) {
	key := strings.Repeat("a", 1100)
	src := key + ": value\n"

	var out any
	err := Load([]byte(src), &out)

	assert.ErrorMatches(t, ".*could not find expected ':'.*", err)
}

// TestScan_SimpleKeyWithinLimitAccepted confirms a 100-byte key, well under
// the limit, still scans fine.
func TestScan_SimpleKeyWithinLimitAccepted(t *testing.T) {
	key := strings.Repeat("a", 100)
	src := key + ": value\n"

	var out map[string]string
	err := Load([]byte(src), &out)

	assert.NoError(t, err)
	assert.Equal(t, out[key], "value")
}

// TestParse_DuplicateTagDirectiveRejected exercises appendTagDirective's
// duplicate-handle check: two %TAG directives declaring the same handle in
// one document are a well-formedness error, not a silent override.
func TestParse_DuplicateTagDirectiveRejected(t *testing.T) {
	const src = "%TAG !e! tag:example.com,2000:\n%TAG !e! tag:example.com,2001:\n---\n!e!foo bar\n"

	var out any
	err := Load([]byte(src), &out)

	assert.ErrorMatches(t, ".*duplicate %TAG directive.*", err)
}

// TestParse_DuplicateYAMLDirectiveRejected exercises the analogous check for
// %YAML version directives.
func TestParse_DuplicateYAMLDirectiveRejected(t *testing.T) {
	const src = "%YAML 1.1\n%YAML 1.1\n---\nfoo: bar\n"

	var out any
	err := Load([]byte(src), &out)

	assert.ErrorMatches(t, ".*duplicate %YAML directive.*", err)
}

// TestScan_FlowNestingTooDeepRejected exercises maxFlowLevel: a flow
// collection nested past the cap must produce a controlled scanner error
// instead of growing the Parser/Composer call stack without bound.
func TestScan_FlowNestingTooDeepRejected(t *testing.T) {
	var b strings.Builder
	b.WriteString("top: ")
	for i := 0; i < maxFlowLevel+10; i++ {
		b.WriteByte('[')
	}
	b.WriteString("1")
	for i := 0; i < maxFlowLevel+10; i++ {
		b.WriteByte(']')
	}
	b.WriteByte('\n')

	var out any
	err := Load([]byte(b.String()), &out)

	assert.ErrorMatches(t, ".*flow nesting too deep.*", err)
}

// TestScan_FlowNestingWithinLimitAccepted confirms flow nesting well under
// the cap still parses correctly.
func TestScan_FlowNestingWithinLimitAccepted(t *testing.T) {
	depth := 50
	var b strings.Builder
	b.WriteString("top: ")
	for i := 0; i < depth; i++ {
		b.WriteByte('[')
	}
	b.WriteString("1")
	for i := 0; i < depth; i++ {
		b.WriteByte(']')
	}
	b.WriteByte('\n')

	var out any
	err := Load([]byte(b.String()), &out)

	assert.NoError(t, err)
}
