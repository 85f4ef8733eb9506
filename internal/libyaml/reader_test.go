// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"io"
	"testing"

	"github.com/yamlcore/yaml/internal/testutil/assert"
)

func readAll(t *testing.T, r io.Reader) []byte {
	t.Helper()
	b, err := io.ReadAll(r)
	assert.NoError(t, err)
	return b
}

func TestDecodeToUTF8_PlainUTF8Passthrough(t *testing.T) {
	src := []byte("key: value\n")
	got := readAll(t, decodeToUTF8(&bytesReader{src}))
	assert.Equalf(t, string(got), string(src), "plain UTF-8 input should pass through unchanged, got %q", got)
}

func TestDecodeToUTF8_UTF16BigEndian(t *testing.T) {
	src := utf16BEBytes(t, "a: 1\n")
	got := readAll(t, decodeToUTF8(&bytesReader{src}))
	assert.Equalf(t, string(got), "a: 1\n", "UTF-16BE input should decode to %q, got %q", "a: 1\n", got)
}

func TestDecodeToUTF8_UTF16LittleEndian(t *testing.T) {
	src := utf16LEBytes(t, "a: 1\n")
	got := readAll(t, decodeToUTF8(&bytesReader{src}))
	assert.Equalf(t, string(got), "a: 1\n", "UTF-16LE input should decode to %q, got %q", "a: 1\n", got)
}

func TestDecodeToUTF8_UTF32BigEndian(t *testing.T) {
	src := utf32Bytes(t, "a: 1\n", true)
	got := readAll(t, decodeToUTF8(&bytesReader{src}))
	assert.Equalf(t, string(got), "a: 1\n", "UTF-32BE input should decode to %q, got %q", "a: 1\n", got)
}

func TestDecodeToUTF8_UTF32LittleEndian(t *testing.T) {
	src := utf32Bytes(t, "a: 1\n", false)
	got := readAll(t, decodeToUTF8(&bytesReader{src}))
	assert.Equalf(t, string(got), "a: 1\n", "UTF-32LE input should decode to %q, got %q", "a: 1\n", got)
}

// TestLoad_UTF16DocumentRoundTrips confirms the reader stage is actually
// wired up end to end, not just unit-tested in isolation: Load must accept
// a UTF-16LE-with-BOM document and resolve the same value it would from
// plain UTF-8.
func TestLoad_UTF16DocumentRoundTrips(t *testing.T) {
	src := utf16LEBytes(t, "name: yamlcore\ncount: 3\n")

	var out struct {
		Name  string `yaml:"name"`
		Count int    `yaml:"count"`
	}
	err := Load(src, &out)
	assert.NoError(t, err)
	assert.Equal(t, out.Name, "yamlcore")
	assert.Equal(t, out.Count, 3)
}

func utf16LEBytes(t *testing.T, s string) []byte {
	t.Helper()
	out := []byte{0xFF, 0xFE}
	for _, r := range s {
		if r > 0xFFFF {
			t.Fatalf("test helper does not support surrogate pairs")
		}
		out = append(out, byte(r), byte(r>>8))
	}
	return out
}

func utf16BEBytes(t *testing.T, s string) []byte {
	t.Helper()
	out := []byte{0xFE, 0xFF}
	for _, r := range s {
		if r > 0xFFFF {
			t.Fatalf("test helper does not support surrogate pairs")
		}
		out = append(out, byte(r>>8), byte(r))
	}
	return out
}

func utf32Bytes(t *testing.T, s string, bigEndian bool) []byte {
	t.Helper()
	var out []byte
	if bigEndian {
		out = []byte{0x00, 0x00, 0xFE, 0xFF}
	} else {
		out = []byte{0xFF, 0xFE, 0x00, 0x00}
	}
	for _, r := range s {
		var cp [4]byte
		if bigEndian {
			cp = [4]byte{byte(r >> 24), byte(r >> 16), byte(r >> 8), byte(r)}
		} else {
			cp = [4]byte{byte(r), byte(r >> 8), byte(r >> 16), byte(r >> 24)}
		}
		out = append(out, cp[:]...)
	}
	return out
}
