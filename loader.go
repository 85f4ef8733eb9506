// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This file contains the Loader API for reading YAML documents.
//
// Primary functions:
// - Load: Decode YAML document(s) into a value (use WithAll for multi-doc)
// - LoadAll: Decode every document in the input into a slice
// - NewLoader: Create a streaming loader from io.Reader

package yaml

import (
	"io"

	"github.com/yamlcore/yaml/internal/libyaml"
)

// Load decodes the single YAML document in in with the given options.
// An input with no document, or with more than one, is an error; with
// WithAll, every document is decoded into the slice that out points to.
//
// Maps and pointers (to a struct, string, int, etc) are accepted as out
// values. If an internal pointer within a struct is not initialized,
// the yaml package will initialize it if necessary. The out parameter
// must not be nil.
//
// The type of the decoded values should be compatible with the respective
// values in out. If one or more values cannot be decoded due to type
// mismatches, decoding continues partially until the end of the YAML
// content, and a *yaml.TypeError is returned with details for all
// missed values.
//
// Struct fields are only loaded if they are exported (have an upper case
// first letter), and are loaded using the field name lowercased as the
// default key. Custom keys may be defined via the "yaml" name in the field
// tag: the content preceding the first comma is used as the key, and the
// following comma-separated options control the loading and dumping behavior.
//
// For example:
//
//	type T struct {
//	    F int `yaml:"a,omitempty"`
//	    B int
//	}
//	var t T
//	yaml.Load([]byte("a: 1\nb: 2"), &t)
//
// See the documentation of Marshal for the format of tags and a list of
// supported tag options.
func Load(in []byte, out any, opts ...Option) error {
	return libyaml.Load(in, out, opts...)
}

// LoadAll decodes all YAML documents from the input.
//
// Returns a slice containing all decoded documents. Each document is
// decoded into an any value (typically map[string]any or []any).
func LoadAll(in []byte, opts ...Option) ([]any, error) {
	var docs []any
	err := libyaml.Load(in, &docs, append(append([]Option{}, opts...), WithAll())...)
	return docs, err
}

// A Loader reads and decodes YAML values from an input stream with
// configurable options.
type Loader struct {
	loader *libyaml.Loader
}

// NewLoader returns a new Loader that reads from r with the given options.
//
// The Loader introduces its own buffering and may read data from r beyond
// the YAML values requested.
func NewLoader(r io.Reader, opts ...Option) (*Loader, error) {
	l, err := libyaml.NewLoader(r, opts...)
	if err != nil {
		return nil, err
	}
	return &Loader{loader: l}, nil
}

// Load reads the next YAML-encoded document from its input and stores it
// in the value pointed to by v.
//
// Returns io.EOF when there are no more documents to read.
func (l *Loader) Load(v any) error {
	return l.loader.Load(v)
}
