// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import "reflect"

// Marshaler lets a type take over its own encoding instead of going through
// the reflection-based Representer.
type Marshaler interface {
	MarshalYAML() (any, error)
}

// IsZeroer lets a type decide for itself whether it counts as the zero
// value, which the Representer consults when a field carries ",omitempty".
// time.Time is the motivating example: its zero value isn't the all-zero
// struct literal.
type IsZeroer interface {
	IsZero() bool
}

// FromYAMLNode lets a type decode itself directly from a composed Node,
// bypassing scalar-only Unmarshaler-style decoding. Prefer this over the
// legacy reflect.Value-based hooks for anything new.
type FromYAMLNode interface {
	FromYAMLNode(*Node) error
}

// ToYAMLNode lets a type build its own Node directly, bypassing the
// reflection-based Representer. Prefer this over the legacy hooks for
// anything new.
type ToYAMLNode interface {
	ToYAMLNode() (*Node, error)
}

// isZero reports whether v is the zero value of its type, for deciding
// ",omitempty" behavior. A type implementing IsZeroer is authoritative;
// everything else falls back to a structural check by reflect.Kind.
func isZero(v reflect.Value) bool {
	if z, ok := v.Interface().(IsZeroer); ok {
		if nilable(v) && v.IsNil() {
			return true
		}
		return z.IsZero()
	}
	switch v.Kind() {
	case reflect.String:
		return v.Len() == 0
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Struct:
		return structIsZero(v)
	}
	return false
}

func nilable(v reflect.Value) bool {
	k := v.Kind()
	return k == reflect.Pointer || k == reflect.Interface
}

// structIsZero reports whether every exported field of v is itself zero.
// Unexported fields can't be inspected and are treated as always-zero.
func structIsZero(v reflect.Value) bool {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		if t.Field(i).PkgPath != "" {
			continue
		}
		if !isZero(v.Field(i)) {
			return false
		}
	}
	return true
}
