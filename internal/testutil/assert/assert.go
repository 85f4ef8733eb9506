// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package assert holds the small set of assertion helpers the rest of this
// module's tests are built on. It exists so the test suite doesn't pull in
// a testing framework as a dependency just to get readable failure
// messages; every helper here is a thin wrapper around a comparison plus
// tb.Fatalf.
package assert

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
)

// miniTB is the subset of *testing.T every helper needs. Accepting this
// instead of *testing.T keeps the package usable from table-driven
// subtests and from helper functions that only have a narrower handle.
type miniTB interface {
	Helper()
	Fatalf(string, ...any)
}

func fail(tb miniTB, msgFormat string, args ...any) {
	tb.Helper()
	tb.Fatalf(msgFormat, args...)
}

func suffix(msgFormat string, args ...any) string {
	if msgFormat == "" {
		return ""
	}
	return " - " + fmt.Sprintf(msgFormat, args...)
}

// --- equality ---

// Equal asserts that want and got are equal under ==. Use [DeepEqual] for
// slices, maps, or structs containing them.
func Equal(tb miniTB, want, got any) {
	tb.Helper()
	Equalf(tb, want, got, "")
}

// Equalf is [Equal] with a custom failure message.
func Equalf(tb miniTB, want, got any, msgFormat string, args ...any) {
	tb.Helper()
	if got != want {
		fail(tb, "got %v; want %v%s", got, want, suffix(msgFormat, args...))
	}
}

// DeepEqual asserts that want and got are equal under reflect.DeepEqual.
func DeepEqual(tb miniTB, want, got any) {
	tb.Helper()
	DeepEqualf(tb, want, got, "")
}

// DeepEqualf is [DeepEqual] with a custom failure message.
func DeepEqualf(tb miniTB, want, got any, msgFormat string, args ...any) {
	tb.Helper()
	if !reflect.DeepEqual(got, want) {
		fail(tb, "got %+v; want %+v%s", got, want, suffix(msgFormat, args...))
	}
}

// --- booleans ---

// True asserts that got is true.
func True(tb miniTB, got bool) {
	tb.Helper()
	Truef(tb, got, "")
}

// Truef is [True] with a custom failure message.
func Truef(tb miniTB, got bool, msgFormat string, args ...any) {
	tb.Helper()
	if !got {
		fail(tb, "got false; want true%s", suffix(msgFormat, args...))
	}
}

// False asserts that got is false.
func False(tb miniTB, got bool) {
	tb.Helper()
	Falsef(tb, got, "")
}

// Falsef is [False] with a custom failure message.
func Falsef(tb miniTB, got bool, msgFormat string, args ...any) {
	tb.Helper()
	if got {
		fail(tb, "got true; want false%s", suffix(msgFormat, args...))
	}
}

// --- nilness ---

// IsNil asserts that v is nil, including a nil value stored in a non-nil
// interface (a typed nil pointer, slice, map, etc).
func IsNil(tb miniTB, v any) {
	tb.Helper()
	IsNilf(tb, v, "")
}

// IsNilf is [IsNil] with a custom failure message.
func IsNilf(tb miniTB, v any, msgFormat string, args ...any) {
	tb.Helper()
	if !isNil(v) {
		fail(tb, "got non-nil (type %T): %#v%s", v, v, suffix(msgFormat, args...))
	}
}

// NotNil asserts that v is not nil.
func NotNil(tb miniTB, v any) {
	tb.Helper()
	NotNilf(tb, v, "")
}

// NotNilf is [NotNil] with a custom failure message.
func NotNilf(tb miniTB, v any, msgFormat string, args ...any) {
	tb.Helper()
	if isNil(v) {
		fail(tb, "got nil; want non-nil%s", suffix(msgFormat, args...))
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer, reflect.Slice, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// --- errors ---

// NoError asserts that err is nil.
func NoError(tb miniTB, err error) {
	tb.Helper()
	NoErrorf(tb, err, "")
}

// NoErrorf is [NoError] with a custom failure message.
func NoErrorf(tb miniTB, err error, msgFormat string, args ...any) {
	tb.Helper()
	if err != nil {
		fail(tb, "unexpected error: %v%s", err, suffix(msgFormat, args...))
	}
}

// ErrorIs asserts that errors.Is(got, want).
func ErrorIs(tb miniTB, got, want error) {
	tb.Helper()
	if !errors.Is(got, want) {
		fail(tb, "got %#v; want %#v", got, want)
	}
}

// ErrorAs asserts that errors.As(err, target) succeeds.
func ErrorAs(tb miniTB, err error, target any) {
	tb.Helper()

	ok, recovered := errorAsSafe(err, target)
	if recovered != nil {
		fail(tb, "%s", recovered)
		return
	}
	if ok {
		return
	}

	t := reflect.TypeOf(target)
	if t.Kind() != reflect.Pointer {
		fail(tb, "a pointer was expected: got: %s; want: ptr", t.Kind())
		return
	}
	fail(tb, "got %#v; want %s", err, t.Elem())
}

// errorAsSafe calls errors.As, turning a panic (e.g. target isn't a
// pointer to an error-implementing type) into a returned error instead of
// crashing the test binary.
func errorAsSafe(err error, target any) (ok bool, recovered error) {
	defer func() {
		if r := recover(); r != nil {
			ok, recovered = false, fmt.Errorf("panic: %v", r)
		}
	}()
	return errors.As(err, target), nil
}

// ErrorMatches asserts that err is non-nil and its message matches the
// regular expression pattern.
func ErrorMatches(tb miniTB, pattern string, err error) {
	tb.Helper()
	ErrorMatchesf(tb, pattern, err, "")
}

// ErrorMatchesf is [ErrorMatches] with a custom failure message.
func ErrorMatchesf(tb miniTB, pattern string, err error, msgFormat string, args ...any) {
	tb.Helper()
	if err == nil {
		fail(tb, "got nil; want error matching %q%s", pattern, suffix(msgFormat, args...))
		return
	}
	matchOrFail(tb, pattern, err.Error(), "error", msgFormat, args...)
}

// --- panics ---

// PanicMatches asserts that f panics with a message matching pattern.
func PanicMatches(tb miniTB, pattern string, f func()) {
	tb.Helper()
	PanicMatchesf(tb, pattern, f, "")
}

// PanicMatchesf is [PanicMatches] with a custom failure message.
func PanicMatchesf(tb miniTB, pattern string, f func(), msgFormat string, args ...any) {
	tb.Helper()
	pan := runCatchingPanic(f)
	if pan == nil {
		fail(tb, "function did not panic; want panic matching %q%s", pattern, suffix(msgFormat, args...))
		return
	}
	matchOrFail(tb, pattern, panicMessage(pan), "panic", msgFormat, args...)
}

func runCatchingPanic(f func()) (pan any) {
	defer func() { pan = recover() }()
	f()
	return nil
}

func panicMessage(pan any) string {
	switch x := pan.(type) {
	case error:
		return x.Error()
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

// matchOrFail compiles pattern and fails tb unless it matches msg. label
// names what kind of message is being matched (e.g. "error", "panic") in
// the failure output.
func matchOrFail(tb miniTB, pattern, msg, label, msgFormat string, args ...any) {
	tb.Helper()
	re, err := regexp.Compile(pattern)
	if err != nil {
		fail(tb, "invalid regexp %q: %v%s", pattern, err, suffix(msgFormat, args...))
		return
	}
	if !re.MatchString(msg) {
		fail(tb, "%s %q does not match %q%s", label, msg, pattern, suffix(msgFormat, args...))
	}
}
