// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// structmeta.go turns a Go struct type into a table the Constructor and
// Representer can drive off of: which exported field backs which YAML key,
// which field (if any) soaks up an inline map, and which fields are really
// promoted from an embedded struct. getStructInfo parses the `yaml:"..."`
// tags once per type and caches the result, since reflection over the same
// type happens on every Marshal/Unmarshal call.

package libyaml

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// fieldInfo describes one YAML-visible struct field.
type fieldInfo struct {
	Key       string
	Num       int
	OmitEmpty bool
	Flow      bool

	// Id is this field's position in FieldsList, used as a cheap
	// duplicate-free handle instead of walking FieldsMap by key.
	Id int

	// Inline is the path of field indices leading to this field through
	// zero or more embedded/inlined structs; nil for a direct field.
	Inline []int
}

// structInfo is the cached, per-type metadata getStructInfo builds.
type structInfo struct {
	FieldsMap  map[string]fieldInfo
	FieldsList []fieldInfo

	// InlineMap names the field holding a ",inline" map, or -1.
	InlineMap int

	// InlineConstructors lists the index paths of inlined fields whose
	// type implements UnmarshalYAML (or the root package's Unmarshaler),
	// so the Constructor can hand them raw nodes instead of flattening.
	InlineConstructors [][]int
}

var structInfoCache = newStructInfoCache()

type structInfoCacheT struct {
	mu sync.RWMutex
	m  map[reflect.Type]*structInfo
}

func newStructInfoCache() *structInfoCacheT {
	return &structInfoCacheT{m: make(map[reflect.Type]*structInfo)}
}

func (c *structInfoCacheT) get(t reflect.Type) (*structInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sinfo, ok := c.m[t]
	return sinfo, ok
}

func (c *structInfoCacheT) put(t reflect.Type, sinfo *structInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[t] = sinfo
}

// constructor is implemented by types that want to decode themselves
// directly from a composed Node, the lower-level counterpart to the root
// package's Unmarshaler.
type constructor interface {
	UnmarshalYAML(value *Node) error
}

// unmarshalerType is the reflect.Type of the constructor interface,
// computed once so inline-field detection can use reflect.Type.Implements
// instead of a name-based probe.
var unmarshalerType = reflect.TypeOf((*constructor)(nil)).Elem()

// looksLikeRootUnmarshaler reports whether t has an UnmarshalYAML method
// shaped like the root package's Unmarshaler interface. The root package
// can't be imported from here (it imports this one), so the check goes by
// method signature instead of by interface identity.
func looksLikeRootUnmarshaler(t reflect.Type) bool {
	method, ok := t.MethodByName("UnmarshalYAML")
	if !ok {
		return false
	}
	mtype := method.Type
	if mtype.NumIn() != 2 || mtype.NumOut() != 1 {
		return false
	}
	param := mtype.In(1)
	if param.Kind() != reflect.Ptr {
		return false
	}
	if elem := param.Elem(); elem.Kind() != reflect.Struct || elem.Name() != "Node" {
		return false
	}
	ret := mtype.Out(0)
	return ret.Kind() == reflect.Interface && ret.Name() == "error"
}

func isConstructorType(ptr reflect.Type) bool {
	return ptr.Implements(unmarshalerType) || looksLikeRootUnmarshaler(ptr)
}

// getStructInfo returns the cached field table for st, building and
// caching it on first use.
func getStructInfo(st reflect.Type) (*structInfo, error) {
	if sinfo, ok := structInfoCache.get(st); ok {
		return sinfo, nil
	}

	b := &structBuilder{
		fieldsMap:  make(map[string]fieldInfo),
		inlineMap:  -1,
		structType: st,
	}
	for i := 0; i < st.NumField(); i++ {
		if err := b.addField(st.Field(i), i); err != nil {
			return nil, err
		}
	}

	sinfo := &structInfo{
		FieldsMap:          b.fieldsMap,
		FieldsList:         b.fieldsList,
		InlineMap:          b.inlineMap,
		InlineConstructors: b.inlineConstructors,
	}
	structInfoCache.put(st, sinfo)
	return sinfo, nil
}

// structBuilder accumulates fieldInfo entries while walking a struct's
// fields in declaration order.
type structBuilder struct {
	structType         reflect.Type
	fieldsMap          map[string]fieldInfo
	fieldsList         []fieldInfo
	inlineMap          int
	inlineConstructors [][]int
}

func (b *structBuilder) addField(field reflect.StructField, i int) error {
	if field.PkgPath != "" && !field.Anonymous {
		return nil // unexported, not promoted
	}

	tag := field.Tag.Get("yaml")
	if tag == "" && !strings.Contains(string(field.Tag), ":") {
		tag = string(field.Tag)
	}
	if tag == "-" {
		return nil
	}

	name, flags, _ := strings.Cut(tag, ",")
	info := fieldInfo{Num: i}
	inline := false
	if flags != "" {
		for _, flag := range strings.Split(flags, ",") {
			switch flag {
			case "omitempty":
				info.OmitEmpty = true
			case "flow":
				info.Flow = true
			case "inline":
				inline = true
			default:
				return fmt.Errorf("unsupported flag %q in tag %q of type %s", flag, tag, b.structType)
			}
		}
	}

	if inline {
		return b.addInlineField(field, i)
	}

	if name != "" {
		info.Key = name
	} else {
		info.Key = strings.ToLower(field.Name)
	}
	return b.addLeaf(info)
}

func (b *structBuilder) addLeaf(info fieldInfo) error {
	if _, found := b.fieldsMap[info.Key]; found {
		return errors.New("duplicated key '" + info.Key + "' in struct " + b.structType.String())
	}
	info.Id = len(b.fieldsList)
	b.fieldsList = append(b.fieldsList, info)
	b.fieldsMap[info.Key] = info
	return nil
}

func (b *structBuilder) addInlineField(field reflect.StructField, i int) error {
	switch field.Type.Kind() {
	case reflect.Map:
		if b.inlineMap >= 0 {
			return errors.New("multiple ,inline maps in struct " + b.structType.String())
		}
		if field.Type.Key() != reflect.TypeOf("") {
			return errors.New("option ,inline needs a map with string keys in struct " + b.structType.String())
		}
		b.inlineMap = i
		return nil
	case reflect.Struct, reflect.Pointer:
		ftype := field.Type
		for ftype.Kind() == reflect.Pointer {
			ftype = ftype.Elem()
		}
		if ftype.Kind() != reflect.Struct {
			return errors.New("option ,inline may only be used on a struct or map field")
		}
		if isConstructorType(reflect.PointerTo(ftype)) {
			b.inlineConstructors = append(b.inlineConstructors, []int{i})
			return nil
		}
		return b.mergeInlineStruct(ftype, i)
	default:
		return errors.New("option ,inline may only be used on a struct or map field")
	}
}

func (b *structBuilder) mergeInlineStruct(ftype reflect.Type, i int) error {
	sinfo, err := getStructInfo(ftype)
	if err != nil {
		return err
	}
	for _, index := range sinfo.InlineConstructors {
		b.inlineConstructors = append(b.inlineConstructors, append([]int{i}, index...))
	}
	for _, finfo := range sinfo.FieldsList {
		if finfo.Inline == nil {
			finfo.Inline = []int{i, finfo.Num}
		} else {
			finfo.Inline = append([]int{i}, finfo.Inline...)
		}
		if err := b.addLeaf(finfo); err != nil {
			return err
		}
	}
	return nil
}
