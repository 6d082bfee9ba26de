// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlink

import (
	"strconv"

	"go4.org/mem"
)

// A KeyType designates one interpretation of a path element as a key into a
// tree value.
type KeyType byte

// Constants defining the valid KeyType values.
const (
	StringKey KeyType = iota // a string key into a map
	IntKey                   // an integer index into a slice
)

var keyTypeStr = [...]string{
	StringKey: "string",
	IntKey:    "int",
}

func (t KeyType) String() string {
	if int(t) < len(keyTypeStr) {
		return keyTypeStr[t]
	}
	return "invalid"
}

// A Key is a typed key, the resolved form of a raw subscript.
type Key struct {
	Type  KeyType
	Name  string // the key name, valid when Type == StringKey
	Index int    // the index value, valid when Type == IntKey
}

func (k Key) String() string {
	if k.Type == IntKey {
		return strconv.Itoa(k.Index)
	}
	return strconv.Quote(k.Name)
}

// ParseKey resolves the raw text of a subscript to a typed key. Text that
// parses as an integer is an integer index; any other text is a string key,
// after one matching pair of surrounding quotation marks (single or double)
// is removed. The integer interpretation is attempted first, so [0] is an
// index while ["0"] and ['0'] are string keys.
func ParseKey(raw string) Key {
	if n, err := strconv.Atoi(raw); err == nil {
		return Key{Type: IntKey, Index: n}
	}
	return Key{Type: StringKey, Name: unquote(raw)}
}

// unquote removes one matching pair of surrounding quotation marks from s,
// if present.
func unquote(s string) string {
	v := mem.S(s)
	if v.Len() < 2 {
		return s
	}
	first, last := v.At(0), v.At(v.Len()-1)
	if first != last || (first != '\'' && first != '"') {
		return s
	}
	return v.SliceFrom(1).SliceTo(v.Len() - 2).StringCopy()
}
