// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlink

import (
	"errors"
	"fmt"
	"strconv"
)

// Nil is the default null sentinel reported by Eval when evaluation fails.
// It is distinct from untyped nil, so a path that addresses a JSON null in
// the tree yields nil rather than Nil.
var Nil any = nilValue{}

type nilValue struct{}

func (nilValue) String() string { return `{"result":"error"}` }

// Options are the settings for a single evaluation. A nil *Options is ready
// for use and provides the defaults described on each field. An Options
// value is never modified by evaluation.
type Options struct {
	// KeyTypes is the order in which key interpretations are tried for
	// elements without subscripts. If empty, string keys are tried before
	// integer indices.
	KeyTypes []KeyType

	// Null is the sentinel reported when evaluation fails. If nil, the
	// default sentinel Nil is used.
	Null any

	// Sep is the element separator. If empty, "->" is used.
	Sep string
}

func (o *Options) keyTypes() []KeyType {
	if o == nil || len(o.KeyTypes) == 0 {
		return []KeyType{StringKey, IntKey}
	}
	return o.KeyTypes
}

func (o *Options) null() any {
	if o == nil || o.Null == nil {
		return Nil
	}
	return o.Null
}

func (o *Options) sep() string {
	if o == nil || o.Sep == "" {
		return "->"
	}
	return o.Sep
}

// withSep returns a copy of o with the separator replaced by sep.
func (o *Options) withSep(sep string) *Options {
	var out Options
	if o != nil {
		out = *o
	}
	out.Sep = sep
	return &out
}

// Eval evaluates path against tree and returns the value it addresses. An
// empty path addresses the tree itself. If any step of the evaluation fails,
// Eval returns the null sentinel (see Options); it does not panic or report
// an error for any input. Evaluation never modifies the tree.
func Eval(tree any, path string, opts *Options) any {
	v, err := Lookup(tree, path, opts)
	if err != nil {
		return opts.null()
	}
	return v
}

// EvalSlash is Eval with the separator fixed to "/", the XPath-like dialect.
// A separator in opts is ignored; all other settings apply as for Eval.
func EvalSlash(tree any, path string, opts *Options) any {
	return Eval(tree, path, opts.withSep("/"))
}

// Lookup is the diagnostic form of Eval: instead of collapsing failure to
// the null sentinel, it reports an error describing the first step of the
// path that failed to resolve.
func Lookup(tree any, path string, opts *Options) (any, error) {
	if path == "" {
		return tree, nil // terminal case: the path addresses the whole tree
	}
	keyTypes := opts.keyTypes()

	// cur is the evaluation cursor; ok reports whether any step has landed
	// yet. Until then the next resolution applies to the tree itself.
	var cur any
	var ok bool

	for _, elem := range Split(path, opts.sep()) {
		if elem.IsEmpty() {
			continue
		}

		if len(elem.Subs) > 0 {
			if elem.Root == "" {
				// A pure subscript chain: its first subscript applies to
				// the tree when no step has landed yet.
				if !ok {
					cur, ok = tree, true
				}
			} else {
				target := cur
				if !ok {
					target = tree
				}
				next, err := index(target, Key{Type: StringKey, Name: elem.Root})
				if err != nil {
					return nil, fmt.Errorf("element %q: %w", elem.Root, err)
				}
				cur, ok = next, true
			}
			for _, raw := range elem.Subs {
				next, err := index(cur, ParseKey(raw))
				if err != nil {
					return nil, fmt.Errorf("subscript [%s]: %w", raw, err)
				}
				cur = next
			}
			continue
		}

		// A pure name: try each key interpretation in priority order.
		target := cur
		if !ok {
			target = tree
		}
		next, err := resolveName(target, elem.Root, keyTypes)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", elem.Root, err)
		}
		cur, ok = next, true
	}
	if !ok {
		return nil, errors.New("path has no elements")
	}
	return cur, nil
}

// LookupSlash is Lookup with the separator fixed to "/", the XPath-like
// dialect. A separator in opts is ignored.
func LookupSlash(tree any, path string, opts *Options) (any, error) {
	return Lookup(tree, path, opts.withSep("/"))
}

// index subscripts v with the given typed key. Only maps and slices are
// subscriptable; a map accepts only string keys and a slice only integer
// indices in range.
func index(v any, key Key) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		if key.Type != StringKey {
			return nil, fmt.Errorf("key %v not found", key)
		}
		w, found := t[key.Name]
		if !found {
			return nil, fmt.Errorf("key %v not found", key)
		}
		return w, nil
	case []any:
		if key.Type != IntKey {
			return nil, fmt.Errorf("cannot index array with %v", key)
		}
		if key.Index < 0 || key.Index >= len(t) {
			return nil, fmt.Errorf("index %d out of range (0..%d)", key.Index, len(t))
		}
		return t[key.Index], nil
	default:
		return nil, fmt.Errorf("cannot subscript %T with %v", v, key)
	}
}

// resolveName resolves an element without subscripts by trying each key
// interpretation in order. The first interpretation whose conversion and
// indexing both succeed wins; if none succeeds, the whole evaluation fails.
// An indexing failure is reported in preference to a conversion failure.
func resolveName(v any, name string, keyTypes []KeyType) (any, error) {
	if !subscriptable(v) {
		return nil, fmt.Errorf("cannot subscript %T with %q", v, name)
	}
	var indexErr, convErr error
	for _, kt := range keyTypes {
		key, err := convertKey(kt, name)
		if err != nil {
			if convErr == nil {
				convErr = err
			}
			continue
		}
		next, err := index(v, key)
		if err != nil {
			if indexErr == nil {
				indexErr = err
			}
			continue
		}
		return next, nil
	}
	if indexErr != nil {
		return nil, indexErr
	}
	return nil, convErr
}

// convertKey converts name to the given key type. An unknown key type is a
// programming error in the caller's Options, and panics.
func convertKey(t KeyType, name string) (Key, error) {
	switch t {
	case StringKey:
		return Key{Type: StringKey, Name: name}, nil
	case IntKey:
		n, err := strconv.Atoi(name)
		if err != nil {
			return Key{}, fmt.Errorf("index %q: not an integer", name)
		}
		return Key{Type: IntKey, Index: n}, nil
	default:
		panic(fmt.Sprintf("invalid key type %d", t))
	}
}

func subscriptable(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}
