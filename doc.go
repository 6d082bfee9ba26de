// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jlink evaluates link paths against JSON-like tree values.
//
// A link path is a compact description of a walk through a tree of maps,
// slices, and scalars, such as the values produced by unmarshaling JSON into
// an untyped interface. Elements of the path are separated by "->", and each
// element names a map key and/or carries one or more bracketed subscripts:
//
//	test->path[0]->to[1][2]
//	['test']['path'][0]["to"]
//
// Eval walks the tree along the path and returns the value it addresses. If
// any step of the walk fails — a missing key, an index out of range, or a
// subscript applied to a scalar — the whole evaluation yields the configured
// null sentinel instead:
//
//	v := jlink.Eval(tree, "test->path[0]->to", nil)
//	if v == jlink.Nil {
//	   log.Print("no such value")
//	}
//
// Eval never reports an error and never panics on its inputs. Lookup is the
// diagnostic form of the same walk, reporting an error that describes the
// first failing step instead of the sentinel. EvalSlash and LookupSlash fix
// the separator to "/" for an XPath-flavoured spelling of the same paths,
// with no other difference in behavior:
//
//	test/path[0]/to[1][2]
//
// # Grammar
//
//	path      = [element {SEP element}]
//	element   = [root] {subscript}
//	root      = NAME
//	subscript = "[" DIGITS "]"
//	          | "[" <"> KEYCHARS <"> "]"
//	          | "[" "'" KEYCHARS "'" "]"
//
//	NAME     = any text not forming a subscript run
//	DIGITS   = RE `\d+`
//	KEYCHARS = RE `[\w\s]*`
//
// SEP is "->" for the default dialect and "/" for the slash dialect. Empty
// elements, such as those produced by doubled, leading, or trailing
// separators, are skipped. Bracketed text that does not conform to the
// subscript grammar (for example the unquoted name in "x[path]") is not a
// subscript; the element is then a bare name including the brackets, which
// will ordinarily fail resolution.
//
// # Keys
//
// A subscript resolves to an integer index if its text parses as an integer,
// and otherwise to a string key with one pair of surrounding quotation marks
// removed. Thus [0] is always an index and ["0"] or ['0'] always a string
// key. Maps accept only string keys, and slices only integer indices.
//
// An element without subscripts is resolved by trying each interpretation in
// the configured key-type order, by default string key first and integer
// index second. The first interpretation that converts and indexes
// successfully wins; if none does, evaluation fails.
//
// # Failure
//
// Failure is total: a failed step anywhere in the path collapses the whole
// evaluation to the sentinel, never to a partial result. The sentinel itself
// is distinct from the untyped nil that encodes a JSON null, so a path that
// addresses a null in the tree yields nil, not the sentinel. The caller
// cannot tell a legitimate result from a failure only if the tree itself
// contains the sentinel value at the addressed location; this is an accepted
// limitation of the sentinel contract.
package jlink
