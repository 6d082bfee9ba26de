// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlink

import (
	"regexp"
	"strings"
)

// An Element is one unit of a link path between separators, comprising an
// optional root name and zero or more raw subscripts in their textual order.
// An Element with neither root nor subscripts is empty; the evaluator skips
// empty elements, so doubled, leading, and trailing separators are harmless.
type Element struct {
	Root string   // the bare name before the subscripts, "" if none
	Subs []string // raw bracket interiors, left to right
}

// IsEmpty reports whether e has neither a root nor any subscripts.
func (e Element) IsEmpty() bool { return e.Root == "" && len(e.Subs) == 0 }

// Grammar rules for a single subscript group: an unquoted group must be all
// digits, a quoted group may contain word and whitespace characters and may
// be empty. Anything else in brackets is not a subscript.
const (
	indexGroup  = `\[\d+\]`
	dquoteGroup = `\["[\w\s]*"\]`
	squoteGroup = `\['[\w\s]*'\]`
)

var (
	// subRunRE matches a contiguous run of valid subscript groups.
	subRunRE = regexp.MustCompile(`(?:` + indexGroup + `|` + dquoteGroup + `|` + squoteGroup + `)+`)

	// bracketRE splits a subscript run into its bracket interiors.
	bracketRE = regexp.MustCompile(`[\[\]]`)
)

// Split tokenizes path into elements on the given separator. The separator
// is a literal substring, not a pattern, and empty segments are preserved as
// empty elements.
func Split(path, sep string) []Element {
	segs := strings.Split(path, sep)
	elems := make([]Element, len(segs))
	for i, seg := range segs {
		elems[i] = parseElement(seg)
	}
	return elems
}

// parseElement recognizes the subscript run of a segment, if any, and
// separates it from the root name. A segment whose bracketed text does not
// conform to the subscript grammar has no run, and the whole segment is the
// root.
func parseElement(seg string) Element {
	if seg == "" {
		return Element{}
	}
	run := subRunRE.FindString(seg)
	if run == "" {
		return Element{Root: seg}
	}
	var subs []string
	for _, s := range bracketRE.Split(run, -1) {
		if s != "" {
			subs = append(subs, s)
		}
	}
	return Element{
		Root: subRunRE.ReplaceAllString(seg, ""),
		Subs: subs,
	}
}
