// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize flattens raw article records into the canonical
// schema. Every field normalizer here accepts untyped input and degrades
// to an empty value on unexpected shapes; none of them fail.
package normalize

import (
	"regexp"
	"strings"
)

// maxDescriptionLen bounds joined list descriptions.
const maxDescriptionLen = 500

// shapeKind discriminates the JSON shapes a polymorphic field can take.
// Every normalizer matches on it with a fixed precedence instead of
// ad-hoc type inspection.
type shapeKind int

const (
	shapeAbsent shapeKind = iota
	shapeScalar
	shapeStructured
	shapeCollection
)

// shape is the tagged view of a raw field value. Exactly one of str, obj,
// list is meaningful, per kind.
type shape struct {
	kind shapeKind
	str  string
	obj  map[string]any
	list []any
}

// shapeOf classifies a raw value. Empty strings and empty lists classify
// as absent; numbers, booleans and other scalars are not meaningful for
// any field this package normalizes and classify as absent too.
func shapeOf(v any) shape {
	switch t := v.(type) {
	case string:
		if t == "" {
			return shape{kind: shapeAbsent}
		}
		return shape{kind: shapeScalar, str: t}
	case map[string]any:
		return shape{kind: shapeStructured, obj: t}
	case []any:
		if len(t) == 0 {
			return shape{kind: shapeAbsent}
		}
		return shape{kind: shapeCollection, list: t}
	}
	return shape{kind: shapeAbsent}
}

// authorNames extracts every resolvable display name from an author
// field: a plain name, a {name: …} record, or a list of either.
func authorNames(v any) []string {
	var names []string
	appendName := func(item any) {
		switch e := item.(type) {
		case string:
			if e != "" {
				names = append(names, e)
			}
		case map[string]any:
			if n, ok := e["name"].(string); ok && n != "" {
				names = append(names, n)
			}
		}
	}

	s := shapeOf(v)
	switch s.kind {
	case shapeScalar:
		appendName(s.str)
	case shapeStructured:
		appendName(s.obj)
	case shapeCollection:
		for _, item := range s.list {
			appendName(item)
		}
	}
	return names
}

// firstAuthor returns the first resolvable name, or "". The fallback
// source needs only one creator per article.
func firstAuthor(v any) string {
	names := authorNames(v)
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// description extracts a summary from a raw record: the `about` field
// when it is a string or a {description|name} record, else the
// `description` or `dek` field, which may also be a list of strings
// (joined and truncated). Unrecognized shapes yield "".
func description(fields map[string]any) string {
	switch s := shapeOf(fields["about"]); s.kind {
	case shapeScalar:
		return s.str
	case shapeStructured:
		return firstString(s.obj, "description", "name")
	}

	raw, ok := fields["description"]
	if !ok || shapeOf(raw).kind == shapeAbsent {
		raw = fields["dek"]
	}

	switch s := shapeOf(raw); s.kind {
	case shapeScalar:
		return s.str
	case shapeStructured:
		return firstString(s.obj, "description", "name")
	case shapeCollection:
		var joined string
		for _, item := range s.list {
			str, ok := item.(string)
			if !ok {
				continue
			}
			if joined != "" {
				joined += " "
			}
			joined += str
		}
		if r := []rune(joined); len(r) > maxDescriptionLen {
			joined = string(r[:maxDescriptionLen])
		}
		return joined
	}
	return ""
}

// imageURL extracts an image URL from a plain string, a {url|@id}
// record, or the first element of a list of either.
func imageURL(v any) string {
	fromRecord := func(m map[string]any) string {
		return firstString(m, "url", "@id")
	}

	switch s := shapeOf(v); s.kind {
	case shapeScalar:
		return s.str
	case shapeStructured:
		return fromRecord(s.obj)
	case shapeCollection:
		switch first := s.list[0].(type) {
		case string:
			return first
		case map[string]any:
			return fromRecord(first)
		}
	}
	return ""
}

// tagPattern matches HTML tags. Entities are not decoded; the feed
// serializer escapes text wholesale.
var tagPattern = regexp.MustCompile(`<[^>]+>`)

// stripHTML removes markup tags from a text value.
func stripHTML(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}

// firstString returns the first non-empty string among the named keys.
func firstString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
