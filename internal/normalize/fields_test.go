// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"reflect"
	"strings"
	"testing"
)

func TestShapeOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want shapeKind
	}{
		{"nil", nil, shapeAbsent},
		{"empty string", "", shapeAbsent},
		{"empty list", []any{}, shapeAbsent},
		{"number", 42.0, shapeAbsent},
		{"bool", true, shapeAbsent},
		{"string", "x", shapeScalar},
		{"object", map[string]any{"a": 1}, shapeStructured},
		{"list", []any{"a"}, shapeCollection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shapeOf(tt.in).kind; got != tt.want {
				t.Errorf("shapeOf(%v).kind = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAuthorNames(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"absent", nil, nil},
		{"plain string", "Jane Goodall", []string{"Jane Goodall"}},
		{"record", map[string]any{"name": "Carl Sagan"}, []string{"Carl Sagan"}},
		{"record without name", map[string]any{"id": "x"}, nil},
		{"list of records", []any{
			map[string]any{"name": "A"},
			map[string]any{"name": ""},
			map[string]any{"name": "B"},
		}, []string{"A", "B"}},
		{"mixed list", []any{"A", map[string]any{"name": "B"}, 7.0}, []string{"A", "B"}},
		{"unrecognized", 3.14, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := authorNames(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("authorNames(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFirstAuthor(t *testing.T) {
	if got := firstAuthor([]any{map[string]any{"name": "A"}, "B"}); got != "A" {
		t.Errorf("firstAuthor = %q, want %q", got, "A")
	}
	if got := firstAuthor(nil); got != "" {
		t.Errorf("firstAuthor(nil) = %q, want empty", got)
	}
}

func TestDescription(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]any
		want   string
	}{
		{"about string", map[string]any{"about": "short take"}, "short take"},
		{"about record description", map[string]any{"about": map[string]any{"description": "d", "name": "n"}}, "d"},
		{"about record name only", map[string]any{"about": map[string]any{"name": "n"}}, "n"},
		{"description string", map[string]any{"description": "plain"}, "plain"},
		{"dek fallback", map[string]any{"dek": "the dek"}, "the dek"},
		{"description record", map[string]any{"description": map[string]any{"name": "rec"}}, "rec"},
		{"list joined", map[string]any{"description": []any{"one", "two", 3.0, "three"}}, "one two three"},
		{"unrecognized", map[string]any{"description": 12.0}, ""},
		{"absent", map[string]any{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := description(tt.fields); got != tt.want {
				t.Errorf("description() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescriptionTruncatesJoinedLists(t *testing.T) {
	long := strings.Repeat("abcde ", 200)
	got := description(map[string]any{"description": []any{long, long}})
	if len([]rune(got)) != maxDescriptionLen {
		t.Errorf("len = %d, want %d", len([]rune(got)), maxDescriptionLen)
	}
}

func TestImageURL(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"absent", nil, ""},
		{"plain URL", "https://img.example.org/a.jpg", "https://img.example.org/a.jpg"},
		{"record url", map[string]any{"url": "https://img/a.jpg"}, "https://img/a.jpg"},
		{"record @id", map[string]any{"@id": "https://img/b.jpg"}, "https://img/b.jpg"},
		{"list of strings", []any{"https://img/1.jpg", "https://img/2.jpg"}, "https://img/1.jpg"},
		{"list of records", []any{map[string]any{"url": "https://img/3.jpg"}}, "https://img/3.jpg"},
		{"list with junk first", []any{42.0, "https://img/4.jpg"}, ""},
		{"unrecognized", 9.0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := imageURL(tt.in); got != tt.want {
				t.Errorf("imageURL(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"<p>wrapped</p>", "wrapped"},
		{` <em>spaced</em> `, "spaced"},
		{`<a href="/x">link text</a> tail`, "link text tail"},
		// Entities are passed through, not decoded.
		{"salt &amp; pepper", "salt &amp; pepper"},
	}
	for _, tt := range tests {
		if got := stripHTML(tt.in); got != tt.want {
			t.Errorf("stripHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
