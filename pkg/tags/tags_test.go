package tags

import (
	"sort"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		kind      string
		wantOpen  string
		wantClose string
	}{
		{"paragraph", "<p>", "</p>"},
		{"hyperlink", "<a>", "</a>"},
		{"bold", "<b>", "</b>"},
		{"break", "<br>", ""},
		{"image", "<img>", ""},
		{"comment", "<!--", "-->"},
		{"doctype", "<!DOCTYPE html>", ""},
		{"wordbreak", "<wbr>", "</wbr>"},
		{"audio", "<audio>", ""},
		{"tabledatacell", "<td>", "</td>"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			def, ok := Lookup(tt.kind)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.kind)
			}
			if def.Open != tt.wantOpen {
				t.Errorf("Open = %q, want %q", def.Open, tt.wantOpen)
			}
			if def.Close != tt.wantClose {
				t.Errorf("Close = %q, want %q", def.Close, tt.wantClose)
			}
			if def.IsVoid() != (tt.wantClose == "") {
				t.Errorf("IsVoid = %v, want %v", def.IsVoid(), tt.wantClose == "")
			}
		})
	}
}

func TestDocVerbatim(t *testing.T) {
	tests := map[string]string{
		"emphasis":  "Defines emphasized text ",
		"direction": "Isolates a part of text that might be formatted in a" + strings.Repeat(" ", 19) + "different direction from other text outside it",
		"paragraph": "Defines a paragraph",
	}
	for kind, want := range tests {
		def, _ := Lookup(kind)
		if def.Doc != want {
			t.Errorf("Lookup(%q).Doc = %q, want %q", kind, def.Doc, want)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, kind := range []string{"", "p", "Paragraph", "blink", "heading7"} {
		if _, ok := Lookup(kind); ok {
			t.Errorf("Lookup(%q) should not be found", kind)
		}
		if Has(kind) {
			t.Errorf("Has(%q) = true, want false", kind)
		}
	}
}

func TestRegistryShape(t *testing.T) {
	if Len() != 111 {
		t.Errorf("Len() = %d, want 111", Len())
	}

	for _, kind := range Kinds() {
		def, _ := Lookup(kind)
		if def.Doc == "" {
			t.Errorf("%s: empty Doc", kind)
		}
		if kind == "comment" {
			continue
		}
		if strings.Count(def.Open, ">") != 1 {
			t.Errorf("%s: open tag %q should contain exactly one '>'", kind, def.Open)
		}
		if !strings.HasPrefix(def.Open, "<") {
			t.Errorf("%s: open tag %q should start with '<'", kind, def.Open)
		}
	}
}

func TestKindsSorted(t *testing.T) {
	kinds := Kinds()
	if !sort.StringsAreSorted(kinds) {
		t.Error("Kinds() should be sorted")
	}
	if len(kinds) != Len() {
		t.Errorf("len(Kinds()) = %d, want %d", len(kinds), Len())
	}

	// Callers get their own slice.
	kinds[0] = "mutated"
	if Kinds()[0] == "mutated" {
		t.Error("Kinds() should return a fresh slice")
	}
}

func TestVoidKinds(t *testing.T) {
	want := []string{
		"area", "audio", "base", "break", "column", "doctype", "embed",
		"horizontalruler", "image", "input", "keygen", "link", "meta",
		"parameter", "source", "track",
	}
	got := VoidKinds()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("VoidKinds() = %v, want %v", got, want)
	}
}

func TestKindForTag(t *testing.T) {
	tests := []struct {
		tag    string
		want   string
		wantOK bool
	}{
		{"p", "paragraph", true},
		{"A", "hyperlink", true},
		{"br", "break", true},
		{"td", "tabledatacell", true},
		{"!doctype html", "doctype", true},
		{"blink", "", false},
	}
	for _, tt := range tests {
		got, ok := KindForTag(tt.tag)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("KindForTag(%q) = %q, %v; want %q, %v", tt.tag, got, ok, tt.want, tt.wantOK)
		}
	}
}
