package ansi

import (
	"sort"
	"strings"
	"testing"
)

// spot checks for the exact bytes of representative and quirky entries
var lookupTests = []struct {
	name string
	want string
}{
	{"black", "\x1b[0;34;30m"},
	{"red", "\x1b[0;34;31m"},
	{"default", "\x1b[0;34;39m"},
	{"bold_red", "\x1b[1;34;31m"},
	{"bold_default", "\x1b[1;34;39m"},
	{"on_red", "\x1b[0;34;41m"},
	{"on_default", "\x1b[0;34;49m"},
	{"on_red_bold", "\x1b[1;34;41m"},
	{"on_magenta", "\x1b[0;44;35m"},
	{"on_magenta_bold", "\x1b[1;44;35m"},
	{"reset", "\x1b[0m"},
	{"dim", "\x1b[2m"},
	{"italic", "\x1b[3m"},
	{"underline", "\x1b[24m"},
	{"blinking", "\x1b[5m"},
	{"hide", "\x1b[8m"},
	{"strike", "\x1b[9m"},
	{"bold", "\x1b[1m"},
}

func TestLookup(t *testing.T) {
	for _, tt := range lookupTests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.name)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.name)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %#v, want %#v", tt.name, got, tt.want)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, name := range []string{"", "Red", "RED", "orange", "on_orange", "bold_", "reset "} {
		if got, ok := Lookup(name); ok {
			t.Errorf("Lookup(%q) = %#v, want not found", name, got)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()

	// 9 colours in 4 variants plus 8 standalone styles
	if len(names) != 44 {
		t.Errorf("Names() returned %d names, want 44", len(names))
	}

	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() = %#v, want sorted", names)
	}

	for _, name := range names {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Names() contains %q but Lookup misses it", name)
		}
	}
}

func TestVocabularyIsACopy(t *testing.T) {
	vocab := Vocabulary()
	vocab["red"] = "clobbered"

	if got, _ := Lookup("red"); got != "\x1b[0;34;31m" {
		t.Errorf("Lookup(\"red\") = %#v after mutating a Vocabulary copy", got)
	}
}

func TestFixedVocabulary(t *testing.T) {
	fixed := FixedVocabulary()

	if got := fixed["underline"]; got != FixedUnderline {
		t.Errorf("FixedVocabulary()[\"underline\"] = %#v, want %#v", got, FixedUnderline)
	}

	// only underline differs from the default table
	for name, code := range Vocabulary() {
		if name == "underline" {
			continue
		}
		if fixed[name] != code {
			t.Errorf("FixedVocabulary()[%q] = %#v, want %#v", name, fixed[name], code)
		}
	}

	if got, _ := Lookup("underline"); got != "\x1b[24m" {
		t.Errorf("Lookup(\"underline\") = %#v, default table must keep the historical bytes", got)
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain",
			in:   "nothing here",
			want: "nothing here",
		},
		{
			name: "single colour",
			in:   "\x1b[0;34;31mred\x1b[0m",
			want: "red",
		},
		{
			name: "styles only",
			in:   "\x1b[1m\x1b[9m\x1b[0m",
			want: "",
		},
		{
			name: "pass-through braces survive",
			in:   "\x1b[0m\x1b[0;34;32m{b}\x1b[0m",
			want: "{b}",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.in); got != tt.want {
				t.Errorf("Strip() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

// every vocabulary entry must vanish entirely under Strip
func TestStripWholeVocabulary(t *testing.T) {
	var all strings.Builder
	for _, name := range Names() {
		code, _ := Lookup(name)
		all.WriteString(code)
	}

	if got := Strip(all.String()); got != "" {
		t.Errorf("Strip() = %#v, want empty", got)
	}
}
