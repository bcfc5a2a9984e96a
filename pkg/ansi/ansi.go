// Package ansi holds the style vocabulary: the closed mapping from ASCII style
// names to the exact ANSI SGR escape strings emitted for them.
//
// The byte values in this table are load-bearing. In particular:
//
//   - Nearly every colour escape carries a second parameter of 34. As an SGR
//     parameter in that position it does nothing useful, but existing users
//     depend on the exact bytes, so it stays.
//   - on_magenta and on_magenta_bold transpose the usual field order
//     (44;35 rather than 34;45). Also kept as-is.
//   - underline maps to ESC[24m, which standard terminals treat as
//     "underline off". Callers who want a working underline can build a
//     transformer from FixedVocabulary instead.
package ansi

import (
	"regexp"
	"sort"
)

// Reset is the escape emitted on its own around value-with-style tokens
const Reset = "\x1b[0m"

// FixedUnderline is the standards-correct underline escape used by FixedVocabulary
const FixedUnderline = "\x1b[4m"

var codes = map[string]string{
	"black":   "\x1b[0;34;30m",
	"red":     "\x1b[0;34;31m",
	"green":   "\x1b[0;34;32m",
	"yellow":  "\x1b[0;34;33m",
	"blue":    "\x1b[0;34;34m",
	"magenta": "\x1b[0;34;35m",
	"cyan":    "\x1b[0;34;36m",
	"white":   "\x1b[0;34;37m",
	"default": "\x1b[0;34;39m",

	"bold_black":   "\x1b[1;34;30m",
	"bold_red":     "\x1b[1;34;31m",
	"bold_green":   "\x1b[1;34;32m",
	"bold_yellow":  "\x1b[1;34;33m",
	"bold_blue":    "\x1b[1;34;34m",
	"bold_magenta": "\x1b[1;34;35m",
	"bold_cyan":    "\x1b[1;34;36m",
	"bold_white":   "\x1b[1;34;37m",
	"bold_default": "\x1b[1;34;39m",

	"on_black":   "\x1b[0;34;40m",
	"on_red":     "\x1b[0;34;41m",
	"on_green":   "\x1b[0;34;42m",
	"on_yellow":  "\x1b[0;34;43m",
	"on_blue":    "\x1b[0;34;44m",
	"on_magenta": "\x1b[0;44;35m", // transposed, see package doc
	"on_cyan":    "\x1b[0;34;46m",
	"on_white":   "\x1b[0;34;47m",
	"on_default": "\x1b[0;34;49m",

	"on_black_bold":   "\x1b[1;34;40m",
	"on_red_bold":     "\x1b[1;34;41m",
	"on_green_bold":   "\x1b[1;34;42m",
	"on_yellow_bold":  "\x1b[1;34;43m",
	"on_blue_bold":    "\x1b[1;34;44m",
	"on_magenta_bold": "\x1b[1;44;35m", // transposed, see package doc
	"on_cyan_bold":    "\x1b[1;34;46m",
	"on_white_bold":   "\x1b[1;34;47m",
	"on_default_bold": "\x1b[1;34;49m",

	"reset":     Reset,
	"dim":       "\x1b[2m",
	"italic":    "\x1b[3m",
	"underline": "\x1b[24m", // underline *off* on real terminals, see package doc
	"blinking":  "\x1b[5m",
	"hide":      "\x1b[8m",
	"strike":    "\x1b[9m",
	"bold":      "\x1b[1m",
}

// Lookup resolves a style name to its escape string. Matching is exact and
// case-sensitive; unknown names return ("", false)
func Lookup(name string) (string, bool) {
	code, ok := codes[name]
	return code, ok
}

// Names returns the vocabulary's names, sorted
func Names() []string {
	out := make([]string, 0, len(codes))
	for name := range codes {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}

// Vocabulary returns a copy of the name to escape table, for callers that want
// to derive their own
func Vocabulary() map[string]string {
	out := make(map[string]string, len(codes))
	for name, code := range codes {
		out[name] = code
	}

	return out
}

// FixedVocabulary is Vocabulary with underline corrected to the escape that
// actually underlines. Opt-in; the default table keeps the historical bytes
func FixedVocabulary() map[string]string {
	out := Vocabulary()
	out["underline"] = FixedUnderline

	return out
}

var sgrRe = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Strip removes all SGR escape sequences from a rendered string
func Strip(s string) string {
	return sgrRe.ReplaceAllString(s, "")
}
