// Package transformer implements the colour template transform: it rewrites a
// template string containing brace-delimited style tokens into a plain string
// with ANSI escape sequences substituted in place.
//
// The template surface is defined as follows
//
// "{{" and "}}" are escapes for literal '{' and '}'
//
// "{NAME}" where NAME is in the style vocabulary emits the escape for that
// style. It does not reset afterwards
//
// "{BODY:NAME}" where NAME is in the style vocabulary emits a reset, the
// style escape, a literal "{BODY}" for the downstream formatter, and another
// reset. This renders the interpolated value in exactly the requested style
// regardless of any ambient styling
//
// Any other brace token ("{}", "{n:.0}", "{x:?}", unknown names) is passed
// through byte-identical, so a downstream formatting facility can consume it
//
// A '{' with nothing after it, an unclosed token, or a '}' outside a token
// that is not part of "}}" aborts the transform with an error
package transformer
