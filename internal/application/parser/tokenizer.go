package parser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// prefixHit records one occurrence of a recognized prefix in the input.
type prefixHit struct {
	prefix Prefix
	pos    int // byte offset of the prefix token
}

// Tokenize splits an argument string into a preamble and a multimap from
// recognized prefixes to their raw values.
//
// A prefix only counts when it is immediately preceded by whitespace or the
// start of the string; anything merely resembling a prefix elsewhere is
// literal text. The preamble is everything before the first recognized
// prefix, trimmed. Each value runs from the end of its prefix token up to the
// next recognized prefix (or end of string) and is kept raw - trimming is the
// validators' job. Duplicate occurrences are all retained in input order;
// duplicate detection is a downstream concern.
func Tokenize(args string, prefixes ...Prefix) *ArgumentMultimap {
	hits := make([]prefixHit, 0)
	for _, p := range prefixes {
		hits = append(hits, findPrefixHits(args, p)...)
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	mm := newArgumentMultimap()
	if len(hits) == 0 {
		mm.preamble = strings.TrimSpace(args)
		return mm
	}

	mm.preamble = strings.TrimSpace(args[:hits[0].pos])
	for i, hit := range hits {
		valueStart := hit.pos + len(hit.prefix)
		valueEnd := len(args)
		if i+1 < len(hits) {
			valueEnd = hits[i+1].pos
		}
		mm.put(hit.prefix, args[valueStart:valueEnd])
	}
	return mm
}

// findPrefixHits locates every occurrence of prefix preceded by whitespace
// or string start.
func findPrefixHits(args string, prefix Prefix) []prefixHit {
	hits := make([]prefixHit, 0)
	token := string(prefix)
	for from := 0; ; {
		idx := strings.Index(args[from:], token)
		if idx < 0 {
			break
		}
		pos := from + idx
		if pos == 0 || precededByWhitespace(args, pos) {
			hits = append(hits, prefixHit{prefix: prefix, pos: pos})
		}
		from = pos + len(token)
	}
	return hits
}

// precededByWhitespace reports whether the rune ending at pos is whitespace.
// The full rune is decoded so a trailing byte of a multi-byte character is
// never mistaken for a space.
func precededByWhitespace(s string, pos int) bool {
	r, _ := utf8.DecodeLastRuneInString(s[:pos])
	return unicode.IsSpace(r)
}
