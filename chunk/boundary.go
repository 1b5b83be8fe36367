package chunk

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isSentenceEnd checks if position i in text terminates a sentence: one of
// '.', '!', '?' followed by whitespace or end of text. Periods that close a
// common abbreviation are excluded. Decimal points never qualify because a
// digit, not whitespace, follows them.
func isSentenceEnd(text string, i int) bool {
	c := text[i]
	if c != '.' && c != '!' && c != '?' {
		return false
	}

	if i+1 < len(text) && !isSpaceByte(text[i+1]) {
		return false
	}

	if c == '.' && isAbbreviation(text, i) {
		return false
	}

	return true
}

// isSpaceByte checks for ASCII whitespace. Multi-byte space code points are
// not treated as sentence separators; extraction sources normalize text
// before chunking.
func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// abbreviations lists common abbreviation endings whose trailing period does
// not end a sentence. Matched as suffixes so multi-dot forms like "e.g."
// work.
var abbreviations = []string{
	"mr.", "mrs.", "ms.", "dr.", "prof.",
	"sr.", "jr.", "vs.", "etc.", "e.g.", "i.e.",
	"inc.", "ltd.", "co.", "corp.",
	"jan.", "feb.", "mar.", "apr.", "jun.", "jul.", "aug.", "sep.", "oct.", "nov.", "dec.",
	"st.", "rd.", "ave.", "blvd.",
	"no.", "vol.", "pp.", "pg.",
}

// isAbbreviation checks if the period at position i closes a known
// abbreviation.
func isAbbreviation(text string, i int) bool {
	head := strings.ToLower(text[:i+1])
	for _, abbr := range abbreviations {
		if !strings.HasSuffix(head, abbr) {
			continue
		}
		// The abbreviation must start a word, not end a longer one
		// ("blvd." must not match inside "boulevd.").
		start := len(head) - len(abbr)
		if start == 0 {
			return true
		}
		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		if !unicode.IsLetter(prev) {
			return true
		}
	}
	return false
}

// lastSentenceEndIn returns the end offset (exclusive, just past the
// terminator) of the rightmost sentence end in (min, max], or -1 when the
// window contains none. Offsets strictly beyond min avoid emitting empty
// chunks.
func lastSentenceEndIn(text string, min, max int) int {
	for i := max - 1; i >= min; i-- {
		if isSentenceEnd(text, i) {
			return i + 1
		}
	}
	return -1
}

// nextSentenceEndFrom returns the end offset of the first sentence end at or
// after pos, or len(text) when the text runs out first.
func nextSentenceEndFrom(text string, pos int) int {
	for i := pos; i < len(text); i++ {
		if isSentenceEnd(text, i) {
			return i + 1
		}
	}
	return len(text)
}

// boundaryBefore returns the largest rune-start offset at or before i, so a
// slice ending there never splits a multi-byte code point.
func boundaryBefore(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

// boundaryAfter returns the smallest rune-start offset at or after i.
func boundaryAfter(s string, i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(s) {
		return len(s)
	}
	for i < len(s) && !utf8.RuneStart(s[i]) {
		i++
	}
	return i
}
