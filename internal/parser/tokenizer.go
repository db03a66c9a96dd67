package parser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"go-hr-manager/pkg/apperror"
)

// Prefix marks the start of an argument value, e.g. "n/" in "n/Amy".
type Prefix string

const (
	PrefixName      Prefix = "n/"
	PrefixPhone     Prefix = "p/"
	PrefixEmail     Prefix = "e/"
	PrefixAddress   Prefix = "a/"
	PrefixTag       Prefix = "tag/"
	PrefixRemark    Prefix = "r/"
	PrefixPosition  Prefix = "pos/"
	PrefixCandidate Prefix = "c/"
	PrefixDate      Prefix = "d/"
	PrefixTime      Prefix = "t/"
	PrefixDuration  Prefix = "dur/"
	PrefixStatus    Prefix = "s/"
)

// ArgumentMultimap holds the values captured for each prefix, in input order,
// plus the preamble text that came before the first prefix.
type ArgumentMultimap struct {
	values   map[Prefix][]string
	preamble string
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args on the given prefixes. A prefix only counts when it
// follows whitespace, so "pos/" is never read as "s/".
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	text := " " + args
	var found []prefixPosition
	for _, prefix := range prefixes {
		for from := 1; ; {
			idx := strings.Index(text[from:], string(prefix))
			if idx < 0 {
				break
			}
			start := from + idx
			if r, _ := utf8.DecodeLastRuneInString(text[:start]); unicode.IsSpace(r) {
				found = append(found, prefixPosition{prefix: prefix, start: start})
			}
			from = start + 1
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].start < found[j].start })

	am := ArgumentMultimap{values: make(map[Prefix][]string)}
	end := len(text)
	if len(found) > 0 {
		end = found[0].start
	}
	am.preamble = strings.TrimSpace(text[:end])

	for i, pp := range found {
		valueEnd := len(text)
		if i+1 < len(found) {
			valueEnd = found[i+1].start
		}
		value := strings.TrimSpace(text[pp.start+len(pp.prefix) : valueEnd])
		am.values[pp.prefix] = append(am.values[pp.prefix], value)
	}
	return am
}

// Preamble returns the text before the first prefix.
func (am ArgumentMultimap) Preamble() string {
	return am.preamble
}

// Value returns the last value captured for prefix.
func (am ArgumentMultimap) Value(prefix Prefix) (string, bool) {
	vs := am.values[prefix]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// All returns every value captured for prefix.
func (am ArgumentMultimap) All(prefix Prefix) []string {
	return append([]string(nil), am.values[prefix]...)
}

// Has reports whether prefix appeared at least once.
func (am ArgumentMultimap) Has(prefix Prefix) bool {
	return len(am.values[prefix]) > 0
}

// ArePresent reports whether every prefix appeared at least once.
func (am ArgumentMultimap) ArePresent(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if !am.Has(p) {
			return false
		}
	}
	return true
}

// VerifyNoDuplicates fails when any of the single-valued prefixes appeared
// more than once.
func (am ArgumentMultimap) VerifyNoDuplicates(prefixes ...Prefix) error {
	var dup []string
	for _, p := range prefixes {
		if len(am.values[p]) > 1 {
			dup = append(dup, string(p))
		}
	}
	if len(dup) == 0 {
		return nil
	}
	return apperror.Parse(MessageDuplicateFields + strings.Join(dup, " "))
}
