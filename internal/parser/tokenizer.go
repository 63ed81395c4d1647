package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix marks the start of an argument value, such as "n/".
type Prefix string

// Recognised prefixes.
const (
	PrefixScope       Prefix = "in/"
	PrefixName        Prefix = "n/"
	PrefixPhone       Prefix = "p/"
	PrefixEmail       Prefix = "e/"
	PrefixAddress     Prefix = "a/"
	PrefixTag         Prefix = "t/"
	PrefixDate        Prefix = "d/"
	PrefixDescription Prefix = "x/"
	PrefixContact     Prefix = "c/"
)

// AllPrefixes lists every recognised prefix.
var AllPrefixes = []Prefix{
	PrefixScope, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress,
	PrefixTag, PrefixDate, PrefixDescription, PrefixContact,
}

// ArgMultimap maps each prefix to the values that followed it, in the
// order they appeared. Text before the first prefix is the preamble.
type ArgMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// NewArgMultimap returns an empty map with the given preamble.
func NewArgMultimap(preamble string) ArgMultimap {
	return ArgMultimap{preamble: strings.TrimSpace(preamble), values: map[Prefix][]string{}}
}

// Put appends a value for p.
func (a ArgMultimap) Put(p Prefix, value string) ArgMultimap {
	a.values[p] = append(a.values[p], strings.TrimSpace(value))
	return a
}

func (a ArgMultimap) Preamble() string { return a.preamble }

// All returns every value given for p.
func (a ArgMultimap) All(p Prefix) []string { return a.values[p] }

// Field returns the last value given for p. Repeating a prefix that only
// takes one value is not an error: the last occurrence wins.
func (a ArgMultimap) Field(p Prefix) Field {
	vs := a.values[p]
	if len(vs) == 0 {
		return Field{}
	}
	return Supplied(vs[len(vs)-1])
}

// Has reports whether p occurred at all.
func (a ArgMultimap) Has(p Prefix) bool { return len(a.values[p]) > 0 }

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args on the given prefixes. A prefix only counts at the
// start of args or right after whitespace, so "a/12 Main st/5" yields one
// address value.
func Tokenize(args string, prefixes ...Prefix) ArgMultimap {
	positions := findPrefixPositions(args, prefixes)
	if len(positions) == 0 {
		return NewArgMultimap(args)
	}

	out := NewArgMultimap(args[:positions[0].start])
	for i, pos := range positions {
		end := len(args)
		if i+1 < len(positions) {
			end = positions[i+1].start
		}
		out.Put(pos.prefix, args[pos.start+len(pos.prefix):end])
	}
	return out
}

func findPrefixPositions(args string, prefixes []Prefix) []prefixPosition {
	var positions []prefixPosition
	for i := 0; i < len(args); i++ {
		if i > 0 {
			if prev, _ := utf8.DecodeLastRuneInString(args[:i]); !unicode.IsSpace(prev) {
				continue
			}
		}
		for _, p := range prefixes {
			if strings.HasPrefix(args[i:], string(p)) {
				positions = append(positions, prefixPosition{prefix: p, start: i})
				break
			}
		}
	}
	return positions
}
