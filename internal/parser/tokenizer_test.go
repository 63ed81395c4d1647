package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestTokenize_SplitsPreambleAndValues(t *testing.T) {
	args := Tokenize(" 3 n/Alex Yeoh  p/123 t/friends t/work", PrefixName, PrefixPhone, PrefixTag)

	assert.Equal(t, "3", args.Preamble())
	assert.Equal(t, Field{Presence: Present, Raw: "Alex Yeoh"}, args.Field(PrefixName))
	if diff := cmp.Diff([]string{"friends", "work"}, args.All(PrefixTag)); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, args.Has(PrefixEmail))
	assert.Equal(t, Absent, args.Field(PrefixEmail).Presence)
}

func TestTokenize_PrefixNeedsLeadingWhitespace(t *testing.T) {
	args := Tokenize(" a/12 Main st/5 n/Bo", PrefixAddress, PrefixTag, PrefixName)
	assert.Equal(t, "12 Main st/5", args.Field(PrefixAddress).Raw)
	assert.False(t, args.Has(PrefixTag))
}

func TestTokenize_MultiByteTextBeforePrefix(t *testing.T) {
	tests := []struct {
		raw       string
		wantAddr  string
		wantPhone []string
	}{
		{" a/Voilàp/123", "Voilàp/123", nil},
		{" a/ÅÅp/123", "ÅÅp/123", nil},
		{" a/Rue Voilà\u00a0p/123", "Rue Voilà", []string{"123"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			args := Tokenize(tt.raw, PrefixAddress, PrefixPhone)
			assert.Equal(t, tt.wantAddr, args.Field(PrefixAddress).Raw)
			assert.Equal(t, tt.wantPhone, args.All(PrefixPhone))
		})
	}
}

func TestTokenize_LastOccurrenceWins(t *testing.T) {
	args := Tokenize(" p/111 p/222", PrefixPhone)
	assert.Equal(t, "222", args.Field(PrefixPhone).Raw)
	assert.Len(t, args.All(PrefixPhone), 2)
}

func TestTokenize_BlankValue(t *testing.T) {
	args := Tokenize(" p/ e/x@y.com", PrefixPhone, PrefixEmail)
	assert.Equal(t, Blank, args.Field(PrefixPhone).Presence)
	assert.Equal(t, Present, args.Field(PrefixEmail).Presence)
}

func TestTokenize_UnlistedPrefixStaysInValue(t *testing.T) {
	args := Tokenize(" n/Alex d/01-01-2024", PrefixName)
	assert.Equal(t, "Alex d/01-01-2024", args.Field(PrefixName).Raw)
}

func TestTokenize_NoPrefixes(t *testing.T) {
	args := Tokenize("  42  ")
	assert.Equal(t, "42", args.Preamble())
}

func TestArgMultimap_Put(t *testing.T) {
	args := NewArgMultimap(" 1 ").Put(PrefixTag, " a ").Put(PrefixTag, "b")
	assert.Equal(t, "1", args.Preamble())
	assert.Equal(t, []string{"a", "b"}, args.All(PrefixTag))
}
