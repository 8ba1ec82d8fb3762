package tzprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

// Scenario 8 (spec §8): abbreviation synthesis cases.
func TestCreateAbbreviation(t *testing.T) {
	cases := []struct {
		name         string
		format       string
		deltaSeconds int32
		letter       *string
		want         string
	}{
		{"verbatim, no letter", "SAST", 0, nil, "SAST"},
		{"percent substitution with DST letter", "P%T", 3600, strPtr("D"), "PDT"},
		{"percent substitution with empty letter", "P%T", 0, strPtr(""), "PT"},
		{"bare percent, multi-char letter", "%", 3600, strPtr("CAT"), "CAT"},
		{"slash, standard half", "GMT/BST", 0, strPtr(""), "GMT"},
		{"slash, daylight half", "GMT/BST", 3600, strPtr(""), "BST"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := createAbbreviation(c.format, c.deltaSeconds, c.letter)
			assert.Equal(t, c.want, got)
		})
	}
}

// Same scenario set, but at the destination capacity of 6 the reference
// truncation example uses.
func TestCreateAbbreviationTruncatesAtGivenCapacity(t *testing.T) {
	got := createAbbreviationWithCapacity("P%T3456", 3600, strPtr("DD"), 5)
	assert.Equal(t, "PDDT3", got)
}

// A genuinely absent letter (nil, as opposed to a simple era's empty-string
// letter) falls back to copying FORMAT verbatim rather than substituting.
// Production code never passes nil for a '%' FORMAT — createTransitionForYear
// always supplies at least a pointer to the empty string — so this only
// exercises createAbbreviation's own defensive fallback.
func TestCreateAbbreviationNilLetterOnPercentFormatCopiesVerbatim(t *testing.T) {
	got := createAbbreviation("P%T", 3600, nil)
	assert.Equal(t, "P%T", got)
}
