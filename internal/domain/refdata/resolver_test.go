package refdata

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeResolvesKnownAliases(t *testing.T) {
	cases := map[string]string{
		"bombay":    "Mumbai",
		"BOMBAY":    "Mumbai",
		"  bombay ": "Mumbai",
		"banglore":  "Bangalore",
		"bengaluru": "Bangalore",
		"calcutta":  "Kolkata",
		"madras":    "Chennai",
		"new delhi": "Delhi",
		"poona":     "Pune",
		"benares":   "Varanasi",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, Normalize(input), "input %q", input)
	}
}

func TestNormalizeTitleCasesUnknownNames(t *testing.T) {
	assert.Equal(t, "Rampur", Normalize("rampur"))
	assert.Equal(t, "Rampur", Normalize("  RAMPUR  "))
	assert.Equal(t, "Nava Raipur", Normalize("nava raipur"))
}

func TestNormalizePreservesMultiByteNames(t *testing.T) {
	// Devanagari has no letter case; the name must survive untouched.
	devanagari := "दिल्ली"
	got := Normalize(devanagari)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, devanagari, got)
	assert.NotContains(t, got, "�")

	// Cased multi-byte first letters upper-case as a whole rune.
	assert.Equal(t, "Ürümqi Nagar", Normalize("ürümqi nagar"))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	first := Normalize("some unknown town")
	assert.Equal(t, first, Normalize(first))
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   "))
}

func TestStateFor(t *testing.T) {
	assert.Equal(t, "Maharashtra", StateFor("Mumbai"))
	assert.Equal(t, "Tamil Nadu", StateFor("Chennai"))
	assert.Equal(t, "India", StateFor("Rampur"))
}
