package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugRepeat  = regexp.MustCompile(`-+`)
)

// GenerateSlug turns a display name into a URL-safe slug.
// "Contrôle d'accès" → "controle-d-acces"
func GenerateSlug(input string) string {
	ascii := RemoveDiacritics(input)
	lower := strings.ToLower(ascii)

	// Apostrophes and spaces both become separators
	lower = strings.ReplaceAll(lower, "'", "-")
	lower = strings.ReplaceAll(lower, "’", "-")
	hyphenated := strings.ReplaceAll(lower, " ", "-")

	cleaned := slugInvalid.ReplaceAllString(hyphenated, "")
	normalized := slugRepeat.ReplaceAllString(cleaned, "-")

	return strings.Trim(normalized, "-")
}

// RemoveDiacritics folds accented characters to their ASCII base.
// Covers the French repertoire (é, è, ê, ë, à, â, î, ï, ô, ù, û, ü, ç, œ, æ).
func RemoveDiacritics(input string) string {
	mappings := map[rune]string{
		'á': "a", 'à': "a", 'â': "a", 'ä': "a", 'ã': "a",
		'é': "e", 'è': "e", 'ê': "e", 'ë': "e",
		'í': "i", 'ì': "i", 'î': "i", 'ï': "i",
		'ó': "o", 'ò': "o", 'ô': "o", 'ö': "o", 'õ': "o",
		'ú': "u", 'ù': "u", 'û': "u", 'ü': "u",
		'ý': "y", 'ÿ': "y",
		'ç': "c", 'ñ': "n",
		'œ': "oe", 'æ': "ae",

		'Á': "A", 'À': "A", 'Â': "A", 'Ä': "A", 'Ã': "A",
		'É': "E", 'È': "E", 'Ê': "E", 'Ë': "E",
		'Í': "I", 'Ì': "I", 'Î': "I", 'Ï': "I",
		'Ó': "O", 'Ò': "O", 'Ô': "O", 'Ö': "O", 'Õ': "O",
		'Ú': "U", 'Ù': "U", 'Û': "U", 'Ü': "U",
		'Ý': "Y",
		'Ç': "C", 'Ñ': "N",
		'Œ': "OE", 'Æ': "AE",
	}

	var b strings.Builder
	b.Grow(len(input))

	for _, r := range input {
		if replacement, ok := mappings[r]; ok {
			b.WriteString(replacement)
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}
