package radalbum

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// filenameRunes maps characters that are unsafe or awkward in output filenames.
var filenameRunes = map[rune]rune{
	' ': '_',
	'!': '_',
	'ä': 'a',
	'ö': 'o',
	'ü': 'u',
	'Ä': 'A',
	'Ö': 'O',
	'Ü': 'U',
	'ß': 's',
	'é': 'e',
	'É': 'E',
	'ł': 'l',
}

var filenameMapper = runes.Map(func(r rune) rune {
	if n, ok := filenameRunes[r]; ok {
		return n
	}
	return r
})

// NormalizeFilename returns a filesystem and URL friendly version of a filename.
// Characters outside of the replacement table pass through unchanged, so two
// different inputs may normalize to the same name.
func NormalizeFilename(name string) string {
	out, _, err := transform.String(filenameMapper, name)
	if err != nil {
		return name
	}
	return out
}
