package text

import (
	"fmt"

	"github.com/go-text/typesetting/language"
)

// ParseScript parses a 4-letter ISO 15924 script tag such as "Latn" or
// "Arab". An empty tag returns language.Unknown.
func ParseScript(tag string) (language.Script, error) {
	if tag == "" {
		return language.Unknown, nil
	}
	s, err := language.ParseScript(tag)
	if err != nil {
		return language.Unknown, fmt.Errorf("text: invalid script tag %q: %w", tag, err)
	}
	return s, nil
}

// DetectScript returns the script of the first rune in runes that belongs
// to a concrete script. Spaces, digits and punctuation are skipped; text
// made only of those is reported as Latin.
func DetectScript(runes []rune) language.Script {
	for _, r := range runes {
		s := language.LookupScript(r)
		if s == language.Common || s == language.Inherited || s == language.Unknown {
			continue
		}
		return s
	}
	return language.Latin
}

// ResolveLanguage returns the language for tag, or the process default
// language when tag is empty.
func ResolveLanguage(tag string) language.Language {
	if tag == "" {
		return language.DefaultLanguage()
	}
	return language.NewLanguage(tag)
}
