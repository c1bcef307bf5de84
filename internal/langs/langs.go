// Package langs maps the supported ISO-639-1 language codes to the
// human-readable names substituted into instruction templates.
package langs

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Code is an upper-case ISO-639-1 language code from the supported set.
type Code string

const (
	Arabic   Code = "AR"
	German   Code = "DE"
	Spanish  Code = "ES"
	English  Code = "EN"
	French   Code = "FR"
	Italian  Code = "IT"
	Japanese Code = "JA"
	Russian  Code = "RU"
	Chinese  Code = "ZH"
)

var supported = []Code{Arabic, German, Spanish, English, French, Italian, Japanese, Russian, Chinese}

// Supported returns the fixed set of codes the pipeline accepts.
func Supported() []Code {
	out := make([]Code, len(supported))
	copy(out, supported)
	return out
}

// Parse normalizes raw into a supported Code. It is case-insensitive and
// rejects anything outside the fixed 9-code set.
func Parse(raw string) (Code, error) {
	code := Code(strings.ToUpper(strings.TrimSpace(raw)))
	for _, c := range supported {
		if c == code {
			return c, nil
		}
	}
	return "", fmt.Errorf("unsupported language code %q", raw)
}

// IsSupported reports whether raw names a supported code.
func IsSupported(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// Name returns the English display name for the code ("FR" -> "French").
// Codes outside the supported set fall back to "English", mirroring the
// behavior the interpretation templates rely on.
func (c Code) Name() string {
	parsed, err := Parse(string(c))
	if err != nil {
		return "English"
	}
	tag, err := language.Parse(strings.ToLower(string(parsed)))
	if err != nil {
		return "English"
	}
	return display.English.Languages().Name(tag)
}

func (c Code) String() string {
	return string(c)
}
