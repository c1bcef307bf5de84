package analysis

import (
	"fmt"
	"strings"
)

// Genre is the closed classification of text style driving which
// instruction template the interpreter uses.
type Genre string

const (
	GenreGeneral    Genre = "General"
	GenreNews       Genre = "News"
	GenrePhilosophy Genre = "Philosophy"
	GenreNarrative  Genre = "Narrative"
	GenrePoem       Genre = "Poem"
	GenrePaper      Genre = "Paper"
)

var genres = []Genre{GenreGeneral, GenreNews, GenrePhilosophy, GenreNarrative, GenrePoem, GenrePaper}

// ParseGenre normalizes raw into a recognized Genre, case-insensitively.
func ParseGenre(raw string) (Genre, error) {
	trimmed := strings.TrimSpace(raw)
	for _, g := range genres {
		if strings.EqualFold(trimmed, string(g)) {
			return g, nil
		}
	}
	return "", fmt.Errorf("unrecognized genre %q", raw)
}

// Implemented reports whether the genre has a non-empty instruction
// template. Narrative, Poem and Paper are recognized by the detector but
// have no template yet.
func (g Genre) Implemented() bool {
	switch g {
	case GenreGeneral, GenreNews, GenrePhilosophy:
		return true
	default:
		return false
	}
}

func (g Genre) String() string {
	return string(g)
}
