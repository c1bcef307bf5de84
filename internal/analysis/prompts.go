package analysis

import (
	_ "embed"
	"strings"

	"logos-backend/internal/langs"
)

var (
	//go:embed prompts/classify.txt
	classifyPrompt string
	//go:embed prompts/correct.txt
	correctPrompt string
	//go:embed prompts/general.txt
	generalPrompt string
	//go:embed prompts/news.txt
	newsPrompt string
	//go:embed prompts/philosophy.txt
	philosophyPrompt string
)

const (
	learnLanguageSlot = "[LEARN_LANGUAGE]"
	profLanguageSlot  = "[PROF_LANGUAGE]"
)

// genreTemplate returns the instruction template for the genre and whether a
// non-empty template exists. Narrative, Poem and Paper have none.
func genreTemplate(genre Genre) (string, bool) {
	switch genre {
	case GenreGeneral:
		return generalPrompt, true
	case GenreNews:
		return newsPrompt, true
	case GenrePhilosophy:
		return philosophyPrompt, true
	default:
		return "", false
	}
}

// renderTemplate substitutes the human-readable language names into the
// template's placeholder slots.
func renderTemplate(template string, learn, reader langs.Code) string {
	out := strings.ReplaceAll(template, learnLanguageSlot, learn.Name())
	return strings.ReplaceAll(out, profLanguageSlot, reader.Name())
}
