package quiz

import (
	"regexp"
	"strings"

	"github.com/linguapersonal/linguabot.git/internal/models"
	"github.com/linguapersonal/linguabot.git/internal/textnorm"
)

// Kind selects how the canonical answer for a question is derived.
type Kind string

const (
	// KindVocabulary asks for the target-language form of a native word.
	KindVocabulary Kind = "vocab"
	// KindReverse asks for the native-language form of a target word.
	KindReverse Kind = "reverse"
	// KindFillBlank blanks one word out of a target-language sentence.
	KindFillBlank Kind = "fillblank"
)

// Pair is one question source, either a vocabulary pair or a sentence pair.
type Pair struct {
	Native string
	Target string
}

func VocabPairs(items []models.VocabItem) []Pair {
	pairs := make([]Pair, len(items))
	for i, it := range items {
		pairs[i] = Pair{Native: it.Native, Target: it.Target}
	}
	return pairs
}

func TranslationPairs(items []models.TranslationItem) []Pair {
	pairs := make([]Pair, len(items))
	for i, it := range items {
		pairs[i] = Pair{Native: it.Native, Target: it.Target}
	}
	return pairs
}

// Derived is one fully prepared question: the prompt shown to the user, the
// canonical answer their input is compared against, and for fill-in-the-blank
// the blanked sentence alongside the complete one.
type Derived struct {
	Prompt   string
	Answer   string
	Blanked  string
	Sentence string
}

// Derive prepares the question for item according to the quiz kind. The
// vocab list is only consulted for fill-in-the-blank derivation and must be
// in lesson order.
func (k Kind) Derive(item Pair, vocab []Pair) Derived {
	switch k {
	case KindReverse:
		return Derived{Prompt: item.Target, Answer: item.Native}
	case KindFillBlank:
		blanked, answer := deriveBlank(item.Target, vocab)
		return Derived{
			Prompt:   item.Native,
			Answer:   answer,
			Blanked:  blanked,
			Sentence: item.Target,
		}
	default:
		return Derived{Prompt: item.Native, Answer: item.Target}
	}
}

// deriveBlank scans the sentence for the first vocabulary item (in lesson
// order) whose target form appears in it, case-insensitively, and blanks that
// occurrence out. With no match the last whitespace-delimited token is
// blanked instead.
func deriveBlank(sentence string, vocab []Pair) (blanked, answer string) {
	lower := strings.ToLower(sentence)
	for _, v := range vocab {
		target := strings.ToLower(v.Target)
		if target == "" || !strings.Contains(lower, target) {
			continue
		}
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(v.Target))
		return re.ReplaceAllString(sentence, "___"), v.Target
	}

	words := strings.Split(sentence, " ")
	last := words[len(words)-1]
	return strings.Join(words[:len(words)-1], " ") + " ___", last
}

// Match reports whether the user's answer equals the canonical one after
// normalizing both sides.
func Match(userAnswer, canonical string) bool {
	return textnorm.Normalize(userAnswer) == textnorm.Normalize(canonical)
}

// Score is an aggregate quiz result. Answers are all-or-nothing per question.
type Score struct {
	Correct int
	Total   int
}

// ScoreAnswers re-derives every canonical answer and counts exact normalized
// matches against the stored per-question answers.
func ScoreAnswers(k Kind, items []Pair, vocab []Pair, answers []string) Score {
	score := Score{Total: len(items)}
	for i, item := range items {
		if i >= len(answers) {
			break
		}
		if Match(answers[i], k.Derive(item, vocab).Answer) {
			score.Correct++
		}
	}
	return score
}
