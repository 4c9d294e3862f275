package rest

import (
	"time"

	"github.com/samber/lo"

	"github.com/heartmarshall/norsk-drill/internal/domain"
	"github.com/heartmarshall/norsk-drill/internal/service/search"
)

// JSON shapes use the snake_case keys the drill pages expect.

type nounJSON struct {
	ID                 int64     `json:"id"`
	Article            string    `json:"article"`
	Word               string    `json:"word"`
	Definite           *string   `json:"definite"`
	Plural             *string   `json:"plural"`
	Translations       []string  `json:"translations"`
	Tags               *string   `json:"tags"`
	Level              *string   `json:"level"`
	MatchedTranslation *bool     `json:"matched_translation,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type verbJSON struct {
	ID                 int64     `json:"id"`
	Infinitive         string    `json:"infinitive"`
	Presens            *string   `json:"presens"`
	Preteritum         *string   `json:"preteritum"`
	PerfectParticiple  *string   `json:"perfect_participle"`
	Group              *string   `json:"group"`
	GroupDescription   *string   `json:"group_description"`
	Translations       []string  `json:"translations"`
	Tags               *string   `json:"tags"`
	Level              *string   `json:"level"`
	MatchedTranslation *bool     `json:"matched_translation,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type adjectiveJSON struct {
	ID                 int64     `json:"id"`
	Base               string    `json:"base"`
	Neuter             *string   `json:"neuter"`
	Plural             *string   `json:"plural"`
	Comparative        *string   `json:"comparative"`
	Superlative        *string   `json:"superlative"`
	Group              *string   `json:"group"`
	GroupDescription   *string   `json:"group_description"`
	Translations       []string  `json:"translations"`
	Tags               *string   `json:"tags"`
	Level              *string   `json:"level"`
	MatchedTranslation *bool     `json:"matched_translation,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type phraseJSON struct {
	ID                 int64     `json:"id"`
	Norwegian          string    `json:"norwegian"`
	Category           *string   `json:"category"`
	Notes              *string   `json:"notes"`
	Translations       []string  `json:"translations"`
	Tags               *string   `json:"tags"`
	Level              *string   `json:"level"`
	MatchedTranslation *bool     `json:"matched_translation,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type lessonJSON struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      *string   `json:"tags"`
	Level     *string   `json:"level"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func translationsOrEmpty(t []string) []string {
	if t == nil {
		return []string{}
	}
	return t
}

func toNounJSON(n *domain.Noun) nounJSON {
	return nounJSON{
		ID:           n.ID,
		Article:      n.Article,
		Word:         n.Word,
		Definite:     n.Definite,
		Plural:       n.Plural,
		Translations: translationsOrEmpty(n.Translations),
		Tags:         n.Tags,
		Level:        n.Level,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
}

func toVerbJSON(v *domain.Verb) verbJSON {
	return verbJSON{
		ID:                v.ID,
		Infinitive:        v.Infinitive,
		Presens:           v.Presens,
		Preteritum:        v.Preteritum,
		PerfectParticiple: v.PerfectParticiple,
		Group:             v.Group,
		GroupDescription:  v.GroupDescription,
		Translations:      translationsOrEmpty(v.Translations),
		Tags:              v.Tags,
		Level:             v.Level,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func toAdjectiveJSON(a *domain.Adjective) adjectiveJSON {
	return adjectiveJSON{
		ID:               a.ID,
		Base:             a.Base,
		Neuter:           a.Neuter,
		Plural:           a.Plural,
		Comparative:      a.Comparative,
		Superlative:      a.Superlative,
		Group:            a.Group,
		GroupDescription: a.GroupDescription,
		Translations:     translationsOrEmpty(a.Translations),
		Tags:             a.Tags,
		Level:            a.Level,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func toPhraseJSON(p *domain.Phrase) phraseJSON {
	return phraseJSON{
		ID:           p.ID,
		Norwegian:    p.Norwegian,
		Category:     p.Category,
		Notes:        p.Notes,
		Translations: translationsOrEmpty(p.Translations),
		Tags:         p.Tags,
		Level:        p.Level,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toLessonJSON(l *domain.GrammarLesson) lessonJSON {
	return lessonJSON{
		ID:        l.ID,
		Title:     l.Title,
		Content:   l.Content,
		Tags:      l.Tags,
		Level:     l.Level,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// toItemJSON renders any word class item.
func toItemJSON(item domain.Item) any {
	switch it := item.(type) {
	case *domain.Noun:
		return toNounJSON(it)
	case *domain.Verb:
		return toVerbJSON(it)
	case *domain.Adjective:
		return toAdjectiveJSON(it)
	case *domain.Phrase:
		return toPhraseJSON(it)
	default:
		return nil
	}
}

func toItemsJSON(items []domain.Item) []any {
	return lo.Map(items, func(it domain.Item, _ int) any { return toItemJSON(it) })
}

// toVerdictJSON flattens a verdict into "<key>_correct" / "correct_<key>"
// pairs next to the translation result.
func toVerdictJSON(v domain.Verdict) map[string]any {
	out := map[string]any{
		"id":                   v.ItemID,
		"translation_correct":  v.TranslationCorrect,
		"correct_translations": translationsOrEmpty(v.CorrectTranslations),
		"matched_translation":  v.MatchedTranslation,
		"all_correct":          v.AllCorrect,
	}
	for _, f := range v.Fields {
		out[f.Key+"_correct"] = f.Correct
		out["correct_"+f.Key] = f.Canonical
	}
	return out
}

type searchJSON struct {
	Query      string          `json:"query"`
	Total      int             `json:"total"`
	Nouns      []nounJSON      `json:"nouns"`
	Verbs      []verbJSON      `json:"verbs"`
	Adjectives []adjectiveJSON `json:"adjectives"`
	Phrases    []phraseJSON    `json:"phrases"`
}

func toSearchJSON(res search.Result) searchJSON {
	return searchJSON{
		Query: res.Query,
		Total: res.Total(),
		Nouns: lo.Map(res.Nouns, func(h search.Hit[*domain.Noun], _ int) nounJSON {
			j := toNounJSON(h.Item)
			j.MatchedTranslation = lo.ToPtr(h.MatchedTranslation)
			return j
		}),
		Verbs: lo.Map(res.Verbs, func(h search.Hit[*domain.Verb], _ int) verbJSON {
			j := toVerbJSON(h.Item)
			j.MatchedTranslation = lo.ToPtr(h.MatchedTranslation)
			return j
		}),
		Adjectives: lo.Map(res.Adjectives, func(h search.Hit[*domain.Adjective], _ int) adjectiveJSON {
			j := toAdjectiveJSON(h.Item)
			j.MatchedTranslation = lo.ToPtr(h.MatchedTranslation)
			return j
		}),
		Phrases: lo.Map(res.Phrases, func(h search.Hit[*domain.Phrase], _ int) phraseJSON {
			j := toPhraseJSON(h.Item)
			j.MatchedTranslation = lo.ToPtr(h.MatchedTranslation)
			return j
		}),
	}
}

// Request bodies. Create bodies use plain strings for required fields;
// patch bodies use pointers so absent keys leave the column untouched.

type nounRequest struct {
	Article      *string  `json:"article"`
	Word         *string  `json:"word"`
	Definite     *string  `json:"definite"`
	Plural       *string  `json:"plural"`
	Translations []string `json:"translations"`
	Tags         *string  `json:"tags"`
	Level        *string  `json:"level"`
}

type verbRequest struct {
	Infinitive        *string  `json:"infinitive"`
	Presens           *string  `json:"presens"`
	Preteritum        *string  `json:"preteritum"`
	PerfectParticiple *string  `json:"perfect_participle"`
	Group             *string  `json:"group"`
	GroupDescription  *string  `json:"group_description"`
	Translations      []string `json:"translations"`
	Tags              *string  `json:"tags"`
	Level             *string  `json:"level"`
}

type adjectiveRequest struct {
	Base             *string  `json:"base"`
	Neuter           *string  `json:"neuter"`
	Plural           *string  `json:"plural"`
	Comparative      *string  `json:"comparative"`
	Superlative      *string  `json:"superlative"`
	Group            *string  `json:"group"`
	GroupDescription *string  `json:"group_description"`
	Translations     []string `json:"translations"`
	Tags             *string  `json:"tags"`
	Level            *string  `json:"level"`
}

type phraseRequest struct {
	Norwegian    *string  `json:"norwegian"`
	Category     *string  `json:"category"`
	Notes        *string  `json:"notes"`
	Translations []string `json:"translations"`
	Tags         *string  `json:"tags"`
	Level        *string  `json:"level"`
}

type lessonRequest struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Tags    *string `json:"tags"`
	Level   *string `json:"level"`
}
