package domain

import (
	"fmt"
	"strings"
	"time"
)

// Kind is the word class tag of a vocabulary item.
type Kind string

const (
	KindNoun      Kind = "noun"
	KindVerb      Kind = "verb"
	KindAdjective Kind = "adjective"
	KindPhrase    Kind = "phrase"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindNoun, KindVerb, KindAdjective, KindPhrase:
		return true
	}
	return false
}

// Plural returns the collection name used in URLs and table names.
func (k Kind) Plural() string { return string(k) + "s" }

// Title returns the capitalized class name, e.g. "Noun".
func (k Kind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Kinds lists every word class in display order.
func Kinds() []Kind {
	return []Kind{KindNoun, KindVerb, KindAdjective, KindPhrase}
}

// ParseKind accepts the singular or plural class name in any case.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	k := Kind(strings.TrimSuffix(s, "s"))
	if !k.IsValid() {
		return "", fmt.Errorf("unknown word class %q: %w", s, ErrValidation)
	}
	return k, nil
}

// Noun articles.
const (
	ArticleEn = "en"
	ArticleEi = "ei"
	ArticleEt = "et"
)

// IsValidArticle reports whether a is one of en, ei, et (exact, lower case).
func IsValidArticle(a string) bool {
	switch a {
	case ArticleEn, ArticleEi, ArticleEt:
		return true
	}
	return false
}

// Item is implemented by every practisable word class. The answer checker
// dispatches on the concrete type.
type Item interface {
	ItemID() int64
	ItemKind() Kind
	Headword() string
	TranslationList() []string
}

// Noun is a Norwegian noun with its article and inflected forms.
type Noun struct {
	ID           int64
	Article      string
	Word         string
	Definite     *string
	Plural       *string
	Translations []string
	Tags         *string
	Level        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (n *Noun) ItemID() int64             { return n.ID }
func (n *Noun) ItemKind() Kind            { return KindNoun }
func (n *Noun) Headword() string          { return n.Word }
func (n *Noun) TranslationList() []string { return n.Translations }

// Verb is a Norwegian verb with its principal parts.
type Verb struct {
	ID                int64
	Infinitive        string
	Presens           *string
	Preteritum        *string
	PerfectParticiple *string
	Group             *string
	GroupDescription  *string
	Translations      []string
	Tags              *string
	Level             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (v *Verb) ItemID() int64             { return v.ID }
func (v *Verb) ItemKind() Kind            { return KindVerb }
func (v *Verb) Headword() string          { return v.Infinitive }
func (v *Verb) TranslationList() []string { return v.Translations }

// Adjective is a Norwegian adjective with gender, number and comparison forms.
type Adjective struct {
	ID               int64
	Base             string
	Neuter           *string
	Plural           *string
	Comparative      *string
	Superlative      *string
	Group            *string
	GroupDescription *string
	Translations     []string
	Tags             *string
	Level            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (a *Adjective) ItemID() int64             { return a.ID }
func (a *Adjective) ItemKind() Kind            { return KindAdjective }
func (a *Adjective) Headword() string          { return a.Base }
func (a *Adjective) TranslationList() []string { return a.Translations }

// Phrase is a Norwegian expression. Only its translation is quizzed.
type Phrase struct {
	ID           int64
	Norwegian    string
	Category     *string
	Notes        *string
	Translations []string
	Tags         *string
	Level        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p *Phrase) ItemID() int64             { return p.ID }
func (p *Phrase) ItemKind() Kind            { return KindPhrase }
func (p *Phrase) Headword() string          { return p.Norwegian }
func (p *Phrase) TranslationList() []string { return p.Translations }

// GrammarLesson is a free-form grammar note shown alongside the drills.
type GrammarLesson struct {
	ID        int64
	Title     string
	Content   string
	Tags      *string
	Level     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateOutcome tells whether a create call inserted a row or found an
// existing record with the same natural key.
type CreateOutcome string

const (
	OutcomeCreated   CreateOutcome = "created"
	OutcomeDuplicate CreateOutcome = "duplicate"
)

// Counts holds the number of stored records per word class.
type Counts struct {
	Nouns      int `json:"nouns"`
	Verbs      int `json:"verbs"`
	Adjectives int `json:"adjectives"`
	Phrases    int `json:"phrases"`
	Lessons    int `json:"lessons"`
}
