package vocabulary

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

const (
	MaxHeadwordLen    = 200
	MaxFormLen        = 200
	MaxTranslationLen = 300
	MaxTranslations   = 30
	MaxTagsLen        = 500
	MaxLevelLen       = 10
	MaxGroupLen       = 100
	MaxCategoryLen    = 100
	MaxNotesLen       = 4000
)

// CleanTranslations trims every entry and drops blanks and repeats while
// keeping the stored order.
func CleanTranslations(in []string) []string {
	return lo.Uniq(lo.FilterMap(in, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	}))
}

// NounInput holds the parameters for creating a noun.
type NounInput struct {
	Article      string
	Word         string
	Definite     *string
	Plural       *string
	Translations []string
	Tags         *string
	Level        *string
}

// Validate checks all fields and collects all errors.
func (i NounInput) Validate() error {
	var errs []domain.FieldError
	if !domain.IsValidArticle(normalizeArticle(i.Article)) {
		errs = append(errs, domain.FieldError{Field: "article", Message: "must be en, ei or et"})
	}
	errs = requireText(errs, "word", i.Word, MaxHeadwordLen)
	errs = optionalText(errs, "definite", i.Definite, MaxFormLen)
	errs = optionalText(errs, "plural", i.Plural, MaxFormLen)
	errs = checkTranslations(errs, i.Translations)
	errs = checkMeta(errs, i.Tags, i.Level)
	return collect(errs)
}

func (i NounInput) toDomain() *domain.Noun {
	return &domain.Noun{
		Article:      normalizeArticle(i.Article),
		Word:         strings.TrimSpace(i.Word),
		Definite:     trimOrNil(i.Definite),
		Plural:       trimOrNil(i.Plural),
		Translations: CleanTranslations(i.Translations),
		Tags:         trimOrNil(i.Tags),
		Level:        trimOrNil(i.Level),
	}
}

// VerbInput holds the parameters for creating a verb.
type VerbInput struct {
	Infinitive        string
	Presens           *string
	Preteritum        *string
	PerfectParticiple *string
	Group             *string
	GroupDescription  *string
	Translations      []string
	Tags              *string
	Level             *string
}

// Validate checks all fields and collects all errors.
func (i VerbInput) Validate() error {
	var errs []domain.FieldError
	errs = requireText(errs, "infinitive", i.Infinitive, MaxHeadwordLen)
	errs = optionalText(errs, "presens", i.Presens, MaxFormLen)
	errs = optionalText(errs, "preteritum", i.Preteritum, MaxFormLen)
	errs = optionalText(errs, "perfect_participle", i.PerfectParticiple, MaxFormLen)
	errs = optionalText(errs, "group", i.Group, MaxGroupLen)
	errs = optionalText(errs, "group_description", i.GroupDescription, MaxNotesLen)
	errs = checkTranslations(errs, i.Translations)
	errs = checkMeta(errs, i.Tags, i.Level)
	return collect(errs)
}

func (i VerbInput) toDomain() *domain.Verb {
	return &domain.Verb{
		Infinitive:        strings.TrimSpace(i.Infinitive),
		Presens:           trimOrNil(i.Presens),
		Preteritum:        trimOrNil(i.Preteritum),
		PerfectParticiple: trimOrNil(i.PerfectParticiple),
		Group:             trimOrNil(i.Group),
		GroupDescription:  trimOrNil(i.GroupDescription),
		Translations:      CleanTranslations(i.Translations),
		Tags:              trimOrNil(i.Tags),
		Level:             trimOrNil(i.Level),
	}
}

// AdjectiveInput holds the parameters for creating an adjective.
type AdjectiveInput struct {
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
}

// Validate checks all fields and collects all errors.
func (i AdjectiveInput) Validate() error {
	var errs []domain.FieldError
	errs = requireText(errs, "base", i.Base, MaxHeadwordLen)
	errs = optionalText(errs, "neuter", i.Neuter, MaxFormLen)
	errs = optionalText(errs, "plural", i.Plural, MaxFormLen)
	errs = optionalText(errs, "comparative", i.Comparative, MaxFormLen)
	errs = optionalText(errs, "superlative", i.Superlative, MaxFormLen)
	errs = optionalText(errs, "group", i.Group, MaxGroupLen)
	errs = optionalText(errs, "group_description", i.GroupDescription, MaxNotesLen)
	errs = checkTranslations(errs, i.Translations)
	errs = checkMeta(errs, i.Tags, i.Level)
	return collect(errs)
}

func (i AdjectiveInput) toDomain() *domain.Adjective {
	return &domain.Adjective{
		Base:             strings.TrimSpace(i.Base),
		Neuter:           trimOrNil(i.Neuter),
		Plural:           trimOrNil(i.Plural),
		Comparative:      trimOrNil(i.Comparative),
		Superlative:      trimOrNil(i.Superlative),
		Group:            trimOrNil(i.Group),
		GroupDescription: trimOrNil(i.GroupDescription),
		Translations:     CleanTranslations(i.Translations),
		Tags:             trimOrNil(i.Tags),
		Level:            trimOrNil(i.Level),
	}
}

// PhraseInput holds the parameters for creating a phrase.
type PhraseInput struct {
	Norwegian    string
	Category     *string
	Notes        *string
	Translations []string
	Tags         *string
	Level        *string
}

// Validate checks all fields and collects all errors.
func (i PhraseInput) Validate() error {
	var errs []domain.FieldError
	errs = requireText(errs, "norwegian", i.Norwegian, MaxTranslationLen)
	errs = optionalText(errs, "category", i.Category, MaxCategoryLen)
	errs = optionalText(errs, "notes", i.Notes, MaxNotesLen)
	errs = checkTranslations(errs, i.Translations)
	errs = checkMeta(errs, i.Tags, i.Level)
	return collect(errs)
}

func (i PhraseInput) toDomain() *domain.Phrase {
	return &domain.Phrase{
		Norwegian:    strings.TrimSpace(i.Norwegian),
		Category:     trimOrNil(i.Category),
		Notes:        trimOrNil(i.Notes),
		Translations: CleanTranslations(i.Translations),
		Tags:         trimOrNil(i.Tags),
		Level:        trimOrNil(i.Level),
	}
}

// ---------------------------------------------------------------------------
// Partial updates
// ---------------------------------------------------------------------------

func prepareNounUpdate(p domain.NounUpdateParams) (domain.NounUpdateParams, error) {
	var errs []domain.FieldError
	if p.Article != nil {
		a := normalizeArticle(*p.Article)
		if !domain.IsValidArticle(a) {
			errs = append(errs, domain.FieldError{Field: "article", Message: "must be en, ei or et"})
		}
		p.Article = &a
	}
	p.Word, errs = requiredUpdate(errs, "word", p.Word, MaxHeadwordLen)
	p.Definite, errs = optionalUpdate(errs, "definite", p.Definite, MaxFormLen)
	p.Plural, errs = optionalUpdate(errs, "plural", p.Plural, MaxFormLen)
	p.Translations, errs = translationsUpdate(errs, p.Translations)
	p.Tags, errs = optionalUpdate(errs, "tags", p.Tags, MaxTagsLen)
	p.Level, errs = optionalUpdate(errs, "level", p.Level, MaxLevelLen)
	return p, collect(errs)
}

func prepareVerbUpdate(p domain.VerbUpdateParams) (domain.VerbUpdateParams, error) {
	var errs []domain.FieldError
	p.Infinitive, errs = requiredUpdate(errs, "infinitive", p.Infinitive, MaxHeadwordLen)
	p.Presens, errs = optionalUpdate(errs, "presens", p.Presens, MaxFormLen)
	p.Preteritum, errs = optionalUpdate(errs, "preteritum", p.Preteritum, MaxFormLen)
	p.PerfectParticiple, errs = optionalUpdate(errs, "perfect_participle", p.PerfectParticiple, MaxFormLen)
	p.Group, errs = optionalUpdate(errs, "group", p.Group, MaxGroupLen)
	p.GroupDescription, errs = optionalUpdate(errs, "group_description", p.GroupDescription, MaxNotesLen)
	p.Translations, errs = translationsUpdate(errs, p.Translations)
	p.Tags, errs = optionalUpdate(errs, "tags", p.Tags, MaxTagsLen)
	p.Level, errs = optionalUpdate(errs, "level", p.Level, MaxLevelLen)
	return p, collect(errs)
}

func prepareAdjectiveUpdate(p domain.AdjectiveUpdateParams) (domain.AdjectiveUpdateParams, error) {
	var errs []domain.FieldError
	p.Base, errs = requiredUpdate(errs, "base", p.Base, MaxHeadwordLen)
	p.Neuter, errs = optionalUpdate(errs, "neuter", p.Neuter, MaxFormLen)
	p.Plural, errs = optionalUpdate(errs, "plural", p.Plural, MaxFormLen)
	p.Comparative, errs = optionalUpdate(errs, "comparative", p.Comparative, MaxFormLen)
	p.Superlative, errs = optionalUpdate(errs, "superlative", p.Superlative, MaxFormLen)
	p.Group, errs = optionalUpdate(errs, "group", p.Group, MaxGroupLen)
	p.GroupDescription, errs = optionalUpdate(errs, "group_description", p.GroupDescription, MaxNotesLen)
	p.Translations, errs = translationsUpdate(errs, p.Translations)
	p.Tags, errs = optionalUpdate(errs, "tags", p.Tags, MaxTagsLen)
	p.Level, errs = optionalUpdate(errs, "level", p.Level, MaxLevelLen)
	return p, collect(errs)
}

func preparePhraseUpdate(p domain.PhraseUpdateParams) (domain.PhraseUpdateParams, error) {
	var errs []domain.FieldError
	p.Norwegian, errs = requiredUpdate(errs, "norwegian", p.Norwegian, MaxTranslationLen)
	p.Category, errs = optionalUpdate(errs, "category", p.Category, MaxCategoryLen)
	p.Notes, errs = optionalUpdate(errs, "notes", p.Notes, MaxNotesLen)
	p.Translations, errs = translationsUpdate(errs, p.Translations)
	p.Tags, errs = optionalUpdate(errs, "tags", p.Tags, MaxTagsLen)
	p.Level, errs = optionalUpdate(errs, "level", p.Level, MaxLevelLen)
	return p, collect(errs)
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func normalizeArticle(a string) string {
	return strings.ToLower(strings.TrimSpace(a))
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func tooLong(s string, limit int) bool {
	return utf8.RuneCountInString(s) > limit
}

func requireText(errs []domain.FieldError, field, v string, limit int) []domain.FieldError {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	case tooLong(v, limit):
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", limit)})
	}
	return errs
}

func optionalText(errs []domain.FieldError, field string, v *string, limit int) []domain.FieldError {
	if v != nil && tooLong(strings.TrimSpace(*v), limit) {
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", limit)})
	}
	return errs
}

func checkTranslations(errs []domain.FieldError, in []string) []domain.FieldError {
	cleaned := CleanTranslations(in)
	if len(cleaned) == 0 {
		return append(errs, domain.FieldError{Field: "translations", Message: "at least one translation required"})
	}
	if len(cleaned) > MaxTranslations {
		errs = append(errs, domain.FieldError{Field: "translations", Message: fmt.Sprintf("max %d translations", MaxTranslations)})
	}
	for _, t := range cleaned {
		if tooLong(t, MaxTranslationLen) {
			errs = append(errs, domain.FieldError{Field: "translations", Message: fmt.Sprintf("each translation max %d characters", MaxTranslationLen)})
			break
		}
	}
	return errs
}

func checkMeta(errs []domain.FieldError, tags, level *string) []domain.FieldError {
	errs = optionalText(errs, "tags", tags, MaxTagsLen)
	errs = optionalText(errs, "level", level, MaxLevelLen)
	return errs
}

// requiredUpdate trims a headword change. An explicit blank is rejected.
func requiredUpdate(errs []domain.FieldError, field string, v *string, limit int) (*string, []domain.FieldError) {
	if v == nil {
		return nil, errs
	}
	errs = requireText(errs, field, *v, limit)
	trimmed := strings.TrimSpace(*v)
	return &trimmed, errs
}

// optionalUpdate trims an optional change. A blank value stays non-nil so
// the repository clears the column.
func optionalUpdate(errs []domain.FieldError, field string, v *string, limit int) (*string, []domain.FieldError) {
	if v == nil {
		return nil, errs
	}
	trimmed := strings.TrimSpace(*v)
	errs = optionalText(errs, field, &trimmed, limit)
	return &trimmed, errs
}

func translationsUpdate(errs []domain.FieldError, in []string) ([]string, []domain.FieldError) {
	if in == nil {
		return nil, errs
	}
	return CleanTranslations(in), checkTranslations(errs, in)
}

func collect(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
