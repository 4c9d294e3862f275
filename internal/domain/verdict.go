package domain

import "strings"

// Submission maps a field name to the learner's raw answer. The key
// "translation" is reserved for the meaning; every other key names a form.
type Submission map[string]string

// Submission keys.
const (
	FieldArticle           = "article"
	FieldPresens           = "presens"
	FieldPreteritum        = "preteritum"
	FieldPerfectParticiple = "perfect_participle"
	FieldNeuter            = "neuter"
	FieldPlural            = "plural"
	FieldTranslation       = "translation"
)

// Get returns the trimmed answer for field, "" when absent.
func (s Submission) Get(field string) string {
	return strings.TrimSpace(s[field])
}

// FieldVerdict is the grading result of one form field.
// Key is the stem of the response keys ("<key>_correct", "correct_<key>"),
// which differs from Field for the verb participle ("perfect").
type FieldVerdict struct {
	Field     string
	Key       string
	Correct   bool
	Canonical *string
}

// Verdict is the result of checking one submission against one item.
type Verdict struct {
	Kind                Kind
	ItemID              int64
	Fields              []FieldVerdict
	TranslationCorrect  bool
	CorrectTranslations []string
	MatchedTranslation  *string
	AllCorrect          bool
}

// Field returns the verdict for the named submission field.
func (v Verdict) Field(name string) (FieldVerdict, bool) {
	for _, f := range v.Fields {
		if f.Field == name {
			return f, true
		}
	}
	return FieldVerdict{}, false
}
