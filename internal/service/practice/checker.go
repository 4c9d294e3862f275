package practice

import (
	"strings"

	"github.com/samber/lo"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

// Check grades sub against item. It never fails: a missing or blank answer,
// or a form the item does not have, is graded incorrect.
func Check(item domain.Item, sub domain.Submission) domain.Verdict {
	var fields []domain.FieldVerdict

	switch it := item.(type) {
	case *domain.Noun:
		fields = []domain.FieldVerdict{
			gradeForm(domain.FieldArticle, "article", sub, nonEmpty(it.Article)),
		}
	case *domain.Verb:
		fields = []domain.FieldVerdict{
			gradeForm(domain.FieldPresens, "presens", sub, it.Presens),
			gradeForm(domain.FieldPreteritum, "preteritum", sub, it.Preteritum),
			gradeForm(domain.FieldPerfectParticiple, "perfect", sub, it.PerfectParticiple),
		}
	case *domain.Adjective:
		fields = []domain.FieldVerdict{
			gradeForm(domain.FieldNeuter, "neuter", sub, it.Neuter),
			gradeForm(domain.FieldPlural, "plural", sub, it.Plural),
		}
	case *domain.Phrase:
		// translation only
	}

	translations := item.TranslationList()
	matched, ok := matchTranslation(sub.Get(domain.FieldTranslation), translations)

	v := domain.Verdict{
		Kind:                item.ItemKind(),
		ItemID:              item.ItemID(),
		Fields:              fields,
		TranslationCorrect:  ok,
		CorrectTranslations: translations,
	}
	if ok {
		v.MatchedTranslation = &matched
	}
	v.AllCorrect = ok && lo.EveryBy(fields, func(f domain.FieldVerdict) bool { return f.Correct })
	return v
}

func gradeForm(field, key string, sub domain.Submission, canonical *string) domain.FieldVerdict {
	fv := domain.FieldVerdict{Field: field, Key: key, Canonical: canonical}

	answer := sub.Get(field)
	if answer == "" || canonical == nil {
		return fv
	}
	want := strings.TrimSpace(*canonical)
	fv.Correct = want != "" && strings.EqualFold(answer, want)
	return fv
}

// matchTranslation returns the first stored translation, in stored order,
// whose normalized form equals the normalized answer.
func matchTranslation(answer string, translations []string) (string, bool) {
	if answer == "" {
		return "", false
	}
	want := domain.NormalizeTranslation(answer)
	if want == "" {
		return "", false
	}
	return lo.Find(translations, func(t string) bool {
		return domain.NormalizeTranslation(t) == want
	})
}

func nonEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
