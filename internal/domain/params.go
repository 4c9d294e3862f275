package domain

// Update params apply partial changes: a nil field is left untouched,
// ptr("") clears an optional column, a nil Translations slice keeps the
// stored translations.

type NounUpdateParams struct {
	Article      *string
	Word         *string
	Definite     *string
	Plural       *string
	Translations []string
	Tags         *string
	Level        *string
}

type VerbUpdateParams struct {
	Infinitive        *string
	Presens           *string
	Preteritum        *string
	PerfectParticiple *string
	Group             *string
	GroupDescription  *string
	Translations      []string
	Tags              *string
	Level             *string
}

type AdjectiveUpdateParams struct {
	Base             *string
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

type PhraseUpdateParams struct {
	Norwegian    *string
	Category     *string
	Notes        *string
	Translations []string
	Tags         *string
	Level        *string
}
