package game

// Difficulty is the display-only difficulty tier of a sentence.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the three known tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Label returns the Catalan display label for the tier.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "Fàcil"
	case DifficultyMedium:
		return "Mitjà"
	case DifficultyHard:
		return "Difícil"
	}
	return string(d)
}

// Item is one sentence-transformation challenge. It is immutable once
// issued by a provider for the current turn.
type Item struct {
	// ID is the 1-based ordinal of the sentence within the session.
	ID int

	// FullForm is the prompt sentence with strong pronouns.
	FullForm string

	// Difficulty is display-only.
	Difficulty Difficulty
}

// FetchResult is what a provider returns when starting a session or
// issuing the first sentence.
type FetchResult struct {
	SessionID  string
	Item       Item
	TotalItems int
}

// SubmitResult is the graded outcome of an answer submission.
// ShortForm and Explanation are only populated when Correct is true
// (or, in local mode, on an explicit solution reveal). Next is the
// staged follow-up sentence; nil with Correct=true means the session
// is complete.
type SubmitResult struct {
	Correct     bool
	ShortForm   string
	Explanation string
	Next        *Item
}

// HintResult is the provider's answer to a hint request. Text may be
// empty when the hint supply is exhausted; Limit is authoritative on
// every response and may be learned lazily.
type HintResult struct {
	Text   string
	Cursor int
	Limit  int
}

// HintState tracks hint progress for the current sentence.
type HintState struct {
	// Revealed holds the hints already shown, in reveal order.
	Revealed []string

	// Cursor is the count of hints obtained so far.
	Cursor int

	// Limit is the maximum hints available for this sentence.
	// Meaningless until LimitKnown is true.
	Limit int

	// LimitKnown is set once any hint response has reported the limit.
	LimitKnown bool
}

// Exhausted reports whether the hint supply is known to be used up.
func (h HintState) Exhausted() bool {
	return h.LimitKnown && h.Cursor >= h.Limit
}
