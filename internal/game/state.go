package game

import "time"

// Phase is the top-level lifecycle state of a play session.
type Phase int

const (
	PhaseLoading Phase = iota // Restoring or fetching the first sentence
	PhasePlaying              // Serving sentences
	PhaseComplete             // All sentences answered for the day
)

// Feedback is the sub-state within PhasePlaying. FeedbackNone means the
// session is awaiting an answer.
type Feedback int

const (
	FeedbackNone      Feedback = iota
	FeedbackCorrect            // correct answer, short form revealed
	FeedbackIncorrect          // wrong answer, nothing revealed
	FeedbackSolution           // solution explicitly revealed (local mode)
)

// DateLayout is the day-granularity stamp used to key saved sessions.
const DateLayout = "2006-01-02"

// Today formats now as a local calendar date stamp.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// State is the session state machine. All transitions are synchronous;
// callers perform provider I/O between BeginSubmit/ApplyResult and
// around ApplyHint.
type State struct {
	// Phase is the current lifecycle phase.
	Phase Phase

	// Feedback is the sub-state within PhasePlaying.
	Feedback Feedback

	// SessionID is the opaque token identifying the session with the
	// provider. Submissions are refused while it is empty.
	SessionID string

	// TotalItems is the fixed sentence count for the session, or 0 in
	// local mode, where play is an endless pick-one-at-a-time loop.
	TotalItems int

	// CurrentItem is the sentence being played.
	CurrentItem Item

	// Attempts maps sentence ordinal to attempt count. When TotalItems
	// is positive every ordinal in [1, TotalItems] is present from
	// session start; in local mode entries are added as items arrive.
	Attempts map[int]int

	// CreatedOn is the local calendar date the session was created.
	// The session is only restorable while today matches it.
	CreatedOn string

	// ShortForm and Explanation hold the revealed answer content while
	// feedback is showing.
	ShortForm   string
	Explanation string

	// Next is the staged follow-up sentence received with a correct
	// result. It is applied by Advance, never earlier.
	Next *Item

	// Hints is the per-sentence hint progress. Reset on advance.
	Hints HintState
}

// NewState builds a fresh session from the provider's first result.
func NewState(first FetchResult, today string) *State {
	attempts := make(map[int]int)
	if first.TotalItems > 0 {
		for i := 1; i <= first.TotalItems; i++ {
			attempts[i] = 0
		}
	}
	if _, ok := attempts[first.Item.ID]; !ok {
		attempts[first.Item.ID] = 0
	}

	return &State{
		Phase:       PhasePlaying,
		SessionID:   first.SessionID,
		TotalItems:  first.TotalItems,
		CurrentItem: first.Item,
		Attempts:    attempts,
		CreatedOn:   today,
	}
}

// CurrentAttempts returns the attempt count for the active sentence.
func (s *State) CurrentAttempts() int {
	return s.Attempts[s.CurrentItem.ID]
}

// AwaitingAnswer reports whether the session accepts a submission.
func (s *State) AwaitingAnswer() bool {
	return s.Phase == PhasePlaying && s.Feedback == FeedbackNone
}
