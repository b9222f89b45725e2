package game

import "strings"

// Submission carries the values a provider needs to grade an answer.
type Submission struct {
	SessionID string
	ItemID    int
	Answer    string
	Attempts  int
}

// BeginSubmit validates and stages an answer submission. A blank or
// whitespace-only candidate, a missing session identifier, or a session
// not awaiting an answer all make it a silent no-op (ok=false, no state
// change). Otherwise the attempt count for the current sentence is
// incremented before the result is known; a later provider failure does
// not roll it back.
func (s *State) BeginSubmit(candidate string) (Submission, bool) {
	answer := strings.TrimSpace(candidate)
	if answer == "" || s.SessionID == "" || !s.AwaitingAnswer() {
		return Submission{}, false
	}

	s.Attempts[s.CurrentItem.ID]++

	return Submission{
		SessionID: s.SessionID,
		ItemID:    s.CurrentItem.ID,
		Answer:    answer,
		Attempts:  s.Attempts[s.CurrentItem.ID],
	}, true
}

// ApplyResult folds a graded submission into the session. A correct
// result reveals the short form and stages the next sentence; a correct
// result with no next sentence completes the session for the day.
func (s *State) ApplyResult(res SubmitResult) {
	if !res.Correct {
		s.Feedback = FeedbackIncorrect
		return
	}

	s.ShortForm = res.ShortForm
	s.Explanation = res.Explanation

	if res.Next == nil {
		s.Phase = PhaseComplete
		s.Feedback = FeedbackNone
		return
	}

	s.Feedback = FeedbackCorrect
	s.Next = res.Next
}

// Advance applies the staged sentence and returns to awaiting-answer,
// resetting per-sentence hint state. No-op when nothing is staged.
func (s *State) Advance() bool {
	if s.Next == nil || s.Feedback != FeedbackCorrect {
		return false
	}

	s.CurrentItem = *s.Next
	s.Next = nil
	if _, ok := s.Attempts[s.CurrentItem.ID]; !ok {
		s.Attempts[s.CurrentItem.ID] = 0
	}
	s.clearFeedback()
	s.Hints = HintState{}
	return true
}

// Retry dismisses incorrect (or solution) feedback and returns to
// awaiting-answer. The attempt count stays incremented.
func (s *State) Retry() {
	if s.Feedback != FeedbackIncorrect && s.Feedback != FeedbackSolution {
		return
	}
	s.clearFeedback()
}

// RevealSolution ends the current attempt by showing the answer without
// requiring correctness. Local-dataset mode only; the caller supplies
// the canonical content.
func (s *State) RevealSolution(shortForm, explanation string) {
	if !s.AwaitingAnswer() {
		return
	}
	s.ShortForm = shortForm
	s.Explanation = explanation
	s.Feedback = FeedbackSolution
}

// CanRequestHint reports whether a hint request is currently allowed:
// only while awaiting an answer, and not once a learned positive limit
// has been reached. The gate lives here, not in the provider.
func (s *State) CanRequestHint() bool {
	return s.AwaitingAnswer() && !s.Hints.Exhausted()
}

// ApplyHint folds a hint response into the session. The limit is
// re-learned on every response; an empty hint text updates the limit
// without appending anything.
func (s *State) ApplyHint(res HintResult) {
	s.Hints.Limit = res.Limit
	s.Hints.LimitKnown = true
	if res.Text == "" {
		return
	}
	s.Hints.Revealed = append(s.Hints.Revealed, res.Text)
	s.Hints.Cursor++
}

func (s *State) clearFeedback() {
	s.Feedback = FeedbackNone
	s.ShortForm = ""
	s.Explanation = ""
}
