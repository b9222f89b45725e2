package play

import "pronoms/internal/game"

// loadedMsg is the result of the initial load: either a restored or
// freshly fetched session, or an error.
type loadedMsg struct {
	State *game.State
	Err   error
}

// submitResultMsg is the provider's grading of a submitted answer.
type submitResultMsg struct {
	Res *game.SubmitResult
	Err error
}

// hintResultMsg is the provider's response to a hint request.
type hintResultMsg struct {
	Res *game.HintResult
	Err error
}
