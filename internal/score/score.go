// Package score isolates the evaluation stubs behind one interface so a
// real scoring model can replace them without touching the handlers.
package score

import "math/rand"

// ResumeFeedback is the canned feedback attached to every uploaded resume
// until a real evaluation pipeline exists.
const ResumeFeedback = "Add more technical details and soft skills."

// Scorer produces placeholder evaluation results.
type Scorer interface {
	// MatchScore returns the match score assigned to a new application.
	MatchScore() int
	// EvaluateResume returns the score and feedback for an uploaded resume.
	EvaluateResume(content []byte) (int, string)
}

// StubScorer returns random but plausible-looking scores.
type StubScorer struct{}

// MatchScore returns a random integer in [50, 100].
func (StubScorer) MatchScore() int {
	return rand.Intn(51) + 50
}

// EvaluateResume returns a random score in [60, 95] and the canned feedback.
// The content is ignored until a real scorer replaces this stub.
func (StubScorer) EvaluateResume(_ []byte) (int, string) {
	return rand.Intn(36) + 60, ResumeFeedback
}
