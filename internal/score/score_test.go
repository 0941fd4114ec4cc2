package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStubScorer_matchScoreBounds(t *testing.T) {
	s := StubScorer{}
	for i := 0; i < 1000; i++ {
		got := s.MatchScore()
		assert.GreaterOrEqual(t, got, 50)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestStubScorer_resumeScoreBounds(t *testing.T) {
	s := StubScorer{}
	for i := 0; i < 1000; i++ {
		got, feedback := s.EvaluateResume([]byte("does not matter"))
		assert.GreaterOrEqual(t, got, 60)
		assert.LessOrEqual(t, got, 95)
		assert.Equal(t, ResumeFeedback, feedback)
	}
}
