package domain_test

import (
	"testing"

	"go-hr-manager/internal/domain"
	"go-hr-manager/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestIsSameCandidate(t *testing.T) {
	amy := testutil.Amy()

	sameName := testutil.Bob()
	sameName.Name = "amy bee"
	assert.True(t, amy.IsSameCandidate(sameName))
	assert.False(t, amy.Equal(sameName))

	assert.False(t, amy.IsSameCandidate(testutil.Bob()))
}

func TestCandidateEqual(t *testing.T) {
	a := domain.NewCandidate("Amy", "123", "a@b.com", "street", []string{"b", "a", "a"}, "", []string{"HR"})
	b := domain.NewCandidate("Amy", "123", "a@b.com", "street", []string{"a", "b"}, "", []string{"HR"})
	assert.True(t, a.Equal(b))
	assert.Equal(t, []string{"a", "b"}, a.Tags)

	b.Remark = "note"
	assert.False(t, a.Equal(b))
}

func TestCandidatePositions(t *testing.T) {
	carl := testutil.Carl()

	without := carl.WithoutPosition(testutil.TitleHRManager)
	assert.Equal(t, []string{testutil.TitleEngineer}, without.Positions)
	assert.True(t, carl.HasAppliedFor(testutil.TitleHRManager))

	renamed := carl.WithPositionRenamed(testutil.TitleHRManager, "Head of HR")
	assert.Equal(t, []string{"Head of HR", testutil.TitleEngineer}, renamed.Positions)
}

func TestPositionStatus(t *testing.T) {
	s, ok := domain.ParsePositionStatus("closed")
	assert.True(t, ok)
	assert.Equal(t, domain.PositionStatusClosed, s)

	s, ok = domain.ParsePositionStatus("")
	assert.True(t, ok)
	assert.Equal(t, domain.PositionStatusOpen, s)

	_, ok = domain.ParsePositionStatus("filled")
	assert.False(t, ok)
}

func TestPredicates(t *testing.T) {
	assert.True(t, domain.CandidateNameContains([]string{"BEE"})(testutil.Amy()))
	assert.False(t, domain.CandidateNameContains([]string{"zed"})(testutil.Amy()))
	assert.True(t, domain.PositionTitleContains([]string{"manager"})(testutil.HRManager()))

	iv := testutil.Interview(testutil.Engineer(), "01/01/2025", "0900", 60, testutil.Bob())
	assert.True(t, domain.InterviewContains([]string{"software"})(iv))
	assert.True(t, domain.InterviewContains([]string{"choo"})(iv))
	assert.False(t, domain.InterviewContains([]string{"amy"})(iv))
}
