package command_test

import (
	"testing"
	"time"

	"go-hr-manager/internal/command"
	"go-hr-manager/internal/domain"
	"go-hr-manager/internal/repository/memory"
	"go-hr-manager/internal/testutil"
	"go-hr-manager/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typicalModel(t *testing.T) domain.Model {
	t.Helper()
	m, err := memory.NewModelFromData(testutil.TypicalData())
	require.NoError(t, err)
	return m
}

func strPtr(s string) *string { return &s }

func TestScheduleAndCompleteInterview(t *testing.T) {
	m := memory.NewModel()

	_, err := command.AddPosition{Position: domain.NewPosition("HR Manager")}.Execute(m)
	require.NoError(t, err)

	amy := domain.NewCandidate("Amy", "12345", "amy@x.com", "123 Street", nil, "", []string{"HR Manager"})
	_, err = command.AddCandidate{Candidate: amy}.Execute(m)
	require.NoError(t, err)

	_, err = command.AddInterview{
		PositionTitle:  "HR Manager",
		CandidateNames: []string{"Amy"},
		Date:           testutil.Date("01/01/2025"),
		StartTime:      testutil.Clock("0900"),
		Duration:       60 * time.Minute,
	}.Execute(m)
	require.NoError(t, err)

	data := m.Data()
	require.Len(t, data.Positions, 1)
	require.Len(t, data.Candidates, 1)
	require.Len(t, data.Interviews, 1)
	assert.Equal(t, domain.InterviewStatusPending, data.Interviews[0].Status())

	_, err = command.SetInterviewStatus{Index: 1, Status: domain.InterviewStatusCompleted}.Execute(m)
	require.NoError(t, err)

	after := m.Data()
	require.Len(t, after.Interviews, 1)
	assert.Equal(t, domain.InterviewStatusCompleted, after.Interviews[0].Status())
	assert.True(t, after.Interviews[0].IsSame(data.Interviews[0]))
	assert.True(t, domain.HrManagerData{Positions: after.Positions, Candidates: after.Candidates}.
		Equal(domain.HrManagerData{Positions: data.Positions, Candidates: data.Candidates}))

	_, err = command.DeleteCandidate{Index: 1}.Execute(m)
	require.Error(t, err)
	assert.True(t, apperror.IsCommand(err))
	assert.Contains(t, err.Error(), "still scheduled")
	assert.Len(t, m.Data().Candidates, 1)
}

func TestInvalidIndexLeavesModelUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		cmd     command.Command
		message string
	}{
		{"edit candidate", command.EditCandidate{Index: 4, Descriptor: command.EditCandidateDescriptor{Phone: strPtr("999")}}, command.MessageInvalidCandidateIndex},
		{"remark candidate", command.RemarkCandidate{Index: 0, Remark: "x"}, command.MessageInvalidCandidateIndex},
		{"delete candidate", command.DeleteCandidate{Index: -1}, command.MessageInvalidCandidateIndex},
		{"edit position", command.EditPosition{Index: 3, Title: strPtr("Cook")}, command.MessageInvalidPositionIndex},
		{"delete position", command.DeletePosition{Index: 0}, command.MessageInvalidPositionIndex},
		{"edit interview", command.EditInterview{Index: 3, CandidateNames: []string{"Amy Bee"}}, command.MessageInvalidInterviewIndex},
		{"status interview", command.SetInterviewStatus{Index: 3, Status: domain.InterviewStatusCompleted}, command.MessageInvalidInterviewIndex},
		{"delete interview", command.DeleteInterview{Index: 0}, command.MessageInvalidInterviewIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := typicalModel(t)
			before := m.Data()

			_, err := tt.cmd.Execute(m)
			require.Error(t, err)
			assert.True(t, apperror.IsCommand(err))
			assert.Equal(t, tt.message, err.Error())
			assert.True(t, before.Equal(m.Data()))
		})
	}
}

func TestIndexResolvesAgainstFilteredView(t *testing.T) {
	m := typicalModel(t)

	res, err := command.FindCandidate{Keywords: []string{"carl"}}.Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "1 candidates listed!", res.Feedback)

	_, err = command.RemarkCandidate{Index: 1, Remark: "strong portfolio"}.Execute(m)
	require.NoError(t, err)

	carl, ok := m.FindCandidate("carl kurz")
	require.True(t, ok)
	assert.Equal(t, "strong portfolio", carl.Remark)

	_, err = command.RemarkCandidate{Index: 2, Remark: "x"}.Execute(m)
	assert.EqualError(t, err, command.MessageInvalidCandidateIndex)
}

func TestAddCandidate(t *testing.T) {
	m := typicalModel(t)

	t.Run("duplicate by name ignoring case", func(t *testing.T) {
		dup := testutil.Bob()
		dup.Name = "amy bee"
		_, err := command.AddCandidate{Candidate: dup}.Execute(m)
		assert.EqualError(t, err, command.MessageDuplicateCandidate)
	})

	t.Run("unknown position", func(t *testing.T) {
		c := domain.NewCandidate("Dan", "333", "dan@example.com", "street", nil, "", []string{"Chef"})
		_, err := command.AddCandidate{Candidate: c}.Execute(m)
		assert.EqualError(t, err, "Position not found: Chef")
	})

	assert.Len(t, m.Data().Candidates, 3)
}

func TestEditCandidateCascadesIntoInterviews(t *testing.T) {
	m := typicalModel(t)

	res, err := command.EditCandidate{
		Index:      1,
		Descriptor: command.EditCandidateDescriptor{Phone: strPtr("99999999")},
	}.Execute(m)
	require.NoError(t, err)
	assert.Contains(t, res.Feedback, "Edited Candidate: Amy Bee")

	hr := m.InterviewsForPosition(testutil.HRManager())
	require.Len(t, hr, 1)
	assert.Equal(t, "99999999", hr[0].Candidates()[0].Phone)

	_, err = command.EditCandidate{
		Index:      1,
		Descriptor: command.EditCandidateDescriptor{Name: strPtr("bob choo")},
	}.Execute(m)
	assert.EqualError(t, err, command.MessageDuplicateCandidate)
}

func TestDeleteCandidateWithoutInterview(t *testing.T) {
	m := typicalModel(t)
	dan := domain.NewCandidate("Dan", "333", "dan@example.com", "street", nil, "", nil)
	_, err := command.AddCandidate{Candidate: dan}.Execute(m)
	require.NoError(t, err)

	res, err := command.DeleteCandidate{Index: 4}.Execute(m)
	require.NoError(t, err)
	assert.Contains(t, res.Feedback, "Deleted Candidate: Dan")
	assert.Len(t, m.Data().Candidates, 3)
}

func TestPositionCommands(t *testing.T) {
	t.Run("rename carries into candidates and interviews", func(t *testing.T) {
		m := typicalModel(t)
		_, err := command.EditPosition{Index: 1, Title: strPtr("People Lead")}.Execute(m)
		require.NoError(t, err)

		amy, ok := m.FindCandidate("Amy Bee")
		require.True(t, ok)
		assert.Equal(t, []string{"People Lead"}, amy.Positions)

		p, ok := m.FindPosition("People Lead")
		require.True(t, ok)
		assert.Len(t, m.InterviewsForPosition(p), 1)
	})

	t.Run("close position", func(t *testing.T) {
		m := typicalModel(t)
		closed := domain.PositionStatusClosed
		_, err := command.EditPosition{Index: 2, Status: &closed}.Execute(m)
		require.NoError(t, err)

		p, ok := m.FindPosition(testutil.TitleEngineer)
		require.True(t, ok)
		assert.Equal(t, domain.PositionStatusClosed, p.Status)
	})

	t.Run("rename onto existing title", func(t *testing.T) {
		m := typicalModel(t)
		_, err := command.EditPosition{Index: 1, Title: strPtr(testutil.TitleEngineer)}.Execute(m)
		assert.EqualError(t, err, command.MessageDuplicatePosition)
	})

	t.Run("delete scheduled position", func(t *testing.T) {
		m := typicalModel(t)
		_, err := command.DeletePosition{Index: 1}.Execute(m)
		require.Error(t, err)
		assert.True(t, apperror.IsCommand(err))
		assert.Contains(t, err.Error(), "still scheduled")
		assert.Len(t, m.Data().Positions, 2)
	})

	t.Run("delete unscheduled position", func(t *testing.T) {
		m := typicalModel(t)
		_, err := command.AddPosition{Position: domain.NewPosition("Chef")}.Execute(m)
		require.NoError(t, err)
		_, err = command.AddPosition{Position: domain.NewPosition("Chef")}.Execute(m)
		assert.EqualError(t, err, command.MessageDuplicatePosition)

		_, err = command.DeletePosition{Index: 3}.Execute(m)
		require.NoError(t, err)
		assert.Len(t, m.Data().Positions, 2)
	})
}

func TestInterviewCommands(t *testing.T) {
	t.Run("unknown candidate is named", func(t *testing.T) {
		m := typicalModel(t)
		_, err := command.AddInterview{
			PositionTitle:  testutil.TitleHRManager,
			CandidateNames: []string{"Amy Bee", "Zed"},
			Date:           testutil.Date("05/05/2025"),
			StartTime:      testutil.Clock("1000"),
			Duration:       time.Hour,
		}.Execute(m)
		assert.EqualError(t, err, "Candidate not found: Zed")
		assert.Len(t, m.Data().Interviews, 2)
	})

	t.Run("unknown position is named", func(t *testing.T) {
		m := typicalModel(t)
		_, err := command.AddInterview{
			PositionTitle:  "Chef",
			CandidateNames: []string{"Amy Bee"},
			Date:           testutil.Date("05/05/2025"),
			StartTime:      testutil.Clock("1000"),
			Duration:       time.Hour,
		}.Execute(m)
		assert.EqualError(t, err, "Position not found: Chef")
	})

	t.Run("duplicate ignores status", func(t *testing.T) {
		m := typicalModel(t)
		_, err := command.SetInterviewStatus{Index: 1, Status: domain.InterviewStatusCompleted}.Execute(m)
		require.NoError(t, err)

		_, err = command.AddInterview{
			PositionTitle:  testutil.TitleHRManager,
			CandidateNames: []string{"amy bee"},
			Date:           testutil.Date("01/01/2025"),
			StartTime:      testutil.Clock("0900"),
			Duration:       time.Hour,
		}.Execute(m)
		assert.EqualError(t, err, command.MessageDuplicateInterview)
	})

	t.Run("edit merges candidates", func(t *testing.T) {
		m := typicalModel(t)
		_, err := command.EditInterview{Index: 1, CandidateNames: []string{"Carl Kurz", "amy bee"}}.Execute(m)
		require.NoError(t, err)

		ivs := m.InterviewsForPosition(testutil.HRManager())
		require.Len(t, ivs, 1)
		assert.Equal(t, []string{"Amy Bee", "Carl Kurz"}, ivs[0].CandidateNames())
	})

	t.Run("find then delete", func(t *testing.T) {
		m := typicalModel(t)
		res, err := command.FindInterview{Keywords: []string{"carl"}}.Execute(m)
		require.NoError(t, err)
		assert.Equal(t, "1 interviews listed!", res.Feedback)

		_, err = command.DeleteInterview{Index: 1}.Execute(m)
		require.NoError(t, err)
		assert.Empty(t, m.InterviewsForPosition(testutil.Engineer()))

		res, err = command.ListInterview{}.Execute(m)
		require.NoError(t, err)
		assert.Equal(t, command.ListInterviewSuccess, res.Feedback)
		assert.Equal(t, 1, m.FilteredInterviews().Len())
	})
}

func TestMutatesFlag(t *testing.T) {
	mutating := []command.Command{
		command.AddCandidate{}, command.EditCandidate{}, command.RemarkCandidate{}, command.DeleteCandidate{},
		command.AddPosition{}, command.EditPosition{}, command.DeletePosition{},
		command.AddInterview{}, command.EditInterview{}, command.SetInterviewStatus{}, command.DeleteInterview{},
	}
	for _, c := range mutating {
		assert.True(t, c.Mutates(), "%T", c)
	}

	readOnly := []command.Command{
		command.ListCandidate{}, command.FindCandidate{}, command.ListPosition{}, command.FindPosition{},
		command.ListInterview{}, command.FindInterview{}, command.Help{}, command.Exit{},
	}
	for _, c := range readOnly {
		assert.False(t, c.Mutates(), "%T", c)
	}
}

func TestHelpAndExit(t *testing.T) {
	m := memory.NewModel()

	res, err := command.Help{}.Execute(m)
	require.NoError(t, err)
	assert.True(t, res.ShowHelp)
	assert.False(t, res.Exit)

	res, err = command.Exit{}.Execute(m)
	require.NoError(t, err)
	assert.True(t, res.Exit)
	assert.Equal(t, command.MessageExiting, res.Feedback)
}
