package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-hr-manager/internal/command"
	"go-hr-manager/internal/domain"
	"go-hr-manager/internal/repository/memory"
	"go-hr-manager/internal/storage/jsonfile"
	"go-hr-manager/internal/testutil"
	"go-hr-manager/internal/usecase"
	"go-hr-manager/pkg/apperror"
	"go-hr-manager/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock storage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Load(ctx context.Context) (domain.HrManagerData, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.HrManagerData), args.Error(1)
}

func (m *MockStorage) Save(ctx context.Context, data domain.HrManagerData) error {
	return m.Called(ctx, data).Error(0)
}

func newLogic(t *testing.T, model domain.Model, storage domain.HrStorage) domain.LogicUsecase {
	t.Helper()
	return usecase.NewLogicUsecase(model, storage, validation.New(), nil)
}

func TestExecuteScenario(t *testing.T) {
	ctx := context.Background()
	store := new(MockStorage)
	store.On("Save", mock.Anything, mock.AnythingOfType("domain.HrManagerData")).Return(nil)

	model := memory.NewModel()
	logic := newLogic(t, model, store)

	for _, line := range []string{
		"add_p pos/HR Manager",
		"add_c n/Amy p/12345 e/amy@x.com a/123 Street pos/HR Manager",
		"add_i pos/HR Manager c/Amy d/01/01/2025 t/0900 dur/60",
	} {
		_, err := logic.Execute(ctx, line)
		require.NoError(t, err, line)
	}

	assert.Equal(t, 1, logic.FilteredPositions().Len())
	assert.Equal(t, 1, logic.FilteredCandidates().Len())
	require.Equal(t, 1, logic.FilteredInterviews().Len())
	iv, _ := logic.FilteredInterviews().Get(0)
	assert.Equal(t, domain.InterviewStatusPending, iv.Status())

	_, err := logic.Execute(ctx, "status_i 1 s/COMPLETED")
	require.NoError(t, err)
	completed, _ := logic.FilteredInterviews().Get(0)
	assert.Equal(t, domain.InterviewStatusCompleted, completed.Status())
	assert.True(t, completed.IsSame(iv))

	_, err = logic.Execute(ctx, "delete_c 1")
	require.Error(t, err)
	assert.True(t, apperror.IsCommand(err))
	assert.Contains(t, err.Error(), "still scheduled")

	// Four successful mutations, each saved once.
	store.AssertNumberOfCalls(t, "Save", 4)
}

func TestExecuteReadOnlyCommandsDoNotSave(t *testing.T) {
	store := new(MockStorage)
	model, err := memory.NewModelFromData(testutil.TypicalData())
	require.NoError(t, err)
	logic := newLogic(t, model, store)

	res, err := logic.Execute(context.Background(), "find_c amy")
	require.NoError(t, err)
	assert.Equal(t, "1 candidates listed!", res.Feedback)
	assert.Equal(t, 1, logic.FilteredCandidates().Len())

	res, err = logic.Execute(context.Background(), "list_c")
	require.NoError(t, err)
	assert.Equal(t, command.ListCandidateSuccess, res.Feedback)
	assert.Equal(t, 3, logic.FilteredCandidates().Len())

	res, err = logic.Execute(context.Background(), "help")
	require.NoError(t, err)
	assert.True(t, res.ShowHelp)

	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestExecuteErrorKinds(t *testing.T) {
	store := new(MockStorage)
	model, err := memory.NewModelFromData(testutil.TypicalData())
	require.NoError(t, err)
	logic := newLogic(t, model, store)
	ctx := context.Background()

	_, err = logic.Execute(ctx, "fly_c 1")
	require.Error(t, err)
	assert.True(t, apperror.IsParse(err))
	assert.Equal(t, command.MessageUnknownCommand, err.Error())

	_, err = logic.Execute(ctx, "delete_c 0")
	require.Error(t, err)
	assert.True(t, apperror.IsCommand(err))
	assert.Equal(t, command.MessageInvalidCandidateIndex, err.Error())

	_, err = logic.Execute(ctx, "delete_c 4")
	require.Error(t, err)
	assert.Equal(t, command.MessageInvalidCandidateIndex, err.Error())

	_, err = logic.Execute(ctx, "add_c n/Amy p/12a e/amy@x.com a/1 pos/HR Manager")
	require.Error(t, err)
	assert.True(t, apperror.IsParse(err))

	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	assert.True(t, testutil.TypicalData().Equal(model.Data()))
}

func TestExecuteSaveFailureKeepsMutation(t *testing.T) {
	store := new(MockStorage)
	ioErr := apperror.IO("Could not write positions.json", errors.New("disk full"))
	store.On("Save", mock.Anything, mock.Anything).Return(ioErr)

	model := memory.NewModel()
	logic := newLogic(t, model, store)

	_, err := logic.Execute(context.Background(), "add_p pos/Chef")
	require.Error(t, err)
	assert.True(t, apperror.IsCommand(err))
	assert.True(t, apperror.IsIO(err))
	assert.ErrorIs(t, err, ioErr)
	assert.Equal(t, usecase.MessageSaveFailed+ioErr.Error(), err.Error())

	// The in-memory change is not rolled back.
	_, ok := model.FindPosition("Chef")
	assert.True(t, ok)
	store.AssertExpectations(t)
}

func TestSavedModelReloadsEqual(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := jsonfile.NewStorage(jsonfile.Paths{
		Candidates: dir + "/candidates.json",
		Positions:  dir + "/positions.json",
		Interviews: dir + "/interviews.json",
	}, validation.New())

	model := memory.NewModel()
	logic := newLogic(t, model, store)
	for _, line := range []string{
		"add_p pos/HR Manager",
		"add_p pos/Software Engineer",
		"add_c n/Amy p/12345 e/amy@x.com a/123 Street pos/HR Manager tag/friends",
		"add_c n/Bob p/67890 e/bob@x.com a/456 Street pos/Software Engineer pos/HR Manager r/good fit",
		"add_i pos/HR Manager c/Amy c/Bob d/01/01/2025 t/0900 dur/60",
		"add_i pos/Software Engineer c/Bob d/03/01/2025 t/1330 dur/45",
		"status_i 2 s/COMPLETED",
	} {
		_, err := logic.Execute(ctx, line)
		require.NoError(t, err, line)
	}

	reloaded, err := usecase.LoadModel(ctx, store, nil)
	require.NoError(t, err)
	assert.True(t, model.Data().Equal(reloaded.Data()))
}

func TestLoadModel(t *testing.T) {
	ctx := context.Background()

	t.Run("typical data", func(t *testing.T) {
		store := new(MockStorage)
		store.On("Load", mock.Anything).Return(testutil.TypicalData(), nil)

		model, err := usecase.LoadModel(ctx, store, nil)
		require.NoError(t, err)
		assert.True(t, testutil.TypicalData().Equal(model.Data()))
	})

	t.Run("data conversion starts empty", func(t *testing.T) {
		store := new(MockStorage)
		store.On("Load", mock.Anything).Return(domain.HrManagerData{}, apperror.DataConversion("interview 1", domain.ErrDanglingReference))

		model, err := usecase.LoadModel(ctx, store, nil)
		require.Error(t, err)
		assert.True(t, apperror.IsDataConversion(err))
		require.NotNil(t, model)
		assert.Empty(t, model.Data().Interviews)
	})

	t.Run("io failure gives no model", func(t *testing.T) {
		store := new(MockStorage)
		store.On("Load", mock.Anything).Return(domain.HrManagerData{}, apperror.IO("Could not read", errors.New("permission denied")))

		model, err := usecase.LoadModel(ctx, store, nil)
		require.Error(t, err)
		assert.True(t, apperror.IsIO(err))
		assert.Nil(t, model)
	})
}
