package jsonfile_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go-hr-manager/internal/domain"
	"go-hr-manager/internal/storage/jsonfile"
	"go-hr-manager/internal/testutil"
	"go-hr-manager/pkg/apperror"
	"go-hr-manager/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempPaths(t *testing.T) jsonfile.Paths {
	t.Helper()
	dir := t.TempDir()
	return jsonfile.Paths{
		Candidates: filepath.Join(dir, "candidates.json"),
		Positions:  filepath.Join(dir, "positions.json"),
		Interviews: filepath.Join(dir, "interviews.json"),
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const (
	positionsJSON  = `{"positions":[{"title":"HR Manager","status":"OPEN"}]}`
	candidatesJSON = `{"candidates":[{"name":"Amy","phone":"12345","email":"amy@x.com","address":"123 Street","tags":[],"remark":"","positions":["HR Manager"]}]}`
)

func TestSaveThenLoadReproducesData(t *testing.T) {
	ctx := context.Background()
	paths := tempPaths(t)
	data := testutil.TypicalData()
	data.Interviews[1] = data.Interviews[1].WithStatus(domain.InterviewStatusCompleted)

	require.NoError(t, jsonfile.SaveTo(ctx, data, paths))

	loaded, err := jsonfile.LoadFrom(ctx, paths, validation.New())
	require.NoError(t, err)
	assert.True(t, data.Equal(loaded))
}

func TestSaveThenLoadLongestDuration(t *testing.T) {
	ctx := context.Background()
	paths := tempPaths(t)
	data := testutil.TypicalData()
	data.Interviews = []domain.Interview{
		testutil.Interview(testutil.HRManager(), "01/01/2025", "0900", int(validation.MaxDurationMinutes), testutil.Amy()),
	}

	require.NoError(t, jsonfile.SaveTo(ctx, data, paths))

	loaded, err := jsonfile.LoadFrom(ctx, paths, validation.New())
	require.NoError(t, err)
	assert.True(t, data.Equal(loaded))
	assert.Equal(t, int(validation.MaxDurationMinutes), loaded.Interviews[0].DurationMinutes())
}

func TestStorageImplementsHrStorage(t *testing.T) {
	ctx := context.Background()
	store := jsonfile.NewStorage(tempPaths(t), validation.New())

	require.NoError(t, store.Save(ctx, testutil.TypicalData()))
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, testutil.TypicalData().Equal(loaded))
}

func TestSavedInterviewShape(t *testing.T) {
	paths := tempPaths(t)
	require.NoError(t, jsonfile.SaveTo(context.Background(), testutil.TypicalData(), paths))

	b, err := os.ReadFile(paths.Interviews)
	require.NoError(t, err)

	var doc struct {
		Interviews []map[string]any `json:"interviews"`
	}
	require.NoError(t, json.Unmarshal(b, &doc))
	require.Len(t, doc.Interviews, 2)

	first := doc.Interviews[0]
	assert.Equal(t, testutil.TitleHRManager, first["position"])
	assert.Equal(t, []any{"Amy Bee"}, first["candidates"])
	assert.Equal(t, "01/01/2025", first["date"])
	assert.Equal(t, "0900", first["startTime"])
	assert.Equal(t, float64(60), first["duration"])
	assert.Equal(t, "PENDING", first["status"])

	_, err = os.Stat(paths.Interviews + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestLoadMissingFilesStartsEmpty(t *testing.T) {
	data, err := jsonfile.LoadFrom(context.Background(), tempPaths(t), validation.New())
	require.NoError(t, err)
	assert.Empty(t, data.Candidates)
	assert.Empty(t, data.Positions)
	assert.Empty(t, data.Interviews)
}

func TestLoadOnlyPositions(t *testing.T) {
	paths := tempPaths(t)
	writeFile(t, paths.Positions, positionsJSON)

	data, err := jsonfile.LoadFrom(context.Background(), paths, validation.New())
	require.NoError(t, err)
	require.Len(t, data.Positions, 1)
	assert.Equal(t, domain.PositionStatusOpen, data.Positions[0].Status)
	assert.Empty(t, data.Candidates)
}

func TestLoadEmptyStatusMeansPending(t *testing.T) {
	paths := tempPaths(t)
	writeFile(t, paths.Positions, positionsJSON)
	writeFile(t, paths.Candidates, candidatesJSON)
	writeFile(t, paths.Interviews, `{"interviews":[{"position":"HR Manager","candidates":["amy"],"date":"01/01/2025","startTime":"0900","duration":60,"status":""}]}`)

	data, err := jsonfile.LoadFrom(context.Background(), paths, validation.New())
	require.NoError(t, err)
	require.Len(t, data.Interviews, 1)
	assert.Equal(t, domain.InterviewStatusPending, data.Interviews[0].Status())
	assert.Equal(t, []string{"Amy"}, data.Interviews[0].CandidateNames())
}

func TestLoadRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name       string
		candidates string
		interviews string
	}{
		{
			name:       "interview references unknown position",
			candidates: candidatesJSON,
			interviews: `{"interviews":[{"position":"Chef","candidates":["Amy"],"date":"01/01/2025","startTime":"0900","duration":60,"status":"PENDING"}]}`,
		},
		{
			name:       "interview references unknown candidate",
			candidates: candidatesJSON,
			interviews: `{"interviews":[{"position":"HR Manager","candidates":["Zed"],"date":"01/01/2025","startTime":"0900","duration":60,"status":"PENDING"}]}`,
		},
		{
			name:       "bad date",
			candidates: candidatesJSON,
			interviews: `{"interviews":[{"position":"HR Manager","candidates":["Amy"],"date":"2025-01-01","startTime":"0900","duration":60,"status":"PENDING"}]}`,
		},
		{
			name:       "bad status",
			candidates: candidatesJSON,
			interviews: `{"interviews":[{"position":"HR Manager","candidates":["Amy"],"date":"01/01/2025","startTime":"0900","duration":60,"status":"DONE"}]}`,
		},
		{
			name:       "no candidates",
			candidates: candidatesJSON,
			interviews: `{"interviews":[{"position":"HR Manager","candidates":[],"date":"01/01/2025","startTime":"0900","duration":60,"status":"PENDING"}]}`,
		},
		{
			name:       "negative duration",
			candidates: candidatesJSON,
			interviews: `{"interviews":[{"position":"HR Manager","candidates":["Amy"],"date":"01/01/2025","startTime":"0900","duration":-5,"status":"PENDING"}]}`,
		},
		{
			name:       "duration too long to represent",
			candidates: candidatesJSON,
			interviews: `{"interviews":[{"position":"HR Manager","candidates":["Amy"],"date":"01/01/2025","startTime":"0900","duration":307445735,"status":"PENDING"}]}`,
		},
		{
			name:       "duplicate interview",
			candidates: candidatesJSON,
			interviews: `{"interviews":[` +
				`{"position":"HR Manager","candidates":["Amy"],"date":"01/01/2025","startTime":"0900","duration":60,"status":"PENDING"},` +
				`{"position":"HR Manager","candidates":["AMY"],"date":"01/01/2025","startTime":"0900","duration":60,"status":"COMPLETED"}]}`,
		},
		{
			name:       "candidate applied for unknown position",
			candidates: `{"candidates":[{"name":"Amy","phone":"12345","email":"amy@x.com","address":"123 Street","positions":["Chef"]}]}`,
			interviews: `{"interviews":[]}`,
		},
		{
			name:       "duplicate candidate",
			candidates: `{"candidates":[{"name":"Amy","phone":"12345","email":"amy@x.com","address":"a"},{"name":"amy","phone":"999","email":"b@x.com","address":"b"}]}`,
			interviews: `{"interviews":[]}`,
		},
		{
			name:       "invalid phone",
			candidates: `{"candidates":[{"name":"Amy","phone":"12","email":"amy@x.com","address":"a"}]}`,
			interviews: `{"interviews":[]}`,
		},
		{
			name:       "malformed json",
			candidates: candidatesJSON,
			interviews: `{"interviews":[`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths := tempPaths(t)
			writeFile(t, paths.Positions, positionsJSON)
			writeFile(t, paths.Candidates, tt.candidates)
			writeFile(t, paths.Interviews, tt.interviews)

			data, err := jsonfile.LoadFrom(context.Background(), paths, validation.New())
			require.Error(t, err)
			assert.True(t, apperror.IsDataConversion(err), err.Error())
			assert.False(t, apperror.IsIO(err))
			assert.Empty(t, data.Positions)
			assert.Empty(t, data.Candidates)
			assert.Empty(t, data.Interviews)
		})
	}
}

func TestIOFailuresAreDistinct(t *testing.T) {
	ctx := context.Background()

	t.Run("unreadable document", func(t *testing.T) {
		paths := tempPaths(t)
		require.NoError(t, os.Mkdir(paths.Candidates, 0o755))

		_, err := jsonfile.LoadFrom(ctx, paths, validation.New())
		require.Error(t, err)
		assert.True(t, apperror.IsIO(err))
		assert.False(t, apperror.IsDataConversion(err))
	})

	t.Run("unwritable directory", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "file")
		writeFile(t, blocker, "x")
		paths := jsonfile.Paths{
			Candidates: filepath.Join(blocker, "candidates.json"),
			Positions:  filepath.Join(blocker, "positions.json"),
			Interviews: filepath.Join(blocker, "interviews.json"),
		}

		err := jsonfile.SaveTo(ctx, testutil.TypicalData(), paths)
		require.Error(t, err)
		assert.True(t, apperror.IsIO(err))
	})
}

func TestLockFilesSitNextToDocuments(t *testing.T) {
	paths := tempPaths(t)
	require.NoError(t, jsonfile.SaveTo(context.Background(), testutil.TypicalData(), paths))

	for _, p := range []string{paths.Candidates, paths.Positions, paths.Interviews} {
		assert.FileExists(t, p+".lock")
	}
}

func TestLoadFromReadOnlyDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	ctx := context.Background()
	paths := tempPaths(t)
	data := testutil.TypicalData()
	require.NoError(t, jsonfile.SaveTo(ctx, data, paths))

	dir := filepath.Dir(paths.Candidates)
	for _, p := range []string{paths.Candidates, paths.Positions, paths.Interviews} {
		require.NoError(t, os.Remove(p+".lock"))
	}
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	loaded, err := jsonfile.LoadFrom(ctx, paths, validation.New())
	require.NoError(t, err)
	assert.True(t, data.Equal(loaded))
}
