package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"silentvoices/internal/content"
	"silentvoices/internal/types"
)

func openTestStore(t *testing.T) *RecordStore {
	t.Helper()
	s, err := Open(":memory:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadAllRecords(t *testing.T) {
	s := openTestStore(t)

	joined := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	profile := types.UserProfile{
		ID:              "u1",
		Name:            "Sam",
		Role:            types.RoleAddiction,
		JoinDate:        joined,
		TotalSoberDays:  12,
		ResilienceScore: 80,
		CurrentStatus:   types.StatusGreen,
		RiskLevel:       types.RiskLow,
	}
	checkIns := []types.CheckIn{
		{ID: "c2", CreatedAt: joined.Add(48 * time.Hour), Mood: 7},
		{ID: "c1", CreatedAt: joined.Add(24 * time.Hour), Mood: 5},
	}
	journals := []types.JournalEntry{
		{ID: "j1", CreatedAt: joined.Add(30 * time.Hour), Content: "one day at a time"},
	}
	routine := content.DefaultRoutine()
	routine[0].Completed = true

	require.NoError(t, s.Save(RecordProfile, profile))
	require.NoError(t, s.Save(RecordCheckIns, checkIns))
	require.NoError(t, s.Save(RecordJournals, journals))
	require.NoError(t, s.Save(RecordRoutine, routine))

	snap := s.Load()
	require.NotNil(t, snap.Profile)
	assert.Equal(t, profile, *snap.Profile)
	assert.Equal(t, checkIns, snap.CheckIns)
	assert.Equal(t, journals, snap.Journals)
	assert.Equal(t, routine, snap.Routine)
}

func TestLoadEmptyStore(t *testing.T) {
	s := openTestStore(t)

	snap := s.Load()
	assert.Nil(t, snap.Profile)
	assert.Nil(t, snap.Routine)
	assert.Nil(t, snap.CheckIns)
	assert.Nil(t, snap.Journals)
}

func TestAbsentRecordLeavesOthersIntact(t *testing.T) {
	s := openTestStore(t)

	profile := types.UserProfile{ID: "u1", Name: "Sam", Role: types.RoleRecovery,
		JoinDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, s.Save(RecordProfile, profile))

	snap := s.Load()
	require.NotNil(t, snap.Profile)
	assert.Equal(t, "Sam", snap.Profile.Name)
	assert.Nil(t, snap.Routine)
	assert.Nil(t, snap.CheckIns)
}

func TestCorruptRecordTreatedAsAbsent(t *testing.T) {
	s := openTestStore(t)

	profile := types.UserProfile{ID: "u1", Name: "Sam", Role: types.RoleRecovery,
		JoinDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, s.Save(RecordProfile, profile))
	require.NoError(t, s.Save(RecordRoutine, content.DefaultRoutine()))

	_, err := s.db.Exec(`UPDATE records SET value = ? WHERE key = ?`, "{not json", RecordProfile)
	require.NoError(t, err)

	snap := s.Load()
	assert.Nil(t, snap.Profile, "corrupt record should read as absent")
	assert.NotNil(t, snap.Routine, "other records unaffected")
}

func TestSaveReplacesWholeRecord(t *testing.T) {
	s := openTestStore(t)

	first := []types.CheckIn{{ID: "c1", Mood: 5}, {ID: "c2", Mood: 6}}
	require.NoError(t, s.Save(RecordCheckIns, first))

	second := []types.CheckIn{{ID: "c3", Mood: 9}}
	require.NoError(t, s.Save(RecordCheckIns, second))

	snap := s.Load()
	require.Len(t, snap.CheckIns, 1)
	assert.Equal(t, "c3", snap.CheckIns[0].ID)
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Save(RecordRoutine, content.DefaultRoutine()))
	require.NoError(t, s.Delete(RecordRoutine))

	snap := s.Load()
	assert.Nil(t, snap.Routine)

	assert.NoError(t, s.Delete("never-existed"))
}
