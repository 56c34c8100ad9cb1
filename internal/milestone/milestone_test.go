package milestone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"silentvoices/internal/types"
)

var catalog = []types.Milestone{
	{Day: 1, Title: "Day one"},
	{Day: 7, Title: "One week"},
	{Day: 30, Title: "One month"},
}

func TestDetectFiresOnExactThreshold(t *testing.T) {
	m := DetectIn(catalog, types.RoleAddiction, 6, 7)
	require.NotNil(t, m)
	assert.Equal(t, 7, m.Day)
	assert.Equal(t, "One week", m.Title)
}

func TestDetectSilentBetweenThresholds(t *testing.T) {
	assert.Nil(t, DetectIn(catalog, types.RoleAddiction, 7, 8))
}

func TestDetectFiresAtMostOnce(t *testing.T) {
	// A threshold is only hit by landing exactly on it; re-detecting the
	// same transition is the caller's bug, but staying past it is silent.
	require.NotNil(t, DetectIn(catalog, types.RoleRecovery, 29, 30))
	assert.Nil(t, DetectIn(catalog, types.RoleRecovery, 30, 31))
}

func TestDetectNeverFiresForSupporters(t *testing.T) {
	assert.Nil(t, DetectIn(catalog, types.RoleFamilyFriend, 6, 7))
}

func TestDetectRequiresForwardProgress(t *testing.T) {
	assert.Nil(t, DetectIn(catalog, types.RoleAddiction, 7, 7))
	assert.Nil(t, DetectIn(catalog, types.RoleAddiction, 8, 7))
}

func TestDetectUsesShippedCatalog(t *testing.T) {
	m := Detect(types.RoleAddiction, 0, 1)
	require.NotNil(t, m)
	assert.Equal(t, 1, m.Day)
}

func TestNext(t *testing.T) {
	next, ok := Next(10)
	require.True(t, ok)
	assert.Equal(t, 14, next.Day)

	_, ok = Next(1000)
	assert.False(t, ok)
}
