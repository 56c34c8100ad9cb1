package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"silentvoices/internal/types"
)

func TestDefaultRoutineReturnsFreshCopies(t *testing.T) {
	a := DefaultRoutine()
	b := DefaultRoutine()
	require.Len(t, a, 8)

	a[0].Completed = true
	assert.False(t, b[0].Completed, "catalog copies must not share state")
}

func TestMilestonesAscending(t *testing.T) {
	last := 0
	for _, m := range Milestones {
		assert.Greater(t, m.Day, last, "milestone days must strictly ascend")
		last = m.Day
	}
}

func TestReasonsForRole(t *testing.T) {
	assert.Len(t, ReasonsForRole(types.RoleAddiction), 3)
	assert.Len(t, ReasonsForRole(types.RoleRecovery), 2)
	assert.Len(t, ReasonsForRole(types.RoleFamilyFriend), 2)
}

func TestBaselinesForRole(t *testing.T) {
	spend, hours := BaselinesForRole(types.RoleAddiction)
	assert.Equal(t, 25.0, spend)
	assert.Equal(t, 5.0, hours)

	spend, hours = BaselinesForRole(types.RoleFamilyFriend)
	assert.Zero(t, spend)
	assert.Zero(t, hours)
}

func TestFindLesson(t *testing.T) {
	l, ok := FindLesson("ff_4")
	require.True(t, ok)
	assert.Equal(t, 4, l.Day)

	_, ok = FindLesson("nope")
	assert.False(t, ok)
}

func TestLessonsForRole(t *testing.T) {
	assert.Len(t, LessonsForRole(types.RoleFamilyFriend), 7)
	assert.Nil(t, LessonsForRole(types.RoleAddiction))
}

func TestFindResource(t *testing.T) {
	r, ok := FindResource("lib_10")
	require.True(t, ok)
	assert.Equal(t, ResourceCrisis, r.Category)
	assert.NotEmpty(t, r.Content)

	_, ok = FindResource("lib_99")
	assert.False(t, ok)
}

func TestResourceLibraryGroupedByCategory(t *testing.T) {
	// The list command prints category headers as it walks the catalog,
	// so each category must appear as one contiguous run.
	seen := map[ResourceCategory]bool{}
	var current ResourceCategory
	for _, r := range ResourceLibrary {
		if r.Category != current {
			assert.False(t, seen[r.Category], "category %s appears in two runs", r.Category)
			seen[r.Category] = true
			current = r.Category
		}
		assert.NotEmpty(t, r.ID)
		assert.NotEmpty(t, r.Title)
	}
}

func TestResourceContacts(t *testing.T) {
	require.NotEmpty(t, ResourceContacts)
	for _, c := range ResourceContacts {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Phone)
	}
}

func TestJournalPromptsCoverEveryRole(t *testing.T) {
	for _, role := range []types.Role{types.RoleAddiction, types.RoleRecovery, types.RoleFamilyFriend} {
		assert.NotEmpty(t, JournalPrompts(role), "role %s", role)
	}
}
