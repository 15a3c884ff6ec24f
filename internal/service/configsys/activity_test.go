package configsys

import (
	"fmt"
	"testing"
	"time"

	"confighub/internal/domain"
	models "confighub/internal/domain/models/configsys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LogActivity_NewestFirst(t *testing.T) {
	env := newTestEnv(t, nil)

	first, err := env.store.LogActivity(models.ActivityUpdateProfile, "first")
	require.NoError(t, err)
	env.clock.Advance(time.Second)
	second, err := env.store.LogActivity(models.ActivityCreatePrompt, "second")
	require.NoError(t, err)

	activity := env.store.RecentActivity(0)
	require.Len(t, activity, 2)
	assert.Equal(t, second.ID, activity[0].ID)
	assert.Equal(t, first.ID, activity[1].ID)
	assert.True(t, activity[0].CreatedAt.After(activity[1].CreatedAt))
}

func TestStore_LogActivity_Validation(t *testing.T) {
	env := newTestEnv(t, nil)

	_, err := env.store.LogActivity("launch_rocket", "nope")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = env.store.LogActivity(models.ActivityUpdateProfile, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Empty(t, env.store.RecentActivity(0))
}

func TestStore_RecentActivity_Limit(t *testing.T) {
	env := newTestEnv(t, nil)
	for i := range 7 {
		_, err := env.store.LogActivity(models.ActivityCreateSnippet, fmt.Sprintf("snippet %d", i))
		require.NoError(t, err)
	}

	recent := env.store.RecentActivity(3)

	require.Len(t, recent, 3)
	assert.Equal(t, "snippet 6", recent[0].Description)
	assert.Len(t, env.store.RecentActivity(0), 7)
	assert.Len(t, env.store.RecentActivity(100), 7)
}

func TestStore_ActivityLimit(t *testing.T) {
	env := newTestEnv(t, nil, WithActivityLimit(3))
	for i := range 5 {
		_, err := env.store.LogActivity(models.ActivityCreateSnippet, fmt.Sprintf("snippet %d", i))
		require.NoError(t, err)
	}

	activity := env.store.RecentActivity(0)

	require.Len(t, activity, 3)
	assert.Equal(t, "snippet 4", activity[0].Description)
	assert.Equal(t, "snippet 2", activity[2].Description)
}

func TestStore_ActivityLimit_ManyWrites(t *testing.T) {
	env := newTestEnv(t, nil, WithActivityLimit(3))
	for i := range 50 {
		_, err := env.store.LogActivity(models.ActivityCreateSnippet, fmt.Sprintf("snippet %d", i))
		require.NoError(t, err)
	}

	activity := env.store.RecentActivity(0)
	require.Len(t, activity, 3)
	assert.Equal(t, "snippet 49", activity[0].Description)
	assert.Equal(t, "snippet 48", activity[1].Description)
	assert.Equal(t, "snippet 47", activity[2].Description)

	activity[0].Description = "changed"
	assert.Equal(t, "snippet 49", env.store.RecentActivity(1)[0].Description)
}
