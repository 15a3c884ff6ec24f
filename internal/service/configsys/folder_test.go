package configsys

import (
	"net/http"
	"testing"

	"confighub/internal/domain"
	models "confighub/internal/domain/models/configsys"
	svc "confighub/internal/domain/services/configsys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddFolder(t *testing.T) {
	env := newTestEnv(t, nil)

	folder, err := env.store.AddFolder(&svc.CreateFolderRequest{
		Name:        "  Production ",
		Icon:        models.IconServer,
		Description: strPtr("live"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, folder.ID)
	assert.Equal(t, "Production", folder.Name)
	assert.Equal(t, models.IconServer, folder.Icon)
	assert.Equal(t, "live", *folder.Description)
	assert.Equal(t, env.clock.Now(), folder.CreatedAt)

	activity := env.store.RecentActivity(1)
	require.Len(t, activity, 1)
	assert.Equal(t, models.ActivityCreateFolder, activity[0].Type)
}

func TestStore_AddFolder_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  svc.CreateFolderRequest
	}{
		{name: "empty name", req: svc.CreateFolderRequest{Name: "", Icon: "folder"}},
		{name: "blank name", req: svc.CreateFolderRequest{Name: "   ", Icon: "folder"}},
		{name: "missing icon", req: svc.CreateFolderRequest{Name: "a"}},
		{name: "unknown icon", req: svc.CreateFolderRequest{Name: "a", Icon: "rocket"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)

			_, err := env.store.AddFolder(&tt.req)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, http.StatusBadRequest, validationErr.StatusCode())
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, env.store.ListFolders())
		})
	}
}

func TestStore_UpdateFolder(t *testing.T) {
	env := newTestEnv(t, nil)
	fid := env.mustFolder(t, "Prod")

	t.Run("merges provided fields only", func(t *testing.T) {
		icon := models.IconCloud
		folder, err := env.store.UpdateFolder(fid, &svc.UpdateFolderRequest{Icon: &icon})
		require.NoError(t, err)

		assert.Equal(t, "Prod", folder.Name)
		assert.Equal(t, models.IconCloud, folder.Icon)
	})

	t.Run("sets and clears description", func(t *testing.T) {
		folder, err := env.store.UpdateFolder(fid, &svc.UpdateFolderRequest{Description: svc.Set("desc")})
		require.NoError(t, err)
		assert.Equal(t, "desc", *folder.Description)

		folder, err = env.store.UpdateFolder(fid, &svc.UpdateFolderRequest{Description: svc.Clear()})
		require.NoError(t, err)
		assert.Nil(t, folder.Description)
	})

	t.Run("unknown id changes nothing", func(t *testing.T) {
		before := env.store.ListFolders()

		_, err := env.store.UpdateFolder("nope", &svc.UpdateFolderRequest{Name: strPtr("x")})

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, before, env.store.ListFolders())
	})

	t.Run("rejects blank rename", func(t *testing.T) {
		_, err := env.store.UpdateFolder(fid, &svc.UpdateFolderRequest{Name: strPtr(" ")})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestStore_DeleteFolder_CascadesConfigs(t *testing.T) {
	env := newTestEnv(t, nil)
	f1 := env.mustFolder(t, "one")
	f2 := env.mustFolder(t, "two")
	env.mustConfig(t, f1, "a.json", "{}")
	keep := env.mustConfig(t, f2, "b.json", "{}")
	env.mustConfig(t, f1, "c.json", "{}")

	require.NoError(t, env.store.DeleteFolder(f1))

	assert.Empty(t, env.store.GetConfigsByFolder(f1))
	for _, cfg := range env.store.ListConfigs() {
		assert.NotEqual(t, f1, cfg.FolderID, "orphaned config %s", cfg.ID)
	}
	configs := env.store.ListConfigs()
	require.Len(t, configs, 1)
	assert.Equal(t, keep, configs[0].ID)

	_, err := env.store.GetFolder(f1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	activity := env.store.RecentActivity(1)
	assert.Equal(t, models.ActivityDeleteFolder, activity[0].Type)
	assert.Contains(t, activity[0].Description, "2 config(s)")
}

func TestStore_DeleteFolder_NotFound(t *testing.T) {
	env := newTestEnv(t, nil)
	fid := env.mustFolder(t, "one")
	env.mustConfig(t, fid, "a.json", "{}")

	err := env.store.DeleteFolder("missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, env.store.ListFolders(), 1)
	assert.Len(t, env.store.ListConfigs(), 1)
}

func TestStore_FolderConfigCounts(t *testing.T) {
	env := newTestEnv(t, nil)
	f1 := env.mustFolder(t, "one")
	f2 := env.mustFolder(t, "two")
	env.mustConfig(t, f1, "a", "")
	env.mustConfig(t, f1, "b", "")

	assert.Equal(t, map[string]int{f1: 2, f2: 0}, env.store.FolderConfigCounts())
}

func TestStore_ReturnedFolderIsACopy(t *testing.T) {
	env := newTestEnv(t, nil)
	folder, err := env.store.AddFolder(&svc.CreateFolderRequest{Name: "a", Icon: "folder", Description: strPtr("orig")})
	require.NoError(t, err)

	*folder.Description = "mutated"
	folder.Name = "mutated"

	stored, err := env.store.GetFolder(folder.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", stored.Name)
	assert.Equal(t, "orig", *stored.Description)
}
