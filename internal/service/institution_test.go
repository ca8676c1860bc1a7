package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wushufed/tournament-backend/internal/service"
)

func TestInstitutionService(t *testing.T) {
	ctx := context.Background()

	store := newFakeStore()
	institution := store.seedInstitution("shaolin-academy")
	svc := service.NewInstitutionService(&fakeInstitutionStore{store: store})

	t.Run("get", func(t *testing.T) {
		found, err := svc.GetInstitution(ctx, institution.ID)
		require.NoError(t, err)
		assert.Equal(t, institution.Name, found.Name)

		_, err = svc.GetInstitution(ctx, uuid.New())
		assert.ErrorIs(t, err, service.ErrInstitutionNotFound)
	})

	t.Run("search", func(t *testing.T) {
		found, err := svc.SearchInstitutions(ctx, "shaolin-academy")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, institution.ID, found[0].ID)

		none, err := svc.SearchInstitutions(ctx, "no-such-school")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("update", func(t *testing.T) {
		updated, err := svc.UpdateInstitution(ctx, institution.ID, "wudang-school", "office@wudang.example.com")
		require.NoError(t, err)
		assert.Equal(t, "wudang-school", updated.Name)
		assert.Equal(t, "office@wudang.example.com", updated.Contact)

		_, err = svc.UpdateInstitution(ctx, uuid.New(), "x", "y")
		assert.ErrorIs(t, err, service.ErrInstitutionNotFound)
	})
}
