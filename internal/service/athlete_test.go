package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wushufed/tournament-backend/internal/domain"
	"github.com/wushufed/tournament-backend/internal/service"
)

func newAthleteService(store *fakeStore, photos service.PhotoStorage) *service.AthleteService {
	return service.NewAthleteService(store, &fakeEndorsementStore{store: store}, photos)
}

func TestAthleteService_GetAthlete(t *testing.T) {
	ctx := context.Background()

	store := newFakeStore()
	athlete := store.seedAthlete("li-wei")
	institution := store.seedInstitution("shaolin-academy")
	tournament := store.seedTournament("national-open", true)
	svc := newAthleteService(store, newFakePhotoStorage())

	endorsements := newEndorsementService(store)
	created, err := endorsements.Request(ctx, athlete.ID, institution.ID, tournament.ID)
	require.NoError(t, err)
	_, err = endorsements.Review(ctx, created.ID, true)
	require.NoError(t, err)

	found, err := svc.GetAthlete(ctx, athlete.ID)
	require.NoError(t, err)
	assert.Equal(t, athlete.Name, found.Name)
	assert.Equal(t, 1, found.MatchesPlayed)

	_, err = svc.GetAthlete(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrAthleteNotFound)
}

func TestAthleteService_UpdateAthlete(t *testing.T) {
	ctx := context.Background()

	t.Run("only present fields change", func(t *testing.T) {
		store := newFakeStore()
		athlete := store.seedAthlete("li-wei")
		svc := newAthleteService(store, newFakePhotoStorage())

		newAge := 26
		newDivision := "masters"
		updated, err := svc.UpdateAthlete(ctx, athlete.ID, domain.AthletePatch{
			Age:      &newAge,
			Division: &newDivision,
		})
		require.NoError(t, err)

		assert.Equal(t, 26, updated.Age)
		assert.Equal(t, "masters", updated.Division)
		assert.Equal(t, athlete.Name, updated.Name)
		assert.Equal(t, athlete.Contact, updated.Contact)
	})

	t.Run("password change is rehashed", func(t *testing.T) {
		store := newFakeStore()
		athlete := store.seedAthlete("li-wei")
		svc := newAthleteService(store, newFakePhotoStorage())

		newPassword := "freshsecret1"
		updated, err := svc.UpdateAthlete(ctx, athlete.ID, domain.AthletePatch{
			Password: &newPassword,
		})
		require.NoError(t, err)

		assert.NotEqual(t, newPassword, updated.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte(newPassword)))
	})

	t.Run("unknown athlete", func(t *testing.T) {
		store := newFakeStore()
		svc := newAthleteService(store, newFakePhotoStorage())

		name := "ghost"
		_, err := svc.UpdateAthlete(ctx, uuid.New(), domain.AthletePatch{Name: &name})
		assert.ErrorIs(t, err, service.ErrAthleteNotFound)
	})
}

func TestAthleteService_AttachPhoto(t *testing.T) {
	ctx := context.Background()

	store := newFakeStore()
	athlete := store.seedAthlete("li-wei")
	photos := newFakePhotoStorage()
	svc := newAthleteService(store, photos)

	updated, err := svc.AttachPhoto(ctx, athlete.ID, "headshot.png", "image/png", strings.NewReader("not-really-a-png"))
	require.NoError(t, err)

	assert.Contains(t, updated.PhotoURL, athlete.ID.String())
	assert.Contains(t, updated.PhotoURL, ".png")

	// The stored profile carries the URL too.
	stored, err := store.FindByID(ctx, athlete.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.PhotoURL, stored.PhotoURL)

	require.Len(t, photos.uploads, 1)
	for key, contentType := range photos.uploads {
		assert.Equal(t, "athletes/"+athlete.ID.String()+"/photo.png", key)
		assert.Equal(t, "image/png", contentType)
	}
}
