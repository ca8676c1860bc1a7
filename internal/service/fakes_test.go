package service_test

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/wushufed/tournament-backend/internal/domain"
	"github.com/wushufed/tournament-backend/internal/repository"
)

// fakeStore is an in-memory stand-in for the repository layer. It returns the
// same sentinel errors the real repositories do so the services' errors.Is
// dispatch is exercised.
type fakeStore struct {
	athletes     map[uuid.UUID]domain.Athlete
	institutions map[uuid.UUID]domain.Institution
	tournaments  map[uuid.UUID]domain.Tournament
	endorsements []domain.Endorsement
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		athletes:     make(map[uuid.UUID]domain.Athlete),
		institutions: make(map[uuid.UUID]domain.Institution),
		tournaments:  make(map[uuid.UUID]domain.Tournament),
	}
}

func (f *fakeStore) Create(ctx context.Context, athlete domain.Athlete) (domain.Athlete, error) {
	athlete.ID = uuid.New()
	athlete.CreatedAt = time.Now()
	f.athletes[athlete.ID] = athlete
	return athlete, nil
}

func (f *fakeStore) FindByID(ctx context.Context, id uuid.UUID) (domain.Athlete, error) {
	athlete, ok := f.athletes[id]
	if !ok {
		return domain.Athlete{}, repository.ErrAthleteNotFound
	}
	return athlete, nil
}

func (f *fakeStore) FindByContact(ctx context.Context, contact string) (domain.Athlete, error) {
	for _, a := range f.athletes {
		if a.Contact == contact {
			return a, nil
		}
	}
	return domain.Athlete{}, repository.ErrAthleteNotFound
}

func (f *fakeStore) Update(ctx context.Context, athlete domain.Athlete) (domain.Athlete, error) {
	if _, ok := f.athletes[athlete.ID]; !ok {
		return domain.Athlete{}, repository.ErrAthleteNotFound
	}
	f.athletes[athlete.ID] = athlete
	return athlete, nil
}

// fakeInstitutionStore splits off the institution methods because their
// signatures collide with the athlete ones.
type fakeInstitutionStore struct {
	store *fakeStore
}

func (f *fakeInstitutionStore) Create(ctx context.Context, institution domain.Institution) (domain.Institution, error) {
	institution.ID = uuid.New()
	institution.CreatedAt = time.Now()
	f.store.institutions[institution.ID] = institution
	return institution, nil
}

func (f *fakeInstitutionStore) FindByID(ctx context.Context, id uuid.UUID) (domain.Institution, error) {
	institution, ok := f.store.institutions[id]
	if !ok {
		return domain.Institution{}, repository.ErrInstitutionNotFound
	}
	return institution, nil
}

func (f *fakeInstitutionStore) FindByContact(ctx context.Context, contact string) (domain.Institution, error) {
	for _, i := range f.store.institutions {
		if i.Contact == contact {
			return i, nil
		}
	}
	return domain.Institution{}, repository.ErrInstitutionNotFound
}

func (f *fakeInstitutionStore) SearchByName(ctx context.Context, name string) ([]domain.Institution, error) {
	var found []domain.Institution
	for _, i := range f.store.institutions {
		if i.Name == name {
			found = append(found, i)
		}
	}
	return found, nil
}

func (f *fakeInstitutionStore) Update(ctx context.Context, institution domain.Institution) (domain.Institution, error) {
	if _, ok := f.store.institutions[institution.ID]; !ok {
		return domain.Institution{}, repository.ErrInstitutionNotFound
	}
	f.store.institutions[institution.ID] = institution
	return institution, nil
}

type fakeTournamentStore struct {
	store *fakeStore
}

func (f *fakeTournamentStore) Create(ctx context.Context, tournament domain.Tournament) (domain.Tournament, error) {
	tournament.ID = uuid.New()
	tournament.Ongoing = true
	tournament.CreatedAt = time.Now()
	f.store.tournaments[tournament.ID] = tournament
	return tournament, nil
}

func (f *fakeTournamentStore) FindByID(ctx context.Context, id uuid.UUID) (domain.Tournament, error) {
	tournament, ok := f.store.tournaments[id]
	if !ok {
		return domain.Tournament{}, repository.ErrTournamentNotFound
	}
	return tournament, nil
}

func (f *fakeTournamentStore) FindAll(ctx context.Context) ([]domain.Tournament, error) {
	var all []domain.Tournament
	for _, t := range f.store.tournaments {
		all = append(all, t)
	}
	return all, nil
}

func (f *fakeTournamentStore) FindOngoing(ctx context.Context) ([]domain.Tournament, error) {
	var ongoing []domain.Tournament
	for _, t := range f.store.tournaments {
		if t.Ongoing {
			ongoing = append(ongoing, t)
		}
	}
	return ongoing, nil
}

func (f *fakeTournamentStore) FindOverdueOngoing(ctx context.Context, before time.Time) ([]domain.Tournament, error) {
	var overdue []domain.Tournament
	for _, t := range f.store.tournaments {
		if t.Ongoing && t.EndDate.Before(before) {
			overdue = append(overdue, t)
		}
	}
	return overdue, nil
}

func (f *fakeTournamentStore) RecordResults(ctx context.Context, id uuid.UUID, results domain.TournamentResults) (domain.Tournament, error) {
	tournament, ok := f.store.tournaments[id]
	if !ok {
		return domain.Tournament{}, repository.ErrTournamentNotFound
	}
	if !tournament.Ongoing {
		return domain.Tournament{}, repository.ErrTournamentFinalized
	}

	tournament.Winner = &results.Winner
	tournament.RunnerUp = &results.RunnerUp
	tournament.WinnerScore = results.WinnerScore
	tournament.RunnerScore = results.RunnerScore
	tournament.Ongoing = false
	f.store.tournaments[id] = tournament

	return tournament, nil
}

type fakeEndorsementStore struct {
	store *fakeStore
}

func (f *fakeEndorsementStore) Create(ctx context.Context, athleteID, institutionID, tournamentID uuid.UUID) (domain.Endorsement, error) {
	endorsement := domain.Endorsement{
		ID:            uuid.New(),
		AthleteID:     athleteID,
		InstitutionID: institutionID,
		TournamentID:  tournamentID,
		CreatedAt:     time.Now(),
	}
	f.store.endorsements = append(f.store.endorsements, endorsement)
	return endorsement, nil
}

func (f *fakeEndorsementStore) FindByID(ctx context.Context, id uuid.UUID) (domain.Endorsement, error) {
	for _, e := range f.store.endorsements {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Endorsement{}, repository.ErrEndorsementNotFound
}

func (f *fakeEndorsementStore) FindPendingByInstitution(ctx context.Context, institutionID uuid.UUID) ([]domain.PendingEndorsement, error) {
	var pending []domain.PendingEndorsement
	for _, e := range f.store.endorsements {
		if e.InstitutionID != institutionID || e.Reviewed {
			continue
		}
		pending = append(pending, domain.PendingEndorsement{
			ID:         e.ID,
			Athlete:    f.store.athletes[e.AthleteID],
			Tournament: f.store.tournaments[e.TournamentID],
		})
	}
	return pending, nil
}

func (f *fakeEndorsementStore) MarkReviewed(ctx context.Context, id uuid.UUID, approve bool) (domain.Endorsement, error) {
	for i, e := range f.store.endorsements {
		if e.ID != id {
			continue
		}
		if e.Reviewed {
			return domain.Endorsement{}, repository.ErrEndorsementReviewed
		}
		e.Reviewed = true
		e.Approved = approve
		f.store.endorsements[i] = e
		return e, nil
	}
	return domain.Endorsement{}, repository.ErrEndorsementNotFound
}

func (f *fakeEndorsementStore) CountApprovedByAthlete(ctx context.Context, athleteID uuid.UUID) (int, error) {
	count := 0
	for _, e := range f.store.endorsements {
		if e.AthleteID == athleteID && e.Approved {
			count++
		}
	}
	return count, nil
}

func (f *fakeEndorsementStore) FindLatestForPair(ctx context.Context, athleteID, tournamentID uuid.UUID) (domain.Endorsement, error) {
	// Creation order doubles as the created_at ordering here.
	for i := len(f.store.endorsements) - 1; i >= 0; i-- {
		e := f.store.endorsements[i]
		if e.AthleteID == athleteID && e.TournamentID == tournamentID {
			return e, nil
		}
	}
	return domain.Endorsement{}, repository.ErrEndorsementNotFound
}

func (f *fakeEndorsementStore) FindApprovedAthletes(ctx context.Context, institutionID uuid.UUID) ([]domain.Athlete, error) {
	seen := make(map[uuid.UUID]bool)
	var athletes []domain.Athlete
	for _, e := range f.store.endorsements {
		if e.InstitutionID != institutionID || !e.Approved {
			continue
		}
		tournament, ok := f.store.tournaments[e.TournamentID]
		if !ok || !tournament.Ongoing {
			continue
		}
		if seen[e.AthleteID] {
			continue
		}
		seen[e.AthleteID] = true
		athletes = append(athletes, f.store.athletes[e.AthleteID])
	}
	return athletes, nil
}

type fakePhotoStorage struct {
	uploads map[string]string
}

func newFakePhotoStorage() *fakePhotoStorage {
	return &fakePhotoStorage{uploads: make(map[string]string)}
}

func (f *fakePhotoStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	f.uploads[key] = contentType
	return fmt.Sprintf("https://media.test/%s", key), nil
}

// seed helpers

func (f *fakeStore) seedAthlete(name string) domain.Athlete {
	athlete := domain.Athlete{
		ID:       uuid.New(),
		Name:     name,
		Age:      25,
		Gender:   "female",
		Division: "senior",
		Contact:  name + "@example.com",
		Password: "$2a$10$fakethisisnotarealdigest",
	}
	f.athletes[athlete.ID] = athlete
	return athlete
}

func (f *fakeStore) seedInstitution(name string) domain.Institution {
	institution := domain.Institution{
		ID:      uuid.New(),
		Name:    name,
		Contact: name + "@example.com",
	}
	f.institutions[institution.ID] = institution
	return institution
}

func (f *fakeStore) seedTournament(name string, ongoing bool) domain.Tournament {
	tournament := domain.Tournament{
		ID:        uuid.New(),
		Name:      name,
		Division:  "senior",
		Stage:     1,
		Location:  "Delhi",
		StartDate: time.Now(),
		EndDate:   time.Now().Add(48 * time.Hour),
		Ongoing:   ongoing,
	}
	f.tournaments[tournament.ID] = tournament
	return tournament
}
