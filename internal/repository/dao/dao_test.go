package dao_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wushufed/tournament-backend/internal/repository/dao"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not construct docker pool: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		log.Fatalf("could not connect to docker: %v", err)
	}

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_USER=test",
		"POSTGRES_PASSWORD=test",
		"POSTGRES_DB=tournaments_test",
	})
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	dsn := fmt.Sprintf(
		"host=localhost port=%s user=test password=test dbname=tournaments_test sslmode=disable",
		resource.GetPort("5432/tcp"),
	)

	if err = pool.Retry(func() error {
		testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return err
		}

		sqlDB, err := testDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}); err != nil {
		log.Fatalf("could not connect to postgres container: %v", err)
	}

	if err = dao.InitTables(testDB); err != nil {
		log.Fatalf("could not migrate tables: %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Fatalf("could not purge postgres container: %v", err)
	}

	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Helper()
	err := testDB.Exec("TRUNCATE endorsements, athletes, institutions, tournaments CASCADE").Error
	require.NoError(t, err)
}

func insertAthlete(t *testing.T, contact string) dao.Athlete {
	t.Helper()
	athlete, err := dao.NewAthleteDAO(testDB).Insert(context.Background(), dao.Athlete{
		ID:       uuid.New(),
		Name:     "li-wei",
		Age:      22,
		Gender:   "female",
		Division: "senior",
		Contact:  contact,
		Password: "hashed",
	})
	require.NoError(t, err)
	return athlete
}

func insertInstitution(t *testing.T, contact string) dao.Institution {
	t.Helper()
	institution, err := dao.NewInstitutionDAO(testDB).Insert(context.Background(), dao.Institution{
		ID:       uuid.New(),
		Name:     "shaolin-academy",
		Contact:  contact,
		Password: "hashed",
	})
	require.NoError(t, err)
	return institution
}

func insertTournament(t *testing.T, name string, ongoing bool) dao.Tournament {
	t.Helper()
	tournament, err := dao.NewTournamentDAO(testDB).Insert(context.Background(), dao.Tournament{
		ID:        uuid.New(),
		Name:      name,
		Slug:      name,
		Division:  "senior",
		Stage:     1,
		Location:  "Delhi",
		StartDate: time.Now(),
		EndDate:   time.Now().Add(48 * time.Hour),
		Ongoing:   ongoing,
	})
	require.NoError(t, err)
	return tournament
}

func TestAthleteDAO_UniqueContact(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	d := dao.NewAthleteDAO(testDB)

	insertAthlete(t, "li-wei@example.com")

	_, err := d.Insert(ctx, dao.Athlete{
		ID:       uuid.New(),
		Name:     "someone-else",
		Contact:  "li-wei@example.com",
		Password: "hashed",
	})
	assert.ErrorIs(t, err, dao.ErrAthleteContactExists)
}

func TestAthleteDAO_FindByContact(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	d := dao.NewAthleteDAO(testDB)

	inserted := insertAthlete(t, "li-wei@example.com")

	found, err := d.FindByContact(ctx, "li-wei@example.com")
	require.NoError(t, err)
	assert.Equal(t, inserted.ID, found.ID)

	_, err = d.FindByContact(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, dao.ErrAthleteNotFound)

	_, err = d.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, dao.ErrAthleteNotFound)
}

func TestInstitutionDAO_SearchByName(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	d := dao.NewInstitutionDAO(testDB)

	inserted := insertInstitution(t, "office@shaolin.example.com")

	found, err := d.SearchByName(ctx, "SHAOLIN")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, inserted.ID, found[0].ID)

	none, err := d.SearchByName(ctx, "wudang")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTournamentDAO_RecordResults(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	d := dao.NewTournamentDAO(testDB)

	tournament := insertTournament(t, "national-open", true)

	finalized, err := d.RecordResults(ctx, tournament.ID, "li-wei", "chen-mei", 9, 7)
	require.NoError(t, err)
	assert.False(t, finalized.Ongoing)
	require.NotNil(t, finalized.Winner)
	assert.Equal(t, "li-wei", *finalized.Winner)
	assert.Equal(t, 9, finalized.WinnerScore)

	// The conditional update no longer matches, recorded results survive.
	_, err = d.RecordResults(ctx, tournament.ID, "someone-else", "li-wei", 1, 0)
	assert.ErrorIs(t, err, dao.ErrTournamentFinalized)

	stored, err := d.FindByID(ctx, tournament.ID)
	require.NoError(t, err)
	assert.Equal(t, "li-wei", *stored.Winner)

	_, err = d.RecordResults(ctx, uuid.New(), "x", "y", 0, 0)
	assert.ErrorIs(t, err, dao.ErrTournamentNotFound)
}

func TestTournamentDAO_FindOverdueOngoing(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	d := dao.NewTournamentDAO(testDB)

	overdue, err := d.Insert(ctx, dao.Tournament{
		ID:        uuid.New(),
		Name:      "stale-open",
		Division:  "senior",
		Stage:     1,
		Location:  "Delhi",
		StartDate: time.Now().Add(-96 * time.Hour),
		EndDate:   time.Now().Add(-48 * time.Hour),
		Ongoing:   true,
	})
	require.NoError(t, err)
	insertTournament(t, "current-open", true)

	found, err := d.FindOverdueOngoing(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, overdue.ID, found[0].ID)
}

func TestEndorsementDAO_MarkReviewed(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	d := dao.NewEndorsementDAO(testDB)

	athlete := insertAthlete(t, "li-wei@example.com")
	institution := insertInstitution(t, "office@shaolin.example.com")
	tournament := insertTournament(t, "national-open", true)

	endorsement, err := d.Insert(ctx, dao.Endorsement{
		ID:            uuid.New(),
		AthleteID:     athlete.ID,
		InstitutionID: institution.ID,
		TournamentID:  tournament.ID,
	})
	require.NoError(t, err)
	assert.False(t, endorsement.Reviewed)

	reviewed, err := d.MarkReviewed(ctx, endorsement.ID, true)
	require.NoError(t, err)
	assert.True(t, reviewed.Reviewed)
	assert.True(t, reviewed.Approved)

	// The conditional update only matches unreviewed rows.
	_, err = d.MarkReviewed(ctx, endorsement.ID, false)
	assert.ErrorIs(t, err, dao.ErrEndorsementReviewed)

	stored, err := d.FindByID(ctx, endorsement.ID)
	require.NoError(t, err)
	assert.True(t, stored.Approved)

	_, err = d.MarkReviewed(ctx, uuid.New(), true)
	assert.ErrorIs(t, err, dao.ErrEndorsementNotFound)
}

func TestEndorsementDAO_FindLatestForPair(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	d := dao.NewEndorsementDAO(testDB)

	athlete := insertAthlete(t, "li-wei@example.com")
	institution := insertInstitution(t, "office@shaolin.example.com")
	tournament := insertTournament(t, "national-open", true)

	base := time.Now().Add(-time.Hour)
	older, err := d.Insert(ctx, dao.Endorsement{
		ID:            uuid.New(),
		AthleteID:     athlete.ID,
		InstitutionID: institution.ID,
		TournamentID:  tournament.ID,
		CreatedAt:     base,
	})
	require.NoError(t, err)
	newer, err := d.Insert(ctx, dao.Endorsement{
		ID:            uuid.New(),
		AthleteID:     athlete.ID,
		InstitutionID: institution.ID,
		TournamentID:  tournament.ID,
		CreatedAt:     base.Add(time.Minute),
	})
	require.NoError(t, err)

	_, err = d.MarkReviewed(ctx, older.ID, true)
	require.NoError(t, err)
	_, err = d.MarkReviewed(ctx, newer.ID, false)
	require.NoError(t, err)

	latest, err := d.FindLatestForPair(ctx, athlete.ID, tournament.ID)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, latest.ID)
	assert.True(t, latest.Reviewed)
	assert.False(t, latest.Approved)

	_, err = d.FindLatestForPair(ctx, athlete.ID, uuid.New())
	assert.ErrorIs(t, err, dao.ErrEndorsementNotFound)
}

func TestEndorsementDAO_FindPendingByInstitution(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	d := dao.NewEndorsementDAO(testDB)

	athlete := insertAthlete(t, "li-wei@example.com")
	institution := insertInstitution(t, "office@shaolin.example.com")
	tournament := insertTournament(t, "national-open", true)

	pending, err := d.Insert(ctx, dao.Endorsement{
		ID:            uuid.New(),
		AthleteID:     athlete.ID,
		InstitutionID: institution.ID,
		TournamentID:  tournament.ID,
	})
	require.NoError(t, err)

	settled, err := d.Insert(ctx, dao.Endorsement{
		ID:            uuid.New(),
		AthleteID:     athlete.ID,
		InstitutionID: institution.ID,
		TournamentID:  tournament.ID,
	})
	require.NoError(t, err)
	_, err = d.MarkReviewed(ctx, settled.ID, true)
	require.NoError(t, err)

	found, err := d.FindPendingByInstitution(ctx, institution.ID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, pending.ID, found[0].ID)
	assert.Equal(t, athlete.Name, found[0].Athlete.Name)
	assert.Equal(t, tournament.Name, found[0].Tournament.Name)
}

func TestEndorsementDAO_FindApprovedAthletes(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	d := dao.NewEndorsementDAO(testDB)

	athlete := insertAthlete(t, "li-wei@example.com")
	institution := insertInstitution(t, "office@shaolin.example.com")
	ongoing := insertTournament(t, "national-open", true)
	archived := insertTournament(t, "last-season", false)

	// Two approvals in the ongoing tournament, the roster stays distinct.
	for range [2]struct{}{} {
		endorsement, err := d.Insert(ctx, dao.Endorsement{
			ID:            uuid.New(),
			AthleteID:     athlete.ID,
			InstitutionID: institution.ID,
			TournamentID:  ongoing.ID,
		})
		require.NoError(t, err)
		_, err = d.MarkReviewed(ctx, endorsement.ID, true)
		require.NoError(t, err)
	}

	inArchived, err := d.Insert(ctx, dao.Endorsement{
		ID:            uuid.New(),
		AthleteID:     athlete.ID,
		InstitutionID: institution.ID,
		TournamentID:  archived.ID,
	})
	require.NoError(t, err)
	_, err = d.MarkReviewed(ctx, inArchived.ID, true)
	require.NoError(t, err)

	roster, err := d.FindApprovedAthletes(ctx, institution.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, athlete.ID, roster[0].ID)

	count, err := d.CountApprovedByAthlete(ctx, athlete.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
