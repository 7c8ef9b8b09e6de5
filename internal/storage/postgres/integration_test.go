//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"fitsync/internal/domain"
	"fitsync/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_activities.up.sql"),
			filepath.Join(migrationsPath, "002_create_daily_metrics.up.sql"),
			filepath.Join(migrationsPath, "003_create_ftp_history.up.sql"),
			filepath.Join(migrationsPath, "004_create_service_connections.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM activities")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM daily_metrics")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM ftp_history")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM service_connections")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func testActivity(userID, sourceID string, start time.Time) domain.Activity {
	return domain.Activity{
		UserID:     userID,
		Source:     "strava",
		SourceID:   sourceID,
		Name:       "Ride " + sourceID,
		StartDate:  start,
		MovingTime: 3600,
	}
}

func (s *PostgresIntegrationSuite) TestActivityStore_CreateBatch_SkipsDuplicates() {
	store := NewActivityStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	first := []domain.Activity{
		testActivity("u1", "10", now),
		testActivity("u1", "11", now),
	}
	created, err := store.CreateBatch(s.ctx, first)
	s.NoError(err)
	s.Equal(2, created)

	// second batch overlaps the first on one source id
	second := []domain.Activity{
		testActivity("u1", "11", now),
		testActivity("u1", "12", now),
	}
	created, err = store.CreateBatch(s.ctx, second)
	s.NoError(err)
	s.Equal(1, created)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM activities")
	s.NoError(err)
	s.Equal(3, count)
}

func (s *PostgresIntegrationSuite) TestActivityStore_ExistingSourceIDs() {
	store := NewActivityStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	_, err := store.CreateBatch(s.ctx, []domain.Activity{
		testActivity("u1", "10", now),
		testActivity("u1", "11", now),
	})
	s.NoError(err)

	existing, err := store.ExistingSourceIDs(s.ctx, "strava", []string{"10", "12"})
	s.NoError(err)
	s.Len(existing, 1)
	s.Contains(existing, "10")

	existing, err = store.ExistingSourceIDs(s.ctx, "strava", nil)
	s.NoError(err)
	s.Empty(existing)
}

func (s *PostgresIntegrationSuite) TestActivityStore_UpdateBySourceID() {
	store := NewActivityStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	activity := testActivity("u1", "10", now)
	_, err := store.CreateBatch(s.ctx, []domain.Activity{activity})
	s.NoError(err)

	activity.Name = "Renamed Ride"
	activity.TrainingLoad = utils.Ptr(85)
	err = store.UpdateBySourceID(s.ctx, &activity)
	s.NoError(err)

	var name string
	err = s.db.GetContext(s.ctx, &name, "SELECT name FROM activities WHERE source_id = '10'")
	s.NoError(err)
	s.Equal("Renamed Ride", name)
}

func (s *PostgresIntegrationSuite) TestActivityStore_UpdateMissingRowFails() {
	store := NewActivityStore(s.db)

	missing := testActivity("u1", "404", time.Now())
	err := store.UpdateBySourceID(s.ctx, &missing)
	s.Error(err)
}

func (s *PostgresIntegrationSuite) TestActivityStore_Upsert() {
	store := NewActivityStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	activity := testActivity("u1", "10", now)
	s.NoError(store.Upsert(s.ctx, &activity))

	activity.Name = "Second Pass"
	s.NoError(store.Upsert(s.ctx, &activity))

	var count int
	err := s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM activities WHERE source_id = '10'")
	s.NoError(err)
	s.Equal(1, count)

	var name string
	err = s.db.GetContext(s.ctx, &name, "SELECT name FROM activities WHERE source_id = '10'")
	s.NoError(err)
	s.Equal("Second Pass", name)
}

func (s *PostgresIntegrationSuite) TestActivityStore_DeleteBySourceID() {
	store := NewActivityStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	_, err := store.CreateBatch(s.ctx, []domain.Activity{testActivity("u1", "10", now)})
	s.NoError(err)

	s.NoError(store.DeleteBySourceID(s.ctx, "strava", "10"))

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM activities")
	s.NoError(err)
	s.Equal(0, count)
}

func (s *PostgresIntegrationSuite) TestActivityStore_LoadsInRange() {
	store := NewActivityStore(s.db)
	base := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	inRange := testActivity("u1", "10", base)
	inRange.TrainingLoad = utils.Ptr(80)

	noLoad := testActivity("u1", "11", base.Add(time.Hour))

	outOfRange := testActivity("u1", "12", base.AddDate(0, 0, 30))
	outOfRange.TrainingLoad = utils.Ptr(50)

	_, err := store.CreateBatch(s.ctx, []domain.Activity{inRange, noLoad, outOfRange})
	s.NoError(err)

	loads, err := store.LoadsInRange(s.ctx, "u1", domain.DateRange{
		Start: base.AddDate(0, 0, -1),
		End:   base.AddDate(0, 0, 1),
	})
	s.NoError(err)
	s.Require().Len(loads, 1)
	s.Equal(80.0, loads[0].Load)
	s.WithinDuration(base, loads[0].Date, time.Second)
}

func (s *PostgresIntegrationSuite) TestMetricsStore_CreateBatchAndLatestBefore() {
	store := NewMetricsStore(s.db)

	rows := []domain.DailyMetrics{
		{UserID: "u1", Date: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), Fitness: 10, Fatigue: 20, Form: -10},
		{UserID: "u1", Date: time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC), Fitness: 11, Fatigue: 19, Form: -8, ACWR: utils.Ptr(1.73)},
	}
	created, err := store.CreateBatch(s.ctx, rows)
	s.NoError(err)
	s.Equal(2, created)

	latest, err := store.LatestBefore(s.ctx, "u1", time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC))
	s.NoError(err)
	s.Require().NotNil(latest)
	s.Equal(11.0, latest.Fitness)
	s.Require().NotNil(latest.ACWR)
	s.Equal(1.73, *latest.ACWR)

	// strictly before: the row on the boundary date is excluded
	latest, err = store.LatestBefore(s.ctx, "u1", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	s.NoError(err)
	s.Nil(latest)
}

func (s *PostgresIntegrationSuite) TestMetricsStore_CreateBatchSkipsExistingDays() {
	store := NewMetricsStore(s.db)
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	created, err := store.CreateBatch(s.ctx, []domain.DailyMetrics{{UserID: "u1", Date: day}})
	s.NoError(err)
	s.Equal(1, created)

	created, err = store.CreateBatch(s.ctx, []domain.DailyMetrics{
		{UserID: "u1", Date: day},
		{UserID: "u1", Date: day.AddDate(0, 0, 1)},
	})
	s.NoError(err)
	s.Equal(1, created)
}

func (s *PostgresIntegrationSuite) TestMetricsStore_DatesInRange() {
	store := NewMetricsStore(s.db)

	_, err := store.CreateBatch(s.ctx, []domain.DailyMetrics{
		{UserID: "u1", Date: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{UserID: "u1", Date: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)},
	})
	s.NoError(err)

	dates, err := store.DatesInRange(s.ctx, "u1", domain.DateRange{
		Start: time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	s.NoError(err)
	s.Len(dates, 1)
	s.Contains(dates, "2025-01-10")
}

func (s *PostgresIntegrationSuite) TestMetricsStore_UpdateInsideTransaction() {
	store := NewMetricsStore(s.db)
	tm := NewTransactionManager(s.db)
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	_, err := store.CreateBatch(s.ctx, []domain.DailyMetrics{{UserID: "u1", Date: day, Fitness: 10}})
	s.NoError(err)

	err = tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		return store.Update(ctx, &domain.DailyMetrics{UserID: "u1", Date: day, Fitness: 12.5, Fatigue: 30.1, Form: -17.6})
	})
	s.NoError(err)

	var fitness float64
	err = s.db.GetContext(s.ctx, &fitness, "SELECT fitness FROM daily_metrics WHERE user_id = 'u1'")
	s.NoError(err)
	s.Equal(12.5, fitness)
}

func (s *PostgresIntegrationSuite) TestMetricsStore_UpdateRollsBackWithTransaction() {
	store := NewMetricsStore(s.db)
	tm := NewTransactionManager(s.db)
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	_, err := store.CreateBatch(s.ctx, []domain.DailyMetrics{{UserID: "u1", Date: day, Fitness: 10}})
	s.NoError(err)

	err = tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := store.Update(ctx, &domain.DailyMetrics{UserID: "u1", Date: day, Fitness: 99}); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	var fitness float64
	err = s.db.GetContext(s.ctx, &fitness, "SELECT fitness FROM daily_metrics WHERE user_id = 'u1'")
	s.NoError(err)
	s.Equal(10.0, fitness)
}

func (s *PostgresIntegrationSuite) TestMetricsStore_UsersWithTrainingHistory() {
	activityStore := NewActivityStore(s.db)
	store := NewMetricsStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	withLoad := testActivity("u1", "10", now)
	withLoad.TrainingLoad = utils.Ptr(60)
	withoutLoad := testActivity("u2", "11", now)

	_, err := activityStore.CreateBatch(s.ctx, []domain.Activity{withLoad, withoutLoad})
	s.NoError(err)

	users, err := store.UsersWithTrainingHistory(s.ctx)
	s.NoError(err)
	s.Equal([]string{"u1"}, users)
}

func (s *PostgresIntegrationSuite) TestFTPStore_History() {
	store := NewFTPStore(s.db)

	s.NoError(store.Create(s.ctx, &domain.FTPEntry{
		UserID:        "u1",
		FTP:           240,
		EffectiveFrom: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}))
	s.NoError(store.Create(s.ctx, &domain.FTPEntry{
		UserID:        "u1",
		FTP:           255,
		EffectiveFrom: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}))

	history, err := store.History(s.ctx, "u1")
	s.NoError(err)
	s.Require().Len(history, 2)
	s.Equal(240, history[0].FTP)
	s.Equal(255, history[1].FTP)
}

func (s *PostgresIntegrationSuite) TestConnectionStore_Lifecycle() {
	store := NewConnectionStore(s.db)

	conn := &domain.ServiceConnection{
		UserID:            "u1",
		Provider:          "strava",
		ProviderAccountID: "777",
		AccessToken:       "at",
		RefreshToken:      "rt",
		ExpiresAt:         time.Now().Add(time.Hour).Truncate(time.Microsecond),
	}
	s.NoError(store.Create(s.ctx, conn))

	byProvider, err := store.FindByProvider(s.ctx, "strava")
	s.NoError(err)
	s.Require().Len(byProvider, 1)
	s.Equal("u1", byProvider[0].UserID)

	byUser, err := store.FindByUser(s.ctx, "u1", "strava")
	s.NoError(err)
	s.Equal("777", byUser.ProviderAccountID)

	byAccount, err := store.FindByProviderAccount(s.ctx, "strava", "777")
	s.NoError(err)
	s.Require().NotNil(byAccount)
	s.Equal("u1", byAccount.UserID)

	byAccount.AccessToken = "at2"
	byAccount.RefreshToken = "rt2"
	s.NoError(store.UpdateTokens(s.ctx, byAccount))

	refreshed, err := store.FindByUser(s.ctx, "u1", "strava")
	s.NoError(err)
	s.Equal("at2", refreshed.AccessToken)

	s.NoError(store.DeleteByProviderAccount(s.ctx, "strava", "777"))

	gone, err := store.FindByProviderAccount(s.ctx, "strava", "777")
	s.NoError(err)
	s.Nil(gone)
}

func (s *PostgresIntegrationSuite) TestConnectionStore_UnknownAccountIsNil() {
	store := NewConnectionStore(s.db)

	conn, err := store.FindByProviderAccount(s.ctx, "strava", "nope")
	s.NoError(err)
	s.Nil(conn)
}
