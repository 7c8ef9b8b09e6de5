package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"fitsync/internal/domain"
)

type ActivityStore interface {
	ExistingSourceIDs(ctx context.Context, source string, ids []string) (map[string]struct{}, error)
	CreateBatch(ctx context.Context, activities []domain.Activity) (int, error)
	UpdateBySourceID(ctx context.Context, activity *domain.Activity) error
	Upsert(ctx context.Context, activity *domain.Activity) error
	DeleteBySourceID(ctx context.Context, source, sourceID string) error
	LoadsInRange(ctx context.Context, userID string, rng domain.DateRange) ([]domain.DatedLoad, error)
}

type MetricsStore interface {
	LatestBefore(ctx context.Context, userID string, date time.Time) (*domain.DailyMetrics, error)
	DatesInRange(ctx context.Context, userID string, rng domain.DateRange) (map[string]struct{}, error)
	CreateBatch(ctx context.Context, metrics []domain.DailyMetrics) (int, error)
	Update(ctx context.Context, metric *domain.DailyMetrics) error
	UsersWithTrainingHistory(ctx context.Context) ([]string, error)
}

type FTPStore interface {
	History(ctx context.Context, userID string) ([]domain.FTPEntry, error)
}

type ConnectionStore interface {
	FindByProvider(ctx context.Context, provider string) ([]domain.ServiceConnection, error)
	FindByProviderAccount(ctx context.Context, provider, accountID string) (*domain.ServiceConnection, error)
	DeleteByProviderAccount(ctx context.Context, provider, accountID string) error
}

type Source interface {
	Provider() string
	ListActivities(ctx context.Context, userID string, after, before time.Time) ([]domain.Activity, error)
	FetchStreams(ctx context.Context, userID string, ids []string) (*domain.StreamReport, error)
	GetActivity(ctx context.Context, userID, sourceID string) (*domain.Activity, error)
}

type Publisher interface {
	Publish(ctx context.Context, activity *domain.Activity, action string) error
	Close() error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
