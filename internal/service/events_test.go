package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"fitsync/internal/config"
	"fitsync/internal/domain"
	"fitsync/internal/service/mocks"
)

type EventHandlerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source      *mocks.MockSource
	activities  *mocks.MockActivityStore
	ftps        *mocks.MockFTPStore
	connections *mocks.MockConnectionStore

	handler *EventHandler
}

func (s *EventHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockSource(s.ctrl)
	s.activities = mocks.NewMockActivityStore(s.ctrl)
	s.ftps = mocks.NewMockFTPStore(s.ctrl)
	s.connections = mocks.NewMockConnectionStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.source.EXPECT().Provider().Return("strava").AnyTimes()

	syncer := NewActivitySyncer(
		s.source,
		s.activities,
		s.ftps,
		s.connections,
		nil, // events are not republished
		logger,
		config.SyncConfig{RetryAttempts: 1, RetryDelay: time.Millisecond},
	)

	s.handler = NewEventHandler(syncer, s.activities, s.connections, "strava", logger)
}

func (s *EventHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestEventHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}

func (s *EventHandlerTestSuite) TestHandle_ActivityCreateTriggersTargetedSync() {
	ctx := context.Background()
	activity := &domain.Activity{UserID: "u1", Source: "strava", SourceID: "12345"}

	s.connections.EXPECT().FindByProviderAccount(ctx, "strava", "777").
		Return(&domain.ServiceConnection{UserID: "u1", Provider: "strava", ProviderAccountID: "777"}, nil)

	s.source.EXPECT().GetActivity(ctx, "u1", "12345").Return(activity, nil)
	s.ftps.EXPECT().History(ctx, "u1").Return(nil, nil)
	s.source.EXPECT().FetchStreams(ctx, "u1", []string{"12345"}).
		Return(&domain.StreamReport{Success: 1, Streams: map[string]*domain.ActivityStreams{"12345": nil}}, nil)
	s.activities.EXPECT().Upsert(ctx, activity).Return(nil)

	err := s.handler.Handle(ctx, domain.ProviderEvent{
		ObjectType: "activity",
		ObjectID:   12345,
		AspectType: "create",
		OwnerID:    777,
	})

	s.NoError(err)
}

func (s *EventHandlerTestSuite) TestHandle_ActivityDeleteRemovesRow() {
	ctx := context.Background()

	s.activities.EXPECT().DeleteBySourceID(ctx, "strava", "12345").Return(nil)

	err := s.handler.Handle(ctx, domain.ProviderEvent{
		ObjectType: "activity",
		ObjectID:   12345,
		AspectType: "delete",
		OwnerID:    777,
	})

	s.NoError(err)
}

func (s *EventHandlerTestSuite) TestHandle_DeauthorizationRemovesConnection() {
	ctx := context.Background()

	s.connections.EXPECT().DeleteByProviderAccount(ctx, "strava", "777").Return(nil)

	err := s.handler.Handle(ctx, domain.ProviderEvent{
		ObjectType: "athlete",
		ObjectID:   777,
		AspectType: "update",
		OwnerID:    777,
		Updates:    map[string]string{"authorized": "false"},
	})

	s.NoError(err)
}

func (s *EventHandlerTestSuite) TestHandle_IgnoresAthleteProfileUpdates() {
	err := s.handler.Handle(context.Background(), domain.ProviderEvent{
		ObjectType: "athlete",
		ObjectID:   777,
		AspectType: "update",
		OwnerID:    777,
		Updates:    map[string]string{"title": "new name"},
	})

	s.NoError(err)
}

func (s *EventHandlerTestSuite) TestHandle_UnknownAccountIsAcknowledged() {
	ctx := context.Background()

	s.connections.EXPECT().FindByProviderAccount(ctx, "strava", "999").Return(nil, nil)

	err := s.handler.Handle(ctx, domain.ProviderEvent{
		ObjectType: "activity",
		ObjectID:   12345,
		AspectType: "update",
		OwnerID:    999,
	})

	s.NoError(err)
}

func (s *EventHandlerTestSuite) TestHandle_SyncFailurePropagates() {
	ctx := context.Background()

	s.connections.EXPECT().FindByProviderAccount(ctx, "strava", "777").
		Return(&domain.ServiceConnection{UserID: "u1", Provider: "strava"}, nil)
	s.source.EXPECT().GetActivity(ctx, "u1", "12345").Return(nil, errors.New("upstream down"))

	err := s.handler.Handle(ctx, domain.ProviderEvent{
		ObjectType: "activity",
		ObjectID:   12345,
		AspectType: "update",
		OwnerID:    777,
	})

	s.Error(err)
	s.Contains(err.Error(), "sync activity 12345")
}
