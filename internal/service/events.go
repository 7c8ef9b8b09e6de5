package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"fitsync/internal/domain"
)

// EventHandler reacts to provider webhook notifications. Activity events
// trigger a targeted single-activity sync instead of waiting for the
// next scheduled run; deauthorization drops the connection so the
// scheduler stops trying to sync a revoked account.
type EventHandler struct {
	syncer      *ActivitySyncer
	activities  ActivityStore
	connections ConnectionStore
	provider    string
	logger      *slog.Logger
}

func NewEventHandler(
	syncer *ActivitySyncer,
	activities ActivityStore,
	connections ConnectionStore,
	provider string,
	logger *slog.Logger,
) *EventHandler {
	return &EventHandler{
		syncer:      syncer,
		activities:  activities,
		connections: connections,
		provider:    provider,
		logger:      logger,
	}
}

// Handle dispatches one provider event. Unknown object or aspect types
// are logged and acknowledged; the provider retries events we fail, so
// only genuine processing errors propagate.
func (h *EventHandler) Handle(ctx context.Context, event domain.ProviderEvent) error {
	accountID := strconv.FormatInt(event.OwnerID, 10)

	if event.Updates["authorized"] == "false" {
		h.logger.Info("provider access revoked, removing connection",
			"provider", h.provider,
			"account_id", accountID)
		if err := h.connections.DeleteByProviderAccount(ctx, h.provider, accountID); err != nil {
			return fmt.Errorf("delete connection for account %s: %w", accountID, err)
		}
		return nil
	}

	if event.ObjectType != "activity" {
		h.logger.Debug("ignoring non-activity event",
			"object_type", event.ObjectType,
			"aspect_type", event.AspectType)
		return nil
	}

	sourceID := strconv.FormatInt(event.ObjectID, 10)

	switch event.AspectType {
	case "create", "update":
		conn, err := h.connections.FindByProviderAccount(ctx, h.provider, accountID)
		if err != nil {
			return fmt.Errorf("find connection for account %s: %w", accountID, err)
		}
		if conn == nil {
			h.logger.Warn("event for unknown provider account",
				"provider", h.provider,
				"account_id", accountID)
			return nil
		}

		if _, err := h.syncer.SyncActivity(ctx, conn.UserID, sourceID); err != nil {
			return fmt.Errorf("sync activity %s: %w", sourceID, err)
		}
		h.logger.Info("synced activity from event",
			"source_id", sourceID,
			"aspect_type", event.AspectType,
			"user_id", conn.UserID)
		return nil

	case "delete":
		if err := h.activities.DeleteBySourceID(ctx, h.provider, sourceID); err != nil {
			return fmt.Errorf("delete activity %s: %w", sourceID, err)
		}
		h.logger.Info("deleted activity from event", "source_id", sourceID)
		return nil

	default:
		h.logger.Debug("ignoring unknown aspect type", "aspect_type", event.AspectType)
		return nil
	}
}
