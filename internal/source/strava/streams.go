package strava

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"fitsync/internal/domain"
)

// FetchStreams fetches per-activity power and heart-rate streams. IDs are
// grouped into fixed-size batches; requests inside a batch run
// concurrently and consecutive batches are separated by a fixed delay to
// respect the provider's rate limit. A missing stream maps to a nil entry;
// other per-id errors are counted without aborting the batch.
//
// Pacing is per user only: two users syncing at once each pace themselves
// independently, so the aggregate request rate is not globally capped.
func (c *Client) FetchStreams(ctx context.Context, userID string, ids []string) (*domain.StreamReport, error) {
	report := &domain.StreamReport{
		Streams: make(map[string]*domain.ActivityStreams, len(ids)),
	}

	batches := (len(ids) + c.streamBatchSize - 1) / c.streamBatchSize

	for b := 0; b < batches; b++ {
		start := b * c.streamBatchSize
		end := min(start+c.streamBatchSize, len(ids))
		batch := ids[start:end]

		var (
			mu sync.Mutex
			wg sync.WaitGroup
		)

		for _, id := range batch {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()

				streams, err := c.fetchActivityStreams(ctx, userID, id)

				mu.Lock()
				defer mu.Unlock()

				switch {
				case errors.Is(err, ErrNotFound):
					// the stream may legitimately not exist, e.g. a
					// deleted or trainer-recorded activity
					c.logger.Warn("activity stream not found",
						"user_id", userID,
						"activity_id", id,
					)
					report.Streams[id] = nil
					report.Success++
				case err != nil:
					c.logger.Error("failed to fetch activity stream",
						"user_id", userID,
						"activity_id", id,
						"error", err,
					)
					report.Failed++
					report.FailedIDs = append(report.FailedIDs, id)
				default:
					report.Streams[id] = streams
					report.Success++
				}
			}(id)
		}

		wg.Wait()

		if b < batches-1 {
			c.logger.Debug("waiting between stream batches",
				"batch", b+1,
				"batches", batches,
				"delay", c.streamBatchDelay,
			)
			if err := c.sleep(ctx, c.streamBatchDelay); err != nil {
				return report, err
			}
		}
	}

	return report, nil
}

func (c *Client) fetchActivityStreams(ctx context.Context, userID, id string) (*domain.ActivityStreams, error) {
	params := url.Values{}
	params.Set("keys", "watts,heartrate")
	params.Set("key_by_type", "true")

	var payload streamResponse
	if err := c.getJSON(ctx, userID, "/activities/"+url.PathEscape(id)+"/streams", params, &payload); err != nil {
		return nil, err
	}

	streams := &domain.ActivityStreams{}
	if watts, ok := payload["watts"]; ok {
		streams.Watts = watts.Data
	}
	if hr, ok := payload["heartrate"]; ok {
		streams.Heartrate = hr.Data
	}
	return streams, nil
}
