package strava

import (
	"math"
	"strconv"
	"strings"
	"time"

	"fitsync/internal/domain"
)

// apiActivity is the summary representation returned by the activity list
// and single-activity endpoints.
type apiActivity struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Distance           float64  `json:"distance"`            // meters
	MovingTime         int      `json:"moving_time"`         // seconds
	ElapsedTime        int      `json:"elapsed_time"`        // seconds
	TotalElevationGain float64  `json:"total_elevation_gain"`
	Type               string   `json:"type"`       // general type, e.g. "Ride"
	SportType          string   `json:"sport_type"` // specific type, e.g. "MountainBikeRide"
	StartDate          string   `json:"start_date"` // UTC date-time
	AverageSpeed       float64  `json:"average_speed"` // m/s
	MaxSpeed           float64  `json:"max_speed"`     // m/s
	AverageCadence     *float64 `json:"average_cadence,omitempty"`
	AverageWatts       *float64 `json:"average_watts,omitempty"`
	MaxWatts           *float64 `json:"max_watts,omitempty"`
	Kilojoules         *float64 `json:"kilojoules,omitempty"`
	AverageHeartrate   *float64 `json:"average_heartrate,omitempty"`
	MaxHeartrate       *float64 `json:"max_heartrate,omitempty"`
}

// streamSet is one channel of a key_by_type stream response.
type streamSet struct {
	SeriesType   string     `json:"series_type"`
	Data         []*float64 `json:"data"`
	OriginalSize int        `json:"original_size"`
	Resolution   string     `json:"resolution"`
}

type streamResponse map[string]streamSet

func (a apiActivity) isRide() bool {
	return a.Type == "Ride" || strings.HasSuffix(a.SportType, "Ride")
}

func (a apiActivity) toDomain(userID string) (domain.Activity, error) {
	startDate, err := time.Parse(time.RFC3339, a.StartDate)
	if err != nil {
		return domain.Activity{}, err
	}

	activity := domain.Activity{
		UserID:      userID,
		Source:      ProviderID,
		SourceID:    strconv.FormatInt(a.ID, 10),
		Name:        a.Name,
		StartDate:   startDate,
		ElapsedTime: a.ElapsedTime,
		MovingTime:  a.MovingTime,
	}

	if a.Distance > 0 {
		activity.Distance = &a.Distance
	}
	if a.TotalElevationGain > 0 {
		activity.ElevationGain = &a.TotalElevationGain
	}
	if a.AverageSpeed > 0 {
		activity.AverageSpeed = &a.AverageSpeed
	}
	if a.MaxSpeed > 0 {
		activity.MaxSpeed = &a.MaxSpeed
	}
	activity.AverageWatts = floorInt(a.AverageWatts)
	activity.MaxWatts = floorInt(a.MaxWatts)
	activity.AverageHR = floorInt(a.AverageHeartrate)
	activity.MaxHR = floorInt(a.MaxHeartrate)
	activity.AverageCadence = a.AverageCadence
	activity.Kilojoules = a.Kilojoules

	return activity, nil
}

func floorInt(v *float64) *int {
	if v == nil {
		return nil
	}
	i := int(math.Floor(*v))
	return &i
}
