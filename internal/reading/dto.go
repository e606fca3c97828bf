package reading

import (
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/apierr"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/params"
)

type CreateReadingRequest struct {
	ReadingID   *int64   `json:"reading_id"   binding:"required,gt=0"`
	DeviceID    *int64   `json:"device_id"    binding:"required,gt=0"`
	ReadingType string   `json:"reading_type" binding:"required"`
	Value       *float64 `json:"value"        binding:"required"`
	Timestamp   string   `json:"timestamp"    binding:"required"`
}

func (r CreateReadingRequest) Reading() (Reading, error) {
	ts, err := params.ParseTimestamp(r.Timestamp)
	if err != nil {
		return Reading{}, apierr.Validation("timestamp must be an RFC 3339 or YYYY-MM-DDTHH:MM time")
	}
	return Reading{
		ReadingID:   *r.ReadingID,
		DeviceID:    *r.DeviceID,
		ReadingType: r.ReadingType,
		Value:       *r.Value,
		Timestamp:   ts,
	}, nil
}
