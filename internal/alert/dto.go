package alert

import (
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/apierr"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/params"
)

type CreateAlertRequest struct {
	AlertID   *int64 `json:"alert_id"   binding:"required,gt=0"`
	DeviceID  *int64 `json:"device_id"  binding:"required,gt=0"`
	AlertType string `json:"alert_type" binding:"required"`
	Severity  string `json:"severity"   binding:"required,oneof=Critical High Medium Low"`
	AlertTime string `json:"alert_time" binding:"required"`
	Resolved  *bool  `json:"resolved"`
}

func (r CreateAlertRequest) Alert() (Alert, error) {
	at, err := params.ParseTimestamp(r.AlertTime)
	if err != nil {
		return Alert{}, apierr.Validation("alert_time must be an RFC 3339 or YYYY-MM-DDTHH:MM time")
	}
	a := Alert{
		AlertID:   *r.AlertID,
		DeviceID:  *r.DeviceID,
		AlertType: r.AlertType,
		Severity:  r.Severity,
		AlertTime: at,
	}
	if r.Resolved != nil {
		a.Resolved = *r.Resolved
	}
	return a, nil
}
