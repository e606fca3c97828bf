package maintenance

import (
	"gorm.io/datatypes"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/apierr"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/params"
)

type CreateLogRequest struct {
	LogID          *int64   `json:"log_id"          binding:"required,gt=0"`
	DeviceID       *int64   `json:"device_id"       binding:"required,gt=0"`
	TechnicianName string   `json:"technician_name" binding:"required"`
	Cost           *float64 `json:"cost"            binding:"required,min=0"`
	Date           string   `json:"date"            binding:"required"`
	IssueFixed     string   `json:"issue_fixed"`
}

func (r CreateLogRequest) Log() (Log, error) {
	d, err := params.ParseDate(r.Date)
	if err != nil {
		return Log{}, apierr.Validation("date must be a date (YYYY-MM-DD)")
	}
	return Log{
		LogID:          *r.LogID,
		DeviceID:       *r.DeviceID,
		TechnicianName: r.TechnicianName,
		Cost:           *r.Cost,
		Date:           datatypes.Date(d),
		IssueFixed:     r.IssueFixed,
	}, nil
}
