package device

import (
	"gorm.io/datatypes"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/apierr"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/params"
)

type CreateDeviceRequest struct {
	DeviceID    *int64 `json:"device_id"    binding:"required,gt=0"`
	Type        string `json:"type"         binding:"required"`
	ZoneID      *int64 `json:"zone_id"      binding:"omitempty,gt=0"`
	InstallDate string `json:"install_date" binding:"required"`
	Status      string `json:"status"       binding:"required,oneof=Active Inactive Maintenance"`
}

func (r CreateDeviceRequest) Device() (Device, error) {
	installed, err := params.ParseDate(r.InstallDate)
	if err != nil {
		return Device{}, apierr.Validation("install_date must be a date (YYYY-MM-DD)")
	}
	return Device{
		DeviceID:    *r.DeviceID,
		Type:        r.Type,
		ZoneID:      r.ZoneID,
		InstallDate: datatypes.Date(installed),
		Status:      r.Status,
	}, nil
}
