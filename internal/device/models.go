package device

import (
	"gorm.io/datatypes"
)

const (
	StatusActive      = "Active"
	StatusInactive    = "Inactive"
	StatusMaintenance = "Maintenance"
)

// Device is a sensor or actuator installed in a zone.
type Device struct {
	DeviceID    int64          `json:"device_id"    gorm:"column:device_id;primaryKey;autoIncrement:false"`
	Type        string         `json:"type"         gorm:"column:type;not null"`
	ZoneID      *int64         `json:"zone_id"      gorm:"column:zone_id;index"`
	InstallDate datatypes.Date `json:"install_date" gorm:"column:install_date"`
	Status      string         `json:"status"       gorm:"column:status;not null"` // Active / Inactive / Maintenance
}

func (Device) TableName() string {
	return "devices"
}

// View is a device row joined with its zone name; the zone may be missing.
type View struct {
	Device
	ZoneName *string `json:"zone_name" gorm:"column:zone_name"`
}
