package alert

import "time"

const (
	SeverityCritical = "Critical"
	SeverityHigh     = "High"
	SeverityMedium   = "Medium"
	SeverityLow      = "Low"
)

// Alert is a flagged condition on a device.
type Alert struct {
	AlertID   int64     `json:"alert_id"   gorm:"column:alert_id;primaryKey;autoIncrement:false"`
	DeviceID  int64     `json:"device_id"  gorm:"column:device_id;not null;index"`
	AlertType string    `json:"alert_type" gorm:"column:alert_type;not null"`
	Severity  string    `json:"severity"   gorm:"column:severity;not null"` // Critical / High / Medium / Low
	AlertTime time.Time `json:"alert_time" gorm:"column:alert_time;not null;index"`
	Resolved  bool      `json:"resolved"   gorm:"column:resolved;not null;default:false"`
}

func (Alert) TableName() string {
	return "alerts"
}

// View adds the owning device's type; it is null for orphaned alerts.
type View struct {
	Alert
	DeviceType *string `json:"device_type" gorm:"column:device_type"`
}
