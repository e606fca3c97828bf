package maintenance

import "gorm.io/datatypes"

// Log records service work performed on a device.
type Log struct {
	LogID          int64          `json:"log_id"          gorm:"column:log_id;primaryKey;autoIncrement:false"`
	DeviceID       int64          `json:"device_id"       gorm:"column:device_id;not null;index"`
	TechnicianName string         `json:"technician_name" gorm:"column:technician_name;not null"`
	Cost           float64        `json:"cost"            gorm:"column:cost;not null"`
	Date           datatypes.Date `json:"date"            gorm:"column:date;not null;index"`
	IssueFixed     string         `json:"issue_fixed"     gorm:"column:issue_fixed"`
}

func (Log) TableName() string {
	return "maintenance"
}

type View struct {
	Log
	DeviceType *string `json:"device_type" gorm:"column:device_type"`
}
