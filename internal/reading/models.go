package reading

import "time"

const TypeAirQuality = "AirQuality"

// Reading is one timestamped measurement from a device. Readings are never updated.
type Reading struct {
	ReadingID   int64     `json:"reading_id"   gorm:"column:reading_id;primaryKey;autoIncrement:false"`
	DeviceID    int64     `json:"device_id"    gorm:"column:device_id;not null;index:idx_readings_device_time,priority:1"`
	ReadingType string    `json:"reading_type" gorm:"column:reading_type;not null;index:idx_readings_type_time,priority:1"`
	Value       float64   `json:"value"        gorm:"column:value;not null"`
	Timestamp   time.Time `json:"timestamp"    gorm:"column:timestamp;not null;index:idx_readings_device_time,priority:2;index:idx_readings_type_time,priority:2"`
}

func (Reading) TableName() string {
	return "readings"
}

// View adds the owning device's type; it is null for orphaned readings.
type View struct {
	Reading
	DeviceType *string `json:"device_type" gorm:"column:device_type"`
}
