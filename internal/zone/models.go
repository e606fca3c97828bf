package zone

// Zone is a municipal area; devices are installed in zones.
type Zone struct {
	ZoneID     int64   `json:"zone_id"    gorm:"column:zone_id;primaryKey;autoIncrement:false"`
	Name       string  `json:"name"       gorm:"column:name;not null"`
	Population int64   `json:"population" gorm:"column:population;not null"`
	AvgIncome  float64 `json:"avg_income" gorm:"column:avg_income;not null"`
}

func (Zone) TableName() string {
	return "zones"
}
