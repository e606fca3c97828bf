package zone

type CreateZoneRequest struct {
	ZoneID     *int64   `json:"zone_id"    binding:"required,gt=0"`
	Name       string   `json:"name"       binding:"required"`
	Population *int64   `json:"population" binding:"required,min=0"`
	AvgIncome  *float64 `json:"avg_income" binding:"required,min=0"`
}

func (r CreateZoneRequest) Zone() Zone {
	return Zone{
		ZoneID:     *r.ZoneID,
		Name:       r.Name,
		Population: *r.Population,
		AvgIncome:  *r.AvgIncome,
	}
}
