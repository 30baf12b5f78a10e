package curate

import (
	"time"

	"shopzada-etl/core/table"
)

// dimDateColumns is the schema of the generated date dimension.
var dimDateColumns = []string{
	"date_sk", "date", "year", "quarter", "month", "day", "day_of_week", "is_weekend",
}

// BuildDimDate generates the date dimension from the configured start year
// through the end of next year. date_sk is the YYYYMMDD integer surrogate;
// day_of_week is ISO-style with Monday=1.
func (s *Service) BuildDimDate() (*table.Table, error) {
	startYear := s.startYear
	if startYear <= 0 {
		startYear = 2015
	}
	endYear := time.Now().Year() + 1

	t := table.New(dimDateColumns...)
	for d := time.Date(startYear, 1, 1, 0, 0, 0, 0, time.UTC); d.Year() <= endYear; d = d.AddDate(0, 0, 1) {
		dow := int(d.Weekday())
		if dow == 0 {
			dow = 7
		}
		isWeekend := int64(0)
		if dow >= 6 {
			isWeekend = 1
		}
		t.Rows = append(t.Rows, table.Row{
			"date_sk":     table.Scalar(int64(d.Year()*10000 + int(d.Month())*100 + d.Day())),
			"date":        table.Scalar(d),
			"year":        table.Scalar(int64(d.Year())),
			"quarter":     table.Scalar(int64((int(d.Month())-1)/3 + 1)),
			"month":       table.Scalar(int64(d.Month())),
			"day":         table.Scalar(int64(d.Day())),
			"day_of_week": table.Scalar(int64(dow)),
			"is_weekend":  table.Scalar(isWeekend),
		})
	}
	return t, nil
}
