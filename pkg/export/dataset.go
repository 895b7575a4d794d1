package export

import "strconv"

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// Column headers of a schedule export.
const (
	ColumnNumber  = "No"
	ColumnWeekday = "Day"
	ColumnDate    = "Date"
	ColumnTime    = "Time"
	ColumnDisplay = "Schedule"
)

// ScheduleRow is one schedule entry flattened for tabular output.
type ScheduleRow struct {
	Weekday string
	Date    string
	Time    string
	Display string
}

// ScheduleDataset lays rows out in display order, numbered from 1.
func ScheduleDataset(rows []ScheduleRow) Dataset {
	data := Dataset{
		Headers: []string{ColumnNumber, ColumnWeekday, ColumnDate, ColumnTime, ColumnDisplay},
		Rows:    make([]map[string]string, 0, len(rows)),
	}
	for i, row := range rows {
		data.Rows = append(data.Rows, map[string]string{
			ColumnNumber:  strconv.Itoa(i + 1),
			ColumnWeekday: row.Weekday,
			ColumnDate:    row.Date,
			ColumnTime:    row.Time,
			ColumnDisplay: row.Display,
		})
	}
	return data
}
