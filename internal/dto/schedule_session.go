package dto

// ProposeDateRequest carries the date chosen in the date picker.
type ProposeDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// ProposeTimeRequest carries the time chosen in the time picker. Pointers keep
// a midnight hour or a zero minute distinguishable from a missing field.
type ProposeTimeRequest struct {
	Hour   *int `json:"hour" validate:"required,min=0,max=23"`
	Minute *int `json:"minute" validate:"required,min=0,max=59"`
}

// ImportDisplayRequest carries card labels such as "Thursday, 03 14:05".
type ImportDisplayRequest struct {
	Lines []string `json:"lines" validate:"required,min=1,max=200,dive,required"`
}

// ExportQuery selects the download format: csv (default), pdf or ics.
type ExportQuery struct {
	Format string `form:"format"`
}
