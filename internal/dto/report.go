package dto

// ReportQuery captures the query parameters shared by all report endpoints.
type ReportQuery struct {
	Start    string `form:"start"`
	End      string `form:"end"`
	Area     string `form:"area"`
	Planilla string `form:"planilla"`
}
