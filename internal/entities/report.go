package entities

// Report is a staff report record owned by the backend.
type Report struct {
	ReportID   int    `json:"reportId"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Status     int    `json:"status"`
	CreateDate string `json:"createDate"`
}

type ReportRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ChangeReportStatusRequest struct {
	Status int `json:"status"`
}
