package fiber

type summaryRequest struct {
	Date     string `params:"date" validate:"required,datetime=2006-01-02"`
	Platform string `query:"platform" validate:"omitempty,max=64"`
}

type breakdownRequest struct {
	Date     string `params:"date" validate:"required,datetime=2006-01-02"`
	Platform string `params:"platform" validate:"required,max=64"`
}

type classifyRequest struct {
	Status string `query:"status" validate:"max=256"`
}

type PlatformSummaryResponse struct {
	Platform string           `json:"platform" example:"tiktok"`
	Active   int64            `json:"active"`
	Inactive int64            `json:"inactive"`
	Error    int64            `json:"error"`
	Other    int64            `json:"other"`
	Total    int64            `json:"total"`
	Details  map[string]int64 `json:"details"`
}

type TotalsResponse struct {
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Error    int64 `json:"error"`
	Other    int64 `json:"other"`
	Accounts int64 `json:"accounts"`
}

type HealthResponse struct {
	Score int    `json:"score" example:"87"`
	Label string `json:"label" example:"Good"`
}

type InsightResponse struct {
	Label string `json:"label" example:"Top Issue"`
	Value string `json:"value" example:"Suspended (12)"`
	Type  string `json:"type" example:"warning"`
}

// SummaryResponse is the processed overview of one day.
// @Description Daily dashboard view
type SummaryResponse struct {
	Date         string                    `json:"date" example:"2025-12-08"`
	FromSnapshot bool                      `json:"from_snapshot"`
	Summary      []PlatformSummaryResponse `json:"summary"`
	PlatformData []PlatformSummaryResponse `json:"platform_data"`
	Totals       TotalsResponse            `json:"totals"`
	Statuses     []string                  `json:"statuses"`
	Health       HealthResponse            `json:"health"`
	Insights     []InsightResponse         `json:"insights"`
}

type StatusCountResponse struct {
	DisplayName string `json:"display_name" example:"Not Logged In"`
	Category    string `json:"category" example:"inactive"`
	Count       int64  `json:"count"`
}

type BreakdownResponse struct {
	Date     string                `json:"date"`
	Platform string                `json:"platform"`
	Total    int64                 `json:"total"`
	Statuses []StatusCountResponse `json:"statuses"`
}

type DiffResponse struct {
	YesterdayCount int64    `json:"yesterday_count"`
	TodayCount     int64    `json:"today_count"`
	Diff           int64    `json:"diff"`
	PercentChange  *float64 `json:"percent_change,omitempty"`
}

type StatusDiffResponse struct {
	Status string `json:"status"`
	DiffResponse
}

type PlatformDiffResponse struct {
	Platform string               `json:"platform"`
	Total    DiffResponse         `json:"total"`
	Statuses []StatusDiffResponse `json:"statuses"`
}

type CompareResponse struct {
	Date         string                 `json:"date" example:"2025-12-08"`
	PreviousDate string                 `json:"previous_date" example:"2025-12-07"`
	Platforms    []PlatformDiffResponse `json:"platforms"`
}

type ClassifyResponse struct {
	Status      string `json:"status" example:"not_logged_in"`
	Category    string `json:"category" example:"inactive"`
	DisplayName string `json:"display_name" example:"Not Logged In"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message" example:"date must be a date in YYYY-MM-DD format"`
}
