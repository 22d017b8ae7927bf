package domain

// RawStatusCount maps a free-text status label to its count. Keys are not
// normalized: "Suspended" and "suspended" may both appear.
type RawStatusCount map[string]int64

type PlatformSummaryRaw struct {
	Platform string
	Summary  RawStatusCount
}

type SummaryRaw struct {
	Date    string // YYYY-MM-DD
	Summary []PlatformSummaryRaw
}

// PlatformSummary is the categorized view of one platform.
// Total == Active+Inactive+Error+Other == sum(Details).
type PlatformSummary struct {
	Platform string
	Active   int64
	Inactive int64
	Error    int64
	Other    int64
	Total    int64
	Details  RawStatusCount
}

type Totals struct {
	Active   int64
	Inactive int64
	Error    int64
	Other    int64
}

// Accounts excludes the "other" bucket, matching how the dashboard counts
// monitored accounts.
func (t Totals) Accounts() int64 {
	return t.Active + t.Inactive + t.Error
}

type StatusCount struct {
	DisplayName string
	Category    Category
	Count       int64
}

type InsightType string

const (
	InsightSuccess     InsightType = "success"
	InsightWarning     InsightType = "warning"
	InsightDestructive InsightType = "destructive"
	InsightInfo        InsightType = "info"
)

type Insight struct {
	Label string
	Value string
	Type  InsightType
}

// Dashboard is everything the overview page renders for one date.
type Dashboard struct {
	Date         string
	Summary      []PlatformSummary
	PlatformData []PlatformSummary
	Totals       Totals
	Statuses     []string
	HealthScore  int
	HealthLabel  string
	Insights     []Insight
	FromSnapshot bool // served from the local store because the upstream was unavailable
}

type DiffResult struct {
	YesterdayCount int64
	TodayCount     int64
	Diff           int64
	PercentChange  *float64 // nil when YesterdayCount == 0
}

type StatusComparison struct {
	Status string
	DiffResult
}

type PlatformComparison struct {
	Platform string
	Total    DiffResult
	Statuses []StatusComparison
}

type Comparison struct {
	Date         string
	PreviousDate string
	Platforms    []PlatformComparison
}
