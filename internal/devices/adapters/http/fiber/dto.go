package fiber

type inactiveRequest struct {
	Date     string `params:"date" validate:"required,datetime=2006-01-02"`
	Platform string `query:"platform" validate:"omitempty,max=64"`
	DeviceID string `query:"device_id" validate:"omitempty,max=128"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=1000"`
}

type noAppRequest struct {
	Date     string `params:"date" validate:"required,datetime=2006-01-02"`
	Platform string `query:"platform" validate:"omitempty,max=64"`
	DeviceID string `query:"device_id" validate:"omitempty,max=128"`
}

type historyRequest struct {
	DeviceID string `params:"device_id" validate:"required,max=128"`
	Date     string `params:"date" validate:"omitempty,datetime=2006-01-02"`
}

type statusDevicesRequest struct {
	Date          string `query:"date" validate:"required,datetime=2006-01-02"`
	Platform      string `query:"platform" validate:"required,max=64"`
	AccountStatus string `query:"account_status" validate:"required,max=256"`
}

type DeviceRecordResponse struct {
	DeviceID      string `json:"device_id" example:"SM-A125F-01"`
	Platform      string `json:"platform" example:"tiktok"`
	AccountStatus string `json:"account_status" example:"Not Logged In"`
	Category      string `json:"category" example:"inactive"`
	Reason        string `json:"reason,omitempty"`
	Date          string `json:"date" example:"2025-12-08"`
	CreatedAt     string `json:"created_at,omitempty"`
}

type InactiveDeviceResponse struct {
	DeviceID      string   `json:"device_id"`
	InactiveCount int      `json:"inactive_count"`
	Platforms     []string `json:"platforms"`
}

type FiltersResponse struct {
	Platform *string `json:"platform"`
	DeviceID *string `json:"device_id"`
}

type InactiveResponse struct {
	Date          string                   `json:"date"`
	Filters       FiltersResponse          `json:"filters"`
	InactiveCount int                      `json:"inactive_count"`
	DeviceCount   int                      `json:"device_count"`
	Devices       []InactiveDeviceResponse `json:"devices"`
	Records       []DeviceRecordResponse   `json:"records"`
}

type NoAppDeviceResponse struct {
	DeviceID        string   `json:"device_id"`
	MissingAppCount int      `json:"missing_app_count"`
	Platforms       []string `json:"platforms"`
}

type NoAppResponse struct {
	Date        string                `json:"date"`
	Platform    *string               `json:"platform"`
	DeviceCount int                   `json:"device_count"`
	Devices     []NoAppDeviceResponse `json:"devices"`
}

type DateRecordsResponse struct {
	Date    string                 `json:"date"`
	Records []DeviceRecordResponse `json:"records"`
}

type HistoryResponse struct {
	DeviceID string                 `json:"device_id"`
	Date     string                 `json:"date,omitempty"`
	Records  []DeviceRecordResponse `json:"records"`
	ByDate   []DateRecordsResponse  `json:"by_date"`
}

type StatusDevicesResponse struct {
	Date          string                 `json:"date"`
	Platform      string                 `json:"platform"`
	AccountStatus string                 `json:"account_status"`
	Count         int                    `json:"count"`
	Data          []DeviceRecordResponse `json:"data"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message" example:"device_id is required"`
}
