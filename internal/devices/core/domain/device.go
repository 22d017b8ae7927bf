package domain

// DeviceRecord is one per-device, per-platform status row as reported by the
// monitoring API.
type DeviceRecord struct {
	DeviceID      string
	Platform      string
	AccountStatus string
	Category      string // classification of AccountStatus, filled by the use cases
	Reason        string // optional
	Date          string // YYYY-MM-DD
	CreatedAt     string // optional, as sent by the source
}

// InactiveDevice is the per-device rollup of inactive records.
// len(Platforms) counts distinct platforms; InactiveCount counts records.
type InactiveDevice struct {
	DeviceID      string
	InactiveCount int
	Platforms     []string
}

type NoAppDevice struct {
	DeviceID        string
	MissingAppCount int
	Platforms       []string
}

type DateRecords struct {
	Date    string
	Records []DeviceRecord
}

type InactiveList struct {
	Date     string
	Platform string
	DeviceID string
	Records  []DeviceRecord
	Devices  []InactiveDevice
}

type NoAppList struct {
	Date        string
	Platform    string
	DeviceCount int
	Devices     []NoAppDevice
}

type DeviceHistory struct {
	DeviceID string
	Date     string // set when the history is restricted to one day
	Records  []DeviceRecord
	ByDate   []DateRecords
}

type StatusDevices struct {
	Date          string
	Platform      string
	AccountStatus string
	Devices       []DeviceRecord
}
