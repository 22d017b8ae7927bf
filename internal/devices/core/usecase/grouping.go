package usecase

import (
	"sort"

	"device-status-service/internal/devices/core/domain"
)

// GroupByDevice rolls flat records up per device. Devices keep the order in
// which they first appear; platforms are distinct and in first-seen order.
func GroupByDevice(records []domain.DeviceRecord) []domain.InactiveDevice {
	out := make([]domain.InactiveDevice, 0)
	index := make(map[string]int)
	seen := make(map[string]map[string]struct{})

	for _, r := range records {
		i, ok := index[r.DeviceID]
		if !ok {
			i = len(out)
			index[r.DeviceID] = i
			seen[r.DeviceID] = make(map[string]struct{})
			out = append(out, domain.InactiveDevice{DeviceID: r.DeviceID, Platforms: []string{}})
		}

		out[i].InactiveCount++
		if _, dup := seen[r.DeviceID][r.Platform]; !dup {
			seen[r.DeviceID][r.Platform] = struct{}{}
			out[i].Platforms = append(out[i].Platforms, r.Platform)
		}
	}

	return out
}

// GroupByDate buckets records by their date, newest first. Records keep
// their relative order inside a bucket.
func GroupByDate(records []domain.DeviceRecord) []domain.DateRecords {
	out := make([]domain.DateRecords, 0)
	index := make(map[string]int)

	for _, r := range records {
		i, ok := index[r.Date]
		if !ok {
			i = len(out)
			index[r.Date] = i
			out = append(out, domain.DateRecords{Date: r.Date})
		}
		out[i].Records = append(out[i].Records, r)
	}

	// YYYY-MM-DD sorts lexically
	sort.SliceStable(out, func(a, b int) bool { return out[a].Date > out[b].Date })
	return out
}
