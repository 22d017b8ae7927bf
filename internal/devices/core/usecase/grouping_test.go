package usecase_test

import (
	"fmt"
	"reflect"
	"testing"

	"device-status-service/internal/devices/core/domain"
	"device-status-service/internal/devices/core/usecase"
)

func rec(id, platform, status, date string) domain.DeviceRecord {
	return domain.DeviceRecord{DeviceID: id, Platform: platform, AccountStatus: status, Date: date}
}

func TestGroupByDevice(t *testing.T) {
	records := []domain.DeviceRecord{
		rec("d2", "tiktok", "banned", "2025-12-08"),
		rec("d1", "youtube", "suspended", "2025-12-08"),
		rec("d2", "tiktok", "logged_out", "2025-12-08"),
		rec("d2", "instagram", "banned", "2025-12-08"),
	}

	got := usecase.GroupByDevice(records)

	want := []domain.InactiveDevice{
		{DeviceID: "d2", InactiveCount: 3, Platforms: []string{"tiktok", "instagram"}},
		{DeviceID: "d1", InactiveCount: 1, Platforms: []string{"youtube"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestGroupByDevice_Empty(t *testing.T) {
	got := usecase.GroupByDevice(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

// N records over D distinct ids yield D entries whose counts sum to N.
func TestGroupByDevice_Cardinality(t *testing.T) {
	const n, d = 97, 7

	records := make([]domain.DeviceRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, rec(fmt.Sprintf("dev-%d", i%d), fmt.Sprintf("p%d", i%3), "banned", "2025-12-08"))
	}

	got := usecase.GroupByDevice(records)
	if len(got) != d {
		t.Fatalf("expected %d devices, got %d", d, len(got))
	}

	sum := 0
	for _, dev := range got {
		sum += dev.InactiveCount
		if len(dev.Platforms) > dev.InactiveCount {
			t.Fatalf("%s: more platforms than records: %+v", dev.DeviceID, dev)
		}
	}
	if sum != n {
		t.Fatalf("expected counts to sum to %d, got %d", n, sum)
	}
}

func TestGroupByDate(t *testing.T) {
	records := []domain.DeviceRecord{
		rec("d1", "tiktok", "active", "2025-12-06"),
		rec("d1", "youtube", "banned", "2025-12-08"),
		rec("d1", "tiktok", "banned", "2025-12-06"),
		rec("d1", "tiktok", "active", "2025-12-07"),
	}

	got := usecase.GroupByDate(records)

	if len(got) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(got))
	}
	if got[0].Date != "2025-12-08" || got[1].Date != "2025-12-07" || got[2].Date != "2025-12-06" {
		t.Fatalf("expected newest first, got %+v", got)
	}
	if len(got[2].Records) != 2 || got[2].Records[0].AccountStatus != "active" {
		t.Fatalf("records must keep their order inside a date: %+v", got[2].Records)
	}
}
