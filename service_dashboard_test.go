package console

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newDashboardServiceAt(client HospitalClient, nowValue string) *dashboardService {
	fixedNow, _ := time.Parse("2006-01-02", nowValue)
	return &dashboardService{
		client:        client,
		recordService: NewRecordService(client),
		now:           func() time.Time { return fixedNow },
	}
}

func TestGetDashboardStatsAdmin(t *testing.T) {
	clientMock := &hospitalClientMock{
		getBookingsFunc: func() []Booking {
			return []Booking{
				{ID: "b1", AppointmentDate: "2024-05-01T09:00:00Z", Status: BookingStatusPending},
				{ID: "b2", AppointmentDate: "2024-05-01", Status: BookingStatusConfirmed},
				{ID: "b3", AppointmentDate: "2024-05-02", Status: BookingStatusPending},
				{ID: "b4", AppointmentDate: "2024-05-01", Status: BookingStatusCancelled},
			}
		},
		getMedicalRecordsFunc: func() []MedicalFileEntry {
			return []MedicalFileEntry{
				{"userId": "u1", "fileId": "f1", "uploadDate": "2024-05-10"},
				{"userId": "u2", "fileId": "f2", "uploadDate": "2024-04-30"},
			}
		},
	}
	dashboardService := newDashboardServiceAt(clientMock, "2024-05-01")

	stats := dashboardService.GetDashboardStats(context.Background(), &UserProfile{Role: RoleAdmin})

	// b1 counts twice: it falls on today and it is still pending
	assert.Equal(t, 2, stats.TodayAppointments)
	assert.Equal(t, 2, stats.NewAppointments)
	assert.Equal(t, 1, stats.RecentRecords)
}

func TestGetDashboardStatsDoctorScoping(t *testing.T) {
	clientMock := &hospitalClientMock{
		getBookingsFunc: func() []Booking {
			return []Booking{
				{ID: "b1", DoctorName: "Dr. Jane Roe", AppointmentDate: "2024-05-01", Status: BookingStatusPending},
				{ID: "b2", DoctorName: "Dr. John Doe", AppointmentDate: "2024-05-01", Status: BookingStatusPending},
			}
		},
	}
	dashboardService := newDashboardServiceAt(clientMock, "2024-05-01")

	stats := dashboardService.GetDashboardStats(context.Background(), &UserProfile{
		Role:        RoleDoctor,
		DisplayName: "jane roe",
	})

	assert.Equal(t, 1, stats.TodayAppointments)
	assert.Equal(t, 1, stats.NewAppointments)
}

func TestGetDashboardStatsNurseDepartmentScoping(t *testing.T) {
	clientMock := &hospitalClientMock{
		getBookingsFunc: func() []Booking {
			return []Booking{
				{ID: "b1", Department: "dep-1", AppointmentDate: "2024-05-01", Status: BookingStatusPending},
				{ID: "b2", Department: "Neurology", AppointmentDate: "2024-05-01", Status: BookingStatusPending},
			}
		},
		getDirectoryFunc: func() Directory {
			return Directory{
				Departments: []Department{{ID: "dep-1", Name: "Cardiology"}},
			}
		},
	}
	dashboardService := newDashboardServiceAt(clientMock, "2024-05-01")

	// the booking references the department by id, the profile by name
	stats := dashboardService.GetDashboardStats(context.Background(), &UserProfile{
		Role:       RoleNurse,
		Department: "cardiology",
	})

	assert.Equal(t, 1, stats.TodayAppointments)
}

func TestGetDashboardStatsNilProfile(t *testing.T) {
	clientMock := &hospitalClientMock{
		getBookingsFunc: func() []Booking {
			return []Booking{
				{ID: "b1", AppointmentDate: "2024-05-01", Status: BookingStatusPending},
			}
		},
		getMedicalRecordsFunc: func() []MedicalFileEntry {
			return []MedicalFileEntry{
				{"userId": "u1", "fileId": "f1", "uploadDate": "2024-05-10"},
			}
		},
	}
	dashboardService := newDashboardServiceAt(clientMock, "2024-05-01")

	stats := dashboardService.GetDashboardStats(context.Background(), nil)

	// without an identity no booking is attributable, record counts are global
	assert.Equal(t, 0, stats.TodayAppointments)
	assert.Equal(t, 0, stats.NewAppointments)
	assert.Equal(t, 1, stats.RecentRecords)
}

func TestGetDashboardStatsAllSourcesEmpty(t *testing.T) {
	dashboardService := newDashboardServiceAt(&hospitalClientMock{}, "2024-05-01")

	stats := dashboardService.GetDashboardStats(context.Background(), &UserProfile{Role: RoleAdmin})

	assert.Equal(t, DashboardStats{}, stats)
}

func TestGetDashboardStatsSingleSourceDegradation(t *testing.T) {
	clientMock := &hospitalClientMock{
		// bookings unavailable, records still served
		getMedicalRecordsFunc: func() []MedicalFileEntry {
			return []MedicalFileEntry{
				{"userId": "u1", "fileId": "f1", "uploadDate": "2024-05-03"},
			}
		},
	}
	dashboardService := newDashboardServiceAt(clientMock, "2024-05-01")

	stats := dashboardService.GetDashboardStats(context.Background(), &UserProfile{Role: RoleAdmin})

	assert.Equal(t, 0, stats.TodayAppointments)
	assert.Equal(t, 0, stats.NewAppointments)
	assert.Equal(t, 1, stats.RecentRecords)
}
