package console

import (
	"context"
	"strings"
	"sync"
	"time"
)

// DashboardService computes the role-scoped dashboard counts from bookings and
// aggregated medical records.
type DashboardService interface {
	GetDashboardStats(ctx context.Context, profile *UserProfile) DashboardStats
}

type dashboardService struct {
	client        HospitalClient
	recordService RecordService
	now           func() time.Time
}

func NewDashboardService(client HospitalClient, recordService RecordService) DashboardService {
	return &dashboardService{
		client:        client,
		recordService: recordService,
		now:           time.Now,
	}
}

func (s *dashboardService) GetDashboardStats(ctx context.Context, profile *UserProfile) DashboardStats {
	var bookings []Booking
	var records []MedicalRecord
	var directory Directory

	// fan-out with per-branch failure isolation: every read degrades to an
	// empty collection on its own, so one failing fetch never blocks the rest
	var waitGroup sync.WaitGroup
	waitGroup.Add(3)
	go func() {
		defer waitGroup.Done()
		bookings = s.client.GetBookings(ctx)
	}()
	go func() {
		defer waitGroup.Done()
		records = s.recordService.GetMedicalRecords(ctx)
	}()
	go func() {
		defer waitGroup.Done()
		directory = s.client.GetDepartmentsAndDoctors(ctx)
	}()
	waitGroup.Wait()

	today := s.now().Format("2006-01-02")
	currentMonth := s.now().Format("2006-01")

	stats := DashboardStats{}
	for _, booking := range bookings {
		if !bookingMatchesRole(booking, profile, directory) {
			continue
		}
		if SameCalendarDay(booking.AppointmentDate, today) && booking.Status != BookingStatusCancelled {
			stats.TodayAppointments++
		}
		if booking.Status == BookingStatusPending {
			stats.NewAppointments++
		}
	}
	for _, record := range records {
		if SameCalendarMonth(record.MostRecentUpdate, currentMonth) {
			stats.RecentRecords++
		}
	}
	return stats
}

func bookingMatchesRole(booking Booking, profile *UserProfile, directory Directory) bool {
	if profile == nil {
		return false
	}
	switch NormalizeRole(string(profile.Role)) {
	case RoleAdmin:
		return true
	case RoleDoctor:
		return profile.DisplayName != "" &&
			strings.Contains(strings.ToLower(booking.DoctorName), strings.ToLower(profile.DisplayName))
	case RoleNurse, RoleStaff:
		bookingDepartment := directory.DepartmentName(booking.Department)
		callerDepartment := directory.DepartmentName(profile.Department)
		return callerDepartment != "" && strings.EqualFold(bookingDepartment, callerDepartment)
	}
	return false
}
