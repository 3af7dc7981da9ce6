package console

import (
	"context"
)

type hospitalClientMock struct {
	loginFunc               func(email, password string) (LoginResult, error)
	registerFunc            func(registration Registration) error
	getBookingsFunc         func() []Booking
	getMedicalRecordsFunc   func() []MedicalFileEntry
	getDirectoryFunc        func() Directory
	updateBookingStatusFunc func(bookingID string, status BookingStatus) error
	getMedicalFileFunc      func(fileID string) ([]byte, string, error)
}

func (m *hospitalClientMock) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if m.loginFunc != nil {
		return m.loginFunc(email, password)
	}
	return LoginResult{}, nil
}

func (m *hospitalClientMock) Register(ctx context.Context, registration Registration) error {
	if m.registerFunc != nil {
		return m.registerFunc(registration)
	}
	return nil
}

func (m *hospitalClientMock) GetBookings(ctx context.Context) []Booking {
	if m.getBookingsFunc != nil {
		return m.getBookingsFunc()
	}
	return []Booking{}
}

func (m *hospitalClientMock) GetMedicalRecords(ctx context.Context) []MedicalFileEntry {
	if m.getMedicalRecordsFunc != nil {
		return m.getMedicalRecordsFunc()
	}
	return []MedicalFileEntry{}
}

func (m *hospitalClientMock) GetDepartmentsAndDoctors(ctx context.Context) Directory {
	if m.getDirectoryFunc != nil {
		return m.getDirectoryFunc()
	}
	return Directory{Departments: []Department{}, Doctors: []Doctor{}}
}

func (m *hospitalClientMock) UpdateBookingStatus(ctx context.Context, bookingID string, status BookingStatus) error {
	if m.updateBookingStatusFunc != nil {
		return m.updateBookingStatusFunc(bookingID, status)
	}
	return nil
}

func (m *hospitalClientMock) GetMedicalFile(ctx context.Context, fileID string) ([]byte, string, error) {
	if m.getMedicalFileFunc != nil {
		return m.getMedicalFileFunc(fileID)
	}
	return nil, "", ErrMedicalFileNotFound
}
