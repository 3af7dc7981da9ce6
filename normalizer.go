package console

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// The hospital backend changed its payload shape several times. Every semantic
// field therefore carries an ordered alias table, resolved first-present-wins,
// and every optional field resolves to a defined placeholder instead of an
// unhandled absence.
var (
	patientIDAliases   = []string{"userId", "UserID", "userID", "user_id", "id"}
	patientNameAliases = []string{"patientName", "patient_name", "fullname", "fullName"}
	fileIDAliases      = []string{"fileId", "FileId", "fileID", "file_id", "id"}
	fileNameAliases    = []string{"fileName", "filename", "Name", "name"}
	uploadDateAliases  = []string{"UploadDate", "uploadDate", "upload_date", "createdAt", "created_at"}
	linkAliases        = []string{"Link", "link", "Url", "url"}
	mimeTypeAliases    = []string{"mimeType", "MimeType", "contentType"}

	bookingIDAliases         = []string{"id", "_id", "uid", "bookingId"}
	bookingPatientAliases    = []string{"patientName", "patient_name", "fullname", "name"}
	bookingDepartmentAliases = []string{"department", "departmentId", "department_id"}
	bookingDoctorAliases     = []string{"doctorName", "doctor_name", "doctor"}
	bookingDateAliases       = []string{"appointmentDate", "appointment_date", "date"}
	bookingStatusAliases     = []string{"status", "Status"}

	departmentIDAliases     = []string{"uid", "id", "_id"}
	departmentNameAliases   = []string{"name", "Name"}
	doctorNameAliases       = []string{"name", "Name", "fullname"}
	doctorDepartmentAliases = []string{"department", "departmentId", "department_id"}

	profileIDAliases         = []string{"id", "_id", "uid", "userId", "sub"}
	profileEmailAliases      = []string{"email", "Email"}
	profileNameAliases       = []string{"name", "fullname", "fullName", "displayName"}
	profileRoleAliases       = []string{"role", "Role"}
	profileDepartmentAliases = []string{"department", "Department"}

	loginTokenAliases = []string{"idToken", "token", "accessToken", "access_token"}
)

const (
	// UnknownPatientID is the sentinel bucket for file entries that carry no
	// resolvable patient identifier. They are grouped, not dropped.
	UnknownPatientID = "unknown"

	defaultFileName = "Untitled document"
	defaultMimeType = "application/octet-stream"
)

// ResolveField returns the value of the first present, non-empty alias of a
// semantic field.
func ResolveField(raw map[string]interface{}, aliases []string) (string, bool) {
	for _, alias := range aliases {
		value, ok := raw[alias]
		if !ok {
			continue
		}
		stringValue, ok := stringifyValue(value)
		if ok {
			return stringValue, true
		}
	}
	return "", false
}

func stringifyValue(value interface{}) (string, bool) {
	switch typedValue := value.(type) {
	case string:
		if typedValue == "" {
			return "", false
		}
		return typedValue, true
	case float64:
		return strconv.FormatFloat(typedValue, 'f', -1, 64), true
	case json.Number:
		return typedValue.String(), true
	}
	return "", false
}

// NormalizeRole maps the role spellings observed across backend revisions
// (case variants and pluralized forms) onto the closed role set. Anything else,
// including patient accounts, normalizes to the empty role.
func NormalizeRole(rawRole string) UserRole {
	switch strings.ToLower(strings.TrimSpace(rawRole)) {
	case "admin", "admins":
		return RoleAdmin
	case "doctor", "doctors":
		return RoleDoctor
	case "nurse", "nurses":
		return RoleNurse
	case "staff", "staffs":
		return RoleStaff
	}
	return ""
}

// NormalizeBookingStatus lowercases the backend value and falls back to
// pending for anything outside the closed status set.
func NormalizeBookingStatus(rawStatus string) BookingStatus {
	status := BookingStatus(strings.ToLower(strings.TrimSpace(rawStatus)))
	if !status.IsValid() {
		return BookingStatusPending
	}
	return status
}

func NormalizeBooking(raw map[string]interface{}) Booking {
	id, _ := ResolveField(raw, bookingIDAliases)
	patientName, _ := ResolveField(raw, bookingPatientAliases)
	department, _ := ResolveField(raw, bookingDepartmentAliases)
	doctorName, _ := ResolveField(raw, bookingDoctorAliases)
	appointmentDate, _ := ResolveField(raw, bookingDateAliases)
	rawStatus, _ := ResolveField(raw, bookingStatusAliases)

	return Booking{
		ID:              id,
		PatientName:     patientName,
		Department:      department,
		DoctorName:      doctorName,
		AppointmentDate: appointmentDate,
		Status:          NormalizeBookingStatus(rawStatus),
	}
}

// ResolvePatientID returns the patient identifier of a file entry, or empty
// when none of the aliases is present.
func ResolvePatientID(entry MedicalFileEntry) string {
	patientID, _ := ResolveField(entry, patientIDAliases)
	return patientID
}

func NormalizeFileEntry(entry MedicalFileEntry) RecordFile {
	fileID, _ := ResolveField(entry, fileIDAliases)

	fileName, ok := ResolveField(entry, fileNameAliases)
	if !ok {
		fileName = fileID
	}
	if fileName == "" {
		fileName = defaultFileName
	}

	uploadDate, ok := ResolveField(entry, uploadDateAliases)
	if !ok {
		uploadDate = time.Now().UTC().Format(time.RFC3339)
	}

	link, _ := ResolveField(entry, linkAliases)

	mimeType, ok := ResolveField(entry, mimeTypeAliases)
	if !ok {
		mimeType = defaultMimeType
	}

	return RecordFile{
		FileID:     fileID,
		FileName:   fileName,
		UploadDate: uploadDate,
		Link:       link,
		MimeType:   mimeType,
	}
}

// NormalizeProfile maps a loosely shaped user object onto UserProfile. The
// second return value reports whether any identity field could be resolved.
func NormalizeProfile(raw map[string]interface{}) (UserProfile, bool) {
	id, idOk := ResolveField(raw, profileIDAliases)
	email, emailOk := ResolveField(raw, profileEmailAliases)
	displayName, nameOk := ResolveField(raw, profileNameAliases)
	rawRole, _ := ResolveField(raw, profileRoleAliases)
	department, _ := ResolveField(raw, profileDepartmentAliases)

	profile := UserProfile{
		ID:          id,
		Email:       email,
		DisplayName: displayName,
		Role:        NormalizeRole(rawRole),
		Department:  department,
	}

	return profile, idOk || emailOk || nameOk
}

// ResolveRawRole returns the unnormalized role spelling of a user object so
// that callers can distinguish a disallowed role from an absent one.
func ResolveRawRole(raw map[string]interface{}) (string, bool) {
	return ResolveField(raw, profileRoleAliases)
}

// ResolveLoginToken accepts both observed login response shapes: a token
// nested under an auth object, or a top-level one.
func ResolveLoginToken(raw map[string]interface{}) string {
	if auth, ok := raw["auth"].(map[string]interface{}); ok {
		if token, ok := ResolveField(auth, loginTokenAliases); ok {
			return token
		}
	}
	token, _ := ResolveField(raw, loginTokenAliases)
	return token
}

func NormalizeDirectory(raw map[string]interface{}) Directory {
	directory := Directory{
		Departments: []Department{},
		Doctors:     []Doctor{},
	}

	if rawDepartments, ok := raw["departments"].([]interface{}); ok {
		for _, rawDepartment := range rawDepartments {
			switch typedDepartment := rawDepartment.(type) {
			case string:
				// older backend revisions return bare names
				directory.Departments = append(directory.Departments, Department{ID: typedDepartment, Name: typedDepartment})
			case map[string]interface{}:
				id, _ := ResolveField(typedDepartment, departmentIDAliases)
				name, _ := ResolveField(typedDepartment, departmentNameAliases)
				if name == "" {
					name = id
				}
				directory.Departments = append(directory.Departments, Department{ID: id, Name: name})
			}
		}
	}

	if rawDoctors, ok := raw["doctors"].([]interface{}); ok {
		for _, rawDoctor := range rawDoctors {
			typedDoctor, ok := rawDoctor.(map[string]interface{})
			if !ok {
				continue
			}
			name, _ := ResolveField(typedDoctor, doctorNameAliases)
			department, _ := ResolveField(typedDoctor, doctorDepartmentAliases)
			directory.Doctors = append(directory.Doctors, Doctor{Name: name, Department: department})
		}
	}

	return directory
}

// decodeObjectList accepts both response envelopes observed on list endpoints:
// {"data": [...]} and a bare JSON array.
func decodeObjectList(body []byte) ([]map[string]interface{}, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 {
		body = envelope.Data
	}

	var items []map[string]interface{}
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func decodeObject(body []byte) (map[string]interface{}, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 {
		var nested map[string]interface{}
		if err := json.Unmarshal(envelope.Data, &nested); err == nil {
			return nested, nil
		}
	}

	var item map[string]interface{}
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, err
	}
	return item, nil
}
