package console

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleDoctor UserRole = "doctor"
	RoleNurse  UserRole = "nurse"
	RoleStaff  UserRole = "staff"
)

func (r UserRole) ToString() string {
	return string(r)
}

// UserProfile is the identity the backend hands out on login, or the claims
// decoded from the bearer token when the login response carries no user object.
type UserProfile struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	DisplayName string   `json:"name"`
	Role        UserRole `json:"role"`
	Department  string   `json:"department"`
}

// Session - token presence is the sole authentication predicate, the cached
// profile is optional.
type Session struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user,omitempty"`
}

type Registration struct {
	CCCD       string `json:"cccd"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"fullname"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking - Department is either a display name or an opaque identifier
// depending on the backend revision; resolve it through Directory before
// comparing or displaying.
type Booking struct {
	ID              string        `json:"id"`
	PatientName     string        `json:"patientName"`
	Department      string        `json:"department"`
	DoctorName      string        `json:"doctorName"`
	AppointmentDate string        `json:"appointmentDate"`
	Status          BookingStatus `json:"status"`
}

// MedicalFileEntry is one raw per-file record as returned by the backend. The
// field names vary between backend revisions, so the payload is kept as a raw
// object and every read goes through the alias resolver.
type MedicalFileEntry map[string]interface{}

type RecordFile struct {
	FileID     string `json:"fileId"`
	FileName   string `json:"fileName"`
	UploadDate string `json:"uploadDate"`
	Link       string `json:"link"`
	MimeType   string `json:"mimeType"`
}

// MedicalRecord is the per-patient aggregation of flat file entries. It is
// derived on every fetch and never persisted.
type MedicalRecord struct {
	PatientID        string       `json:"patientId"`
	PatientName      string       `json:"patientName"`
	Files            []RecordFile `json:"files"`
	MostRecentUpdate string       `json:"mostRecentUpdate"`
}

type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Doctor struct {
	Name       string `json:"name"`
	Department string `json:"department"`
}

type Directory struct {
	Departments []Department `json:"departments"`
	Doctors     []Doctor     `json:"doctors"`
}

// DepartmentName resolves a department reference to its display name. Unknown
// identifiers are returned as-is, they are assumed to already be names.
func (d Directory) DepartmentName(idOrName string) string {
	for _, department := range d.Departments {
		if department.ID == idOrName {
			return department.Name
		}
	}
	return idOrName
}

type DashboardStats struct {
	TodayAppointments int `json:"todayAppointments"`
	NewAppointments   int `json:"newAppointments"`
	RecentRecords     int `json:"recentRecords"`
}

type MenuItem struct {
	ID    string     `json:"id"`
	Label string     `json:"label"`
	Roles []UserRole `json:"-"`
}

// DefaultMenu is the fixed navigation table. Order matters, the filtered menu
// keeps it.
var DefaultMenu = []MenuItem{
	{
		ID:    "dashboard",
		Label: "Dashboard",
		Roles: []UserRole{RoleAdmin, RoleDoctor, RoleNurse, RoleStaff},
	},
	{
		ID:    "appointments",
		Label: "Appointments",
		Roles: []UserRole{RoleAdmin, RoleDoctor, RoleStaff},
	},
	{
		ID:    "records",
		Label: "Medical Records",
		Roles: []UserRole{RoleAdmin, RoleDoctor, RoleNurse},
	},
	{
		ID:    "settings",
		Label: "Settings",
		Roles: []UserRole{RoleAdmin},
	},
}
