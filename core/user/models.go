package user

import (
	"encoding/json"

	"github.com/trezcool/schoolhub/core"
	"github.com/trezcool/schoolhub/core/resource"
)

// Roles
const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleStudent = "student"
)

// Verification statuses, as used by the status filter.
const (
	StatusVerified   = "verified"
	StatusUnverified = "unverified"
)

var (
	// AllRoles also gives the order in which users are listed.
	AllRoles = []string{RoleStudent, RoleStaff, RoleAdmin}

	Roles = []Role{
		{Name: "Student", Value: RoleStudent},
		{Name: "Staff", Value: RoleStaff},
		{Name: "Admin", Value: RoleAdmin},
	}

	Resource = resource.Resource{Path: "users", ListKey: "users"}
)

type Role struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type StudentData struct {
	StudentID    string `json:"studentId"`
	Name         string `json:"name"`
	Class        string `json:"class"`
	Number       string `json:"number"`
	Description  string `json:"description"`
	EnglishName  string `json:"englishName"`
	MotherName   string `json:"motherName"`
	FatherName   string `json:"fatherName"`
	Email        string `json:"email"`
	BloodGroup   string `json:"bloodGroup"`
	PhotoURL     string `json:"photoUrl"`
	NameBangla   string `json:"nameBangla"`
	NameEnglish  string `json:"nameEnglish"`
	AcademicYear string `json:"academicYear"`
	Section      string `json:"section"`
	Shift        string `json:"shift"`
}

type StaffData struct {
	StaffID     string    `json:"staffId"`
	NameBangla  string    `json:"nameBangla"`
	NameEnglish string    `json:"nameEnglish"`
	Subject     string    `json:"subject"`
	Designation string    `json:"designation"`
	JoiningDate core.Date `json:"joiningDate"`
	NID         string    `json:"nid"`
	Mobile      string    `json:"mobile"`
	Salary      float64   `json:"salary" validate:"gte=0"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	BloodGroup  string    `json:"bloodGroup"`
	WorkingDays int       `json:"workingDays" validate:"gte=0"`
	PhotoURL    string    `json:"photoUrl"`
}

// User is an account awaiting or holding verification.
// Students carry StudentData; staff and admins carry StaffData.
type User struct {
	ID            string          `json:"id"`
	Email         *string         `json:"email"`
	Role          string          `json:"role"`
	Verified      bool            `json:"verified"`
	CreatedAt     json.RawMessage `json:"createdAt,omitempty"`
	StudentData   *StudentData    `json:"studentData,omitempty"`
	StaffData     *StaffData      `json:"staffData,omitempty"`
	UID           string          `json:"uid,omitempty"`
	DisplayName   string          `json:"displayName,omitempty"`
	PhotoURL      string          `json:"photoURL,omitempty"`
	EmailVerified bool            `json:"emailVerified,omitempty"`
}

func (u User) IsAdmin() bool   { return u.Role == RoleAdmin }
func (u User) IsStaff() bool   { return u.Role == RoleStaff }
func (u User) IsStudent() bool { return u.Role == RoleStudent }

// HasStaffProfile reports whether the role is described by StaffData.
func HasStaffProfile(role string) bool { return role == RoleStaff || role == RoleAdmin }

func (u User) EmailOrEmpty() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}

// Name returns the best known name of the user.
func (u User) Name() string {
	switch {
	case u.StudentData != nil && u.StudentData.Name != "":
		return u.StudentData.Name
	case u.StaffData != nil && u.StaffData.NameBangla != "":
		return u.StaffData.NameBangla
	case u.StaffData != nil && u.StaffData.NameEnglish != "":
		return u.StaffData.NameEnglish
	}
	return "N/A"
}

// Status returns StatusVerified or StatusUnverified.
func (u User) Status() string {
	if u.Verified {
		return StatusVerified
	}
	return StatusUnverified
}

// Update is what may be changed on an existing User.
type Update struct {
	Email       *string      `json:"email"`
	Role        string       `json:"role" validate:"oneof=admin staff student"`
	Verified    bool         `json:"verified"`
	StudentData *StudentData `json:"studentData,omitempty"`
	StaffData   *StaffData   `json:"staffData,omitempty"`

	userID string // fills missing profile ids
}

// SetRole changes the role and keeps only the profile that role uses.
// A new profile gets the same id and email fallbacks as an edited one.
func (uu *Update) SetRole(role string) {
	uu.Role = role
	switch {
	case role == RoleStudent:
		uu.StaffData = nil
		if uu.StudentData == nil {
			uu.StudentData = &StudentData{}
		}
	case HasStaffProfile(role):
		uu.StudentData = nil
		if uu.StaffData == nil {
			uu.StaffData = &StaffData{}
		}
	}
	uu.fillProfile()
}

// fillProfile defaults the profile id to the user id and the profile email to the account email.
func (uu *Update) fillProfile() {
	email := ""
	if uu.Email != nil {
		email = *uu.Email
	}
	if p := uu.StudentData; p != nil {
		if p.StudentID == "" {
			p.StudentID = uu.userID
		}
		if p.Email == "" {
			p.Email = email
		}
	}
	if p := uu.StaffData; p != nil {
		if p.StaffID == "" {
			p.StaffID = uu.userID
		}
		if p.Email == "" {
			p.Email = email
		}
	}
}

// VerifyPatch only flips the verification flag.
type VerifyPatch struct {
	Verified bool `json:"verified"`
}

// seed builds the edit draft of u, filling missing profile ids and emails from the account.
func seed(u User) Update {
	uu := Update{
		Role:     u.Role,
		Verified: u.Verified,
		userID:   u.ID,
	}
	if u.Email != nil {
		email := *u.Email
		uu.Email = &email
	}

	switch {
	case u.Role == RoleStudent:
		sd := StudentData{}
		if u.StudentData != nil {
			sd = *u.StudentData
		}
		uu.StudentData = &sd
	case HasStaffProfile(u.Role):
		sd := StaffData{}
		if u.StaffData != nil {
			sd = *u.StaffData
		}
		uu.StaffData = &sd
	}
	uu.fillProfile()
	return uu
}
