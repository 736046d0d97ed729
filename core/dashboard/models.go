package dashboard

import (
	"bytes"
	"encoding/json"

	"github.com/trezcool/schoolhub/core/resource"
)

// Attendance statuses
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLate    = "Late"
)

var (
	StudentsResource   = resource.Resource{Path: "api/students"}
	TeachersResource   = resource.Resource{Path: "api/teachers"}
	ClassesResource    = resource.Resource{Path: "api/classes"}
	AttendanceResource = resource.Resource{Path: "api/attendance"}
	GradesResource     = resource.Resource{Path: "api/grades"}
	StatsResource      = resource.Resource{Path: "api/dashboard"}
)

// ID accepts both numeric and string identifiers.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

type Student struct {
	ID             ID     `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Grade          string `json:"grade"`
	Class          string `json:"class"`
	Status         string `json:"status"`
	Phone          string `json:"phone"`
	EnrollmentDate string `json:"enrollmentDate"`
}

type Teacher struct {
	ID         ID       `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Subject    string   `json:"subject"`
	Department string   `json:"department"`
	Experience string   `json:"experience"`
	Phone      string   `json:"phone"`
	Status     string   `json:"status"`
	Classes    []string `json:"classes"`
}

type Class struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Teacher  string `json:"teacher"`
	Schedule string `json:"schedule"`
	Room     string `json:"room"`
	Students int    `json:"students"`
	Capacity int    `json:"capacity"`
	Semester string `json:"semester"`
	Status   string `json:"status"`
}

// FillRatio returns students/capacity, 0 when the capacity is unknown.
func (c Class) FillRatio() float64 {
	if c.Capacity <= 0 {
		return 0
	}
	return float64(c.Students) / float64(c.Capacity)
}

type AttendanceRecord struct {
	ID          ID     `json:"id"`
	StudentName string `json:"studentName"`
	StudentID   string `json:"studentId"`
	Class       string `json:"class"`
	Subject     string `json:"subject"`
	Status      string `json:"status"`
	Time        string `json:"time"`
	Date        string `json:"date"`
}

type Grade struct {
	ID          ID      `json:"id"`
	StudentName string  `json:"studentName"`
	StudentID   string  `json:"studentId"`
	Class       string  `json:"class"`
	Subject     string  `json:"subject"`
	Assignment  string  `json:"assignment"`
	Grade       float64 `json:"grade"`
	MaxGrade    float64 `json:"maxGrade"`
	Percentage  float64 `json:"percentage"`
	LetterGrade string  `json:"letterGrade"`
	Date        string  `json:"date"`
	Trend       string  `json:"trend"`
}

// Stats is the home dashboard summary.
type Stats struct {
	TotalStudents  int     `json:"totalStudents"`
	TotalTeachers  int     `json:"totalTeachers"`
	TotalClasses   int     `json:"totalClasses"`
	AttendanceRate float64 `json:"attendanceRate"`
	AverageGrade   float64 `json:"averageGrade"`
	UpcomingEvents int     `json:"upcomingEvents"`
}
