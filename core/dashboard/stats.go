package dashboard

import "math"

type AttendanceStats struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Total   int `json:"total"`
}

// CountAttendance tallies records by status. Total counts every record.
func CountAttendance(records []AttendanceRecord) AttendanceStats {
	stats := AttendanceStats{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case StatusPresent:
			stats.Present++
		case StatusAbsent:
			stats.Absent++
		case StatusLate:
			stats.Late++
		}
	}
	return stats
}

type GradeStats struct {
	Average int     `json:"average"`
	Highest float64 `json:"highest"`
	Lowest  float64 `json:"lowest"`
	Total   int     `json:"total"`
}

// SummarizeGrades computes percentage statistics. Everything is 0 for no grades.
func SummarizeGrades(grades []Grade) GradeStats {
	if len(grades) == 0 {
		return GradeStats{}
	}
	stats := GradeStats{
		Total:   len(grades),
		Highest: grades[0].Percentage,
		Lowest:  grades[0].Percentage,
	}
	var sum float64
	for _, g := range grades {
		sum += g.Percentage
		stats.Highest = math.Max(stats.Highest, g.Percentage)
		stats.Lowest = math.Min(stats.Lowest, g.Percentage)
	}
	stats.Average = int(math.Round(sum / float64(len(grades))))
	return stats
}

// Grade bands, best first.
const (
	BandExcellent = "excellent" // >= 90
	BandGood      = "good"      // >= 80
	BandFair      = "fair"      // >= 70
	BandPass      = "pass"      // >= 60
	BandFail      = "fail"
)

// Band classifies a percentage.
func Band(percentage float64) string {
	switch {
	case percentage >= 90:
		return BandExcellent
	case percentage >= 80:
		return BandGood
	case percentage >= 70:
		return BandFair
	case percentage >= 60:
		return BandPass
	default:
		return BandFail
	}
}
