package result

import (
	"sort"
	"strconv"

	"github.com/trezcool/schoolhub/core"
	"github.com/trezcool/schoolhub/core/resource"
)

var (
	Classes  = []string{"Class 1", "Class 2", "Class 3", "Class 4", "Class 5", "Class 6", "Class 7", "Class 8", "Class 9", "Class 10"}
	Exams    = []string{"First Term", "Mid Term", "Final Term", "Unit Test"}
	Subjects = []string{"Mathematics", "English", "Science", "Social Studies", "Bangla", "Religion"}

	Resource = resource.Resource{Path: "results", ListKey: "results"}
)

// Draft holds the editable fields of a student's exam result.
// Total is only recomputed on demand, see CalculateTotal.
type Draft struct {
	StudentID   string             `json:"studentId" validate:"notblank"`
	StudentName string             `json:"studentName" validate:"notblank"`
	Class       string             `json:"class" validate:"notblank"`
	Exam        string             `json:"exam" validate:"notblank"`
	Subjects    map[string]float64 `json:"subjects"`
	Total       string             `json:"total"`
	Rank        string             `json:"rank"`
}

type Result struct {
	ID string `json:"id"`
	Draft
}

// SetMark records the mark of one subject.
func (d *Draft) SetMark(subject string, mark float64) {
	if d.Subjects == nil {
		d.Subjects = make(map[string]float64)
	}
	d.Subjects[core.CleanString(subject)] = mark
}

// CalculateTotal sums the subject marks into Total.
func (d *Draft) CalculateTotal() {
	var total float64
	for _, mark := range d.Subjects {
		total += mark
	}
	d.Total = strconv.FormatFloat(total, 'f', -1, 64)
}

// SubjectNames returns the subjects with a mark, sorted.
func (r Result) SubjectNames() []string {
	names := make([]string, 0, len(r.Subjects))
	for name := range r.Subjects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func blank() Draft {
	return Draft{Subjects: map[string]float64{}}
}

func seed(r Result) Draft {
	d := r.Draft
	d.Subjects = make(map[string]float64, len(r.Subjects))
	for k, v := range r.Subjects {
		d.Subjects[k] = v
	}
	return d
}
