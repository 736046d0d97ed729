package exam

import (
	"github.com/trezcool/schoolhub/core"
	"github.com/trezcool/schoolhub/core/resource"
)

var (
	Classes  = []string{"Class 1", "Class 2", "Class 3", "Class 4", "Class 5", "Class 6", "Class 7", "Class 8", "Class 9", "Class 10"}
	Types    = []string{"First Term", "Mid Term", "Final Term", "Unit Test"}
	Subjects = []string{"Mathematics", "English", "Science", "Social Studies", "Bangla", "Religion", "Physical Education"}

	Resource = resource.Resource{Path: "exam-configs", ListKey: "configs"}
)

// ConfigDraft holds the editable fields of an exam configuration.
type ConfigDraft struct {
	Class    string   `json:"class" validate:"notblank"`
	Exam     string   `json:"exam" validate:"notblank"`
	Subjects []string `json:"subjects" validate:"min=1,dive,notblank"`
}

// Config sets which subjects a class sits for a given exam.
type Config struct {
	ID string `json:"id"`
	ConfigDraft
}

// ToggleSubject adds or removes a subject from the draft.
func (d *ConfigDraft) ToggleSubject(subject string) {
	d.Subjects = resource.ToggleString(d.Subjects, core.CleanString(subject))
}

func blank() ConfigDraft {
	return ConfigDraft{Subjects: []string{}}
}

func seed(c Config) ConfigDraft {
	return ConfigDraft{
		Class:    c.Class,
		Exam:     c.Exam,
		Subjects: append([]string{}, c.Subjects...),
	}
}

func key(c Config) resource.Key { return resource.Key{c.ID} }
