package fee

import (
	"github.com/trezcool/schoolhub/core"
	"github.com/trezcool/schoolhub/core/resource"
)

var (
	Types   = []string{"Monthly Fee", "Admission Fee", "Exam Fee", "Sports Fee", "Library Fee", "Transport Fee"}
	Classes = []string{"Class 1", "Class 2", "Class 3", "Class 4", "Class 5", "Class 6", "Class 7", "Class 8", "Class 9", "Class 10"}

	SettingResource = resource.Resource{Path: "fee-settings", ListKey: "feeSettings"}
)

// SettingDraft holds the editable fields of a fee setting.
type SettingDraft struct {
	FeeType     string   `json:"feeType" validate:"notblank"`
	Classes     []string `json:"classes" validate:"min=1,dive,notblank"`
	Description string   `json:"description" validate:"notblank"`
	Amount      float64  `json:"amount" validate:"gt=0"`
	ActiveFrom  string   `json:"activeFrom" validate:"omitempty,isodate"`
	ActiveTo    string   `json:"activeTo" validate:"omitempty,isodate"`
	CanOverride bool     `json:"canOverride"`
}

// Setting is a fee charged to one or more classes.
type Setting struct {
	FeeID string `json:"feeId"`
	SettingDraft
}

func (d *SettingDraft) ToggleClass(class string) {
	d.Classes = resource.ToggleString(d.Classes, core.CleanString(class))
}

type SettingScreen = resource.Controller[Setting, SettingDraft]

func NewSettingProjection() *resource.Projection[Setting] {
	return resource.NewProjection(
		func(s Setting) string { return s.FeeID },
		func(s Setting) string { return s.FeeType },
		func(s Setting) string { return s.Description },
	).WithSelector("feeType", func(s Setting) string { return s.FeeType })
}

func NewSettingScreen(conf *core.Config, deps resource.Deps, opts ...resource.ClientOption) *SettingScreen {
	client := resource.NewClient[Setting, SettingDraft](conf, SettingResource, opts...)
	return resource.NewController[Setting, SettingDraft](client, resource.Policy[Setting, SettingDraft]{
		Singular: "fee setting",
		Plural:   "fee settings",
		Key:      func(s Setting) resource.Key { return resource.Key{s.FeeID} },
		Blank:    func() SettingDraft { return SettingDraft{Classes: []string{}} },
		Seed: func(s Setting) SettingDraft {
			d := s.SettingDraft
			d.Classes = append([]string{}, s.Classes...)
			return d
		},
		Projection: NewSettingProjection(),
	}, deps)
}
