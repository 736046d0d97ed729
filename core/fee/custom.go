package fee

import (
	"github.com/trezcool/schoolhub/core"
	"github.com/trezcool/schoolhub/core/resource"
)

var CustomFeeResource = resource.Resource{Path: "custom-student-fees", ListKey: "customFees"}

// CustomFee overrides the amount of a fee for a single student.
// It is keyed by (StudentID, FeeID); both are fixed once created.
type CustomFee struct {
	StudentID     string  `json:"studentId" validate:"notblank"`
	FeeID         string  `json:"feeId" validate:"notblank"`
	NewAmount     float64 `json:"newAmount" validate:"gt=0"`
	EffectiveFrom string  `json:"effectiveFrom" validate:"required,isodate"`
	Active        bool    `json:"active"`
	Reason        string  `json:"reason"`
}

// The draft carries the same fields as the record.
type CustomFeeDraft = CustomFee

func (f CustomFee) Key() resource.Key { return resource.Key{f.StudentID, f.FeeID} }

type CustomFeeScreen = resource.Controller[CustomFee, CustomFeeDraft]

func NewCustomFeeProjection() *resource.Projection[CustomFee] {
	return resource.NewProjection(
		func(f CustomFee) string { return f.StudentID },
		func(f CustomFee) string { return f.FeeID },
	)
}

func NewCustomFeeScreen(conf *core.Config, deps resource.Deps, opts ...resource.ClientOption) *CustomFeeScreen {
	client := resource.NewClient[CustomFee, CustomFeeDraft](conf, CustomFeeResource, opts...)
	return resource.NewController[CustomFee, CustomFeeDraft](client, resource.Policy[CustomFee, CustomFeeDraft]{
		Singular: "custom fee",
		Plural:   "custom student fees",
		Key:      CustomFee.Key,
		Blank:    func() CustomFeeDraft { return CustomFeeDraft{Active: true} },
		Seed:     func(f CustomFee) CustomFeeDraft { return f },
		PinKey: func(d *CustomFeeDraft, rec CustomFee) {
			d.StudentID = rec.StudentID
			d.FeeID = rec.FeeID
		},
		Projection: NewCustomFeeProjection(),
	}, deps)
}
