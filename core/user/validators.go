package user

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/schoolhub/core"
)

var (
	profileTag  = "role_profile"
	profileText = "{0} does not match the user role"

	profileRequiredTag  = "role_profile_required"
	profileRequiredText = "{0} is required for this role"
)

// RegisterValidators registers the user struct validation on v.
func RegisterValidators(v *core.Validator) {
	v.Validate.RegisterStructValidation(updateStructValidation, Update{})
	v.RegisterCustomTranslation(profileTag, profileText)
	v.RegisterCustomTranslation(profileRequiredTag, profileRequiredText)
}

// updateStructValidation checks that exactly the profile selected by the role is provided,
// and that the email is valid when set.
func updateStructValidation(sl validator.StructLevel) {
	uu, ok := sl.Current().Interface().(Update)
	if !ok {
		return
	}

	if uu.Email != nil && *uu.Email != "" {
		if err := sl.Validator().Var(*uu.Email, "email"); err != nil {
			sl.ReportError(uu.Email, "email", "Email", "email", "")
		}
	}

	switch {
	case uu.Role == RoleStudent:
		if uu.StudentData == nil {
			sl.ReportError(uu.StudentData, "studentData", "StudentData", profileRequiredTag, "")
		}
		if uu.StaffData != nil {
			sl.ReportError(uu.StaffData, "staffData", "StaffData", profileTag, "")
		}
	case HasStaffProfile(uu.Role):
		if uu.StaffData == nil {
			sl.ReportError(uu.StaffData, "staffData", "StaffData", profileRequiredTag, "")
		}
		if uu.StudentData != nil {
			sl.ReportError(uu.StudentData, "studentData", "StudentData", profileTag, "")
		}
	}
}
