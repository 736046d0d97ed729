package user

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/schoolhub/core"
	"github.com/trezcool/schoolhub/core/resource"
)

// store lists users role by role; writes go straight to the users endpoint.
type store struct {
	*resource.Client[User, Update]
}

// List concatenates the users of every role, students first.
func (s store) List(ctx context.Context) ([]User, error) {
	users := make([]User, 0)
	for _, role := range AllRoles {
		batch, err := s.ListWith(ctx, map[string]string{"role": role})
		if err != nil {
			return nil, errors.Wrapf(err, "listing %s users", role)
		}
		users = append(users, batch...)
	}
	return users, nil
}

// Screen edits and verifies users. Users cannot be created from here.
type Screen struct {
	*resource.Controller[User, Update]
	verifier *resource.Client[User, VerifyPatch]
}

// NewProjection searches users by email and profile names, and filters by role and status.
func NewProjection() *resource.Projection[User] {
	return resource.NewProjection(
		User.EmailOrEmpty,
		func(u User) string {
			if u.StudentData == nil {
				return ""
			}
			return u.StudentData.Name
		},
		func(u User) string {
			if u.StaffData == nil {
				return ""
			}
			return u.StaffData.NameBangla
		},
		func(u User) string {
			if u.StaffData == nil {
				return ""
			}
			return u.StaffData.NameEnglish
		},
	).
		WithSelector("role", func(u User) string { return u.Role }).
		WithSelector("status", User.Status)
}

func NewScreen(conf *core.Config, deps resource.Deps, opts ...resource.ClientOption) *Screen {
	RegisterValidators(deps.Validator)
	client := resource.NewClient[User, Update](conf, Resource, opts...)
	ctrl := resource.NewController[User, Update](store{client}, resource.Policy[User, Update]{
		Singular:      "user",
		Plural:        "users",
		Key:           func(u User) resource.Key { return resource.Key{u.ID} },
		Blank:         func() Update { return Update{Role: RoleStudent, StudentData: &StudentData{}} },
		Seed:          seed,
		Projection:    NewProjection(),
		DisableCreate: true,
	}, deps)
	return &Screen{
		Controller: ctrl,
		verifier:   resource.NewClient[User, VerifyPatch](conf, Resource, opts...),
	}
}

// ToggleVerified flips the verification flag of u and reloads the list.
func (s *Screen) ToggleVerified(ctx context.Context, u User) error {
	deps := s.Deps()
	patch := VerifyPatch{Verified: !u.Verified}
	if err := s.verifier.Update(ctx, resource.Key{u.ID}, patch); err != nil {
		fields := core.Fields{"resource": "users", "user_id": u.ID}
		var reqErr *resource.RequestError
		if errors.As(err, &reqErr) {
			for k, v := range reqErr.Fields() {
				fields[k] = v
			}
		}
		deps.Logger.Error("verifying user", err, fields)
		core.NotifyError(deps.Notifier, "Failed to verify user")
		return errors.Wrap(core.ErrMutationFailed, err.Error())
	}

	if patch.Verified {
		core.NotifySuccess(deps.Notifier, "User verified successfully")
	} else {
		core.NotifySuccess(deps.Notifier, "User unverified successfully")
	}
	_ = s.Load(ctx)
	return nil
}
