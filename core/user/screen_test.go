package user_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/schoolhub/core/resource"
	. "github.com/trezcool/schoolhub/core/user"
	"github.com/trezcool/schoolhub/tests"
)

func setup(t *testing.T) (*testutil.Backend, *Screen) {
	backend := testutil.NewBackend(t)
	backend.AddCollection(Resource, []string{"id"},
		User{ID: "A1", Email: testutil.StrPtr("head@school.bd"), Role: RoleAdmin, Verified: true, StaffData: &StaffData{NameEnglish: "Head"}},
		User{ID: "T1", Email: testutil.StrPtr("karim@school.bd"), Role: RoleStaff, StaffData: &StaffData{NameBangla: "করিম", NameEnglish: "Karim"}},
		User{ID: "S1", Email: testutil.StrPtr("rahim@school.bd"), Role: RoleStudent, StudentData: &StudentData{Name: "Rahim", Class: "Class 5"}},
		User{ID: "S2", Role: RoleStudent, Verified: true, StudentData: &StudentData{Name: "Salma"}},
	)
	deps, _ := testutil.NewDeps()
	return backend, NewScreen(backend.Config(), deps)
}

func userIDs(users []User) []string {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

func TestScreen_Load(t *testing.T) {
	backend, screen := setup(t)
	if err := screen.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// students, then staff, then admins
	assert.Equal(t, []string{"S1", "S2", "T1", "A1"}, userIDs(screen.List.Items()))

	roles := make([]string, 0)
	for _, req := range backend.Requests() {
		roles = append(roles, req.Query.Get("role"))
	}
	assert.Equal(t, []string{RoleStudent, RoleStaff, RoleAdmin}, roles)
}

func TestScreen_Load_AnyRoleFails(t *testing.T) {
	backend, screen := setup(t)
	ctx := context.Background()
	_ = screen.Load(ctx)

	backend.Fail(http.MethodGet, Resource.Path, http.StatusInternalServerError)
	assert.Error(t, screen.Load(ctx))
	assert.Len(t, screen.List.Items(), 4, "previous list is kept")
}

func TestScreen_View(t *testing.T) {
	_, screen := setup(t)
	_ = screen.Load(context.Background())

	tests := []struct {
		name string
		q    resource.Query
		want []string
	}{
		{name: "email", q: resource.Query{Search: "HEAD@"}, want: []string{"A1"}},
		{name: "student name", q: resource.Query{Search: "salma"}, want: []string{"S2"}},
		{name: "bangla name", q: resource.Query{Search: "করিম"}, want: []string{"T1"}},
		{name: "english name", q: resource.Query{Search: "karim"}, want: []string{"T1"}},
		{name: "role", q: resource.Query{Selectors: map[string]string{"role": RoleStudent}}, want: []string{"S1", "S2"}},
		{name: "verified", q: resource.Query{Selectors: map[string]string{"status": StatusVerified}}, want: []string{"S2", "A1"}},
		{
			name: "unverified students",
			q:    resource.Query{Selectors: map[string]string{"role": RoleStudent, "status": StatusUnverified}},
			want: []string{"S1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userIDs(screen.View(tt.q)))
		})
	}
}

func TestScreen_ToggleVerified(t *testing.T) {
	backend, screen := setup(t)
	ctx := context.Background()
	_ = screen.Load(ctx)

	u, _ := screen.Find(resource.Key{"S1"})
	if err := screen.ToggleVerified(ctx, u); err != nil {
		t.Fatalf("ToggleVerified() error = %v", err)
	}
	u, _ = screen.Find(resource.Key{"S1"})
	assert.True(t, u.Verified)

	var put testutil.Request
	for _, req := range backend.Requests() {
		if req.Method == http.MethodPut {
			put = req
		}
	}
	assert.Equal(t, "/users/S1", put.Path)
	assert.Equal(t, testutil.Record{"verified": true}, put.Body)

	if err := screen.ToggleVerified(ctx, u); err != nil {
		t.Fatalf("ToggleVerified() error = %v", err)
	}
	u, _ = screen.Find(resource.Key{"S1"})
	assert.False(t, u.Verified)
}

func TestScreen_ToggleVerified_Fails(t *testing.T) {
	backend, screen := setup(t)
	ctx := context.Background()
	_ = screen.Load(ctx)
	backend.Fail(http.MethodPut, Resource.Path, http.StatusInternalServerError)

	u, _ := screen.Find(resource.Key{"S1"})
	assert.Error(t, screen.ToggleVerified(ctx, u))
	u, _ = screen.Find(resource.Key{"S1"})
	assert.False(t, u.Verified)
}

func TestScreen_Submit(t *testing.T) {
	backend, screen := setup(t)
	ctx := context.Background()
	_ = screen.Load(ctx)

	// users are never created here
	screen.OpenCreate()
	assert.Equal(t, resource.ErrCreateDisabled, screen.Submit(ctx))

	u, _ := screen.Find(resource.Key{"S1"})
	screen.OpenEdit(u)
	d := screen.Form.Draft()
	assert.Equal(t, "S1", d.StudentData.StudentID, "profile id falls back to the user id")
	assert.Equal(t, "rahim@school.bd", d.StudentData.Email, "profile email falls back to the account email")

	// promote to staff
	d.SetRole(RoleStaff)
	d.StaffData.NameEnglish = "Rahim"
	if err := screen.Submit(ctx); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	u, ok := screen.Find(resource.Key{"S1"})
	if !ok {
		t.Fatal("S1 not listed anymore")
	}
	assert.Equal(t, RoleStaff, u.Role)
	assert.Equal(t, "Rahim", u.StaffData.NameEnglish)
	assert.Equal(t, []string{"S2", "T1", "S1", "A1"}, userIDs(screen.List.Items()), "listed with the staff now")
	assert.Equal(t, 1, backend.CountRequests(http.MethodPut))
}
