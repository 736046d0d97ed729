package dashboard

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/schoolhub/core"
	"github.com/trezcool/schoolhub/core/resource"
)

// Board is a read-only screen: a fetched list with client-side search.
type Board[T any] struct {
	name   string
	client *resource.Client[T, struct{}]
	deps   resource.Deps

	mu     sync.Mutex
	params map[string]string

	List       *resource.List[T]
	Projection *resource.Projection[T]
}

func newBoard[T any](conf *core.Config, res resource.Resource, name string, proj *resource.Projection[T], deps resource.Deps, opts []resource.ClientOption) *Board[T] {
	b := &Board[T]{
		name:       name,
		client:     resource.NewClient[T, struct{}](conf, res, opts...),
		deps:       deps,
		params:     make(map[string]string),
		Projection: proj,
	}
	b.List = resource.NewList[T](b.fetch)
	return b
}

// SetParam sets a server-side filter used by the next Load. Empty values are still sent.
func (b *Board[T]) SetParam(name, value string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.params[name] = value
}

func (b *Board[T]) fetch(ctx context.Context) ([]T, error) {
	b.mu.Lock()
	var query map[string]string
	if len(b.params) > 0 {
		query = make(map[string]string, len(b.params))
		for k, v := range b.params {
			query[k] = v
		}
	}
	b.mu.Unlock()
	return b.client.ListWith(ctx, query)
}

// Load refreshes the list, reporting failures like the editable screens do.
func (b *Board[T]) Load(ctx context.Context) error {
	err := b.List.Refresh(ctx)
	switch {
	case err == nil, err == resource.ErrStale:
		return nil
	default:
		logFailure(b.deps.Logger, "fetching "+b.name, err)
		core.NotifyError(b.deps.Notifier, "Failed to fetch "+b.name)
		return errors.Wrap(core.ErrFetchFailed, err.Error())
	}
}

func (b *Board[T]) View(q resource.Query) []T {
	return b.Projection.Project(b.List.Items(), q)
}

func logFailure(logger core.Logger, action string, err error) {
	fields := core.Fields{}
	var reqErr *resource.RequestError
	if errors.As(err, &reqErr) {
		fields = reqErr.Fields()
	}
	logger.Error(action, err, fields)
}

func NewStudents(conf *core.Config, deps resource.Deps, opts ...resource.ClientOption) *Board[Student] {
	proj := resource.NewProjection(
		func(s Student) string { return s.Name },
		func(s Student) string { return s.Email },
		func(s Student) string { return s.Class },
	)
	return newBoard(conf, StudentsResource, "students", proj, deps, opts)
}

func NewTeachers(conf *core.Config, deps resource.Deps, opts ...resource.ClientOption) *Board[Teacher] {
	proj := resource.NewProjection(
		func(t Teacher) string { return t.Name },
		func(t Teacher) string { return t.Subject },
		func(t Teacher) string { return t.Department },
	)
	return newBoard(conf, TeachersResource, "teachers", proj, deps, opts)
}

func NewClasses(conf *core.Config, deps resource.Deps, opts ...resource.ClientOption) *Board[Class] {
	proj := resource.NewProjection(
		func(c Class) string { return c.Name },
		func(c Class) string { return c.Code },
		func(c Class) string { return c.Teacher },
	)
	return newBoard(conf, ClassesResource, "classes", proj, deps, opts)
}

// NewAttendance lists attendance filtered server-side by the "date" and "class" params.
func NewAttendance(conf *core.Config, deps resource.Deps, opts ...resource.ClientOption) *Board[AttendanceRecord] {
	proj := resource.NewProjection(
		func(r AttendanceRecord) string { return r.StudentName },
		func(r AttendanceRecord) string { return r.StudentID },
	)
	b := newBoard(conf, AttendanceResource, "attendance", proj, deps, opts)
	b.SetParam("date", "")
	b.SetParam("class", "")
	return b
}

// NewGrades lists grades filtered server-side by the "class" and "subject" params.
func NewGrades(conf *core.Config, deps resource.Deps, opts ...resource.ClientOption) *Board[Grade] {
	proj := resource.NewProjection(
		func(g Grade) string { return g.StudentName },
		func(g Grade) string { return g.StudentID },
		func(g Grade) string { return g.Subject },
	)
	b := newBoard(conf, GradesResource, "grades", proj, deps, opts)
	b.SetParam("class", "")
	b.SetParam("subject", "")
	return b
}

// Home fetches the summary shown on the landing page.
type Home struct {
	client *resource.Client[Stats, struct{}]
	deps   resource.Deps
}

func NewHome(conf *core.Config, deps resource.Deps, opts ...resource.ClientOption) *Home {
	return &Home{client: resource.NewClient[Stats, struct{}](conf, StatsResource, opts...), deps: deps}
}

func (h *Home) Load(ctx context.Context) (Stats, error) {
	stats, err := h.client.Get(ctx, nil)
	if err != nil {
		logFailure(h.deps.Logger, "fetching dashboard", err)
		core.NotifyError(h.deps.Notifier, "Failed to fetch dashboard")
		return Stats{}, errors.Wrap(core.ErrFetchFailed, err.Error())
	}
	return stats, nil
}
