package result

import (
	"github.com/trezcool/schoolhub/core"
	"github.com/trezcool/schoolhub/core/resource"
)

type Screen = resource.Controller[Result, Draft]

// NewProjection searches by student name and id, and filters by class and exam.
func NewProjection() *resource.Projection[Result] {
	return resource.NewProjection(
		func(r Result) string { return r.StudentName },
		func(r Result) string { return r.StudentID },
	).
		WithSelector("class", func(r Result) string { return r.Class }).
		WithSelector("exam", func(r Result) string { return r.Exam })
}

func NewScreen(conf *core.Config, deps resource.Deps, opts ...resource.ClientOption) *Screen {
	client := resource.NewClient[Result, Draft](conf, Resource, opts...)
	return resource.NewController[Result, Draft](client, resource.Policy[Result, Draft]{
		Singular:   "result",
		Plural:     "results",
		Key:        func(r Result) resource.Key { return resource.Key{r.ID} },
		Blank:      blank,
		Seed:       seed,
		Projection: NewProjection(),
	}, deps)
}
