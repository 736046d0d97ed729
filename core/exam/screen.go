package exam

import (
	"github.com/trezcool/schoolhub/core"
	"github.com/trezcool/schoolhub/core/resource"
)

type Screen = resource.Controller[Config, ConfigDraft]

// NewProjection searches configurations by id and class.
func NewProjection() *resource.Projection[Config] {
	return resource.NewProjection(
		func(c Config) string { return c.ID },
		func(c Config) string { return c.Class },
	).
		WithSelector("class", func(c Config) string { return c.Class }).
		WithSelector("exam", func(c Config) string { return c.Exam })
}

func NewScreen(conf *core.Config, deps resource.Deps, opts ...resource.ClientOption) *Screen {
	client := resource.NewClient[Config, ConfigDraft](conf, Resource, opts...)
	return resource.NewController[Config, ConfigDraft](client, resource.Policy[Config, ConfigDraft]{
		Singular:   "exam configuration",
		Plural:     "exam configurations",
		Key:        key,
		Blank:      blank,
		Seed:       seed,
		Projection: NewProjection(),
	}, deps)
}
