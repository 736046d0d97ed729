package exam_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/schoolhub/core"
	. "github.com/trezcool/schoolhub/core/exam"
	"github.com/trezcool/schoolhub/core/resource"
	"github.com/trezcool/schoolhub/tests"
)

func TestProjection_ClassSearch(t *testing.T) {
	configs := []Config{
		{ID: "E1", ConfigDraft: ConfigDraft{Class: "Class 5", Exam: "Mid Term", Subjects: []string{"Mathematics"}}},
	}
	proj := NewProjection()

	assert.Equal(t, configs, proj.Project(configs, resource.Query{Search: "class 5"}))
	assert.Empty(t, proj.Project(configs, resource.Query{Search: "class 9"}))
	assert.Len(t, proj.Project(configs, resource.Query{Search: "e1"}), 1)
}

func TestConfigDraft_ToggleSubject(t *testing.T) {
	d := ConfigDraft{Subjects: []string{"Mathematics"}}
	d.ToggleSubject(" English ")
	assert.Equal(t, []string{"Mathematics", "English"}, d.Subjects)
	d.ToggleSubject("Mathematics")
	assert.Equal(t, []string{"English"}, d.Subjects)
}

func TestConfigDraft_Validation(t *testing.T) {
	v := core.NewValidator()
	tests := []struct {
		name       string
		draft      ConfigDraft
		wantFields []string
	}{
		{name: "valid", draft: ConfigDraft{Class: "Class 1", Exam: "Final Term", Subjects: []string{"Bangla"}}},
		{name: "empty", draft: ConfigDraft{Subjects: []string{}}, wantFields: []string{"class", "exam", "subjects"}},
		{name: "blank subject", draft: ConfigDraft{Class: "Class 1", Exam: "Final Term", Subjects: []string{" "}}, wantFields: []string{"subjects[0]"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.draft)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			vErr, ok := err.(*core.ValidationError)
			if !ok {
				t.Fatalf("Struct() error = %v, want *core.ValidationError", err)
			}
			fields := make([]string, 0, len(vErr.Fields))
			for _, f := range vErr.Fields {
				fields = append(fields, f.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestScreen_EditKeepsID(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.AddCollection(Resource, []string{"id"},
		Config{ID: "E1", ConfigDraft: ConfigDraft{Class: "Class 5", Exam: "Mid Term", Subjects: []string{"Mathematics"}}},
	)
	deps, _ := testutil.NewDeps()
	screen := NewScreen(backend.Config(), deps)
	ctx := context.Background()

	if err := screen.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	rec, ok := screen.Find(resource.Key{"E1"})
	if !ok {
		t.Fatal("E1 not listed")
	}
	screen.OpenEdit(rec)
	screen.Form.Draft().ToggleSubject("Science")
	assert.Equal(t, []string{"Mathematics"}, rec.Subjects, "record untouched by draft edits")

	if err := screen.Submit(ctx); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	assert.Equal(t, []Config{
		{ID: "E1", ConfigDraft: ConfigDraft{Class: "Class 5", Exam: "Mid Term", Subjects: []string{"Mathematics", "Science"}}},
	}, screen.List.Items())
}
