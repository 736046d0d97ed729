package resource

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Form is the scratch draft bound to the create/edit dialog.
type Form[T, D any] struct {
	blank func() D
	seed  func(T) D

	draft   D
	editing *T
	open    bool
}

func NewForm[T, D any](blank func() D, seed func(T) D) *Form[T, D] {
	f := &Form[T, D]{blank: blank, seed: seed}
	f.Reset()
	return f
}

// OpenCreate opens the form with an empty draft.
func (f *Form[T, D]) OpenCreate() {
	f.Reset()
	f.open = true
}

// OpenEdit opens the form with a draft seeded from rec.
func (f *Form[T, D]) OpenEdit(rec T) {
	f.draft = f.seed(rec)
	f.editing = &rec
	f.open = true
}

// Reset discards the draft and returns to create defaults. The form is closed.
func (f *Form[T, D]) Reset() {
	f.draft = f.blank()
	f.editing = nil
	f.open = false
}

// Draft returns the live draft for editing.
func (f *Form[T, D]) Draft() *D { return &f.draft }

// Editing returns the record being edited, if any.
func (f *Form[T, D]) Editing() (T, bool) {
	if f.editing == nil {
		var zero T
		return zero, false
	}
	return *f.editing, true
}

func (f *Form[T, D]) Mode() Mode {
	if f.editing != nil {
		return ModeEdit
	}
	return ModeCreate
}

func (f *Form[T, D]) IsOpen() bool { return f.open }

// ToggleString adds v to set when absent, removes it when present.
// A new slice is returned; set is left untouched.
func ToggleString(set []string, v string) []string {
	out := make([]string, 0, len(set)+1)
	found := false
	for _, s := range set {
		if s == v {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found {
		out = append(out, v)
	}
	return out
}
