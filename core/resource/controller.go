package resource

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/schoolhub/core"
)

// ErrCreateDisabled is returned when submitting a create on a screen that only edits.
var ErrCreateDisabled = errors.New("records cannot be created here")

// Store is the remote side of a screen. *Client satisfies it.
type Store[T, D any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, draft D) error
	Update(ctx context.Context, key Key, draft D) error
	Delete(ctx context.Context, key Key) error
}

// Confirmer gates destructive actions.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Policy holds everything entity specific about a screen.
type Policy[T, D any] struct {
	// Singular and Plural name the entity in notifications, eg. "fee setting", "fee settings".
	Singular string
	Plural   string

	Key   func(T) Key
	Blank func() D
	Seed  func(T) D

	// Validate checks a draft before it is sent. Defaults to struct tag validation.
	Validate func(v *core.Validator, d D) error
	// PinKey restores the key fields of d from the record being edited.
	PinKey func(d *D, rec T)

	Projection *Projection[T]

	DisableCreate bool
}

type Deps struct {
	Validator *core.Validator
	Notifier  core.Notifier
	Logger    core.Logger
}

// Controller orchestrates fetching, submitting and deleting the records of one screen.
// It is meant to be driven by a single caller at a time.
type Controller[T, D any] struct {
	policy Policy[T, D]
	store  Store[T, D]
	deps   Deps

	List *List[T]
	Form *Form[T, D]
}

func NewController[T, D any](store Store[T, D], policy Policy[T, D], deps Deps) *Controller[T, D] {
	if policy.Validate == nil {
		policy.Validate = func(v *core.Validator, d D) error { return v.Struct(d) }
	}
	if policy.Projection == nil {
		policy.Projection = NewProjection[T]()
	}
	return &Controller[T, D]{
		policy: policy,
		store:  store,
		deps:   deps,
		List:   NewList[T](store.List),
		Form:   NewForm[T, D](policy.Blank, policy.Seed),
	}
}

func (c *Controller[T, D]) Policy() Policy[T, D] { return c.policy }

// Load refreshes the list. Failures are logged and notified, and returned with core.ErrFetchFailed as cause.
func (c *Controller[T, D]) Load(ctx context.Context) error {
	err := c.List.Refresh(ctx)
	switch {
	case err == nil, err == ErrStale:
		return nil
	default:
		c.fail("fetching "+c.policy.Plural, err)
		core.NotifyError(c.deps.Notifier, "Failed to fetch "+c.policy.Plural)
		return errors.Wrap(core.ErrFetchFailed, err.Error())
	}
}

// View returns the visible records for q.
func (c *Controller[T, D]) View(q Query) []T {
	return c.policy.Projection.Project(c.List.Items(), q)
}

func (c *Controller[T, D]) OpenCreate()    { c.Form.OpenCreate() }
func (c *Controller[T, D]) OpenEdit(rec T) { c.Form.OpenEdit(rec) }
func (c *Controller[T, D]) Cancel()        { c.Form.Reset() }

// Find returns the listed record with the given key.
func (c *Controller[T, D]) Find(key Key) (T, bool) {
	for _, item := range c.List.Items() {
		if c.policy.Key(item).Equal(key) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Submit validates the draft and creates or updates the record depending on the form mode.
// On success the list is refreshed and the form reset. Validation failures never reach the server.
func (c *Controller[T, D]) Submit(ctx context.Context) error {
	draft := c.Form.Draft()
	rec, editing := c.Form.Editing()
	if editing && c.policy.PinKey != nil {
		c.policy.PinKey(draft, rec)
	}
	if !editing && c.policy.DisableCreate {
		return ErrCreateDisabled
	}

	if err := c.policy.Validate(c.deps.Validator, *draft); err != nil {
		core.NotifyError(c.deps.Notifier, "Please fill all required fields")
		return err
	}

	var err error
	if editing {
		err = c.store.Update(ctx, c.policy.Key(rec), *draft)
	} else {
		err = c.store.Create(ctx, *draft)
	}
	if err != nil {
		c.fail("saving "+c.policy.Singular, err)
		core.NotifyError(c.deps.Notifier, "Failed to save "+c.policy.Singular)
		return errors.Wrap(core.ErrMutationFailed, err.Error())
	}

	verb := "created"
	if editing {
		verb = "updated"
	}
	core.NotifySuccess(c.deps.Notifier, core.UpperFirst(c.policy.Singular)+" "+verb+" successfully")

	_ = c.Load(ctx) // failures already notified
	c.Form.Reset()
	return nil
}

// Delete removes rec once confirm agrees. It reports whether a deletion happened.
func (c *Controller[T, D]) Delete(ctx context.Context, rec T, confirm Confirmer) (bool, error) {
	if confirm == nil || !confirm.Confirm("Are you sure you want to delete this "+c.policy.Singular+"?") {
		return false, nil
	}
	if err := c.store.Delete(ctx, c.policy.Key(rec)); err != nil {
		c.fail("deleting "+c.policy.Singular, err)
		core.NotifyError(c.deps.Notifier, "Failed to delete "+c.policy.Singular)
		return false, errors.Wrap(core.ErrMutationFailed, err.Error())
	}
	core.NotifySuccess(c.deps.Notifier, core.UpperFirst(c.policy.Singular)+" deleted successfully")
	_ = c.Load(ctx)
	return true, nil
}

// Store exposes the remote side for entity specific actions.
func (c *Controller[T, D]) Store() Store[T, D] { return c.store }

// Deps exposes the collaborators for entity specific actions.
func (c *Controller[T, D]) Deps() Deps { return c.deps }

func (c *Controller[T, D]) fail(action string, err error) {
	fields := core.Fields{"resource": c.policy.Plural}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		for k, v := range reqErr.Fields() {
			fields[k] = v
		}
	}
	c.deps.Logger.Error(action, err, fields)
}
