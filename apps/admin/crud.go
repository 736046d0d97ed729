package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/schoolhub/core/resource"
)

// crudCommand drives an editable screen from the command line.
type crudCommand[T, D any] struct {
	name string
	ctrl *resource.Controller[T, D]

	columns []string
	row     func(T) []string
	footer  func(shown []T) []string // optional

	toggle    func(d *D, v string) // optional, enables -toggle
	calcTotal func(d *D)           // optional, enables -calc-total
	normalize func(d *D)           // optional, run last on every draft

	extra map[string]func(ctx context.Context, cli *commandLine, args []string) error
}

func (c *crudCommand[T, D]) actions() []string {
	acts := []string{"list"}
	if !c.ctrl.Policy().DisableCreate {
		acts = append(acts, "create")
	}
	acts = append(acts, "update", "delete")
	for name := range c.extra {
		acts = append(acts, name)
	}
	return acts
}

func (c *crudCommand[T, D]) run(ctx context.Context, cli *commandLine, action string, args []string) error {
	switch action {
	case "list":
		return c.list(ctx, cli, args)
	case "create":
		return c.create(ctx, cli, args)
	case "update":
		return c.update(ctx, cli, args)
	case "delete":
		return c.delete(ctx, cli, args)
	}
	if fn, ok := c.extra[action]; ok {
		return fn(ctx, cli, args)
	}
	return errHelp
}

func (c *crudCommand[T, D]) list(ctx context.Context, cli *commandLine, args []string) error {
	proj := c.ctrl.Policy().Projection
	fs := cli.newFlagSet(c.name + " list")
	search := fs.String("search", "", "case-insensitive text search")
	selectors := make(map[string]*string)
	for _, name := range proj.SelectorNames() {
		selectors[name] = fs.String(name, "", "only show records whose "+name+" matches exactly")
	}
	if err := fs.Parse(args); err != nil {
		return errHelp
	}

	q := resource.Query{Search: *search, Selectors: make(map[string]string)}
	for name, v := range selectors {
		q.Selectors[name] = *v
	}
	if err := c.ctrl.Load(ctx); err != nil {
		return err
	}

	shown := c.ctrl.View(q)
	rows := make([][]string, 0, len(shown)+1)
	for _, item := range shown {
		rows = append(rows, c.row(item))
	}
	if c.footer != nil {
		rows = append(rows, c.footer(shown))
	}
	return printTable(cli.out, c.columns, rows)
}

type draftFlags struct {
	data      *string
	toggles   stringsFlag
	calcTotal *bool
}

func (c *crudCommand[T, D]) draftFlagSet(cli *commandLine, action string) (*flagSetWithKey, *draftFlags) {
	fs := newFlagSetWithKey(cli, c.name+" "+action, action == "update")
	df := &draftFlags{data: fs.String("data", "", "JSON object merged onto the draft")}
	if c.toggle != nil {
		fs.Var(&df.toggles, "toggle", "add or remove a value from the draft's list (repeatable)")
	}
	if c.calcTotal != nil {
		df.calcTotal = fs.Bool("calc-total", false, "recompute the total before saving")
	}
	return fs, df
}

func (c *crudCommand[T, D]) apply(d *D, df *draftFlags) error {
	if *df.data != "" {
		if err := json.Unmarshal([]byte(*df.data), d); err != nil {
			return errors.Wrap(err, "invalid -data")
		}
	}
	for _, v := range df.toggles {
		c.toggle(d, v)
	}
	if df.calcTotal != nil && *df.calcTotal {
		c.calcTotal(d)
	}
	if c.normalize != nil {
		c.normalize(d)
	}
	return nil
}

func (c *crudCommand[T, D]) create(ctx context.Context, cli *commandLine, args []string) error {
	fs, df := c.draftFlagSet(cli, "create")
	if err := fs.Parse(args); err != nil {
		return errHelp
	}
	if *df.data == "" && len(df.toggles) == 0 {
		fs.Usage()
		return errHelp
	}

	c.ctrl.OpenCreate()
	if err := c.apply(c.ctrl.Form.Draft(), df); err != nil {
		c.ctrl.Cancel()
		return err
	}
	return c.ctrl.Submit(ctx)
}

func (c *crudCommand[T, D]) update(ctx context.Context, cli *commandLine, args []string) error {
	fs, df := c.draftFlagSet(cli, "update")
	if err := fs.Parse(args); err != nil {
		return errHelp
	}

	rec, err := c.find(ctx, fs)
	if err != nil {
		return err
	}
	c.ctrl.OpenEdit(rec)
	if err := c.apply(c.ctrl.Form.Draft(), df); err != nil {
		c.ctrl.Cancel()
		return err
	}
	return c.ctrl.Submit(ctx)
}

func (c *crudCommand[T, D]) delete(ctx context.Context, cli *commandLine, args []string) error {
	fs := newFlagSetWithKey(cli, c.name+" delete", true)
	yes := fs.Bool("yes", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return errHelp
	}

	rec, err := c.find(ctx, fs)
	if err != nil {
		return err
	}
	confirm := resource.ConfirmFunc(cli.confirm)
	if *yes {
		confirm = func(string) bool { return true }
	}
	deleted, err := c.ctrl.Delete(ctx, rec, confirm)
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Fprintln(cli.out, "Nothing deleted.")
	}
	return nil
}

// find loads the list and returns the record matching -key.
func (c *crudCommand[T, D]) find(ctx context.Context, fs *flagSetWithKey) (T, error) {
	var zero T
	key := resource.ParseKey(*fs.key)
	if key.IsZero() {
		fs.Usage()
		return zero, errHelp
	}
	if err := c.ctrl.Load(ctx); err != nil {
		return zero, err
	}
	rec, ok := c.ctrl.Find(key)
	if !ok {
		return zero, errors.Errorf("%s %q not found", c.ctrl.Policy().Singular, key.String())
	}
	return rec, nil
}
