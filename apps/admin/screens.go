package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/schoolhub/core/exam"
	"github.com/trezcool/schoolhub/core/fee"
	"github.com/trezcool/schoolhub/core/resource"
	"github.com/trezcool/schoolhub/core/result"
	"github.com/trezcool/schoolhub/core/user"
)

func newExamCommand(cli *commandLine) command {
	return &crudCommand[exam.Config, exam.ConfigDraft]{
		name:    "exams",
		ctrl:    exam.NewScreen(cli.conf, cli.deps, cli.opts...),
		columns: []string{"ID", "CLASS", "EXAM", "SUBJECTS"},
		row: func(c exam.Config) []string {
			return []string{c.ID, c.Class, c.Exam, strings.Join(c.Subjects, ", ")}
		},
		toggle: (*exam.ConfigDraft).ToggleSubject,
	}
}

func newFeeSettingCommand(cli *commandLine) command {
	return &crudCommand[fee.Setting, fee.SettingDraft]{
		name:    "fee-settings",
		ctrl:    fee.NewSettingScreen(cli.conf, cli.deps, cli.opts...),
		columns: []string{"FEE ID", "TYPE", "CLASSES", "DESCRIPTION", "AMOUNT", "ACTIVE FROM", "ACTIVE TO", "OVERRIDABLE"},
		row: func(s fee.Setting) []string {
			return []string{
				s.FeeID, s.FeeType, strings.Join(s.Classes, ", "), s.Description,
				cli.money.Format(s.Amount), s.ActiveFrom, s.ActiveTo, yesNo(s.CanOverride),
			}
		},
		toggle: (*fee.SettingDraft).ToggleClass,
	}
}

func newFeeCollectionCommand(cli *commandLine) command {
	return &crudCommand[fee.Collection, fee.CollectionDraft]{
		name:    "fee-collections",
		ctrl:    fee.NewCollectionScreen(cli.conf, cli.deps, cli.opts...),
		columns: []string{"ID", "DATE", "STUDENT", "FEE", "MONTH", "YEAR", "QTY", "PAID", "METHOD"},
		row: func(c fee.Collection) []string {
			return []string{
				c.CollectionID, c.Date, c.StudentID, c.FeeID, c.Month, c.Year,
				fmt.Sprint(c.Quantity), cli.money.Format(c.AmountPaid), c.PaymentMethod,
			}
		},
		footer: func(shown []fee.Collection) []string {
			return []string{"TOTAL", "", "", "", "", "", "", cli.money.Format(fee.TotalAmount(shown)), ""}
		},
	}
}

func newCustomFeeCommand(cli *commandLine) command {
	return &crudCommand[fee.CustomFee, fee.CustomFeeDraft]{
		name:    "custom-fees",
		ctrl:    fee.NewCustomFeeScreen(cli.conf, cli.deps, cli.opts...),
		columns: []string{"STUDENT", "FEE", "NEW AMOUNT", "EFFECTIVE FROM", "ACTIVE", "REASON"},
		row: func(f fee.CustomFee) []string {
			return []string{f.StudentID, f.FeeID, cli.money.Format(f.NewAmount), f.EffectiveFrom, yesNo(f.Active), f.Reason}
		},
	}
}

func newResultCommand(cli *commandLine) command {
	return &crudCommand[result.Result, result.Draft]{
		name:    "results",
		ctrl:    result.NewScreen(cli.conf, cli.deps, cli.opts...),
		columns: []string{"ID", "STUDENT ID", "NAME", "CLASS", "EXAM", "MARKS", "TOTAL", "RANK"},
		row: func(r result.Result) []string {
			marks := make([]string, 0, len(r.Subjects))
			for _, name := range r.SubjectNames() {
				marks = append(marks, name+": "+formatFloat(r.Subjects[name]))
			}
			return []string{r.ID, r.StudentID, r.StudentName, r.Class, r.Exam, strings.Join(marks, ", "), r.Total, r.Rank}
		},
		calcTotal: (*result.Draft).CalculateTotal,
	}
}

func newUserCommand(cli *commandLine) command {
	screen := user.NewScreen(cli.conf, cli.deps, cli.opts...)
	cmd := &crudCommand[user.User, user.Update]{
		name:    "users",
		ctrl:    screen.Controller,
		columns: []string{"ID", "EMAIL", "NAME", "ROLE", "STATUS"},
		row: func(u user.User) []string {
			return []string{u.ID, u.EmailOrEmpty(), u.Name(), u.Role, u.Status()}
		},
		// a role changed through -data keeps only the profile the new role uses
		normalize: func(d *user.Update) { d.SetRole(d.Role) },
	}
	cmd.extra = map[string]func(context.Context, *commandLine, []string) error{
		"verify": func(ctx context.Context, cli *commandLine, args []string) error {
			fs := newFlagSetWithKey(cli, "users verify", true)
			if err := fs.Parse(args); err != nil {
				return errHelp
			}
			key := resource.ParseKey(*fs.key)
			if key.IsZero() {
				fs.Usage()
				return errHelp
			}
			if err := screen.Load(ctx); err != nil {
				return err
			}
			u, ok := screen.Find(key)
			if !ok {
				return errors.Errorf("user %q not found", key.String())
			}
			return screen.ToggleVerified(ctx, u)
		},
	}
	return cmd
}
