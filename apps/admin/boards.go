package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/trezcool/schoolhub/core"
	"github.com/trezcool/schoolhub/core/dashboard"
	"github.com/trezcool/schoolhub/core/resource"
)

var nowFunc = time.Now // mockable

// boardCommand lists a read-only dashboard.
type boardCommand[T any] struct {
	name  string
	board *dashboard.Board[T]

	// params are server-side filters exposed as flags, with their default value
	params  []string
	deflt   func(param string) string
	columns []string
	row     func(T) []string
	summary func(shown []T) string // optional, printed after the table
}

func (c *boardCommand[T]) actions() []string { return []string{"list"} }

func (c *boardCommand[T]) run(ctx context.Context, cli *commandLine, _ string, args []string) error {
	fs := cli.newFlagSet(c.name + " list")
	search := fs.String("search", "", "case-insensitive text search")
	params := make(map[string]*string, len(c.params))
	for _, p := range c.params {
		def := ""
		if c.deflt != nil {
			def = c.deflt(p)
		}
		params[p] = fs.String(p, def, "server-side "+p+" filter")
	}
	if err := fs.Parse(args); err != nil {
		return errHelp
	}

	for p, v := range params {
		c.board.SetParam(p, *v)
	}
	if err := c.board.Load(ctx); err != nil {
		return err
	}

	shown := c.board.View(resource.Query{Search: *search})
	rows := make([][]string, 0, len(shown))
	for _, item := range shown {
		rows = append(rows, c.row(item))
	}
	if err := printTable(cli.out, c.columns, rows); err != nil {
		return err
	}
	if c.summary != nil {
		fmt.Fprintln(cli.out, c.summary(shown))
	}
	return nil
}

func newStudentsCommand(cli *commandLine) command {
	return &boardCommand[dashboard.Student]{
		name:    "students",
		board:   dashboard.NewStudents(cli.conf, cli.deps, cli.opts...),
		columns: []string{"ID", "NAME", "EMAIL", "GRADE", "CLASS", "STATUS", "PHONE", "ENROLLED"},
		row: func(s dashboard.Student) []string {
			return []string{string(s.ID), s.Name, s.Email, s.Grade, s.Class, s.Status, s.Phone, s.EnrollmentDate}
		},
	}
}

func newTeachersCommand(cli *commandLine) command {
	return &boardCommand[dashboard.Teacher]{
		name:    "teachers",
		board:   dashboard.NewTeachers(cli.conf, cli.deps, cli.opts...),
		columns: []string{"ID", "NAME", "SUBJECT", "DEPARTMENT", "EXPERIENCE", "STATUS", "CLASSES"},
		row: func(t dashboard.Teacher) []string {
			return []string{string(t.ID), t.Name, t.Subject, t.Department, t.Experience, t.Status, strings.Join(t.Classes, ", ")}
		},
	}
}

func newClassesCommand(cli *commandLine) command {
	return &boardCommand[dashboard.Class]{
		name:    "classes",
		board:   dashboard.NewClasses(cli.conf, cli.deps, cli.opts...),
		columns: []string{"ID", "NAME", "CODE", "TEACHER", "ROOM", "SCHEDULE", "ENROLLMENT", "STATUS"},
		row: func(c dashboard.Class) []string {
			fill := fmt.Sprintf("%d/%d (%.0f%%)", c.Students, c.Capacity, c.FillRatio()*100)
			return []string{string(c.ID), c.Name, c.Code, c.Teacher, c.Room, c.Schedule, fill, c.Status}
		},
	}
}

func newAttendanceCommand(cli *commandLine) command {
	return &boardCommand[dashboard.AttendanceRecord]{
		name:   "attendance",
		board:  dashboard.NewAttendance(cli.conf, cli.deps, cli.opts...),
		params: []string{"date", "class"},
		deflt: func(param string) string {
			if param == "date" {
				return nowFunc().Format(core.DateLayout)
			}
			return ""
		},
		columns: []string{"STUDENT ID", "NAME", "CLASS", "SUBJECT", "STATUS", "TIME"},
		row: func(r dashboard.AttendanceRecord) []string {
			return []string{r.StudentID, r.StudentName, r.Class, r.Subject, r.Status, r.Time}
		},
		summary: func(shown []dashboard.AttendanceRecord) string {
			s := dashboard.CountAttendance(shown)
			return fmt.Sprintf("Present: %d  Absent: %d  Late: %d  Total: %d", s.Present, s.Absent, s.Late, s.Total)
		},
	}
}

func newGradesCommand(cli *commandLine) command {
	return &boardCommand[dashboard.Grade]{
		name:    "grades",
		board:   dashboard.NewGrades(cli.conf, cli.deps, cli.opts...),
		params:  []string{"class", "subject"},
		columns: []string{"STUDENT ID", "NAME", "CLASS", "SUBJECT", "ASSIGNMENT", "GRADE", "%", "LETTER", "BAND", "DATE"},
		row: func(g dashboard.Grade) []string {
			return []string{
				g.StudentID, g.StudentName, g.Class, g.Subject, g.Assignment,
				formatFloat(g.Grade) + "/" + formatFloat(g.MaxGrade), formatFloat(g.Percentage),
				g.LetterGrade, dashboard.Band(g.Percentage), g.Date,
			}
		},
		summary: func(shown []dashboard.Grade) string {
			s := dashboard.SummarizeGrades(shown)
			return fmt.Sprintf("Average: %d%%  Highest: %s%%  Lowest: %s%%  Total: %d",
				s.Average, formatFloat(s.Highest), formatFloat(s.Lowest), s.Total)
		},
	}
}

type homeCommand struct {
	home *dashboard.Home
}

func newHomeCommand(cli *commandLine) command {
	return homeCommand{home: dashboard.NewHome(cli.conf, cli.deps, cli.opts...)}
}

func (homeCommand) actions() []string { return []string{"list"} }

func (c homeCommand) run(ctx context.Context, cli *commandLine, _ string, args []string) error {
	if err := cli.newFlagSet("dashboard list").Parse(args); err != nil {
		return errHelp
	}
	stats, err := c.home.Load(ctx)
	if err != nil {
		return err
	}
	return printTable(cli.out, []string{"METRIC", "VALUE"}, [][]string{
		{"Total Students", fmt.Sprint(stats.TotalStudents)},
		{"Total Teachers", fmt.Sprint(stats.TotalTeachers)},
		{"Active Classes", fmt.Sprint(stats.TotalClasses)},
		{"Attendance Rate", formatFloat(stats.AttendanceRate) + "%"},
		{"Average Grade", formatFloat(stats.AverageGrade) + "%"},
		{"Upcoming Events", fmt.Sprint(stats.UpcomingEvents)},
	})
}
