package main

import (
	"bytes"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/schoolhub/core"
	"github.com/trezcool/schoolhub/core/dashboard"
	"github.com/trezcool/schoolhub/core/exam"
	"github.com/trezcool/schoolhub/core/fee"
	"github.com/trezcool/schoolhub/core/user"
	"github.com/trezcool/schoolhub/tests"
)

type cliTest struct {
	name       string
	args       []string // without program name
	stdin      string
	terminal   bool
	wantErr    error
	wantErrStr string
	wantOut    []string // substrings expected on stdout
	extra      func(t *testing.T, backend *testutil.Backend)
}

func setup(t *testing.T) (*testutil.Backend, func(stdin string) (*commandLine, *bytes.Buffer)) {
	backend := testutil.NewBackend(t)
	backend.AddCollection(exam.Resource, []string{"id"},
		exam.Config{ID: "E1", ConfigDraft: exam.ConfigDraft{Class: "Class 5", Exam: "Mid Term", Subjects: []string{"Mathematics"}}},
		exam.Config{ID: "E2", ConfigDraft: exam.ConfigDraft{Class: "Class 9", Exam: "Final Term", Subjects: []string{"English"}}},
	)
	backend.AddCollection(fee.CollectionResource, []string{"collectionId"},
		fee.Collection{CollectionID: "C1", CollectionDraft: fee.CollectionDraft{Date: "2025-01-10", StudentID: "STU1", FeeID: "FEE1", Month: "January", AmountPaid: 1500, PaymentMethod: "Cash"}},
		fee.Collection{CollectionID: "C2", CollectionDraft: fee.CollectionDraft{Date: "2025-02-10", StudentID: "STU2", FeeID: "FEE1", Month: "February", AmountPaid: 250, PaymentMethod: "Cash"}},
	)
	backend.AddCollection(fee.CustomFeeResource, []string{"studentId", "feeId"},
		fee.CustomFee{StudentID: "STU1", FeeID: "FEE1", NewAmount: 800, EffectiveFrom: "2025-01-01", Active: true},
	)
	backend.AddCollection(user.Resource, []string{"id"},
		user.User{ID: "S1", Email: testutil.StrPtr("rahim@school.bd"), Role: user.RoleStudent, StudentData: &user.StudentData{Name: "Rahim"}},
	)
	backend.AddCollection(dashboard.AttendanceResource, []string{"id"},
		dashboard.AttendanceRecord{ID: "1", StudentName: "Alice", StudentID: "STU001", Class: "10-A", Date: "2025-05-04", Status: dashboard.StatusPresent},
		dashboard.AttendanceRecord{ID: "2", StudentName: "Bob", StudentID: "STU002", Class: "10-A", Date: "2025-05-04", Status: dashboard.StatusLate},
		dashboard.AttendanceRecord{ID: "3", StudentName: "Alice", StudentID: "STU001", Class: "10-A", Date: "2025-05-03", Status: dashboard.StatusAbsent},
		dashboard.AttendanceRecord{ID: "4", StudentName: "Carol", StudentID: "STU003", Class: "9-C", Date: "2025-05-04", Status: dashboard.StatusAbsent},
	)
	backend.AddObject(dashboard.StatsResource, dashboard.Stats{TotalStudents: 1247, AttendanceRate: 94.2})

	newCLI := func(stdin string) (*commandLine, *bytes.Buffer) {
		deps, _ := testutil.NewDeps()
		var out bytes.Buffer
		conf := backend.Config()
		return &commandLine{
			conf:   conf,
			deps:   deps,
			money:  core.NewMoneyFormatter(conf),
			in:     strings.NewReader(stdin),
			out:    &out,
			errOut: &bytes.Buffer{},
		}, &out
	}
	return backend, newCLI
}

func runCLITests(t *testing.T, tests []cliTest) {
	defer func(orig func(int) bool) { isTerminalFunc = orig }(isTerminalFunc)

	for _, tt := range tests {
		args := append([]string{"schoolhub"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			backend, newCLI := setup(t)
			cli, out := newCLI(tt.stdin)
			terminal := tt.terminal
			isTerminalFunc = func(int) bool { return terminal }

			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
			case tt.wantErrStr != "":
				if err == nil || !strings.Contains(err.Error(), tt.wantErrStr) {
					t.Errorf("cli.run() error = %v, wantErrStr %s", err, tt.wantErrStr)
				}
			case err != nil:
				t.Errorf("cli.run() unexpected error = %v", err)
			}
			for _, s := range tt.wantOut {
				assert.Contains(t, out.String(), s)
			}
			if tt.extra != nil {
				tt.extra(t, backend)
			}
		})
	}
}

func Test_commandLine_run(t *testing.T) {
	runCLITests(t, []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown resource", args: []string{"lol"}, wantErr: errHelp},
		{name: "unknown action", args: []string{"exams", "lol"}, wantErr: errHelp},
		{name: "create on read-only board", args: []string{"students", "create"}, wantErr: errHelp},
		{name: "users cannot be created", args: []string{"users", "create"}, wantErr: errHelp},
		{name: "bad flag", args: []string{"exams", "list", "-nope"}, wantErr: errHelp},
	})
}

func pinNow(t *testing.T) {
	orig := nowFunc
	nowFunc = func() time.Time { return time.Date(2025, 5, 4, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { nowFunc = orig })
}

func Test_commandLine_list(t *testing.T) {
	pinNow(t)
	runCLITests(t, []cliTest{
		{
			name:    "default action",
			args:    []string{"exams"},
			wantOut: []string{"E1", "E2"},
		},
		{
			name:    "search",
			args:    []string{"exams", "list", "-search", "class 5"},
			wantOut: []string{"Class 5", "Mathematics"},
		},
		{
			name:    "selector",
			args:    []string{"fee-collections", "list", "-month", "February"},
			wantOut: []string{"C2", "৳250.00", "TOTAL"},
		},
		{
			name:    "total over everything shown",
			args:    []string{"fee-collections", "list"},
			wantOut: []string{"৳1,750.00"},
		},
		{
			name:    "users",
			args:    []string{"users", "list", "-role", "student"},
			wantOut: []string{"rahim@school.bd", "Rahim", "unverified"},
		},
		{
			name:    "attendance summary",
			args:    []string{"attendance", "-class", "10-A"},
			wantOut: []string{"Present: 1  Absent: 0  Late: 1  Total: 2"},
			extra: func(t *testing.T, backend *testutil.Backend) {
				q := backend.Requests()[0].Query
				assert.Equal(t, "2025-05-04", q.Get("date"))
				assert.Equal(t, "10-A", q.Get("class"))
			},
		},
		{
			name:    "dashboard",
			args:    []string{"dashboard"},
			wantOut: []string{"Total Students", "1247", "94.2%"},
		},
	})

	// fetch failures end the command with an error
	backend, newCLI := setup(t)
	backend.Fail(http.MethodGet, exam.Resource.Path, http.StatusInternalServerError)
	cli, _ := newCLI("")
	err := cli.run([]string{"schoolhub", "exams", "list"})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "fetch failed")
	}
}

func Test_commandLine_mutations(t *testing.T) {
	runCLITests(t, []cliTest{
		{name: "create: no data", args: []string{"exams", "create"}, wantErr: errHelp},
		{name: "create: bad json", args: []string{"exams", "create", "-data", "{"}, wantErrStr: "invalid -data"},
		{
			name:       "create: invalid draft",
			args:       []string{"exams", "create", "-data", `{"class":"Class 1"}`},
			wantErrStr: "please fill all required fields",
			extra: func(t *testing.T, backend *testutil.Backend) {
				assert.Equal(t, 0, backend.CountRequests(http.MethodPost))
			},
		},
		{
			name: "create",
			args: []string{"exams", "create", "-data", `{"class":"Class 1","exam":"Unit Test"}`, "-toggle", "Bangla", "-toggle", "Science"},
			extra: func(t *testing.T, backend *testutil.Backend) {
				items := backend.Items(exam.Resource.Path)
				if assert.Len(t, items, 3) {
					assert.Equal(t, []interface{}{"Bangla", "Science"}, items[2]["subjects"])
					assert.NotEmpty(t, items[2]["id"])
				}
			},
		},
		{name: "update: no key", args: []string{"exams", "update", "-toggle", "Bangla"}, wantErr: errHelp},
		{name: "update: unknown key", args: []string{"exams", "update", "-key", "E9"}, wantErrStr: `exam configuration "E9" not found`},
		{
			name: "update",
			args: []string{"exams", "update", "-key", "E1", "-toggle", "Mathematics", "-toggle", "English"},
			extra: func(t *testing.T, backend *testutil.Backend) {
				assert.Equal(t, []interface{}{"English"}, backend.Items(exam.Resource.Path)[0]["subjects"])
			},
		},
		{
			name: "update composite key",
			args: []string{"custom-fees", "update", "-key", "STU1/FEE1", "-data", `{"newAmount":650,"studentId":"STU2"}`},
			extra: func(t *testing.T, backend *testutil.Backend) {
				items := backend.Items(fee.CustomFeeResource.Path)
				if assert.Len(t, items, 1) {
					assert.Equal(t, "STU1", items[0]["studentId"])
					assert.Equal(t, 650.0, items[0]["newAmount"])
				}
			},
		},
		{
			name: "verify user",
			args: []string{"users", "verify", "-key", "S1"},
			extra: func(t *testing.T, backend *testutil.Backend) {
				assert.Equal(t, true, backend.Items(user.Resource.Path)[0]["verified"])
			},
		},
		{
			name: "change user role",
			args: []string{"users", "update", "-key", "S1", "-data", `{"role":"staff","staffData":{"nameEnglish":"Rahim","joiningDate":1705276800000}}`},
			extra: func(t *testing.T, backend *testutil.Backend) {
				u := backend.Items(user.Resource.Path)[0]
				assert.Equal(t, "staff", u["role"])
				staff, _ := u["staffData"].(map[string]interface{})
				assert.Equal(t, "2024-01-15", staff["joiningDate"])
				assert.Equal(t, "S1", staff["staffId"])
				assert.Equal(t, "rahim@school.bd", staff["email"])
			},
		},
	})
}

func Test_commandLine_delete(t *testing.T) {
	remaining := func(n int) func(t *testing.T, backend *testutil.Backend) {
		return func(t *testing.T, backend *testutil.Backend) {
			assert.Len(t, backend.Items(exam.Resource.Path), n)
		}
	}
	runCLITests(t, []cliTest{
		{name: "no key", args: []string{"exams", "delete"}, wantErr: errHelp},
		{name: "not a terminal", args: []string{"exams", "delete", "-key", "E1"}, wantOut: []string{"Nothing deleted."}, extra: remaining(2)},
		{
			name:     "refused",
			args:     []string{"exams", "delete", "-key", "E1"},
			terminal: true,
			stdin:    "n\n",
			wantOut:  []string{"Are you sure you want to delete this exam configuration? [y/N]", "Nothing deleted."},
			extra:    remaining(2),
		},
		{name: "confirmed", args: []string{"exams", "delete", "-key", "E1"}, terminal: true, stdin: "y\n", extra: remaining(1)},
		{name: "yes flag", args: []string{"exams", "delete", "-key", "E2", "-yes"}, extra: remaining(1)},
	})
}

func Test_boardCommand_defaultDate(t *testing.T) {
	pinNow(t)

	runCLITests(t, []cliTest{
		{
			name:    "today by default",
			args:    []string{"attendance"},
			wantOut: []string{"Present: 1  Absent: 1  Late: 1  Total: 3"},
			extra: func(t *testing.T, backend *testutil.Backend) {
				assert.Equal(t, "2025-05-04", backend.Requests()[0].Query.Get("date"))
			},
		},
		{
			name:    "explicit date",
			args:    []string{"attendance", "-date", "2025-05-03"},
			wantOut: []string{"Present: 0  Absent: 1  Late: 0  Total: 1"},
			extra: func(t *testing.T, backend *testutil.Backend) {
				assert.Equal(t, "2025-05-03", backend.Requests()[0].Query.Get("date"))
			},
		},
	})
}
