package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/schoolhub/core"
	"github.com/trezcool/schoolhub/core/resource"
)

var (
	isTerminalFunc = term.IsTerminal // mockable

	errHelp = errors.New("help provided")
)

// command runs one action against one resource.
type command interface {
	actions() []string
	run(ctx context.Context, cli *commandLine, action string, args []string) error
}

type commandLine struct {
	conf  *core.Config
	deps  resource.Deps
	opts  []resource.ClientOption
	money *core.MoneyFormatter

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cmds map[string]command
}

func (cli *commandLine) commands() map[string]command {
	if cli.cmds != nil {
		return cli.cmds
	}
	cli.cmds = map[string]command{
		"exams":           newExamCommand(cli),
		"fee-settings":    newFeeSettingCommand(cli),
		"fee-collections": newFeeCollectionCommand(cli),
		"custom-fees":     newCustomFeeCommand(cli),
		"results":         newResultCommand(cli),
		"users":           newUserCommand(cli),
		"students":        newStudentsCommand(cli),
		"teachers":        newTeachersCommand(cli),
		"classes":         newClassesCommand(cli),
		"attendance":      newAttendanceCommand(cli),
		"grades":          newGradesCommand(cli),
		"dashboard":       newHomeCommand(cli),
	}
	return cli.cmds
}

func (cli *commandLine) printUsage() {
	cmds := cli.commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  schoolhub RESOURCE ACTION [flags]")
	fmt.Fprintln(cli.out, "Resources:")
	for _, name := range names {
		fmt.Fprintf(cli.out, "  %-16s %s\n", name, strings.Join(cmds[name].actions(), ", "))
	}
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	cmd, ok := cli.commands()[args[1]]
	if !ok {
		cli.printUsage()
		return errHelp
	}

	action := "list"
	rest := args[2:]
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		action, rest = rest[0], rest[1:]
	}
	for _, a := range cmd.actions() {
		if a == action {
			return cmd.run(context.Background(), cli, action, rest)
		}
	}
	fmt.Fprintf(cli.errOut, "%s: unknown action %q (available: %s)\n", args[1], action, strings.Join(cmd.actions(), ", "))
	return errHelp
}

// newFlagSet returns a flag set reporting to the CLI error output.
func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.errOut)
	return fs
}

// confirm asks on the terminal. Without a terminal nothing is confirmed.
func (cli *commandLine) confirm(prompt string) bool {
	if !isTerminalFunc(int(syscall.Stdin)) {
		fmt.Fprintln(cli.errOut, "stdin is not a terminal: pass -yes to confirm")
		return false
	}
	fmt.Fprintf(cli.out, "%s [y/N] ", prompt)
	line, _ := bufio.NewReader(cli.in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// stringsFlag collects repeated flag values.
type stringsFlag []string

func (f *stringsFlag) String() string { return strings.Join(*f, ",") }

func (f *stringsFlag) Set(v string) error {
	*f = append(*f, v)
	return nil
}
