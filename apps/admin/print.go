package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

type flagSetWithKey struct {
	*flag.FlagSet
	key *string
}

func newFlagSetWithKey(cli *commandLine, name string, withKey bool) *flagSetWithKey {
	fs := &flagSetWithKey{FlagSet: cli.newFlagSet(name)}
	if withKey {
		fs.key = fs.String("key", "", "record key; composite keys are separated by '/', eg. STU1/FEE2")
	}
	return fs
}

// printTable writes rows as aligned columns.
func printTable(w io.Writer, columns []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
