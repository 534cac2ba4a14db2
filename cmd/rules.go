package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gnolang/condlint/internal"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the available rules with their default severity and options",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printRules(cmd.OutOrStdout(), internal.DefaultRules())
	},
}

func printRules(out io.Writer, rules []internal.LintRule) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RULE\tSEVERITY\tOPTIONS\tDESCRIPTION")
	for _, rule := range rules {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rule.Name(), rule.Severity(), formatOptions(rule.Options()), rule.Description())
	}
	return w.Flush()
}

func formatOptions(options map[string]any) string {
	if len(options) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, options[key]))
	}
	return strings.Join(pairs, ",")
}
