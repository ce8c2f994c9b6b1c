package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-linalg/la"
	"github.com/ajroetker/go-linalg/la/native"
)

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List registered native backends and the current selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			title := cases.Title(language.English)

			fmt.Fprintf(out, "CPU: %s\n", la.CurrentFeatures())
			if !native.Enabled() {
				fmt.Fprintf(out, "Native: disabled by %s\n", la.EnvNoNative)
			}

			selected := ""
			if b := native.Current(); b != nil {
				selected = b.Name()
			}
			entries := native.Global.List()
			for _, e := range entries {
				mark := " "
				if e.Name() == selected {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %-12s priority %d\n", mark, title.String(e.Name()), e.Priority)
			}
			names := lo.Map(entries, func(e native.Entry, _ int) string { return e.Name() })
			fmt.Fprintf(out, "Set %s to one of: %s\n", la.EnvBackend, strings.Join(names, ", "))
			return nil
		},
	}
}
