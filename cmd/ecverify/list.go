package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list [platform...]",
		Short: "List the platforms with their label and fixture count",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := a.runner().WithSelection(args).Describe(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(a.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("PLATFORM", "LABEL", "FIXTURES", "DOMAINS", "CLASSIFIER")
			for _, info := range infos {
				fixtures := fmt.Sprint(info.Fixtures)
				if info.Err != nil {
					fixtures = "unreadable"
				}
				classifier := "registered"
				if !info.Registered {
					classifier = "missing"
				}
				t.Row(info.Name, info.Label, fixtures, strings.Join(info.Domains, ", "), classifier)
			}
			_, err = fmt.Fprintln(a.stdout, t.String())
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the listing as JSON")
	return cmd
}
