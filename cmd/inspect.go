package cmd

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"smart-employee-api/internal/smartid"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <smart-id>...",
		Short: "Decode Smart IDs into joining year, team and suffix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "YEAR", "CODE", "TEAM", "SUFFIX"})
			table.SetAutoFormatHeaders(false)
			var failed int
			for _, arg := range args {
				id, err := smartid.Parse(arg)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					failed++
					continue
				}
				year := id.Year
				if !id.KnownYear() {
					year = "unknown"
				}
				team, ok := smartid.TeamName(id.Code)
				if !ok {
					team = "general"
				}
				table.Append([]string{arg, year, id.Code, team, strconv.Itoa(id.Suffix)})
			}
			table.Render()
			if failed > 0 {
				return fmt.Errorf("%d of %d ids malformed", failed, len(args))
			}
			return nil
		},
	}
}
