// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wneessen/hydro/internal/station"
)

func (a *App) listCmd() *cobra.Command {
	var (
		first        uint
		name         string
		water        string
		url          bool
		temperatures bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all stations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query := station.Query{Name: name, Water: water}
			if cmd.Flags().Changed("first") {
				query.First.Set(int(first))
			}

			page := pageFor(temperatures)
			stations, err := a.service.Stations(cmd.Context(), page, query)
			if err != nil {
				return err
			}
			if err = a.presenter(page, url).List(a.stdout, stations); err != nil {
				return fmt.Errorf("failed to display stations: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().UintVarP(&first, "first", "f", 0, "display only the first N stations")
	cmd.Flags().StringVarP(&name, "name", "n", "", "display only stations whose name contains S")
	cmd.Flags().StringVarP(&water, "water", "w", "", "display only stations whose water contains S")
	cmd.Flags().BoolVarP(&url, "url", "u", false, "display the station's URL")
	cmd.Flags().BoolVarP(&temperatures, "temperatures", "t", false, "list water temperatures")
	return cmd
}
