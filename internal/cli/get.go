// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wneessen/hydro/internal/favorites"
)

func (a *App) getCmd() *cobra.Command {
	var temperatures bool
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Display a single station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := favorites.ParseID(args[0])
			if err != nil {
				return err
			}

			page := pageFor(temperatures)
			found, ok, err := a.service.Station(cmd.Context(), page, id)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(a.stderr, "Station %d not found.\n", id)
				return nil
			}
			if err = a.presenter(page, true).Detail(a.stdout, found); err != nil {
				return fmt.Errorf("failed to display station: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&temperatures, "temperatures", "t", false, "include the water temperature")
	return cmd
}
