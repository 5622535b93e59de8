// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wneessen/hydro/internal/favorites"
)

func (a *App) favCmd() *cobra.Command {
	var (
		url          bool
		temperatures bool
	)
	cmd := &cobra.Command{
		Use:   "fav",
		Short: "List favorite stations",
		Long: `List the favorite stations that are currently published upstream.

Favorites are stored in <config_dir>/hydro/favorites.json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page := pageFor(temperatures)
			stations, err := a.service.Favorites(cmd.Context(), page)
			if err != nil {
				return err
			}
			if err = a.presenter(page, url).List(a.stdout, stations); err != nil {
				return fmt.Errorf("failed to display favorites: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&url, "url", "u", false, "display the station's URL")
	cmd.Flags().BoolVarP(&temperatures, "temperatures", "t", false, "list water temperatures")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <ids>...",
			Short: "Add stations to the favorites",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				ids, err := favorites.ParseIDs(args)
				if err != nil {
					return err
				}
				_, err = a.service.AddFavorites(ids...)
				return err
			},
		},
		&cobra.Command{
			Use:   "rm <ids>...",
			Short: "Remove stations from the favorites",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				ids, err := favorites.ParseIDs(args)
				if err != nil {
					return err
				}
				_, err = a.service.RemoveFavorites(ids...)
				return err
			},
		},
	)
	return cmd
}
