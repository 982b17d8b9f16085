package cli

import (
	"strconv"

	"BE-HOTEL-ADMIN/app/catalog"
	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/listing"

	"github.com/spf13/cobra"
)

var users = resource[entities.User]{
	noun:    "user",
	plural:  "users",
	ctl:     func(cat *catalog.Catalog) *listing.Controller[entities.User] { return cat.Users },
	headers: []string{"ID", "NAME", "EMAIL"},
	row: func(_ *catalog.Catalog, u entities.User) []string {
		return []string{strconv.Itoa(u.ID), u.Name, u.Email}
	},
	label: func(_ *catalog.Catalog, u entities.User) string { return u.Name },
}

func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Guest commands",
	}
	cmd.AddCommand(users.listCmd(app))
	cmd.AddCommand(newUsersAddCmd(app))
	cmd.AddCommand(newUsersEditCmd(app))
	cmd.AddCommand(users.rmCmd(app))
	return cmd
}

func userFlags(cmd *cobra.Command, u *entities.User) {
	cmd.Flags().StringVar(&u.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&u.Email, "email", "", "Email address")
}

func newUsersAddCmd(app *App) *cobra.Command {
	var input entities.User

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(cmd, app, func(cat *catalog.Catalog) error {
				return users.create(cmd, app, cat, input)
			})
		},
	}
	userFlags(cmd, &input)
	return cmd
}

func newUsersEditCmd(app *App) *cobra.Command {
	var input entities.User

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Update a user; flags left out keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			changed := cmd.Flags().Changed
			return withCatalog(cmd, app, func(cat *catalog.Catalog) error {
				return users.edit(cmd, app, cat, id, func(u entities.User) entities.User {
					if changed("name") {
						u.Name = input.Name
					}
					if changed("email") {
						u.Email = input.Email
					}
					return u
				})
			})
		},
	}
	userFlags(cmd, &input)
	return cmd
}
