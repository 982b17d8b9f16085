package cli

import (
	"context"
	"strconv"

	"BE-HOTEL-ADMIN/app/catalog"
	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/listing"

	"github.com/spf13/cobra"
)

var rooms = resource[entities.Room]{
	noun:    "room",
	plural:  "rooms",
	ctl:     func(cat *catalog.Catalog) *listing.Controller[entities.Room] { return cat.Rooms },
	headers: []string{"ID", "NAME", "CAPACITY", "CATEGORY", "PRICE", "STATUS"},
	row: func(_ *catalog.Catalog, r entities.Room) []string {
		return []string{strconv.Itoa(r.ID), r.Name, strconv.Itoa(r.Capacity), r.Category, money(r.Price), r.Status}
	},
	label: func(_ *catalog.Catalog, r entities.Room) string { return r.Name },
}

func newRoomsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Room commands",
	}
	cmd.AddCommand(rooms.listCmd(app))
	cmd.AddCommand(newRoomsAddCmd(app))
	cmd.AddCommand(newRoomsEditCmd(app))
	cmd.AddCommand(rooms.rmCmd(app))
	cmd.AddCommand(newRoomsStatusCmd(app, "approve", "Mark a room approved", (*catalog.Catalog).Approve))
	cmd.AddCommand(newRoomsStatusCmd(app, "reject", "Mark a room rejected", (*catalog.Catalog).Reject))
	return cmd
}

func roomFlags(cmd *cobra.Command, r *entities.Room) {
	cmd.Flags().StringVar(&r.Name, "name", "", "Room name")
	cmd.Flags().IntVar(&r.Capacity, "capacity", 0, "Number of guests")
	cmd.Flags().StringVar(&r.Category, "category", "", "kelas|labolatorium|perpustakaan|auditorium|lainnya")
	cmd.Flags().Float64Var(&r.Price, "price", 0, "Price per day")
	cmd.Flags().StringVar(&r.Status, "status", "", "available|approved|rejected")
}

func newRoomsAddCmd(app *App) *cobra.Command {
	var input entities.Room

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a room",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(cmd, app, func(cat *catalog.Catalog) error {
				return rooms.create(cmd, app, cat, input)
			})
		},
	}
	roomFlags(cmd, &input)
	return cmd
}

func newRoomsEditCmd(app *App) *cobra.Command {
	var input entities.Room

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Update a room; flags left out keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			changed := cmd.Flags().Changed
			return withCatalog(cmd, app, func(cat *catalog.Catalog) error {
				return rooms.edit(cmd, app, cat, id, func(r entities.Room) entities.Room {
					if changed("name") {
						r.Name = input.Name
					}
					if changed("capacity") {
						r.Capacity = input.Capacity
					}
					if changed("category") {
						r.Category = input.Category
					}
					if changed("price") {
						r.Price = input.Price
					}
					if changed("status") {
						r.Status = input.Status
					}
					return r
				})
			})
		},
	}
	roomFlags(cmd, &input)
	return cmd
}

func newRoomsStatusCmd(app *App, verb, short string, set func(*catalog.Catalog, context.Context, int) (entities.Room, error)) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return withCatalog(cmd, app, func(cat *catalog.Catalog) error {
				room, err := set(cat, cmd.Context(), id)
				if err != nil {
					return err
				}
				return writeRecord(cmd, app, rooms.headers, rooms.row(cat, room), room)
			})
		},
	}
}
