package cli

import (
	"strconv"

	"BE-HOTEL-ADMIN/app/catalog"
	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/listing"

	"github.com/spf13/cobra"
)

// Booking rows show resolved names; ids stay visible for edit and rm.
var bookings = resource[entities.Booking]{
	noun:    "booking",
	plural:  "bookings",
	ctl:     func(cat *catalog.Catalog) *listing.Controller[entities.Booking] { return cat.Bookings },
	headers: []string{"ID", "ROOM", "DATE", "BOOKED BY", "PRICE"},
	row: func(cat *catalog.Catalog, b entities.Booking) []string {
		return []string{strconv.Itoa(b.ID), cat.RoomName(b.RoomID), b.BookingDate, cat.UserName(b.BookedBy), money(b.Price)}
	},
	label: func(_ *catalog.Catalog, b entities.Booking) string { return "#" + strconv.Itoa(b.ID) },
}

func newBookingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bookings",
		Aliases: []string{"transactions"},
		Short:   "Booking commands",
	}
	cmd.AddCommand(bookings.listCmd(app))
	cmd.AddCommand(newBookingsAddCmd(app))
	cmd.AddCommand(newBookingsEditCmd(app))
	cmd.AddCommand(bookings.rmCmd(app))
	return cmd
}

func bookingFlags(cmd *cobra.Command, b *entities.Booking) {
	cmd.Flags().IntVar(&b.RoomID, "room", 0, "Room id")
	cmd.Flags().StringVar(&b.BookingDate, "date", "", "Booking date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&b.BookedBy, "user", 0, "Id of the booking user")
}

func newBookingsAddCmd(app *App) *cobra.Command {
	var input entities.Booking

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Book a room; the price is taken from the room",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(cmd, app, func(cat *catalog.Catalog) error {
				return bookings.create(cmd, app, cat, input)
			})
		},
	}
	bookingFlags(cmd, &input)
	return cmd
}

func newBookingsEditCmd(app *App) *cobra.Command {
	var input entities.Booking

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Update a booking; flags left out keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			changed := cmd.Flags().Changed
			return withCatalog(cmd, app, func(cat *catalog.Catalog) error {
				return bookings.edit(cmd, app, cat, id, func(b entities.Booking) entities.Booking {
					if changed("room") {
						b.RoomID = input.RoomID
					}
					if changed("date") {
						b.BookingDate = input.BookingDate
					}
					if changed("user") {
						b.BookedBy = input.BookedBy
					}
					return b
				})
			})
		},
	}
	bookingFlags(cmd, &input)
	return cmd
}
