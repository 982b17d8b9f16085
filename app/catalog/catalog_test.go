package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/listing"
	"BE-HOTEL-ADMIN/app/remote"
	"BE-HOTEL-ADMIN/app/storage"
	"BE-HOTEL-ADMIN/app/validation"
)

var today = time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)

func newCatalog(t *testing.T, opts Options) (*Catalog, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	if opts.Store == nil {
		opts.Store = store
	}
	opts.Now = func() time.Time { return today }
	opts.Logger = log.New(io.Discard, "", 0)
	c := New(opts)
	if _, err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c, store
}

func slotIDs[T any](t *testing.T, store storage.Store, slot string, id func(T) int) []int {
	t.Helper()
	data, err := store.Load(context.Background(), slot)
	if err != nil {
		t.Fatalf("load slot %s: %v", slot, err)
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("decode slot %s: %v", slot, err)
	}
	out := []int{}
	for _, r := range records {
		out = append(out, id(r))
	}
	return out
}

func TestLocalModeSeedsAndCreatesRoom(t *testing.T) {
	c, store := newCatalog(t, Options{Mode: ModeLocal})
	if c.Rooms.Len() != 2 {
		t.Fatalf("expected 2 sample rooms, got %d", c.Rooms.Len())
	}

	room, err := c.Rooms.Create(context.Background(), entities.Room{Name: "207", Capacity: 30, Category: "kelas", Price: 1000000})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if room.ID != 3 || room.Status != entities.RoomAvailable {
		t.Fatalf("expected id 3 and available status, got %+v", room)
	}
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := slotIDs(t, store, SlotRooms, roomID); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("expected rooms [1 2 3] persisted, got %v", got)
	}
}

func TestLocalModeCoalescesSlotWrites(t *testing.T) {
	c, store := newCatalog(t, Options{Debounce: time.Hour})
	loadSaves := store.Saves(SlotRooms)
	if loadSaves != 1 {
		t.Fatalf("expected the seeded rooms written once on load, got %d", loadSaves)
	}

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		room := entities.Room{Name: fmt.Sprintf("30%d", i), Capacity: 10, Category: "kelas", Price: 100000}
		if _, err := c.Rooms.Create(ctx, room); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}
	if got := store.Saves(SlotRooms) - loadSaves; got != 0 {
		t.Fatalf("expected no slot writes before the debounce delay, got %d", got)
	}
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := store.Saves(SlotRooms) - loadSaves; got != 1 {
		t.Fatalf("expected 1 coalesced slot write, got %d", got)
	}
	if got := slotIDs(t, store, SlotRooms, roomID); !slices.Equal(got, []int{1, 2, 3, 4, 5, 6, 7}) {
		t.Fatalf("expected rooms [1..7] persisted, got %v", got)
	}
}

func TestRemoveRoom(t *testing.T) {
	c, store := newCatalog(t, Options{})
	_, _ = c.Rooms.Create(context.Background(), entities.Room{Name: "207", Capacity: 30, Category: "kelas", Price: 1000000})

	if err := c.Rooms.Remove(context.Background(), 2, func(r entities.Room) bool { return r.Name == "202" }); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	_ = c.Flush()
	if got := slotIDs(t, store, SlotRooms, roomID); !slices.Equal(got, []int{1, 3}) {
		t.Fatalf("expected rooms [1 3], got %v", got)
	}
}

func TestRoomValidation(t *testing.T) {
	c, _ := newCatalog(t, Options{})
	_, err := c.Rooms.Create(context.Background(), entities.Room{Name: " ", Capacity: 0, Category: "gym", Price: 10})
	errs, ok := validation.As(err)
	if !ok {
		t.Fatalf("expected validation errors, got %v", err)
	}
	for _, field := range []string{"name", "capacity", "category"} {
		if !errs.Has(field) {
			t.Fatalf("expected error on %s, got %v", field, errs)
		}
	}
	room, err := c.Rooms.Create(context.Background(), entities.Room{Name: "Lab 3", Capacity: 12, Category: "Lab", Price: 5})
	if err != nil || room.Category != entities.CategoryLaboratorium {
		t.Fatalf("expected lab alias accepted, got %+v (%v)", room, err)
	}
}

func TestUnreachableRESTFallsBackToSeed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, store := newCatalog(t, Options{Mode: ModeREST, Remote: remote.Options{BaseURL: base, Timeout: time.Second}})
	if got := slotIDs(t, store, SlotRooms, roomID); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("expected sample rooms persisted, got %v", got)
	}
	if c.Users.Len() != 2 || c.Bookings.Len() != 2 {
		t.Fatalf("expected sample users and bookings, got %d and %d", c.Users.Len(), c.Bookings.Len())
	}
}

func TestRESTModeUsesCacheWhenServerFails(t *testing.T) {
	store := storage.NewMemoryStore()
	cached := []entities.Room{{ID: 9, Name: "Aula", Capacity: 100, Category: "auditorium", Price: 1, Status: "approved"}}
	_ = listing.NewSnapshot[entities.Room](store, SlotRooms).Save(context.Background(), cached)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(Options{Mode: ModeREST, Store: store, Remote: remote.Options{BaseURL: srv.URL}, Logger: log.New(io.Discard, "", 0)})
	origins, err := c.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if origins.Rooms != listing.OriginCache || origins.Users != listing.OriginSeed {
		t.Fatalf("unexpected origins %+v", origins)
	}
	if c.RoomName(9) != "Aula" {
		t.Fatalf("expected cached room, got %v", c.Rooms.All())
	}
}

func TestBookingRules(t *testing.T) {
	c, _ := newCatalog(t, Options{})
	ctx := context.Background()

	b, err := c.Bookings.Create(ctx, entities.Booking{RoomID: 1, BookingDate: "2024-01-10", BookedBy: 2})
	if err != nil {
		t.Fatalf("Create for today: %v", err)
	}
	if b.ID != 3 || b.Price != 1500000 {
		t.Fatalf("expected id 3 priced from room 1, got %+v", b)
	}

	cases := []struct {
		name    string
		booking entities.Booking
		field   string
		message string
	}{
		{"duplicate", entities.Booking{RoomID: 1, BookingDate: "2024-01-10", BookedBy: 1}, "bookingDate", "room is already booked on this date"},
		{"past", entities.Booking{RoomID: 2, BookingDate: "2024-01-09", BookedBy: 1}, "bookingDate", "booking date cannot be in the past"},
		{"unknown room", entities.Booking{RoomID: 99, BookingDate: "2024-02-01", BookedBy: 1}, "roomId", "room not found"},
		{"unknown user", entities.Booking{RoomID: 2, BookingDate: "2024-02-01", BookedBy: 42}, "bookedBy", "user not found"},
	}
	for _, tc := range cases {
		_, err := c.Bookings.Create(ctx, tc.booking)
		errs, ok := validation.As(err)
		if !ok {
			t.Fatalf("%s: expected validation errors, got %v", tc.name, err)
		}
		found := false
		for _, fe := range errs {
			if fe.Field == tc.field && fe.Message == tc.message {
				found = true
			}
		}
		if !found {
			t.Fatalf("%s: expected %s %q, got %v", tc.name, tc.field, tc.message, errs)
		}
	}
	if c.Bookings.Len() != 3 {
		t.Fatalf("expected rejected bookings not stored, got %d", c.Bookings.Len())
	}

	// editing a booking keeps its own slot
	if _, err := c.Bookings.Update(ctx, 3, entities.Booking{RoomID: 1, BookingDate: "2024-01-10", BookedBy: 1}); err != nil {
		t.Fatalf("Update same slot: %v", err)
	}

	next, err := c.Bookings.Create(ctx, entities.Booking{RoomID: 1, BookingDate: "2024-01-11", BookedBy: 1})
	if err != nil {
		t.Fatalf("Create same room next day: %v", err)
	}
	if next.ID != 4 || c.Bookings.Len() != 4 {
		t.Fatalf("expected next-day booking stored as id 4, got %+v (%d bookings)", next, c.Bookings.Len())
	}
}

func TestBookingSearchAndSortUseNames(t *testing.T) {
	c, _ := newCatalog(t, Options{})

	c.Bookings.SetSearch("jane")
	if got := c.Bookings.Filtered(); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected booking 2 for jane, got %+v", got)
	}
	c.Bookings.SetSearch("201")
	if got := c.Bookings.Filtered(); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected booking 1 for room 201, got %+v", got)
	}

	c.Bookings.SetSearch("")
	_ = c.Bookings.SetSort("bookedBy")
	var order []int
	for _, b := range c.Bookings.Sorted() {
		order = append(order, b.ID)
	}
	if !slices.Equal(order, []int{2, 1}) {
		t.Fatalf("expected Jane before John [2 1], got %v", order)
	}
	_ = c.Bookings.SetSort("room")
	_ = c.Bookings.SetSort("room")
	order = order[:0]
	for _, b := range c.Bookings.Sorted() {
		order = append(order, b.ID)
	}
	if !slices.Equal(order, []int{2, 1}) {
		t.Fatalf("expected room 202 first descending, got %v", order)
	}
}

func TestNamesResolveOrFallBack(t *testing.T) {
	c, _ := newCatalog(t, Options{})
	if c.RoomName(1) != "201" || c.UserName(2) != "Jane Smith" {
		t.Fatalf("unexpected names %q %q", c.RoomName(1), c.UserName(2))
	}
	if c.RoomName(77) != UnknownRoom || c.UserName(77) != UnknownUser {
		t.Fatalf("expected unknown placeholders")
	}
}

func TestApproveReject(t *testing.T) {
	c, _ := newCatalog(t, Options{})
	ctx := context.Background()
	room, err := c.Approve(ctx, 1)
	if err != nil || room.Status != entities.RoomApproved {
		t.Fatalf("Approve: got %+v (%v)", room, err)
	}
	room, err = c.Reject(ctx, 1)
	if err != nil || room.Status != entities.RoomRejected {
		t.Fatalf("Reject after approve: got %+v (%v)", room, err)
	}
	if _, err := c.Approve(ctx, 50); err == nil {
		t.Fatalf("expected error for unknown room")
	}
}

func TestStaticModeListsDocumentAndKeepsChangesLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.json")
	doc := `[{"id":1,"name":"301","capacity":20,"category":"kelas","price":900000,"status":"available"}]`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	c, store := newCatalog(t, Options{Mode: ModeStatic, Sources: map[string]string{SlotRooms: path}})
	if c.Rooms.Len() != 1 || c.RoomName(1) != "301" {
		t.Fatalf("expected rooms from document, got %v", c.Rooms.All())
	}
	if _, err := c.Rooms.Create(context.Background(), entities.Room{Name: "302", Capacity: 20, Category: "kelas", Price: 900000}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := slotIDs(t, store, SlotRooms, roomID); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("expected local slot [1 2], got %v", got)
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeLocal, "local": ModeLocal, "static": ModeStatic, "rest": ModeREST} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q): expected %v, got %v (%v)", in, want, got, err)
		}
	}
	if _, err := ParseMode("ftp"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
