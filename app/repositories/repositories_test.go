package repositories

import (
	"errors"
	"testing"
	"time"

	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/storage"
)

func TestRoomRepositorySeedsAndPersists(t *testing.T) {
	store := storage.NewMemoryStore()
	repo, err := NewRoomRepository(store)
	if err != nil {
		t.Fatalf("NewRoomRepository: %v", err)
	}
	rooms, _ := repo.GetAll()
	if len(rooms) != 2 {
		t.Fatalf("expected 2 seeded rooms, got %d", len(rooms))
	}
	created, err := repo.Create(entities.Room{Name: "207", Capacity: 30, Category: "kelas", Price: 1000000})
	if err != nil || created.ID != 3 {
		t.Fatalf("Create: expected id 3, got %+v (%v)", created, err)
	}

	reopened, err := NewRoomRepository(store)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got, err := reopened.GetByID(3); err != nil || got.Name != "207" {
		t.Fatalf("expected room 207 after reopen, got %+v (%v)", got, err)
	}
}

func TestRoomRepositoryRowsAffected(t *testing.T) {
	repo, _ := NewRoomRepository(nil)
	if n, err := repo.Update(9, entities.Room{Name: "x"}); err != nil || n != 0 {
		t.Fatalf("Update missing: expected 0 rows, got %d (%v)", n, err)
	}
	if n, _ := repo.Update(1, entities.Room{Name: "301"}); n != 1 {
		t.Fatalf("Update: expected 1 row, got %d", n)
	}
	if got, _ := repo.GetByID(1); got.ID != 1 || got.Name != "301" {
		t.Fatalf("expected id kept on update, got %+v", got)
	}
	if n, _ := repo.Delete(1); n != 1 {
		t.Fatalf("Delete: expected 1 row, got %d", n)
	}
	if _, err := repo.GetByID(1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if ok, _ := repo.CheckRoomExists(2); !ok {
		t.Fatalf("expected room 2 to exist")
	}
}

func TestBookingRepositoryCheckAborts(t *testing.T) {
	repo, _ := NewBookingRepository(nil)
	errTaken := errors.New("taken")
	_, err := repo.Create(entities.Booking{RoomID: 1, BookingDate: "2030-01-01", BookedBy: 1},
		func(current []entities.Booking) error {
			if len(current) != 2 {
				t.Errorf("expected check to see 2 bookings, got %d", len(current))
			}
			return errTaken
		})
	if !errors.Is(err, errTaken) {
		t.Fatalf("expected check error, got %v", err)
	}
	if all, _ := repo.GetAll(); len(all) != 2 {
		t.Fatalf("expected no insert, got %d bookings", len(all))
	}
}

func TestAccountRepositoryRejectsDuplicates(t *testing.T) {
	repo := NewAccountRepository()
	a, err := repo.Register(entities.Account{Username: "admin", Email: "admin@hotel.test"})
	if err != nil || a.ID != 1 || a.CreatedAt == "" {
		t.Fatalf("Register: got %+v (%v)", a, err)
	}
	if _, err := repo.Register(entities.Account{Username: "other", Email: "ADMIN@hotel.test"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for email, got %v", err)
	}
	if got, err := repo.GetByEmail("Admin@Hotel.test"); err != nil || got.ID != 1 {
		t.Fatalf("GetByEmail: got %+v (%v)", got, err)
	}
	if n, _ := repo.UpdatePassword(1, "hash"); n != 1 {
		t.Fatalf("UpdatePassword: expected 1 row, got %d", n)
	}
	if got, _ := repo.GetByUsername("admin"); got.PasswordHash != "hash" {
		t.Fatalf("expected password updated, got %q", got.PasswordHash)
	}
}

func TestDashboardRepositoryFiltersByDate(t *testing.T) {
	rooms, _ := NewRoomRepository(nil)
	users, _ := NewUserRepository(nil)
	bookings, _ := NewBookingRepository(nil)
	repo := NewDashboardRepository(rooms, users, bookings)

	start := time.Date(2023, 10, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 10, 31, 0, 0, 0, 0, time.UTC)
	got, _ := repo.GetBookings(start, end)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected booking 2 only, got %+v", got)
	}
}
