package usecases

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/listing"
	"BE-HOTEL-ADMIN/app/repositories"
	"BE-HOTEL-ADMIN/app/utils"
)

var fixedNow = func() time.Time { return time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC) }

type repos struct {
	rooms    repositories.RoomRepository
	users    repositories.UserRepository
	bookings repositories.BookingRepository
}

func newRepos(t *testing.T) repos {
	t.Helper()
	rooms, err := repositories.NewRoomRepository(nil)
	if err != nil {
		t.Fatalf("rooms: %v", err)
	}
	users, _ := repositories.NewUserRepository(nil)
	bookings, _ := repositories.NewBookingRepository(nil)
	return repos{rooms: rooms, users: users, bookings: bookings}
}

func code(err error) int {
	var ue *UseCaseError
	if errors.As(err, &ue) {
		return ue.Code
	}
	return 0
}

func TestRoomUsecaseCRUD(t *testing.T) {
	u := NewRoomUsecase(newRepos(t).rooms)

	room, err := u.Create(entities.RoomRequest{Name: "207", Capacity: 30, Category: "kelas", Price: 1000000})
	if err != nil || room.ID != 3 || room.Status != entities.RoomAvailable {
		t.Fatalf("Create: got %+v (%v)", room, err)
	}
	_, err = u.Create(entities.RoomRequest{Name: "", Capacity: 1, Category: "kelas", Price: 1})
	var ue *UseCaseError
	if !errors.As(err, &ue) || ue.Code != http.StatusBadRequest || !ue.Fields.Has("name") {
		t.Fatalf("expected field error on name, got %v", err)
	}

	updated, err := u.Update(3, entities.RoomRequest{Price: 1250000})
	if err != nil || updated.Name != "207" || updated.Price != 1250000 {
		t.Fatalf("partial Update: got %+v (%v)", updated, err)
	}
	if _, err := u.Update(99, entities.RoomRequest{Name: "x"}); code(err) != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}

	if room, err := u.Approve(3); err != nil || room.Status != entities.RoomApproved {
		t.Fatalf("Approve: got %+v (%v)", room, err)
	}
	if room, err := u.Reject(3); err != nil || room.Status != entities.RoomRejected {
		t.Fatalf("Reject: got %+v (%v)", room, err)
	}

	if err := u.Delete(2); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := u.Delete(2); code(err) != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %v", err)
	}
}

func TestRoomUsecaseList(t *testing.T) {
	u := NewRoomUsecase(newRepos(t).rooms)

	all, err := u.GetAll(listing.Query{})
	if err != nil || len(all.Data) != 2 || all.TotalPage != 1 {
		t.Fatalf("unpaged list: got %+v (%v)", all, err)
	}
	page, _ := u.GetAll(listing.Query{SortField: "price", Direction: listing.Desc, Page: 1, PageSize: 1})
	if page.TotalPage != 2 || page.Data[0].Name != "202" {
		t.Fatalf("expected most expensive room first, got %+v", page)
	}
	found, _ := u.GetAll(listing.Query{Search: "LABOL"})
	if len(found.Data) != 1 || found.Data[0].ID != 2 {
		t.Fatalf("expected room 202 for category search, got %+v", found.Data)
	}
	if _, err := u.GetAll(listing.Query{SortField: "colour"}); code(err) != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown sort field, got %v", err)
	}
}

func TestBookingUsecase(t *testing.T) {
	r := newRepos(t)
	u := NewBookingUsecase(r.bookings, r.rooms, r.users, fixedNow)

	b, err := u.Create(entities.BookingRequest{RoomID: 2, BookingDate: "2024-03-05", BookedBy: 1})
	if err != nil || b.ID != 3 || b.Price != 2500000 {
		t.Fatalf("Create: expected id 3 priced 2500000, got %+v (%v)", b, err)
	}

	_, err = u.Create(entities.BookingRequest{RoomID: 2, BookingDate: "2024-03-05", BookedBy: 2})
	var ue *UseCaseError
	if !errors.As(err, &ue) || !ue.Fields.Has("bookingDate") {
		t.Fatalf("expected double booking rejected, got %v", err)
	}
	if _, err := u.Create(entities.BookingRequest{RoomID: 1, BookingDate: "2024-03-04", BookedBy: 2}); code(err) != http.StatusBadRequest {
		t.Fatalf("expected past date rejected, got %v", err)
	}
	if _, err := u.Create(entities.BookingRequest{RoomID: 7, BookingDate: "2024-04-01", BookedBy: 9}); code(err) != http.StatusBadRequest {
		t.Fatalf("expected unknown room and user rejected, got %v", err)
	}

	moved, err := u.Update(3, entities.BookingRequest{RoomID: 1})
	if err != nil || moved.RoomID != 1 || moved.Price != 1500000 || moved.BookingDate != "2024-03-05" {
		t.Fatalf("Update: expected repriced booking on room 1, got %+v (%v)", moved, err)
	}

	byName, _ := u.GetAll(listing.Query{Search: "smith"})
	if len(byName.Data) != 1 || byName.Data[0].ID != 2 {
		t.Fatalf("expected booking 2 for Jane Smith, got %+v", byName.Data)
	}
}

type captureMailer struct{ to, token string }

func (m *captureMailer) SendResetEmail(to, token string) error {
	m.to, m.token = to, token
	return nil
}

func TestAuthUsecaseFlow(t *testing.T) {
	mailer := &captureMailer{}
	u := NewAuthUsecase(repositories.NewAccountRepository(), utils.NewTokenManager("secret", 0, 0), mailer)

	if _, err := u.Register(entities.Register{Username: "jane", Email: "jane@example.com", Password: "password1", Name: "Jane"}); code(err) != http.StatusBadRequest {
		t.Fatalf("expected weak password rejected, got %v", err)
	}
	acct, err := u.Register(entities.Register{Username: "jane", Email: "Jane@Example.com", Password: "Secret#123", Name: "Jane"})
	if err != nil || acct.Role != entities.RoleUser || acct.Email != "jane@example.com" {
		t.Fatalf("Register: got %+v (%v)", acct, err)
	}
	if _, err := u.Register(entities.Register{Username: "jane", Email: "x@example.com", Password: "Secret#123", Name: "Jane"}); code(err) != http.StatusConflict {
		t.Fatalf("expected 409 for taken username, got %v", err)
	}

	if _, err := u.Login(entities.Login{Username: "jane", Password: "wrong"}); code(err) != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %v", err)
	}
	pair, err := u.Login(entities.Login{Username: "jane@example.com", Password: "Secret#123"})
	if err != nil || pair.AccessToken == "" || pair.ID != acct.ID {
		t.Fatalf("Login by email: got %+v (%v)", pair, err)
	}
	if _, err := u.Refresh(pair.AccessToken); code(err) != http.StatusUnauthorized {
		t.Fatalf("expected access token refused for refresh, got %v", err)
	}
	if _, err := u.Refresh(pair.RefreshToken); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	err = u.ChangePassword(acct.ID, entities.ChangePassword{OldPassword: "Secret#123", Password: "Newer#456", PasswordConfirmation: "Other#456"})
	var ue *UseCaseError
	if !errors.As(err, &ue) || !ue.Fields.Has("password_confirmation") {
		t.Fatalf("expected confirmation mismatch, got %v", err)
	}
	if err := u.ChangePassword(acct.ID, entities.ChangePassword{OldPassword: "nope", Password: "Newer#456", PasswordConfirmation: "Newer#456"}); code(err) != http.StatusBadRequest {
		t.Fatalf("expected wrong old password rejected, got %v", err)
	}
	if err := u.ChangePassword(acct.ID, entities.ChangePassword{OldPassword: "Secret#123", Password: "Newer#456", PasswordConfirmation: "Newer#456"}); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	token, err := u.PasswordReset(entities.ResetRequest{Email: "jane@example.com"})
	if err != nil || mailer.token != token || mailer.to != "jane@example.com" {
		t.Fatalf("PasswordReset: token %q mailed %q to %q (%v)", token, mailer.token, mailer.to, err)
	}
	if _, err := u.PasswordReset(entities.ResetRequest{Email: "ghost@example.com"}); code(err) != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown email, got %v", err)
	}
	if err := u.PasswordResetId(pair.AccessToken, entities.PasswordConfirmReset{NewPassword: "Reset#789", ConfirmPassword: "Reset#789"}); code(err) != http.StatusUnauthorized {
		t.Fatalf("expected access token refused for reset, got %v", err)
	}
	if err := u.PasswordResetId(token, entities.PasswordConfirmReset{NewPassword: "Reset#789", ConfirmPassword: "Reset#789"}); err != nil {
		t.Fatalf("PasswordResetId: %v", err)
	}
	if _, err := u.Login(entities.Login{Username: "jane", Password: "Reset#789"}); err != nil {
		t.Fatalf("Login with reset password: %v", err)
	}
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	accounts := repositories.NewAccountRepository()
	u := NewAuthUsecase(accounts, utils.NewTokenManager("secret", 0, 0), &captureMailer{})
	for i := 0; i < 2; i++ {
		if err := u.EnsureAdmin("admin", "admin@hotel.local", "admin"); err != nil {
			t.Fatalf("EnsureAdmin #%d: %v", i, err)
		}
	}
	acct, err := accounts.GetByUsername("admin")
	if err != nil || acct.Role != entities.RoleAdmin || acct.ID != 1 {
		t.Fatalf("expected one admin account, got %+v (%v)", acct, err)
	}
}

func TestDashboard(t *testing.T) {
	r := newRepos(t)
	_, _ = r.bookings.Create(entities.Booking{RoomID: 1, BookingDate: "2024-03-05", BookedBy: 2, Price: 1500000}, nil)
	u := NewDashboardUsecase(repositories.NewDashboardRepository(r.rooms, r.users, r.bookings), fixedNow)

	if _, err := u.GetDashboard("", "2024-01-01"); code(err) != http.StatusBadRequest {
		t.Fatalf("expected 400 without start date, got %v", err)
	}
	if _, err := u.GetDashboard("2024-02-01", "2024-01-01"); code(err) != http.StatusBadRequest {
		t.Fatalf("expected 400 for reversed range, got %v", err)
	}

	resp, err := u.GetDashboard("2023-01-01", "2024-12-31")
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	d := resp.Data
	if d.TotalRoom != 2 || d.TotalUser != 2 || d.TotalBooking != 3 || d.TotalRevenue != 5500000 {
		t.Fatalf("unexpected totals %+v", d)
	}
	if d.Rooms[0].TotalBooking != 2 || d.Rooms[0].Revenue != 3000000 {
		t.Fatalf("unexpected room 201 stats %+v", d.Rooms[0])
	}
	if len(d.MonthlyRevenue) != 2 || d.MonthlyRevenue[0].Month != "2023-10" || d.MonthlyRevenue[1].Revenue != 1500000 {
		t.Fatalf("unexpected monthly revenue %+v", d.MonthlyRevenue)
	}
	if d.Occupancy.Occupied != 1 || d.Occupancy.Available != 1 || d.Occupancy.Date != "2024-03-05" {
		t.Fatalf("unexpected occupancy %+v", d.Occupancy)
	}
}
