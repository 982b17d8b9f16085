package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"BE-HOTEL-ADMIN/app"
	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/handlers"
	"BE-HOTEL-ADMIN/app/middleware"
	"BE-HOTEL-ADMIN/app/repositories"
	"BE-HOTEL-ADMIN/app/usecases"
	"BE-HOTEL-ADMIN/app/utils"
	"BE-HOTEL-ADMIN/config"
	"BE-HOTEL-ADMIN/pkg/database"
	"BE-HOTEL-ADMIN/server"
)

// @title Hotel Admin API
// @version 1.0
// @description Mock backend for the hotel admin dashboard.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("[ERROR] load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := database.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("[ERROR] open %s store: %v", cfg.Storage.Driver, err)
	}
	defer closeStore()

	// ==========================================
	// REPOSITORIES
	// ==========================================
	roomRepo, err := repositories.NewRoomRepository(store)
	if err != nil {
		log.Fatalf("[ERROR] rooms: %v", err)
	}
	userRepo, err := repositories.NewUserRepository(store)
	if err != nil {
		log.Fatalf("[ERROR] users: %v", err)
	}
	bookingRepo, err := repositories.NewBookingRepository(store)
	if err != nil {
		log.Fatalf("[ERROR] bookings: %v", err)
	}
	accountRepo := repositories.NewAccountRepository()
	dashboardRepo := repositories.NewDashboardRepository(roomRepo, userRepo, bookingRepo)

	// ==========================================
	// USECASES
	// ==========================================
	tokens := utils.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	var mailer utils.Mailer
	if cfg.SMTP.Host != "" {
		mailer = utils.NewSMTPMailer(utils.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			User:     cfg.SMTP.User,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			BaseURL:  cfg.Server.BaseURL,
		})
	} else {
		mailer = utils.NewLogMailer(cfg.Server.BaseURL, nil)
	}

	authUsecase := usecases.NewAuthUsecase(accountRepo, tokens, mailer)
	if err := authUsecase.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatalf("[ERROR] create admin account: %v", err)
	}
	roomUsecase := usecases.NewRoomUsecase(roomRepo)
	userUsecase := usecases.NewUserUsecase(userRepo)
	bookingUsecase := usecases.NewBookingUsecase(bookingRepo, roomRepo, userRepo, time.Now)
	dashboardUsecase := usecases.NewDashboardUsecase(dashboardRepo, time.Now)

	// ==========================================
	// HANDLERS & ROUTES
	// ==========================================
	srv := server.NewEchoServer(cfg)
	app.RegisterRoutes(
		srv.GetEcho(),
		handlers.NewAuthHandler(authUsecase),
		handlers.NewRoomHandler(roomUsecase),
		handlers.NewUserHandler(userUsecase),
		handlers.NewBookingHandler(bookingUsecase),
		handlers.NewDashboardHandler(dashboardUsecase),
		middleware.JWTAuth(tokens),
		middleware.RoleAuthMiddleware(entities.RoleAdmin),
	)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[ERROR] server: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] shutdown: %v", err)
	}
}
