package server

import (
	"context"
	"fmt"

	"BE-HOTEL-ADMIN/app/validation"
	"BE-HOTEL-ADMIN/config"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type echoServer struct {
	app *echo.Echo
	cfg *config.Config
}

// CustomValidator reports struct tag failures as validation.Errors.
type CustomValidator struct{}

func (cv *CustomValidator) Validate(i interface{}) error {
	return validation.Struct(i).Err()
}

func NewEchoServer(cfg *config.Config) Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Serve Swagger documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return &echoServer{
		app: e,
		cfg: cfg,
	}
}

func (s *echoServer) Start() error {
	return s.app.Start(fmt.Sprintf(":%d", s.cfg.Server.Port))
}

func (s *echoServer) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *echoServer) GetEcho() *echo.Echo {
	return s.app
}
