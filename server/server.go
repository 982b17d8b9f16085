package server

import (
	"context"

	"github.com/labstack/echo/v4"
)

type Server interface {
	Start() error
	Shutdown(ctx context.Context) error
	GetEcho() *echo.Echo
}
