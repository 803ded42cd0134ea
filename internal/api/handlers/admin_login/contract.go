package admin_login

import (
	"time"

	"github.com/m04kA/SMC-SalonReservations/internal/service/auth"
)

type AuthService interface {
	Login(username, password string) (*auth.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CookieOptions параметры cookie сессии
type CookieOptions struct {
	Secure bool
	TTL    time.Duration
}
