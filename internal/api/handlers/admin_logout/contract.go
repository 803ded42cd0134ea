package admin_logout

type Logger interface {
	Info(format string, v ...interface{})
}
