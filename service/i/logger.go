package i

// Logger is the tagged application logger shared by services and controllers.
type Logger interface {
	Info(msg string)
	Error(msg string)
	Debug(msg string)
}
