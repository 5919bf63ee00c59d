package i

// Logger is the levelled logger every service writes to.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}
