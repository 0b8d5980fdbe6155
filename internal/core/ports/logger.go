package ports

// Logger reports progress and failures to the user. Debug output is only
// shown in verbose mode; Error prints the whole cause chain.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
