package domain

import "go.trai.ch/zerr"

var (
	// ErrResolutionFailed is returned when the path resolver yields no candidate for a directive.
	ErrResolutionFailed = zerr.New("failed to resolve include")

	// ErrScanFailed is returned when a resolved file cannot be stat'ed, opened or read.
	ErrScanFailed = zerr.New("failed to scan file")

	// ErrNoDirective is returned when the requested position is not on an include directive.
	ErrNoDirective = zerr.New("no include directive at position")

	// ErrNotResolved is returned when direct includes are requested for a file that was never resolved.
	ErrNotResolved = zerr.New("file has not been resolved")

	// ErrResolutionTimeout is returned when a resolution request exceeds its deadline.
	ErrResolutionTimeout = zerr.New("include resolution timed out")

	// ErrInvalidPosition is returned when a position lies outside the document.
	ErrInvalidPosition = zerr.New("position out of range")

	// ErrInvalidSizeUnit is returned when a size unit setting is not recognized.
	ErrInvalidSizeUnit = zerr.New("invalid size unit, expected 'Bytes', 'KB', 'MB' or 'Auto'")

	// ErrInvalidSeparator is returned when a digit separator setting is not recognized.
	ErrInvalidSeparator = zerr.New("invalid digit separator, expected 'Comma', 'Backtick', 'Space' or 'None'")

	// ErrInvalidDecimalDigits is returned when the decimal digits setting is negative.
	ErrInvalidDecimalDigits = zerr.New("decimal digits must not be negative")

	// ErrInvalidSetting is returned when a setting has the wrong type.
	ErrInvalidSetting = zerr.New("invalid setting value")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrCanonicalizeFailed is returned when a path cannot be made canonical.
	ErrCanonicalizeFailed = zerr.New("failed to canonicalize path")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")
)

// WithKind tags cause with one of the sentinel errors above.
// errors.Is matches kind as well as anything in cause's chain, and the
// logger prints kind as the headline with cause underneath.
func WithKind(kind, cause error) error {
	if cause == nil {
		return kind
	}
	return &kindError{kind: kind, cause: cause}
}

type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

// Message returns the kind's text without the cause chain.
func (e *kindError) Message() string {
	return e.kind.Error()
}

func (e *kindError) Unwrap() error {
	return e.cause
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}
