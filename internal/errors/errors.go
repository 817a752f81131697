package errors

import (
	"fmt"
	"os"

	"github.com/jordanwest/daykeep/internal/logger"
)

// Format renders err as a user-facing message with the standard prefix.
// A nil error yields an empty string.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf is Format for a printf-style message.
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal prints the error to stderr, records it in the log, and exits
// with status 1. Nil errors are ignored.
func Fatal(err error) {
	if err != nil {
		logger.Error("exiting on error", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf is Fatal for a printf-style message.
func Fatalf(format string, args ...interface{}) {
	logger.Error("exiting on error", "error", fmt.Sprintf(format, args...))
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
