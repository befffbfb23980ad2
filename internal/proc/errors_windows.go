//go:build windows

package proc

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// OpenProcess reports ERROR_INVALID_PARAMETER for a PID that is gone.
func isNoSuchProcess(err error) bool {
	return errors.Is(err, windows.ERROR_INVALID_PARAMETER) ||
		errors.Is(err, windows.ERROR_NOT_FOUND)
}

func isAccessDenied(err error) bool {
	return errors.Is(err, windows.ERROR_ACCESS_DENIED)
}
