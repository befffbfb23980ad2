package proc

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v4/process"
)

var (
	// ErrEnumeration means the global process list could not be read.
	// It is the only error that aborts a scan.
	ErrEnumeration = errors.New("unable to enumerate processes")

	// ErrNoSuchProcess means the process exited after it was listed.
	ErrNoSuchProcess = errors.New("process no longer exists")

	// ErrAccessDenied means the OS refused to let us inspect or signal it.
	ErrAccessDenied = errors.New("permission denied")

	// ErrZombie means the process has exited but was not reaped yet.
	ErrZombie = errors.New("process is a zombie")
)

// IsTransient reports whether err is one of the per-process conditions that
// are expected while working with a live process table.
func IsTransient(err error) bool {
	return errors.Is(err, ErrNoSuchProcess) ||
		errors.Is(err, ErrAccessDenied) ||
		errors.Is(err, ErrZombie)
}

// Reason turns a per-process error into a short message for the operator.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoSuchProcess):
		return ErrNoSuchProcess.Error()
	case errors.Is(err, ErrAccessDenied):
		return ErrAccessDenied.Error()
	case errors.Is(err, ErrZombie):
		return ErrZombie.Error()
	default:
		return err.Error()
	}
}

// normalize maps the various OS and gopsutil errors onto our sentinels.
// Unknown errors are returned untouched.
func normalize(err error) error {
	switch {
	case err == nil:
		return nil
	case IsTransient(err):
		return err
	case errors.Is(err, process.ErrorProcessNotRunning),
		errors.Is(err, os.ErrProcessDone),
		errors.Is(err, fs.ErrNotExist),
		isNoSuchProcess(err):
		return fmt.Errorf("%w: %v", ErrNoSuchProcess, err)
	case errors.Is(err, process.ErrorNotPermitted),
		errors.Is(err, fs.ErrPermission),
		isAccessDenied(err):
		return fmt.Errorf("%w: %v", ErrAccessDenied, err)
	}
	return err
}

func enumerationError(err error) error {
	return errors.WithStack(fmt.Errorf("%w: %w", ErrEnumeration, err))
}
