//go:build !unix && !windows

package proc

func isNoSuchProcess(error) bool { return false }

func isAccessDenied(error) bool { return false }
