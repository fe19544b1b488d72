//go:build windows

package handler

import "golang.org/x/sys/windows"

var temporaryErr error = windows.ERROR_OPERATION_ABORTED
