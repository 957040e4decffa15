// Package channels has small helpers for handing values across goroutines
// without blocking the sender.
package channels

import (
	"errors"
)

var (
	ErrChannelClosed = errors.New("channel closed")
	ErrChannelFull   = errors.New("channel full")
)
