package channels

// SendNonBlock attempts to send a message without blocking.
// Returns error if the channel is full or closed.
func SendNonBlock[T any](ch chan<- T, msg T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ErrChannelClosed
		}
	}()

	select {
	case ch <- msg:
		return nil
	default:
		return ErrChannelFull
	}
}

// SendLatest sends msg without blocking. If the buffer is full, the oldest
// pending value is dropped to make room, so a slow receiver always sees the
// most recent value. Returns ErrChannelFull only for an unbuffered channel
// with no ready receiver, or when another sender wins the freed slot.
func SendLatest[T any](ch chan T, msg T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ErrChannelClosed
		}
	}()

	select {
	case ch <- msg:
		return nil
	default:
	}

	if cap(ch) == 0 {
		return ErrChannelFull
	}

	select {
	case <-ch:
	default:
	}

	select {
	case ch <- msg:
		return nil
	default:
		return ErrChannelFull
	}
}
