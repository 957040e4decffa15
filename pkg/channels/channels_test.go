package channels_test

import (
	"testing"

	"github.com/hanaburkart/portfolio/pkg/channels"
	"github.com/stretchr/testify/assert"
)

func TestSendFunctions(t *testing.T) {

	t.Run("send non-blocking", func(t *testing.T) {
		t.Run("success - buffered channel with capacity", func(t *testing.T) {
			ch := make(chan int, 2)
			err := channels.SendNonBlock(ch, 42)
			assert.NoError(t, err)
			assert.Equal(t, 42, <-ch) // Verify message was sent
		})

		t.Run("full - buffered channel", func(t *testing.T) {
			ch := make(chan int, 1)
			ch <- 1 // Fill buffer
			err := channels.SendNonBlock(ch, 42)
			assert.ErrorIs(t, err, channels.ErrChannelFull)
		})

		t.Run("full - unbuffered with no receiver", func(t *testing.T) {
			ch := make(chan int)
			err := channels.SendNonBlock(ch, 42)
			assert.ErrorIs(t, err, channels.ErrChannelFull)
		})

		t.Run("closed channel - empty", func(t *testing.T) {
			ch := make(chan int)
			close(ch)
			err := channels.SendNonBlock(ch, 42)
			assert.ErrorIs(t, err, channels.ErrChannelClosed)
		})
	})

	t.Run("send latest", func(t *testing.T) {
		t.Run("success - buffered channel with capacity", func(t *testing.T) {
			ch := make(chan int, 1)
			assert.NoError(t, channels.SendLatest(ch, 42))
			assert.Equal(t, 42, <-ch)
		})

		t.Run("full - replaces pending value", func(t *testing.T) {
			ch := make(chan int, 1)
			ch <- 1
			assert.NoError(t, channels.SendLatest(ch, 2))
			assert.NoError(t, channels.SendLatest(ch, 3))
			assert.Equal(t, 3, <-ch)
			assert.Empty(t, ch)
		})

		t.Run("full - keeps order of the newest values", func(t *testing.T) {
			ch := make(chan int, 2)
			for i := range 4 {
				assert.NoError(t, channels.SendLatest(ch, i))
			}
			assert.Equal(t, 2, <-ch)
			assert.Equal(t, 3, <-ch)
		})

		t.Run("unbuffered with no receiver", func(t *testing.T) {
			ch := make(chan int)
			assert.ErrorIs(t, channels.SendLatest(ch, 42), channels.ErrChannelFull)
		})

		t.Run("closed channel", func(t *testing.T) {
			ch := make(chan int, 1)
			close(ch)
			assert.ErrorIs(t, channels.SendLatest(ch, 42), channels.ErrChannelClosed)
		})
	})
}
