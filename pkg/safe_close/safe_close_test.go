package safe_close

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSafeCloseWaitsForAllComponents(t *testing.T) {
	sc := NewSafeClose()

	started := make(chan struct{}, 2)
	for i := 0; i < 2; i++ {
		sc.Attach(func(done func(), closeSignal <-chan struct{}) {
			defer done()
			started <- struct{}{}
			<-closeSignal
		})
	}

	<-started
	<-started
	sc.SendCloseSignal(nil)

	finished := make(chan error, 1)
	go func() { finished <- sc.WaitClosed() }()

	select {
	case err := <-finished:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("WaitClosed did not return after all components stopped")
	}
}

func TestSafeCloseKeepsFirstError(t *testing.T) {
	sc := NewSafeClose()

	first := errors.New("listener failed")
	sc.Attach(func(done func(), closeSignal <-chan struct{}) {
		defer done()
		<-closeSignal
	})

	sc.SendCloseSignal(first)
	sc.SendCloseSignal(errors.New("second error"))

	assert.Equal(t, first, sc.WaitClosed())
}

func TestSafeCloseSignalIsIdempotent(t *testing.T) {
	sc := NewSafeClose()

	assert.NotPanics(t, func() {
		sc.SendCloseSignal(nil)
		sc.SendCloseSignal(nil)
	})
	assert.NoError(t, sc.WaitClosed())
}
