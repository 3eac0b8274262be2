package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	assert.NotNil(t, New())
}

func TestNowAndSince(t *testing.T) {
	c := New()
	start := c.Now()
	assert.False(t, start.IsZero())
	assert.GreaterOrEqual(t, c.Since(start), time.Duration(0))
}

func TestAfterFunc(t *testing.T) {
	c := New()
	done := make(chan struct{})
	timer := c.AfterFunc(time.Microsecond, func() { close(done) })
	defer timer.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer callback did not fire")
	}
}
