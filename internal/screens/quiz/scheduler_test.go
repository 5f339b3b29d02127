package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickScheduler(t *testing.T) {
	ts := newTickScheduler()
	assert.Nil(t, ts.Drain(), "nothing queued")

	var ran []string
	ts.After(time.Second, func() { ran = append(ran, "a") })
	cancel := ts.After(time.Second, func() { ran = append(ran, "b") })
	assert.Equal(t, 2, ts.Pending())
	assert.NotNil(t, ts.Drain())
	assert.Nil(t, ts.Drain(), "drain empties the queue")

	cancel()
	cancel()
	assert.Equal(t, 1, ts.Pending())

	assert.True(t, ts.Fire(1))
	assert.False(t, ts.Fire(1), "callbacks run once")
	assert.False(t, ts.Fire(2), "cancelled callbacks never run")
	assert.Equal(t, []string{"a"}, ran)
	assert.Equal(t, 0, ts.Pending())
}

func TestTickScheduler_Fires(t *testing.T) {
	ts := newTickScheduler()
	ts.After(0, func() {})
	msg := ts.Drain()()
	fm, ok := msg.(fireMsg)
	if !ok {
		t.Fatalf("expected fireMsg, got %T", msg)
	}
	assert.Equal(t, uint64(1), fm.id)
}
