package notify

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_PrintsAndDismisses(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, 20*time.Millisecond)

	c.Notify("Success", "Tree planting logged! Progress updated.")

	assert.Equal(t, "[Success] Tree planting logged! Progress updated.\n", buf.String())
	n, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, Notification{Title: "Success", Message: "Tree planting logged! Progress updated."}, n)

	require.Eventually(t, func() bool {
		_, ok := c.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestConsole_NewerNotificationSurvivesOldTimer(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, 200*time.Millisecond)

	c.Notify("Error", "first")
	time.Sleep(150 * time.Millisecond)
	c.Notify("Info", "second")
	time.Sleep(100 * time.Millisecond)

	n, ok := c.Current()
	require.True(t, ok, "first timer must not dismiss the second notification")
	assert.Equal(t, "second", n.Message)
}

func TestConsole_DefaultTimeout(t *testing.T) {
	c := NewConsole(&bytes.Buffer{}, 0)
	assert.Equal(t, DefaultTimeout, c.timeout)
}

func TestConsole_NotifyDoesNotBlock(t *testing.T) {
	c := NewConsole(&bytes.Buffer{}, time.Hour)

	done := make(chan struct{})
	go func() {
		c.Notify("Info", "a")
		c.Notify("Info", "b")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked")
	}
}
