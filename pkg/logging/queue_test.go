package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_DrainsInOrder(t *testing.T) {
	var buf bytes.Buffer
	q := NewQueue(&buf)

	q.Infof("hello %d", 1)
	q.Warnf("careful")
	q.Errorf("boom")
	q.Close()

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "hello 1")
	assert.Contains(t, lines[1], "careful")
	assert.Contains(t, lines[2], "boom")
}

func TestQueue_CloseIsIdempotentAndFinal(t *testing.T) {
	var buf bytes.Buffer
	q := NewQueue(&buf)
	q.Infof("one")
	q.Close()
	q.Close() // must not block or panic

	// entries queued after Close are dropped, not appended post-hoc
	q.Infof("dropped")
	assert.NotContains(t, buf.String(), "dropped")
}
