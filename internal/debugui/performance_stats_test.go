package debugui_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/internal/debugui"
	"github.com/stretchr/testify/assert"
)

func TestHistory(t *testing.T) {
	h := debugui.NewHistory(3)
	assert.Zero(t, h.Average())

	h.Push(10 * time.Millisecond)
	h.Push(20 * time.Millisecond)
	assert.InDelta(t, 15, h.Average(), 0.001)

	h.Push(30 * time.Millisecond)
	h.Push(40 * time.Millisecond)
	assert.InDelta(t, 30, h.Average(), 0.001)
	assert.InDeltaSlice(t, []float32{40, 20, 30}, h.Samples(), 0.001)
}
