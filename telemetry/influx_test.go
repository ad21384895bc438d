package telemetry

import (
	"context"
	"sync"
	"testing"
	"time"

	influxdb2_write "github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/minigold/status"
)

type recordingWriter struct {
	mu     sync.Mutex
	points []*influxdb2_write.Point
}

func (r *recordingWriter) WritePoint(p *influxdb2_write.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.points = append(r.points, p)
}

func (r *recordingWriter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.points)
}

func TestInfluxExporter_Export(t *testing.T) {
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyShipFired).Store(12)
	reg.Floats.Get(status.KeyTickDuration).Set(1.5)

	w := &recordingWriter{}
	exp := NewInfluxExporter(w, map[string]string{"pawn": "minigold"}, zerolog.Nop())

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p := exp.Export(reg, at)
	require.NotNil(t, p)
	require.Len(t, w.points, 1)

	assert.Equal(t, Measurement, p.Name())
	assert.Equal(t, at, p.Time())

	fields := make(map[string]any)
	for _, f := range p.FieldList() {
		fields[f.Key] = f.Value
	}
	assert.Equal(t, int64(12), fields[status.KeyShipFired])
	assert.Equal(t, 1.5, fields[status.KeyTickDuration])

	tags := make(map[string]string)
	for _, tag := range p.TagList() {
		tags[tag.Key] = tag.Value
	}
	assert.Equal(t, "minigold", tags["pawn"])
}

func TestInfluxExporter_EmptyRegistry(t *testing.T) {
	w := &recordingWriter{}
	exp := NewInfluxExporter(w, nil, zerolog.Nop())

	assert.Nil(t, exp.Export(status.NewRegistry(), time.Now()))
	assert.Empty(t, w.points)
}

func TestInfluxExporter_Run(t *testing.T) {
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyShipFired).Store(1)

	w := &recordingWriter{}
	exp := NewInfluxExporter(w, nil, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		exp.Run(ctx, reg, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return w.count() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}
