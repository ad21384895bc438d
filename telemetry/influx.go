package telemetry

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	influxdb2_write "github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/minigold/config"
	"github.com/lixenwraith/minigold/status"
)

// Measurement is the InfluxDB measurement holding registry snapshots
const Measurement = "minigold_status"

// PointWriter is the non-blocking write side of an InfluxDB bucket
// Satisfied by influxdb2 api.WriteAPI
type PointWriter interface {
	WritePoint(point *influxdb2_write.Point)
}

// InfluxExporter writes status registry snapshots as InfluxDB points
type InfluxExporter struct {
	writer PointWriter
	tags   map[string]string
	log    zerolog.Logger
}

// NewInfluxExporter creates an exporter writing through w with static tags on every point
func NewInfluxExporter(w PointWriter, tags map[string]string, log zerolog.Logger) *InfluxExporter {
	return &InfluxExporter{
		writer: w,
		tags:   tags,
		log:    log.With().Str("component", "influx").Logger(),
	}
}

// Export writes one point with every int and float metric of reg as a field
// Returns the written point, nil when the registry is empty
func (e *InfluxExporter) Export(reg *status.Registry, at time.Time) *influxdb2_write.Point {
	snap := reg.Snapshot()
	if len(snap) == 0 {
		return nil
	}

	p := influxdb2.NewPointWithMeasurement(Measurement)
	for k, v := range e.tags {
		p.AddTag(k, v)
	}
	for _, k := range slices.Sorted(maps.Keys(snap)) {
		p.AddField(k, snap[k])
	}
	p.SetTime(at)

	e.writer.WritePoint(p)
	return p
}

// Run exports reg every interval until ctx is done
func (e *InfluxExporter) Run(ctx context.Context, reg *status.Registry, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			e.Export(reg, now)
		}
	}
}

// ConnectInflux opens a client for cfg and checks it is reachable
// The returned close func flushes pending points and releases the client
func ConnectInflux(ctx context.Context, cfg config.InfluxConfig, tags map[string]string, log zerolog.Logger) (*InfluxExporter, func(), error) {
	client := influxdb2.NewClientWithOptions(
		cfg.URL,
		cfg.Token,
		influxdb2.DefaultOptions().
			SetBatchSize(500).
			SetFlushInterval(1000),
	)

	running, err := client.Ping(ctx)
	if err != nil || !running {
		client.Close()
		if err == nil {
			err = fmt.Errorf("server not running")
		}
		return nil, nil, fmt.Errorf("error connecting to influx at %s: %w", cfg.URL, err)
	}

	writeAPI := client.WriteAPI(cfg.Org, cfg.Bucket)
	go func() {
		for err := range writeAPI.Errors() {
			log.Warn().Err(err).Str("bucket", cfg.Bucket).Msg("Influx write failed")
		}
	}()

	closeFn := func() {
		writeAPI.Flush()
		client.Close()
	}

	log.Info().Str("url", cfg.URL).Str("bucket", cfg.Bucket).Msg("InfluxDB client initialized")
	return NewInfluxExporter(writeAPI, tags, log), closeFn, nil
}
