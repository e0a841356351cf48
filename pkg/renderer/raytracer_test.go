package renderer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvollmer/go-pathtracer/pkg/core"
	"github.com/mvollmer/go-pathtracer/pkg/geometry"
	"github.com/mvollmer/go-pathtracer/pkg/imageio"
	"github.com/mvollmer/go-pathtracer/pkg/material"
	"github.com/mvollmer/go-pathtracer/pkg/texture"
)

// simpleScene is a single diffuse sphere on a grey background, cheap enough
// for scheduler tests
func simpleScene() *WorldScene {
	camera := NewCamera(
		core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0),
		40, 1, 0, 5, 0, 1, core.NewVec3(0.5, 0.5, 0.5))

	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1,
		material.NewLambertian(texture.NewConstant(core.NewVec3(0.4, 0.2, 0.1))))

	return NewWorldScene(camera, []core.Hitable{sphere}, nil)
}

func TestRaytracer_CompletesAndAccumulates(t *testing.T) {
	rt := NewRaytracer(16, 16, 4, 5, 2, true)
	rt.BeginRaytrace(simpleScene(), nil)

	require.True(t, rt.WaitForTraceToFinish(-1))

	stats := rt.GetStats()
	assert.Equal(t, int64(16*16*4), stats.NumPixelSamples)
	assert.Equal(t, 4, stats.CompletedSampleCount)
	assert.Greater(t, stats.TotalRaysFired, int64(0))

	// Every pixel sees either the sphere or the grey background, so no
	// HDR slot stays black
	for i, px := range rt.OutputBuffer() {
		if px.RGB().IsZero() {
			t.Fatalf("pixel %d received no samples", i)
		}
	}
}

func TestRaytracer_CompletionCallback(t *testing.T) {
	rt := NewRaytracer(8, 8, 2, 5, 2, true)

	done := make(chan bool, 1)
	rt.BeginRaytrace(simpleScene(), func(_ *Raytracer, actuallyFinished bool) {
		done <- actuallyFinished
	})

	require.True(t, rt.WaitForTraceToFinish(-1))

	select {
	case finished := <-done:
		assert.True(t, finished, "natural completion must report finished")
	case <-time.After(time.Second):
		t.Fatal("completion callback never fired")
	}
}

func TestRaytracer_SingleThreadDeterminism(t *testing.T) {
	render := func() []core.Vec4 {
		rt := NewRaytracer(8, 8, 2, 5, 1, true)
		rt.SetSeed(1234)
		rt.BeginRaytrace(simpleScene(), nil)
		require.True(t, rt.WaitForTraceToFinish(-1))

		out := make([]core.Vec4, len(rt.OutputBuffer()))
		copy(out, rt.OutputBuffer())
		return out
	}

	first := render()
	second := render()

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("pixel %d differs between seeded runs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestRaytracer_Cancellation(t *testing.T) {
	// Plenty of samples so the trace is still running when we cancel
	rt := NewRaytracer(32, 32, 100000, 10, 2, true)
	rt.BeginRaytrace(simpleScene(), nil)

	// Let at least one full pass accumulate
	deadline := time.Now().Add(30 * time.Second)
	for rt.GetStats().CompletedSampleCount < 1 {
		if time.Now().After(deadline) {
			t.Fatal("first pass never completed")
		}
		time.Sleep(time.Millisecond)
	}

	rt.Stop()

	// After Stop returns the workers are joined and the buffer is stable
	snapshot := make([]core.Vec4, len(rt.OutputBuffer()))
	copy(snapshot, rt.OutputBuffer())
	time.Sleep(10 * time.Millisecond)
	for i := range snapshot {
		if snapshot[i] != rt.OutputBuffer()[i] {
			t.Fatalf("pixel %d changed after cancellation", i)
		}
	}

	assert.True(t, rt.WaitForTraceToFinish(0), "a stopped tracer reports finished")
}

func TestRaytracer_CancelledCallbackReportsUnfinished(t *testing.T) {
	rt := NewRaytracer(32, 32, 100000, 10, 2, true)

	done := make(chan bool, 1)
	rt.BeginRaytrace(simpleScene(), func(_ *Raytracer, actuallyFinished bool) {
		done <- actuallyFinished
	})
	rt.Stop()

	select {
	case finished := <-done:
		assert.False(t, finished, "cancelled trace must not report natural completion")
	case <-time.After(5 * time.Second):
		t.Fatal("completion callback never fired")
	}
}

func TestRaytracer_Restart(t *testing.T) {
	rt := NewRaytracer(16, 16, 50000, 5, 2, true)
	rt.BeginRaytrace(simpleScene(), nil)

	deadline := time.Now().Add(30 * time.Second)
	for rt.GetStats().NumPixelSamples < 100 {
		if time.Now().After(deadline) {
			t.Fatal("trace made no progress")
		}
		time.Sleep(time.Millisecond)
	}

	rt.RestartCurrentRaytrace()
	stats := rt.GetStats()
	assert.LessOrEqual(t, stats.CompletedSampleCount, 1, "restart rewinds the pass counter")

	rt.Stop()
}

func TestRaytracer_PreviewMatchesAccumulator(t *testing.T) {
	rt := NewRaytracer(8, 8, 4, 5, 1, true)
	rt.BeginRaytrace(simpleScene(), nil)
	require.True(t, rt.WaitForTraceToFinish(-1))

	preview := rt.PreviewRGBA()
	require.Len(t, preview, 8*8*4)

	// Once the trace is done, each pixel's preview is the gamma-encoded
	// average of its accumulated samples, with an opaque alpha lane
	averaged := rt.AveragedBuffer()
	for i := 0; i < 8*8; i++ {
		r, g, b, a := imageio.EncodeRGBA8(averaged[i], true)
		assert.Equal(t, []uint8{r, g, b, a}, preview[i*4:i*4+4], "pixel %d", i)
		assert.EqualValues(t, 255, preview[i*4+3])
	}
}

func TestStats_Progress(t *testing.T) {
	s := Stats{NumPixelSamples: 50, TotalNumPixelSamples: 200}
	assert.InDelta(t, 0.25, s.Progress(), 1e-12)

	var empty Stats
	assert.Zero(t, empty.Progress())
}
