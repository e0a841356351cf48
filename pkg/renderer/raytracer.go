package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/mvollmer/go-pathtracer/pkg/core"
	"github.com/mvollmer/go-pathtracer/pkg/imageio"
	"github.com/mvollmer/go-pathtracer/pkg/integrator"
)

// tileLength is the side of the square pixel blocks used to localize memory
// traffic when both image dimensions divide evenly by it
const tileLength = 32

// OnTraceComplete is called by the last worker to finish; actuallyFinished
// is false when the trace was cancelled
type OnTraceComplete func(rt *Raytracer, actuallyFinished bool)

// Raytracer distributes pixel-samples over a fixed pool of workers. The unit
// of work is one (pixel, sample-index) pair, claimed from a single
// monotonically increasing atomic counter, so no two workers ever write the
// same HDR slot at the same time and non-atomic float accumulation is safe.
type Raytracer struct {
	width      int
	height     int
	numSamples int
	maxDepth   int
	numThreads int
	pdfEnabled bool
	seed       int64

	outputBuffer []core.Vec4 // HDR sums, one Vec4 per pixel
	outputRGBA8  []uint8     // gamma-encoded preview, eventually consistent

	counters     integrator.Counters
	sampleOffset atomic.Int64
	threadsDone  atomic.Int32
	restartFlags []atomic.Bool

	isRaytracing bool
	doneCh       chan struct{}
	wg           sync.WaitGroup
	onComplete   OnTraceComplete
	startTime    time.Time
	endTime      time.Time

	logger *zap.SugaredLogger
}

// NewRaytracer creates a raytracer for the given output size and sampling
// parameters. numThreads <= 0 selects the number of CPUs.
func NewRaytracer(width, height, numSamples, maxDepth, numThreads int, pdfEnabled bool) *Raytracer {
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	return &Raytracer{
		width:        width,
		height:       height,
		numSamples:   numSamples,
		maxDepth:     maxDepth,
		numThreads:   numThreads,
		pdfEnabled:   pdfEnabled,
		seed:         1,
		outputBuffer: make([]core.Vec4, width*height),
		outputRGBA8:  make([]uint8, width*height*4),
		logger:       zap.NewNop().Sugar(),
	}
}

// SetSeed sets the master seed; each worker derives a thread-distinct RNG
// from it, making single-threaded runs bit-exact reproducible
func (rt *Raytracer) SetSeed(seed int64) {
	rt.seed = seed
}

// SetLogger directs the raytracer's progress output
func (rt *Raytracer) SetLogger(logger *zap.SugaredLogger) {
	rt.logger = logger
}

// BeginRaytrace starts the worker pool on the given scene. Any previous
// trace is torn down first. onComplete may be nil.
func (rt *Raytracer) BeginRaytrace(scene *WorldScene, onComplete OnTraceComplete) {
	rt.cleanup()
	rt.reset()
	rt.onComplete = onComplete

	rt.restartFlags = make([]atomic.Bool, rt.numThreads)
	rt.doneCh = make(chan struct{})
	rt.isRaytracing = true

	rt.logger.Infow("starting trace",
		"width", rt.width, "height", rt.height,
		"samples", rt.numSamples, "depth", rt.maxDepth,
		"threads", rt.numThreads)

	for i := 0; i < rt.numThreads; i++ {
		rt.wg.Add(1)
		go rt.traceWorker(i, scene)
	}
}

// reset clears buffers, counters and the timestamp for a fresh trace
func (rt *Raytracer) reset() {
	rt.counters.RaysFired.Store(0)
	rt.counters.PdfQueryRetries.Store(0)
	rt.sampleOffset.Store(0)
	rt.threadsDone.Store(0)
	rt.startTime = time.Now()

	for i := range rt.outputBuffer {
		rt.outputBuffer[i] = core.Vec4{}
	}
	for i := range rt.outputRGBA8 {
		rt.outputRGBA8[i] = 0
	}
}

// RestartCurrentRaytrace rewinds the sample counter and flags every worker
// to reload it. Workers observe the flag lazily between samples; the
// transient overlap is acceptable because the buffers are zeroed here.
func (rt *Raytracer) RestartCurrentRaytrace() {
	if !rt.isRaytracing {
		return
	}

	rt.sampleOffset.Store(0)
	for i := range rt.restartFlags {
		rt.restartFlags[i].Store(true)
	}
	rt.reset()
}

// WaitForTraceToFinish blocks until the trace completes or the timeout
// elapses; a negative timeout waits forever. Returns true once the trace is
// done.
func (rt *Raytracer) WaitForTraceToFinish(timeout time.Duration) bool {
	if !rt.isRaytracing {
		return true
	}

	if timeout < 0 {
		<-rt.doneCh
		return true
	}

	select {
	case <-rt.doneCh:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Stop cancels any running trace and joins the workers
func (rt *Raytracer) Stop() {
	rt.cleanup()
}

// cleanup requests worker exit, waits for the completion event, and joins
func (rt *Raytracer) cleanup() {
	if !rt.isRaytracing {
		return
	}

	rt.counters.ExitRequested.Store(true)
	<-rt.doneCh
	rt.wg.Wait()

	rt.counters.ExitRequested.Store(false)
	rt.isRaytracing = false
}

// traceWorker is the per-thread sampling loop. Each worker owns an RNG
// derived from the master seed and claims pixel-sample indices by
// compare-and-swap.
func (rt *Raytracer) traceWorker(id int, scene *WorldScene) {
	defer rt.wg.Done()

	rng := rand.New(rand.NewSource(rt.seed + int64(id)))
	tracer := integrator.NewPathTracer(rt.maxDepth, rt.pdfEnabled, &rt.counters)
	camera := scene.Camera()

	numPixels := rt.width * rt.height
	totalPixelSamples := int64(numPixels) * int64(rt.numSamples)
	tileArea := tileLength * tileLength
	numXTiles := rt.width / tileLength
	tileEnabled := rt.width%tileLength == 0 && rt.height%tileLength == 0

	offset := rt.sampleOffset.Load()
	for !rt.counters.ExitRequested.Load() && offset < totalPixelSamples {
		// Claim the next pixel-sample index
		for offset < totalPixelSamples {
			if rt.restartFlags[id].Load() {
				offset = rt.sampleOffset.Load()
				rt.restartFlags[id].Store(false)
			}

			if rt.sampleOffset.CompareAndSwap(offset, offset+1) {
				break
			}
			offset = rt.sampleOffset.Load()
		}

		if offset >= totalPixelSamples {
			break
		}

		curOffset := int(offset % int64(numPixels))

		// Map the claimed index to a pixel: tile-major when the image
		// divides into whole tiles, scan-line otherwise
		var x, y, outIdx int
		if tileEnabled {
			tileID := curOffset / tileArea
			tileOffset := curOffset % tileArea
			tileX := tileID % numXTiles
			tileY := tileID / numXTiles

			x = tileX*tileLength + tileOffset%tileLength
			y = tileY*tileLength + tileOffset/tileLength
			outIdx = y*rt.width + x
		} else {
			x = curOffset % rt.width
			y = curOffset / rt.width
			outIdx = curOffset
		}

		// Jittered sample through the camera; Y is flipped because the
		// image origin is top-left
		u := (float64(x) + rng.Float64()) / float64(rt.width)
		v := 1 - (float64(y)+rng.Float64())/float64(rt.height)
		ray := camera.GetRay(u, v, rng)

		color := tracer.Trace(scene, ray, 0, rng)
		rt.outputBuffer[outIdx] = rt.outputBuffer[outIdx].AddVec3(color)

		// Preview write with the pixel's current per-sample normalizer
		sampleCount := offset/int64(numPixels) + 1
		cur := rt.outputBuffer[outIdx].Multiply(1.0 / float64(sampleCount))
		r8, g8, b8, a8 := imageio.EncodeRGBA8(cur, true)

		rgbaOffset := outIdx * 4
		rt.outputRGBA8[rgbaOffset+0] = r8
		rt.outputRGBA8[rgbaOffset+1] = g8
		rt.outputRGBA8[rgbaOffset+2] = b8
		rt.outputRGBA8[rgbaOffset+3] = a8
	}

	// Last worker out marks the end time, reports completion, and signals
	// the completion event
	if rt.threadsDone.Add(1) == int32(rt.numThreads) {
		rt.endTime = time.Now()
		if rt.onComplete != nil {
			rt.onComplete(rt, rt.sampleOffset.Load() == totalPixelSamples)
		}
		close(rt.doneCh)
	}
}

// Width returns the output width in pixels
func (rt *Raytracer) Width() int { return rt.width }

// Height returns the output height in pixels
func (rt *Raytracer) Height() int { return rt.height }

// NumSamples returns the configured samples per pixel
func (rt *Raytracer) NumSamples() int { return rt.numSamples }

// OutputBuffer returns the raw HDR accumulator (sums, not averages)
func (rt *Raytracer) OutputBuffer() []core.Vec4 {
	return rt.outputBuffer
}

// AveragedBuffer returns the HDR buffer normalized by the sample count
func (rt *Raytracer) AveragedBuffer() []core.Vec4 {
	return imageio.Normalize(rt.outputBuffer, rt.numSamples)
}

// PreviewRGBA returns the gamma-encoded preview buffer. It is eventually
// consistent with the HDR buffer: a pixel's normalizer may be stale.
func (rt *Raytracer) PreviewRGBA() []uint8 {
	return rt.outputRGBA8
}
