package renderer

import (
	"fmt"
	"time"
)

// Stats is a point-in-time snapshot of trace progress, queryable from the
// host at any time
type Stats struct {
	TotalRaysFired       int64
	NumPixelSamples      int64 // current value of the sample counter
	TotalNumPixelSamples int64 // width * height * samples
	CompletedSampleCount int   // full-image passes finished
	CurrentPixelOffset   int   // position within the current pass
	NumPdfQueryRetries   int64
	TotalTimeSeconds     float64
}

// GetStats returns the current progress snapshot
func (rt *Raytracer) GetStats() Stats {
	endTime := rt.endTime
	if rt.isRaytracing {
		endTime = time.Now()
	}

	numPixels := int64(rt.width * rt.height)
	offset := rt.sampleOffset.Load()

	return Stats{
		TotalRaysFired:       rt.counters.RaysFired.Load(),
		NumPixelSamples:      offset,
		TotalNumPixelSamples: numPixels * int64(rt.numSamples),
		CompletedSampleCount: int(offset / numPixels),
		CurrentPixelOffset:   int(offset % numPixels),
		NumPdfQueryRetries:   rt.counters.PdfQueryRetries.Load(),
		TotalTimeSeconds:     endTime.Sub(rt.startTime).Seconds(),
	}
}

// Progress returns the fraction of pixel-samples completed, in [0, 1]
func (s Stats) Progress() float64 {
	if s.TotalNumPixelSamples == 0 {
		return 0
	}
	return float64(s.NumPixelSamples) / float64(s.TotalNumPixelSamples)
}

func (s Stats) String() string {
	return fmt.Sprintf("%5.1f%%  pass %d  rays %d  %.0fs",
		s.Progress()*100, s.CompletedSampleCount, s.TotalRaysFired, s.TotalTimeSeconds)
}
