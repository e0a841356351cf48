package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mvollmer/go-pathtracer/pkg/imageio"
	"github.com/mvollmer/go-pathtracer/pkg/renderer"
	"github.com/mvollmer/go-pathtracer/pkg/scene"
)

const outputDir = "OutputImages"

// config holds the console tracer parameters
type config struct {
	Width      int
	Height     int
	NumSamples int
	MaxDepth   int
	NumThreads int
	Seed       int64
	DataDir    string
	Enabled    []bool
}

func defaultConfig() config {
	enabled := make([]bool, len(scene.Names()))
	for i := range enabled {
		enabled[i] = true
	}

	return config{
		Width:      512,
		Height:     512,
		NumSamples: 500,
		MaxDepth:   50,
		NumThreads: 4,
		Seed:       1,
		DataDir:    "runtimedata",
		Enabled:    enabled,
	}
}

// parseArgs scans the argument list with substring matching: any argument
// containing a parameter name consumes the following argument as its value.
// Unknown scene indices are ignored.
func parseArgs(args []string) config {
	cfg := defaultConfig()

	for i := 0; i < len(args); i++ {
		next := func() (int, bool) {
			if i+1 >= len(args) {
				return 0, false
			}
			i++
			v, err := strconv.Atoi(args[i])
			return v, err == nil
		}

		switch {
		case strings.Contains(args[i], "width"):
			if v, ok := next(); ok {
				cfg.Width = v
			}
		case strings.Contains(args[i], "height"):
			if v, ok := next(); ok {
				cfg.Height = v
			}
		case strings.Contains(args[i], "samples"):
			if v, ok := next(); ok {
				cfg.NumSamples = v
			}
		case strings.Contains(args[i], "depth"):
			if v, ok := next(); ok {
				cfg.MaxDepth = v
			}
		case strings.Contains(args[i], "threads"):
			if v, ok := next(); ok {
				cfg.NumThreads = v
			}
		case strings.Contains(args[i], "noscene"):
			if v, ok := next(); ok && v >= 0 && v < len(cfg.Enabled) {
				cfg.Enabled[v] = false
			}
		}
	}

	if len(args) == 0 {
		fmt.Println("Commandline usage:\n\twidth [num]  height [num]  samples [num]  depth [num]  threads [num]  noscene [sceneNum]")
	}

	fmt.Printf("Current tracing parameters:\n\tresolution:%dx%d numSamples:%d scatterDepth:%d numThreads:%d\n",
		cfg.Width, cfg.Height, cfg.NumSamples, cfg.MaxDepth, cfg.NumThreads)

	return cfg
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Printf("could not create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	sugar := logger.Sugar()

	cfg := parseArgs(os.Args[1:])

	tracer := renderer.NewRaytracer(
		cfg.Width, cfg.Height, cfg.NumSamples, cfg.MaxDepth, cfg.NumThreads, true)
	tracer.SetSeed(cfg.Seed)
	tracer.SetLogger(sugar)

	for i, name := range scene.Names() {
		if !cfg.Enabled[i] {
			continue
		}

		worldScene, err := scene.Build(scene.Type(i), cfg.Seed, cfg.DataDir)
		if err != nil {
			sugar.Errorf("could not build scene %s: %v", name, err)
			continue
		}

		worldScene.Camera().SetFocusDistanceToLookAt()
		worldScene.Camera().SetAspect(float64(cfg.Width) / float64(cfg.Height))

		renderAndPrintProgress(tracer, worldScene, name)
		writeImages(tracer, name, sugar)
	}
}

// renderAndPrintProgress runs a trace to completion, printing progress while
// waiting
func renderAndPrintProgress(tracer *renderer.Raytracer, worldScene *renderer.WorldScene, name string) {
	fmt.Printf("\nRendering %s...\n", name)
	tracer.BeginRaytrace(worldScene, nil)

	for !tracer.WaitForTraceToFinish(500 * time.Millisecond) {
		fmt.Printf("\r%s", tracer.GetStats())
	}
	fmt.Printf("\r%s\nRendering done!\n", tracer.GetStats())
}

// writeImages writes the averaged HDR buffer as PNG and PPM
func writeImages(tracer *renderer.Raytracer, name string, sugar *zap.SugaredLogger) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		sugar.Errorf("could not create output dir: %v", err)
		return
	}

	buffer := tracer.AveragedBuffer()

	pngPath := filepath.Join(outputDir, name+".png")
	pngFile, err := os.Create(pngPath)
	if err == nil {
		err = imageio.WritePNG(pngFile, buffer, tracer.Width(), tracer.Height())
		pngFile.Close()
	}
	if err != nil {
		sugar.Errorf("could not write %s: %v", pngPath, err)
	} else {
		sugar.Infof("wrote %s", pngPath)
	}

	ppmPath := filepath.Join(outputDir, name+".ppm")
	ppmFile, err := os.Create(ppmPath)
	if err == nil {
		err = imageio.WritePPM(ppmFile, buffer, tracer.Width(), tracer.Height())
		ppmFile.Close()
	}
	if err != nil {
		sugar.Errorf("could not write %s: %v", ppmPath, err)
	} else {
		sugar.Infof("wrote %s", ppmPath)
	}
}
