package render

import (
	"fmt"
	"image"
	"sync"

	"lumen/internal/logger"
	"lumen/pkg/geom"
	"lumen/pkg/scene"
	"lumen/pkg/vmath"
)

// DefaultSize is the image width and height used when none is given.
const DefaultSize = 256

// Options configures a render pass. Zero width/height fall back to
// DefaultSize; zero threads run the pixel loop on a single goroutine.
type Options struct {
	Width        int
	Height       int
	NumThreads   int
	ShowWarnings bool
	ShadeAtHit   bool
}

// Renderer compiles scene descriptions and rasterizes them.
type Renderer struct {
	opts Options
	log  *logger.Logger
}

// New creates a renderer with normalized options
func New(opts Options, log *logger.Logger) *Renderer {
	if opts.Width <= 0 {
		opts.Width = DefaultSize
	}
	if opts.Height <= 0 {
		opts.Height = DefaultSize
	}
	if opts.NumThreads <= 0 {
		opts.NumThreads = 1
	}
	return &Renderer{opts: opts, log: log}
}

// Render compiles the flat scene description and rasterizes it
func (r *Renderer) Render(seq []any) (*image.RGBA, error) {
	compiler := &scene.Compiler{Log: r.log, ShowWarnings: r.opts.ShowWarnings}
	graph, err := compiler.Compile(seq)
	if err != nil {
		return nil, err
	}
	return r.RenderGraph(graph)
}

// RenderGraph rasterizes an already-compiled scene graph. It fails
// before any pixel work when the graph has no root or no camera.
func (r *Renderer) RenderGraph(graph scene.Graph) (*image.RGBA, error) {
	rawRoot, hasRoot := graph[scene.KeywordRoot]
	if !hasRoot || rawRoot == nil {
		return nil, fmt.Errorf("no root object in scene")
	}
	root, ok := rawRoot.(geom.Primitive)
	if !ok {
		return nil, fmt.Errorf("scene root is not renderable: %v", rawRoot)
	}

	cam, ok := graph.Camera()
	if !ok {
		return nil, fmt.Errorf("no camera in scene")
	}

	width, height := r.opts.Width, r.opts.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// Rows are split across goroutines; pixels are independent, so
	// each goroutine only needs its own tracer scratch state.
	numGoroutines := r.opts.NumThreads
	if numGoroutines > height {
		numGoroutines = height
	}
	rowsPerGoroutine := height / numGoroutines

	var wg sync.WaitGroup
	for g := 0; g < numGoroutines; g++ {
		startRow := g * rowsPerGoroutine
		endRow := startRow + rowsPerGoroutine
		if g == numGoroutines-1 {
			endRow = height
		}

		wg.Add(1)
		go func(startRow, endRow int) {
			defer wg.Done()

			tracer := NewTracer(root, r.opts.ShadeAtHit)
			var colour vmath.Vec4

			for iy := startRow; iy < endRow; iy++ {
				for ix := 0; ix < width; ix++ {
					// Normalized screen offsets in [-0.5, 0.5)
					xp := float64(ix)/float64(width) - 0.5
					yp := float64(iy)/float64(height) - 0.5

					dir := cam.Direction.
						Add(cam.Right.Mul(xp)).
						Sub(cam.Up.Mul(yp)).
						Normalize()

					tracer.Trace(cam.Position, dir, &colour)
					img.SetRGBA(ix, iy, PackColour(colour))
				}
			}
		}(startRow, endRow)
	}
	wg.Wait()

	return img, nil
}
