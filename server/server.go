package server

import (
	"log"
	"net/http"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridbfs/bfs"
	"github.com/katalvlaran/gridbfs/grid"
	"github.com/katalvlaran/gridbfs/render"
	"github.com/katalvlaran/gridbfs/route"
)

// Config holds the server's tunables.
type Config struct {
	// AllowOrigin is sent as Access-Control-Allow-Origin.
	AllowOrigin string
	// MaxCells bounds rows×cols of a posted layout.
	MaxCells int
	// MaxFrameCells bounds rows×cols when frames are requested, since every
	// step is returned as a full board.
	MaxFrameCells int
	// BrotliLevel is the compression level, 0..11.
	BrotliLevel int
}

// DefaultConfig returns a Config suitable for local use.
func DefaultConfig() Config {
	return Config{
		AllowOrigin:   "*",
		MaxCells:      250_000,
		MaxFrameCells: 2_500,
		BrotliLevel:   brotli.DefaultCompression,
	}
}

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Layout grid.Layout       `json:"layout"`
	Frames bool              `json:"frames"`
	Order  []route.Direction `json:"order,omitempty"`
}

// SearchResponse is the result of POST /api/search.
type SearchResponse struct {
	Outcome     bfs.Outcome  `json:"outcome"`
	Length      int          `json:"length"`
	Path        []grid.Coord `json:"path,omitempty"`
	Overlay     []route.Step `json:"overlay,omitempty"`
	Steps       int          `json:"steps"`
	Frames      [][]string   `json:"frames,omitempty"`
	TimeTakenMs float64      `json:"timeTakenMs"`
}

// NewRouter wires middleware and routes.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), CORSMiddleware(cfg.AllowOrigin), BrotliMiddleware(cfg.BrotliLevel))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api := r.Group("/api")
	api.GET("/layouts/classic", func(c *gin.Context) {
		c.JSON(http.StatusOK, grid.Classic())
	})
	api.POST("/search", searchHandler(cfg))
	return r
}

func searchHandler(cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[WARN] bad search request: %v", err)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		l, err := req.Layout.Resolve()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if tooLarge(l, cfg, req.Frames) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "layout too large"})
			return
		}
		g, err := l.Build()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		rec := &render.Recorder{CountOnly: !req.Frames}
		opts := []bfs.Option{bfs.WithRenderer(rec), bfs.WithContext(c.Request.Context())}
		if len(req.Order) > 0 {
			opts = append(opts, bfs.WithNeighborOrder(req.Order))
		}
		engine, err := bfs.New(opts...)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		started := time.Now()
		res, err := engine.FindShortestPath(g, l.Start, l.End)
		if err != nil {
			log.Printf("[ERROR] search on %q failed: %v", l.Name, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		resp := SearchResponse{
			Outcome:     res.Outcome,
			Length:      res.Len(),
			Path:        res.Path,
			Overlay:     res.Overlay,
			Steps:       rec.FrameCount(),
			TimeTakenMs: float64(time.Since(started).Microseconds()) / 1000.0,
		}
		if req.Frames {
			resp.Frames = encodeFrames(rec.Frames())
		}
		log.Printf("[INFO] search %q %dx%d: %s in %d steps", l.Name, l.Rows, l.Cols, res.Outcome, resp.Steps)
		c.JSON(http.StatusOK, resp)
	}
}

// tooLarge reports whether l exceeds the cell limit for the request.
// Non-positive dimensions are left to Build, which rejects them with a 400.
func tooLarge(l grid.Layout, cfg Config, frames bool) bool {
	if l.Rows <= 0 || l.Cols <= 0 {
		return false
	}
	limit := cfg.MaxCells
	if frames && cfg.MaxFrameCells < limit {
		limit = cfg.MaxFrameCells
	}
	return l.Rows > limit/l.Cols
}

// encodeFrames turns each snapshot into one glyph string per row.
func encodeFrames(frames [][][]grid.CellState) [][]string {
	out := make([][]string, len(frames))
	for i, f := range frames {
		rows := make([]string, len(f))
		for r, row := range f {
			b := make([]byte, len(row))
			for c, s := range row {
				b[c] = render.Glyph(s)
			}
			rows[r] = string(b)
		}
		out[i] = rows
	}
	return out
}
