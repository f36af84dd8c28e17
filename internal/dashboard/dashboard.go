// Package dashboard runs the station pipeline for one page load: load,
// clean, aggregate, render. Sections come out in display order and the
// build stops at the first failure, keeping what was produced before it.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shaik-1036/delhi-metro-data-analysis/internal/config"
	"github.com/shaik-1036/delhi-metro-data-analysis/internal/core"
	"github.com/shaik-1036/delhi-metro-data-analysis/internal/logging"
	"github.com/shaik-1036/delhi-metro-data-analysis/internal/render"
)

// Title is the page heading.
const Title = "Delhi Metro Data Analysis"

// SectionKind identifies how a section is displayed.
type SectionKind string

const (
	SectionOverview SectionKind = "overview"
	SectionPreview  SectionKind = "preview"
	SectionMissing  SectionKind = "missing"
	SectionArtifact SectionKind = "artifact"
)

// Section is one block of the page.
type Section struct {
	ID          string
	Kind        SectionKind
	Title       string
	Description string
	Preview     *core.Preview
	Missing     []core.ColumnMissing
	Artifact    *render.Artifact
}

// Summary holds every aggregate a build computed. Fields stay zero for
// steps the build did not reach.
type Summary struct {
	Source           string               `json:"source"`
	Rows             int                  `json:"rows"`
	CleanedRows      int                  `json:"cleaned_rows"`
	Missing          []core.ColumnMissing `json:"missing,omitempty"`
	LineDistribution []core.CategoryCount `json:"line_distribution,omitempty"`
	StationsPerLine  []core.CategoryCount `json:"stations_per_line,omitempty"`
	Histogram        *core.Histogram      `json:"distance_histogram,omitempty"`
	YearlyOpenings   []core.YearCount     `json:"yearly_openings,omitempty"`
	LayoutByLine     *core.CrossTab       `json:"layout_by_line,omitempty"`
	Stations         []core.StationPoint  `json:"stations,omitempty"`
}

// Page is the result of one build.
type Page struct {
	RunID    string
	Title    string
	Sections []Section
	Summary  Summary
	Cleaned  *core.Table // nil when the build stopped before cleaning
	Duration time.Duration
	Err      error // First failure; nil when every section was produced
}

// Options configures a Builder.
type Options struct {
	DataPath      string
	Comma         rune
	PreviewRows   int
	HistogramBins int
	FillYearGaps  bool
	Map           render.MapOptions
	Palette       render.Palette

	// Concurrent builds and how long a build waits for a slot.
	MaxConcurrentBuilds int
	MaxWait             time.Duration
}

// OptionsFromConfig builds Options from application config, reading the
// palette file if one is configured.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	colors, err := cfg.LineColors()
	if err != nil {
		return Options{}, fmt.Errorf("line colours: %w", err)
	}
	return Options{
		DataPath:      cfg.Data.Path,
		Comma:         cfg.Data.Comma(),
		PreviewRows:   cfg.Data.PreviewRows,
		HistogramBins: cfg.Data.HistogramBins,
		FillYearGaps:  cfg.Data.FillYearGaps,
		Map: render.MapOptions{
			Center:  core.Coord{Lat: cfg.Map.CenterLat, Lon: cfg.Map.CenterLon},
			Zoom:    cfg.Map.Zoom,
			TileURL: cfg.Map.TileURL,
		},
		Palette:             render.NewPalette(colors),
		MaxConcurrentBuilds: cfg.Data.MaxConcurrentBuilds,
		MaxWait:             cfg.Data.BuildWait,
	}, nil
}

// Builder produces dashboard pages. It holds no per-build state, so one
// Builder serves concurrent requests.
type Builder struct {
	opts    Options
	limiter *Limiter
}

// NewBuilder creates a Builder. Zero values take the defaults: 5 preview
// rows, core.DefaultHistogramBins and the Limiter defaults.
func NewBuilder(opts Options) *Builder {
	if opts.PreviewRows <= 0 {
		opts.PreviewRows = 5
	}
	if opts.HistogramBins <= 0 {
		opts.HistogramBins = core.DefaultHistogramBins
	}
	return &Builder{
		opts:    opts,
		limiter: NewLimiter(opts.MaxConcurrentBuilds, opts.MaxWait),
	}
}

// Drain waits for in-flight builds to finish.
func (b *Builder) Drain(ctx context.Context) error {
	return b.limiter.WaitForDrain(ctx)
}

// Build runs the pipeline once. It never returns nil; check Page.Err.
func (b *Builder) Build(ctx context.Context) *Page {
	start := time.Now()
	page := &Page{RunID: uuid.NewString(), Title: Title}
	logger := logging.WithFields(ctx, "run_id", page.RunID, "source", b.opts.DataPath)

	if err := b.limiter.Acquire(ctx); err != nil {
		page.Err = fmt.Errorf("acquire build slot: %w", err)
		page.Duration = time.Since(start)
		logger.Warn("dashboard build rejected", "error", err, "active", b.limiter.Active(), "max_concurrent", b.limiter.MaxConcurrent())
		return page
	}
	defer b.limiter.Release()

	r := &run{opts: b.opts, page: page}
	for _, s := range r.steps() {
		if err := ctx.Err(); err != nil {
			page.Err = fmt.Errorf("%s: %w", s.name, err)
			break
		}
		if err := s.fn(ctx); err != nil {
			page.Err = err
			break
		}
		logger.Debug("dashboard step done", "step", s.name)
	}

	page.Duration = time.Since(start)
	if page.Err != nil {
		logger.Error("dashboard build failed",
			"error", page.Err,
			"code", core.MapError(page.Err).Code,
			"sections", len(page.Sections),
		)
	} else {
		logger.Info("dashboard built",
			"rows", page.Summary.Rows,
			"cleaned_rows", page.Summary.CleanedRows,
			"sections", len(page.Sections),
			"duration", page.Duration,
		)
	}
	return page
}
