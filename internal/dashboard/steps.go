package dashboard

import (
	"context"
	"fmt"

	"github.com/shaik-1036/delhi-metro-data-analysis/internal/core"
	"github.com/shaik-1036/delhi-metro-data-analysis/internal/render"
)

// step is one stage of a build.
type step struct {
	name string
	fn   func(ctx context.Context) error
}

// run carries the tables of one build between steps.
type run struct {
	opts    Options
	page    *Page
	raw     *core.Table
	cleaned *core.Table
}

// steps lists the build in display order.
func (r *run) steps() []step {
	return []step{
		{"load", r.load},
		{"missing values", r.missing},
		{"clean", r.clean},
		{"line distribution", r.lineDistribution},
		{"stations per line", r.stationsPerLine},
		{"distance histogram", r.distanceHistogram},
		{"station map", r.stationMap},
		{"yearly openings", r.yearlyOpenings},
		{"layout by line", r.layoutByLine},
	}
}

func (r *run) add(s Section) {
	r.page.Sections = append(r.page.Sections, s)
}

func (r *run) addArtifact(id string, a render.Artifact) {
	r.add(Section{
		ID:          id,
		Kind:        SectionArtifact,
		Title:       a.Title,
		Description: a.Description,
		Artifact:    &a,
	})
}

func (r *run) load(ctx context.Context) error {
	r.add(Section{
		ID:    "overview",
		Kind:  SectionOverview,
		Title: "Project Overview",
		Description: "Delhi Metro station records summarised by metro line, distance from the first " +
			"station, opening year and layout, with every station placed on a map. " +
			"The data is read from " + r.opts.DataPath + " on every page load.",
	})

	raw, err := core.LoadFile(r.opts.DataPath, core.WithComma(r.opts.Comma))
	if err != nil {
		return err
	}
	r.raw = raw
	r.page.Summary.Source = raw.Source()
	r.page.Summary.Rows = raw.Len()

	p := raw.Preview(r.opts.PreviewRows)
	r.add(Section{
		ID:          "raw-preview",
		Kind:        SectionPreview,
		Title:       "Preview of Data",
		Description: fmt.Sprintf("First %d of %d rows as loaded.", len(p.Rows), p.Total),
		Preview:     &p,
	})
	return nil
}

func (r *run) missing(ctx context.Context) error {
	counts := core.MissingCounts(r.raw)
	r.page.Summary.Missing = counts
	r.add(Section{
		ID:    "missing",
		Kind:  SectionMissing,
		Title: "Missing Values",
		Description: fmt.Sprintf("%d missing cells across %d columns. Rows with any missing value are dropped.",
			core.TotalMissing(counts), len(counts)),
		Missing: counts,
	})
	return nil
}

func (r *run) clean(ctx context.Context) error {
	r.cleaned = core.Clean(r.raw)
	r.page.Cleaned = r.cleaned
	r.page.Summary.CleanedRows = r.cleaned.Len()

	p := r.cleaned.Preview(r.opts.PreviewRows)
	r.add(Section{
		ID:    "cleaned-preview",
		Kind:  SectionPreview,
		Title: "Cleaned Data",
		Description: fmt.Sprintf("First %d of %d complete rows (%d dropped).",
			len(p.Rows), p.Total, r.raw.Len()-r.cleaned.Len()),
		Preview: &p,
	})

	if r.cleaned.Len() == 0 {
		return fmt.Errorf("clean: %w", core.ErrNoData)
	}
	return nil
}

func (r *run) lineDistribution(ctx context.Context) error {
	counts, err := core.LineDistribution(r.cleaned)
	if err != nil {
		return err
	}
	r.page.Summary.LineDistribution = counts

	a, err := render.PieChart(counts)
	if err != nil {
		return err
	}
	r.addArtifact("line-distribution", a)
	return nil
}

func (r *run) stationsPerLine(ctx context.Context) error {
	counts, err := core.StationsPerLine(r.cleaned)
	if err != nil {
		return err
	}
	r.page.Summary.StationsPerLine = counts

	a, err := render.BarChart(counts)
	if err != nil {
		return err
	}
	r.addArtifact("stations-per-line", a)
	return nil
}

func (r *run) distanceHistogram(ctx context.Context) error {
	h, err := core.DistanceHistogram(r.cleaned, r.opts.HistogramBins)
	if err != nil {
		return err
	}
	r.page.Summary.Histogram = &h

	a, err := render.HistogramChart(h)
	if err != nil {
		return err
	}
	r.addArtifact("distance-histogram", a)
	return nil
}

func (r *run) stationMap(ctx context.Context) error {
	points, err := core.StationPoints(r.cleaned, r.opts.Map.Center)
	if err != nil {
		return err
	}
	r.page.Summary.Stations = points

	a, err := render.StationMap(points, r.opts.Map)
	if err != nil {
		return err
	}
	r.addArtifact("station-map", a)
	return nil
}

func (r *run) yearlyOpenings(ctx context.Context) error {
	years, err := core.YearlyOpenings(r.cleaned, r.opts.FillYearGaps)
	if err != nil {
		return err
	}
	r.page.Summary.YearlyOpenings = years

	a, err := render.LineChart(years)
	if err != nil {
		return err
	}
	r.addArtifact("yearly-openings", a)
	return nil
}

func (r *run) layoutByLine(ctx context.Context) error {
	ct, err := core.LayoutByLine(r.cleaned)
	if err != nil {
		return err
	}
	r.page.Summary.LayoutByLine = &ct

	a, err := render.StackedBarChart(ctx, ct, r.opts.Palette)
	if err != nil {
		return err
	}
	r.addArtifact("layout-by-line", a)
	return nil
}
