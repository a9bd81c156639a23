package services

import (
	"context"
	"fmt"

	"github.com/skosovan/data-analyzer/internal/logger"
)

const reportTableRows = 15

// DeckBuilder authors one slide-deck report. The output format is the
// builder's concern; the service only composes slides.
type DeckBuilder interface {
	AddTitleSlide(title, subtitle string)
	AddTableSlide(title string, columns []string, rows [][]string)
	AddChartSlide(title string, png []byte)
	AddTextSlide(title, text string)
	Bytes() ([]byte, error)
}

// ChartRenderer renders one chart of a cached dataset to PNG.
type ChartRenderer interface {
	Render(ctx context.Context, datasetID, kind, xColumn, yColumn string) ([]byte, error)
}

// ChartSpec names one chart to include in a report.
type ChartSpec struct {
	Kind    string `json:"type"`
	XColumn string `json:"x"`
	YColumn string `json:"y,omitempty"`
}

// ReportService bundles a dataset preview, rendered charts, and an optional
// summary into a downloadable deck.
type ReportService struct {
	cache   DatasetCache
	charts  ChartRenderer
	newDeck func() DeckBuilder
}

// NewReportService creates a new ReportService. newDeck is called once per
// report so builds never share builder state.
func NewReportService(cache DatasetCache, charts ChartRenderer, newDeck func() DeckBuilder) *ReportService {
	return &ReportService{
		cache:   cache,
		charts:  charts,
		newDeck: newDeck,
	}
}

// Build assembles the report. A chart that cannot be rendered skips its
// slide with a warning instead of failing the whole report.
func (svc *ReportService) Build(ctx context.Context, datasetID string, specs []ChartSpec, summary string) ([]byte, error) {
	ds, err := svc.cache.Get(ctx, datasetID)
	if err != nil {
		return nil, err
	}

	deck := svc.newDeck()
	deck.AddTitleSlide(
		fmt.Sprintf("Dataset Overview: %s", ds.Name),
		fmt.Sprintf("%d rows, %d columns", len(ds.Rows), len(ds.Columns)),
	)

	rows := ds.Rows
	if len(rows) > reportTableRows {
		rows = rows[:reportTableRows]
	}
	deck.AddTableSlide("Data Preview", ds.Columns, rows)

	for _, spec := range specs {
		png, err := svc.charts.Render(ctx, datasetID, spec.Kind, spec.XColumn, spec.YColumn)
		if err != nil {
			logger.Log.Warnw("skipping chart slide", "dataset_id", datasetID, "type", spec.Kind, "err", err)
			continue
		}
		deck.AddChartSlide(fmt.Sprintf("%s: %s", spec.Kind, spec.XColumn), png)
	}

	if summary != "" {
		deck.AddTextSlide("Summary", summary)
	}

	return deck.Bytes()
}
