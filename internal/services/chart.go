package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/skosovan/data-analyzer/internal/logger"
	"github.com/skosovan/data-analyzer/internal/models"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Chart types offered by the dashboard.
const (
	ChartScatter   = "scatter"
	ChartLine      = "line"
	ChartHistogram = "histogram"
	ChartBar       = "bar"
	ChartPie       = "pie"
)

const histogramBins = 10

// ErrBadChart is returned when the requested chart cannot be built from the
// chosen columns (wrong type, too few points, unknown chart kind).
var ErrBadChart = errors.New("cannot build chart")

// ChartService renders canned chart types from a cached dataset to PNG.
type ChartService struct {
	cache DatasetCache
}

// NewChartService creates a new ChartService.
func NewChartService(cache DatasetCache) *ChartService {
	return &ChartService{cache: cache}
}

// Render builds the requested chart over a dataset and returns PNG bytes.
// Scatter and line need two numeric columns (x, y); histogram needs one
// numeric column; bar and pie count the values of any column.
func (svc *ChartService) Render(ctx context.Context, datasetID, kind, xColumn, yColumn string) ([]byte, error) {
	ds, err := svc.cache.Get(ctx, datasetID)
	if err != nil {
		return nil, err
	}

	var png []byte
	switch kind {
	case ChartScatter, ChartLine:
		png, err = renderXY(ds, kind, xColumn, yColumn)
	case ChartHistogram:
		png, err = renderHistogram(ds, xColumn)
	case ChartBar, ChartPie:
		png, err = renderCounts(ds, kind, xColumn)
	default:
		err = fmt.Errorf("%w: unknown chart type %q", ErrBadChart, kind)
	}
	if err != nil {
		logger.Log.Warnw("chart rendering failed", "dataset_id", datasetID, "type", kind, "err", err)
		return nil, err
	}
	return png, nil
}

func renderXY(ds *models.Dataset, kind, xColumn, yColumn string) ([]byte, error) {
	xi := ds.ColumnIndex(xColumn)
	yi := ds.ColumnIndex(yColumn)
	if xi < 0 || yi < 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadChart, ErrUnknownColumn)
	}

	// Pair values row by row. A row missing either cell is dropped whole, so
	// an x from one row is never plotted against a y from another.
	var xs, ys []float64
	for _, row := range ds.Rows {
		if xi >= len(row) || yi >= len(row) || row[xi] == "" || row[yi] == "" {
			continue
		}
		x, errX := strconv.ParseFloat(row[xi], 64)
		y, errY := strconv.ParseFloat(row[yi], 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: %s needs two numeric columns", ErrBadChart, kind)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("%w: %s needs at least two paired numeric values", ErrBadChart, kind)
	}

	style := chart.Style{}
	if kind == ChartScatter {
		style = chart.Style{StrokeWidth: chart.Disabled, DotWidth: 4}
	}

	c := chart.Chart{
		XAxis: chart.XAxis{Name: xColumn},
		YAxis: chart.YAxis{Name: yColumn},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys, Style: style},
		},
	}
	return renderPNG(&c)
}

func renderHistogram(ds *models.Dataset, column string) ([]byte, error) {
	vals := ds.ColumnValues(column)
	if len(vals) == 0 {
		return nil, fmt.Errorf("%w: histogram needs a numeric column", ErrBadChart)
	}

	min, max := vals[0], vals[0]
	for _, v := range vals {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	width := (max - min) / histogramBins
	if width == 0 {
		width = 1
	}
	counts := make([]int, histogramBins)
	for _, v := range vals {
		bin := int((v - min) / width)
		if bin >= histogramBins {
			bin = histogramBins - 1
		}
		counts[bin]++
	}

	bars := make([]chart.Value, histogramBins)
	for i, n := range counts {
		bars[i] = chart.Value{
			Value: float64(n),
			Label: fmt.Sprintf("%.4g", min+width*float64(i)),
		}
	}

	bc := chart.BarChart{
		Title:    column,
		Height:   512,
		BarWidth: 40,
		Bars:     bars,
		YAxis:    countAxis(bars),
	}
	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderCounts(ds *models.Dataset, kind, column string) ([]byte, error) {
	idx := ds.ColumnIndex(column)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %v %s", ErrBadChart, ErrUnknownColumn, column)
	}

	counts := make(map[string]int)
	for _, row := range ds.Rows {
		if idx < len(row) && row[idx] != "" {
			counts[row[idx]]++
		}
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("%w: column %s has no values", ErrBadChart, column)
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	values := make([]chart.Value, 0, len(labels))
	for _, label := range labels {
		values = append(values, chart.Value{Value: float64(counts[label]), Label: label})
	}

	var buf bytes.Buffer
	if kind == ChartPie {
		pc := chart.PieChart{Title: column, Width: 512, Height: 512, Values: values}
		if err := pc.Render(chart.PNG, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	bc := chart.BarChart{Title: column, Height: 512, BarWidth: 40, Bars: values, YAxis: countAxis(values)}
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// countAxis fixes the Y range of a count chart. Without it the library
// derives the range from the data and rejects bars of all-equal height
// (min == max is "invalid data range").
func countAxis(bars []chart.Value) chart.YAxis {
	max := 0.0
	for _, b := range bars {
		if b.Value > max {
			max = b.Value
		}
	}
	return chart.YAxis{
		Range: &chart.ContinuousRange{Min: 0, Max: max + 1},
	}
}

func renderPNG(c *chart.Chart) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
