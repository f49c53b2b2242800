// Package charts renders analytics results as PNG images.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"spendwise/internal/analytics"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no data to chart")

var padding = chart.Box{Top: 50, Left: 50, Right: 50, Bottom: 50}

// Renderer draws series and category breakdowns.
type Renderer struct {
	CurrencySymbol string
	Width          int
	Height         int
}

// NewRenderer creates a renderer that prefixes axis amounts with currencySymbol.
func NewRenderer(currencySymbol string) *Renderer {
	return &Renderer{CurrencySymbol: currencySymbol, Width: 1200, Height: 600}
}

func (r *Renderer) formatAmount(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%s%.0f", r.CurrencySymbol, f)
	}
	return ""
}

// yRange pins the value axis at zero so an all-zero series still has a
// non-empty range.
func yRange(buckets []analytics.Bucket) *chart.ContinuousRange {
	top := 0.0
	for _, b := range buckets {
		if v := b.Amount.InexactFloat64(); v > top {
			top = v
		}
	}
	if top == 0 {
		top = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: top * 1.1}
}

// RenderSeries draws an expense series: bars for yearly data, a line for
// daily and weekly buckets.
func (r *Renderer) RenderSeries(title string, period analytics.Period, buckets []analytics.Bucket) ([]byte, error) {
	if len(buckets) == 0 {
		return nil, ErrNoData
	}
	if period == analytics.PeriodYearly {
		return r.renderBars(title, buckets)
	}
	return r.renderLine(title, buckets)
}

func (r *Renderer) renderLine(title string, buckets []analytics.Bucket) ([]byte, error) {
	xValues := make([]float64, len(buckets))
	yValues := make([]float64, len(buckets))
	ticks := make([]chart.Tick, len(buckets))
	for i, b := range buckets {
		xValues[i] = float64(i)
		yValues[i] = b.Amount.InexactFloat64()
		ticks[i] = chart.Tick{Value: float64(i), Label: b.Label}
	}

	graph := chart.Chart{
		Title:  title,
		Width:  r.Width,
		Height: r.Height,
		Background: chart.Style{
			Padding:   padding,
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			Ticks: ticks,
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		YAxis: chart.YAxis{
			Range:          yRange(buckets),
			ValueFormatter: r.formatAmount,
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    title,
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					StrokeWidth: 2,
					FillColor:   chart.ColorRed.WithAlpha(40),
				},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render series chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func (r *Renderer) renderBars(title string, buckets []analytics.Bucket) ([]byte, error) {
	bars := make([]chart.Value, len(buckets))
	for i, b := range buckets {
		bars[i] = chart.Value{
			Label: b.Label,
			Value: b.Amount.InexactFloat64(),
			Style: chart.Style{
				StrokeColor: chart.ColorRed,
				FillColor:   chart.ColorRed.WithAlpha(160),
			},
		}
	}

	graph := chart.BarChart{
		Title:      title,
		TitleStyle: chart.Style{FontSize: 14, FontColor: chart.ColorBlack},
		Width:      r.Width,
		Height:     r.Height,
		BarWidth:   50,
		BarSpacing: 20,
		Background: chart.Style{
			Padding:   padding,
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			Range:          yRange(buckets),
			ValueFormatter: r.formatAmount,
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render series chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// RenderBreakdown draws category shares as a pie, one slice per category in
// the category's own color. Zero-amount categories are skipped.
func (r *Renderer) RenderBreakdown(title string, shares []analytics.CategoryShare) ([]byte, error) {
	values := make([]chart.Value, 0, len(shares))
	for _, s := range shares {
		amount := s.Amount.InexactFloat64()
		if amount <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s%.0f (%.1f%%)", s.Label, r.CurrencySymbol, amount, s.Percentage),
			Value: amount,
			Style: chart.Style{
				FillColor: drawing.ColorFromHex(strings.TrimPrefix(s.Color, "#")),
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		})
	}
	if len(values) == 0 {
		return nil, ErrNoData
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  r.Height,
		Height: r.Height,
		Values: values,
		Background: chart.Style{
			Padding:   padding,
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render category chart: %w", err)
	}
	return buffer.Bytes(), nil
}
