package chart

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/fortuna/courtside/internal/gamelog"
)

const (
	canvasWidth  = 960
	canvasHeight = 420
	marginLeft   = 50
	marginRight  = 20
	marginTop    = 40
	marginBottom = 90
)

var seriesFill = []map[gamelog.Threshold]string{
	{gamelog.AboveMean: "#2e7d32", gamelog.BelowMean: "#c62828"},
	{gamelog.AboveMean: "#1565c0", gamelog.BelowMean: "#ef6c00"},
}

// vmap maps value from one range into another
func vmap(value, low1, high1, low2, high2 float64) float64 {
	if high1 == low1 {
		return low2
	}
	return low2 + (high2-low2)*(value-low1)/(high1-low1)
}

// RenderSVG draws p as a grouped bar chart with one dashed mean line per series
func RenderSVG(w io.Writer, p Panel) error {
	if len(p.Series) == 0 {
		return fmt.Errorf("panel %q has no series", p.Title)
	}

	slots, maxV := 0, 0.0
	for _, s := range p.Series {
		if len(s.Points) > slots {
			slots = len(s.Points)
		}
		for _, pt := range s.Points {
			maxV = math.Max(maxV, pt.Value)
		}
		if s.Mean.Valid {
			maxV = math.Max(maxV, s.Mean.Value)
		}
	}
	if maxV == 0 {
		maxV = 1
	}

	plotW := float64(canvasWidth - marginLeft - marginRight)
	plotH := float64(canvasHeight - marginTop - marginBottom)
	baseY := float64(marginTop) + plotH
	yOf := func(v float64) int { return int(vmap(v, 0, maxV, baseY, marginTop)) }

	canvas := svg.New(w)
	canvas.Start(canvasWidth, canvasHeight)
	canvas.Rect(0, 0, canvasWidth, canvasHeight, "fill:white")
	canvas.Gstyle("font-family:Helvetica,Arial,sans-serif;font-size:11px")
	canvas.Text(canvasWidth/2, 24, p.Title, "text-anchor:middle;font-size:16px")
	canvas.Line(marginLeft, int(baseY), canvasWidth-marginRight, int(baseY), "stroke:#444")
	canvas.Text(marginLeft-6, int(baseY), "0", "text-anchor:end")
	canvas.Text(marginLeft-6, marginTop+4, fmt.Sprintf("%.0f", maxV), "text-anchor:end")

	if slots == 0 {
		canvas.Text(canvasWidth/2, canvasHeight/2, "No games to display", "text-anchor:middle;fill:gray")
		canvas.Gend()
		canvas.End()
		return nil
	}

	slotW := plotW / float64(slots)
	barW := slotW * 0.8 / float64(len(p.Series))
	for si, s := range p.Series {
		fills := seriesFill[si%len(seriesFill)]
		for i, pt := range s.Points {
			x := float64(marginLeft) + float64(i)*slotW + slotW*0.1 + float64(si)*barW
			y := yOf(pt.Value)
			canvas.Rect(int(x), y, int(math.Max(barW-1, 1)), int(baseY)-y, "fill:"+fills[pt.Threshold])
			if si == 0 {
				lx, ly := int(x+slotW*0.4), int(baseY)+8
				canvas.Text(lx, ly, pt.Label,
					"text-anchor:end;font-size:9px;fill:#333",
					fmt.Sprintf(`transform="rotate(-60 %d %d)"`, lx, ly))
			}
		}
		if s.Mean.Valid {
			my := yOf(s.Mean.Value)
			canvas.Line(marginLeft, my, canvasWidth-marginRight, my,
				"stroke:"+fills[gamelog.AboveMean]+";stroke-dasharray:6,4")
			canvas.Text(canvasWidth-marginRight, my-4,
				fmt.Sprintf("%s avg %.1f", s.Name, s.Mean.Value), "text-anchor:end;fill:#333")
		}
	}

	canvas.Gend()
	canvas.End()
	return nil
}
