package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fortuna/courtside/internal/chart"
	"github.com/fortuna/courtside/internal/gamelog"
	"github.com/fortuna/courtside/internal/service"
)

func writeWarnings(w io.Writer, dash *service.Dashboard) {
	for _, msg := range dash.Warnings {
		fmt.Fprintln(w, msg)
	}
}

func formatMean(m gamelog.Mean) string {
	if !m.Valid {
		return "-"
	}
	return fmt.Sprintf("%.1f", m.Value)
}

func writePrediction(w io.Writer, rep service.PlayerReport, st gamelog.Stat) {
	if rep.Prediction == nil {
		fmt.Fprintf(w, "%s: prediction unavailable\n", rep.Player.Name)
		return
	}
	fmt.Fprintf(w, "%s: predicted %s next game %.1f (%d games)\n",
		rep.Player.Name, st, rep.Prediction.Value, rep.Prediction.Games)
}

// writeDashboard prints each found player's log, averages and projection
func writeDashboard(w io.Writer, dash *service.Dashboard) error {
	writeWarnings(w, dash)
	for _, rep := range dash.Players {
		if !rep.Found {
			continue
		}
		fmt.Fprintf(w, "\n%s (%d games)\n", rep.Player.Name, len(rep.Games))
		if len(rep.Games) == 0 {
			fmt.Fprintln(w, "Nothing to display.")
			continue
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "DATE\tMATCHUP\tLOC\tPTS\tREB\tAST\tPRA\t")
		for _, g := range rep.Games {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t\n",
				g.GameDate.Format("2006-01-02"), g.Matchup, g.Location, g.Points, g.Rebounds, g.Assists, g.PRA)
		}
		s := rep.Summary
		fmt.Fprintf(tw, "AVG\t\t\t%s\t%s\t%s\t%s\t\n",
			formatMean(s.Points), formatMean(s.Rebounds), formatMean(s.Assists), formatMean(s.PRA))
		if err := tw.Flush(); err != nil {
			return err
		}
		writePrediction(w, rep, dash.Stat)
	}
	return nil
}

// panelFor picks the comparison panel for st when there is one, otherwise
// the primary player's panel
func panelFor(dash *service.Dashboard, st gamelog.Stat) (chart.Panel, bool) {
	if p, ok := chart.Find(dash.Comparison, st); ok {
		return p, true
	}
	if rep := dash.Primary(); rep != nil {
		return chart.Find(rep.Panels, st)
	}
	return chart.Panel{}, false
}
