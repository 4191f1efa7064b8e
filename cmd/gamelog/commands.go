package main

import (
	"fmt"
	"os"

	"github.com/fortuna/courtside/internal/chart"
	"github.com/fortuna/courtside/internal/gamelog"
	"github.com/spf13/cobra"
)

var (
	statFlag string
	outFlag  string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the filtered game log with averages and the next-game projection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		req := filters
		req.Stat = statFlag
		dash, err := svc.Run(rootCtx, req)
		if err != nil {
			return err
		}
		return writeDashboard(cmd.OutOrStdout(), dash)
	},
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Print only the next-game projection for one stat",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		req := filters
		req.Stat = statFlag
		dash, err := svc.Run(rootCtx, req)
		if err != nil {
			return err
		}
		writeWarnings(cmd.ErrOrStderr(), dash)
		for _, rep := range dash.Players {
			if rep.Found {
				writePrediction(cmd.OutOrStdout(), rep, dash.Stat)
			}
		}
		return nil
	},
}

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Write one stat panel as an SVG bar chart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		st, err := gamelog.ParseStat(statFlag)
		if err != nil {
			return err
		}
		dash, err := svc.Run(rootCtx, filters)
		if err != nil {
			return err
		}
		writeWarnings(cmd.ErrOrStderr(), dash)

		panel, ok := panelFor(dash, st)
		if !ok {
			return fmt.Errorf("nothing to display")
		}

		w := cmd.OutOrStdout()
		if outFlag != "" && outFlag != "-" {
			f, err := os.Create(outFlag)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outFlag, err)
			}
			defer f.Close()
			w = f
		}
		if err := chart.RenderSVG(w, panel); err != nil {
			return err
		}
		if outFlag != "" && outFlag != "-" {
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", outFlag)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{showCmd, predictCmd, chartCmd} {
		c.Flags().StringVar(&statFlag, "stat", "PTS", "PTS, REB, AST or PRA")
	}
	chartCmd.Flags().StringVarP(&outFlag, "out", "o", "-", "output file, - for stdout")
}
