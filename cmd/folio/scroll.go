package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eringen/folio/section"
)

var (
	scrollViewport  float64
	scrollHeight    float64
	scrollThreshold float64
	scrollSteps     int
)

var scrollCmd = &cobra.Command{
	Use:   "scroll <y|#section>...",
	Short: "Simulate scrolling and clicks, printing the active section",
	Long: `Scroll mounts a page of equally tall sections and replays the given events in
order. A number scrolls the viewport to that offset; #id (or a bare section
name) clicks the navigation link for that section and plays the smooth
scroll. The active section is printed after every event.`,
	Example: "  folio scroll --viewport 800 900 1700 '#contact' 0",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScroll(cmd.OutOrStdout(), scrollViewport, scrollHeight, args)
	},
}

func init() {
	scrollCmd.Flags().Float64Var(&scrollViewport, "viewport", 800, "viewport height")
	scrollCmd.Flags().Float64Var(&scrollHeight, "section-height", 0, "height of every section (default: viewport height)")
	scrollCmd.Flags().Float64Var(&scrollThreshold, "threshold", section.Threshold, "visible fraction that activates a section")
	scrollCmd.Flags().IntVar(&scrollSteps, "steps", section.DefaultScrollSteps, "positions in a smooth scroll")
	rootCmd.AddCommand(scrollCmd)
}

func runScroll(w io.Writer, viewport, height float64, events []string) error {
	if viewport <= 0 {
		return fmt.Errorf("viewport must be positive, got %v", viewport)
	}
	if height <= 0 {
		height = viewport
	}
	heights := make(map[section.ID]float64)
	for _, id := range section.All() {
		heights[id] = height
	}

	page := section.Mount(section.Stack(heights), viewport,
		section.WithThreshold(scrollThreshold),
		section.WithScrollSteps(scrollSteps),
	)
	defer page.Close()

	fmt.Fprintf(w, "%-18s y=%-6.0f active=%s\n", "mount", page.ScrollY(), page.Active())
	for _, ev := range events {
		if y, err := strconv.ParseFloat(ev, 64); err == nil {
			page.ScrollTo(y)
			fmt.Fprintf(w, "%-18s y=%-6.0f active=%s\n", "scroll "+ev, page.ScrollY(), page.Active())
			continue
		}
		id, err := section.Parse(strings.TrimPrefix(ev, "#"))
		if err != nil {
			return err
		}
		path := page.Navigate(id)
		fmt.Fprintf(w, "%-18s y=%-6.0f active=%s\n", "click "+id.Anchor(), page.ScrollY(), page.Active())
		page.Play(path)
		fmt.Fprintf(w, "%-18s y=%-6.0f active=%s\n", "  landed", page.ScrollY(), page.Active())
	}
	return nil
}
