package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Per-iteration record of a render session.
type IterationStat struct {
	Index      int
	Model      string
	Background string

	// Wall time for the host render of this iteration.
	RenderTime time.Duration
}

// A Session accumulates the outputs of one Render call. It is created per
// call and discarded when the call returns; only the written files persist.
type Session struct {
	// Requested iteration count.
	Count int

	// Output files, in write order.
	Images     []string
	LabelFiles []string

	Iterations []IterationStat
	TotalTime  time.Duration
}

// Render the per-iteration statistics as a table.
func (s *Session) WriteStats(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Iteration", "Model", "Background", "Render time"})
	for _, stat := range s.Iterations {
		background := stat.Background
		if background == "" {
			background = "-"
		}
		table.Append([]string{
			fmt.Sprintf("%d", stat.Index),
			stat.Model,
			background,
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", s.TotalTime.String()})

	table.Render()
}
