package cmd

import (
	"os"

	"github.com/johnsutor/leopardi/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the supported label kinds and the files they produce.
func ListLabels(ctx *cli.Context) error {
	setupLogging(ctx)

	descriptions := map[renderer.Label][2]string{
		renderer.LabelYOLO:   {"render_N.txt", "normalized bounding boxes, one object per line"},
		renderer.LabelCOCO:   {"render_N.json", "COCO document with pixel-space boxes"},
		renderer.LabelPascal: {"render_N.xml", "Pascal VOC annotation"},
		renderer.LabelDepth:  {"render_N_depth.png", "16-bit grayscale depth pass"},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Label", "Output file", "Description"})
	for _, label := range renderer.Labels() {
		desc := descriptions[label]
		table.Append([]string{label.String(), desc[0], desc[1]})
	}
	table.Render()

	return nil
}
