package cmd

import (
	"bytes"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the builtin scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)
	logger.Noticef("available scenes\n%s", scenesTable())
	return nil
}

// List the render backends.
func ListBackends(ctx *cli.Context) error {
	setupLogging(ctx)
	logger.Noticef("available backends\n%s", backendsTable())
	return nil
}

func scenesTable() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Description"})
	for _, info := range scene.ListScenes() {
		table.Append([]string{info.ID, info.Name, info.Description})
	}
	table.Render()
	return buf.String()
}

func backendsTable() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Backend", "Description"})
	for _, b := range renderer.Backends() {
		table.Append([]string{b.Name(), b.Description()})
	}
	table.Render()
	return buf.String()
}
