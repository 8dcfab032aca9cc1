package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/go-drift/daydial/pkg/dial"
)

func init() {
	RegisterCommand(&Command{
		Name:  "profiles",
		Short: "List screen profile presets",
		Long: `List the built-in screen profiles.

A profile fixes the screen size and shape, how many background tiles
scroll and how far they travel in a day, and where the date label sits.
Select one with "profile:" in daydial.yaml or --profile.`,
		Usage: "daydial profiles",
		Run:   runProfiles,
	})
}

func runProfiles(env *Env, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}
	tw := tabwriter.NewWriter(env.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSHAPE\tSCREEN\tTILES\tSPAN\tANCHOR\tLABEL")
	for _, p := range dial.Presets() {
		label := p.RevealGeometry().Onscreen
		def := ""
		if p.Name == dial.DefaultProfileName {
			def = " (default)"
		}
		fmt.Fprintf(tw, "%s%s\t%s\t%dx%d\t%d x %d\t%d\t%s\t%d,%d %dx%d\n",
			p.Name, def, p.Shape, p.Width, p.Height, p.TileCount, p.TileWidth,
			p.CycleSpan, p.Anchor, label.Left, label.Top, label.Width(), label.Height())
	}
	return tw.Flush()
}
