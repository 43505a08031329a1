package main

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/san-kum/tzclock/internal/app"
	"github.com/san-kum/tzclock/internal/clockset"
	"github.com/san-kum/tzclock/internal/export"
	"github.com/san-kum/tzclock/internal/viz"
	"github.com/san-kum/tzclock/internal/zone"
)

// noSlots satisfies clockset.SlotRenderer for commands without a screen.
type noSlots struct{}

func (noSlots) CreateSlot(id, name string) {}
func (noSlots) DestroySlot(id string)      {}

// clocks returns the set for commands that change it.
func clocks(e *env) *clockset.Manager {
	return clockset.New(e.store, noSlots{}, e.log)
}

// savedClocks reads the set without persisting the local fallback.
func savedClocks(e *env) []string {
	return clockset.Saved(e.store, e.log)
}

func newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func formatOffset(t time.Time) string {
	_, off := t.Zone()
	sign := '+'
	if off < 0 {
		sign = '-'
		off = -off
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, off/3600, (off%3600)/60)
}

func listZones(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	saved := savedClocks(e)
	res := zone.NewResolver(e.log)
	now := time.Now()

	table := newTable("id", "name", "offset", "added")
	for _, entry := range zone.Catalog() {
		loc, err := res.Location(entry.ID)
		offset := "?"
		if err == nil {
			offset = formatOffset(now.In(loc))
		}
		added := ""
		if slices.Contains(saved, entry.ID) {
			added = "*"
		}
		name := entry.Name
		if entry.ID == zone.Local {
			name += " (Current)"
		}
		table.Append([]string{entry.ID, name, offset, added})
	}
	table.Render()
	return nil
}

func listClocks(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	res := zone.NewResolver(e.log)
	now := time.Now()

	table := newTable("#", "id", "name", "time")
	for i, id := range savedClocks(e) {
		tod := res.ResolveOrLocal(id, now, e.cfg.Hour12)
		table.Append([]string{fmt.Sprint(i + 1), id, zone.DisplayName(id), zone.Digital(tod)})
	}
	table.Render()
	return nil
}

func addClocks(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	set := clocks(e)
	var result *multierror.Error
	for _, id := range args {
		if !zone.Supported(id) {
			result = multierror.Append(result, fmt.Errorf("%w: %s (see tzclock zones)", zone.ErrUnsupportedZone, id))
			continue
		}
		if set.Add(id) {
			fmt.Printf("added %s\n", zone.DisplayName(id))
		} else {
			fmt.Printf("%s already shown\n", zone.DisplayName(id))
		}
	}
	return result.ErrorOrNil()
}

func removeClocks(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	set := clocks(e)
	var result *multierror.Error
	for _, id := range args {
		if !set.Remove(id) {
			result = multierror.Append(result, fmt.Errorf("no clock for %s", id))
			continue
		}
		fmt.Printf("removed %s\n", zone.DisplayName(id))
	}
	return result.ErrorOrNil()
}

func printNow(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	ids := args
	if len(ids) == 0 {
		ids = savedClocks(e)
	}

	nameStyle := lipgloss.NewStyle()
	timeStyle := lipgloss.NewStyle()
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		t := resolveTheme(cmd, e)
		nameStyle = nameStyle.Foreground(t.Secondary).Bold(true)
		timeStyle = timeStyle.Foreground(t.Text)
	}

	width := 0
	for _, id := range ids {
		width = max(width, len(zone.DisplayName(id)))
	}

	res := zone.NewResolver(e.log)
	now := time.Now()
	for _, id := range ids {
		tod, err := res.Resolve(id, now, e.cfg.Hour12)
		if err != nil {
			return err
		}
		name := fmt.Sprintf("%-*s", width, zone.DisplayName(id))
		fmt.Println(nameStyle.Render(name) + "  " + timeStyle.Render(zone.Digital(tod)))
	}
	return nil
}

func selectTheme(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	if len(args) == 0 {
		current := resolveTheme(cmd, e).Name
		for _, name := range viz.ThemeNames() {
			marker := " "
			if name == current {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, name)
		}
		return nil
	}

	name := args[0]
	if _, ok := viz.GetTheme(name); !ok {
		return fmt.Errorf("unknown theme: %s (available: %s)", name, strings.Join(viz.ThemeNames(), ", "))
	}
	if err := e.store.Set(app.ThemeKey, name); err != nil {
		return err
	}
	fmt.Printf("theme set to %s\n", name)
	return nil
}

func plotOffsets(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	if days < 2 {
		return fmt.Errorf("--days must be at least 2")
	}

	id := args[0]
	res := zone.NewResolver(e.log)
	from := time.Now().Truncate(24 * time.Hour)
	data, err := res.OffsetHours(id, from, 24*time.Hour, days)
	if err != nil {
		return err
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("%s: UTC offset (hours) over %d days", zone.DisplayName(id), days)),
	)
	fmt.Println(graph)
	fmt.Println()

	changes := 0
	for i := 1; i < len(data); i++ {
		if data[i] == data[i-1] {
			continue
		}
		changes++
		day := from.Add(time.Duration(i) * 24 * time.Hour)
		fmt.Printf("%s  %+.1fh -> %+.1fh\n", day.Format("2006-01-02"), data[i-1], data[i])
	}
	if changes == 0 {
		fmt.Println("no offset changes")
	}
	return nil
}

func snapshot(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	res := zone.NewResolver(e.log)
	now := time.Now()
	var faces []export.Face
	var angles []zone.Angles
	for _, id := range savedClocks(e) {
		a := zone.HandAngles(res.ResolveOrLocal(id, now, false))
		faces = append(faces, export.Face{Name: zone.DisplayName(id), Angles: a})
		angles = append(angles, a)
	}

	colors := export.ThemeColors(resolveTheme(cmd, e))
	svg := export.FacesSVG(faces, colors)
	if braille {
		svg = export.CanvasToSVG(viz.DrawFaces(angles), 4, colors)
	}
	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %d clocks to %s\n", len(faces), outFile)
	return nil
}
