package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/JamesDimonaco/timezone-map/internal/service"
	"github.com/JamesDimonaco/timezone-map/internal/tzmath"
)

// render writes the clock table, pairwise differences and the overlap.
func render(w io.Writer, view service.CompareView, instant time.Time) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range view.Slots {
		c := hexColor(s.Color)
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			c.Sprint(slotName(s)),
			s.LocalTime.Format("15:04 Mon 02 Jan"),
			s.LiveOffset,
		)
	}
	_ = tw.Flush()

	if len(view.Slots) > 1 {
		fmt.Fprintln(w)
		for i := 0; i < len(view.Slots); i++ {
			for j := i + 1; j < len(view.Slots); j++ {
				a, b := view.Slots[i].City, view.Slots[j].City
				diff := tzmath.LiveHourDifference(a.Timezone, b.Timezone, instant)
				fmt.Fprintln(w, tzmath.DescribeDifference(a.Name, b.Name, diff))
			}
		}
	}

	ov := view.Overlap
	if !ov.Applicable {
		return
	}
	fmt.Fprintln(w)
	if ov.Count == 0 {
		fmt.Fprintln(w, "No shared working hours (09:00-17:00 local).")
		return
	}
	fmt.Fprintf(w, "Shared working hours: %d of 24\n", ov.Count)

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, sw := range ov.Slots {
		fmt.Fprintf(tw, "  %s\t%s-%s\n", hexColor(view.Slots[i].Color).Sprint(slotName(view.Slots[i])), clock(sw.LocalStart), clock(sw.LocalEnd))
	}
	_ = tw.Flush()

	best := make([]string, len(ov.BestHours))
	for i, m := range ov.BestHours {
		best[i] = clock(m.UTCHour)
	}
	fmt.Fprintf(w, "Best meeting times (UTC): %s\n", strings.Join(best, ", "))
}

func slotName(s service.SlotView) string {
	if s.Label == "" {
		return s.City.Name
	}
	return s.City.Name + " (" + s.Label + ")"
}

func clock(h int) string {
	return fmt.Sprintf("%02d:00", h)
}

// hexColor turns a "#rrggbb" registry color into a 24-bit terminal color.
// Anything unparseable prints uncolored.
func hexColor(hex string) *color.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return color.New(color.Reset)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.New(color.Reset)
	}
	return color.RGB(int(v>>16&0xff), int(v>>8&0xff), int(v&0xff))
}
