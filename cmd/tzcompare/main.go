// Command tzcompare prints the live time in a set of cities, how far apart
// they are, and when their working hours overlap.
//
//	tzcompare London:Alice Tokyo "New York:Bob"
//	tzcompare --at 2025-03-15T12:00:00Z london new-york
//	tzcompare --list japan
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/JamesDimonaco/timezone-map/internal/domain"
	"github.com/JamesDimonaco/timezone-map/internal/registry"
	"github.com/JamesDimonaco/timezone-map/internal/service"
	"github.com/JamesDimonaco/timezone-map/internal/slug"
)

func main() {
	var (
		at      string
		list    bool
		noColor bool
	)
	pflag.StringVarP(&at, "at", "a", "", "evaluate at this RFC 3339 instant instead of now")
	pflag.BoolVarP(&list, "list", "l", false, "list cities matching the arguments instead of comparing")
	pflag.BoolVar(&noColor, "no-color", false, "disable colored output")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: tzcompare [flags] City[:Label] City[:Label]...\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if noColor {
		color.NoColor = true
	}

	instant := time.Now().UTC()
	if at != "" {
		t, err := time.Parse(time.RFC3339, at)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tzcompare: --at: %v\n", err)
			os.Exit(2)
		}
		instant = t.UTC()
	}

	reg, err := registry.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tzcompare: %v\n", err)
		os.Exit(1)
	}
	codec, err := slug.NewCodec(reg.Cities())
	if err != nil {
		fmt.Fprintf(os.Stderr, "tzcompare: %v\n", err)
		os.Exit(1)
	}
	times := service.NewTimeService(reg, codec)

	if list {
		cities, _ := times.ListCities(strings.Join(pflag.Args(), " "), domain.NewPaginationParams(nil, intPtr(200)))
		renderList(os.Stdout, cities)
		return
	}

	if pflag.NArg() == 0 {
		pflag.Usage()
		os.Exit(2)
	}
	view := times.Compare(strings.Join(pflag.Args(), ","), instant)
	if len(view.Slots) == 0 {
		fmt.Fprintln(os.Stderr, "tzcompare: no known cities given; try --list")
		os.Exit(1)
	}
	render(os.Stdout, view, instant)
}

func intPtr(n int) *int { return &n }

func renderList(w io.Writer, cities []service.CityLink) {
	for _, c := range cities {
		fmt.Fprintf(w, "%-24s %-20s %s\n", c.Name, c.Country, c.Slug)
	}
}
