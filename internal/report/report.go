// Package report renders the end-of-run summary.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"newswire/domain"
)

// Render returns the run summary as an aligned text table followed by the
// totals line and the list of countries whose feeds could not be fetched.
func Render(s domain.RunSummary) string {
	countries := make([]string, 0, len(s.PerCountry))
	for c := range s.PerCountry {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	width := runewidth.StringWidth("Country")
	for _, c := range countries {
		if w := runewidth.StringWidth(c); w > width {
			width = w
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  Articles\n", pad("Country", width))
	for _, c := range countries {
		fmt.Fprintf(&b, "%s  %d\n", pad(c, width), s.PerCountry[c])
	}

	fmt.Fprintf(&b, "\nTotal: %d articles from %d countries in %s\n",
		s.Total, len(s.PerCountry), s.FinishedAt.Sub(s.StartedAt).Round(10*time.Millisecond))
	if len(s.Failed) > 0 {
		fmt.Fprintf(&b, "Failed to fetch: %s\n", strings.Join(s.Failed, ", "))
	}
	return b.String()
}

func pad(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
