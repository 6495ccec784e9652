package present

import (
	"fmt"
	"io"
	"strings"

	"algoway/pkg/route"
)

// Render writes the result list as plain text
func Render(w io.Writer, routes []route.Route) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", Header(len(routes)))

	for i, r := range routes {
		s := Summarize(r, i+1)

		fmt.Fprintf(&b, "\n%s  %s\n", s.RankLabel, strings.Join(s.Modes, " "))
		fmt.Fprintf(&b, "  ⏱ %s | 💰 %s | ⭐ %s\n", s.Duration, s.Cost, s.Comfort)
		if s.Transfers > 0 {
			fmt.Fprintf(&b, "  пересадок: %d\n", s.Transfers)
		}
		fmt.Fprintf(&b, "  📍 %s\n", s.Path)

		rows := Breakdown(r)
		if rows == nil {
			continue
		}

		b.WriteString("  Этапы маршрута:\n")
		for _, row := range rows {
			fmt.Fprintf(&b, "    %s %s\n", row.Glyph, row.Leg)
			fmt.Fprintf(&b, "       %s • %s • %s\n", row.Duration, row.Cost, row.Comfort)
			if row.Divider {
				b.WriteString("    ────────\n")
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
