package diagram

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gorcc/internal/column"
)

// RenderEnvelope draws the interaction envelope for one axis as a character
// grid, with the moment capacity along the horizontal axis and the axial
// capacity along the vertical axis. A demand point is overlaid when either
// pu or mu is nonzero.
func RenderEnvelope(points []column.CapacityPoint, pu, mu float64, title string) string {
	const (
		width  = 56
		height = 22
	)

	mu = math.Abs(mu)

	maxMn := mu
	minPn, maxPn := pu, pu
	for _, p := range points {
		maxMn = math.Max(maxMn, p.PhiMn)
		minPn = math.Min(minPn, p.PhiPn)
		maxPn = math.Max(maxPn, p.PhiPn)
	}
	if maxMn == 0 {
		maxMn = 1
	}
	if maxPn == minPn {
		maxPn = minPn + 1
	}

	// Grid cell lookup; row 0 is the top (maximum axial).
	colOf := func(mn float64) int {
		c := int(math.Round(mn / maxMn * float64(width-1)))
		return min(max(c, 0), width-1)
	}
	rowOf := func(pn float64) int {
		r := int(math.Round((maxPn - pn) / (maxPn - minPn) * float64(height-1)))
		return min(max(r, 0), height-1)
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	// Zero-axial reference line.
	if minPn < 0 && maxPn > 0 {
		zero := rowOf(0)
		for x := 0; x < width; x++ {
			grid[zero][x] = '·'
		}
	}

	// Trace the envelope between consecutive canonical points.
	for i := 0; i < len(points)-1; i++ {
		p1, p2 := points[i], points[i+1]
		const steps = 40
		for s := 0; s <= steps; s++ {
			t := float64(s) / steps
			mn := p1.PhiMn + t*(p2.PhiMn-p1.PhiMn)
			pn := p1.PhiPn + t*(p2.PhiPn-p1.PhiPn)
			grid[rowOf(pn)][colOf(mn)] = '*'
		}
	}
	for _, p := range points {
		grid[rowOf(p.PhiPn)][colOf(p.PhiMn)] = 'o'
	}

	if pu != 0 || mu != 0 {
		grid[rowOf(pu)][colOf(mu)] = 'X'
	}

	var sb strings.Builder
	sb.WriteString("\n  " + title + "\n")
	sb.WriteString("  " + strings.Repeat("─", len([]rune(title))) + "\n\n")
	sb.WriteString(fmt.Sprintf("  %9.1f ┤\n", maxPn))
	for i, row := range grid {
		if i == height/2 {
			sb.WriteString("   φPn (kN) │" + string(row) + "\n")
		} else {
			sb.WriteString("            │" + string(row) + "\n")
		}
	}
	sb.WriteString(fmt.Sprintf("  %9.1f ┼%s\n", minPn, strings.Repeat("─", width)))
	sb.WriteString(fmt.Sprintf("            0%sφMn = %.1f kN-m\n", strings.Repeat(" ", width-22), maxMn))
	sb.WriteString("\n  o = canonical point   * = envelope")
	if pu != 0 || mu != 0 {
		sb.WriteString("   X = demand")
	}
	sb.WriteString("\n")

	return sb.String()
}

// RenderCapacityProfile plots the interpolated moment capacity φMn as a
// function of axial load over the diagram's axial range.
func RenderCapacityProfile(points []column.CapacityPoint, title string) string {
	sorted := make([]column.CapacityPoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PhiPn < sorted[j].PhiPn })

	// Sample the piecewise-linear capacity curve between the sorted points.
	const samples = 64
	lo, hi := sorted[0].PhiPn, sorted[len(sorted)-1].PhiPn
	series := make([]float64, 0, samples)
	for s := 0; s < samples; s++ {
		pn := lo + float64(s)/(samples-1)*(hi-lo)
		series = append(series, momentAt(sorted, pn))
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("%s: φMn (kN-m) for φPn = %.1f to %.1f kN", title, lo, hi)),
	)

	return "\n" + graph + "\n"
}

func momentAt(sorted []column.CapacityPoint, pn float64) float64 {
	for i := 0; i < len(sorted)-1; i++ {
		p1, p2 := sorted[i], sorted[i+1]
		if p1.PhiPn <= pn && pn <= p2.PhiPn {
			if p1.PhiPn == p2.PhiPn {
				return math.Min(p1.PhiMn, p2.PhiMn)
			}
			t := (pn - p1.PhiPn) / (p2.PhiPn - p1.PhiPn)
			return p1.PhiMn + t*(p2.PhiMn-p1.PhiMn)
		}
	}
	return 0
}
