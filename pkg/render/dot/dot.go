// Package dot renders colored graphs as Graphviz node-link diagrams.
//
// [ToDOT] converts a graph and an optional coloring into DOT source, and
// [RenderSVG] / [RenderPNG] rasterize that source with Graphviz.
//
//	src := dot.ToDOT(g, dot.PaletteFill(coloring), dot.Options{})
//	svg, err := dot.RenderSVG(src)
package dot

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tinct/pkg/color"
	"github.com/matzehuels/tinct/pkg/graph"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the assigned color index in node labels.
	// When false, only the node ID is shown.
	Detailed bool
}

// palette holds fill colors for color indices 0..11. Indices beyond the
// palette wrap around, which keeps large colorings renderable even if two
// color classes then share a fill.
var palette = []string{
	"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3",
	"#a6d854", "#ffd92f", "#e5c494", "#b3b3b3",
	"#1b9e77", "#d95f02", "#7570b3", "#e7298a",
}

// Fill maps a node to a Graphviz fill color and a color index.
// The second return reports whether the node has an assigned color;
// uncolored nodes are drawn with a white fill.
type Fill[N cmp.Ordered] func(n N) (string, int, bool)

// NoFill leaves every node uncolored.
func NoFill[N cmp.Ordered]() Fill[N] {
	return func(N) (string, int, bool) { return "", 0, false }
}

// PaletteFill fills each node according to its color index in c,
// cycling through a fixed qualitative palette.
func PaletteFill[N cmp.Ordered](c color.Coloring[N]) Fill[N] {
	return func(n N) (string, int, bool) {
		idx, ok := c[n]
		if !ok {
			return "", 0, false
		}
		return palette[idx%len(palette)], idx, true
	}
}

// ToDOT converts an undirected graph to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
// Nodes and edges are emitted in canonical order, so equal graphs always
// produce identical DOT source.
func ToDOT[N cmp.Ordered](g *graph.Undirected[N], fill Fill[N], opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		id := fmt.Sprint(n)
		attrs := fmtAttrs(id, fill, n, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		// Each logical edge appears under both orientations; keep one.
		if e.To < e.From {
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q;\n", fmt.Sprint(e.From), fmt.Sprint(e.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs[N cmp.Ordered](id string, fill Fill[N], n N, detailed bool) []string {
	hex, idx, colored := fill(n)

	label := id
	if detailed && colored {
		label = fmt.Sprintf("%s\ncolor %d", id, idx)
	}

	attrs := []string{fmt.Sprintf("label=%q", label)}
	if colored {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", hex))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG, normalizeViewBox)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG, nil)
}

func render(dot string, format graphviz.Format, post func([]byte) []byte) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	out := buf.Bytes()
	if post != nil {
		out = post(out)
	}
	return out, nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root <svg> tag so the view box starts at the
// origin with explicit pixel dimensions, which keeps downstream embedding
// predictable across Graphviz versions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
