// Package graphio reads and writes the JSON wire format for undirected
// graphs and coloring results.
//
// The graph format is a single object with "nodes" and "edges" arrays:
//
//	{
//	  "nodes": ["a", "b", "c"],
//	  "edges": [{"from": "a", "to": "b"}]
//	}
//
// Each logical edge appears once; orientation is irrelevant. Output is
// canonical (sorted nodes, sorted deduplicated edges), so encoding the same
// graph always yields the same bytes and [Fingerprint] is stable.
package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/tinct/pkg/cache"
	"github.com/matzehuels/tinct/pkg/color"
	"github.com/matzehuels/tinct/pkg/graph"
)

type wireGraph struct {
	Nodes []string   `json:"nodes"`
	Edges []wireEdge `json:"edges"`
}

type wireEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WriteGraph encodes g canonically as JSON and writes it to w.
func WriteGraph(g *graph.Undirected[string], w io.Writer) error {
	out := wireGraph{Nodes: g.Nodes(), Edges: []wireEdge{}}
	for _, e := range g.Edges() {
		if e.From < e.To { // one orientation per logical edge
			out.Edges = append(out.Edges, wireEdge{From: e.From, To: e.To})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	return nil
}

// ReadGraph decodes a JSON graph from r.
//
// Returns an error if the JSON is malformed, an edge references a node
// missing from "nodes", or an edge is a self-loop. Errors are wrapped with
// the offending edge; use errors.Is against the graph package sentinels.
func ReadGraph(r io.Reader) (*graph.Undirected[string], error) {
	var in wireGraph
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decode graph: %w", err)
	}

	g, err := graph.NewUndirected(in.Nodes, nil)
	if err != nil {
		return nil, err
	}
	for _, e := range in.Edges {
		if g, err = g.MaybeAddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("edge %s-%s: %w", e.From, e.To, err)
		}
	}
	return g, nil
}

// ExportGraph writes g to a JSON file at path.
func ExportGraph(g *graph.Undirected[string], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

// ImportGraph reads a graph from the JSON file at path.
func ImportGraph(path string) (*graph.Undirected[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	g, err := ReadGraph(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Fingerprint returns a stable hex digest of g's canonical encoding, used
// as a cache key component for coloring results.
func Fingerprint(g *graph.Undirected[string]) string {
	data, _ := json.Marshal(struct {
		Nodes []string             `json:"nodes"`
		Edges []graph.Edge[string] `json:"edges"`
	}{Nodes: g.Nodes(), Edges: g.Edges()})
	return cache.Hash(data)
}

type wireColoring struct {
	Colors    map[string]int `json:"colors"`
	NumColors int            `json:"num_colors"`
}

// WriteColoring encodes a coloring result as JSON.
func WriteColoring(c color.Coloring[string], w io.Writer) error {
	out := wireColoring{Colors: c, NumColors: color.NumColors(c)}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode coloring: %w", err)
	}
	return nil
}

// ReadColoring decodes a coloring result from r.
func ReadColoring(r io.Reader) (color.Coloring[string], error) {
	var in wireColoring
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decode coloring: %w", err)
	}
	return color.Coloring[string](in.Colors), nil
}

// ExportColoring writes a coloring to a JSON file at path.
func ExportColoring(c color.Coloring[string], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteColoring(c, f)
}

// ImportColoring reads a coloring from the JSON file at path.
func ImportColoring(path string) (color.Coloring[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	c, err := ReadColoring(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
