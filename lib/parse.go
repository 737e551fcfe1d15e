package lib

import (
	"strings"

	"github.com/alecthomas/participle"

	"github.com/cem-okulmus/hwidth/errs"
)

// ParseEdge is one hyperedge in the HyperBench .hg exchange format:
// an identifier name (an optional leading integer token is matched
// and discarded) followed by a parenthesized, comma-separated vertex
// list, and an optional bracketed weight.
type ParseEdge struct {
	Name     string   `(Int)? @Ident`
	Vertices []string `"(" ( @(Ident|Int) ","? )* ")"`
	Weight   *float64 `("[" @Float "]")?`
}

// ParseGraph is the top-level grammar: a sequence of edges, optionally
// comma separated.
type ParseGraph struct {
	Edges []ParseEdge `( @@ ","?)*`
}

var hgParser = participle.MustBuild(&ParseGraph{}, participle.UseLookahead(1))

// ParseHypergraph parses the HyperBench .hg textual format (see
// http://hyperbench.dbai.tuwien.ac.at/downloads/manual.pdf, 1.3) into
// a Hypergraph[string]. Lines beginning with "%fd" are collected
// separately and returned as parsed FDs once the vertex set is known,
// using the same "%fd X -> Y" syntax throughout this package's tests.
// A vertex's name is its first-occurrence textual form; vertex
// identity is purely syntactic.
func ParseHypergraph(s string, opts ...Option[string]) (*Hypergraph[string], []FD[string], error) {
	var edgeLines, fdLines []string
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "%fd") {
			fdLines = append(fdLines, strings.TrimSpace(strings.TrimPrefix(trimmed, "%fd")))
			continue
		}
		if strings.HasPrefix(trimmed, "%") {
			continue // comment line
		}
		edgeLines = append(edgeLines, line)
	}

	pgraph := ParseGraph{}
	if err := hgParser.ParseString(strings.Join(edgeLines, "\n"), &pgraph); err != nil {
		return nil, nil, errs.NewConfigError("parse hypergraph: %v", err)
	}

	var vars []string
	seen := map[string]bool{}
	var edges [][]string
	var weights []float64
	for _, e := range pgraph.Edges {
		var verts []string
		for _, v := range e.Vertices {
			verts = append(verts, v)
			if !seen[v] {
				seen[v] = true
				vars = append(vars, v)
			}
		}
		edges = append(edges, verts)
		w := 1.0
		if e.Weight != nil {
			w = *e.Weight
		}
		weights = append(weights, w)
	}

	h, err := NewHypergraph[string](vars, edges, weights, opts...)
	if err != nil {
		return nil, nil, err
	}

	var fds []FD[string]
	for _, line := range fdLines {
		parts := strings.SplitN(line, "->", 2)
		if len(parts) != 2 {
			return nil, nil, errs.NewConfigError("malformed fd line: %q", line)
		}
		x := splitVertexList(parts[0])
		y := splitVertexList(parts[1])
		fd, err := NewFD[string](h, x, y)
		if err != nil {
			return nil, nil, err
		}
		fds = append(fds, fd)
	}

	return h, fds, nil
}

func splitVertexList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
