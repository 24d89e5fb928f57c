package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlalg/pagerank"
)

// graphFile is the YAML document accepted by "pagerank rank":
//
//	pages: [A, B, C]
//	links:
//	  - {from: A, to: B}
//	  - {from: B, to: C}
//	rho: 0.15          # optional
//	dangling: uniform  # optional
type graphFile struct {
	Pages    []string        `yaml:"pages"`
	Links    []pagerank.Link `yaml:"links"`
	Rho      *float64        `yaml:"rho,omitempty"`
	Dangling string          `yaml:"dangling,omitempty"`
}

var errEmptyDocument = errors.New("graph file is empty")

// decodeGraph parses a graph document. Unknown keys are rejected so that a
// misspelled "links" does not silently produce a graph without edges.
func decodeGraph(r io.Reader) (*graphFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var g graphFile
	if err := dec.Decode(&g); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyDocument
		}

		return nil, fmt.Errorf("decode graph: %w", err)
	}

	return &g, nil
}

// loadGraph reads and decodes the graph file at path.
func loadGraph(path string) (*graphFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph: %w", err)
	}
	g, err := decodeGraph(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// linkMatrix converts the labelled links into a pagerank.LinkMatrix.
func (g *graphFile) linkMatrix() (pagerank.LinkMatrix, error) {
	return pagerank.BuildLinkMatrix(g.Pages, g.Links)
}
