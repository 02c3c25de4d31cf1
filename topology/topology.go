// Package topology loads router graphs from YAML documents.
//
// Document shape:
//
//	strict: false            # optional; reject links to unknown routers
//	routers:
//	  - id: 1
//	    name: r1             # optional
//	links:
//	  - {from: 1, to: 2, cost: 4}
//
// Documents are validated before a graph is built: at least one router,
// every link with from/to present, and no duplicate router ids.
package topology

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/core"
)

// ErrInvalidTopology wraps every parse or validation failure.
var ErrInvalidTopology = errors.New("topology: invalid document")

//go:embed default.yaml
var defaultDoc []byte

// Router is one node entry.
type Router struct {
	ID   *int64 `yaml:"id" validate:"required"`
	Name string `yaml:"name" validate:"omitempty,max=64"`
}

// Link is one directed edge entry.
type Link struct {
	From *int64 `yaml:"from" validate:"required"`
	To   *int64 `yaml:"to" validate:"required"`
	Cost int64  `yaml:"cost"`
}

// Topology is a parsed, validated document.
type Topology struct {
	Strict  bool     `yaml:"strict"`
	Routers []Router `yaml:"routers" validate:"required,min=1,dive"`
	Links   []Link   `yaml:"links" validate:"dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the built-in four-router reference topology.
func Default() *Topology {
	t, err := Parse(defaultDoc)
	if err != nil {
		panic(fmt.Sprintf("topology: embedded default is invalid: %v", err))
	}

	return t
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("topology: read %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Parse decodes and validates a YAML document. Unknown fields are rejected.
func Parse(data []byte) (*Topology, error) {
	var t Topology
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidTopology)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidTopology, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return &t, nil
}

// Validate checks struct constraints and duplicate router ids.
func (t *Topology) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTopology, err)
	}
	seen := make(map[int64]struct{}, len(t.Routers))
	for _, r := range t.Routers {
		if _, dup := seen[*r.ID]; dup {
			return fmt.Errorf("%w: duplicate router id %d", ErrInvalidTopology, *r.ID)
		}
		seen[*r.ID] = struct{}{}
	}

	return nil
}

// Build creates a graph holding every router and link of t, in document order.
// Extra options are applied after the document's own strict flag.
func (t *Topology) Build(opts ...core.GraphOption) (*core.Graph, error) {
	gopts := []core.GraphOption{core.WithCapacity(len(t.Routers))}
	if t.Strict {
		gopts = append(gopts, core.WithStrictEdges())
	}
	g := core.NewGraph(append(gopts, opts...)...)

	for _, r := range t.Routers {
		if err := g.AddNode(core.NodeID(*r.ID), core.WithName(r.Name)); err != nil {
			return nil, fmt.Errorf("topology: router %d: %w", *r.ID, err)
		}
	}
	for i, l := range t.Links {
		if err := g.AddEdge(core.NodeID(*l.From), core.NodeID(*l.To), l.Cost); err != nil {
			return nil, fmt.Errorf("topology: link #%d %d→%d: %w", i, *l.From, *l.To, err)
		}
	}

	return g, nil
}
