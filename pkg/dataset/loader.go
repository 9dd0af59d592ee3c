package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dd0wney/storygraph/pkg/logging"
)

// Nodes file schema: characters, house
// Edges file schema: source, target, weight

const (
	colCharacters = "characters"
	colHouse      = "house"
	colSource     = "source"
	colTarget     = "target"
	colWeight     = "weight"
)

// Loader reads the two tabular inputs of the pipeline.
type Loader struct {
	logger logging.Logger
}

// NewLoader creates a loader that logs through the given logger.
func NewLoader(logger logging.Logger) *Loader {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Loader{logger: logger.With(logging.Component("loader"))}
}

// Load reads both input files and returns the node and edge collections.
func (l *Loader) Load(nodesPath, edgesPath string) ([]Node, []Edge, error) {
	nodes, err := l.LoadNodes(nodesPath)
	if err != nil {
		return nil, nil, err
	}
	edges, err := l.LoadEdges(edgesPath)
	if err != nil {
		return nil, nil, err
	}
	return nodes, edges, nil
}

// LoadNodes reads the nodes file. Node labels must be unique; house
// values outside the canonical set are bucketed as "other".
func (l *Loader) LoadNodes(path string) ([]Node, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open nodes file: %w", err)
	}
	defer file.Close()

	nodes, err := l.ReadNodes(file)
	if err != nil {
		return nil, err
	}
	l.logger.Info("nodes loaded", logging.Path(path), logging.Count(len(nodes)))
	return nodes, nil
}

// ReadNodes parses the nodes table from a reader.
func (l *Loader) ReadNodes(r io.Reader) ([]Node, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	colIndex, err := readHeader(reader, "LoadNodes", colCharacters, colHouse)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, 0)
	seen := make(map[string]bool)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &DataError{Op: "LoadNodes", Entity: "row", Cause: fmt.Errorf("%w: %v", ErrMalformedInput, err)}
		}

		label := getField(record, colIndex, colCharacters)
		if label == "" {
			return nil, &DataError{Op: "LoadNodes", Entity: "node", Cause: fmt.Errorf("%w: empty character label", ErrMalformedInput)}
		}
		if seen[label] {
			return nil, DuplicateNodeError(label)
		}
		seen[label] = true

		nodes = append(nodes, Node{
			Label: label,
			House: NormalizeHouse(getField(record, colIndex, colHouse)),
		})
	}

	return nodes, nil
}

// LoadEdges reads the edges file. Weights must parse as positive integers.
func (l *Loader) LoadEdges(path string) ([]Edge, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open edges file: %w", err)
	}
	defer file.Close()

	edges, err := l.ReadEdges(file)
	if err != nil {
		return nil, err
	}
	l.logger.Info("edges loaded", logging.Path(path), logging.Count(len(edges)))
	return edges, nil
}

// ReadEdges parses the edges table from a reader.
func (l *Loader) ReadEdges(r io.Reader) ([]Edge, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	colIndex, err := readHeader(reader, "LoadEdges", colSource, colTarget, colWeight)
	if err != nil {
		return nil, err
	}

	edges := make([]Edge, 0)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &DataError{Op: "LoadEdges", Entity: "row", Cause: fmt.Errorf("%w: %v", ErrMalformedInput, err)}
		}

		source := getField(record, colIndex, colSource)
		target := getField(record, colIndex, colTarget)
		rawWeight := getField(record, colIndex, colWeight)

		if source == "" || target == "" {
			return nil, &DataError{Op: "LoadEdges", Entity: "edge", Cause: fmt.Errorf("%w: empty endpoint label", ErrMalformedInput)}
		}

		weight, err := strconv.Atoi(rawWeight)
		if err != nil || weight <= 0 {
			return nil, &DataError{
				Op:     "LoadEdges",
				Entity: "edge",
				Label:  source + "->" + target,
				Cause:  fmt.Errorf("%w: weight %q is not a positive integer", ErrMalformedInput, rawWeight),
			}
		}

		edges = append(edges, Edge{Source: source, Target: target, Weight: weight})
	}

	return edges, nil
}

// readHeader reads the CSV header and builds a column index map,
// failing if any required column is absent.
func readHeader(reader *csv.Reader, op string, required ...string) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &DataError{Op: op, Entity: "header", Cause: fmt.Errorf("%w: empty file", ErrMalformedInput)}
		}
		return nil, &DataError{Op: op, Entity: "header", Cause: fmt.Errorf("%w: %v", ErrMalformedInput, err)}
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}

	for _, col := range required {
		if _, ok := colIndex[col]; !ok {
			return nil, MissingColumnError(op, col)
		}
	}

	return colIndex, nil
}

func getField(record []string, colIndex map[string]int, field string) string {
	if idx, ok := colIndex[field]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}
