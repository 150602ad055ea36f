package pointset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FloatFormat is the output format for coordinate values. It keeps full
// float64 round-trip precision in the saved text files.
const FloatFormat = 'g'

// LoadMatrix reads a text file of delimiter-separated float rows. Rows may
// be jagged; LoadCloud adds the equal-dimension contract on top.
func LoadMatrix(path, delimiter string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pointset: open %s: %w", path, err)
	}
	defer f.Close()

	var rows [][]float64
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		row, err := parseFloatRow(splitRow(line, delimiter), lineNo)
		if err != nil {
			return nil, fmt.Errorf("pointset: %s: %w", path, err)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pointset: read %s: %w", path, err)
	}
	return rows, nil
}

// LoadCloud reads a point cloud from a text file. Every row must have the
// same dimension.
func LoadCloud(path, delimiter string) (Cloud, error) {
	rows, err := LoadMatrix(path, delimiter)
	if err != nil {
		return nil, err
	}
	c := Cloud(rows)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("pointset: %s: %w", path, err)
	}
	return c, nil
}

// SaveCloud writes a point cloud as delimiter-separated float rows, one
// point per line. An empty delimiter writes single spaces.
func SaveCloud(path string, c Cloud, delimiter string) error {
	if delimiter == "" {
		delimiter = " "
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pointset: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, p := range c {
		for j, v := range p {
			if j > 0 {
				w.WriteString(delimiter)
			}
			w.WriteString(strconv.FormatFloat(v, FloatFormat, -1, 64))
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("pointset: write %s: %w", path, err)
	}
	return nil
}

// LoadLayers reads a layer file: one line per layer, integer point indices
// in peeling order (outermost layer first).
func LoadLayers(path, delimiter string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pointset: open %s: %w", path, err)
	}
	defer f.Close()

	var layers [][]int
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		row, err := parseIntRow(splitRow(line, delimiter), lineNo)
		if err != nil {
			return nil, fmt.Errorf("pointset: %s: %w", path, err)
		}
		layers = append(layers, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pointset: read %s: %w", path, err)
	}
	return layers, nil
}

// SaveLayers writes layers one per line, indices separated by the delimiter
// (single space when empty), outermost layer first.
func SaveLayers(path string, layers [][]int, delimiter string) error {
	if delimiter == "" {
		delimiter = " "
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pointset: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, layer := range layers {
		for j, idx := range layer {
			if j > 0 {
				w.WriteString(delimiter)
			}
			w.WriteString(strconv.Itoa(idx))
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("pointset: write %s: %w", path, err)
	}
	return nil
}
