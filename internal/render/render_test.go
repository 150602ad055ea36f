package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coin-lab/paretoviz/internal/peel"
	"github.com/coin-lab/paretoviz/internal/pointset"
)

var (
	testCloud = pointset.Cloud{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}}
	testSeq   = peel.Sequence{{0, 1, 2, 3}, {4}}
)

func TestWriteHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layers.html")

	if err := WriteHTML(path, testCloud, testSeq, "test layers"); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read chart: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("chart file is empty")
	}
	if !strings.Contains(string(data), "test layers") {
		t.Error("chart missing title")
	}
}

func TestWriteHTML_RejectsOneDimensional(t *testing.T) {
	cloud := pointset.Cloud{{1}, {2}}
	err := WriteHTML(filepath.Join(t.TempDir(), "x.html"), cloud, peel.Sequence{{0, 1}}, "x")
	if err == nil {
		t.Fatal("expected dimension error, got nil")
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layers.png")

	if err := SavePNG(path, testCloud, testSeq, "test layers"); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat plot: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("plot file is empty")
	}
}
