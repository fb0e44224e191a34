// Package sample writes demonstration workbooks for trying fidsort out.
package sample

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/vvka-141/fidsort/internal/workbook"
)

var (
	names = []string{"Alice Smith", "Bob Jones", "Charlie Brown", "David Wilson", "Eva Green"}
	// Repeated identifiers make several files land in the same folder.
	fids = []int{1001, 1002, 1003, 1001, 1002}

	header = []string{"FID", "Name", "Date", "Notes"}
)

// DefaultCount is how many workbooks Generate writes when asked for none.
const DefaultCount = 10

// File describes one generated workbook.
type File struct {
	Path string
	FID  int
	Name string
}

// Generator writes sample workbooks with a reproducible random source.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator creates a generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: time.Now,
	}
}

// Generate writes count workbooks named random_file_N.xlsx into dir,
// creating dir if needed. Existing files are never overwritten.
func (g *Generator) Generate(dir string, count int) ([]File, error) {
	if count <= 0 {
		count = DefaultCount
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	files := make([]File, 0, count)
	for i := 0; i < count; i++ {
		f := File{
			FID:  fids[g.rng.IntN(len(fids))],
			Name: names[g.rng.IntN(len(names))],
		}

		path, err := g.freeName(dir)
		if err != nil {
			return files, err
		}
		f.Path = path

		var buf bytes.Buffer
		row := []interface{}{f.FID, f.Name, g.now().UTC().Format(time.RFC3339), "Sample Data"}
		if err := workbook.WriteXLSX(&buf, "Sheet1", header, [][]interface{}{row}); err != nil {
			return files, fmt.Errorf("failed to build %s: %w", filepath.Base(path), err)
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return files, fmt.Errorf("failed to write %s: %w", path, err)
		}
		files = append(files, f)
	}
	return files, nil
}

func (g *Generator) freeName(dir string) (string, error) {
	for attempt := 0; attempt < 100; attempt++ {
		p := filepath.Join(dir, fmt.Sprintf("random_file_%d.xlsx", g.rng.IntN(10000)))
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return p, nil
		}
	}
	return "", fmt.Errorf("no free file name in %s", dir)
}
