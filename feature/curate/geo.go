package curate

import (
	"encoding/csv"
	"os"
	"strings"

	"shopzada-etl/core/table"

	"go.uber.org/zap"
)

// geoWrongHeaders and geoCorrectHeaders are the accepted header spellings
// for the two columns of the correction file.
var (
	geoWrongHeaders   = []string{"wrong", "source", "bad"}
	geoCorrectHeaders = []string{"correct", "target", "fix"}
)

// GeoMap corrects free-text geographic values: exact match first,
// case-insensitive match second, unmapped values pass through unchanged.
// It is loaded once at run start and read-only thereafter.
type GeoMap struct {
	exact  map[string]string
	folded map[string]string
}

// NewGeoMap returns an empty map (the identity correction).
func NewGeoMap() *GeoMap {
	return &GeoMap{exact: map[string]string{}, folded: map[string]string{}}
}

// LoadGeoMap reads the correction CSV. A missing file is not an error: the
// identity mapping is returned. A malformed file is logged and likewise
// degrades to identity.
func LoadGeoMap(path string, log *zap.Logger) *GeoMap {
	g := NewGeoMap()

	f, err := os.Open(path)
	if err != nil {
		log.Info("no geo correction file, using identity mapping", zap.String("path", path))
		return g
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil || len(records) < 1 {
		log.Warn("failed to load geo correction file", zap.String("path", path), zap.Error(err))
		return g
	}

	wrongIdx, correctIdx := headerIndex(records[0], geoWrongHeaders), headerIndex(records[0], geoCorrectHeaders)
	if wrongIdx < 0 || correctIdx < 0 {
		log.Warn("geo correction file has no wrong/correct columns", zap.String("path", path))
		return g
	}

	for _, rec := range records[1:] {
		if wrongIdx >= len(rec) || correctIdx >= len(rec) {
			continue
		}
		wrong := strings.TrimSpace(rec[wrongIdx])
		correct := strings.TrimSpace(rec[correctIdx])
		if wrong == "" || correct == "" {
			continue
		}
		g.exact[wrong] = correct
		folded := strings.ToLower(wrong)
		if _, exists := g.folded[folded]; !exists {
			g.folded[folded] = correct
		}
	}
	log.Info("loaded geo corrections", zap.Int("entries", len(g.exact)))
	return g
}

// Len returns the number of exact correction entries.
func (g *GeoMap) Len() int {
	return len(g.exact)
}

// Apply corrects one cell. Null stays null; unmapped values pass through
// (trimmed) unchanged.
func (g *GeoMap) Apply(c table.Cell) table.Cell {
	if c.IsNull() {
		return table.Null()
	}
	s := c.TrimmedString()
	if v, ok := g.exact[s]; ok {
		return table.Scalar(v)
	}
	if v, ok := g.folded[strings.ToLower(s)]; ok {
		return table.Scalar(v)
	}
	return table.Scalar(s)
}

func headerIndex(header []string, names []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, name := range names {
			if h == name {
				return i
			}
		}
	}
	return -1
}
