package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/matchroom/auction/internal/models"
)

// Catalog is the immutable candidate list loaded once at process start.
// Rooms never share it directly; each room seeds its pool from a deep copy.
type Catalog struct {
	candidates []models.Candidate
}

// Load reads the catalog from a JSON file containing an ordered array of
// {name, position, basePrice} records.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes catalog JSON and validates every entry.
func Parse(data []byte) (*Catalog, error) {
	var candidates []models.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	for i, c := range candidates {
		if c.Name == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}
		if !c.Position.Valid() {
			return nil, fmt.Errorf("catalog entry %q has unknown position %q", c.Name, c.Position)
		}
		if c.BasePrice < 0 {
			return nil, fmt.Errorf("catalog entry %q has negative base price %d", c.Name, c.BasePrice)
		}
	}

	log.Info().Int("candidates", len(candidates)).Msg("catalog loaded")
	return &Catalog{candidates: candidates}, nil
}

// Size returns the number of candidates in the catalog.
func (c *Catalog) Size() int {
	return len(c.candidates)
}

// Candidates returns a deep copy of the candidate list, suitable for seeding
// a room's pool without aliasing the shared catalog.
func (c *Catalog) Candidates() []models.Candidate {
	out := make([]models.Candidate, len(c.candidates))
	copy(out, c.candidates)
	return out
}
