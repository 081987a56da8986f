package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/skillmatch/internal/types"
)

// lexiconFile is the on-disk shape of a custom lexicon.
type lexiconFile struct {
	Skills []types.Skill `json:"skills" validate:"min=1,dive"`
}

// Load reads a custom lexicon from a JSON file. Skill names are lowercased
// and deduplicated on first occurrence; weights must sit in (0, 1].
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}

	var file lexiconFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon JSON: %w", err)
	}

	if err := validator.New().Struct(&file); err != nil {
		return nil, fmt.Errorf("invalid lexicon %s: %w", path, err)
	}

	seen := make(map[string]bool, len(file.Skills))
	skills := make([]types.Skill, 0, len(file.Skills))
	for _, s := range file.Skills {
		name := strings.ToLower(strings.TrimSpace(s.Name))
		if name == "" {
			return nil, fmt.Errorf("invalid lexicon %s: blank skill name", path)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		skills = append(skills, types.Skill{Name: name, Weight: s.Weight})
	}

	return New(skills), nil
}
