// Package lexicon provides the fixed weighted skill vocabulary and the
// matcher that scans raw text for skill occurrences.
package lexicon

import (
	"strings"

	"github.com/jonathan/skillmatch/internal/types"
)

// Lexicon is an ordered set of weighted skill phrases. Order determines the
// index each skill is referred to by, and the order extraction results come
// back in.
type Lexicon struct {
	skills []types.Skill
}

// New builds a lexicon from an ordered skill list. The slice is copied so the
// lexicon stays immutable regardless of what the caller does afterwards.
func New(skills []types.Skill) *Lexicon {
	owned := make([]types.Skill, len(skills))
	copy(owned, skills)
	return &Lexicon{skills: owned}
}

// Size returns the number of skills, i.e. the dimension of skill vectors.
func (l *Lexicon) Size() int { return len(l.skills) }

// Skill returns the skill at the given index.
func (l *Lexicon) Skill(index int) (types.Skill, bool) {
	if index < 0 || index >= len(l.skills) {
		return types.Skill{}, false
	}
	return l.skills[index], true
}

// Skills returns a copy of the ordered skill list.
func (l *Lexicon) Skills() []types.Skill {
	out := make([]types.Skill, len(l.skills))
	copy(out, l.skills)
	return out
}

// IndexOf returns the lexicon index of a skill name (case-insensitive), or
// -1 when the name is not in the vocabulary.
func (l *Lexicon) IndexOf(name string) int {
	lower := strings.ToLower(strings.TrimSpace(name))
	for i, s := range l.skills {
		if s.Name == lower {
			return i
		}
	}
	return -1
}

// Extract scans text for every lexicon phrase and returns the skills found,
// in lexicon order, each at most once. Matching is case-insensitive substring
// containment: the scan detects presence, not occurrence counts. Empty or
// whitespace-only text yields an empty list, never an error.
//
// The scan is O(lexicon size * text length), which is fine for a fixed small
// vocabulary and short documents.
func (l *Lexicon) Extract(text string) []types.SkillRef {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var refs []types.SkillRef
	for i, s := range l.skills {
		if strings.Contains(lower, s.Name) {
			refs = append(refs, types.SkillRef{Index: i, Weight: s.Weight})
		}
	}
	return refs
}
