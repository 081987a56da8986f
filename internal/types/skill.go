// Package types provides type definitions for the structured data exchanged
// between the matcher's packages and its JSON artifacts.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Skill is a single weighted phrase in the lexicon. Weight reflects relative
// importance and is fixed for the lifetime of the lexicon.
type Skill struct {
	Name   string  `json:"name" validate:"required"`
	Weight float64 `json:"weight" validate:"gt=0,lte=1"`
}

// SkillRef records one extracted skill on a document: the skill's position in
// the lexicon and the weight it carried at extraction time.
type SkillRef struct {
	Index  int     `json:"index"`
	Weight float64 `json:"weight"`
}
