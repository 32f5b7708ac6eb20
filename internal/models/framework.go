// Package models contains data structures for Clauseguard compliance analysis.
package models

import "fmt"

// Framework is a regulatory standard with weighted, keyword-tagged
// requirements. Frameworks are defined at build time and never mutated.
type Framework struct {
	ID           string        `json:"id" yaml:"id"`
	Name         string        `json:"name" yaml:"name"`
	Region       string        `json:"region" yaml:"region"`
	Triggers     []string      `json:"triggers" yaml:"triggers"`
	Requirements []Requirement `json:"requirements" yaml:"requirements"`
}

// Requirement is a single compliance obligation within a framework.
type Requirement struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Weight   int      `json:"weight" yaml:"weight"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// IsValid checks that a framework definition is internally consistent.
func (f *Framework) IsValid() error {
	if f.ID == "" {
		return fmt.Errorf("framework missing required field: id")
	}
	if f.Name == "" {
		return fmt.Errorf("framework %s missing required field: name", f.ID)
	}
	if len(f.Requirements) == 0 {
		return fmt.Errorf("framework %s has no requirements", f.ID)
	}
	for _, req := range f.Requirements {
		if err := req.IsValid(); err != nil {
			return fmt.Errorf("framework %s: %w", f.ID, err)
		}
	}
	return nil
}

// IsValid checks that a requirement carries a usable weight and keyword set.
func (r *Requirement) IsValid() error {
	if r.ID == "" {
		return fmt.Errorf("requirement missing required field: id")
	}
	if r.Name == "" {
		return fmt.Errorf("requirement %s missing required field: name", r.ID)
	}
	if r.Weight < 1 || r.Weight > 10 {
		return fmt.Errorf("requirement %s has weight %d outside 1-10", r.ID, r.Weight)
	}
	if len(r.Keywords) == 0 {
		return fmt.Errorf("requirement %s has no keywords", r.ID)
	}
	return nil
}
