package analyzer

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/clauseguard/clauseguard/internal/catalog"
)

// foldText lowercases text with full Unicode case folding so trigger and
// keyword matching is case-insensitive across scripts.
func foldText(text string) string {
	return cases.Fold().String(text)
}

// containsFolded reports whether folded contains the case-folded phrase.
// The haystack must already be folded; only the needle is folded here.
func containsFolded(folded, phrase string) bool {
	return strings.Contains(folded, cases.Fold().String(phrase))
}

// detectFrameworks scans folded contract text for each framework's trigger
// phrases. When nothing triggers it returns the registry's default set, so
// downstream stages never see an empty framework list. The result is sorted
// for deterministic iteration.
func detectFrameworks(folded string, registry *catalog.Registry) []string {
	var detected []string
	for _, fw := range registry.All() {
		for _, trigger := range fw.Triggers {
			if containsFolded(folded, trigger) {
				detected = append(detected, fw.ID)
				break
			}
		}
	}

	if len(detected) == 0 {
		return registry.DefaultDetectionSet()
	}

	sort.Strings(detected)
	return detected
}
