package catalog

import "github.com/clauseguard/clauseguard/internal/models"

// FineTier is one band of a framework's fine schedule. A tier applies when
// the framework score is at least MinScore.
type FineTier struct {
	MinScore   int
	MaxFine    string
	Likelihood string
}

// FineSchedule is a framework's statutory penalty schedule, ordered from
// highest MinScore to lowest. The last tier must have MinScore 0 so every
// score maps to a tier.
type FineSchedule struct {
	Tiers []FineTier
}

// ExposureFor projects the fine exposure for a framework score.
func (s *FineSchedule) ExposureFor(score int) models.Exposure {
	for _, tier := range s.Tiers {
		if score >= tier.MinScore {
			return models.Exposure{MaxFine: tier.MaxFine, Likelihood: tier.Likelihood}
		}
	}
	// Unreachable when the schedule terminates at MinScore 0.
	last := s.Tiers[len(s.Tiers)-1]
	return models.Exposure{MaxFine: last.MaxFine, Likelihood: last.Likelihood}
}

// FineSchedules returns the statutory fine schedules by framework id.
// Not every framework carries one: SOC 2 is a contractual attestation
// regime with no statutory penalty, so it is deliberately absent.
func FineSchedules() map[string]*FineSchedule {
	return map[string]*FineSchedule{
		FrameworkGDPR: {Tiers: []FineTier{
			{MinScore: 80, MaxFine: "€10M or 2% of global annual turnover", Likelihood: "low"},
			{MinScore: 50, MaxFine: "€20M or 4% of global annual turnover", Likelihood: "medium"},
			{MinScore: 0, MaxFine: "€20M or 4% of global annual turnover", Likelihood: "high"},
		}},
		FrameworkCCPA: {Tiers: []FineTier{
			{MinScore: 80, MaxFine: "$2,500 per violation", Likelihood: "low"},
			{MinScore: 50, MaxFine: "$7,500 per intentional violation", Likelihood: "medium"},
			{MinScore: 0, MaxFine: "$7,500 per intentional violation", Likelihood: "high"},
		}},
		FrameworkHIPAA: {Tiers: []FineTier{
			{MinScore: 75, MaxFine: "$25,000 per violation category", Likelihood: "low"},
			{MinScore: 45, MaxFine: "$100,000 per violation category", Likelihood: "medium"},
			{MinScore: 0, MaxFine: "$1.5M annual maximum per violation category", Likelihood: "high"},
		}},
		FrameworkPCI: {Tiers: []FineTier{
			{MinScore: 70, MaxFine: "$5,000 per month of non-compliance", Likelihood: "low"},
			{MinScore: 40, MaxFine: "$50,000 per month of non-compliance", Likelihood: "medium"},
			{MinScore: 0, MaxFine: "$100,000 per month of non-compliance", Likelihood: "high"},
		}},
	}
}
