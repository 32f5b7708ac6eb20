// Package catalog holds the immutable regulatory content Clauseguard
// analyzes against: the framework registry, the remediation action catalog,
// and the statutory fine schedules.
package catalog

import (
	"sort"

	"github.com/clauseguard/clauseguard/internal/models"
)

// Framework identifiers.
const (
	FrameworkGDPR  = "gdpr"
	FrameworkSOC2  = "soc2"
	FrameworkCCPA  = "ccpa"
	FrameworkHIPAA = "hipaa"
	FrameworkPCI   = "pci-dss"
)

// Registry is the read-only framework catalog. It is built once at process
// start and never mutated.
type Registry struct {
	frameworks map[string]models.Framework
	order      []string
}

// NewRegistry builds a registry from framework definitions. Definitions are
// validated; an invalid definition is a programming error in the catalog.
func NewRegistry(frameworks []models.Framework) (*Registry, error) {
	reg := &Registry{
		frameworks: make(map[string]models.Framework, len(frameworks)),
		order:      make([]string, 0, len(frameworks)),
	}
	for _, fw := range frameworks {
		if err := fw.IsValid(); err != nil {
			return nil, err
		}
		reg.frameworks[fw.ID] = fw
		reg.order = append(reg.order, fw.ID)
	}
	return reg, nil
}

// Lookup returns the framework with the given id.
func (r *Registry) Lookup(id string) (models.Framework, bool) {
	fw, ok := r.frameworks[id]
	return fw, ok
}

// IDs returns all framework ids in catalog order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// All returns all framework definitions in catalog order.
func (r *Registry) All() []models.Framework {
	frameworks := make([]models.Framework, 0, len(r.order))
	for _, id := range r.order {
		frameworks = append(frameworks, r.frameworks[id])
	}
	return frameworks
}

// DefaultDetectionSet is the framework set used when no trigger phrase
// matches the contract. Guarantees detection never returns an empty set.
func (r *Registry) DefaultDetectionSet() []string {
	defaults := []string{FrameworkGDPR, FrameworkSOC2, FrameworkCCPA}
	present := make([]string, 0, len(defaults))
	for _, id := range defaults {
		if _, ok := r.frameworks[id]; ok {
			present = append(present, id)
		}
	}
	sort.Strings(present)
	return present
}

// Default returns the built-in registry.
func Default() *Registry {
	reg, err := NewRegistry(builtinFrameworks())
	if err != nil {
		// The built-in catalog is fixed at compile time; failing validation
		// here means the catalog itself is broken.
		panic(err)
	}
	return reg
}

func builtinFrameworks() []models.Framework {
	return []models.Framework{
		{
			ID:     FrameworkGDPR,
			Name:   "General Data Protection Regulation",
			Region: "European Union",
			Triggers: []string{
				"gdpr",
				"general data protection regulation",
				"eu data protection",
				"data subject",
			},
			Requirements: []models.Requirement{
				{
					ID:     "gdpr-lawful-basis",
					Name:   "Lawful Basis for Processing",
					Weight: 9,
					Keywords: []string{
						"lawful basis", "consent", "legitimate interest",
						"legal obligation", "contract necessity",
					},
				},
				{
					ID:     "gdpr-data-subject-rights",
					Name:   "Data Subject Rights",
					Weight: 9,
					Keywords: []string{
						"right to access", "right to erasure", "data portability",
						"rectification", "right to object",
					},
				},
				{
					ID:     "gdpr-breach-notification",
					Name:   "Breach Notification",
					Weight: 8,
					Keywords: []string{
						"breach notification", "72 hours", "supervisory authority",
						"personal data breach",
					},
				},
				{
					ID:     "gdpr-processing-agreement",
					Name:   "Data Processing Agreement",
					Weight: 8,
					Keywords: []string{
						"data processing agreement", "processor", "controller",
						"sub-processor",
					},
				},
				{
					ID:     "gdpr-international-transfers",
					Name:   "International Data Transfers",
					Weight: 7,
					Keywords: []string{
						"standard contractual clauses", "adequacy decision",
						"international transfer",
					},
				},
				{
					ID:     "gdpr-retention",
					Name:   "Data Retention",
					Weight: 6,
					Keywords: []string{
						"retention period", "data retention", "storage limitation",
						"deletion",
					},
				},
				{
					ID:       "gdpr-dpo",
					Name:     "Data Protection Officer",
					Weight:   4,
					Keywords: []string{"data protection officer", "dpo"},
				},
			},
		},
		{
			ID:     FrameworkSOC2,
			Name:   "SOC 2",
			Region: "United States",
			Triggers: []string{
				"soc 2",
				"soc2",
				"service organization control",
				"trust services criteria",
			},
			Requirements: []models.Requirement{
				{
					ID:     "soc2-security",
					Name:   "Security Controls",
					Weight: 9,
					Keywords: []string{
						"access control", "encryption", "firewall",
						"intrusion detection", "multi-factor authentication",
					},
				},
				{
					ID:     "soc2-confidentiality",
					Name:   "Confidentiality",
					Weight: 8,
					Keywords: []string{
						"confidential information", "non-disclosure",
						"confidentiality obligations",
					},
				},
				{
					ID:     "soc2-availability",
					Name:   "Availability Commitments",
					Weight: 7,
					Keywords: []string{
						"uptime", "availability", "service level",
						"disaster recovery", "business continuity",
					},
				},
				{
					ID:     "soc2-incident-response",
					Name:   "Monitoring and Incident Response",
					Weight: 7,
					Keywords: []string{
						"incident response", "security monitoring", "audit log",
						"vulnerability management",
					},
				},
				{
					ID:     "soc2-integrity",
					Name:   "Processing Integrity",
					Weight: 6,
					Keywords: []string{
						"processing integrity", "data accuracy",
						"quality assurance", "error correction",
					},
				},
				{
					ID:     "soc2-privacy",
					Name:   "Privacy Commitments",
					Weight: 6,
					Keywords: []string{
						"privacy notice", "personal information", "privacy policy",
					},
				},
			},
		},
		{
			ID:     FrameworkCCPA,
			Name:   "California Consumer Privacy Act",
			Region: "California, United States",
			Triggers: []string{
				"ccpa",
				"california consumer privacy",
				"california privacy rights",
				"cpra",
			},
			Requirements: []models.Requirement{
				{
					ID:     "ccpa-opt-out",
					Name:   "Right to Opt-Out of Sale",
					Weight: 9,
					Keywords: []string{
						"do not sell", "opt-out", "sale of personal information",
						"sharing of personal information",
					},
				},
				{
					ID:     "ccpa-notice",
					Name:   "Notice at Collection",
					Weight: 8,
					Keywords: []string{
						"notice at collection", "categories of personal information",
						"purpose of collection",
					},
				},
				{
					ID:     "ccpa-deletion",
					Name:   "Right to Delete",
					Weight: 7,
					Keywords: []string{
						"right to delete", "deletion request", "consumer request",
					},
				},
				{
					ID:     "ccpa-service-provider",
					Name:   "Service Provider Terms",
					Weight: 7,
					Keywords: []string{
						"service provider", "business purpose",
						"contractual restrictions",
					},
				},
				{
					ID:     "ccpa-non-discrimination",
					Name:   "Non-Discrimination",
					Weight: 5,
					Keywords: []string{
						"non-discrimination", "discriminate", "equal service",
					},
				},
			},
		},
		{
			ID:     FrameworkHIPAA,
			Name:   "Health Insurance Portability and Accountability Act",
			Region: "United States",
			Triggers: []string{
				"hipaa",
				"health insurance portability",
				"protected health information",
				"covered entity",
			},
			Requirements: []models.Requirement{
				{
					ID:     "hipaa-baa",
					Name:   "Business Associate Agreement",
					Weight: 10,
					Keywords: []string{
						"business associate", "business associate agreement",
						"covered entity",
					},
				},
				{
					ID:     "hipaa-safeguards",
					Name:   "Safeguards for PHI",
					Weight: 9,
					Keywords: []string{
						"protected health information", "administrative safeguards",
						"technical safeguards", "physical safeguards",
					},
				},
				{
					ID:     "hipaa-breach-reporting",
					Name:   "Breach Reporting",
					Weight: 8,
					Keywords: []string{
						"breach report", "unsecured protected health information",
						"notification to covered entity",
					},
				},
				{
					ID:     "hipaa-subcontractors",
					Name:   "Subcontractor Flow-Down",
					Weight: 7,
					Keywords: []string{
						"subcontractor", "flow-down", "downstream recipient",
					},
				},
				{
					ID:     "hipaa-minimum-necessary",
					Name:   "Minimum Necessary Use",
					Weight: 6,
					Keywords: []string{
						"minimum necessary", "permitted uses",
						"disclosure limitation",
					},
				},
			},
		},
		{
			ID:     FrameworkPCI,
			Name:   "PCI Data Security Standard",
			Region: "Global",
			Triggers: []string{
				"pci",
				"payment card industry",
				"cardholder",
				"card data",
			},
			Requirements: []models.Requirement{
				{
					ID:     "pci-cardholder-data",
					Name:   "Cardholder Data Protection",
					Weight: 10,
					Keywords: []string{
						"cardholder data", "primary account number", "card number",
						"tokenization",
					},
				},
				{
					ID:     "pci-encryption",
					Name:   "Encryption in Transit and at Rest",
					Weight: 9,
					Keywords: []string{
						"encryption", "tls", "cryptographic", "key management",
					},
				},
				{
					ID:     "pci-access-restriction",
					Name:   "Access Restriction",
					Weight: 7,
					Keywords: []string{
						"need to know", "access restriction", "unique id",
						"authentication",
					},
				},
				{
					ID:     "pci-network-security",
					Name:   "Network Security",
					Weight: 7,
					Keywords: []string{
						"network segmentation", "firewall", "secure network",
					},
				},
				{
					ID:     "pci-security-testing",
					Name:   "Security Testing",
					Weight: 6,
					Keywords: []string{
						"penetration test", "vulnerability scan", "security testing",
					},
				},
			},
		},
	}
}
