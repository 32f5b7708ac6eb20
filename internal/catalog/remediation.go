package catalog

import "fmt"

// ActionCatalog maps framework id and requirement name to a specific
// remediation action. Lookups that miss fall back to a generic templated
// action so every issue always carries remediation text.
type ActionCatalog struct {
	actions map[string]map[string]string
}

// Action returns the remediation action for a requirement, falling back to
// a generic clause-drafting action when no specific entry exists.
func (c *ActionCatalog) Action(frameworkID, frameworkName, requirement string) string {
	if byRequirement, ok := c.actions[frameworkID]; ok {
		if action, ok := byRequirement[requirement]; ok {
			return action
		}
	}
	return fmt.Sprintf("Draft and incorporate a %s clause addressing the %s requirements", requirement, frameworkName)
}

// HasSpecificAction reports whether a catalog entry exists for the
// requirement, as opposed to the generic fallback.
func (c *ActionCatalog) HasSpecificAction(frameworkID, requirement string) bool {
	byRequirement, ok := c.actions[frameworkID]
	if !ok {
		return false
	}
	_, ok = byRequirement[requirement]
	return ok
}

// DefaultActions returns the built-in remediation action catalog.
func DefaultActions() *ActionCatalog {
	return &ActionCatalog{actions: map[string]map[string]string{
		FrameworkGDPR: {
			"Lawful Basis for Processing":   "Add a clause identifying the lawful basis relied on for each processing activity",
			"Data Subject Rights":           "Add a data subject rights clause covering access, erasure, rectification, portability, and objection",
			"Breach Notification":           "Add a breach notification clause committing to notify within 72 hours of awareness",
			"Data Processing Agreement":     "Execute a data processing agreement defining controller and processor obligations",
			"International Data Transfers":  "Incorporate standard contractual clauses or document an adequacy decision for transfers",
			"Data Retention":                "Define retention periods and deletion obligations for each category of personal data",
			"Data Protection Officer":       "Name the data protection officer and provide current contact details",
		},
		FrameworkSOC2: {
			"Security Controls":                "Specify required security controls including access control, encryption, and multi-factor authentication",
			"Confidentiality":                  "Strengthen confidentiality obligations with explicit handling and return-or-destroy terms",
			"Availability Commitments":         "Add service level commitments with uptime targets and disaster recovery obligations",
			"Monitoring and Incident Response": "Add incident response obligations with notification windows and audit logging requirements",
			"Processing Integrity":             "Define processing integrity commitments covering accuracy and error correction",
			"Privacy Commitments":              "Reference the applicable privacy notice and personal information handling commitments",
		},
		FrameworkCCPA: {
			"Right to Opt-Out of Sale": "Add a clause prohibiting sale of personal information absent verified opt-out handling",
			"Notice at Collection":     "Enumerate the categories of personal information collected and the purposes of collection",
			"Right to Delete":          "Add consumer deletion request handling with verification and response timelines",
			"Service Provider Terms":   "Add service provider language restricting use of personal information to the business purpose",
			"Non-Discrimination":       "Add a non-discrimination clause for consumers exercising privacy rights",
		},
		FrameworkHIPAA: {
			"Business Associate Agreement": "Execute a business associate agreement covering permitted uses and disclosures of PHI",
			"Safeguards for PHI":           "Specify administrative, technical, and physical safeguards for protected health information",
			"Breach Reporting":             "Add breach reporting obligations to the covered entity without unreasonable delay",
			"Subcontractor Flow-Down":      "Require subcontractors to agree to the same restrictions that apply to the business associate",
			"Minimum Necessary Use":        "Limit uses and disclosures of PHI to the minimum necessary for the stated purpose",
		},
		FrameworkPCI: {
			"Cardholder Data Protection":        "Prohibit storage of primary account numbers outside tokenized or encrypted systems",
			"Encryption in Transit and at Rest": "Require strong cryptography for cardholder data in transit and at rest with key management terms",
			"Access Restriction":                "Restrict cardholder data access to personnel with a need to know, with unique identifiers",
			"Network Security":                  "Require network segmentation and firewall controls around the cardholder data environment",
			"Security Testing":                  "Require periodic penetration testing and vulnerability scanning with remediation timelines",
		},
	}}
}
