package model

// Claim represents a factual assertion detected in the source text
type Claim struct {
	Text            string        `json:"text"`
	Type            ClaimType     `json:"claim_type"`
	SectionIndex    int           `json:"section_index"`
	Grade           EvidenceGrade `json:"evidence_grade"`
	NearestCitation string        `json:"nearest_citation,omitempty"`
	Explanation     string        `json:"explanation,omitempty"`
}

// ClaimType categorizes the nature of the claim
type ClaimType string

const (
	ClaimStatistic        ClaimType = "statistic"         // Numbers, studies, surveys
	ClaimLegalDirective   ClaimType = "legal_directive"   // Deadlines, filing duties, liability
	ClaimMedicalDirective ClaimType = "medical_directive" // Dosage, safety, treatment advice
	ClaimOutcome          ClaimType = "outcome"           // Result promises, settlements
	ClaimComparative      ClaimType = "comparative"       // Best/top/superior language
	ClaimProcedural       ClaimType = "procedural"        // Step-by-step instructions
)

// EvidenceGrade is the citation-support classification assigned to a claim
type EvidenceGrade string

const (
	GradeSupported          EvidenceGrade = "supported"
	GradeWeaklySupported    EvidenceGrade = "weakly_supported"
	GradeUnsupported        EvidenceGrade = "unsupported"
	GradeNeedsQualification EvidenceGrade = "needs_qualification"
)

// CitationAudit aggregates per-grade counts over the full claim list
type CitationAudit struct {
	TotalClaims        int      `json:"total_claims"`
	Supported          int      `json:"supported"`
	WeaklySupported    int      `json:"weakly_supported"`
	Unsupported        int      `json:"unsupported"`
	NeedsQualification int      `json:"needs_qualification"`
	Claims             []Claim  `json:"claims"`
	LowTrustSources    []string `json:"low_trust_sources,omitempty"` // Unique, sorted
}
