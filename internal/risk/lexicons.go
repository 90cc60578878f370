package risk

import "github.com/eeatgrader/eeatgrader/internal/model"

// High-risk keyword lexicons. Matching is by lowercase substring over
// title + body text, one hit per keyword.

var legalHigh = []string{
	"attorney", "lawyer", "law firm", "statute of limitations",
	"negligence", "liability", "personal injury", "medical malpractice",
	"wrongful death", "class action", "plaintiff", "defendant",
	"settlement", "verdict", "litigation", "criminal defense",
	"family law", "divorce", "custody", "immigration law",
	"dui", "dwi", "felony", "misdemeanor", "probation",
	"workers compensation", "workers' compensation", "bankruptcy",
	"foreclosure", "eviction", "tort", "damages", "indictment",
	"arraignment", "bail", "subpoena", "deposition",
}

var medicalHigh = []string{
	"diagnosis", "treatment", "medication", "dosage", "side effects",
	"symptoms", "surgery", "prescription", "therapy", "prognosis",
	"clinical trial", "contraindication", "overdose", "emergency",
	"cancer", "diabetes", "heart disease", "stroke",
	"mental health", "depression", "anxiety", "suicid",
}

var financeHigh = []string{
	"investment", "mortgage", "tax return", "retirement fund",
	"401k", "ira", "securities", "credit score", "debt",
	"loan", "insurance claim", "financial advisor", "fiduciary",
	"estate planning", "trust fund", "will and testament",
}

var safetyHigh = []string{
	"child safety", "recall", "poison", "hazard", "emergency",
	"self-harm", "abuse", "trafficking", "weapon",
}

var mediumRisk = []string{
	"health", "wellness", "nutrition", "fitness", "supplement",
	"tax", "budget", "saving", "credit card", "refinance",
	"parenting", "pregnancy", "elder care",
}

// legalPresetSignals maps page-signal keywords to legal presets.
// Order matters: entries are tried top to bottom, first match wins.
var legalPresetSignals = []struct {
	signal string
	preset model.ContentPreset
}{
	{"practice area", model.PresetLegalPractice},
	{"case results", model.PresetLegalCaseResults},
	{"testimonial", model.PresetLegalCaseResults},
	{"faq", model.PresetLegalFAQ},
	{"frequently asked", model.PresetLegalFAQ},
	{"guide", model.PresetLegalGuide},
	{"overview", model.PresetLegalGuide},
	{"location", model.PresetLegalLocation},
	{"serving", model.PresetLegalLocation},
}

var reviewWords = []string{"review", "tested", "compared", "best", "top", "vs", "rating"}

var howToWords = []string{"how to", "step by step", "tutorial", "diy", "guide", "instructions"}
