package domain

import "strings"

// Methodology is the evidence-type classification of an item.
type Methodology string

const (
	MethodologyRCT      Methodology = "RCT"
	MethodologyCohort   Methodology = "Cohort"
	MethodologyCase     Methodology = "Case"
	MethodologyReview   Methodology = "Review"
	MethodologyMeta     Methodology = "Meta"
	MethodologyPreprint Methodology = "Preprint"
	MethodologyNA       Methodology = "NA"
)

// ClassifyMethodology maps an upstream publication-type declaration to the
// closed methodology set. Classification is total: anything it cannot
// resolve comes back as NA so ingestion never blocks on ambiguous input.
func ClassifyMethodology(publicationType string) Methodology {
	normalized := strings.ToLower(strings.TrimSpace(publicationType))
	switch normalized {
	case "rct", "randomized controlled trial", "randomised controlled trial", "clinical trial":
		return MethodologyRCT
	case "cohort", "cohort study", "prospective cohort", "retrospective cohort", "observational":
		return MethodologyCohort
	case "case", "case report", "case study", "case series":
		return MethodologyCase
	case "review", "systematic review", "narrative review", "scoping review":
		return MethodologyReview
	case "meta", "meta-analysis", "meta analysis", "metaanalysis":
		return MethodologyMeta
	case "preprint", "pre-print", "working paper":
		return MethodologyPreprint
	default:
		return MethodologyNA
	}
}
