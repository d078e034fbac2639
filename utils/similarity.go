package utils

import (
	"github.com/xrash/smetrics"

	"github.com/lucasvieira/comanda-app/ledger"
)

// SimilarNameThreshold is the score above which two client names are treated
// as probably the same person and creation asks for confirmation.
const SimilarNameThreshold = 0.70

// NameSimilarity scores two client names in [0,1] using Jaro-Winkler over
// the normalized forms.
func NameSimilarity(a, b string) float64 {
	return smetrics.JaroWinkler(ledger.NormalizeName(a), ledger.NormalizeName(b), 0.7, 4)
}

// SimilarNames reports whether two names score above the confirmation
// threshold without being an exact (normalized) match.
func SimilarNames(a, b string) bool {
	if ledger.NormalizeName(a) == ledger.NormalizeName(b) {
		return false
	}
	return NameSimilarity(a, b) > SimilarNameThreshold
}
