package core

// BalanceHeuristic computes the multiple importance sampling weight
// pdfA/(pdfA+pdfB) for a sample drawn from strategy A. The weights for
// the two strategies sum to one whenever both pdfs are finite and
// positive.
func BalanceHeuristic(pdfA, pdfB float64) float64 {
	if pdfA <= 0 {
		return 0
	}
	return pdfA / (pdfA + pdfB)
}

// PowerHeuristic computes the MIS weight with exponent 2, which slightly
// favors the strategy with the higher pdf
func PowerHeuristic(nA int, pdfA float64, nB int, pdfB float64) float64 {
	fA := float64(nA) * pdfA
	fB := float64(nB) * pdfB
	if fA <= 0 {
		return 0
	}
	return (fA * fA) / (fA*fA + fB*fB)
}
