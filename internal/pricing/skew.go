package pricing

// SkewProbabilities applies a linear inventory skew to a binary probability
// pair. Positive inventory (long YES) shifts p_yes down and p_no up by
// alpha*inventory so the quoter leans toward reducing the position, then the
// pair is re-normalized and each component clamped to [0,1].
//
// Inputs of length other than 2 pass through unchanged; N-outcome skewing is
// not supported. A non-positive normalizing sum falls back to [0.5, 0.5].
func SkewProbabilities(baseProbs []float64, inventory, alpha float64) []float64 {
	if len(baseProbs) != 2 {
		return append([]float64(nil), baseProbs...)
	}
	pYes := baseProbs[0] - alpha*inventory
	pNo := baseProbs[1] + alpha*inventory
	sum := pYes + pNo
	if sum <= 0 {
		return []float64{0.5, 0.5}
	}
	return []float64{
		Clamp(pYes/sum, 0, 1),
		Clamp(pNo/sum, 0, 1),
	}
}
