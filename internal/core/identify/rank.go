package identify

import (
	"math"
	"sort"
)

// Softmax converts logits into probabilities summing to 1
func Softmax(logits []float32) []float64 {
	if len(logits) == 0 {
		return nil
	}
	maxL := float64(logits[0])
	for _, l := range logits[1:] {
		if float64(l) > maxL {
			maxL = float64(l)
		}
	}
	out := make([]float64, len(logits))
	var sum float64
	for i, l := range logits {
		e := math.Exp(float64(l) - maxL)
		out[i] = e
		sum += e
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// Rank orders probabilities descending (stable on ties) and keeps the top k,
// labels[i] names probs[i]
func Rank(labels []string, probs []float64, k int) []Prediction {
	n := min(len(labels), len(probs))
	preds := make([]Prediction, 0, n)
	for i := 0; i < n; i++ {
		preds = append(preds, Prediction{Label: labels[i], Prob: probs[i]})
	}
	sort.SliceStable(preds, func(i, j int) bool { return preds[i].Prob > preds[j].Prob })
	if k > 0 && len(preds) > k {
		preds = preds[:k]
	}
	return preds
}
