package face

import "math"

// Distance calculates the Euclidean distance between two embeddings.
// Lower distance means more similar faces.
func Distance(a, b Embedding) float64 {
	var sum float64
	for i := range a {
		diff := float64(a[i]) - float64(b[i])
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

// NearestDistance returns the smallest Euclidean distance between the probe
// and any of the stored embeddings. It returns +Inf when the list is empty.
func NearestDistance(stored []Embedding, probe Embedding) float64 {
	best := math.Inf(1)
	for _, e := range stored {
		if d := Distance(probe, e); d < best {
			best = d
		}
	}
	return best
}
