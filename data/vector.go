package data

import "math"

// FeatureKeys lists the audio features that make up a full track vector, in
// the column order used by the output CSV.
var FeatureKeys = []string{
	"danceability",
	"energy",
	"loudness",
	"speechiness",
	"acousticness",
	"instrumentalness",
	"liveness",
	"valence",
	"tempo",
}

type Vector map[string]float64

// Distance is the Euclidean distance between two vectors, computed over the
// keys they share. Values are compared raw, so wide-range features like
// tempo and loudness weigh more heavily than the 0..1 ones.
func (this Vector) Distance(other Vector) float64 {
	var terms float64
	for k, v := range this {
		v2, has := other[k]
		if !has {
			continue
		}
		terms += math.Pow(v-v2, 2)
	}
	return math.Sqrt(terms)
}
