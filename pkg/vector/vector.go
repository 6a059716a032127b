// Package vector implements the embedding arithmetic shared by the similarity index,
// profile builder and ranking engine, and the binary encoding used to store embeddings.
package vector

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrDimensionMismatch is returned when vectors of different length are combined
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// Cosine returns cosine similarity of a and b, ok is false for empty,
// zero-norm or mismatched vectors
func Cosine(a, b []float64) (sim float64, ok bool) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, false
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0, false
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb)), true
}

// Mean returns the element-wise unweighted average, nil for no vectors
func Mean(vs [][]float64) ([]float64, error) {
	if len(vs) == 0 {
		return nil, nil
	}
	res := make([]float64, len(vs[0]))
	for _, v := range vs {
		if len(v) != len(res) {
			return nil, fmt.Errorf("mean of %d and %d: %w", len(res), len(v), ErrDimensionMismatch)
		}
		for i := range v {
			res[i] += v[i]
		}
	}
	n := float64(len(vs))
	for i := range res {
		res[i] /= n
	}
	return res, nil
}

// WeightedAccumulator sums weighted vectors and normalizes by the sum of absolute weights
type WeightedAccumulator struct {
	sum         []float64
	totalWeight float64
}

// Add accumulates w*v, the first added vector fixes the dimension
func (a *WeightedAccumulator) Add(v []float64, w float64) error {
	if a.sum == nil {
		a.sum = make([]float64, len(v))
	}
	if len(v) != len(a.sum) {
		return fmt.Errorf("add %d to %d: %w", len(v), len(a.sum), ErrDimensionMismatch)
	}
	for i := range v {
		a.sum[i] += w * v[i]
	}
	a.totalWeight += math.Abs(w)
	return nil
}

// Result returns the normalized sum, nil if nothing with a non-zero weight was added
func (a *WeightedAccumulator) Result() []float64 {
	if a.totalWeight == 0 {
		return nil
	}
	res := make([]float64, len(a.sum))
	for i := range a.sum {
		res[i] = a.sum[i] / a.totalWeight
	}
	return res
}

// Blend returns a*ratio + b*(1-ratio) element-wise
func Blend(a, b []float64, ratio float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("blend %d and %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	res := make([]float64, len(a))
	for i := range a {
		res[i] = a[i]*ratio + b[i]*(1-ratio)
	}
	return res, nil
}

// Encode serializes a vector as little-endian float64 values
func Encode(v []float64) []byte {
	if v == nil {
		return nil
	}
	buf := make([]byte, 8*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return buf
}

// Decode parses a vector produced by Encode
func Decode(b []byte) ([]float64, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%8 != 0 {
		return nil, fmt.Errorf("invalid embedding blob length %d", len(b))
	}
	res := make([]float64, len(b)/8)
	for i := range res {
		res[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return res, nil
}

// FromFloat32 widens a provider vector
func FromFloat32(v []float32) []float64 {
	res := make([]float64, len(v))
	for i, f := range v {
		res[i] = float64(f)
	}
	return res
}
