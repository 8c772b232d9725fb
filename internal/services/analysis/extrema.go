package analysis

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks malformed numeric input to the extrema pipeline,
// such as a zero or NaN base price that would make the amplitude ratio
// undefined.
var ErrInvalidInput = errors.New("invalid input")

// DefaultStride is the sampling stride used by FindPeaksValleys.
const DefaultStride = 5

// FindPeaksValleys scans series for local extrema at a fixed stride. Only
// indices stride, 2*stride, ... below len(series)-stride are inspected, and
// each is compared against the samples one stride to either side. This is a
// deliberately coarse scan, not full-resolution extrema detection.
//
// A series too short to scan yields two empty lists; that is a valid empty
// result, not an error.
func FindPeaksValleys(series []float64, stride int) (peaks, valleys []int) {
	if stride <= 0 {
		stride = DefaultStride
	}
	peaks = []int{}
	valleys = []int{}
	for i := stride; i < len(series)-stride; i += stride {
		switch {
		case series[i-stride] < series[i] && series[i] > series[i+stride]:
			peaks = append(peaks, i)
		case series[i-stride] > series[i] && series[i] < series[i+stride]:
			valleys = append(valleys, i)
		}
	}
	return peaks, valleys
}

// FilterPairs discards weak peak/valley pairs relative to the volatility of
// the whole series. Pairing is positional: the i-th peak goes with the i-th
// valley, and a pair survives or drops as a unit. A pair is kept when its
// amplitude over its lower price exceeds 0.2 times the coefficient of
// variation of series.
func FilterPairs(series []float64, peaks, valleys []int) (fp, fv []int, err error) {
	cv := coefVariation(series)
	m := len(peaks)
	if len(valleys) < m {
		m = len(valleys)
	}
	fp = []int{}
	fv = []int{}
	for idx := 0; idx < m; idx++ {
		ph := series[peaks[idx]]
		vl := series[valleys[idx]]
		base := math.Min(ph, vl)
		if base == 0 || math.IsNaN(base) {
			return nil, nil, fmt.Errorf("%w: zero or undefined base price at pair %d", ErrInvalidInput, idx)
		}
		ratio := math.Abs(ph-vl) / base
		if ratio > cv*0.2 {
			fp = append(fp, peaks[idx])
			fv = append(fv, valleys[idx])
		}
	}
	return fp, fv, nil
}

// coefVariation is the population standard deviation over the mean.
func coefVariation(series []float64) float64 {
	n := float64(len(series))
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range series {
		sum += v
	}
	mean := sum / n
	var ss float64
	for _, v := range series {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss/n) / mean
}
