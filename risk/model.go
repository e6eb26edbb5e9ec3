// Package risk implements the capacity projection and OOM classification
// model. Everything in here is a pure function of one snapshot: no I/O, no
// cross-tick state, so the same snapshot always yields the same assessment.
package risk

import (
	"gitlab.com/tinyland/lab/zram-pulse/collectors"
)

// algoRatios maps each compression algorithm to its conservative,
// workload-derived compression ratio. Algorithms outside the table use
// defaultAlgoRatio. These are policy constants tuned against observed
// workloads, not properties of the algorithms themselves.
var algoRatios = map[string]float64{
	"lz4":  2.0,
	"lzo":  2.2,
	"zstd": 3.0,
}

// defaultAlgoRatio covers unknown algorithms and empty pools.
const defaultAlgoRatio = 2.0

// Classification thresholds, staged tighter to looser. First match wins.
// Heuristic policy constants: they encode operational experience, not a
// physical model, and must stay stable so readings compare across hosts.
const (
	highRAMFree   = 0.06
	highZramUtil  = 0.90
	highSwapFree  = 0.15
	warnRAMFree   = 0.10
	warnZramUtil  = 0.88
	warnSwapFree  = 0.12
	okRAMFree     = 0.15
	okZramUtil    = 0.85
	okSwapFree    = 0.20
)

// Label is the discrete OOM risk classification.
type Label int

const (
	// Safe means healthy headroom on all fronts.
	Safe Label = iota
	// OK means pressure is rising but not yet concerning.
	OK
	// Warn means RAM is getting low with swap or zram pressure behind it.
	Warn
	// High means imminent OOM risk: low RAM, zram near full, swap low.
	High
	// Unknown means the memory provider delivered no usable data.
	Unknown
)

// String returns the display form of the label.
func (l Label) String() string {
	switch l {
	case Safe:
		return "SAFE"
	case OK:
		return "OK"
	case Warn:
		return "WARN"
	case High:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// Assessment holds everything the model derives from one snapshot.
type Assessment struct {
	// ConservativeRatio is the algorithm-derived lower-bound compression
	// ratio; RealRatio is the instantaneously measured one.
	ConservativeRatio float64
	RealRatio         float64

	// Extra capacity unlocked by compression beyond raw physical RAM,
	// under each ratio. Never negative.
	ConservativeExtraBytes float64
	OptimisticExtraBytes   float64

	// Projected totals and free capacity under each model.
	TotalConservativeBytes float64
	TotalOptimisticBytes   float64
	FreeConservativeBytes  float64
	FreeOptimisticBytes    float64

	Label     Label
	Rationale string
}

// FreeConservativeRatio returns free/total under the conservative model,
// 0 when the projected total is zero.
func (a Assessment) FreeConservativeRatio() float64 {
	if a.TotalConservativeBytes <= 0 {
		return 0
	}
	return a.FreeConservativeBytes / a.TotalConservativeBytes
}

// FreeOptimisticRatio returns free/total under the optimistic model,
// 0 when the projected total is zero.
func (a Assessment) FreeOptimisticRatio() float64 {
	if a.TotalOptimisticBytes <= 0 {
		return 0
	}
	return a.FreeOptimisticBytes / a.TotalOptimisticBytes
}

// Assess derives the full capacity and risk assessment for one snapshot.
func Assess(s collectors.Snapshot) Assessment {
	a := Assessment{
		RealRatio:         realRatio(s.ZramDataBytes, s.ZramComprBytes),
		ConservativeRatio: ConservativeRatio(s.ZramAlgorithms),
	}

	// The compressed footprint is physical RAM already counted in
	// RAMTotalBytes; only the headroom beyond storing the data
	// uncompressed counts as extra. A ratio below 1.0 must not subtract
	// phantom memory.
	limit := float64(s.ZramLimitBytes)
	a.ConservativeExtraBytes = limit * max(0, a.ConservativeRatio-1)
	a.OptimisticExtraBytes = limit * max(0, a.RealRatio-1)

	otherTotal := float64(s.OtherSwapTotalBytes)
	otherFree := float64(s.OtherSwapFreeBytes())

	a.TotalConservativeBytes = float64(s.RAMTotalBytes) + a.ConservativeExtraBytes + otherTotal
	a.TotalOptimisticBytes = float64(s.RAMTotalBytes) + a.OptimisticExtraBytes + otherTotal
	a.FreeConservativeBytes = float64(s.RAMAvailableBytes) + a.ConservativeExtraBytes + otherFree
	a.FreeOptimisticBytes = float64(s.RAMAvailableBytes) + a.OptimisticExtraBytes + otherFree

	a.Label, a.Rationale = classify(s)
	return a
}

// realRatio measures the instantaneous compression ratio, defined as 1.0
// when nothing has been compressed yet.
func realRatio(data, compr uint64) float64 {
	if compr == 0 {
		return 1.0
	}
	return float64(data) / float64(compr)
}

// ConservativeRatio resolves the lower-bound ratio for a pool. The weakest
// algorithm in a mixed pool bounds the estimate, so the minimum is taken,
// not the average.
func ConservativeRatio(algorithms []string) float64 {
	if len(algorithms) == 0 {
		return defaultAlgoRatio
	}
	ratio := 0.0
	for i, algo := range algorithms {
		r, ok := algoRatios[algo]
		if !ok {
			r = defaultAlgoRatio
		}
		if i == 0 || r < ratio {
			ratio = r
		}
	}
	return ratio
}

// classify runs the staged OOM ladder on raw utilization ratios. The two
// capacity models deliberately play no part here: they project headroom,
// while the ladder reacts to what is already committed.
func classify(s collectors.Snapshot) (Label, string) {
	if s.RAMTotalBytes == 0 {
		return Unknown, "no RAM data"
	}

	ramFree := float64(s.RAMAvailableBytes) / float64(s.RAMTotalBytes)
	zramUtil := s.ZramUtil()

	otherTotal := s.OtherSwapTotalBytes
	otherFreeRatio := 1.0 // no other swap means no constraint
	if otherTotal > 0 {
		otherFreeRatio = float64(s.OtherSwapFreeBytes()) / float64(otherTotal)
	}

	switch {
	case ramFree < highRAMFree && zramUtil > highZramUtil &&
		(otherTotal == 0 || otherFreeRatio < highSwapFree):
		return High, "low RAM, zram near full, swap low"
	case ramFree < warnRAMFree &&
		(zramUtil > warnZramUtil || (otherTotal > 0 && otherFreeRatio < warnSwapFree)):
		return Warn, "ram getting low; swap/zram pressure"
	case ramFree < okRAMFree &&
		(zramUtil > okZramUtil || (otherTotal > 0 && otherFreeRatio < okSwapFree)):
		return OK, "watching (pressure rising)"
	default:
		return Safe, "healthy headroom"
	}
}
