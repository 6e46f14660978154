package approx

import (
	"math"
	"sort"

	"github.com/RxinnotRstar/ratio-finder/internal/config"
)

// Mode tags which ranking policy produced a Result.
type Mode int

const (
	// ModeNormal is the default outcome: up to TopN candidates ranked by error.
	ModeNormal Mode = iota
	// ModeSingleDigitPreferred carries a highlighted one-digit ratio alongside
	// the normal ranked list.
	ModeSingleDigitPreferred
	// ModeLimitSmall is the fallback for extreme ratios below 1: the numerator
	// is locked to 1 and a single candidate is returned.
	ModeLimitSmall
	// ModeLimitLarge is the fallback for extreme ratios at or above 1: the
	// denominator is locked to 1 and a single candidate is returned.
	ModeLimitLarge
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSingleDigitPreferred:
		return "single_digit_preferred"
	case ModeLimitSmall:
		return "limit_small"
	case ModeLimitLarge:
		return "limit_large"
	default:
		return "unknown"
	}
}

// TopN is the number of ranked candidates returned in the normal modes.
const TopN = 5

// Candidate is a reduced fraction Num/Den together with its approximation
// error against the target ratio. Invariant: gcd(Num, Den) == 1.
type Candidate struct {
	Num int     `json:"num"`
	Den int     `json:"den"`
	Err float64 `json:"err"`
}

// Result is the outcome of one approximation query.
//
// The four shapes are distinguished by Mode:
//   - ModeNormal: Top holds up to TopN candidates, Pick is nil.
//   - ModeSingleDigitPreferred: Pick is the highlighted one-digit candidate,
//     Top still holds the full ranked list (no deduplication between them).
//   - ModeLimitSmall / ModeLimitLarge: Top holds exactly one candidate.
type Result struct {
	Mode Mode        `json:"mode"`
	Top  []Candidate `json:"top"`
	Pick *Candidate  `json:"pick,omitempty"`
}

// Approximate searches for reduced fractions num/den with den in
// [1, cfg.MaxDenominator] that approximate a/b, and ranks them by absolute
// error. It is a pure function of its inputs: identical (cfg, a, b) always
// yields an identical Result, and it never fails over its contract (a >= 1,
// b >= 1; validation is the caller's job).
//
// Numerators are chosen by math.Round, i.e. half away from zero.
func Approximate(cfg *config.Config, a, b int) Result {
	target := float64(a) / float64(b)

	var candidates []Candidate
	var singleDigit []Candidate

	for den := 1; den <= cfg.MaxDenominator; den++ {
		num := int(math.Round(target * float64(den)))
		if num == 0 {
			continue
		}
		if gcd(num, den) != 1 {
			continue
		}
		c := Candidate{Num: num, Den: den, Err: math.Abs(float64(num)/float64(den) - target)}
		candidates = append(candidates, c)
		if num <= 9 && den <= 9 {
			singleDigit = append(singleDigit, c)
		}
	}

	// Extreme ratios can leave the candidate list empty; lock the smaller
	// term to 1 and return a single fallback candidate.
	if len(candidates) == 0 {
		if a < b {
			den := int(math.Round(float64(b) / float64(a)))
			if den < 1 {
				den = 1
			}
			c := Candidate{Num: 1, Den: den, Err: math.Abs(1/float64(den) - target)}
			return Result{Mode: ModeLimitSmall, Top: []Candidate{c}}
		}
		num := int(math.Round(target))
		if num < 1 {
			num = 1
		}
		c := Candidate{Num: num, Den: 1, Err: math.Abs(float64(num) - target)}
		return Result{Mode: ModeLimitLarge, Top: []Candidate{c}}
	}

	// Stable sort keeps generation order (ascending denominator) on ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Err < candidates[j].Err
	})

	top := candidates
	if len(top) > TopN {
		top = top[:TopN]
	}

	if len(singleDigit) == 0 {
		return Result{Mode: ModeNormal, Top: top}
	}

	best := singleDigit[0]
	for _, c := range singleDigit[1:] {
		if c.Err < best.Err {
			best = c
		}
	}
	// Highlight only when the pick differs from the global best by its
	// (num, den) pair; errors are not compared.
	globalBest := candidates[0]
	if best.Err < cfg.SingleDigitThreshold && !(best.Num == globalBest.Num && best.Den == globalBest.Den) {
		pick := best
		return Result{Mode: ModeSingleDigitPreferred, Top: top, Pick: &pick}
	}
	return Result{Mode: ModeNormal, Top: top}
}

// ExactOutOfRange reports the shortcut for large asymmetric inputs: when
// exactly one of a, b equals 1 and the other exceeds cfg.MaxDenominator, the
// ratio a:b itself is the answer with error exactly 0. Shells check this
// before rendering and, when it fires, discard whatever Approximate returned.
func ExactOutOfRange(cfg *config.Config, a, b int) (Candidate, bool) {
	switch {
	case a == 1 && b > cfg.MaxDenominator:
		return Candidate{Num: 1, Den: b, Err: 0}, true
	case b == 1 && a > cfg.MaxDenominator:
		return Candidate{Num: a, Den: 1, Err: 0}, true
	default:
		return Candidate{}, false
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
