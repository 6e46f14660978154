package approx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RxinnotRstar/ratio-finder/internal/config"
)

func TestApproximate_RankedAndReduced(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	inputs := [][2]int{{16, 9}, {1920, 1080}, {355, 113}, {7, 3}, {100, 101}, {1, 2}}

	for _, in := range inputs {
		res := Approximate(cfg, in[0], in[1])
		require.NotEmpty(t, res.Top)
		require.LessOrEqual(t, len(res.Top), TopN)
		for i, c := range res.Top {
			require.GreaterOrEqual(t, c.Num, 1)
			require.GreaterOrEqual(t, c.Den, 1)
			require.LessOrEqual(t, c.Den, cfg.MaxDenominator)
			require.Equal(t, 1, gcd(c.Num, c.Den), "unreduced candidate %d:%d for input %v", c.Num, c.Den, in)
			if i > 0 {
				require.GreaterOrEqual(t, c.Err, res.Top[i-1].Err, "ranking not sorted for input %v", in)
			}
		}
	}
}

func TestApproximate_ExactRatioIsGlobalBest(t *testing.T) {
	t.Parallel()

	res := Approximate(config.Default(), 16, 9)
	require.Equal(t, ModeNormal, res.Mode)
	require.Equal(t, 16, res.Top[0].Num)
	require.Equal(t, 9, res.Top[0].Den)
	require.Zero(t, res.Top[0].Err)
}

func TestApproximate_Idempotent(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	first := Approximate(cfg, 355, 113)
	second := Approximate(cfg, 355, 113)
	require.Equal(t, first, second)
}

func TestApproximate_ScaleInvariantAfterReduction(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	// 2:4 and 1:2 have the same target ratio, so the candidate sets match.
	require.Equal(t, Approximate(cfg, 1, 2), Approximate(cfg, 2, 4))
	require.Equal(t, Approximate(cfg, 16, 9), Approximate(cfg, 32, 18))
}

func TestApproximate_LimitSmall(t *testing.T) {
	t.Parallel()

	// 1/1000 rounds every numerator to 0 for den <= 64, so the candidate
	// list is empty and the fallback fires.
	res := Approximate(config.Default(), 1, 1000)
	require.Equal(t, ModeLimitSmall, res.Mode)
	require.Len(t, res.Top, 1)
	require.Nil(t, res.Pick)
	require.Equal(t, 1, res.Top[0].Num)
	require.Equal(t, 1000, res.Top[0].Den)
	require.InDelta(t, 0, res.Top[0].Err, 1e-15)
}

func TestApproximate_NearBoundaryStaysNormal(t *testing.T) {
	t.Parallel()

	// 1/100 still produces candidates (num rounds to 1 from den 50 up), so
	// the fallback must NOT fire; the empty list is the trigger, not the
	// magnitude of the ratio.
	res := Approximate(config.Default(), 1, 100)
	require.Equal(t, ModeNormal, res.Mode)
	for _, c := range res.Top {
		require.LessOrEqual(t, c.Den, config.DefaultMaxDenominator)
	}
}

func TestApproximate_SingleDigitPreferred(t *testing.T) {
	t.Parallel()

	// For 100:101 every den below 51 rounds to an unreduced num/den except
	// 1:1, so the single-digit bucket holds 1:1 with error 1/101 ≈ 0.0099,
	// just under the default threshold. The global best is 63:64, so the
	// pick differs from it and gets surfaced.
	res := Approximate(config.Default(), 100, 101)
	require.Equal(t, ModeSingleDigitPreferred, res.Mode)
	require.NotNil(t, res.Pick)
	require.Equal(t, 1, res.Pick.Num)
	require.Equal(t, 1, res.Pick.Den)
	require.Less(t, res.Pick.Err, config.DefaultSingleDigitThreshold)

	require.Equal(t, 63, res.Top[0].Num)
	require.Equal(t, 64, res.Top[0].Den)
	// The pick rides alongside the ranked list, not instead of it.
	require.Len(t, res.Top, TopN)
}

func TestApproximate_LargeNumeratorNeverPicked(t *testing.T) {
	t.Parallel()

	// 355:113 has excellent approximations (22:7 and better) but none with
	// both terms in 1..9 under the threshold: 22 exceeds a single digit, so
	// no pick is surfaced even though 22:7 ranks in the top list.
	res := Approximate(config.Default(), 355, 113)
	require.Equal(t, ModeNormal, res.Mode)
	require.Nil(t, res.Pick)
	require.Equal(t, 201, res.Top[0].Num)
	require.Equal(t, 64, res.Top[0].Den)
}

func TestApproximate_SingleDigitNotPreferredWhenGlobalBest(t *testing.T) {
	t.Parallel()

	// 3:4 is both the best single-digit candidate and the global best, so no
	// separate highlight happens.
	res := Approximate(config.Default(), 3, 4)
	require.Equal(t, ModeNormal, res.Mode)
	require.Nil(t, res.Pick)
	require.Equal(t, 3, res.Top[0].Num)
	require.Equal(t, 4, res.Top[0].Den)
}

func TestApproximate_ThresholdZeroDisablesPreference(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.SingleDigitThreshold = 0
	// 100:101 produces a pick at the default threshold; zero disables it.
	res := Approximate(cfg, 100, 101)
	require.Equal(t, ModeNormal, res.Mode)
	require.Nil(t, res.Pick)
}

func TestExactOutOfRange(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	tests := []struct {
		name string
		a, b int
		want bool
		num  int
		den  int
	}{
		{name: "one to large", a: 1, b: 65, want: true, num: 1, den: 65},
		{name: "large to one", a: 65, b: 1, want: true, num: 65, den: 1},
		{name: "one to bound", a: 1, b: 64, want: false},
		{name: "both one", a: 1, b: 1, want: false},
		{name: "neither one", a: 2, b: 100, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, ok := ExactOutOfRange(cfg, tt.a, tt.b)
			require.Equal(t, tt.want, ok)
			if ok {
				require.Equal(t, tt.num, c.Num)
				require.Equal(t, tt.den, c.Den)
				require.Zero(t, c.Err)
			}
		})
	}
}
