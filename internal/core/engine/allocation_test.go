package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadup-vn/leadup_backend/internal/core/engine"
)

func vnd(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestDetectIncomeTier_BoundariesAndTotality(t *testing.T) {
	tests := []struct {
		name   string
		income int64
		want   engine.IncomeTier
	}{
		{"zero", 0, engine.TierUnder500MYear},
		{"low", 10_000_000, engine.TierUnder500MYear},
		{"tier A upper bound inclusive", 42_000_000, engine.TierUnder500MYear},
		{"just above tier A", 42_000_001, engine.Tier20MMonth},
		{"tier B upper bound inclusive", 50_000_000, engine.Tier20MMonth},
		{"just above tier B", 50_000_001, engine.Tier100MMonth},
		{"tier C upper bound inclusive", 200_000_000, engine.Tier100MMonth},
		{"just above tier C", 200_000_001, engine.Tier1BMonth},
		{"very large", 2_000_000_000, engine.Tier1BMonth},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, engine.DetectIncomeTier(vnd(tc.income)))
		})
	}
}

func TestComputePyramidLevel(t *testing.T) {
	tests := []struct {
		name    string
		profile engine.Profile
		want    engine.PlaybookLevel
	}{
		{
			name:    "high-interest debt forces survival",
			profile: engine.Profile{MonthlyIncome: vnd(100_000_000), EssentialCost: vnd(20_000_000), EmergencyFund: vnd(500_000_000), HasHighRateDebt: true},
			want:    engine.LevelSurvival,
		},
		{
			name:    "essential ratio above 0.65 forces survival",
			profile: engine.Profile{MonthlyIncome: vnd(10_000_000), EssentialCost: vnd(7_000_000)},
			want:    engine.LevelSurvival,
		},
		{
			name:    "thin reserve is stability",
			profile: engine.Profile{MonthlyIncome: vnd(30_000_000), EssentialCost: vnd(10_000_000), EmergencyFund: vnd(20_000_000)},
			want:    engine.LevelStability,
		},
		{
			name:    "3-6 month reserve is growth",
			profile: engine.Profile{MonthlyIncome: vnd(30_000_000), EssentialCost: vnd(10_000_000), EmergencyFund: vnd(40_000_000)},
			want:    engine.LevelGrowth,
		},
		{
			name:    "6+ month reserve is wealth",
			profile: engine.Profile{MonthlyIncome: vnd(30_000_000), EssentialCost: vnd(10_000_000), EmergencyFund: vnd(70_000_000)},
			want:    engine.LevelWealth,
		},
		{
			name:    "zero everything degrades to stability not a panic",
			profile: engine.Profile{},
			want:    engine.LevelStability,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, engine.ComputePyramidLevel(tc.profile))
		})
	}
}

func jarByKey(t *testing.T, res engine.AllocationResult, key engine.JarKey) engine.JarPlan {
	t.Helper()
	for _, j := range res.Jars {
		if j.Key == key {
			return j
		}
	}
	t.Fatalf("jar %s missing from result", key)
	return engine.JarPlan{}
}

func pctSum(res engine.AllocationResult) int {
	sum := 0
	for _, j := range res.Jars {
		sum += j.Pct
	}
	return sum
}

func TestBuildAllocation_PercentagesSumTo100(t *testing.T) {
	profiles := []engine.Profile{
		{MonthlyIncome: vnd(10_000_000), EssentialCost: vnd(7_000_000)},
		{MonthlyIncome: vnd(25_000_000), EssentialCost: vnd(12_000_000), EmergencyFund: vnd(80_000_000)},
		{MonthlyIncome: vnd(60_000_000), EssentialCost: vnd(20_000_000)},
		{MonthlyIncome: vnd(60_000_000), EssentialCost: vnd(20_000_000), HasHighRateDebt: true},
		{MonthlyIncome: vnd(500_000_000), EssentialCost: vnd(100_000_000), EmergencyFund: vnd(900_000_000)},
		{MonthlyIncome: vnd(0), EssentialCost: vnd(0)},
	}
	for _, p := range profiles {
		res := engine.BuildAllocation(p)
		assert.Equal(t, 100, pctSum(res), "profile %+v", p)
	}
}

func TestBuildAllocation_ThinReserveAdjustment(t *testing.T) {
	// Scenario: 60M income, no reserve. Tier C baselines are fixed at
	// 40/10/10/30/5/5; the reserve pass moves 5 points into Emergency.
	res := engine.BuildAllocation(engine.Profile{
		MonthlyIncome: vnd(60_000_000),
		EssentialCost: vnd(20_000_000),
	})

	require.Equal(t, engine.Tier100MMonth, res.Tier)
	assert.Equal(t, engine.LevelStability, res.Level)
	assert.Equal(t, 15, jarByKey(t, res, engine.JarEmergency).Pct)
	assert.Equal(t, 27, jarByKey(t, res, engine.JarInvest).Pct)
	assert.Equal(t, 3, jarByKey(t, res, engine.JarFun).Pct)
	assert.Equal(t, 100, pctSum(res))
}

func TestBuildAllocation_SingleSinkRebalance(t *testing.T) {
	// Tier A defaults sum to 86 (55+10+10+5+5+1); the whole 14-point delta
	// lands in Essentials, nowhere else.
	res := engine.BuildAllocation(engine.Profile{
		MonthlyIncome: vnd(10_000_000),
		EssentialCost: vnd(2_000_000),
		EmergencyFund: vnd(10_000_000),
	})

	require.Equal(t, engine.TierUnder500MYear, res.Tier)
	assert.Equal(t, 69, jarByKey(t, res, engine.JarEssential).Pct)
	assert.Equal(t, 10, jarByKey(t, res, engine.JarEducation).Pct)
	assert.Equal(t, 1, jarByKey(t, res, engine.JarGive).Pct)
	assert.Equal(t, 100, pctSum(res))
}

func TestBuildAllocation_ClampBoundsHold(t *testing.T) {
	// The adjustment passes clamp each touched jar to its policy range:
	// Emergency [10,25], Invest [0,80], Fun [0,10], and the Essentials
	// rebalance sink [10,70]. Education and Give are never adjusted and
	// keep their tier baselines.
	profiles := []engine.Profile{
		{MonthlyIncome: vnd(10_000_000), EssentialCost: vnd(7_000_000), HasHighRateDebt: true},
		{MonthlyIncome: vnd(45_000_000), EssentialCost: vnd(25_000_000)},
		{MonthlyIncome: vnd(60_000_000), EssentialCost: vnd(20_000_000), HasHighRateDebt: true},
		{MonthlyIncome: vnd(300_000_000), EssentialCost: vnd(60_000_000)},
	}
	bounds := map[engine.JarKey][2]int{
		engine.JarEssential: {10, 70},
		engine.JarEmergency: {10, 25},
		engine.JarInvest:    {0, 80},
		engine.JarFun:       {0, 10},
	}
	for _, p := range profiles {
		res := engine.BuildAllocation(p)
		for key, b := range bounds {
			pct := jarByKey(t, res, key).Pct
			assert.GreaterOrEqual(t, pct, b[0], "jar %s under floor for %+v", key, p)
			assert.LessOrEqual(t, pct, b[1], "jar %s over ceiling for %+v", key, p)
		}
		for _, row := range engine.JarTable(res.Tier) {
			if row.Key == engine.JarEducation || row.Key == engine.JarGive {
				assert.Equal(t, row.MinPct, jarByKey(t, res, row.Key).Pct, "jar %s should keep its baseline for %+v", row.Key, p)
			}
		}
	}
}

func TestBuildAllocation_HighInterestDebtCutsInvestAndFun(t *testing.T) {
	base := engine.Profile{MonthlyIncome: vnd(60_000_000), EssentialCost: vnd(20_000_000), EmergencyFund: vnd(100_000_000)}
	debt := base
	debt.HasHighRateDebt = true

	resBase := engine.BuildAllocation(base)
	resDebt := engine.BuildAllocation(debt)

	assert.Less(t, jarByKey(t, resDebt, engine.JarInvest).Pct, jarByKey(t, resBase, engine.JarInvest).Pct)
	assert.Less(t, jarByKey(t, resDebt, engine.JarFun).Pct, jarByKey(t, resBase, engine.JarFun).Pct)
	assert.Equal(t, engine.LevelSurvival, resDebt.Level)
	assert.Equal(t, 100, pctSum(resDebt))
}

func TestBuildAllocation_AmountsAreWholeVND(t *testing.T) {
	res := engine.BuildAllocation(engine.Profile{
		MonthlyIncome: vnd(10_000_001),
		EssentialCost: vnd(4_000_000),
		EmergencyFund: vnd(20_000_000),
	})
	for _, j := range res.Jars {
		assert.True(t, j.Amount.Equal(j.Amount.Round(0)), "jar %s amount %s not whole", j.Key, j.Amount)
		expected := vnd(10_000_001).Mul(decimal.NewFromInt(int64(j.Pct))).Div(decimal.NewFromInt(100)).Round(0)
		assert.True(t, j.Amount.Equal(expected), "jar %s amount %s != %s", j.Key, j.Amount, expected)
	}
}

func TestBuildAllocation_ZeroIncomeDoesNotPanic(t *testing.T) {
	res := engine.BuildAllocation(engine.Profile{})
	assert.Equal(t, engine.TierUnder500MYear, res.Tier)
	assert.Equal(t, 100, pctSum(res))
	for _, j := range res.Jars {
		assert.True(t, j.Amount.IsZero())
	}
	assert.NotEmpty(t, res.Diagnostics)
	assert.NotEmpty(t, res.Actions7d)
	assert.NotEmpty(t, res.Actions30d)
}

func TestBuildAllocation_SurvivalScenario(t *testing.T) {
	// 10M income against 7M essentials: ratio 0.7 forces survival even
	// without high-interest debt.
	res := engine.BuildAllocation(engine.Profile{
		MonthlyIncome: vnd(10_000_000),
		EssentialCost: vnd(7_000_000),
	})
	require.Equal(t, engine.TierUnder500MYear, res.Tier)
	assert.Equal(t, engine.LevelSurvival, res.Level)
}
