package engine_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/leadup-vn/leadup_backend/internal/core/engine"
)

// fixedNow anchors the trailing window so test data never ages out.
var fixedNow = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine(opts ...engine.PyramidOption) *engine.PyramidEngine {
	opts = append([]engine.PyramidOption{engine.WithClock(func() time.Time { return fixedNow })}, opts...)
	return engine.NewPyramidEngine(opts...)
}

func txn(id string, categoryID string, amount int64, typ domain.TransactionType, date time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		CategoryID:    categoryID,
		Amount:        vnd(amount),
		Type:          typ,
		Date:          date,
	}
}

func monthlyHistory(income, expense int64) []domain.Transaction {
	var txns []domain.Transaction
	for m := 0; m < 3; m++ {
		date := fixedNow.AddDate(0, -m, 0)
		txns = append(txns,
			txn(fmt.Sprintf("inc-%d", m), "cat-1", income, domain.Income, date),
			txn(fmt.Sprintf("exp-%d", m), "cat-2", expense, domain.Expense, date),
		)
	}
	return txns
}

func rules(compliant, total int) []domain.GoldenRule {
	out := make([]domain.GoldenRule, total)
	for i := range out {
		out[i] = domain.GoldenRule{RuleID: fmt.Sprintf("rule-%d", i+1), IsCompliant: i < compliant}
	}
	return out
}

func TestCalculate_EmptyInputs(t *testing.T) {
	status := newTestEngine().Calculate("user-1", nil, nil, nil, nil)

	assert.Equal(t, 1, status.CurrentLevel.ID)
	assert.Equal(t, 0, status.Metrics.ComplianceScore)
	assert.Zero(t, status.Metrics.EmergencyFundMonths)
	assert.Zero(t, status.Metrics.AvgIncome)
	assert.Zero(t, status.Metrics.NetWorth)
	assert.NotEmpty(t, status.Reasons)
	assert.NotEmpty(t, status.NextLevelConditions)
	assert.NotEmpty(t, status.Actions7d)
}

func TestCalculate_TrailingWindowExcludesOldTransactions(t *testing.T) {
	old := txn("old", "cat-1", 999_000_000, domain.Income, fixedNow.AddDate(0, -4, 0))
	recent := txn("new", "cat-1", 30_000_000, domain.Income, fixedNow.AddDate(0, 0, -5))

	status := newTestEngine().Calculate("user-1", []domain.Transaction{old, recent}, nil, nil, nil)

	// Only the recent transaction is in the window, and it occupies a
	// single active month, so the average equals its own amount.
	assert.InDelta(t, 30_000_000, status.Metrics.AvgIncome, 0.01)
}

func TestCalculate_DistinctMonthDivisor(t *testing.T) {
	// Two transactions in the same month: divisor is 1, not 2 and not 3.
	txns := []domain.Transaction{
		txn("a", "cat-1", 10_000_000, domain.Income, fixedNow.AddDate(0, 0, -1)),
		txn("b", "cat-1", 20_000_000, domain.Income, fixedNow.AddDate(0, 0, -2)),
	}
	status := newTestEngine().Calculate("user-1", txns, nil, nil, nil)
	assert.InDelta(t, 30_000_000, status.Metrics.AvgIncome, 0.01)

	// Spread over two months: divisor becomes 2.
	txns[1].Date = fixedNow.AddDate(0, -1, 0)
	status = newTestEngine().Calculate("user-1", txns, nil, nil, nil)
	assert.InDelta(t, 15_000_000, status.Metrics.AvgIncome, 0.01)
}

func TestCalculate_PassiveIncomeHeuristic(t *testing.T) {
	date := fixedNow.AddDate(0, 0, -3)
	business := txn("biz", domain.BusinessIncomeCategoryID, 5_000_000, domain.Income, date)
	flagged := txn("flagged", "cat-1", 3_000_000, domain.Income, date)
	flagged.IsAsset = true
	salary := txn("salary", "cat-1", 20_000_000, domain.Income, date)

	status := newTestEngine().Calculate("user-1", []domain.Transaction{business, flagged, salary}, nil, nil, nil)

	assert.InDelta(t, 8_000_000, status.Metrics.PassiveIncome, 0.01)
	assert.InDelta(t, 28_000_000, status.Metrics.AvgIncome, 0.01)
}

type nothingPassive struct{}

func (nothingPassive) IsPassive(domain.Transaction) bool { return false }

func TestCalculate_ClassifierIsInjectable(t *testing.T) {
	date := fixedNow.AddDate(0, 0, -3)
	business := txn("biz", domain.BusinessIncomeCategoryID, 5_000_000, domain.Income, date)

	status := newTestEngine(engine.WithClassifier(nothingPassive{})).
		Calculate("user-1", []domain.Transaction{business}, nil, nil, nil)

	assert.Zero(t, status.Metrics.PassiveIncome)
}

func TestCalculate_LiquidityExcludesIlliquidAssets(t *testing.T) {
	txns := monthlyHistory(30_000_000, 10_000_000)
	assets := []domain.Asset{
		{AssetID: "a1", Value: vnd(40_000_000), Type: domain.AssetCash},
		{AssetID: "a2", Value: vnd(20_000_000), Type: domain.AssetInvestment},
		{AssetID: "a3", Value: vnd(500_000_000), Type: domain.AssetRealEstate},
		{AssetID: "a4", Value: vnd(45_000_000), Type: domain.AssetVehicle},
	}

	status := newTestEngine().Calculate("user-1", txns, assets, nil, nil)

	// 60M liquid over 10M monthly spending: 6 months, the real estate and
	// vehicle contribute to net worth only.
	assert.InDelta(t, 6.0, status.Metrics.EmergencyFundMonths, 0.01)
	assert.InDelta(t, 605_000_000, status.Metrics.NetWorth, 0.01)
}

func TestCalculate_ComplianceScoreRounding(t *testing.T) {
	status := newTestEngine().Calculate("user-1", nil, nil, nil, rules(7, 11))
	assert.Equal(t, 64, status.Metrics.ComplianceScore) // round(63.63)

	status = newTestEngine().Calculate("user-1", nil, nil, nil, rules(0, 11))
	assert.Equal(t, 0, status.Metrics.ComplianceScore)

	status = newTestEngine().Calculate("user-1", nil, nil, nil, rules(11, 11))
	assert.Equal(t, 100, status.Metrics.ComplianceScore)
}

func TestCalculate_LevelLadder(t *testing.T) {
	expenses := int64(10_000_000)

	tests := []struct {
		name      string
		txns      []domain.Transaction
		assets    []domain.Asset
		liab      []domain.Liability
		rules     []domain.GoldenRule
		wantLevel int
	}{
		{
			name:      "income below expense stays level 1",
			txns:      monthlyHistory(8_000_000, expenses),
			wantLevel: 1,
		},
		{
			name:      "positive cashflow reaches level 2",
			txns:      monthlyHistory(30_000_000, expenses),
			wantLevel: 2,
		},
		{
			name:      "3 month reserve reaches level 3",
			txns:      monthlyHistory(30_000_000, expenses),
			assets:    []domain.Asset{{AssetID: "a", Value: vnd(4 * expenses), Type: domain.AssetCash}},
			wantLevel: 3,
		},
		{
			name:      "12 month reserve without discipline stays level 3",
			txns:      monthlyHistory(30_000_000, expenses),
			assets:    []domain.Asset{{AssetID: "a", Value: vnd(13 * expenses), Type: domain.AssetCash}},
			rules:     rules(5, 11), // 45%
			wantLevel: 3,
		},
		{
			name:      "12 month reserve with discipline reaches level 4",
			txns:      monthlyHistory(30_000_000, expenses),
			assets:    []domain.Asset{{AssetID: "a", Value: vnd(13 * expenses), Type: domain.AssetCash}},
			rules:     rules(8, 11), // 73%
			wantLevel: 4,
		},
		{
			name: "passive income at half of expenses reaches level 5",
			txns: append(monthlyHistory(30_000_000, expenses),
				txn("biz", domain.BusinessIncomeCategoryID, 3*5_000_000, domain.Income, fixedNow.AddDate(0, 0, -1))),
			assets:    []domain.Asset{{AssetID: "a", Value: vnd(13 * expenses), Type: domain.AssetCash}},
			rules:     rules(8, 11),
			wantLevel: 5,
		},
		{
			name: "passive income covering expenses reaches level 6",
			txns: append(monthlyHistory(30_000_000, expenses),
				txn("biz", domain.BusinessIncomeCategoryID, 3*11_000_000, domain.Income, fixedNow.AddDate(0, 0, -1))),
			assets:    []domain.Asset{{AssetID: "a", Value: vnd(13 * expenses), Type: domain.AssetCash}},
			rules:     rules(8, 11),
			wantLevel: 6,
		},
		{
			name: "big net worth plus near-perfect discipline reaches level 7",
			txns: append(monthlyHistory(30_000_000, expenses),
				txn("biz", domain.BusinessIncomeCategoryID, 3*11_000_000, domain.Income, fixedNow.AddDate(0, 0, -1))),
			assets: []domain.Asset{
				{AssetID: "a", Value: vnd(13 * expenses), Type: domain.AssetCash},
				{AssetID: "b", Value: vnd(6_000_000_000), Type: domain.AssetRealEstate},
			},
			rules:     rules(10, 11), // 91%
			wantLevel: 7,
		},
		{
			name: "liabilities can pull level 7 back down",
			txns: append(monthlyHistory(30_000_000, expenses),
				txn("biz", domain.BusinessIncomeCategoryID, 3*11_000_000, domain.Income, fixedNow.AddDate(0, 0, -1))),
			assets: []domain.Asset{
				{AssetID: "a", Value: vnd(13 * expenses), Type: domain.AssetCash},
				{AssetID: "b", Value: vnd(6_000_000_000), Type: domain.AssetRealEstate},
			},
			liab:      []domain.Liability{{LiabilityID: "l", Amount: vnd(2_000_000_000), Type: domain.LiabilityMortgage}},
			rules:     rules(10, 11),
			wantLevel: 6,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status := newTestEngine().Calculate("user-1", tc.txns, tc.assets, tc.liab, tc.rules)
			assert.Equal(t, tc.wantLevel, status.CurrentLevel.ID)
		})
	}
}

func TestLevelFromMetrics_MonotonicGating(t *testing.T) {
	// Random metrics: whenever the derived level is at least 5, every
	// ancestor gate must also hold.
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		m := engine.PyramidMetrics{
			AvgIncome:           float64(rng.Intn(100_000_000)),
			AvgExpense:          float64(rng.Intn(50_000_000)),
			EmergencyFundMonths: rng.Float64() * 30,
			PassiveIncome:       float64(rng.Intn(50_000_000)),
			NetWorth:            float64(rng.Intn(10_000_000_000)),
			ComplianceScore:     rng.Intn(101),
		}
		level := engine.LevelFromMetrics(m)
		if level >= 2 {
			assert.Greater(t, m.AvgIncome, m.AvgExpense, "level %d metrics %+v", level, m)
		}
		if level >= 3 {
			assert.GreaterOrEqual(t, m.EmergencyFundMonths, 3.0, "level %d metrics %+v", level, m)
		}
		if level >= 5 {
			assert.GreaterOrEqual(t, m.EmergencyFundMonths, 12.0, "level %d metrics %+v", level, m)
			assert.GreaterOrEqual(t, m.ComplianceScore, 70, "level %d metrics %+v", level, m)
			assert.GreaterOrEqual(t, m.PassiveIncome, 0.5*m.AvgExpense, "level %d metrics %+v", level, m)
		}
	}
}

func TestCalculate_MetricsRoundTripToSameLevel(t *testing.T) {
	snapshots := []struct {
		txns   []domain.Transaction
		assets []domain.Asset
		rules  []domain.GoldenRule
	}{
		{txns: monthlyHistory(8_000_000, 10_000_000)},
		{txns: monthlyHistory(30_000_000, 10_000_000)},
		{
			txns:   monthlyHistory(30_000_000, 10_000_000),
			assets: []domain.Asset{{AssetID: "a", Value: vnd(130_000_000), Type: domain.AssetCash}},
			rules:  rules(9, 11),
		},
	}
	for _, s := range snapshots {
		status := newTestEngine().Calculate("user-1", s.txns, s.assets, nil, s.rules)
		assert.Equal(t, status.CurrentLevel.ID, engine.LevelFromMetrics(status.Metrics))
	}
}

func TestCalculate_MemoizationIsTransparent(t *testing.T) {
	txns := monthlyHistory(30_000_000, 10_000_000)
	assets := []domain.Asset{{AssetID: "a", Value: vnd(60_000_000), Type: domain.AssetCash}}
	ruleSet := rules(8, 11)

	e := newTestEngine()
	first := e.Calculate("user-1", txns, assets, nil, ruleSet)
	second := e.Calculate("user-1", txns, assets, nil, ruleSet)
	fresh := newTestEngine().Calculate("user-1", txns, assets, nil, ruleSet)

	assert.Equal(t, first, second)
	assert.Equal(t, fresh, first)
}

func TestCalculate_CacheInvalidatedByRuleToggle(t *testing.T) {
	txns := monthlyHistory(30_000_000, 10_000_000)
	ruleSet := rules(11, 11)

	e := newTestEngine()
	before := e.Calculate("user-1", txns, nil, nil, ruleSet)
	require.Equal(t, 100, before.Metrics.ComplianceScore)

	// Same counts, same sums, different compliant-id set: the signature
	// must still change.
	ruleSet[0].IsCompliant = false
	after := e.Calculate("user-1", txns, nil, nil, ruleSet)
	assert.Equal(t, 91, after.Metrics.ComplianceScore)
}

func TestCalculate_CacheIsScopedPerUser(t *testing.T) {
	// One income of 5M and one expense of 5M collapse to the same counts
	// and sums. A second user with the structurally identical snapshot must
	// still get their own status, not the first user's cached one.
	income := []domain.Transaction{txn("inc", "cat-1", 5_000_000, domain.Income, fixedNow.AddDate(0, 0, -1))}
	expense := []domain.Transaction{txn("exp", "cat-2", 5_000_000, domain.Expense, fixedNow.AddDate(0, 0, -1))}

	e := newTestEngine()
	earner := e.Calculate("user-a", income, nil, nil, nil)
	spender := e.Calculate("user-b", expense, nil, nil, nil)

	assert.False(t, earner.Metrics.AvgIncome == 0)
	assert.True(t, spender.Metrics.AvgIncome == 0)
	assert.Equal(t, 1, spender.CurrentLevel.ID)
	assert.NotEqual(t, earner, spender)
}

func TestCalculate_ReasonsAreIndependentOfLadder(t *testing.T) {
	// Level 4 snapshot with thin passive income: diagnostics should still
	// flag the missing passive income and nothing about cashflow.
	txns := monthlyHistory(30_000_000, 10_000_000)
	assets := []domain.Asset{{AssetID: "a", Value: vnd(130_000_000), Type: domain.AssetCash}}
	status := newTestEngine().Calculate("user-1", txns, assets, nil, rules(8, 11))

	require.Equal(t, 4, status.CurrentLevel.ID)
	assert.Contains(t, status.Reasons[0], "discipline")
	assert.Len(t, status.Reasons, 2) // compliance < 75 and passive == 0
}

func TestCalculate_AffirmationFallback(t *testing.T) {
	// Strong snapshot: no diagnostic triggers, one affirming message.
	txns := append(monthlyHistory(40_000_000, 10_000_000),
		txn("biz", domain.BusinessIncomeCategoryID, 3*6_000_000, domain.Income, fixedNow.AddDate(0, 0, -1)))
	assets := []domain.Asset{{AssetID: "a", Value: vnd(130_000_000), Type: domain.AssetCash}}
	status := newTestEngine().Calculate("user-1", txns, assets, nil, rules(9, 11))

	assert.Len(t, status.Reasons, 1)
	assert.Contains(t, status.Reasons[0], "progression track")
}
