package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Profile is the manually entered financial snapshot driving the allocation
// playbook. All monetary fields are monthly VND; zero income is valid and
// every ratio below guards its denominator, so no input combination errors.
type Profile struct {
	MonthlyIncome   decimal.Decimal
	EssentialCost   decimal.Decimal
	EmergencyFund   decimal.Decimal
	DebtPayMonthly  decimal.Decimal
	HasHighRateDebt bool
}

// JarPlan is the resolved allocation for one jar.
type JarPlan struct {
	Key    JarKey          `json:"key"`
	Label  string          `json:"label"`
	Pct    int             `json:"pct"`
	Amount decimal.Decimal `json:"amount"` // income * pct / 100, whole VND
	Note   string          `json:"note"`
}

// AllocationResult is the full playbook output for a profile.
type AllocationResult struct {
	Tier        IncomeTier    `json:"tier"`
	Jars        []JarPlan     `json:"jars"`
	Level       PlaybookLevel `json:"level"`
	Diagnostics []string      `json:"diagnostics"`
	Actions7d   []string      `json:"actions7d"`
	Actions30d  []string      `json:"actions30d"`
}

// incomeTierLadder is the ordered threshold ladder for tier detection;
// first bound that holds wins, boundaries inclusive on the lower tier.
var incomeTierLadder = []struct {
	maxIncome int64 // monthly VND, 0 means unbounded
	tier      IncomeTier
}{
	{42_000_000, TierUnder500MYear},
	{50_000_000, Tier20MMonth},
	{200_000_000, Tier100MMonth},
	{0, Tier1BMonth},
}

// DetectIncomeTier maps a monthly income to its tier. The mapping is total:
// any (even negative) income lands in exactly one tier.
func DetectIncomeTier(monthlyIncome decimal.Decimal) IncomeTier {
	for _, rung := range incomeTierLadder {
		if rung.maxIncome == 0 || monthlyIncome.LessThanOrEqual(decimal.NewFromInt(rung.maxIncome)) {
			return rung.tier
		}
	}
	return Tier1BMonth
}

func clampPct(p, min, max int) int {
	if p < min {
		return min
	}
	if p > max {
		return max
	}
	return p
}

// chooseDefaultPct picks a jar's baseline percentage. The lowest tier
// assumes high essential costs, so its Essentials jar starts at the maximum;
// every other jar starts at its minimum (which equals the fixed value for
// min==max rows).
func chooseDefaultPct(tier IncomeTier, key JarKey) int {
	for _, row := range tierJars[tier] {
		if row.Key != key {
			continue
		}
		if tier == TierUnder500MYear && key == JarEssential {
			return row.MaxPct
		}
		return row.MinPct
	}
	return 0
}

// safeDiv divides two monetary values as a float ratio, using a minimum-1
// denominator so zero input never produces NaN or Inf.
func safeDiv(num, den decimal.Decimal) float64 {
	d := den.InexactFloat64()
	if d < 1 {
		d = 1
	}
	return num.InexactFloat64() / d
}

// ComputePyramidLevel derives the coarse playbook stage for a profile.
// High-interest debt and a heavy essential-cost ratio force SURVIVAL
// regardless of reserves; otherwise the stage follows emergency-fund
// coverage measured in months of essential cost.
func ComputePyramidLevel(p Profile) PlaybookLevel {
	essentialRatio := safeDiv(p.EssentialCost, p.MonthlyIncome)
	emergencyMonths := safeDiv(p.EmergencyFund, p.EssentialCost)

	switch {
	case p.HasHighRateDebt:
		return LevelSurvival
	case essentialRatio > 0.65:
		return LevelSurvival
	case emergencyMonths < 3:
		return LevelStability
	case emergencyMonths < 6:
		return LevelGrowth
	default:
		return LevelWealth
	}
}

// BuildAllocation maps a profile onto the six-jar plan: pick the tier's
// baseline percentages, apply the two clamped adjustment passes, rebalance,
// and attach the stage-specific action plans.
//
// Rebalancing follows the SingleSinkRebalance policy: whatever delta remains
// after adjustments is absorbed entirely by the Essentials jar (clamped to
// [10,70]), never redistributed proportionally. This is deliberate; changing
// it changes observable output.
func BuildAllocation(p Profile) AllocationResult {
	tier := DetectIncomeTier(p.MonthlyIncome)
	level := ComputePyramidLevel(p)

	emergencyMonths := safeDiv(p.EmergencyFund, p.EssentialCost)
	essentialRatio := safeDiv(p.EssentialCost, p.MonthlyIncome)

	var diagnostics []string
	if p.HasHighRateDebt {
		diagnostics = append(diagnostics, "You carry high-interest debt: pay it down before taking more investment risk.")
	}
	if essentialRatio > 0.55 {
		diagnostics = append(diagnostics, fmt.Sprintf("Essential spending is high (%d%%). Work it down toward 40-55%% depending on your stage.", int(essentialRatio*100+0.5)))
	}
	diagnostics = append(diagnostics, fmt.Sprintf("Your emergency fund currently covers ~%.1f months of essential costs.", emergencyMonths))

	jars := make([]JarPlan, 0, len(tierJars[tier]))
	for _, row := range tierJars[tier] {
		jars = append(jars, JarPlan{
			Key:   row.Key,
			Label: row.Label,
			Pct:   chooseDefaultPct(tier, row.Key),
			Note:  row.Note,
		})
	}
	get := func(k JarKey) *JarPlan {
		for i := range jars {
			if jars[i].Key == k {
				return &jars[i]
			}
		}
		return nil
	}

	// Pass 1: thin reserve shifts points from invest/fun into the
	// emergency jar.
	if emergencyMonths < 3 {
		get(JarEmergency).Pct = clampPct(get(JarEmergency).Pct+5, 10, 25)
		get(JarInvest).Pct = clampPct(get(JarInvest).Pct-3, 5, 80)
		get(JarFun).Pct = clampPct(get(JarFun).Pct-2, 0, 10)
		diagnostics = append(diagnostics, "Reserve below 3 months: temporarily raising the emergency jar, trimming invest and fun.")
	}

	// Pass 2: high-interest debt trims invest/fun further to speed up
	// repayment.
	if p.HasHighRateDebt {
		get(JarInvest).Pct = clampPct(get(JarInvest).Pct-5, 0, 80)
		get(JarFun).Pct = clampPct(get(JarFun).Pct-3, 0, 10)
		diagnostics = append(diagnostics, "High-interest debt present: cutting invest and fun for now to accelerate repayment.")
	}

	// SingleSinkRebalance: dump the whole remaining delta into Essentials.
	total := 0
	for _, j := range jars {
		total += j.Pct
	}
	if total != 100 {
		get(JarEssential).Pct = clampPct(get(JarEssential).Pct+(100-total), 10, 70)
	}

	for i := range jars {
		jars[i].Amount = p.MonthlyIncome.
			Mul(decimal.NewFromInt(int64(jars[i].Pct))).
			Div(decimal.NewFromInt(100)).
			Round(0)
	}

	return AllocationResult{
		Tier:        tier,
		Jars:        jars,
		Level:       level,
		Diagnostics: diagnostics,
		Actions7d:   sevenDayActions(level),
		Actions30d:  thirtyDayActions(level),
	}
}

// sevenDayActions returns the fixed action plan for a stage; the items are
// coaching content keyed by stage only, independent of the jar math.
func sevenDayActions(level PlaybookLevel) []string {
	switch level {
	case LevelSurvival:
		return []string{
			"Cut your 3 leakiest expenses (snacks, bubble tea, junk apps) to keep at least 500k over the next 7 days.",
			"Cancel today every subscription you use less than twice a month.",
			"Run a 24h no-spend challenge: not a single dong next Wednesday.",
		}
	case LevelStability:
		return []string{
			"Auto-transfer 10% of income into the emergency fund the moment it arrives this week.",
			"List and sell 3 unused possessions to recover at least 1 million in surplus.",
			"Log 100% of daily spending in the app, down to 2,000d of parking.",
		}
	case LevelGrowth:
		return []string{
			"Raise the reserve contribution to 20% of surplus income with this week's paycheck.",
			"Spend 2 hours on Saturday evening researching ETF portfolios (VN30/VN100) to start accumulating.",
			"Invest at least 500k today in one book or skill course that creates income fast.",
		}
	case LevelWealth:
		return []string{
			"Review the whole portfolio: rebalance between risk and safety this week.",
			"Analyze 2 high-dividend stocks (>8%) to grow passive cashflow.",
			"Reinvest 100% of returns from current channels within 7 days to compound.",
		}
	default:
		return []string{
			"Set up an automated process for one part of your business this week.",
			"Spend 2 hours mentoring someone at an earlier stage in your community.",
			"Move 5% of this week's net profit into a charitable fund you trust.",
		}
	}
}

// thirtyDayActions returns the fixed monthly plan for a stage. Every stage
// shares the closing review item.
func thirtyDayActions(level PlaybookLevel) []string {
	list := []string{"Finish the 30-day awareness report: total income, total spending, surplus and discipline score."}
	switch level {
	case LevelSurvival:
		return append(list,
			"Goal: bring essential costs down to at most 55% of gross income.",
			"Pay off at least one small debt in full this month (snowball tactic).",
		)
	case LevelStability:
		return append(list,
			"Goal: emergency fund reaches 3 months of essential spending.",
			"Create at least 2,000,000d of extra income from a side source.",
		)
	case LevelGrowth:
		return append(list,
			"Goal: reserve reaches 6 months; finish one professional certification.",
			"Keep a steady DCA habit for 4 consecutive weeks.",
		)
	case LevelWealth:
		return append(list,
			"Goal: passive income covers at least 50% of essential living costs.",
			"Finalize asset-protection contracts and a long-term risk plan.",
		)
	default:
		return append(list,
			"Goal: reach financial freedom (passive >= 100% of spending) and complete the legacy plan.",
		)
	}
}
