package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
)

// PyramidLevelInfo is the display metadata for one of the seven pyramid
// levels. The numeric ladder below is authoritative; these entries only
// label it for the UI.
type PyramidLevelInfo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Criteria    string `json:"criteria"`
	Icon        string `json:"icon"`
}

// PyramidLevels lists all seven levels, highest first, matching how the UI
// renders the pyramid.
var PyramidLevels = []PyramidLevelInfo{
	{ID: 7, Name: "Prosperity", Description: "Legacy and contribution. Beyond fear and greed.", Criteria: "Large net worth + near-perfect golden-rule discipline", Icon: "Sparkles"},
	{ID: 6, Name: "Financial Freedom", Description: "Money makes money. Income arrives while you sleep.", Criteria: "Passive income >= 100% of spending", Icon: "Flag"},
	{ID: 5, Name: "Financial Independence", Description: "You own systems or assets producing steady cashflow.", Criteria: "Passive income >= 50% of spending", Icon: "TrendingUp"},
	{ID: 4, Name: "Safety", Description: "A solid reserve. Smart leverage below 50%.", Criteria: "Reserve >= 1 year of spending", Icon: "ShieldCheck"},
	{ID: 3, Name: "Accumulation", Description: "A surplus appears. Invest in your own mind first.", Criteria: "Reserve >= 3-6 months of spending", Icon: "Collection"},
	{ID: 2, Name: "Stability", Description: "Working above the line. Income beats real spending.", Criteria: "Positive monthly cashflow", Icon: "Scale"},
	{ID: 1, Name: "Survival", Description: "Every dong earned is a dong spent. A slave to money.", Criteria: "Income <= spending / bad debt", Icon: "Exclamation"},
}

func levelInfo(id int) PyramidLevelInfo {
	for _, l := range PyramidLevels {
		if l.ID == id {
			return l
		}
	}
	return PyramidLevels[len(PyramidLevels)-1]
}

// PyramidMetrics are the aggregates the ladder is evaluated against.
// Monetary values are monthly VND averages over the trailing window.
type PyramidMetrics struct {
	AvgIncome           float64 `json:"avgIncome"`
	AvgExpense          float64 `json:"avgExpense"`
	EmergencyFundMonths float64 `json:"emergencyFundMonths"`
	PassiveIncome       float64 `json:"passiveIncome"`
	NetWorth            float64 `json:"netWorth"`
	ComplianceScore     int     `json:"complianceScore"`
}

// PyramidStatus is the full progression verdict for one input snapshot.
type PyramidStatus struct {
	CurrentLevel        PyramidLevelInfo `json:"currentLevel"`
	Metrics             PyramidMetrics   `json:"metrics"`
	Reasons             []string         `json:"reasons"`
	NextLevelConditions []string         `json:"nextLevelConditions"`
	Actions7d           []string         `json:"actions7d"`
}

// legacyNetWorthThreshold gates level 7 (VND).
const legacyNetWorthThreshold = 5_000_000_000

// levelGates is the ordered ladder from level 2 upward. Each gate is only
// evaluated once every gate below it has passed, so reaching level N implies
// every weaker condition also holds.
var levelGates = []struct {
	level int
	pass  func(m PyramidMetrics) bool
}{
	{2, func(m PyramidMetrics) bool { return m.AvgIncome > m.AvgExpense }},
	{3, func(m PyramidMetrics) bool { return m.EmergencyFundMonths >= 3 }},
	{4, func(m PyramidMetrics) bool { return m.EmergencyFundMonths >= 12 && m.ComplianceScore >= 70 }},
	{5, func(m PyramidMetrics) bool { return m.PassiveIncome > 0 && m.PassiveIncome >= 0.5*m.AvgExpense }},
	{6, func(m PyramidMetrics) bool { return m.PassiveIncome >= m.AvgExpense }},
	{7, func(m PyramidMetrics) bool { return m.NetWorth > legacyNetWorthThreshold && m.ComplianceScore >= 90 }},
}

// LevelFromMetrics climbs the gate ladder and returns the highest level whose
// entire chain of gates passes. Level 1 is the floor.
func LevelFromMetrics(m PyramidMetrics) int {
	level := 1
	for _, g := range levelGates {
		if !g.pass(m) {
			break
		}
		level = g.level
	}
	return level
}

type memoEntry struct {
	signature string
	result    PyramidStatus
}

// PyramidEngine computes PyramidStatus from a record snapshot. It is pure
// except for a single-slot memo cache; the cache is an optimization only and
// recomputing from scratch yields identical results. The mutex makes the
// read-then-write on the slot safe under concurrent callers.
type PyramidEngine struct {
	clock      func() time.Time
	classifier PassiveIncomeClassifier

	mu   sync.Mutex
	memo *memoEntry
}

// PyramidOption configures a PyramidEngine.
type PyramidOption func(*PyramidEngine)

// WithClock overrides the wall clock used to anchor the trailing window.
func WithClock(clock func() time.Time) PyramidOption {
	return func(e *PyramidEngine) { e.clock = clock }
}

// WithClassifier overrides the passive-income detection rule.
func WithClassifier(c PassiveIncomeClassifier) PyramidOption {
	return func(e *PyramidEngine) { e.classifier = c }
}

// NewPyramidEngine builds an engine with a fresh memo slot.
func NewPyramidEngine(opts ...PyramidOption) *PyramidEngine {
	e := &PyramidEngine{
		clock:      time.Now,
		classifier: CategoryFlagClassifier{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// signature builds the cheap structural cache key: the owning user plus
// record counts and sums and the sorted ids of compliant rules. The user id
// keeps the memo from serving one user's status to another whose snapshot
// happens to collapse to the same counts and sums.
func signature(userID string, transactions []domain.Transaction, assets []domain.Asset, liabilities []domain.Liability, rules []domain.GoldenRule) string {
	tSum := decimal.Zero
	for _, t := range transactions {
		tSum = tSum.Add(t.Amount)
	}
	aSum := decimal.Zero
	for _, a := range assets {
		aSum = aSum.Add(a.Value)
	}
	lSum := decimal.Zero
	for _, l := range liabilities {
		lSum = lSum.Add(l.Amount)
	}
	compliant := make([]string, 0, len(rules))
	for _, r := range rules {
		if r.IsCompliant {
			compliant = append(compliant, r.RuleID)
		}
	}
	sort.Strings(compliant)

	return fmt.Sprintf("u:%s|t:%d-%s|a:%d-%s|l:%d-%s|r:%s",
		userID,
		len(transactions), tSum.String(),
		len(assets), aSum.String(),
		len(liabilities), lSum.String(),
		strings.Join(compliant, ","))
}

// Calculate classifies the user's financial maturity from the snapshot.
// It never fails: empty inputs produce the level-1 degenerate status.
func (e *PyramidEngine) Calculate(userID string, transactions []domain.Transaction, assets []domain.Asset, liabilities []domain.Liability, rules []domain.GoldenRule) PyramidStatus {
	sig := signature(userID, transactions, assets, liabilities, rules)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.memo != nil && e.memo.signature == sig {
		return e.memo.result
	}

	result := e.compute(transactions, assets, liabilities, rules)
	e.memo = &memoEntry{signature: sig, result: result}
	return result
}

func (e *PyramidEngine) compute(transactions []domain.Transaction, assets []domain.Asset, liabilities []domain.Liability, rules []domain.GoldenRule) PyramidStatus {
	now := e.clock()
	windowStart := now.AddDate(0, -3, 0)

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	totalPassive := decimal.Zero
	activeMonths := map[string]struct{}{}

	for _, t := range transactions {
		if t.Date.Before(windowStart) {
			continue
		}
		activeMonths[t.Date.Format("2006-01")] = struct{}{}
		if t.Type == domain.Income {
			totalIncome = totalIncome.Add(t.Amount)
			if e.classifier.IsPassive(t) {
				totalPassive = totalPassive.Add(t.Amount)
			}
		} else {
			totalExpense = totalExpense.Add(t.Amount)
		}
	}

	// Average over the distinct months that actually contain activity,
	// not a fixed 3: a single active month averages to its own total.
	monthCount := len(activeMonths)
	if monthCount == 0 {
		monthCount = 1
	}
	avgIncome := totalIncome.InexactFloat64() / float64(monthCount)
	avgExpense := totalExpense.InexactFloat64() / float64(monthCount)
	passiveIncome := totalPassive.InexactFloat64() / float64(monthCount)

	totalAssets := decimal.Zero
	liquidAssets := decimal.Zero
	for _, a := range assets {
		totalAssets = totalAssets.Add(a.Value)
		if a.Type.IsLiquid() {
			liquidAssets = liquidAssets.Add(a.Value)
		}
	}
	totalLiabilities := decimal.Zero
	for _, l := range liabilities {
		totalLiabilities = totalLiabilities.Add(l.Amount)
	}

	emergencyFundMonths := 0.0
	if avgExpense > 0 {
		emergencyFundMonths = liquidAssets.InexactFloat64() / avgExpense
	}

	complianceScore := 0
	if len(rules) > 0 {
		compliant := 0
		for _, r := range rules {
			if r.IsCompliant {
				compliant++
			}
		}
		complianceScore = int(math.Round(100 * float64(compliant) / float64(len(rules))))
	}

	metrics := PyramidMetrics{
		AvgIncome:           avgIncome,
		AvgExpense:          avgExpense,
		EmergencyFundMonths: emergencyFundMonths,
		PassiveIncome:       passiveIncome,
		NetWorth:            totalAssets.Sub(totalLiabilities).InexactFloat64(),
		ComplianceScore:     complianceScore,
	}
	levelID := LevelFromMetrics(metrics)

	// Diagnostics are evaluated independently of the ladder; each message
	// has its own trigger.
	var reasons []string
	if avgIncome <= avgExpense {
		reasons = append(reasons, "Survival trap: income is not yet keeping up with average living costs.")
	}
	if emergencyFundMonths < 6 {
		reasons = append(reasons, "Weak foundation: the liquid reserve is below 6 months. One setback can knock you down.")
	}
	if complianceScore < 75 {
		reasons = append(reasons, "Lacking discipline: the golden-rule compliance score is low. Be stricter with yourself.")
	}
	if passiveIncome == 0 && levelID >= 2 {
		reasons = append(reasons, "Labor-bound: money is not yet working for you. Stop working and income stops.")
	}
	if len(reasons) == 0 {
		reasons = []string{"Your finances are moving along the Lead Up progression track."}
	}

	return PyramidStatus{
		CurrentLevel:        levelInfo(levelID),
		Metrics:             metrics,
		Reasons:             reasons,
		NextLevelConditions: nextLevelConditions(levelID),
		Actions7d:           pyramidActions(levelID),
	}
}

// nextLevelConditions is static unlock guidance keyed by the current level.
func nextLevelConditions(level int) []string {
	switch level {
	case 1:
		return []string{
			"Cut your 3 most wasteful 'want' expenses completely",
			"Record 100% of spending without missing a single dong",
		}
	case 2:
		return []string{
			"Grow the emergency fund to 6 months of spending",
			"Pay yourself at least 10% of income every month",
		}
	case 3:
		return []string{
			"Raise the reserve to a full 12 months",
			"Invest in at least one high-ROI skill course",
		}
	case 4:
		return []string{
			"Create at least one passive income source (ETF or digital product)",
			"Live below your means 90% of the time",
		}
	case 5:
		return []string{
			"Bring passive income to 100% of living costs",
			"Build systems that run the business without you",
		}
	case 6:
		return []string{
			"Set up a trust fund and an inheritance plan",
			"Reach a perfect 100% golden-rule discipline score",
		}
	default:
		return []string{"Keep a clear mind and give back to the community"}
	}
}

// pyramidActions is the 7-day action list keyed by the current level.
func pyramidActions(level int) []string {
	switch level {
	case 1:
		return []string{
			"Cut your 3 leakiest expenses (snacks, bubble tea, junk apps) to keep at least 500k over the next 7 days.",
			"Cancel immediately every subscription you use less than twice a month.",
			"Run a 24h no-spend challenge: not a single dong next Wednesday.",
		}
	case 2:
		return []string{
			"Auto-transfer 10% of income into the emergency fund the moment it arrives this week.",
			"List and sell 3 unused possessions to recover at least 1 million in surplus.",
			"Log 100% of daily spending in the app, down to 2,000d of parking.",
		}
	case 3:
		return []string{
			"Raise the reserve contribution to 20% of surplus income with this week's paycheck.",
			"Spend 2 hours on Saturday evening researching ETF portfolios (VN30/VN100) to start accumulating.",
			"Invest at least 500k today in one book or skill course that creates income fast.",
		}
	case 4:
		return []string{
			"Review all debts and clear the highest-interest one within 7 days.",
			"Set up or upgrade asset protection (insurance) now that the reserve covers 12 months.",
			"Spend a weekend afternoon surveying 2 cashflow-positive properties.",
		}
	case 5:
		return []string{
			"Automate one business workflow to free 5 hours a week for yourself.",
			"Move 30% of this month's surplus into cashflow assets (dividend stocks, rentals).",
			"Outline one digital product (ebook or course) built on your expertise.",
		}
	case 6:
		return []string{
			"Reinvest 100% of returns from current channels this week to maximize compounding.",
			"Book a legal advisor to draft the family trust plan.",
			"Optimize the tax structure of current business cashflows for at least 5% more net profit.",
		}
	default:
		return []string{
			"Move 5% of this week's net profit into a community or strategic charity fund.",
			"Spend 2 hours mentoring one promising person in the community.",
			"Finish the final draft of the 100-year legacy plan.",
		}
	}
}
