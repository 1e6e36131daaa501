package engine

// IncomeTier buckets a monthly income into one of four coaching tiers.
// Thresholds are monthly VND; the boundary values belong to the lower tier.
type IncomeTier string

const (
	TierUnder500MYear IncomeTier = "UNDER_500M_YEAR" // <= 42M/month
	Tier20MMonth      IncomeTier = "20M_MONTH"       // <= 50M/month
	Tier100MMonth     IncomeTier = "100M_MONTH"      // <= 200M/month
	Tier1BMonth       IncomeTier = "1B_MONTH"        // above
)

// JarKey identifies one of the six allocation jars.
type JarKey string

const (
	JarEssential JarKey = "ESSENTIAL"
	JarEducation JarKey = "EDUCATION"
	JarEmergency JarKey = "EMERGENCY"
	JarInvest    JarKey = "INVEST"
	JarFun       JarKey = "FUN"
	JarGive      JarKey = "GIVE"
)

// PlaybookLevel is the coarse maturity stage used by the allocation side of
// the playbook. LEGACY is declared for completeness but the level computation
// never yields it; the seven-step numeric pyramid ladder is the authoritative
// progression scale and this enum only drives allocation-side action plans.
type PlaybookLevel string

const (
	LevelSurvival  PlaybookLevel = "SURVIVAL"
	LevelStability PlaybookLevel = "STABILITY"
	LevelGrowth    PlaybookLevel = "GROWTH"
	LevelWealth    PlaybookLevel = "WEALTH"
	LevelLegacy    PlaybookLevel = "LEGACY"
)

// JarBounds is one row of the per-tier jar table: the allowed percentage
// range for a jar plus its coaching note.
type JarBounds struct {
	Key    JarKey
	Label  string
	MinPct int
	MaxPct int
	Note   string
}

// tierJars holds the baseline jar tables, one ordered set of six jars per
// income tier. Rows with MinPct == MaxPct are fixed allocations.
var tierJars = map[IncomeTier][]JarBounds{
	TierUnder500MYear: {
		{Key: JarEssential, Label: "Essentials", MinPct: 10, MaxPct: 55, Note: "Living costs and family; target below 55%."},
		{Key: JarEducation, Label: "Education", MinPct: 10, MaxPct: 20, Note: "Learning that raises your personal ROI; the most important jar."},
		{Key: JarEmergency, Label: "Emergency", MinPct: 10, MaxPct: 20, Note: "Non-negotiable: this fund must exist."},
		{Key: JarInvest, Label: "Invest", MinPct: 5, MaxPct: 80, Note: "Multiply money, but only once the reserve is solid."},
		{Key: JarFun, Label: "Fun", MinPct: 5, MaxPct: 10, Note: "Live 10% above standard to keep motivation."},
		{Key: JarGive, Label: "Give", MinPct: 1, MaxPct: 10, Note: "Plant seeds; giving comes back."},
	},
	Tier20MMonth: {
		{Key: JarEssential, Label: "Essentials", MinPct: 50, MaxPct: 55, Note: "Keep living below your means."},
		{Key: JarEducation, Label: "Education", MinPct: 15, MaxPct: 15, Note: "Skills that create income fast (sales, AI)."},
		{Key: JarEmergency, Label: "Emergency", MinPct: 10, MaxPct: 10, Note: "Build a 6-month expense reserve."},
		{Key: JarInvest, Label: "Invest", MinPct: 15, MaxPct: 15, Note: "ETFs, gold or steady stock accumulation."},
		{Key: JarFun, Label: "Fun", MinPct: 5, MaxPct: 5, Note: "Reward yourself with discipline."},
		{Key: JarGive, Label: "Give", MinPct: 5, MaxPct: 5, Note: "What you give remains."},
	},
	Tier100MMonth: {
		{Key: JarEssential, Label: "Essentials", MinPct: 40, MaxPct: 40, Note: "Keep lifestyle steady."},
		{Key: JarEducation, Label: "Education", MinPct: 10, MaxPct: 10, Note: "Mentoring and high-end coaching."},
		{Key: JarEmergency, Label: "Emergency", MinPct: 10, MaxPct: 10, Note: "A 1-2 year reserve."},
		{Key: JarInvest, Label: "Invest", MinPct: 30, MaxPct: 30, Note: "Suburban real estate, cashflow assets."},
		{Key: JarFun, Label: "Fun", MinPct: 5, MaxPct: 5, Note: "Enjoy quality experiences."},
		{Key: JarGive, Label: "Give", MinPct: 5, MaxPct: 5, Note: "Strategic charity."},
	},
	Tier1BMonth: {
		{Key: JarEssential, Label: "Essentials", MinPct: 20, MaxPct: 20, Note: "Optimize tax and operations."},
		{Key: JarEducation, Label: "Education", MinPct: 10, MaxPct: 10, Note: "Macro strategy and legacy."},
		{Key: JarEmergency, Label: "Emergency", MinPct: 10, MaxPct: 10, Note: "A 5-year reserve."},
		{Key: JarInvest, Label: "Invest", MinPct: 50, MaxPct: 50, Note: "Own systems and businesses."},
		{Key: JarFun, Label: "Fun", MinPct: 5, MaxPct: 5, Note: "Experience the world."},
		{Key: JarGive, Label: "Give", MinPct: 5, MaxPct: 5, Note: "Serve the wider community."},
	},
}

// JarTable returns the ordered jar bounds for a tier.
func JarTable(tier IncomeTier) []JarBounds {
	return tierJars[tier]
}

// InvestmentLadderStep is one rung of the seven-step investment ladder,
// static educational content served alongside the playbook.
type InvestmentLadderStep struct {
	Step        int      `json:"step"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Suitability string   `json:"suitability"`
	RedFlags    []string `json:"redFlags"`
}

// InvestmentLadder lists investment vehicles from safest to most demanding.
var InvestmentLadder = []InvestmentLadderStep{
	{Step: 1, Title: "Savings deposits, gold, dollars", Description: "The goal is keeping money and beating inflation. You won't get rich here, but you'll sleep well.", Suitability: "Beginners still building their financial foundation.", RedFlags: []string{"Unusually high promised interest", "Depositing with unreliable institutions"}},
	{Step: 2, Title: "Passive ETF investing (VN30, VN100, Diamond)", Description: "The market works for you. Disciplined monthly accumulation compounds dramatically over decades.", Suitability: "Busy people who want durable wealth from compound interest.", RedFlags: []string{"Withdrawing early", "Breaking the discipline midway"}},
	{Step: 3, Title: "Value stocks", Description: "Own a piece of a good business; collect dividends and long-term capital gains.", Suitability: "Those with basic analysis skills.", RedFlags: []string{"Speculating on rumors", "Over-using margin"}},
	{Step: 4, Title: "Suburban real estate (30-50km radius)", Description: "Zoned land near infrastructure or large employers. Prefer titled residential land with rental cashflow.", Suitability: "Larger capital, legal literacy, 5-10 year horizon.", RedFlags: []string{"Untitled land", "Borrowing above 70%", "No cashflow"}},
	{Step: 5, Title: "Yourself and your personal brand", Description: "Skills, mindset, short-form video channels. The highest-ROI investment there is.", Suitability: "Every level, especially those pushing for an income breakthrough.", RedFlags: []string{"Learning without practice", "Giving up before 30 days"}},
	{Step: 6, Title: "Digital products and sales systems", Description: "Build once, sell n times (apps, courses, ebooks). Near-zero marginal cost.", Suitability: "Experts, influencers, business owners.", RedFlags: []string{"Low-quality products", "No automated operation"}},
	{Step: 7, Title: "Businesses and ecosystems", Description: "Replicate teams, use people and financial leverage to free the leader.", Suitability: "Leaders with a legacy vision.", RedFlags: []string{"Opaque finances", "No transparency with partners"}},
}
