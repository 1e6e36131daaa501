package domain

import "time"

// TaskPillar groups journey tasks by the habit they build.
type TaskPillar string

const (
	PillarIncome     TaskPillar = "income"
	PillarExpense    TaskPillar = "expense"
	PillarProtection TaskPillar = "protection"
	PillarInvestment TaskPillar = "investment"
	PillarMindset    TaskPillar = "mindset"
)

// JourneyTask is one day of the 30-day money habit journey. The task list is
// static content; only the per-user progress is persisted.
type JourneyTask struct {
	Day          int        `json:"day"`
	Week         int        `json:"week"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Action       string     `json:"action"`
	CoachMessage string     `json:"coachMessage"`
	Pillar       TaskPillar `json:"pillar"`
}

// JourneyProgress records a user's completion state for one journey day.
type JourneyProgress struct {
	UserID      string     `json:"userID"`
	Day         int        `json:"day"`
	Completed   bool       `json:"completed"`
	Note        string     `json:"note,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// JourneyTasks is the fixed 30-day curriculum, four weeks of daily tasks.
var JourneyTasks = []JourneyTask{
	// Week 1 - awareness
	{Day: 1, Week: 1, Title: "Full journal", Description: "Today, write down 100% of what you spend, down to the smallest item (parking, tea).", Action: "Record every transaction today", CoachMessage: "Don't judge, just observe where your money goes.", Pillar: PillarExpense},
	{Day: 2, Week: 1, Title: "Need vs Want", Description: "Review yesterday's spending. Which items were a NEED (survival) and which a WANT (emotion)?", Action: "Classify yesterday's expenses", CoachMessage: "Recognition is the first step of change.", Pillar: PillarExpense},
	{Day: 3, Week: 1, Title: "The surprise expense", Description: "Find one expense from the past month that startles you.", Action: "Identify your most wasteful expense", CoachMessage: "Sometimes we spend unconsciously. Be mindful.", Pillar: PillarMindset},
	{Day: 4, Week: 1, Title: "Three-day total", Description: "Add up the last three days of spending. Times ten, that is roughly your month.", Action: "Total your 3-day spending", CoachMessage: "Numbers don't lie.", Pillar: PillarExpense},
	{Day: 5, Week: 1, Title: "Bad habit", Description: "Do you shop when you're sad? Over-treat friends?", Action: "Name one bad money habit", CoachMessage: "Know yourself and you win every battle.", Pillar: PillarMindset},
	{Day: 6, Week: 1, Title: "24h of stillness", Description: "Commit to buying nothing beyond basic needs (food, transport) for 24 hours.", Action: "Spend nothing on WANTs today", CoachMessage: "Feel the calm of not reaching for your wallet.", Pillar: PillarExpense},
	{Day: 7, Week: 1, Title: "Money manifesto", Description: "Write three answers to: \"How do I want money to serve me?\"", Action: "Write down what money is for", CoachMessage: "Money is the tool, you are the owner.", Pillar: PillarMindset},

	// Week 2 - control
	{Day: 8, Week: 2, Title: "Category limit", Description: "Pick one category (e.g. eating out) and set a maximum for this week.", Action: "Set a limit for one category", CoachMessage: "Small discipline builds big freedom.", Pillar: PillarExpense},
	{Day: 9, Week: 2, Title: "Cut one purchase", Description: "Pick one WANT you were planning to buy and cancel it.", Action: "Cancel one planned purchase", CoachMessage: "You just earned money by not spending it.", Pillar: PillarExpense},
	{Day: 10, Week: 2, Title: "Weekly budget", Description: "Draft a simple budget for the next 7 days (food, transport, other).", Action: "Write this week's budget", CoachMessage: "A map keeps you from getting lost.", Pillar: PillarExpense},
	{Day: 11, Week: 2, Title: "Pay yourself first", Description: "Move 5-10% of income (or any amount) into savings right now.", Action: "Make one savings transfer", CoachMessage: "Treat savings as the most important bill to pay.", Pillar: PillarInvestment},
	{Day: 12, Week: 2, Title: "Midpoint check", Description: "Compare total income and total spending over the last 7 days.", Action: "Review your 7-day cashflow", CoachMessage: "Positive or negative? Face the truth.", Pillar: PillarIncome},
	{Day: 13, Week: 2, Title: "Adjust", Description: "If day 12 came out negative, find a cut for tomorrow.", Action: "Adjust your spending plan", CoachMessage: "Flexibility is the key to managing money.", Pillar: PillarExpense},
	{Day: 14, Week: 2, Title: "No-spend day", Description: "A full day with zero spending (bring food from home).", Action: "Complete the zero-dong challenge", CoachMessage: "You are stronger than the urge to buy.", Pillar: PillarExpense},

	// Week 3 - protection
	{Day: 15, Week: 3, Title: "Start the emergency fund", Description: "Open a separate account or piggy bank for your emergency fund. Even 100k counts.", Action: "Create a home for the emergency fund", CoachMessage: "A journey of a thousand miles starts with one step.", Pillar: PillarProtection},
	{Day: 16, Week: 3, Title: "Safety target", Description: "Work out what three months of living costs means for you.", Action: "Compute your emergency fund target", CoachMessage: "This is the number of peace of mind.", Pillar: PillarProtection},
	{Day: 17, Week: 3, Title: "Automate", Description: "Schedule an automatic transfer into savings if your bank supports it.", Action: "Set up automatic saving", CoachMessage: "Don't rely on willpower, rely on systems.", Pillar: PillarProtection},
	{Day: 18, Week: 3, Title: "Face the debt", Description: "List every debt you have, with interest rate and due date.", Action: "List your debts", CoachMessage: "Light dispels the fear of the dark.", Pillar: PillarProtection},
	{Day: 19, Week: 3, Title: "Debt-kill plan", Description: "Pick the smallest or highest-interest debt to pay off first.", Action: "Plan to clear one debt", CoachMessage: "Every dong repaid is a step closer to freedom.", Pillar: PillarProtection},
	{Day: 20, Week: 3, Title: "20-day review", Description: "Look at your net worth as it stands today.", Action: "Open the net worth module", CoachMessage: "Getting richer or poorer? Adjust.", Pillar: PillarInvestment},
	{Day: 21, Week: 3, Title: "Credit yourself", Description: "Write three things you now do better with money than three weeks ago.", Action: "Write 3 positives", CoachMessage: "Be proud of the effort you've made.", Pillar: PillarMindset},

	// Week 4 - momentum
	{Day: 22, Week: 4, Title: "Keep income above spending", Description: "Check whether you spent less than you earned this week.", Action: "Confirm positive cashflow", CoachMessage: "This is golden rule number one.", Pillar: PillarIncome},
	{Day: 23, Week: 4, Title: "Savings streak", Description: "How many days in a row have you saved?", Action: "Add to the piggy bank or account", CoachMessage: "Consistency beats big amounts.", Pillar: PillarInvestment},
	{Day: 24, Week: 4, Title: "Review your WANTs", Description: "Re-read your wish list. Anything you no longer care about?", Action: "Delete outdated wants", CoachMessage: "Tastes change; don't let money get stuck in the past.", Pillar: PillarExpense},
	{Day: 25, Week: 4, Title: "90-day goal", Description: "What do you want in three months? (Debt X cleared, or Y saved.)", Action: "Write your 3-month goal", CoachMessage: "A clear goal makes a clear road.", Pillar: PillarMindset},
	{Day: 26, Week: 4, Title: "Visualize", Description: "Imagine standing on the next level of the financial pyramid. How does it feel?", Action: "Spend 5 minutes visualizing success", CoachMessage: "Mindset shapes reality.", Pillar: PillarMindset},
	{Day: 27, Week: 4, Title: "Commit", Description: "Write a commitment to yourself about keeping financial discipline.", Action: "Write your financial commitment", CoachMessage: "A promise to yourself is the most sacred promise.", Pillar: PillarMindset},
	{Day: 28, Week: 4, Title: "Emergency fund check", Description: "How much has your emergency fund grown since day 15?", Action: "Update the emergency fund balance", CoachMessage: "Peace of mind is growing.", Pillar: PillarProtection},
	{Day: 29, Week: 4, Title: "Compare", Description: "Compare your money mindset today with day 1.", Action: "Write how you have changed", CoachMessage: "You are very different now.", Pillar: PillarMindset},
	{Day: 30, Week: 4, Title: "Graduation", Description: "Assess whether you qualify for the next level of the financial pyramid.", Action: "Check the financial pyramid", CoachMessage: "Congratulations! Get ready for the next journey.", Pillar: PillarMindset},
}
