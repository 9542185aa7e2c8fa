package insight

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/VivekbirN/SDP-project/models"
	"github.com/shopspring/decimal"
)

// HighUsageUnits is the consumption above which the latest bill earns the
// high-usage tips instead of the efficient-usage ones.
const HighUsageUnits = 500

// BillReader is the read-only view of the bill store the advisor needs.
type BillReader interface {
	ListAll(ctx context.Context, filter models.BillFilter) ([]models.Bill, error)
	FindLatestCreated(ctx context.Context, filter models.BillFilter) (*models.Bill, error)
}

// Rule names, in priority order.
const (
	RuleGreeting    = "greeting"
	RuleTips        = "tips"
	RuleBillUsage   = "bill_usage"
	RuleElectricity = "electricity"
	RuleWater       = "water"
	RuleGas         = "gas"
	RuleThanks      = "thanks"
	RuleFallback    = "fallback"
)

type replyFunc func(ctx context.Context, a *Advisor, message string) (string, error)

// rule matches when the lowercased message contains any trigger.
type rule struct {
	name     string
	triggers []string
	reply    replyFunc
}

func (r rule) matches(message string) bool {
	for _, t := range r.triggers {
		if strings.Contains(message, t) {
			return true
		}
	}
	return false
}

// rules are evaluated first-match-wins; order is priority.
var rules = []rule{
	{name: RuleGreeting, triggers: []string{"hi", "hello", "hey"}, reply: fixed(greetingReply)},
	{name: RuleTips, triggers: []string{"tip", "save", "reduce"}, reply: tipsReply},
	{name: RuleBillUsage, triggers: []string{"bill", "usage"}, reply: billUsageReply},
	{name: RuleElectricity, triggers: []string{"electricity"}, reply: fixed(electricityTips)},
	{name: RuleWater, triggers: []string{"water"}, reply: fixed(waterTips)},
	{name: RuleGas, triggers: []string{"gas"}, reply: fixed(gasTips)},
	{name: RuleThanks, triggers: []string{"thank"}, reply: fixed(thanksReply)},
}

var fallbackRule = rule{name: RuleFallback, reply: fixed(fallbackReply)}

// Advisor answers free-text questions about the user's bills.
type Advisor struct {
	bills  BillReader
	logger *slog.Logger
}

// NewAdvisor creates an advisor reading from the given store.
func NewAdvisor(bills BillReader, logger *slog.Logger) *Advisor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Advisor{
		bills:  bills,
		logger: logger.With("component", "advisor"),
	}
}

// Classify returns the name of the rule that handles the message.
func (a *Advisor) Classify(message string) string {
	return classify(strings.ToLower(message)).name
}

// Reply classifies the message and renders the matching reply.
func (a *Advisor) Reply(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}
	lower := strings.ToLower(message)
	r := classify(lower)
	a.logger.Debug("Advisor rule matched", "rule", r.name)
	return r.reply(ctx, a, lower)
}

func classify(lower string) rule {
	for _, r := range rules {
		if r.matches(lower) {
			return r
		}
	}
	return fallbackRule
}

func fixed(text string) replyFunc {
	return func(context.Context, *Advisor, string) (string, error) {
		return text, nil
	}
}

// tipsReply looks at the latest bill of the whole collection. With no bill
// at all it falls through to the efficient-usage block.
func tipsReply(ctx context.Context, a *Advisor, _ string) (string, error) {
	latest, err := a.bills.FindLatestCreated(ctx, models.BillFilter{})
	if err != nil {
		return "", fmt.Errorf("finding latest bill: %w", err)
	}
	if latest != nil && latest.UnitsConsumed > HighUsageUnits {
		return fmt.Sprintf(highUsageTips, formatNumber(latest.UnitsConsumed)), nil
	}
	return efficientUsageTips, nil
}

// billUsageReply summarises the latest bill against the averages of the same
// set, restricted to a utility when the message names one.
func billUsageReply(ctx context.Context, a *Advisor, message string) (string, error) {
	utility := mentionedUtility(message)
	bills, err := a.bills.ListAll(ctx, models.BillFilter{UtilityType: utility})
	if err != nil {
		return "", fmt.Errorf("listing bills: %w", err)
	}

	latest := latestCreated(bills)
	if latest == nil {
		if utility != "" {
			return noBillsForUtility, nil
		}
		return noBillsYet, nil
	}

	totals := totalsOf(bills)
	subject := "Your latest bill"
	if utility != "" {
		subject = "Your latest " + latest.UtilityType + " bill"
	}
	return fmt.Sprintf(billSummary,
		subject,
		formatNumber(latest.UnitsConsumed),
		latest.Month,
		latest.Year,
		formatNumber(latest.Amount),
		decimal.NewFromFloat(totals.AverageUnits).StringFixed(1),
		decimal.NewFromFloat(totals.AverageAmount).StringFixed(2),
		decimal.NewFromFloat(models.CostPerUnit(latest.Amount, latest.UnitsConsumed)).StringFixed(3),
	), nil
}

// mentionedUtility returns the first utility named in the message, checked
// in models.UtilityTypes order, or "".
func mentionedUtility(message string) string {
	for _, u := range models.UtilityTypes {
		if strings.Contains(message, u) {
			return u
		}
	}
	return ""
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
