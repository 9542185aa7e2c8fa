package insight

import (
	"context"
	"errors"
	"testing"

	"github.com/VivekbirN/SDP-project/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvisor_Classify(t *testing.T) {
	a := NewAdvisor(&stubReader{}, nil)

	tests := []struct {
		message string
		want    string
	}{
		{"Hello there", RuleGreeting},
		{"HEY", RuleGreeting},
		{"I want tips to save on my electricity bill", RuleTips},
		{"how do I reduce my gas", RuleTips},
		{"show my water bill", RuleBillUsage},
		{"electricity usage", RuleBillUsage},
		{"electricity", RuleElectricity},
		{"water leak", RuleWater},
		{"gas", RuleGas},
		{"thank you", RuleThanks},
		{"what now", RuleFallback},
		// Matching is plain substring containment: "which" contains "hi".
		{"which one", RuleGreeting},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Classify(tt.message))
		})
	}
}

func TestAdvisor_RulesAreOrderedByPriority(t *testing.T) {
	var names []string
	for _, r := range rules {
		names = append(names, r.name)
	}
	assert.Equal(t, []string{
		RuleGreeting, RuleTips, RuleBillUsage, RuleElectricity, RuleWater, RuleGas, RuleThanks,
	}, names)
}

func TestAdvisor_EmptyMessage(t *testing.T) {
	a := NewAdvisor(&stubReader{}, nil)

	_, err := a.Reply(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestAdvisor_FixedReplies(t *testing.T) {
	a := NewAdvisor(&stubReader{}, nil)

	tests := map[string]string{
		"hello":          greetingReply,
		"electricity":    electricityTips,
		"water":          waterTips,
		"gas":            gasTips,
		"thanks a lot":   thanksReply,
		"what can I ask": fallbackReply,
	}
	for message, want := range tests {
		got, err := a.Reply(context.Background(), message)
		require.NoError(t, err, message)
		assert.Equal(t, want, got, message)
	}
}

func TestAdvisor_TipsUseLatestBill(t *testing.T) {
	t.Run("high usage", func(t *testing.T) {
		a := NewAdvisor(&stubReader{bills: []models.Bill{
			bill("old", "January", 2024, "electricity", 200, 90, 0),
			bill("new", "February", 2024, "electricity", 650.5, 300, 1),
		}}, nil)

		got, err := a.Reply(context.Background(), "any tips?")
		require.NoError(t, err)
		assert.Contains(t, got, "your latest bill shows 650.5 units consumed, which is quite high!")
	})

	t.Run("latest under limit", func(t *testing.T) {
		a := NewAdvisor(&stubReader{bills: []models.Bill{
			bill("old", "January", 2024, "electricity", 900, 400, 0),
			bill("new", "February", 2024, "electricity", 300, 140, 1),
		}}, nil)

		got, err := a.Reply(context.Background(), "how can I save")
		require.NoError(t, err)
		assert.Equal(t, efficientUsageTips, got)
	})

	t.Run("no bills falls to efficient usage", func(t *testing.T) {
		a := NewAdvisor(&stubReader{}, nil)

		got, err := a.Reply(context.Background(), "I want tips to save on my electricity bill")
		require.NoError(t, err)
		assert.Equal(t, efficientUsageTips, got)
	})
}

func TestAdvisor_BillUsage(t *testing.T) {
	bills := []models.Bill{
		bill("e1", "January", 2024, "electricity", 99.9, 50, 0),
		bill("e2", "February", 2024, "electricity", 250.5, 125, 1),
		bill("w1", "March", 2024, "water", 10, 20, 2),
	}
	a := NewAdvisor(&stubReader{bills: bills}, nil)

	t.Run("utility specific", func(t *testing.T) {
		got, err := a.Reply(context.Background(), "What was my Electricity bill?")
		require.NoError(t, err)
		assert.Equal(t, "Your latest electricity bill shows 250.5 units consumed in February 2024 for ₹125.\n\n"+
			"Average consumption: 175.2 units\n"+
			"Average amount: ₹87.50\n"+
			"Cost per unit: ₹0.499", got)
	})

	t.Run("whole collection", func(t *testing.T) {
		got, err := a.Reply(context.Background(), "my usage")
		require.NoError(t, err)
		assert.Equal(t, "Your latest bill shows 10 units consumed in March 2024 for ₹20.\n\n"+
			"Average consumption: 120.1 units\n"+
			"Average amount: ₹65.00\n"+
			"Cost per unit: ₹2.000", got)
	})

	t.Run("utility without bills", func(t *testing.T) {
		got, err := a.Reply(context.Background(), "gas bill")
		require.NoError(t, err)
		assert.Equal(t, noBillsForUtility, got)
	})
}

func TestAdvisor_BillUsageWithoutBills(t *testing.T) {
	a := NewAdvisor(&stubReader{}, nil)

	got, err := a.Reply(context.Background(), "show my water bill")
	require.NoError(t, err)
	assert.Equal(t, noBillsForUtility, got)

	got, err = a.Reply(context.Background(), "show my bill")
	require.NoError(t, err)
	assert.Equal(t, noBillsYet, got)
}

func TestAdvisor_ZeroUnitBillHasZeroCostPerUnit(t *testing.T) {
	a := NewAdvisor(&stubReader{bills: []models.Bill{
		bill("w1", "March", 2024, "water", 0, 15, 0),
	}}, nil)

	got, err := a.Reply(context.Background(), "water usage")
	require.NoError(t, err)
	assert.Contains(t, got, "Cost per unit: ₹0.000")
}

func TestAdvisor_PropagatesStoreErrors(t *testing.T) {
	boom := errors.New("store unavailable")
	a := NewAdvisor(&stubReader{err: boom}, nil)

	_, err := a.Reply(context.Background(), "my bill")
	assert.ErrorIs(t, err, boom)

	_, err = a.Reply(context.Background(), "tips please")
	assert.ErrorIs(t, err, boom)

	// Fixed replies never touch the store.
	got, err := a.Reply(context.Background(), "gas")
	require.NoError(t, err)
	assert.Equal(t, gasTips, got)
}
