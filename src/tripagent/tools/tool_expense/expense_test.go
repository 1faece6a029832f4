package tool_expense

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripsmith/tripsmith/src/agent"
	"github.com/tripsmith/tripsmith/src/aisdk"
)

func findTool(t *testing.T, name string) agent.Tool {
	t.Helper()
	tools, err := Tools()
	require.NoError(t, err)
	for _, tool := range tools {
		if tool.GetName() == name {
			return tool
		}
	}
	t.Fatalf("tool %s not found", name)
	return nil
}

func execute(t *testing.T, tool agent.Tool, args string) ExpenseOutput {
	t.Helper()
	resp, err := tool.Execute(context.Background(), &aisdk.ToolCall{
		ID:       "call_1",
		Type:     "function",
		Function: aisdk.FunctionCall{Name: tool.GetName(), Arguments: json.RawMessage(args)},
	})
	require.NoError(t, err)
	require.False(t, resp.IsError, string(resp.Content))

	var out ExpenseOutput
	require.NoError(t, json.Unmarshal(resp.Content, &out))
	return out
}

func TestHotelCost(t *testing.T) {
	tool := findTool(t, HotelCostName)
	out := execute(t, tool, `{"price_per_night": 4500, "total_days": 3}`)
	assert.Equal(t, 13500.0, out.Amount)
}

func TestHotelCostRejectsZeroDays(t *testing.T) {
	tool := findTool(t, HotelCostName)
	resp, err := tool.Execute(context.Background(), &aisdk.ToolCall{
		Function: aisdk.FunctionCall{Name: HotelCostName, Arguments: json.RawMessage(`{"price_per_night": 4500, "total_days": -1}`)},
	})
	require.NoError(t, err)
	assert.True(t, resp.IsError)
	assert.Contains(t, string(resp.Content), "must be positive")
}

func TestTotalExpense(t *testing.T) {
	tool := findTool(t, TotalName)
	out := execute(t, tool, `{"costs": [1200.5, 800, 99.5]}`)
	assert.Equal(t, 2100.0, out.Amount)
}

func TestDailyBudget(t *testing.T) {
	tool := findTool(t, DailyBudgetName)
	out := execute(t, tool, `{"total_cost": 9000, "days": 3}`)
	assert.Equal(t, 3000.0, out.Amount)
}

func TestDailyBudgetRejectsZeroDays(t *testing.T) {
	tool := findTool(t, DailyBudgetName)
	resp, err := tool.Execute(context.Background(), &aisdk.ToolCall{
		Function: aisdk.FunctionCall{Name: DailyBudgetName, Arguments: json.RawMessage(`{"total_cost": 9000, "days": -2}`)},
	})
	require.NoError(t, err)
	assert.True(t, resp.IsError)
}
