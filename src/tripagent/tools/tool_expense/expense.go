// Package tool_expense provides the three arithmetic helpers the model
// uses to build the budget breakdown.
package tool_expense

import (
	"context"
	"fmt"

	"github.com/tripsmith/tripsmith/src/agent"
)

// Tool name constants
const (
	HotelCostName   = "estimate_total_hotel_cost"
	TotalName       = "calculate_total_expense"
	DailyBudgetName = "calculate_daily_expense_budget"
)

// HotelCostInput represents the parameters for estimate_total_hotel_cost
type HotelCostInput struct {
	PricePerNight float64 `json:"price_per_night" required:"true" description:"Cost per night"`
	TotalDays     int     `json:"total_days" required:"true" description:"Number of nights"`
}

// TotalExpenseInput represents the parameters for calculate_total_expense
type TotalExpenseInput struct {
	Costs []float64 `json:"costs" required:"true" description:"List of numerical costs to sum up"`
}

// DailyBudgetInput represents the parameters for calculate_daily_expense_budget
type DailyBudgetInput struct {
	TotalCost float64 `json:"total_cost" required:"true" description:"Total trip cost"`
	Days      int     `json:"days" required:"true" description:"Number of days"`
}

// ExpenseOutput is the shared result shape.
type ExpenseOutput struct {
	Amount float64 `json:"amount"`
}

// Tools returns the three calculator tools.
func Tools() ([]agent.Tool, error) {
	hotelCost, err := agent.NewGenericTool(HotelCostName,
		"Calculates total hotel cost: price per night times number of nights.",
		func(ctx context.Context, input HotelCostInput) (ExpenseOutput, error) {
			if input.TotalDays <= 0 {
				return ExpenseOutput{}, fmt.Errorf("total_days must be positive, got %d", input.TotalDays)
			}
			return ExpenseOutput{Amount: input.PricePerNight * float64(input.TotalDays)}, nil
		})
	if err != nil {
		return nil, err
	}

	total, err := agent.NewGenericTool(TotalName,
		"Calculates the total expense of the trip by summing a list of costs.",
		func(ctx context.Context, input TotalExpenseInput) (ExpenseOutput, error) {
			sum := 0.0
			for _, c := range input.Costs {
				sum += c
			}
			return ExpenseOutput{Amount: sum}, nil
		})
	if err != nil {
		return nil, err
	}

	daily, err := agent.NewGenericTool(DailyBudgetName,
		"Calculates the daily expense budget: total cost divided by trip days.",
		func(ctx context.Context, input DailyBudgetInput) (ExpenseOutput, error) {
			if input.Days <= 0 {
				return ExpenseOutput{}, fmt.Errorf("days must be positive, got %d", input.Days)
			}
			return ExpenseOutput{Amount: input.TotalCost / float64(input.Days)}, nil
		})
	if err != nil {
		return nil, err
	}

	return []agent.Tool{hotelCost, total, daily}, nil
}
