package domain

import (
	"context"
	"fmt"

	"github.com/louisbranch/dicer/internal/services/dice/roller"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Roller rolls and normalizes dice expressions.
type Roller interface {
	Roll(ctx context.Context, req roller.Request) (roller.Result, error)
	Normalize(ctx context.Context, expression string) (string, []string, error)
}

// RollExpressionInput represents the MCP tool input for rolling an expression.
type RollExpressionInput struct {
	Expression string `json:"expression" jsonschema:"dice expression such as 2d6+3-1d4"`
	Seed       *int64 `json:"seed,omitempty" jsonschema:"optional seed to replay a previous roll"`
}

// RollExpressionTerm represents the draws for one dice term.
type RollExpressionTerm struct {
	Term    string `json:"term" jsonschema:"signed dice term, e.g. +2d6"`
	Results []int  `json:"results" jsonschema:"individual die results"`
	Total   int64  `json:"total" jsonschema:"signed contribution of the term"`
}

// RollExpressionResult represents the MCP tool output for rolling an expression.
type RollExpressionResult struct {
	Expression string               `json:"expression" jsonschema:"expression as submitted"`
	Normalized string               `json:"normalized" jsonschema:"canonical form of the expression"`
	Terms      []string             `json:"terms" jsonschema:"signed terms in expression order"`
	Total      int64                `json:"total" jsonschema:"rolled total"`
	Minimum    int64                `json:"minimum" jsonschema:"lowest attainable total"`
	Maximum    int64                `json:"maximum" jsonschema:"highest attainable total"`
	Rolls      []RollExpressionTerm `json:"rolls" jsonschema:"draws for each dice term"`
	Seed       int64                `json:"seed" jsonschema:"seed used for the roll"`
	SeedSource string               `json:"seed_source" jsonschema:"seed source (CLIENT or SERVER)"`
}

// NormalizeExpressionInput represents the MCP tool input for normalizing an expression.
type NormalizeExpressionInput struct {
	Expression string `json:"expression" jsonschema:"dice expression to normalize"`
}

// NormalizeExpressionResult represents the MCP tool output for normalizing an expression.
type NormalizeExpressionResult struct {
	Normalized string   `json:"normalized" jsonschema:"canonical form of the expression"`
	Terms      []string `json:"terms" jsonschema:"signed terms in expression order"`
}

// RollExpressionTool defines the MCP tool schema for rolling expressions.
func RollExpressionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "roll_dice_expression",
		Description: "Rolls a dice expression such as 2d6+3 and reports the total with its attainable bounds",
	}
}

// NormalizeExpressionTool defines the MCP tool schema for normalizing expressions.
func NormalizeExpressionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "normalize_dice_expression",
		Description: "Validates a dice expression and returns its canonical form and signed terms",
	}
}

// RollExpressionHandler rolls an expression through r.
func RollExpressionHandler(r Roller) mcp.ToolHandlerFor[RollExpressionInput, RollExpressionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RollExpressionInput) (*mcp.CallToolResult, RollExpressionResult, error) {
		if r == nil {
			return nil, RollExpressionResult{}, fmt.Errorf("dice roller is not configured")
		}
		runCtx, cancel := context.WithTimeout(ctx, rollCallTimeout)
		defer cancel()

		result, err := r.Roll(runCtx, roller.Request{Expression: input.Expression, Seed: input.Seed})
		if err != nil {
			return nil, RollExpressionResult{}, fmt.Errorf("roll dice expression: %w", err)
		}

		rolls := make([]RollExpressionTerm, 0, len(result.Outcome.Rolls))
		for _, roll := range result.Outcome.Rolls {
			rolls = append(rolls, RollExpressionTerm{
				Term:    roll.Entity.String(),
				Results: roll.Results,
				Total:   roll.Total,
			})
		}
		return nil, RollExpressionResult{
			Expression: result.Expression,
			Normalized: result.Normalized,
			Terms:      result.Terms,
			Total:      result.Outcome.Total,
			Minimum:    result.Outcome.Minimum,
			Maximum:    result.Outcome.Maximum,
			Rolls:      rolls,
			Seed:       result.Seed,
			SeedSource: string(result.SeedSource),
		}, nil
	}
}

// NormalizeExpressionHandler normalizes an expression through r.
func NormalizeExpressionHandler(r Roller) mcp.ToolHandlerFor[NormalizeExpressionInput, NormalizeExpressionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input NormalizeExpressionInput) (*mcp.CallToolResult, NormalizeExpressionResult, error) {
		if r == nil {
			return nil, NormalizeExpressionResult{}, fmt.Errorf("dice roller is not configured")
		}
		runCtx, cancel := context.WithTimeout(ctx, rollCallTimeout)
		defer cancel()

		normalized, terms, err := r.Normalize(runCtx, input.Expression)
		if err != nil {
			return nil, NormalizeExpressionResult{}, fmt.Errorf("normalize dice expression: %w", err)
		}
		return nil, NormalizeExpressionResult{Normalized: normalized, Terms: terms}, nil
	}
}
