package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/2beens/ascend/internal/stats"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=assistant_test

type statsService interface {
	TotalVolume(ctx context.Context, userID int) float64
	DistinctMuscleGroups(ctx context.Context, userID int) stats.Result
	DistinctRecentExercises(ctx context.Context, userID int) stats.Result
	ExercisesByMuscleGroup(ctx context.Context, group string) stats.Result
	WindowDays() int
}

// Handler turns tool calls into stats queries. Every tool answers with a JSON
// text block the calling agent can quote back to the user.
type Handler struct {
	service statsService
}

func NewHandler(service statsService) *Handler {
	return &Handler{
		service: service,
	}
}

type UserInput struct {
	UserID int `json:"user_id" jsonschema:"Id of the user the recommendation is for"`
}

type MuscleGroupInput struct {
	MuscleGroup string `json:"muscle_group" jsonschema:"Muscle group tag, e.g. Back, Legs, Chest"`
}

type VolumeOutput struct {
	UserID      int     `json:"user_id"`
	WindowDays  int     `json:"window_days"`
	TotalVolume float64 `json:"total_volume"`
}

func (h *Handler) GetWorkoutVolumeTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		if in.UserID <= 0 {
			return errorResult("user_id must be a positive number"), nil, nil
		}
		return jsonResult(VolumeOutput{
			UserID:      in.UserID,
			WindowDays:  h.service.WindowDays(),
			TotalVolume: h.service.TotalVolume(ctx, in.UserID),
		}), nil, nil
	}
}

func (h *Handler) GetWorkoutMuscleGroupsTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		if in.UserID <= 0 {
			return errorResult("user_id must be a positive number"), nil, nil
		}
		return jsonResult(h.service.DistinctMuscleGroups(ctx, in.UserID)), nil, nil
	}
}

func (h *Handler) GetRecentExercisesTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		if in.UserID <= 0 {
			return errorResult("user_id must be a positive number"), nil, nil
		}
		return jsonResult(h.service.DistinctRecentExercises(ctx, in.UserID)), nil, nil
	}
}

func (h *Handler) GetExercisesByMuscleGroupTool() func(context.Context, *mcp.CallToolRequest, MuscleGroupInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in MuscleGroupInput) (*mcp.CallToolResult, any, error) {
		group := strings.TrimSpace(in.MuscleGroup)
		if group == "" {
			return errorResult("muscle_group is required"), nil, nil
		}
		return jsonResult(h.service.ExercisesByMuscleGroup(ctx, group)), nil, nil
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("Error encoding response: %s", err))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
		IsError: true,
	}
}
