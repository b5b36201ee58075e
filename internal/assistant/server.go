package assistant

import (
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	serverName    = "ascend-assistant"
	serverVersion = "1.0.0"
)

// NewServer builds the MCP server exposing workout context for exercise
// recommendations. The backend mounts it at /mcp, cmd/ascend_mcp serves it on stdio.
func NewServer(service statsService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_volume",
		Description: "Returns the total lifted volume (sum of weight x reps) of the user over the recent window (default 14 days). Arg: user_id. Use to judge how hard the user has been training lately.",
	}, h.GetWorkoutVolumeTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_musclegroups",
		Description: "Returns the distinct muscle groups (exercise tags) the user trained in the recent window, sorted. Arg: user_id. Use to find muscle groups that were neglected.",
	}, h.GetWorkoutMuscleGroupsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercises_by_musclegroup",
		Description: "Returns all catalog exercises tagged with the given muscle group (case-insensitive). Arg: muscle_group. Use to pick candidate exercises for a recommendation.",
	}, h.GetExercisesByMuscleGroupTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_recent_exercises",
		Description: "Returns the distinct exercises the user performed in the recent window, sorted. Arg: user_id. Use to avoid recommending what was just done.",
	}, h.GetRecentExercisesTool())

	return s
}

// NewHTTPHandler serves s over the streamable HTTP transport, traced per request.
func NewHTTPHandler(s *mcp.Server) http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s
	}, nil)
	return otelhttp.NewHandler(streamable, "mcp.streamable",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return "mcp." + strings.ToLower(r.Method)
		}),
	)
}
