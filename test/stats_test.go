//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/ascend/internal/stats"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestStats() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.newLoggedUser(ctx)

	resp, body := s.doRequest(ctx, "GET", "/stats/muscle-groups", user.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var empty stats.Result
	require.NoError(t, json.Unmarshal(body, &empty))
	s.Equal(stats.StatusError, empty.Status)

	group := "Grp" + gofakeit.LetterN(8)
	today := time.Now().UTC().Format("2006-01-02")
	old := time.Now().UTC().AddDate(0, 0, -30).Format("2006-01-02")

	for _, req := range []map[string]any{
		{
			"name": "today", "date": today,
			"workout_sets": []any{
				setReq("Row "+group, []string{group}, 10, ptr("50")),
				setReq("Curl "+group, []string{group, "Arms"}, 12, ptr("12.5")),
			},
		},
		{
			"name": "last month", "date": old,
			"workout_sets": []any{setReq("Old Press "+group, []string{"Shoulders"}, 5, ptr("40"))},
		},
	} {
		resp, body := s.doRequest(ctx, "POST", "/sessions", user.Token, req)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	}

	resp, body = s.doRequest(ctx, "GET", "/stats/volume", user.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var volume struct {
		Volume float64 `json:"volume"`
	}
	require.NoError(t, json.Unmarshal(body, &volume))
	// 10*50 + 12*12.5, the old session is outside the window
	s.Equal(650.0, volume.Volume)

	resp, body = s.doRequest(ctx, "GET", "/stats/muscle-groups", user.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var groups stats.Result
	require.NoError(t, json.Unmarshal(body, &groups))
	s.Equal(stats.StatusSuccess, groups.Status)
	s.ElementsMatch([]string{"Arms", group}, groups.Report)

	resp, body = s.doRequest(ctx, "GET", "/stats/recent-exercises", user.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var recent stats.Result
	require.NoError(t, json.Unmarshal(body, &recent))
	s.Equal([]string{"Curl " + group, "Row " + group}, recent.Report)

	// public, case-insensitive lookup
	resp, body = s.doRequest(ctx, "GET", "/stats/exercises?group="+strings.ToLower(group), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var byGroup stats.Result
	require.NoError(t, json.Unmarshal(body, &byGroup))
	s.Equal([]string{"Curl " + group, "Row " + group}, byGroup.Exercises)
}

type mcpSecretTransport struct {
	secret string
	next   http.RoundTripper
}

func (m *mcpSecretTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("X-MCP-Secret", m.secret)
	return m.next.RoundTrip(req)
}

func (s *IntegrationTestSuite) TestMCPTools() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user := s.newLoggedUser(ctx)
	resp, body := s.doRequest(ctx, "POST", "/sessions", user.Token, map[string]any{
		"name":         "mcp",
		"workout_sets": []any{setReq("Hip Thrust", []string{"Glutes"}, 10, ptr("100"))},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	client := mcp.NewClient(&mcp.Implementation{Name: "integration-test", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: serverEndpoint + "/mcp",
		HTTPClient: &http.Client{
			Transport: &mcpSecretTransport{secret: testMCPSecret, next: http.DefaultTransport},
		},
	}, nil)
	require.NoError(t, err)
	defer session.Close()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_workout_volume",
		Arguments: map[string]any{"user_id": user.ID},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	text := res.Content[0].(*mcp.TextContent).Text
	s.JSONEq(fmt.Sprintf(`{"user_id":%d,"window_days":14,"total_volume":1000}`, user.ID), text)

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_workout_musclegroups",
		Arguments: map[string]any{"user_id": user.ID},
	})
	require.NoError(t, err)
	s.Contains(res.Content[0].(*mcp.TextContent).Text, "Glutes")
}
