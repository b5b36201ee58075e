//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/2beens/ascend/internal/records"
	"github.com/2beens/ascend/internal/workout"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func decodeSession(t *testing.T, body []byte) workout.Session {
	t.Helper()
	var session workout.Session
	require.NoError(t, json.Unmarshal(body, &session))
	return session
}

func favoritePath(exerciseID int) string {
	return fmt.Sprintf("/user/favorites/%d", exerciseID)
}

func (s *IntegrationTestSuite) recordRow(userID, exerciseID int) (decimal.Decimal, int64, *string) {
	var pr decimal.Decimal
	var reps int64
	var dateOfPR *string
	err := s.DB.QueryRow(`
		SELECT personal_record, lifetime_reps, to_char(date_of_pr, 'YYYY-MM-DD')
		FROM exercise_record
		WHERE user_id = $1 AND exercise_id = $2
	`, userID, exerciseID).Scan(&pr, &reps, &dateOfPR)
	require.NoError(s.T(), err)
	return pr, reps, dateOfPR
}

func (s *IntegrationTestSuite) weightLifted(userID int) decimal.Decimal {
	var lifted decimal.Decimal
	require.NoError(s.T(), s.DB.QueryRow(`SELECT lifetime_weight_lifted FROM app_user WHERE id = $1`, userID).Scan(&lifted))
	return lifted
}

func (s *IntegrationTestSuite) count(query string, args ...any) int {
	var n int
	require.NoError(s.T(), s.DB.QueryRow(query, args...).Scan(&n))
	return n
}

func (s *IntegrationTestSuite) TestCreateSession_UpdatesRecords() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.newLoggedUser(ctx)
	squat := fmt.Sprintf("Squat %s", gofakeit.LetterN(6))

	resp, body := s.doRequest(ctx, "POST", "/sessions", user.Token, map[string]any{
		"name":         "Leg day",
		"date":         "2026-02-01",
		"elapsed_time": "01:05:00",
		"workout_sets": []any{
			setReq(squat, []string{"Legs", "Glutes"}, 5, ptr("100")),
			setReq(squat, []string{"Legs"}, 5, ptr("100.04")),
			setReq(squat, nil, 3, ptr("110")),
			setReq("Plank", []string{"Core"}, 60, nil),
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	session := decodeSession(t, body)
	require.Len(t, session.WorkoutSets, 4)
	s.Equal("2026-02-01", session.Date.String())
	s.True(session.WorkoutSets[0].NewPersonalRecord)
	// 100.04 rounds to the stored 100.0, not above the record
	s.False(session.WorkoutSets[1].NewPersonalRecord)
	s.True(session.WorkoutSets[2].NewPersonalRecord)
	s.False(session.WorkoutSets[3].NewPersonalRecord)

	squatID := session.WorkoutSets[0].Exercise.ID
	s.Equal(squatID, session.WorkoutSets[2].Exercise.ID)

	pr, reps, _ := s.recordRow(user.ID, squatID)
	s.True(decimal.NewFromInt(110).Equal(pr), pr.String())
	s.Equal(int64(13), reps)

	plankPR, plankReps, plankDate := s.recordRow(user.ID, session.WorkoutSets[3].Exercise.ID)
	s.True(plankPR.IsZero())
	s.Equal(int64(60), plankReps)
	s.Nil(plankDate)

	resp, body = s.doRequest(ctx, "GET", fmt.Sprintf("/exercises/%d/record", squatID), user.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var rec records.ExerciseRecord
	require.NoError(t, json.Unmarshal(body, &rec))
	s.Equal(squat, rec.ExerciseName)
	s.Equal(int64(13), rec.LifetimeReps)

	// a second session with a lighter weight keeps the record
	resp, body = s.doRequest(ctx, "POST", "/sessions", user.Token, map[string]any{
		"name":         "Leg day 2",
		"workout_sets": []any{setReq(squat, nil, 8, ptr("90"))},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	s.False(decodeSession(t, body).WorkoutSets[0].NewPersonalRecord)

	pr, reps, _ = s.recordRow(user.ID, squatID)
	s.True(decimal.NewFromInt(110).Equal(pr))
	s.Equal(int64(21), reps)

	// 5x100 + 5x100.0 + 3x110 + 8x90
	lifted := s.weightLifted(user.ID)
	s.True(decimal.NewFromInt(2050).Equal(lifted), lifted.String())

	resp, body = s.doRequest(ctx, "GET", "/sessions", user.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sessions []workout.Session
	require.NoError(t, json.Unmarshal(body, &sessions))
	s.Len(sessions, 2)

	// other users can not read it
	other := s.newLoggedUser(ctx)
	resp, _ = s.doRequest(ctx, "GET", fmt.Sprintf("/sessions/%d", session.ID), other.Token, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestCreateSession_Validation() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.newLoggedUser(ctx)

	var before int
	require.NoError(s.T(), s.DB.QueryRow(`SELECT count(*) FROM workout_session WHERE user_id = $1`, user.ID).Scan(&before))

	resp, body := s.doRequest(ctx, "POST", "/sessions", user.Token, map[string]any{
		"name": "Broken",
		"workout_sets": []any{
			setReq("Bench Press", []string{"Chest"}, 5, ptr("80")),
			setReq("Bench Press", nil, -1, ptr("80")),
		},
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Contains(string(body), "errors")

	var after int
	require.NoError(s.T(), s.DB.QueryRow(`SELECT count(*) FROM workout_session WHERE user_id = $1`, user.ID).Scan(&after))
	s.Equal(before, after)

	resp, _ = s.doRequest(ctx, "POST", "/sessions", "", map[string]any{"name": "anon"})
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestCreateSession_ConcurrentRecords() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.newLoggedUser(ctx)
	exercise := fmt.Sprintf("Deadlift %s", gofakeit.LetterN(6))

	weights := make([]int, 12)
	maxWeight := 0
	for i := range weights {
		weights[i] = gofakeit.Number(60, 250)
		if weights[i] > maxWeight {
			maxWeight = weights[i]
		}
	}

	var wg sync.WaitGroup
	statuses := make([]int, len(weights))
	for i, w := range weights {
		wg.Add(1)
		go func(i, w int) {
			defer wg.Done()
			resp, _ := s.doRequest(ctx, "POST", "/sessions", user.Token, map[string]any{
				"name":         fmt.Sprintf("pull %d", i),
				"workout_sets": []any{setReq(exercise, []string{"Back"}, 3, ptr(fmt.Sprintf("%d", w)))},
			})
			statuses[i] = resp.StatusCode
		}(i, w)
	}
	wg.Wait()

	for _, status := range statuses {
		require.Equal(t, http.StatusCreated, status)
	}

	var exerciseID int
	require.NoError(t, s.DB.QueryRow(`SELECT id FROM exercise WHERE name = $1`, exercise).Scan(&exerciseID))

	pr, reps, _ := s.recordRow(user.ID, exerciseID)
	s.True(decimal.NewFromInt(int64(maxWeight)).Equal(pr), "pr %s, want %d", pr, maxWeight)
	s.Equal(int64(3*len(weights)), reps)

	var recordRows int
	require.NoError(t, s.DB.QueryRow(`SELECT count(*) FROM exercise_record WHERE user_id = $1 AND exercise_id = $2`, user.ID, exerciseID).Scan(&recordRows))
	s.Equal(1, recordRows)

	totalLifted := 0
	for _, w := range weights {
		totalLifted += 3 * w
	}
	lifted := s.weightLifted(user.ID)
	s.True(decimal.NewFromInt(int64(totalLifted)).Equal(lifted), "lifted %s, want %d", lifted, totalLifted)
}

func (s *IntegrationTestSuite) TestCreateSession_CreatesCatalogRows() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.newLoggedUser(ctx)
	suffix := gofakeit.LetterN(8)
	exercise := "Hip Thrust " + suffix
	tagA, tagB, tagC := "Glutes "+suffix, "Hamstrings "+suffix, "Core "+suffix

	resp, body := s.doRequest(ctx, "POST", "/sessions", user.Token, map[string]any{
		"name": "Posterior chain",
		"workout_sets": []any{
			setReq(exercise, []string{tagA, tagB}, 10, ptr("80")),
			setReq(exercise, []string{tagA}, 8, ptr("90")),
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	exerciseID := decodeSession(t, body).WorkoutSets[0].Exercise.ID

	s.Equal(1, s.count(`SELECT count(*) FROM exercise WHERE name = $1`, exercise))
	s.Equal(2, s.count(`SELECT count(*) FROM tag WHERE name IN ($1, $2)`, tagA, tagB))
	s.Equal(2, s.count(`SELECT count(*) FROM exercise_tag WHERE exercise_id = $1`, exerciseID))
	s.Equal(2, s.count(`
		SELECT count(*) FROM exercise_tag et JOIN tag t ON t.id = et.tag_id
		WHERE et.exercise_id = $1 AND t.name IN ($2, $3)
	`, exerciseID, tagA, tagB))

	// known exercise, one known tag and one new tag
	resp, body = s.doRequest(ctx, "POST", "/sessions", user.Token, map[string]any{
		"name":         "Posterior chain 2",
		"workout_sets": []any{setReq(exercise, []string{tagA, tagC}, 10, ptr("85"))},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	s.Equal(1, s.count(`SELECT count(*) FROM exercise WHERE name = $1`, exercise))
	s.Equal(3, s.count(`SELECT count(*) FROM tag WHERE name IN ($1, $2, $3)`, tagA, tagB, tagC))
	s.Equal(3, s.count(`SELECT count(*) FROM exercise_tag WHERE exercise_id = $1`, exerciseID))
}

func (s *IntegrationTestSuite) TestCreateSession_ConcurrentNewCatalogEntries() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	const workers = 10
	suffix := gofakeit.LetterN(8)
	sharedTag := "Forearms " + suffix
	sharedExercise := "Farmer Carry " + suffix

	lifters := make([]testUser, workers)
	for i := range lifters {
		lifters[i] = s.newLoggedUser(ctx)
	}

	var wg sync.WaitGroup
	statuses := make([]int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, _ := s.doRequest(ctx, "POST", "/sessions", lifters[i].Token, map[string]any{
				"name": fmt.Sprintf("grip %d", i),
				"workout_sets": []any{
					setReq(sharedExercise, []string{sharedTag}, 1, ptr("40")),
					setReq(fmt.Sprintf("Wrist Curl %s %d", suffix, i), []string{sharedTag}, 12, ptr("10")),
				},
			})
			statuses[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	for _, status := range statuses {
		require.Equal(t, http.StatusCreated, status)
	}

	s.Equal(1, s.count(`SELECT count(*) FROM tag WHERE name = $1`, sharedTag))
	s.Equal(1, s.count(`SELECT count(*) FROM exercise WHERE name = $1`, sharedExercise))
	s.Equal(workers, s.count(`SELECT count(*) FROM exercise WHERE name LIKE $1`, "Wrist Curl "+suffix+" %"))
	// the shared exercise and every wrist curl link to the single tag row
	s.Equal(workers+1, s.count(`
		SELECT count(*) FROM exercise_tag et JOIN tag t ON t.id = et.tag_id WHERE t.name = $1
	`, sharedTag))
}
