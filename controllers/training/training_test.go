package trainingController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trainingModels "prayerhub/models/training"
)

func TestEnrollRequiresAuth(t *testing.T) {
	app, db := setupTestApp(t)
	training := createTraining(t, db, "Foundations of Prayer", true)

	resp, _ := doRequest(t, app, "POST",
		fmt.Sprintf("/api/trainings/%d/enroll", training.ID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestEnrollIsIdempotent(t *testing.T) {
	app, db := setupTestApp(t)

	user, token := createUser(t, db, "Member", "member@example.org", "USER")
	training := createTraining(t, db, "Foundations of Prayer", true)

	resp, parsed := doRequest(t, app, "POST",
		fmt.Sprintf("/api/trainings/%d/enroll", training.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, parsed.Status)

	resp, parsed = doRequest(t, app, "POST",
		fmt.Sprintf("/api/trainings/%d/enroll", training.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Already enrolled in this training!", parsed.Message)

	var rows int64
	db.Model(&trainingModels.Progress{}).
		Where("user_id = ? AND training_id = ?", user.ID, training.ID).
		Count(&rows)
	assert.Equal(t, int64(1), rows)
}

func TestEnrollUnpublishedTrainingFails(t *testing.T) {
	app, db := setupTestApp(t)

	_, token := createUser(t, db, "Member", "member@example.org", "USER")
	training := createTraining(t, db, "Draft Training", false)

	resp, _ := doRequest(t, app, "POST",
		fmt.Sprintf("/api/trainings/%d/enroll", training.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRecordProgressUpserts(t *testing.T) {
	app, db := setupTestApp(t)

	user, token := createUser(t, db, "Member", "member@example.org", "USER")
	training := createTraining(t, db, "Foundations of Prayer", true)

	resp, _ := doRequest(t, app, "POST",
		fmt.Sprintf("/api/trainings/%d/progress", training.ID), token,
		map[string]interface{}{"score": 40})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, parsed := doRequest(t, app, "POST",
		fmt.Sprintf("/api/trainings/%d/progress", training.ID), token,
		map[string]interface{}{"score": 67})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var progress trainingModels.Progress
	require.NoError(t, json.Unmarshal(parsed.Data, &progress))
	assert.Equal(t, 67, progress.Score)
	assert.False(t, progress.Completed)

	var rows int64
	db.Model(&trainingModels.Progress{}).
		Where("user_id = ? AND training_id = ?", user.ID, training.ID).
		Count(&rows)
	assert.Equal(t, int64(1), rows)
}

func TestRecordProgressFullScoreCompletes(t *testing.T) {
	app, db := setupTestApp(t)

	_, token := createUser(t, db, "Member", "member@example.org", "USER")
	training := createTraining(t, db, "Foundations of Prayer", true)

	resp, parsed := doRequest(t, app, "POST",
		fmt.Sprintf("/api/trainings/%d/progress", training.ID), token,
		map[string]interface{}{"score": 100})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var progress trainingModels.Progress
	require.NoError(t, json.Unmarshal(parsed.Data, &progress))
	assert.Equal(t, 100, progress.Score)
	assert.True(t, progress.Completed)
}

func TestRecordProgressRejectsOutOfRangeScore(t *testing.T) {
	app, db := setupTestApp(t)

	_, token := createUser(t, db, "Member", "member@example.org", "USER")
	training := createTraining(t, db, "Foundations of Prayer", true)

	resp, _ := doRequest(t, app, "POST",
		fmt.Sprintf("/api/trainings/%d/progress", training.ID), token,
		map[string]interface{}{"score": 101})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = doRequest(t, app, "POST",
		fmt.Sprintf("/api/trainings/%d/progress", training.ID), token,
		map[string]interface{}{"score": -1})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetMyProgress(t *testing.T) {
	app, db := setupTestApp(t)

	_, token := createUser(t, db, "Member", "member@example.org", "USER")
	first := createTraining(t, db, "Foundations of Prayer", true)
	second := createTraining(t, db, "Intercession Basics", true)

	for _, training := range []trainingModels.Training{first, second} {
		resp, _ := doRequest(t, app, "POST",
			fmt.Sprintf("/api/trainings/%d/enroll", training.ID), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, parsed := doRequest(t, app, "GET", "/api/me/progress", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Progress []trainingModels.Progress `json:"progress"`
	}
	require.NoError(t, json.Unmarshal(parsed.Data, &payload))
	assert.Len(t, payload.Progress, 2)
}

func TestPublicListShowsOnlyPublished(t *testing.T) {
	app, db := setupTestApp(t)

	createTraining(t, db, "Published Training", true)
	createTraining(t, db, "Draft Training", false)

	resp, parsed := doRequest(t, app, "GET", "/api/trainings/", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Trainings []trainingModels.Training `json:"trainings"`
	}
	require.NoError(t, json.Unmarshal(parsed.Data, &payload))
	require.Len(t, payload.Trainings, 1)
	assert.Equal(t, "Published Training", payload.Trainings[0].Title)
}
