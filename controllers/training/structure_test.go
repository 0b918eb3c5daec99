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

type contentChapter struct {
	ID         uint             `json:"ID"`
	Title      string           `json:"title"`
	OrderIndex int              `json:"order_index"`
	Sections   []contentSection `json:"sections"`
}

type contentSection struct {
	ID         uint   `json:"ID"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	OrderIndex int    `json:"order_index"`
}

func getChapters(t *testing.T, data json.RawMessage) []contentChapter {
	t.Helper()

	var payload struct {
		Chapters []contentChapter `json:"chapters"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	return payload.Chapters
}

func TestReplaceStructureAndFetchContent(t *testing.T) {
	app, db := setupTestApp(t)

	_, adminToken := createUser(t, db, "Admin", "admin@example.org", "ADMIN")
	_, userToken := createUser(t, db, "Member", "member@example.org", "USER")
	training := createTraining(t, db, "Foundations of Prayer", true)

	body := map[string]interface{}{
		"chapters": []map[string]interface{}{
			{
				"title": "Getting Started",
				"sections": []map[string]interface{}{
					{"title": "Welcome", "content": "Intro text"},
					{"title": "How to Use This Course", "content": "Guide text"},
				},
			},
			{
				"title": "Going Deeper",
				"sections": []map[string]interface{}{
					{"title": "Daily Practice", "content": "Practice text"},
				},
			},
		},
	}

	resp, parsed := doRequest(t, app, "PUT",
		fmt.Sprintf("/api/admin/trainings/%d/structure", training.ID), adminToken, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, parsed.Status)

	resp, parsed = doRequest(t, app, "GET",
		fmt.Sprintf("/api/trainings/%d/content", training.ID), userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	chapters := getChapters(t, parsed.Data)
	require.Len(t, chapters, 2)

	assert.Equal(t, "Getting Started", chapters[0].Title)
	assert.Equal(t, 0, chapters[0].OrderIndex)
	assert.Equal(t, "Going Deeper", chapters[1].Title)
	assert.Equal(t, 1, chapters[1].OrderIndex)

	require.Len(t, chapters[0].Sections, 2)
	assert.Equal(t, "Welcome", chapters[0].Sections[0].Title)
	assert.Equal(t, 0, chapters[0].Sections[0].OrderIndex)
	assert.Equal(t, "How to Use This Course", chapters[0].Sections[1].Title)
	assert.Equal(t, 1, chapters[0].Sections[1].OrderIndex)

	require.Len(t, chapters[1].Sections, 1)
	assert.Equal(t, "Daily Practice", chapters[1].Sections[0].Title)
}

func TestReplaceStructureOverwritesPrevious(t *testing.T) {
	app, db := setupTestApp(t)

	_, adminToken := createUser(t, db, "Admin", "admin@example.org", "ADMIN")
	training := createTraining(t, db, "Foundations of Prayer", true)

	first := map[string]interface{}{
		"chapters": []map[string]interface{}{
			{"title": "Old Chapter One", "sections": []map[string]interface{}{{"title": "Old Section"}}},
			{"title": "Old Chapter Two", "sections": []map[string]interface{}{}},
		},
	}
	resp, _ := doRequest(t, app, "PUT",
		fmt.Sprintf("/api/admin/trainings/%d/structure", training.ID), adminToken, first)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	second := map[string]interface{}{
		"chapters": []map[string]interface{}{
			{"title": "New Chapter", "sections": []map[string]interface{}{{"title": "New Section"}}},
		},
	}
	resp, parsed := doRequest(t, app, "PUT",
		fmt.Sprintf("/api/admin/trainings/%d/structure", training.ID), adminToken, second)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	chapters := getChapters(t, parsed.Data)
	require.Len(t, chapters, 1)
	assert.Equal(t, "New Chapter", chapters[0].Title)
	require.Len(t, chapters[0].Sections, 1)
	assert.Equal(t, "New Section", chapters[0].Sections[0].Title)

	// Old rows are retired, only the new chapter remains live
	var liveChapters int64
	db.Model(&trainingModels.Chapter{}).
		Where("training_id = ? AND is_deleted = ?", training.ID, false).
		Count(&liveChapters)
	assert.Equal(t, int64(1), liveChapters)
}

func TestReplaceStructureEmptyClearsTraining(t *testing.T) {
	app, db := setupTestApp(t)

	_, adminToken := createUser(t, db, "Admin", "admin@example.org", "ADMIN")
	training := createTraining(t, db, "Foundations of Prayer", true)

	seed := map[string]interface{}{
		"chapters": []map[string]interface{}{
			{"title": "Chapter", "sections": []map[string]interface{}{{"title": "Section"}}},
		},
	}
	resp, _ := doRequest(t, app, "PUT",
		fmt.Sprintf("/api/admin/trainings/%d/structure", training.ID), adminToken, seed)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	empty := map[string]interface{}{"chapters": []map[string]interface{}{}}
	resp, parsed := doRequest(t, app, "PUT",
		fmt.Sprintf("/api/admin/trainings/%d/structure", training.ID), adminToken, empty)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	chapters := getChapters(t, parsed.Data)
	assert.Len(t, chapters, 0)
}

func TestReplaceStructureMissingChaptersRejected(t *testing.T) {
	app, db := setupTestApp(t)

	_, adminToken := createUser(t, db, "Admin", "admin@example.org", "ADMIN")
	training := createTraining(t, db, "Foundations of Prayer", true)

	resp, parsed := doRequest(t, app, "PUT",
		fmt.Sprintf("/api/admin/trainings/%d/structure", training.ID), adminToken,
		map[string]interface{}{})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, parsed.Status)
}

func TestReplaceStructureRejectsInvalidSection(t *testing.T) {
	app, db := setupTestApp(t)

	_, adminToken := createUser(t, db, "Admin", "admin@example.org", "ADMIN")
	training := createTraining(t, db, "Foundations of Prayer", true)

	body := map[string]interface{}{
		"chapters": []map[string]interface{}{
			{"title": "Chapter", "sections": []map[string]interface{}{{"title": ""}}},
		},
	}
	resp, _ := doRequest(t, app, "PUT",
		fmt.Sprintf("/api/admin/trainings/%d/structure", training.ID), adminToken, body)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// Nothing was written
	var liveChapters int64
	db.Model(&trainingModels.Chapter{}).
		Where("training_id = ?", training.ID).Count(&liveChapters)
	assert.Equal(t, int64(0), liveChapters)
}

func TestReplaceStructureRequiresAdmin(t *testing.T) {
	app, db := setupTestApp(t)

	_, userToken := createUser(t, db, "Member", "member@example.org", "USER")
	training := createTraining(t, db, "Foundations of Prayer", true)

	body := map[string]interface{}{"chapters": []map[string]interface{}{}}
	resp, _ := doRequest(t, app, "PUT",
		fmt.Sprintf("/api/admin/trainings/%d/structure", training.ID), userToken, body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
