package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"taskpay_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listTaskIDs(t *testing.T, bodyStr string) []uint {
	t.Helper()
	env := parseEnvelope(t, bodyStr)
	var tasks []models.Task
	require.NoError(t, json.Unmarshal(env.Data, &tasks))
	ids := make([]uint, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}

func TestListTasks_NoFilterReturnsAll(t *testing.T) {
	router, db := newTestServer(t)
	user := createTestUser(t, db, "alice@test.com", "Alice")

	first := createTestTask(t, db, user.ID, "Buy groceries", nil, models.TaskStatusPending)
	second := createTestTask(t, db, user.ID, "Write report", nil, models.TaskStatusCompleted)

	res, bodyStr := sendRequest(t, router, http.MethodGet, "/tasks", nil)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.ElementsMatch(t, []uint{first.ID, second.ID}, listTaskIDs(t, bodyStr))
}

func TestListTasks_FiltersCombineWithAnd(t *testing.T) {
	router, db := newTestServer(t)
	alice := createTestUser(t, db, "alice@test.com", "Alice")
	bob := createTestUser(t, db, "bob@test.com", "Bob")

	match := createTestTask(t, db, alice.ID, "Prepare meeting notes", nil, models.TaskStatusPending)
	createTestTask(t, db, alice.ID, "Prepare slides", nil, models.TaskStatusCompleted) // wrong status
	createTestTask(t, db, bob.ID, "Prepare meeting room", nil, models.TaskStatusPending) // wrong user

	path := fmt.Sprintf("/tasks?user_id=%d&search=meeting&status=pending", alice.ID)
	res, bodyStr := sendRequest(t, router, http.MethodGet, path, nil)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, []uint{match.ID}, listTaskIDs(t, bodyStr))
}

func TestListTasks_SearchMatchesNameOrDescription(t *testing.T) {
	router, db := newTestServer(t)
	user := createTestUser(t, db, "alice@test.com", "Alice")

	byName := createTestTask(t, db, user.ID, "Quarterly REVIEW", nil, models.TaskStatusPending)
	byDescription := createTestTask(t, db, user.ID, "Misc", strPtr("needs review by Friday"), models.TaskStatusPending)
	createTestTask(t, db, user.ID, "Unrelated", nil, models.TaskStatusPending)

	res, bodyStr := sendRequest(t, router, http.MethodGet, "/tasks?search=review", nil)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.ElementsMatch(t, []uint{byName.ID, byDescription.ID}, listTaskIDs(t, bodyStr))
}

func TestListTasks_DateFilter(t *testing.T) {
	router, db := newTestServer(t)
	user := createTestUser(t, db, "alice@test.com", "Alice")
	task := createTestTask(t, db, user.ID, "Today's task", nil, models.TaskStatusPending)

	today := time.Now().Format("2006-01-02")
	res, bodyStr := sendRequest(t, router, http.MethodGet, "/tasks?date="+today, nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, []uint{task.ID}, listTaskIDs(t, bodyStr))

	res, bodyStr = sendRequest(t, router, http.MethodGet, "/tasks?date=1999-01-01", nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Empty(t, listTaskIDs(t, bodyStr))
}

func TestListTasks_UnknownFilterValuesMatchNothing(t *testing.T) {
	router, db := newTestServer(t)
	user := createTestUser(t, db, "alice@test.com", "Alice")
	createTestTask(t, db, user.ID, "Buy groceries", nil, models.TaskStatusPending)

	// Filter values are opaque. A value no row carries is a 200 with an
	// empty set, never a validation error.
	for _, path := range []string{
		"/tasks?status=bogus",
		"/tasks?user_id=abc",
		"/tasks?date=not-a-date",
	} {
		res, bodyStr := sendRequest(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, res.Code, path)
		assert.Empty(t, listTaskIDs(t, bodyStr), path)
	}
}

func TestCreateTask_Success(t *testing.T) {
	router, db := newTestServer(t)
	user := createTestUser(t, db, "alice@test.com", "Alice")

	res, bodyStr := sendRequest(t, router, http.MethodPost, "/tasks", map[string]interface{}{
		"user_id":     user.ID,
		"name":        "Prepare meeting notes",
		"description": "Notes for the client meeting",
	})

	assert.Equal(t, http.StatusCreated, res.Code)
	env := parseEnvelope(t, bodyStr)
	assert.True(t, env.Status)

	var task models.Task
	require.NoError(t, json.Unmarshal(env.Data, &task))
	assert.Equal(t, user.ID, task.UserID)
	assert.Equal(t, models.TaskStatusPending, task.Status, "status must default to pending")
	require.NotNil(t, task.Description)
	assert.Equal(t, "Notes for the client meeting", *task.Description)
}

func TestCreateTask_MissingNameRejected(t *testing.T) {
	router, db := newTestServer(t)
	user := createTestUser(t, db, "alice@test.com", "Alice")

	res, bodyStr := sendRequest(t, router, http.MethodPost, "/tasks", map[string]interface{}{
		"user_id": user.ID,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
	assert.Contains(t, bodyStr, `"name"`)
}

func TestCreateTask_InvalidStatusRejected(t *testing.T) {
	router, db := newTestServer(t)
	user := createTestUser(t, db, "alice@test.com", "Alice")

	res, bodyStr := sendRequest(t, router, http.MethodPost, "/tasks", map[string]interface{}{
		"user_id": user.ID,
		"name":    "Task",
		"status":  "done",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
	assert.Contains(t, bodyStr, `"status"`)
}

func TestCreateTask_UnknownUserCreatesNoRow(t *testing.T) {
	router, db := newTestServer(t)

	res, bodyStr := sendRequest(t, router, http.MethodPost, "/tasks", map[string]interface{}{
		"user_id": 9999,
		"name":    "Orphan task",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
	assert.Contains(t, bodyStr, `"user_id"`)

	var count int64
	require.NoError(t, db.Model(&models.Task{}).Count(&count).Error)
	assert.Zero(t, count, "a failed create must not leave a row behind")
}

func TestGetTask(t *testing.T) {
	router, db := newTestServer(t)
	user := createTestUser(t, db, "alice@test.com", "Alice")
	task := createTestTask(t, db, user.ID, "Buy groceries", nil, models.TaskStatusPending)

	res, bodyStr := sendRequest(t, router, http.MethodGet, fmt.Sprintf("/tasks/%d", task.ID), nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, bodyStr, "Buy groceries")

	res, _ = sendRequest(t, router, http.MethodGet, "/tasks/9999", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestGetTask_NonNumericIDReturns404(t *testing.T) {
	router, _ := newTestServer(t)

	res, _ := sendRequest(t, router, http.MethodGet, "/tasks/abc", nil)

	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestUpdateTask_PartialLeavesOtherFieldsUntouched(t *testing.T) {
	router, db := newTestServer(t)
	user := createTestUser(t, db, "alice@test.com", "Alice")
	task := createTestTask(t, db, user.ID, "Original name", nil, models.TaskStatusInProgress)

	res, bodyStr := sendRequest(t, router, http.MethodPatch, fmt.Sprintf("/tasks/%d", task.ID), map[string]interface{}{
		"description": "x",
	})

	assert.Equal(t, http.StatusOK, res.Code)
	env := parseEnvelope(t, bodyStr)

	var updated models.Task
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Original name", updated.Name)
	assert.Equal(t, models.TaskStatusInProgress, updated.Status)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "x", *updated.Description)
}

func TestUpdateTask_ExplicitNullClearsDescription(t *testing.T) {
	router, db := newTestServer(t)
	user := createTestUser(t, db, "alice@test.com", "Alice")
	task := createTestTask(t, db, user.ID, "Task", strPtr("to be removed"), models.TaskStatusPending)

	res, _ := sendRequest(t, router, http.MethodPut, fmt.Sprintf("/tasks/%d", task.ID), map[string]interface{}{
		"description": nil,
	})
	assert.Equal(t, http.StatusOK, res.Code)

	var reloaded models.Task
	require.NoError(t, db.First(&reloaded, task.ID).Error)
	assert.Nil(t, reloaded.Description)
}

func TestUpdateTask_InvalidStatusRejected(t *testing.T) {
	router, db := newTestServer(t)
	user := createTestUser(t, db, "alice@test.com", "Alice")
	task := createTestTask(t, db, user.ID, "Task", nil, models.TaskStatusPending)

	res, bodyStr := sendRequest(t, router, http.MethodPatch, fmt.Sprintf("/tasks/%d", task.ID), map[string]interface{}{
		"status": "finished",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
	assert.Contains(t, bodyStr, `"status"`)

	var reloaded models.Task
	require.NoError(t, db.First(&reloaded, task.ID).Error)
	assert.Equal(t, models.TaskStatusPending, reloaded.Status, "a rejected update must not change the row")
}

func TestUpdateTask_NameLengthCountsRunes(t *testing.T) {
	router, db := newTestServer(t)
	user := createTestUser(t, db, "alice@test.com", "Alice")
	task := createTestTask(t, db, user.ID, "Task", nil, models.TaskStatusPending)

	// 200 multibyte runes are within the 255 limit even though the byte
	// count is not, matching the create rule.
	res, _ := sendRequest(t, router, http.MethodPatch, fmt.Sprintf("/tasks/%d", task.ID), map[string]interface{}{
		"name": strings.Repeat("é", 200),
	})
	assert.Equal(t, http.StatusOK, res.Code)

	res, bodyStr := sendRequest(t, router, http.MethodPatch, fmt.Sprintf("/tasks/%d", task.ID), map[string]interface{}{
		"name": strings.Repeat("é", 256),
	})
	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
	assert.Contains(t, bodyStr, `"name"`)
}

func TestUpdateTask_NotFound(t *testing.T) {
	router, _ := newTestServer(t)

	res, _ := sendRequest(t, router, http.MethodPut, "/tasks/9999", map[string]interface{}{
		"name": "anything",
	})

	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestDeleteTask_SecondDeleteReturns404(t *testing.T) {
	router, db := newTestServer(t)
	user := createTestUser(t, db, "alice@test.com", "Alice")
	task := createTestTask(t, db, user.ID, "Task", nil, models.TaskStatusPending)

	path := fmt.Sprintf("/tasks/%d", task.ID)

	res, bodyStr := sendRequest(t, router, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, bodyStr, "Task deleted successfully.")

	res, _ = sendRequest(t, router, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
}
