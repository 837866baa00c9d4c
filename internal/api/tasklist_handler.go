package api

import (
	"net/http"

	"github.com/kelist/kelist-api/internal/api/shared"
	"github.com/kelist/kelist-api/internal/service"
)

// TaskListHandler handles task list API requests.
type TaskListHandler struct {
	taskListService service.TaskListService
}

// NewTaskListHandler creates a new TaskListHandler with the given dependencies.
func NewTaskListHandler(taskListService service.TaskListService) *TaskListHandler {
	return &TaskListHandler{
		taskListService: taskListService,
	}
}

// List handles GET /users/{userID}/task-lists.
func (h *TaskListHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	results, err := h.taskListService.ListTaskLists(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	responses := make([]TaskListResponse, 0, len(results))
	for i := range results {
		responses = append(responses, taskListResponse(&results[i]))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// Create handles POST /users/{userID}/task-lists.
func (h *TaskListHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	var req CreateTaskListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.taskListService.CreateTaskList(r.Context(), userID, req.Name)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskListResponse(result))
}

// Update handles PUT /users/{userID}/task-lists/{listID}.
func (h *TaskListHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}
	listID, ok := pathUUID(w, r, "listID")
	if !ok {
		return
	}

	var req UpdateTaskListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.taskListService.UpdateTaskList(r.Context(), userID, listID, req.Name)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskListResponse(result))
}

// Delete handles DELETE /users/{userID}/task-lists/{listID}.
func (h *TaskListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}
	listID, ok := pathUUID(w, r, "listID")
	if !ok {
		return
	}

	if err := h.taskListService.DeleteTaskList(r.Context(), userID, listID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
