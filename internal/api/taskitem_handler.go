package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/kelist/kelist-api/internal/api/shared"
	"github.com/kelist/kelist-api/internal/service"
)

// TaskItemHandler handles task item API requests.
type TaskItemHandler struct {
	taskItemService service.TaskItemService
}

// NewTaskItemHandler creates a new TaskItemHandler with the given dependencies.
func NewTaskItemHandler(taskItemService service.TaskItemService) *TaskItemHandler {
	return &TaskItemHandler{
		taskItemService: taskItemService,
	}
}

// List handles GET /users/{userID}/task-lists/{listID}/items.
func (h *TaskItemHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, listID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	results, err := h.taskItemService.ListTaskItems(r.Context(), userID, listID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	responses := make([]TaskItemResponse, 0, len(results))
	for i := range results {
		responses = append(responses, taskItemResponse(&results[i]))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// Create handles POST /users/{userID}/task-lists/{listID}/items.
func (h *TaskItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, listID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req CreateTaskItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.taskItemService.CreateTaskItem(r.Context(), userID, listID, req.Description)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskItemResponse(result))
}

// Update handles PUT /users/{userID}/task-lists/{listID}/items/{itemID}.
func (h *TaskItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, listID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}

	var req UpdateTaskItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.taskItemService.UpdateTaskItem(
		r.Context(), userID, listID, itemID, req.Description, req.IsCompleted)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskItemResponse(result))
}

// Delete handles DELETE /users/{userID}/task-lists/{listID}/items/{itemID}.
func (h *TaskItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, listID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}

	if err := h.taskItemService.DeleteTaskItem(r.Context(), userID, listID, itemID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

func (h *TaskItemHandler) pathIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	listID, ok := pathUUID(w, r, "listID")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return userID, listID, true
}
