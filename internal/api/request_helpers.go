package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kelist/kelist-api/internal/api/shared"
	"github.com/kelist/kelist-api/internal/service"
)

// decodeAndValidate parses the JSON body into v and runs tag validation.
// On failure it writes the 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Request.InvalidBody", "request body is not valid JSON")
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Request.Validation", err.Error())
		return false
	}
	return true
}

// pathUUID extracts and parses a UUID path parameter. On failure it writes
// the 400 response and returns false.
func pathUUID(w http.ResponseWriter, r *http.Request, paramName string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, paramName)
	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Request.InvalidID", paramName+" is not a valid id")
		return uuid.Nil, false
	}
	return id, true
}

// userResponse converts a service result to its API shape.
func userResponse(result *service.UserResult) UserResponse {
	return UserResponse{ID: result.ID, FullName: result.FullName, Email: result.Email}
}

// taskListResponse converts a service result to its API shape.
func taskListResponse(result *service.TaskListResult) TaskListResponse {
	resp := TaskListResponse{
		ID:    result.ID,
		Name:  result.Name,
		Items: make([]TaskItemResponse, 0, len(result.Items)),
	}
	for _, item := range result.Items {
		resp.Items = append(resp.Items, taskItemResponse(&item))
	}
	return resp
}

// taskItemResponse converts a service result to its API shape.
func taskItemResponse(result *service.TaskItemResult) TaskItemResponse {
	return TaskItemResponse{
		ID:          result.ID,
		Description: result.Description,
		IsCompleted: result.IsCompleted,
	}
}
