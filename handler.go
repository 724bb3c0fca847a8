package users

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

const (
	msgNotFound    = "User not found"
	msgInvalidBody = "Invalid request body"
	msgInternal    = "An unexpected error occurred"
)

// NewRouter wires the user routes onto a new router. logger receives
// failures that are hidden from clients.
func NewRouter(svc Service, logger *zap.Logger) *httprouter.Router {
	router := httprouter.New()
	router.Handler(http.MethodGet, "/health", HealthHandler(logger))
	router.Handler(http.MethodGet, "/users", ListUsersHandler(svc, logger))
	router.Handler(http.MethodPost, "/users", CreateUserHandler(svc, logger))
	router.Handler(http.MethodGet, "/users/:id", GetUserHandler(svc, logger))
	router.Handler(http.MethodPut, "/users/:id", UpdateUserHandler(svc, logger))
	router.Handler(http.MethodDelete, "/users/:id", DeleteUserHandler(svc, logger))
	return router
}

func HealthHandler(logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		encodeResponse(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	})
}

func ListUsersHandler(svc Service, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers()
		if err != nil {
			encodeError(err, w, logger)
			return
		}
		encodeResponse(w, http.StatusOK, users, logger)
	})
}

func GetUserHandler(svc Service, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDFromRequest(r)
		if !ok {
			encodeError(ErrNotFound, w, logger)
			return
		}

		user, err := svc.GetUser(id)
		if err != nil {
			encodeError(err, w, logger)
			return
		}
		encodeResponse(w, http.StatusOK, user, logger)
	})
}

func CreateUserHandler(svc Service, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeUserRequest(r)
		if err != nil {
			encodeErrorMessage(w, http.StatusBadRequest, msgInvalidBody, logger)
			return
		}

		user, err := svc.CreateUser(req)
		if err != nil {
			encodeError(err, w, logger)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/users/%s", user.ID))
		encodeResponse(w, http.StatusCreated, user, logger)
	})
}

func UpdateUserHandler(svc Service, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDFromRequest(r)
		if !ok {
			encodeError(ErrNotFound, w, logger)
			return
		}

		req, err := decodeUserRequest(r)
		if err != nil {
			encodeErrorMessage(w, http.StatusBadRequest, msgInvalidBody, logger)
			return
		}

		user, err := svc.UpdateUser(id, req)
		if err != nil {
			encodeError(err, w, logger)
			return
		}
		encodeResponse(w, http.StatusOK, user, logger)
	})
}

func DeleteUserHandler(svc Service, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDFromRequest(r)
		if !ok {
			encodeError(ErrNotFound, w, logger)
			return
		}

		if err := svc.DeleteUser(id); err != nil {
			encodeError(err, w, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// userIDFromRequest reads the :id path parameter. Ids that could never have
// been issued are reported as not ok.
func userIDFromRequest(r *http.Request) (ID, bool) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if !IsValidID(id) {
		return "", false
	}
	return ID(id), true
}

func decodeUserRequest(r *http.Request) (UserRequest, error) {
	req := UserRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return UserRequest{}, err
	}
	return req, nil
}

func encodeError(err error, w http.ResponseWriter, logger *zap.Logger) {
	switch {
	case errors.Is(err, ErrNotFound):
		encodeErrorMessage(w, http.StatusNotFound, msgNotFound, logger)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrConflict):
		encodeErrorMessage(w, http.StatusBadRequest, err.Error(), logger)
	default:
		logger.Error("request failed", zap.Error(err))
		encodeErrorMessage(w, http.StatusInternalServerError, msgInternal, logger)
	}
}

type errorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode"`
}

func encodeErrorMessage(w http.ResponseWriter, code int, msg string, logger *zap.Logger) {
	encodeResponse(w, code, errorResponse{Error: msg, StatusCode: code}, logger)
}

func encodeResponse(w http.ResponseWriter, code int, v interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("encode response", zap.Error(err))
	}
}
