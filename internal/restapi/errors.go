package restapi

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Code int    `json:"code"`
	Text string `json:"text"`
}

// emptyGraphResponse reports that no map can be produced because the
// graph has no positioned vertices.
func (api *RestAPI) emptyGraphResponse(w http.ResponseWriter, r *http.Request) {
	response := errorResponse{
		Code: http.StatusUnprocessableEntity,
		Text: "no positions available to compute a map center",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.App.Logger.Error("failed to encode empty graph response", "error", err)
	}
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.App.Logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)

	response := errorResponse{
		Code: http.StatusInternalServerError,
		Text: "internal server error",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	if encoderErr := json.NewEncoder(w).Encode(response); encoderErr != nil {
		api.App.Logger.Error("failed to encode server error response", "error", encoderErr)
	}
}

func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		Code        int                 `json:"code"`
		Text        string              `json:"text"`
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		Code:        http.StatusBadRequest,
		Text:        "invalid request parameters",
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.App.Logger.Error("failed to encode validation error response", "error", err)
	}
}
