package owners

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/owners", func(or chi.Router) {
		or.Get("/", searchOwnersHandler(svc, log))
		or.Post("/", createOwnerHandler(svc, log))
	})
}

type createOwnerRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email"`
}

type ownerResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email,omitempty"`
}

type errorResponse struct {
	Message    string   `json:"message"`
	Violations []string `json:"violations,omitempty"`
}

// searchOwnersHandler godoc
// @Summary  Buscar dueños por substring del nombre
// @Tags     owners
// @Produce  json
// @Param    name       query string false "substring de first+last name"
// @Param    max_amount query int    false "máximo de resultados"
// @Success  200 {array} ownerResponse
// @Router   /owners [get]
func searchOwnersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := SearchFilter{Name: strings.TrimSpace(q.Get("name"))}

		if v := strings.TrimSpace(q.Get("max_amount")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				http.Error(w, "max_amount must be a non-negative integer", http.StatusBadRequest)
				return
			}
			f.MaxAmount = &n
		}

		items, err := svc.Search(r.Context(), f)
		if err != nil {
			writeError(w, log, err)
			return
		}

		out := make([]ownerResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOwnerResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createOwnerHandler godoc
// @Summary  Registrar un dueño
// @Tags     owners
// @Accept   json
// @Produce  json
// @Success  201 {object} ownerResponse
// @Failure  422 {object} errorResponse
// @Router   /owners [post]
func createOwnerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Create(r.Context(), CreateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
		})
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

func toOwnerResponse(o Owner) ownerResponse {
	return ownerResponse{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Email:     o.Email,
	}
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	var nf *apperr.NotFound
	var val *apperr.Validation

	switch {
	case errors.As(err, &nf):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: nf.Error()})
	case errors.As(err, &val):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Message: val.Summary, Violations: val.Violations})
	default:
		log.Error("unhandled error", map[string]any{"err": err.Error()})
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}

// writeJSON duplicado a propósito (ver nota en horses/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
