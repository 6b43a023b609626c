package horses

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/horses", func(hr chi.Router) {
		hr.Get("/", searchHorsesHandler(svc, log))
		hr.Post("/", createHorseHandler(svc, log))
		hr.Get("/{horseID}", getHorseHandler(svc, log))
		hr.Put("/{horseID}", updateHorseHandler(svc, log))
		hr.Delete("/{horseID}", deleteHorseHandler(svc, log))
	})
}

type horseRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	DateOfBirth string  `json:"date_of_birth"` // YYYY-MM-DD
	Sex         string  `json:"sex"`
	OwnerID     *int64  `json:"owner_id"`
	MotherID    *int64  `json:"mother_id"`
	FatherID    *int64  `json:"father_id"`
}

type ownerResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email,omitempty"`
}

type parentResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DateOfBirth string `json:"date_of_birth"`
	Sex         Sex    `json:"sex"`
}

type horseResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	DateOfBirth string          `json:"date_of_birth"`
	Sex         Sex             `json:"sex"`
	Owner       *ownerResponse  `json:"owner,omitempty"`
	Mother      *parentResponse `json:"mother,omitempty"`
	Father      *parentResponse `json:"father,omitempty"`
}

type errorResponse struct {
	Message    string   `json:"message"`
	Violations []string `json:"violations,omitempty"`
}

// toHorse mapea el request al candidato de dominio. Errores de formato
// (fecha, sexo) son 400 antes de llegar al validador.
func (req horseRequest) toHorse(id int64) (Horse, string) {
	h := Horse{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     req.OwnerID,
		MotherID:    req.MotherID,
		FatherID:    req.FatherID,
	}

	if strings.TrimSpace(req.DateOfBirth) != "" {
		t, err := time.Parse(dateLayout, req.DateOfBirth)
		if err != nil {
			return Horse{}, "date_of_birth must be YYYY-MM-DD"
		}
		h.DateOfBirth = &t
	}

	sex, ok := ParseSex(req.Sex)
	if !ok {
		return Horse{}, "sex must be MALE or FEMALE"
	}
	h.Sex = sex

	return h, ""
}

// createHorseHandler godoc
// @Summary  Registrar un caballo
// @Tags     horses
// @Accept   json
// @Produce  json
// @Success  201 {object} horseResponse
// @Failure  409 {object} errorResponse
// @Failure  422 {object} errorResponse
// @Router   /horses [post]
func createHorseHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req horseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		h, bad := req.toHorse(0)
		if bad != "" {
			http.Error(w, bad, http.StatusBadRequest)
			return
		}

		d, err := svc.Create(r.Context(), h)
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, toHorseResponse(d))
	}
}

// updateHorseHandler godoc
// @Summary  Reemplazar los datos de un caballo
// @Tags     horses
// @Accept   json
// @Produce  json
// @Param    horseID path int true "ID del caballo"
// @Success  200 {object} horseResponse
// @Failure  404 {object} errorResponse
// @Failure  409 {object} errorResponse
// @Failure  422 {object} errorResponse
// @Router   /horses/{horseID} [put]
func updateHorseHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := horseID(w, r)
		if !ok {
			return
		}

		var req horseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		h, bad := req.toHorse(id)
		if bad != "" {
			http.Error(w, bad, http.StatusBadRequest)
			return
		}

		d, err := svc.Update(r.Context(), h)
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toHorseResponse(d))
	}
}

// getHorseHandler godoc
// @Summary  Detalle de un caballo (dueño y padres directos resueltos)
// @Tags     horses
// @Produce  json
// @Param    horseID path int true "ID del caballo"
// @Success  200 {object} horseResponse
// @Failure  404 {object} errorResponse
// @Router   /horses/{horseID} [get]
func getHorseHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := horseID(w, r)
		if !ok {
			return
		}

		d, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toHorseResponse(d))
	}
}

// deleteHorseHandler godoc
// @Summary  Borrar un caballo (devuelve el snapshot borrado)
// @Tags     horses
// @Produce  json
// @Param    horseID path int true "ID del caballo"
// @Success  200 {object} horseResponse
// @Failure  404 {object} errorResponse
// @Router   /horses/{horseID} [delete]
func deleteHorseHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := horseID(w, r)
		if !ok {
			return
		}

		d, err := svc.Delete(r.Context(), id)
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toHorseResponse(d))
	}
}

// searchHorsesHandler godoc
// @Summary  Buscar caballos (criterios combinados con AND, substrings case-insensitive)
// @Tags     horses
// @Produce  json
// @Param    name        query string false "substring del nombre"
// @Param    description query string false "substring de la descripción"
// @Param    owner_name  query string false "substring del nombre del dueño"
// @Param    born_before query string false "YYYY-MM-DD, estrictamente anterior"
// @Param    sex         query string false "MALE o FEMALE"
// @Param    limit       query int    false "máximo de resultados"
// @Success  200 {array} horseResponse
// @Router   /horses [get]
func searchHorsesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := SearchFilter{
			Name:        strings.TrimSpace(q.Get("name")),
			Description: strings.TrimSpace(q.Get("description")),
			OwnerName:   strings.TrimSpace(q.Get("owner_name")),
		}

		if v := strings.TrimSpace(q.Get("born_before")); v != "" {
			t, err := time.Parse(dateLayout, v)
			if err != nil {
				http.Error(w, "born_before must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			f.BornBefore = &t
		}

		if v := strings.TrimSpace(q.Get("sex")); v != "" {
			sex, ok := ParseSex(v)
			if !ok {
				http.Error(w, "sex must be MALE or FEMALE", http.StatusBadRequest)
				return
			}
			f.Sex = sex
		}

		if v := strings.TrimSpace(q.Get("limit")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
				return
			}
			f.Limit = &n
		}

		items, err := svc.Search(r.Context(), f)
		if err != nil {
			writeError(w, log, err)
			return
		}

		out := make([]horseResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toHorseResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func horseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "horseID"), 10, 64)
	if err != nil {
		http.Error(w, "horse id must be an integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func toHorseResponse(d Detail) horseResponse {
	resp := horseResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Sex:         d.Sex,
	}
	if d.DateOfBirth != nil {
		resp.DateOfBirth = d.DateOfBirth.Format(dateLayout)
	}
	if d.Owner != nil {
		resp.Owner = &ownerResponse{
			ID:        d.Owner.ID,
			FirstName: d.Owner.FirstName,
			LastName:  d.Owner.LastName,
			Email:     d.Owner.Email,
		}
	}
	resp.Mother = toParentResponse(d.Mother)
	resp.Father = toParentResponse(d.Father)
	return resp
}

func toParentResponse(p *ParentRef) *parentResponse {
	if p == nil {
		return nil
	}
	out := &parentResponse{ID: p.ID, Name: p.Name, Sex: p.Sex}
	if p.DateOfBirth != nil {
		out.DateOfBirth = p.DateOfBirth.Format(dateLayout)
	}
	return out
}

// writeError traduce la taxonomía de errores a status HTTP. Fatal nunca se
// expone al caller: se loguea y sale 500 genérico.
func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	var nf *apperr.NotFound
	var val *apperr.Validation
	var con *apperr.Conflict
	var fat *apperr.Fatal

	switch {
	case errors.As(err, &nf):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: nf.Error()})
	case errors.As(err, &val):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Message: val.Summary, Violations: val.Violations})
	case errors.As(err, &con):
		writeJSON(w, http.StatusConflict, errorResponse{Message: con.Summary, Violations: con.Violations})
	case errors.As(err, &fat):
		log.Error("internal inconsistency", map[string]any{"err": fat.Error()})
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
	default:
		log.Error("unhandled error", map[string]any{"err": err.Error()})
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}

// writeJSON está duplicado a propósito en horses y owners para no extraer
// helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
