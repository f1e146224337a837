package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/vyuha/gymtrack/internal/gym"
)

// writeGymError maps the gym failure taxonomy onto HTTP statuses.
func writeGymError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, gym.ErrDuplicateKey):
		status = http.StatusConflict
	case errors.Is(err, gym.ErrForeignKeyViolation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, gym.ErrInvalidFormat):
		status = http.StatusBadRequest
	case errors.Is(err, gym.ErrNotFound):
		status = http.StatusNotFound
	}
	writeError(w, status, gym.Code(err), gym.Describe(err))
}

// decodeBody strictly decodes a JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func pathInt64(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("path parameter %s=%q is not an integer", name, raw)
	}
	return v, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%s query parameter is required", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s query parameter %q is not an integer", name, raw)
	}
	return v, nil
}

// ---------------------------------------------------------------------------
// POST /api/members
// ---------------------------------------------------------------------------

type addMemberRequest struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
	Age  *int   `json:"age"`
}

func (s *Server) handleAddMember(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if req.ID == nil || req.Age == nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "id and age are required")
		return
	}

	if err := s.svc.AddMember(r.Context(), *req.ID, req.Name, *req.Age); err != nil {
		writeGymError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"data": gym.Member{ID: *req.ID, Name: req.Name, Age: *req.Age},
	})
}

// ---------------------------------------------------------------------------
// PUT /api/members/{id}/age
// ---------------------------------------------------------------------------

type updateAgeRequest struct {
	Age *int `json:"age"`
}

func (s *Server) handleUpdateMemberAge(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	var req updateAgeRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if req.Age == nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "age is required")
		return
	}

	if err := s.svc.UpdateMemberAge(r.Context(), id, *req.Age); err != nil {
		writeGymError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{"id": id, "age": *req.Age},
	})
}

// ---------------------------------------------------------------------------
// GET /api/members/{id}
// ---------------------------------------------------------------------------

func (s *Server) handleGetMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	m, err := s.svc.GetMember(r.Context(), id)
	if err != nil {
		writeGymError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": m})
}

// ---------------------------------------------------------------------------
// GET /api/members/{id}/sessions
// ---------------------------------------------------------------------------

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	tbl, err := s.svc.ListSessions(r.Context(), id)
	if err != nil {
		writeGymError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": tbl})
}

// ---------------------------------------------------------------------------
// GET /api/members?min_age=X&max_age=Y
// ---------------------------------------------------------------------------

func (s *Server) handleMembersInAgeRange(w http.ResponseWriter, r *http.Request) {
	start, err := queryInt(r, "min_age")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	end, err := queryInt(r, "max_age")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}

	tbl, err := s.svc.MembersInAgeRange(r.Context(), start, end)
	if err != nil {
		writeGymError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": tbl})
}

// ---------------------------------------------------------------------------
// POST /api/sessions
// ---------------------------------------------------------------------------

type addSessionRequest struct {
	MemberID        *int64 `json:"member_id"`
	Date            string `json:"date"`
	DurationMinutes int    `json:"duration_minutes"`
	CaloriesBurned  int    `json:"calories_burned"`
}

func (s *Server) handleAddWorkoutSession(w http.ResponseWriter, r *http.Request) {
	var req addSessionRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if req.MemberID == nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "member_id is required")
		return
	}

	id, err := s.svc.AddWorkoutSession(r.Context(), *req.MemberID, req.Date, req.DurationMinutes, req.CaloriesBurned)
	if err != nil {
		writeGymError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"data": gym.WorkoutSession{
			ID:              id,
			MemberID:        *req.MemberID,
			Date:            req.Date,
			DurationMinutes: req.DurationMinutes,
			CaloriesBurned:  req.CaloriesBurned,
		},
	})
}

// ---------------------------------------------------------------------------
// DELETE /api/sessions/{id}
// ---------------------------------------------------------------------------

func (s *Server) handleDeleteWorkoutSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	if err := s.svc.DeleteWorkoutSession(r.Context(), id); err != nil {
		writeGymError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Reports
// ---------------------------------------------------------------------------

func (s *Server) handleWorkoutStatistics(w http.ResponseWriter, r *http.Request) {
	tbl, err := s.svc.WorkoutStatistics(r.Context())
	if err != nil {
		writeGymError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": tbl})
}

func (s *Server) handleMonthlyActivity(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	month, err := queryInt(r, "month")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}

	tbl, err := s.svc.MonthlyActivitySummary(r.Context(), year, month)
	if err != nil {
		writeGymError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": tbl})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GetStoreStats(r.Context())
	if err != nil {
		writeGymError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": stats})
}
