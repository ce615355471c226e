package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/liamo132/currently-server/internal/database"
	"github.com/liamo132/currently-server/internal/types"
	"github.com/teris-io/shortid"
)

type CreateRoomRequest struct {
	Name       string `json:"name"`
	FloorLabel string `json:"floorLabel"`
	Type       string `json:"type"`
}

// UpdateRoomRequest carries partial update semantics: nil fields are
// left unchanged.
type UpdateRoomRequest struct {
	Name       *string `json:"name"`
	FloorLabel *string `json:"floorLabel"`
	Type       *string `json:"type"`
}

func (s *CurrentlyApp) listRooms(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	rooms, err := s.db.ListRooms(account.Id)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	resp := make([]types.Room, 0, len(rooms))
	for _, room := range rooms {
		resp = append(resp, toRoom(room))
	}

	s.writeJson(w, http.StatusOK, resp)
}

func (s *CurrentlyApp) createRoom(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.Name == "" || req.FloorLabel == "" {
		errResp := NewValidationError("name and floorLabel are required")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	externalId, err := shortid.Generate()
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	room, err := s.db.CreateRoom(database.CreateRoomParams{
		ExternalId: externalId,
		AccountId:  account.Id,
		Name:       req.Name,
		FloorLabel: req.FloorLabel,
		Type:       req.Type,
	})
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.metrics.RecordRoomOp("create")

	s.writeJson(w, http.StatusCreated, toRoom(room))
}

func (s *CurrentlyApp) updateRoom(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	room, err := s.db.GetRoomByExternalId(chi.URLParam(r, "id"))
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if !isOwner(account, room.AccountId) {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.FloorLabel != nil {
		room.FloorLabel = *req.FloorLabel
	}
	if req.Type != nil {
		room.Type = *req.Type
	}

	if room.Name == "" || room.FloorLabel == "" {
		errResp := NewValidationError("name and floorLabel cannot be empty")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	updated, err := s.db.UpdateRoom(database.UpdateRoomParams{
		RoomId:     room.Id,
		Name:       room.Name,
		FloorLabel: room.FloorLabel,
		Type:       room.Type,
	})
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.metrics.RecordRoomOp("update")

	s.writeJson(w, http.StatusOK, toRoom(updated))
}

func (s *CurrentlyApp) deleteRoom(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	room, err := s.db.GetRoomByExternalId(chi.URLParam(r, "id"))
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError()
		} else {
			errResp = NewInternalServerError(err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if !isOwner(account, room.AccountId) {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := s.db.DeleteRoom(room.Id); err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.metrics.RecordRoomOp("delete")

	w.WriteHeader(http.StatusNoContent)
}
