package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/liamo132/currently-server/internal/catalog"
	"github.com/liamo132/currently-server/internal/database"
	"github.com/liamo132/currently-server/internal/types"
	"github.com/teris-io/shortid"
)

type CreateApplianceRequest struct {
	ApplianceName string   `json:"applianceName"`
	CustomName    string   `json:"customName"`
	UsageType     string   `json:"usageType"`
	HoursPerDay   *float64 `json:"hoursPerDay"`
	UsesPerDay    *float64 `json:"usesPerDay"`
	RoomId        string   `json:"roomId"`
}

// UpdateApplianceRequest carries partial update semantics: nil fields
// are left unchanged. RoomId distinguishes absent (unchanged) from
// empty (explicitly detach from any room). The archetype name and
// usage type are immutable after creation.
type UpdateApplianceRequest struct {
	CustomName  *string  `json:"customName"`
	HoursPerDay *float64 `json:"hoursPerDay"`
	UsesPerDay  *float64 `json:"usesPerDay"`
	RoomId      *string  `json:"roomId"`
}

// validateUsageQuantity enforces the usage invariant: the quantity
// field matching the usage kind must be present and strictly positive.
func validateUsageQuantity(kind catalog.UsageKind, hoursPerDay, usesPerDay float64) *ApiError {
	switch kind {
	case catalog.Continuous:
		if hoursPerDay <= 0 {
			return NewValidationError("hoursPerDay must be provided and > 0 for continuous appliances")
		}
	case catalog.PerUse:
		if usesPerDay <= 0 {
			return NewValidationError("usesPerDay must be provided and > 0 for perUse appliances")
		}
	default:
		return NewValidationError("usageType must be continuous or perUse")
	}

	return nil
}

func (s *CurrentlyApp) listAppliances(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	appliances, err := s.db.ListUserAppliances(account.Id)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	resp := make([]types.UserAppliance, 0, len(appliances))
	for _, ua := range appliances {
		arch, _ := s.catalog.Find(ua.ApplianceName)
		resp = append(resp, s.toUserAppliance(ua, arch))
	}

	s.writeJson(w, http.StatusOK, resp)
}

func (s *CurrentlyApp) createAppliance(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req CreateApplianceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	kind := catalog.UsageKind(req.UsageType)
	if !kind.Valid() {
		errResp := NewValidationError("usageType must be continuous or perUse")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	arch, found := s.catalog.Find(req.ApplianceName)
	if !found {
		errResp := NewValidationError("appliance not found in catalogue: " + req.ApplianceName)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if arch.UsageKind != kind {
		errResp := NewValidationError("usage type does not match catalogue configuration")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var hoursPerDay, usesPerDay float64
	if req.HoursPerDay != nil {
		hoursPerDay = *req.HoursPerDay
	}
	if req.UsesPerDay != nil {
		usesPerDay = *req.UsesPerDay
	}

	if errResp := validateUsageQuantity(kind, hoursPerDay, usesPerDay); errResp != nil {
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	// The target room must exist and belong to the caller before
	// anything is persisted.
	var room database.Room
	if req.RoomId != "" {
		var err error
		room, err = s.db.GetRoomByExternalId(req.RoomId)
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
	}

	externalId, err := shortid.Generate()
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	ua, err := s.db.CreateUserAppliance(database.CreateUserApplianceParams{
		ExternalId:    externalId,
		AccountId:     account.Id,
		RoomId:        room.Id,
		ApplianceName: arch.Name,
		CustomName:    req.CustomName,
		UsageKind:     kind,
		HoursPerDay:   hoursPerDay,
		UsesPerDay:    usesPerDay,
	})
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	ua.RoomExternalId = room.ExternalId
	ua.RoomName = room.Name

	s.metrics.RecordApplianceOp("create")

	s.writeJson(w, http.StatusCreated, s.toUserAppliance(ua, arch))
}

func (s *CurrentlyApp) updateAppliance(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	ua, err := s.db.GetUserApplianceByExternalId(chi.URLParam(r, "id"))
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

	if !isOwner(account, ua.AccountId) {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req UpdateApplianceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.CustomName != nil {
		ua.CustomName = *req.CustomName
	}
	if req.HoursPerDay != nil {
		ua.HoursPerDay = *req.HoursPerDay
	}
	if req.UsesPerDay != nil {
		ua.UsesPerDay = *req.UsesPerDay
	}

	if req.RoomId != nil {
		if *req.RoomId == "" {
			ua.RoomId = 0
			ua.RoomExternalId = ""
			ua.RoomName = ""
		} else {
			room, err := s.db.GetRoomByExternalId(*req.RoomId)
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

			ua.RoomId = room.Id
			ua.RoomExternalId = room.ExternalId
			ua.RoomName = room.Name
		}
	}

	if errResp := validateUsageQuantity(ua.UsageKind, ua.HoursPerDay, ua.UsesPerDay); errResp != nil {
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	updated, err := s.db.UpdateUserAppliance(database.UpdateUserApplianceParams{
		UserApplianceId: ua.Id,
		RoomId:          ua.RoomId,
		CustomName:      ua.CustomName,
		HoursPerDay:     ua.HoursPerDay,
		UsesPerDay:      ua.UsesPerDay,
	})
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	updated.RoomExternalId = ua.RoomExternalId
	updated.RoomName = ua.RoomName

	arch, _ := s.catalog.Find(updated.ApplianceName)

	s.metrics.RecordApplianceOp("update")

	s.writeJson(w, http.StatusOK, s.toUserAppliance(updated, arch))
}

func (s *CurrentlyApp) deleteAppliance(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	ua, err := s.db.GetUserApplianceByExternalId(chi.URLParam(r, "id"))
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

	if !isOwner(account, ua.AccountId) {
		errResp := NewForbiddenError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := s.db.DeleteUserAppliance(ua.Id); err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.metrics.RecordApplianceOp("delete")

	w.WriteHeader(http.StatusNoContent)
}
