package api

import (
	"encoding/json"
	"net/http"

	"github.com/liamo132/currently-server/internal/catalog"
	"github.com/liamo132/currently-server/internal/database"
	"github.com/liamo132/currently-server/internal/types"
)

func (s *CurrentlyApp) writeJson(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Printf("json encode: %v", err)
	}
}

func (s *CurrentlyApp) healthCheck(w http.ResponseWriter, _ *http.Request) {
	if err := s.db.Ping(); err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// listCatalogue serves the full archetype catalogue. The catalogue
// carries no user data, so the route skips authentication.
func (s *CurrentlyApp) listCatalogue(w http.ResponseWriter, _ *http.Request) {
	s.writeJson(w, http.StatusOK, s.catalog.All())
}

func toUser(account database.Account) types.User {
	return types.User{
		Id:        account.Id,
		Username:  account.Username,
		Email:     account.EmailAddress,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

func toRoom(room database.Room) types.Room {
	return types.Room{
		Id:         room.ExternalId,
		Name:       room.Name,
		FloorLabel: room.FloorLabel,
		Type:       room.Type,
		CreatedAt:  room.CreatedAt,
		UpdatedAt:  room.UpdatedAt,
	}
}

// toUserAppliance maps a stored appliance to its wire shape, enriched
// with the derived daily energy and cost figures.
func (s *CurrentlyApp) toUserAppliance(ua database.UserAppliance, arch catalog.Archetype) types.UserAppliance {
	kwh, cost := s.calc.Daily(ua.UsageKind, arch, ua.HoursPerDay, ua.UsesPerDay)

	return types.UserAppliance{
		Id:                 ua.ExternalId,
		ApplianceName:      ua.ApplianceName,
		CustomName:         ua.CustomName,
		UsageType:          string(ua.UsageKind),
		HoursPerDay:        ua.HoursPerDay,
		UsesPerDay:         ua.UsesPerDay,
		RoomId:             ua.RoomExternalId,
		RoomName:           ua.RoomName,
		DailyKWh:           kwh,
		EstimatedDailyCost: cost,
		CreatedAt:          ua.CreatedAt,
		UpdatedAt:          ua.UpdatedAt,
	}
}
