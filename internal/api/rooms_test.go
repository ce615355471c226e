package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/liamo132/currently-server/internal/database"
	"github.com/liamo132/currently-server/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// withUrlParam injects a chi route parameter so handlers can be
// exercised without the router.
func withUrlParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

var (
	ownerAccount = database.Account{Id: 1, Username: "owner", EmailAddress: "a@x.com"}
	otherAccount = database.Account{Id: 2, Username: "other", EmailAddress: "b@x.com"}
)

func TestCreateRoom(t *testing.T) {
	createdRoom := database.Room{
		Id:         10,
		ExternalId: "room-ext-1",
		AccountId:  ownerAccount.Id,
		Name:       "Kitchen",
		FloorLabel: "Ground Floor",
		Type:       "Kitchen",
	}

	tcases := []struct {
		name         string
		body         any
		setupMock    func(m *database.MockCurrentlyRepository)
		expectedCode int
	}{
		{
			name: "successfully creates a room",
			body: CreateRoomRequest{Name: "Kitchen", FloorLabel: "Ground Floor", Type: "Kitchen"},
			setupMock: func(m *database.MockCurrentlyRepository) {
				m.On("CreateRoom", mock.MatchedBy(func(p database.CreateRoomParams) bool {
					return p.AccountId == ownerAccount.Id &&
						p.Name == "Kitchen" &&
						p.FloorLabel == "Ground Floor" &&
						p.ExternalId != ""
				})).Return(createdRoom, nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "missing name",
			body:         CreateRoomRequest{FloorLabel: "Ground Floor"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing floor label",
			body:         CreateRoomRequest{Name: "Kitchen"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json body",
			body:         "invalid json",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockCurrentlyRepository{}
			defer mockRepo.AssertExpectations(t)
			if tc.setupMock != nil {
				tc.setupMock(mockRepo)
			}

			app := newTestApp(t, mockRepo)

			req := httptest.NewRequest(http.MethodPost, "/api/users/me/rooms", jsonBody(t, tc.body))
			req = req.WithContext(WithAccount(req.Context(), ownerAccount))

			rr := httptest.NewRecorder()
			app.createRoom(rr, req)

			assert.Equal(t, tc.expectedCode, rr.Code, "expected status code to be %d", tc.expectedCode)

			if tc.expectedCode == http.StatusCreated {
				var room types.Room
				err := json.NewDecoder(rr.Body).Decode(&room)
				assert.NoError(t, err, "expected response to decode")
				assert.Equal(t, createdRoom.ExternalId, room.Id)
				assert.Equal(t, createdRoom.Name, room.Name)
				assert.Equal(t, createdRoom.FloorLabel, room.FloorLabel)
			}
		})
	}
}

func TestListRooms(t *testing.T) {
	mockRepo := &database.MockCurrentlyRepository{}
	defer mockRepo.AssertExpectations(t)

	rooms := []database.Room{
		{Id: 1, ExternalId: "ext-1", AccountId: ownerAccount.Id, Name: "Bedroom", FloorLabel: "First Floor"},
		{Id: 2, ExternalId: "ext-2", AccountId: ownerAccount.Id, Name: "Kitchen", FloorLabel: "Ground Floor"},
	}
	mockRepo.On("ListRooms", ownerAccount.Id).Return(rooms, nil).Once()

	app := newTestApp(t, mockRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me/rooms", nil)
	req = req.WithContext(WithAccount(req.Context(), ownerAccount))

	rr := httptest.NewRecorder()
	app.listRooms(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "expected status code to be 200")

	var resp []types.Room
	err := json.NewDecoder(rr.Body).Decode(&resp)
	assert.NoError(t, err, "expected response to decode")
	assert.Len(t, resp, 2, "expected two rooms")
	assert.Equal(t, "ext-1", resp[0].Id)
	assert.Equal(t, "ext-2", resp[1].Id)
}

func TestUpdateRoom(t *testing.T) {
	existing := database.Room{
		Id:         10,
		ExternalId: "room-ext-1",
		AccountId:  ownerAccount.Id,
		Name:       "Kitchen",
		FloorLabel: "Ground Floor",
		Type:       "Kitchen",
	}

	newName := "Kitchen Diner"

	tcases := []struct {
		name         string
		account      database.Account
		body         any
		setupMock    func(m *database.MockCurrentlyRepository)
		expectedCode int
	}{
		{
			name:    "partial update leaves other fields unchanged",
			account: ownerAccount,
			body:    UpdateRoomRequest{Name: &newName},
			setupMock: func(m *database.MockCurrentlyRepository) {
				m.On("GetRoomByExternalId", existing.ExternalId).Return(existing, nil).Once()
				m.On("UpdateRoom", database.UpdateRoomParams{
					RoomId:     existing.Id,
					Name:       newName,
					FloorLabel: existing.FloorLabel,
					Type:       existing.Type,
				}).Return(database.Room{
					Id:         existing.Id,
					ExternalId: existing.ExternalId,
					AccountId:  existing.AccountId,
					Name:       newName,
					FloorLabel: existing.FloorLabel,
					Type:       existing.Type,
				}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "room not found",
			account: ownerAccount,
			body:    UpdateRoomRequest{Name: &newName},
			setupMock: func(m *database.MockCurrentlyRepository) {
				m.On("GetRoomByExternalId", existing.ExternalId).Return(database.Room{}, sql.ErrNoRows).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "owned by a different account",
			account: otherAccount,
			body:    UpdateRoomRequest{Name: &newName},
			setupMock: func(m *database.MockCurrentlyRepository) {
				m.On("GetRoomByExternalId", existing.ExternalId).Return(existing, nil).Once()
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockCurrentlyRepository{}
			defer mockRepo.AssertExpectations(t)
			if tc.setupMock != nil {
				tc.setupMock(mockRepo)
			}

			app := newTestApp(t, mockRepo)

			req := httptest.NewRequest(http.MethodPut, "/api/users/me/rooms/"+existing.ExternalId, jsonBody(t, tc.body))
			req = req.WithContext(WithAccount(req.Context(), tc.account))
			req = withUrlParam(req, "id", existing.ExternalId)

			rr := httptest.NewRecorder()
			app.updateRoom(rr, req)

			assert.Equal(t, tc.expectedCode, rr.Code, "expected status code to be %d", tc.expectedCode)
		})
	}
}

func TestDeleteRoom(t *testing.T) {
	existing := database.Room{
		Id:         10,
		ExternalId: "room-ext-1",
		AccountId:  ownerAccount.Id,
		Name:       "Kitchen",
		FloorLabel: "Ground Floor",
	}

	tcases := []struct {
		name         string
		account      database.Account
		setupMock    func(m *database.MockCurrentlyRepository)
		expectedCode int
	}{
		{
			name:    "owner deletes room",
			account: ownerAccount,
			setupMock: func(m *database.MockCurrentlyRepository) {
				m.On("GetRoomByExternalId", existing.ExternalId).Return(existing, nil).Once()
				m.On("DeleteRoom", existing.Id).Return(nil).Once()
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:    "non-owner is rejected",
			account: otherAccount,
			setupMock: func(m *database.MockCurrentlyRepository) {
				m.On("GetRoomByExternalId", existing.ExternalId).Return(existing, nil).Once()
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:    "room not found",
			account: ownerAccount,
			setupMock: func(m *database.MockCurrentlyRepository) {
				m.On("GetRoomByExternalId", existing.ExternalId).Return(database.Room{}, sql.ErrNoRows).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockCurrentlyRepository{}
			defer mockRepo.AssertExpectations(t)
			if tc.setupMock != nil {
				tc.setupMock(mockRepo)
			}

			app := newTestApp(t, mockRepo)

			req := httptest.NewRequest(http.MethodDelete, "/api/users/me/rooms/"+existing.ExternalId, nil)
			req = req.WithContext(WithAccount(req.Context(), tc.account))
			req = withUrlParam(req, "id", existing.ExternalId)

			rr := httptest.NewRecorder()
			app.deleteRoom(rr, req)

			assert.Equal(t, tc.expectedCode, rr.Code, "expected status code to be %d", tc.expectedCode)
		})
	}
}
