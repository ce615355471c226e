package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/liamo132/currently-server/internal/catalog"
	"github.com/liamo132/currently-server/internal/database"
	"github.com/stretchr/testify/assert"
)

func Test_healthCheck(t *testing.T) {
	tcases := []struct {
		name         string
		setupMock    func(m *database.MockCurrentlyRepository)
		expectedCode int
		expectedBody string
	}{
		{
			name: "database reachable",
			setupMock: func(m *database.MockCurrentlyRepository) {
				m.On("Ping").Return(nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: "OK",
		},
		{
			name: "database unreachable",
			setupMock: func(m *database.MockCurrentlyRepository) {
				m.On("Ping").Return(errors.New("connection refused")).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockCurrentlyRepository{}
			defer mockRepo.AssertExpectations(t)
			tc.setupMock(mockRepo)

			app := newTestApp(t, mockRepo)

			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			rr := httptest.NewRecorder()
			app.healthCheck(rr, req)

			assert.Equal(t, tc.expectedCode, rr.Code, "expected status code to be %d", tc.expectedCode)
			if tc.expectedBody != "" {
				assert.Equal(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}

func Test_listCatalogue(t *testing.T) {
	app := newTestApp(t, &database.MockCurrentlyRepository{})

	req := httptest.NewRequest(http.MethodGet, "/api/appliances", nil)
	rr := httptest.NewRecorder()
	app.listCatalogue(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "expected status code to be 200")

	var archetypes []catalog.Archetype
	err := json.NewDecoder(rr.Body).Decode(&archetypes)
	assert.NoError(t, err, "expected response to decode")
	assert.Len(t, archetypes, 2, "expected the full catalogue")

	names := []string{archetypes[0].Name, archetypes[1].Name}
	assert.Contains(t, names, "Fridge")
	assert.Contains(t, names, "Kettle")
}
