package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectorHandler(t *testing.T) {
	c := NewCollector()

	c.RecordRegistration()
	c.RecordLogin(true)
	c.RecordLogin(false)
	c.RecordTokenRejection()
	c.RecordRoomOp("create")
	c.RecordApplianceOp("delete")

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	c.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "expected metrics endpoint to respond 200")
	body := rr.Body.String()
	assert.Contains(t, body, "currently_registrations_total 1")
	assert.Contains(t, body, `currently_logins_total{success="true"} 1`)
	assert.Contains(t, body, `currently_logins_total{success="false"} 1`)
	assert.Contains(t, body, "currently_token_rejections_total 1")
	assert.Contains(t, body, `currently_room_operations_total{op="create"} 1`)
	assert.Contains(t, body, `currently_appliance_operations_total{op="delete"} 1`)
}
