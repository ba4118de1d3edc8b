package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/angadsxngh/rent-management-backend/internal/domain"
	"github.com/angadsxngh/rent-management-backend/internal/utils"
)

const (
	ownerID    = "11111111-1111-1111-1111-111111111111"
	tenantID   = "22222222-2222-2222-2222-222222222222"
	propertyID = "33333333-3333-3333-3333-333333333333"
)

// newTestContext builds a gin context for a JSON request made by userID under role.
// An empty userID leaves the request unauthenticated.
func newTestContext(method, path string, body any, userID string, role domain.Role) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewBuffer(raw)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	if userID != "" {
		claims := jwt.MapClaims{
			string(utils.UserIDKey): userID,
			string(utils.NameKey):   "Test User",
			string(utils.RolesKey):  []string{string(role)},
		}
		c.Request = c.Request.WithContext(utils.WithClaims(c.Request.Context(), claims))
	}
	return c, w
}

func decode[T any](w *httptest.ResponseRecorder) T {
	var out T
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return out
}
