package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)

	token, err := m.GenerateStaffToken("admin")
	require.NoError(t, err)

	claims, err := m.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Minute).GenerateStaffToken("admin")
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", time.Minute).ParseAndValidate(token)
	assert.Error(t, err)
}

func TestJWTRejectsExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)
	token, err := m.GenerateStaffToken("admin")
	require.NoError(t, err)

	_, err = m.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestStaffVerifier(t *testing.T) {
	hasher := NewBcryptPasswordHasherWithCost(4)
	hash, err := hasher.Hash("hunter2")
	require.NoError(t, err)

	v := NewStaffVerifier("admin", hash, hasher)

	assert.NoError(t, v.Verify("admin", "hunter2"))
	assert.ErrorIs(t, v.Verify("admin", "wrong"), ErrBadCredentials)
	assert.ErrorIs(t, v.Verify("someone", "hunter2"), ErrBadCredentials)
}

func TestStaffRequiredExposesUsername(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewJWTManager("test-secret", time.Minute)
	token, err := m.GenerateStaffToken("admin")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/staff", StaffRequired(m), func(c *gin.Context) {
		c.String(http.StatusOK, GetStaffUsername(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/staff", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String(), "handlers see the acting staff user")
}

func TestStaffRequiredRejectsBadTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewJWTManager("test-secret", time.Minute)

	r := gin.New()
	r.GET("/staff", StaffRequired(m), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"garbage token":  "Bearer not-a-jwt",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/staff", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
