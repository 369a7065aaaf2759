package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chikankari-studio/storefront-api/models"
	"github.com/chikankari-studio/storefront-api/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(t *testing.T) (*gin.Engine, *store.Selector) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	sel, err := store.NewSelector(nil, t.TempDir())
	require.NoError(t, err)

	r := gin.New()
	r.POST("/auth/send-otp", SendOTP(sel))
	r.POST("/auth/verify-otp", VerifyOTP(sel))
	r.POST("/auth/profile", CreateProfile(sel))
	return r, sel
}

func postJSON(r *gin.Engine, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSendOTPDemoPhoneShortCircuits(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/auth/send-otp", SendOTPRequest{Phone: store.DemoPhone}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["demo"])
}

func TestVerifyOTPDemoWrongCode(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/auth/verify-otp", VerifyOTPRequest{Phone: store.DemoPhone, OTP: "000000"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), store.DemoOTP)
}

func TestVerifyOTPDemoFirstTimeRequiresProfile(t *testing.T) {
	r, _ := newAuthRouter(t)

	// no saved demo profile: verification routes to profile creation
	w := postJSON(r, "/auth/verify-otp", VerifyOTPRequest{Phone: store.DemoPhone, OTP: store.DemoOTP}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ProfileRequired bool   `json:"profile_required"`
		SignupToken     string `json:"signup_token"`
		Token           string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.ProfileRequired)
	assert.NotEmpty(t, resp.SignupToken)
	assert.Empty(t, resp.Token, "not signed in yet")
}

func TestVerifyOTPDemoWithSavedProfileSignsIn(t *testing.T) {
	r, sel := newAuthRouter(t)
	require.NoError(t, sel.Demo().SaveProfile(&models.UserProfile{
		ID:          store.DemoUserID,
		PhoneNumber: store.DemoPhone,
		FullName:    "abhishek",
		IsAdmin:     true,
	}))

	w := postJSON(r, "/auth/verify-otp", VerifyOTPRequest{Phone: store.DemoPhone, OTP: store.DemoOTP}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token   string             `json:"token"`
		Profile models.UserProfile `json:"profile"`
		User    map[string]string  `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, store.DemoUserID, resp.User["id"])

	claims, err := ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, RoleSession, claims["role"])
	assert.Equal(t, store.DemoUserID, claims["user_id"])
}

func TestCreateProfileDemoGetsAdminAndSession(t *testing.T) {
	r, sel := newAuthRouter(t)

	verify := postJSON(r, "/auth/verify-otp", VerifyOTPRequest{Phone: store.DemoPhone, OTP: store.DemoOTP}, nil)
	require.Equal(t, http.StatusOK, verify.Code)
	var verifyResp struct {
		SignupToken string `json:"signup_token"`
	}
	require.NoError(t, json.Unmarshal(verify.Body.Bytes(), &verifyResp))

	w := postJSON(r, "/auth/profile",
		CreateProfileRequest{FullName: "abhishek"},
		map[string]string{"Authorization": verifyResp.SignupToken})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token   string             `json:"token"`
		Profile models.UserProfile `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, store.DemoUserID, resp.Profile.ID)
	assert.True(t, resp.Profile.IsAdmin)

	saved, err := sel.Demo().Profile()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "abhishek", saved.FullName)
}

func TestCreateProfileRejectsSessionToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	token, err := IssueSessionToken("user-1", "9876543210")
	require.NoError(t, err)

	w := postJSON(r, "/auth/profile",
		CreateProfileRequest{FullName: "someone"},
		map[string]string{"Authorization": token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGenerateOTPCode(t *testing.T) {
	code := GenerateOTPCode()
	assert.Regexp(t, `^\d{6}$`, code)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}
