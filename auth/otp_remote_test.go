package auth

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/chikankari-studio/storefront-api/models"
	"github.com/chikankari-studio/storefront-api/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const realPhone = "9876543210"

func newRemoteAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "auth.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserProfile{}, &models.OTPChallenge{}))

	sel, err := store.NewSelector(db, t.TempDir())
	require.NoError(t, err)

	r := gin.New()
	r.POST("/auth/send-otp", SendOTP(sel))
	r.POST("/auth/verify-otp", VerifyOTP(sel))
	r.POST("/auth/profile", CreateProfile(sel))
	return r, db
}

func seedChallenge(t *testing.T, db *gorm.DB, code string, expiresAt time.Time, consumed bool) models.OTPChallenge {
	t.Helper()
	challenge := models.OTPChallenge{
		ID:          uuid.NewString(),
		PhoneNumber: realPhone,
		Code:        code,
		ExpiresAt:   expiresAt,
		Consumed:    consumed,
	}
	require.NoError(t, db.Create(&challenge).Error)
	return challenge
}

func seedProfile(t *testing.T, db *gorm.DB) models.UserProfile {
	t.Helper()
	profile := models.UserProfile{
		ID:          uuid.NewString(),
		PhoneNumber: realPhone,
		FullName:    "Asha Verma",
	}
	require.NoError(t, db.Create(&profile).Error)
	return profile
}

func TestSendOTPRealPhoneRecordsChallenge(t *testing.T) {
	r, db := newRemoteAuthRouter(t)

	w := postJSON(r, "/auth/send-otp", SendOTPRequest{Phone: realPhone}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var challenge models.OTPChallenge
	require.NoError(t, db.Where("phone_number = ?", realPhone).First(&challenge).Error)
	assert.Regexp(t, `^\d{6}$`, challenge.Code)
	assert.False(t, challenge.Consumed)
	assert.True(t, challenge.ExpiresAt.After(time.Now()))
}

func TestVerifyOTPRealPhoneSignsInDirectly(t *testing.T) {
	r, db := newRemoteAuthRouter(t)
	profile := seedProfile(t, db)
	challenge := seedChallenge(t, db, "654321", time.Now().Add(otpTTL), false)

	w := postJSON(r, "/auth/verify-otp", VerifyOTPRequest{Phone: realPhone, OTP: "654321"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// existing profile: signed in straight away, no profile-creation detour
	var resp struct {
		Token           string `json:"token"`
		ProfileRequired bool   `json:"profile_required"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	assert.False(t, resp.ProfileRequired)

	claims, err := ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, RoleSession, claims["role"])
	assert.Equal(t, profile.ID, claims["user_id"])

	var reloaded models.OTPChallenge
	require.NoError(t, db.First(&reloaded, "id = ?", challenge.ID).Error)
	assert.True(t, reloaded.Consumed, "a used code cannot be replayed")
}

func TestVerifyOTPRealPhoneNewUserRequiresProfile(t *testing.T) {
	r, db := newRemoteAuthRouter(t)
	seedChallenge(t, db, "654321", time.Now().Add(otpTTL), false)

	w := postJSON(r, "/auth/verify-otp", VerifyOTPRequest{Phone: realPhone, OTP: "654321"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ProfileRequired bool   `json:"profile_required"`
		SignupToken     string `json:"signup_token"`
		Token           string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.ProfileRequired)
	assert.NotEmpty(t, resp.SignupToken)
	assert.Empty(t, resp.Token, "not signed in until the profile exists")
}

func TestVerifyOTPRealPhoneWrongCode(t *testing.T) {
	r, db := newRemoteAuthRouter(t)
	challenge := seedChallenge(t, db, "654321", time.Now().Add(otpTTL), false)

	w := postJSON(r, "/auth/verify-otp", VerifyOTPRequest{Phone: realPhone, OTP: "111111"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// a failed attempt does not burn the challenge
	var reloaded models.OTPChallenge
	require.NoError(t, db.First(&reloaded, "id = ?", challenge.ID).Error)
	assert.False(t, reloaded.Consumed)
}

func TestVerifyOTPRealPhoneExpiredCode(t *testing.T) {
	r, db := newRemoteAuthRouter(t)
	seedChallenge(t, db, "654321", time.Now().Add(-time.Minute), false)

	w := postJSON(r, "/auth/verify-otp", VerifyOTPRequest{Phone: realPhone, OTP: "654321"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyOTPRealPhoneNoPendingChallenge(t *testing.T) {
	r, _ := newRemoteAuthRouter(t)

	w := postJSON(r, "/auth/verify-otp", VerifyOTPRequest{Phone: realPhone, OTP: "654321"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No pending OTP")
}

func TestVerifyOTPRealPhoneConsumedChallengeRejected(t *testing.T) {
	r, db := newRemoteAuthRouter(t)
	seedChallenge(t, db, "654321", time.Now().Add(otpTTL), true)

	w := postJSON(r, "/auth/verify-otp", VerifyOTPRequest{Phone: realPhone, OTP: "654321"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProfileRealPhoneThenSignIn(t *testing.T) {
	r, db := newRemoteAuthRouter(t)
	seedChallenge(t, db, "654321", time.Now().Add(otpTTL), false)

	verify := postJSON(r, "/auth/verify-otp", VerifyOTPRequest{Phone: realPhone, OTP: "654321"}, nil)
	require.Equal(t, http.StatusOK, verify.Code)
	var verifyResp struct {
		SignupToken string `json:"signup_token"`
	}
	require.NoError(t, json.Unmarshal(verify.Body.Bytes(), &verifyResp))

	w := postJSON(r, "/auth/profile",
		CreateProfileRequest{FullName: "Asha Verma"},
		map[string]string{"Authorization": verifyResp.SignupToken})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token   string             `json:"token"`
		Profile models.UserProfile `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.False(t, resp.Profile.IsAdmin, "real sign-ups are not admins")

	var saved models.UserProfile
	require.NoError(t, db.Where("phone_number = ?", realPhone).First(&saved).Error)
	assert.Equal(t, resp.Profile.ID, saved.ID)
}

func TestCreateProfileReplayedSignupTokenSignsIn(t *testing.T) {
	r, db := newRemoteAuthRouter(t)
	seedChallenge(t, db, "654321", time.Now().Add(otpTTL), false)

	verify := postJSON(r, "/auth/verify-otp", VerifyOTPRequest{Phone: realPhone, OTP: "654321"}, nil)
	require.Equal(t, http.StatusOK, verify.Code)
	var verifyResp struct {
		SignupToken string `json:"signup_token"`
	}
	require.NoError(t, json.Unmarshal(verify.Body.Bytes(), &verifyResp))
	headers := map[string]string{"Authorization": verifyResp.SignupToken}

	first := postJSON(r, "/auth/profile", CreateProfileRequest{FullName: "Asha Verma"}, headers)
	require.Equal(t, http.StatusOK, first.Code)

	// same token again (second tab): signed in against the existing row, no 500
	second := postJSON(r, "/auth/profile", CreateProfileRequest{FullName: "Asha Verma"}, headers)
	require.Equal(t, http.StatusOK, second.Code)

	var firstResp, secondResp struct {
		Profile models.UserProfile `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstResp))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondResp))
	assert.Equal(t, firstResp.Profile.ID, secondResp.Profile.ID)

	var count int64
	require.NoError(t, db.Model(&models.UserProfile{}).Where("phone_number = ?", realPhone).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
