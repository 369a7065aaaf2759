package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/chikankari-studio/storefront-api/models"
	"github.com/chikankari-studio/storefront-api/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateProfileRequest struct {
	FullName       string          `json:"full_name" binding:"required"`
	Email          string          `json:"email"`
	DefaultAddress *models.Address `json:"default_address"`
}

// POST /auth/profile
//
// Completes sign-up for a verified phone. Requires the signup token from
// verify-otp in the Authorization header.
func CreateProfile(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := ParseToken(c.GetHeader("Authorization"))
		if err != nil || claims["role"] != RoleSignup {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired signup token"})
			return
		}
		phone, _ := claims["phone"].(string)
		if phone == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		var req CreateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		profile := models.UserProfile{
			PhoneNumber: phone,
			FullName:    req.FullName,
			Email:       req.Email,
		}
		if req.DefaultAddress != nil {
			profile.DefaultAddress = *req.DefaultAddress
		}

		if phone == store.DemoPhone {
			profile.ID = store.DemoUserID
			profile.IsAdmin = true // demo identity gets back-office access
			if err := sel.Demo().SaveProfile(&profile); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save demo profile"})
				return
			}
		} else {
			db := sel.Remote().DB()

			// a replayed signup token after the profile exists just signs in
			var existing models.UserProfile
			err := db.Where("phone_number = ?", phone).First(&existing).Error
			if err == nil {
				respondSignedIn(c, &existing)
				return
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
				return
			}

			profile.ID = uuid.NewString()
			if err := db.Create(&profile).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
				return
			}
		}

		respondSignedIn(c, &profile)
	}
}

// GET /auth/session
//
// Resolves the bearer token to the current identity and profile. A failed
// profile fetch is logged and leaves profile null rather than failing the
// session.
func Session(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		phone := c.GetString("phone")

		var profile *models.UserProfile
		if store.IsDemoUser(userID) {
			p, err := sel.Demo().Profile()
			if err != nil {
				log.Println("❌ Failed to load demo profile:", err)
			} else {
				profile = p
			}
		} else {
			var p models.UserProfile
			if err := sel.Remote().DB().First(&p, "id = ?", userID).Error; err != nil {
				log.Println("❌ Failed to load profile:", err)
			} else {
				profile = &p
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"user":    gin.H{"id": userID, "phone": phone},
			"profile": profile,
		})
	}
}

// POST /auth/signout
//
// Session tokens are stateless; the only server-side state to drop is the
// demo bypass profile.
func SignOut(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if store.IsDemoUser(userID) {
			if err := sel.Demo().ClearProfile(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear demo session"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
	}
}
