package userControllers

import (
	"net/http"

	"github.com/chikankari-studio/storefront-api/models"
	"github.com/chikankari-studio/storefront-api/store"
	"github.com/gin-gonic/gin"
)

type UpdateProfileInput struct {
	FullName       *string         `json:"full_name"`
	Email          *string         `json:"email"`
	DefaultAddress *models.Address `json:"default_address"`
}

// GET /user/profile
func GetProfile(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		profile, err := loadProfile(sel, userID)
		if err != nil || profile == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// PUT /user/profile
func UpdateProfile(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		profile, err := loadProfile(sel, userID)
		if err != nil || profile == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.FullName != nil {
			profile.FullName = *input.FullName
		}
		if input.Email != nil {
			profile.Email = *input.Email
		}
		if input.DefaultAddress != nil {
			profile.DefaultAddress = *input.DefaultAddress
		}

		if store.IsDemoUser(userID) {
			err = sel.Demo().SaveProfile(profile)
		} else {
			err = sel.Remote().DB().Save(profile).Error
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

func loadProfile(sel *store.Selector, userID string) (*models.UserProfile, error) {
	if store.IsDemoUser(userID) {
		return sel.Demo().Profile()
	}
	var profile models.UserProfile
	if err := sel.Remote().DB().First(&profile, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
