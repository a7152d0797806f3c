package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/labourlink-api/internal/dto"
	apierrors "github.com/yukikurage/labourlink-api/internal/errors"
	"github.com/yukikurage/labourlink-api/internal/services"
)

// ProfileHandler handles the caller's own profile
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile returns the caller's profile or an unsaved default
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	profile, isNew, err := h.profileService.GetProfile(c.Request.Context(), actor)
	if err != nil {
		respondInternalError(c, "get profile", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*profile, isNew))
}

// UpdateProfile saves the caller's profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), actor, services.UpdateProfileInput{
		Skills:             req.Skills,
		ExperienceYears:    req.ExperienceYears,
		PreferredLocations: req.PreferredLocations,
		Bio:                req.Bio,
		CompanyName:        req.CompanyName,
		CompanyAddress:     req.CompanyAddress,
		CompanyType:        req.CompanyType,
		Website:            req.Website,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNegativeExperience),
			errors.Is(err, services.ErrInvalidRole):
			apierrors.BadRequest(c, err.Error())
		default:
			respondInternalError(c, "update profile", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated",
		"profile": dto.ToProfileDTO(*profile, false),
	})
}
