package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/services"
)

type ProfileController struct {
	profiles Profiles
	users    UserResolver
}

func NewProfileController(profiles Profiles, users UserResolver) *ProfileController {
	return &ProfileController{profiles: profiles, users: users}
}

// Show returns the caller's account details.
// GET /profile
func (controller *ProfileController) Show(c *gin.Context) {
	user, err := controller.users.GetUserByID(GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "load profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Update changes the caller's name, email, and optionally password and
// profile picture. A password change requires the current password.
// PUT /profile (multipart form, optional profile_picture file)
func (controller *ProfileController) Update(c *gin.Context) {
	input := services.ProfileInput{
		Name:            c.PostForm("name"),
		Email:           c.PostForm("email"),
		CurrentPassword: c.PostForm("current_password"),
		NewPassword:     c.PostForm("new_password"),
	}

	if fileHeader, err := c.FormFile("profile_picture"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			respondBadRequest(c, "could not read profile_picture")
			return
		}
		defer file.Close()
		input.Picture = &services.Upload{Reader: file, Filename: fileHeader.Filename}
	}

	user, err := controller.profiles.UpdateProfile(GetUserID(c), input)
	if err != nil {
		respondServiceError(c, err, "profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
