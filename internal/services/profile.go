package services

import (
	"errors"
	"fmt"
	"io"

	"gorm.io/gorm"

	"bookshelf/internal/auth"
	"bookshelf/internal/entities"
)

// UserStore defines the database operations the profile service needs.
type UserStore interface {
	GetByID(id uint) (*entities.User, error)
	EmailTaken(email string, excludeID uint) (bool, error)
	Update(user *entities.User) error
}

// PictureStore persists and removes stored profile picture files.
type PictureStore interface {
	SaveProfilePicture(src io.Reader, originalName string) (string, error)
	DeleteProfilePicture(filename string) error
}

// ProfileInput carries the writable fields of a user profile.
type ProfileInput struct {
	Name            string
	Email           string
	CurrentPassword string // required when NewPassword is set
	NewPassword     string
	Picture         *Upload
}

// ProfileService updates user profiles: name, email, optional password
// change (verified against the current password), and optional profile
// picture replacement.
type ProfileService struct {
	users      UserStore
	pictures   PictureStore
	bcryptCost int
}

// NewProfileService creates a profile service.
func NewProfileService(users UserStore, pictures PictureStore, bcryptCost int) *ProfileService {
	return &ProfileService{users: users, pictures: pictures, bcryptCost: bcryptCost}
}

// UpdateProfile validates and applies the profile changes. A wrong
// current password fails with ErrWrongPassword; replacing the picture
// deletes the previously stored file once the row is saved.
func (s *ProfileService) UpdateProfile(userID uint, input ProfileInput) (*entities.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := s.validateProfileInput(input, userID); err != nil {
		return nil, err
	}

	if input.NewPassword != "" {
		if err := auth.CheckPassword(input.CurrentPassword, user.PasswordHash); err != nil {
			return nil, ErrWrongPassword
		}
		hash, err := auth.HashPassword(input.NewPassword, s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	oldPicture := ""
	if input.Picture != nil {
		filename, err := s.pictures.SaveProfilePicture(input.Picture.Reader, input.Picture.Filename)
		if err != nil {
			return nil, fmt.Errorf("store profile picture: %w", err)
		}
		oldPicture = user.ProfilePicture
		user.ProfilePicture = filename
	}

	user.Name = input.Name
	user.Email = input.Email

	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	if oldPicture != "" {
		if err := s.pictures.DeleteProfilePicture(oldPicture); err != nil {
			return nil, fmt.Errorf("delete old profile picture: %w", err)
		}
	}

	return user, nil
}

func (s *ProfileService) validateProfileInput(input ProfileInput, userID uint) error {
	v := newValidationError()

	if input.Name == "" {
		v.add("name", "name is required")
	} else if len(input.Name) > 255 {
		v.add("name", "name must be at most 255 characters")
	}

	if input.Email == "" {
		v.add("email", "email is required")
	} else if !auth.IsValidEmail(input.Email) {
		v.add("email", "invalid email format")
	} else {
		taken, err := s.users.EmailTaken(input.Email, userID)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if taken {
			v.add("email", "email is already taken")
		}
	}

	if input.NewPassword != "" {
		if len(input.NewPassword) < auth.MinPasswordLength {
			v.add("password", fmt.Sprintf("password must be at least %d characters", auth.MinPasswordLength))
		}
		if input.CurrentPassword == "" {
			v.add("current_password", "current password is required to change the password")
		}
	}

	return v.orNil()
}
