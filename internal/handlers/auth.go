package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/tasknest-dev/tasknest/db"
	"github.com/tasknest-dev/tasknest/internal/auth"
	"github.com/tasknest-dev/tasknest/internal/models"
	"github.com/tasknest-dev/tasknest/internal/types"
	"github.com/tasknest-dev/tasknest/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// validationMessages turns binding failures into one message per violated
// rule, so a bad signup reports every problem at once.
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors

	if !errors.As(err, &verrs) {
		return []string{"Invalid request body"}
	}

	messages := make([]string, 0, len(verrs))

	for _, fe := range verrs {
		switch {
		case fe.Field() == "Email" && fe.Tag() == "email":
			messages = append(messages, "Invalid email address")
		case fe.Tag() == "required":
			messages = append(messages, fmt.Sprintf("%s is required", fe.Field()))
		case fe.Tag() == "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}

	return messages
}

func Signup(ctx *gin.Context) {
	var req SignupRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": validationMessages(err)})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var existingUser models.User

	err := db.DB.Where("email = ?", req.Email).First(&existingUser).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	newUser := models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        req.Email,
		PasswordHash: string(passwordHash),
	}

	if err := db.DB.Create(&newUser).Error; err != nil {
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	token, err := issueSession(ctx, &newUser)

	if err != nil {
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"user": types.UserResponse{
			ID:       newUser.ID,
			Username: newUser.Username,
			Email:    newUser.Email,
		},
		"token": token,
	})
}

func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": validationMessages(err)})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User

	err := db.DB.Where("email = ?", req.Email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same response as a wrong password, to avoid account enumeration.
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		log.Printf("Database error when fetching user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := issueSession(ctx, &user)

	if err != nil {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
		"token": token,
	})
}

// issueSession generates a token, sets the session cookie, and records the
// advisory last_token copy. Writes the error response itself on failure.
func issueSession(ctx *gin.Context, user *models.User) (string, error) {
	token, err := auth.GenerateJWT(user.ID, user.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return "", err
	}

	if err := db.DB.Model(user).Update("last_token", token).Error; err != nil {
		log.Printf("Failed to record issued token for user %d: %v", user.ID, err)
	}

	auth.SetSessionCookie(ctx.Writer, token)

	return token, nil
}

func Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:       currentUser.ID,
			Username: currentUser.Username,
			Email:    currentUser.Email,
		},
	})
}

func Logout(ctx *gin.Context) {
	auth.ClearSessionCookie(ctx.Writer)

	ctx.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}
