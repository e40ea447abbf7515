package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"bus_depot/internal/auth"
	"bus_depot/internal/repository"
)

// loginFailedMessage covers both unknown email and wrong password, so a
// probe cannot tell registered addresses apart.
const loginFailedMessage = "invalid email or password"

type AuthController struct {
	users  *repository.UserRepository
	tokens *auth.TokenService
}

func NewAuthController(users *repository.UserRepository, tokens *auth.TokenService) *AuthController {
	return &AuthController{users: users, tokens: tokens}
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login checks credentials and answers with a bearer token and the
// sanitized account.
func (ac *AuthController) Login(c *gin.Context) {
	var body loginInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.users.GetByEmail(c.Request.Context(), body.Email)
	if err != nil {
		// Only an unknown address is a credential failure; anything
		// else is an infrastructure problem and must not look like one.
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": loginFailedMessage})
			return
		}
		respondRepoError(c, err)
		return
	}

	if !auth.CheckPassword(body.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": loginFailedMessage})
		return
	}

	token, err := ac.tokens.Issue(user.Email)
	if err != nil {
		logrus.WithError(err).Error("could not sign token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
