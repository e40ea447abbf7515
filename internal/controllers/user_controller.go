package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bus_depot/internal/auth"
	"bus_depot/internal/models"
	"bus_depot/internal/repository"
)

type UserController struct {
	users *repository.UserRepository
}

func NewUserController(users *repository.UserRepository) *UserController {
	return &UserController{users: users}
}

// userInput is the create/update payload. The plaintext password arrives
// here and only here; it is hashed before anything touches the repository.
type userInput struct {
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required"`
	PhoneNumber *string `json:"phone_number"`
	IsAdmin     bool    `json:"is_admin"`
}

func (in userInput) toModel() (models.User, error) {
	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}
	return models.User{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Password:    hashed,
		PhoneNumber: in.PhoneNumber,
		IsAdmin:     in.IsAdmin,
	}, nil
}

func (uc *UserController) List(c *gin.Context) {
	users, err := uc.users.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) Get(c *gin.Context) {
	id, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	user, err := uc.users.Get(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) Create(c *gin.Context) {
	var in userInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := in.toModel()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}
	if err := uc.users.Create(c.Request.Context(), &user); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (uc *UserController) Update(c *gin.Context) {
	id, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	var in userInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := in.toModel()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}
	if err := uc.users.Update(c.Request.Context(), id, &user); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) Delete(c *gin.Context) {
	id, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	if err := uc.users.Delete(c.Request.Context(), id); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
