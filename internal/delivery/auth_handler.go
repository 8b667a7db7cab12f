package delivery

import (
	"net/http"

	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	useCase usecase.UserUseCase
	log     *logrus.Logger
}

func NewAuthHandler(uc usecase.UserUseCase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *AuthHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind register request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.useCase.RegisterUser(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		h.log.Warnf("Registration failed for email %s: %v", req.Email, err)
		ErrorResponse(c, mapErrorToStatus(err), "Registration failed", err)
		return
	}

	h.log.Infof("User registered successfully: ID %d, Email %s", user.ID, user.Email)
	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind login request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	token, err := h.useCase.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		h.log.Warnf("Authentication failed for email %s: %v", req.Email, err)
		ErrorResponse(c, mapErrorToStatus(err), "Authentication failed", err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{Token: token})
}
