package v1

import (
	"net/http"

	"go-interview-backend/internal/delivery/http/response"
	"go-interview-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC    domain.UserUsecase
	billingUC domain.BillingUsecase
}

// NewUserHandler registers account and plan routes
func NewUserHandler(r *gin.RouterGroup, userUC domain.UserUsecase, billingUC domain.BillingUsecase) {
	handler := &UserHandler{userUC: userUC, billingUC: billingUC}

	users := r.Group("/users")
	{
		users.GET("/me", handler.Me)
		users.GET("/me/plan", handler.GetPlan)
		users.DELETE("/:id", handler.DeleteAccount)
	}
}

// Me godoc
// @Summary      Get the authenticated user
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	email := c.GetString(string(domain.KeyUserEmail))

	user, err := h.userUC.GetOrProvision(c.Request.Context(), userID, email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved", user)
}

// GetPlan godoc
// @Summary      Get the caller's plan tier
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=string}
// @Router       /users/me/plan [get]
// @Security     BearerAuth
func (h *UserHandler) GetPlan(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	plan, err := h.billingUC.GetPlan(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Plan retrieved", gin.H{"plan": plan})
}

// DeleteAccount godoc
// @Summary      Delete an account
// @Description  Removes the user together with their interview sessions and scheduled mocks. Only the account holder may delete themselves.
// @Tags         users
// @Produce      json
// @Param        id  path      string  true  "User ID"
// @Success      200 {object}  response.Response
// @Failure      403 {object}  response.Response
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.userUC.DeleteAccount(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account deleted", nil)
}
