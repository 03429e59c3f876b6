package v1

import (
	"net/http"
	"strconv"

	"go-interview-backend/internal/delivery/http/response"
	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

// NewAdminHandler registers admin panel routes. Role enforcement lives in
// the usecase, which reads the authenticated role off the request context.
func NewAdminHandler(r *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := r.Group("/admin")
	{
		admin.GET("/stats", handler.GetStats)
		admin.GET("/users", handler.ListUsers)
		admin.PATCH("/users/:id", handler.UpdateUser)
		admin.GET("/interviews", handler.ListSessions)
		admin.PATCH("/interviews/:id", handler.UpdateSession)
		admin.DELETE("/interviews/:id", handler.DeleteSession)
		admin.GET("/export/activity.csv", handler.ExportActivity)
	}
}

// GetStats godoc
// @Summary      Get dashboard counters
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.AdminStats}
// @Failure      403  {object}  response.Response
// @Router       /admin/stats [get]
// @Security     BearerAuth
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminUC.GetStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Stats retrieved", stats)
}

// ListUsers godoc
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Router       /admin/users [get]
// @Security     BearerAuth
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.adminUC.ListUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users retrieved", result)
}

// UpdateUser godoc
// @Summary      Update a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "User ID"
// @Param        body  body      domain.AdminUpdateUser  true  "Fields to update"
// @Success      200   {object}  response.Response{data=domain.User}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/users/{id} [patch]
// @Security     BearerAuth
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req domain.AdminUpdateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}

	user, err := h.adminUC.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated", user)
}

// ListSessions godoc
// @Summary      List all interview sessions
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.InterviewSession}
// @Failure      403  {object}  response.Response
// @Router       /admin/interviews [get]
// @Security     BearerAuth
func (h *AdminHandler) ListSessions(c *gin.Context) {
	sessions, err := h.adminUC.ListSessions(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Sessions retrieved", sessions)
}

// UpdateSession godoc
// @Summary      Update an interview session
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Session ID"
// @Param        body  body      domain.AdminUpdateSession  true  "Fields to update"
// @Success      200   {object}  response.Response{data=domain.InterviewSession}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/interviews/{id} [patch]
// @Security     BearerAuth
func (h *AdminHandler) UpdateSession(c *gin.Context) {
	var req domain.AdminUpdateSession
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}

	session, err := h.adminUC.UpdateSession(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Session updated", session)
}

// DeleteSession godoc
// @Summary      Delete an interview session
// @Tags         admin
// @Produce      json
// @Param        id  path      string  true  "Session ID"
// @Success      200 {object}  response.Response
// @Failure      403 {object}  response.Response
// @Router       /admin/interviews/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteSession(c *gin.Context) {
	if err := h.adminUC.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Session deleted", nil)
}

// ExportActivity godoc
// @Summary      Export session activity as CSV
// @Tags         admin
// @Produce      text/csv
// @Success      200  {string}  string  "CSV body"
// @Failure      403  {object}  response.Response
// @Router       /admin/export/activity.csv [get]
// @Security     BearerAuth
func (h *AdminHandler) ExportActivity(c *gin.Context) {
	data, err := h.adminUC.ExportActivityCSV(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="activity.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
