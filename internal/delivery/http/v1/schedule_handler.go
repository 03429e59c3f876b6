package v1

import (
	"net/http"
	"time"

	"go-interview-backend/internal/delivery/http/response"
	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleUC domain.ScheduleUsecase
}

// NewScheduleHandler registers scheduled-mock routes
func NewScheduleHandler(r *gin.RouterGroup, scheduleUC domain.ScheduleUsecase) {
	handler := &ScheduleHandler{scheduleUC: scheduleUC}

	mocks := r.Group("/schedule-mocks")
	{
		mocks.POST("", handler.Schedule)
		mocks.GET("", handler.List)
		mocks.POST("/:id/take", handler.Take)
		mocks.DELETE("/:id", handler.Delete)
	}
}

// ScheduleMockRequest is the request payload for scheduling a mock.
// Time arrives as the 12-hour clock components the scheduling form uses.
type ScheduleMockRequest struct {
	Date           string `json:"date" binding:"required"`
	Hour           int    `json:"hour" binding:"required,min=1,max=12"`
	Minute         int    `json:"minute" binding:"min=0,max=59"`
	Second         int    `json:"second" binding:"min=0,max=59"`
	Meridiem       string `json:"meridiem" binding:"required,oneof=AM PM"`
	Mode           string `json:"mode" binding:"required,oneof=text audio video"`
	JobRole        string `json:"job_role" binding:"required"`
	Industry       string `json:"industry"`
	Experience     string `json:"experience" binding:"required,oneof=Entry Mid Senior"`
	ResumeText     string `json:"resume_text" binding:"max=2000"`
	JobDescription string `json:"job_description"`
}

// scheduledMockView decorates a mock with its derived status.
type scheduledMockView struct {
	domain.ScheduledMock
	Status string `json:"status"`
}

// Schedule godoc
// @Summary      Schedule a mock interview
// @Description  Stores a future-dated mock. 12 AM maps to midnight and 12 PM to noon.
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        body  body      ScheduleMockRequest  true  "Schedule parameters"
// @Success      201   {object}  response.Response{data=domain.ScheduledMock}
// @Failure      400   {object}  response.Response
// @Router       /schedule-mocks [post]
// @Security     BearerAuth
func (h *ScheduleHandler) Schedule(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	email := c.GetString(string(domain.KeyUserEmail))

	var req ScheduleMockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}

	mock, err := h.scheduleUC.Schedule(c.Request.Context(), domain.ScheduleInput{
		UserID:         userID,
		Email:          email,
		Date:           req.Date,
		Hour:           req.Hour,
		Minute:         req.Minute,
		Second:         req.Second,
		Meridiem:       req.Meridiem,
		Mode:           req.Mode,
		JobRole:        req.JobRole,
		Industry:       req.Industry,
		Experience:     req.Experience,
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Mock interview scheduled", mock)
}

// List godoc
// @Summary      List scheduled mocks
// @Description  Returns the caller's scheduled mocks with their derived Upcoming/Expired status.
// @Tags         schedule
// @Produce      json
// @Success      200  {object}  response.Response{data=[]scheduledMockView}
// @Router       /schedule-mocks [get]
// @Security     BearerAuth
func (h *ScheduleHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	mocks, err := h.scheduleUC.List(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	now := time.Now()
	views := make([]scheduledMockView, 0, len(mocks))
	for _, m := range mocks {
		views = append(views, scheduledMockView{ScheduledMock: m, Status: m.StatusAt(now)})
	}

	response.Success(c, http.StatusOK, "Scheduled mocks retrieved", views)
}

// Take godoc
// @Summary      Take a scheduled mock
// @Description  Starts a fresh interview session from the mock's stored parameters. The mock itself is kept.
// @Tags         schedule
// @Produce      json
// @Param        id  path      string  true  "Mock ID"
// @Success      201 {object}  response.Response{data=domain.InterviewSession}
// @Failure      402 {object}  response.Response
// @Failure      403 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /schedule-mocks/{id}/take [post]
// @Security     BearerAuth
func (h *ScheduleHandler) Take(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	session, err := h.scheduleUC.Take(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview started from scheduled mock", session)
}

// Delete godoc
// @Summary      Delete a scheduled mock
// @Description  Removes a scheduled mock. Deleting an id that no longer exists also succeeds.
// @Tags         schedule
// @Produce      json
// @Param        id  path      string  true  "Mock ID"
// @Success      200 {object}  response.Response
// @Failure      403 {object}  response.Response
// @Router       /schedule-mocks/{id} [delete]
// @Security     BearerAuth
func (h *ScheduleHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.scheduleUC.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Scheduled mock deleted", nil)
}
