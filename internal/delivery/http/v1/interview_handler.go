package v1

import (
	"net/http"

	"go-interview-backend/internal/delivery/http/response"
	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

// NewInterviewHandler registers interview session routes
func NewInterviewHandler(r *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := r.Group("/interviews")
	{
		interviews.POST("", handler.Create)
		interviews.GET("", handler.List)
		interviews.GET("/past-materials", handler.PastMaterials)
		interviews.GET("/:id", handler.Get)
		interviews.POST("/:id/submit", handler.Submit)
		interviews.POST("/:id/cancel", handler.Cancel)
		interviews.DELETE("/:id", handler.Delete)
	}
}

// CreateInterviewRequest is the request payload for creating an interview
type CreateInterviewRequest struct {
	JobRole        string `json:"job_role" binding:"required"`
	Industry       string `json:"industry"`
	Experience     string `json:"experience" binding:"required,oneof=Entry Mid Senior"`
	Mode           string `json:"mode" binding:"required,oneof=text audio video"`
	ResumeText     string `json:"resume_text" binding:"max=2000"`
	JobDescription string `json:"job_description"`
}

// Create godoc
// @Summary      Create and start an interview
// @Description  Creates a session, generates questions and starts it. Free-tier users are limited to 3 sessions per calendar month.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        body  body      CreateInterviewRequest  true  "Interview parameters"
// @Success      201   {object}  response.Response{data=domain.InterviewSession}
// @Failure      400   {object}  response.Response
// @Failure      402   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Router       /interviews [post]
// @Security     BearerAuth
func (h *InterviewHandler) Create(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	email := c.GetString(string(domain.KeyUserEmail))

	var req CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}

	session, err := h.interviewUC.CreateAndStart(c.Request.Context(), domain.CreateInterviewParams{
		UserID:         userID,
		Email:          email,
		JobRole:        req.JobRole,
		Industry:       req.Industry,
		Experience:     req.Experience,
		Mode:           req.Mode,
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview started", session)
}

// Get godoc
// @Summary      Get an interview session
// @Tags         interviews
// @Produce      json
// @Param        id  path      string  true  "Session ID"
// @Success      200 {object}  response.Response{data=domain.InterviewSession}
// @Failure      403 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /interviews/{id} [get]
// @Security     BearerAuth
func (h *InterviewHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	session, err := h.interviewUC.Get(c.Request.Context(), userID, role, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview retrieved", session)
}

// List godoc
// @Summary      List interview sessions
// @Description  Lists the caller's sessions, newest first. Admins may pass user_id to inspect another account.
// @Tags         interviews
// @Produce      json
// @Param        user_id  query     string  false  "Target user (admin only)"
// @Success      200      {object}  response.Response{data=[]domain.InterviewSession}
// @Failure      403      {object}  response.Response
// @Router       /interviews [get]
// @Security     BearerAuth
func (h *InterviewHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	sessions, err := h.interviewUC.List(c.Request.Context(), userID, role, c.Query("user_id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interviews retrieved", sessions)
}

// SubmitInterviewRequest is the request payload for submitting answers
type SubmitInterviewRequest struct {
	Answers []string `json:"answers"`
	Mode    string   `json:"mode"`
}

// Submit godoc
// @Summary      Submit interview answers
// @Description  Persists the answer sequence and completes the session. Feedback is scored in the background. For video interviews the camera-release signal is emitted whether or not the submit succeeds.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Session ID"
// @Param        body  body      SubmitInterviewRequest  true  "Answers"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /interviews/{id}/submit [post]
// @Security     BearerAuth
func (h *InterviewHandler) Submit(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req SubmitInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}

	if err := h.interviewUC.Submit(c.Request.Context(), userID, c.Param("id"), req.Answers, req.Mode); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview submitted", nil)
}

// Cancel godoc
// @Summary      Cancel an interview
// @Tags         interviews
// @Produce      json
// @Param        id  path      string  true  "Session ID"
// @Success      200 {object}  response.Response
// @Failure      400 {object}  response.Response
// @Failure      403 {object}  response.Response
// @Router       /interviews/{id}/cancel [post]
// @Security     BearerAuth
func (h *InterviewHandler) Cancel(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.interviewUC.Cancel(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview cancelled", nil)
}

// Delete godoc
// @Summary      Delete an interview
// @Description  Removes a session. Deleting an id that no longer exists also succeeds.
// @Tags         interviews
// @Produce      json
// @Param        id  path      string  true  "Session ID"
// @Success      200 {object}  response.Response
// @Failure      403 {object}  response.Response
// @Router       /interviews/{id} [delete]
// @Security     BearerAuth
func (h *InterviewHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if err := h.interviewUC.Delete(c.Request.Context(), userID, role, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview deleted", nil)
}

// PastMaterials godoc
// @Summary      Get past resume texts and job descriptions
// @Tags         interviews
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.PastMaterials}
// @Router       /interviews/past-materials [get]
// @Security     BearerAuth
func (h *InterviewHandler) PastMaterials(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	materials, err := h.interviewUC.PastMaterials(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Past materials retrieved", materials)
}
