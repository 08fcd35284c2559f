package v1

import (
	"net/http"
	"strconv"
	"time"

	"jobify-backend/internal/delivery/http/response"
	"jobify-backend/internal/domain"
	"jobify-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(api *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", handler.Create)
		jobs.GET("/stats", handler.Stats)
		jobs.GET("/interviews", handler.Interviews)
		jobs.GET("/export", handler.Export)
		jobs.GET("/:id", handler.GetDetails)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}
}

type JobListResponse struct {
	Jobs       []domain.Job      `json:"jobs"`
	Pagination domain.Pagination `json:"pagination"`
}

type InterviewsResponse struct {
	Events   []domain.InterviewEvent `json:"events"`
	Upcoming []domain.InterviewEvent `json:"upcoming"`
}

// List godoc
// @Summary      List jobs
// @Description  Filtered, sorted and paginated view of the job collection
// @Tags         jobs
// @Produce      json
// @Param        search     query  string  false  "Substring of company, position or location"
// @Param        jobType    query  string  false  "full-time, part-time, contract, internship or all"
// @Param        jobStatus  query  string  false  "pending, interview, declined, accepted or all"
// @Param        sortBy     query  string  false  "company, position or dateApplied"
// @Param        sortOrder  query  string  false  "asc or desc"
// @Param        page       query  int     false  "Page number (1-based)"
// @Param        perPage    query  int     false  "Page size (default 6)"
// @Success      200  {object}  response.Response{data=JobListResponse}
// @Failure      400  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	var filters domain.JobFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.Error(apperror.BadRequest("Invalid filter parameters"))
		return
	}

	page, err := queryInt(c, "page", 1)
	if err != nil {
		c.Error(err)
		return
	}
	perPage, err := queryInt(c, "perPage", 0)
	if err != nil {
		c.Error(err)
		return
	}

	jobs, meta, err := h.jobUC.ListJobs(c.Request.Context(), filters, page, perPage)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved successfully", JobListResponse{
		Jobs:       jobs,
		Pagination: meta,
	})
}

// Create godoc
// @Summary      Create a job
// @Description  Records a new application. id and dateApplied are assigned by the server.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      domain.JobInput  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var input domain.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(bindError(err))
		return
	}

	job, err := h.jobUC.CreateJob(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created successfully", job)
}

// GetDetails godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job retrieved successfully", job)
}

// Update godoc
// @Summary      Update a job
// @Description  Replaces every editable field. id and dateApplied are kept.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string           true  "Job ID"
// @Param        job  body      domain.JobInput  true  "Job JSON"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	var input domain.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(bindError(err))
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated successfully", job)
}

// Delete godoc
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobUC.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}

// Stats godoc
// @Summary      Dashboard counters
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.DashboardStats}
// @Router       /jobs/stats [get]
func (h *JobHandler) Stats(c *gin.Context) {
	response.Success(c, http.StatusOK, "Stats retrieved successfully", h.jobUC.Stats(c.Request.Context()))
}

// Interviews godoc
// @Summary      Interview calendar
// @Description  All interview events plus those within the next 7 days
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=InterviewsResponse}
// @Router       /jobs/interviews [get]
func (h *JobHandler) Interviews(c *gin.Context) {
	all, upcoming := h.jobUC.Interviews(c.Request.Context(), time.Now())
	response.Success(c, http.StatusOK, "Interviews retrieved successfully", InterviewsResponse{
		Events:   all,
		Upcoming: upcoming,
	})
}

// Export godoc
// @Summary      Export jobs to Excel
// @Description  Filtered, sorted job view as an .xlsx attachment
// @Tags         jobs
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        search     query  string  false  "Substring of company, position or location"
// @Param        jobType    query  string  false  "Job type or all"
// @Param        jobStatus  query  string  false  "Job status or all"
// @Param        sortBy     query  string  false  "company, position or dateApplied"
// @Param        sortOrder  query  string  false  "asc or desc"
// @Success      200  {file}  binary
// @Router       /jobs/export [get]
func (h *JobHandler) Export(c *gin.Context) {
	var filters domain.JobFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.Error(apperror.BadRequest("Invalid filter parameters"))
		return
	}

	data, filename, err := h.jobUC.ExportJobs(c.Request.Context(), filters)
	if err != nil {
		c.Error(apperror.InternalMsg("Failed to export jobs", err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperror.BadRequest(key + " must be a non-negative integer")
	}
	return n, nil
}
