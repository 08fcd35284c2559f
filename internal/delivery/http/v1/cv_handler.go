package v1

import (
	"net/http"

	"jobify-backend/internal/delivery/http/response"
	"jobify-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CVHandler struct {
	cvUC domain.CVUsecase
}

func NewCVHandler(api *gin.RouterGroup, cvUC domain.CVUsecase) {
	handler := &CVHandler{cvUC: cvUC}

	cvs := api.Group("/cvs")
	{
		cvs.GET("", handler.List)
		cvs.POST("", handler.Register)
		cvs.GET("/active", handler.GetActive)
		cvs.GET("/:id", handler.GetDetails)
		cvs.PUT("/:id", handler.Update)
		cvs.DELETE("/:id", handler.Delete)
		cvs.POST("/:id/activate", handler.Activate)
	}
}

// List godoc
// @Summary      List CVs
// @Description  Case-insensitive search across name, file name, description and tags
// @Tags         cvs
// @Produce      json
// @Param        search  query     string  false  "Search term"
// @Success      200     {object}  response.Response{data=[]domain.CV}
// @Router       /cvs [get]
func (h *CVHandler) List(c *gin.Context) {
	cvs := h.cvUC.ListCVs(c.Request.Context(), c.Query("search"))
	response.Success(c, http.StatusOK, "CVs retrieved successfully", cvs)
}

// Register godoc
// @Summary      Register a CV
// @Description  Records metadata for a file stored through /upload-cv
// @Tags         cvs
// @Accept       json
// @Produce      json
// @Param        cv   body      domain.CVInput  true  "CV metadata"
// @Success      201  {object}  response.Response{data=domain.CV}
// @Failure      400  {object}  response.Response
// @Router       /cvs [post]
func (h *CVHandler) Register(c *gin.Context) {
	var input domain.CVInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(bindError(err))
		return
	}

	cv, err := h.cvUC.RegisterCV(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "CV saved successfully", cv)
}

// GetActive godoc
// @Summary      Get the active CV
// @Tags         cvs
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CV}
// @Failure      404  {object}  response.Response
// @Router       /cvs/active [get]
func (h *CVHandler) GetActive(c *gin.Context) {
	cv, err := h.cvUC.GetActive(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Active CV retrieved successfully", cv)
}

// GetDetails godoc
// @Summary      Get a CV
// @Tags         cvs
// @Produce      json
// @Param        id   path      string  true  "CV ID"
// @Success      200  {object}  response.Response{data=domain.CV}
// @Failure      404  {object}  response.Response
// @Router       /cvs/{id} [get]
func (h *CVHandler) GetDetails(c *gin.Context) {
	cv, err := h.cvUC.GetCV(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "CV retrieved successfully", cv)
}

// Update godoc
// @Summary      Edit CV metadata
// @Tags         cvs
// @Accept       json
// @Produce      json
// @Param        id   path      string           true  "CV ID"
// @Param        cv   body      domain.CVUpdate  true  "Editable fields"
// @Success      200  {object}  response.Response{data=domain.CV}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /cvs/{id} [put]
func (h *CVHandler) Update(c *gin.Context) {
	var update domain.CVUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(bindError(err))
		return
	}

	cv, err := h.cvUC.UpdateCV(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "CV updated successfully", cv)
}

// Activate godoc
// @Summary      Mark a CV active
// @Description  Clears the active flag on every other CV
// @Tags         cvs
// @Produce      json
// @Param        id   path      string  true  "CV ID"
// @Success      200  {object}  response.Response{data=[]domain.CV}
// @Failure      404  {object}  response.Response
// @Router       /cvs/{id}/activate [post]
func (h *CVHandler) Activate(c *gin.Context) {
	cvs, err := h.cvUC.SetActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Active CV updated", cvs)
}

// Delete godoc
// @Summary      Delete a CV
// @Description  Deletes the stored file, then the record. A failed file delete
// @Description  is reported in the outcome; the record is removed regardless.
// @Tags         cvs
// @Produce      json
// @Param        id   path      string  true  "CV ID"
// @Success      200  {object}  response.Response{data=domain.DeleteOutcome}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /cvs/{id} [delete]
func (h *CVHandler) Delete(c *gin.Context) {
	outcome, err := h.cvUC.DeleteCV(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	message := "CV deleted successfully"
	if outcome.Orphaned() {
		message = "CV deleted, but the stored file could not be removed"
	}
	response.Success(c, http.StatusOK, message, outcome)
}
