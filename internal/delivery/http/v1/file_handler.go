package v1

import (
	"errors"
	"mime"
	"mime/multipart"
	"net/http"

	"jobify-backend/internal/delivery/http/response"
	"jobify-backend/internal/domain"
	"jobify-backend/internal/usecase"
	"jobify-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// UploadFormField is the multipart field carrying the CV binary.
const UploadFormField = "cv"

// multipartOverhead is the slack allowed on top of the file size limit for
// the form fields and part headers of an upload request.
const multipartOverhead = 1 << 20

type FileHandler struct {
	fileUC         domain.FileUsecase
	healthUC       usecase.HealthUsecase
	maxUploadBytes int64
}

// NewFileHandler registers the upload service routes. uploadMW guards the
// upload route, typically with a rate limiter.
func NewFileHandler(api *gin.RouterGroup, fileUC domain.FileUsecase, healthUC usecase.HealthUsecase, maxUploadBytes int64, uploadMW ...gin.HandlerFunc) {
	handler := &FileHandler{fileUC: fileUC, healthUC: healthUC, maxUploadBytes: maxUploadBytes}

	api.GET("/health", handler.Health)
	api.POST("/upload-cv", append(uploadMW, handler.Upload)...)
	api.GET("/files", handler.List)
	api.GET("/files/:filename", handler.Fetch)
	api.GET("/files/:filename/preview", handler.Preview)
	api.DELETE("/files/:filename", handler.Delete)
	api.GET("/download/:filename", handler.Download)
}

// Health godoc
// @Summary      Health check
// @Tags         files
// @Produce      json
// @Success      200  {object}  usecase.HealthStatus
// @Router       /health [get]
func (h *FileHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthUC.Check(c.Request.Context()))
}

// Upload godoc
// @Summary      Upload a CV file
// @Description  Stores a PDF, DOC or DOCX (max 10MB) under a generated name
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        cv           formData  file    true   "CV file"
// @Param        name         formData  string  false  "Display name"
// @Param        description  formData  string  false  "Description"
// @Param        tags         formData  string  false  "JSON array of tags"
// @Param        isActive     formData  string  false  "true or false"
// @Success      200  {object}  domain.UploadResult
// @Failure      400  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /upload-cv [post]
func (h *FileHandler) Upload(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)
	}

	fh, err := c.FormFile(UploadFormField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) || (h.maxUploadBytes > 0 && c.Request.ContentLength > h.maxUploadBytes+multipartOverhead) {
			c.Error(apperror.TooLarge(usecase.TooLargeMessage(h.maxUploadBytes)))
			return
		}
		c.Error(apperror.BadRequest(usecase.MsgNoFile))
		return
	}

	src, err := fh.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer src.Close()

	result, err := h.fileUC.Upload(c.Request.Context(), uploadRequest(c, fh, src))
	if err != nil {
		c.Error(err)
		return
	}

	response.Fields(c, http.StatusOK, gin.H{
		"file":     result.File,
		"metadata": result.Metadata,
	})
}

func uploadRequest(c *gin.Context, fh *multipart.FileHeader, src multipart.File) domain.UploadRequest {
	return domain.UploadRequest{
		OriginalName: fh.Filename,
		Size:         fh.Size,
		Content:      src,
		Name:         c.PostForm("name"),
		Description:  c.PostForm("description"),
		Tags:         c.PostForm("tags"),
		IsActive:     c.PostForm("isActive"),
	}
}

// List godoc
// @Summary      List stored files
// @Tags         files
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  response.Response
// @Router       /files [get]
func (h *FileHandler) List(c *gin.Context) {
	files, err := h.fileUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Fields(c, http.StatusOK, gin.H{"files": files})
}

// Fetch godoc
// @Summary      View a stored file
// @Tags         files
// @Produce      application/pdf
// @Param        filename  path  string  true  "Stored filename"
// @Success      200  {file}  binary
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /files/{filename} [get]
func (h *FileHandler) Fetch(c *gin.Context) {
	h.serve(c, "inline")
}

// Download godoc
// @Summary      Download a stored file
// @Tags         files
// @Produce      application/octet-stream
// @Param        filename  path  string  true  "Stored filename"
// @Success      200  {file}  binary
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /download/{filename} [get]
func (h *FileHandler) Download(c *gin.Context) {
	h.serve(c, "attachment")
}

func (h *FileHandler) serve(c *gin.Context, disposition string) {
	f, err := h.fileUC.Open(c.Request.Context(), c.Param("filename"))
	if err != nil {
		c.Error(err)
		return
	}
	defer f.Content.Close()

	c.Header("Content-Type", f.ContentType)
	cd := mime.FormatMediaType(disposition, map[string]string{"filename": f.Filename})
	if cd == "" {
		cd = disposition
	}
	c.Header("Content-Disposition", cd)
	http.ServeContent(c.Writer, c.Request, f.Filename, f.Modified, f.Content)
}

// Preview godoc
// @Summary      Preview a stored PDF
// @Description  Page count and up to 2000 characters of text
// @Tags         files
// @Produce      json
// @Param        filename  path  string  true  "Stored filename"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /files/{filename}/preview [get]
func (h *FileHandler) Preview(c *gin.Context) {
	preview, err := h.fileUC.Preview(c.Request.Context(), c.Param("filename"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Fields(c, http.StatusOK, gin.H{"preview": preview})
}

// Delete godoc
// @Summary      Delete a stored file
// @Tags         files
// @Produce      json
// @Param        filename  path  string  true  "Stored filename"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /files/{filename} [delete]
func (h *FileHandler) Delete(c *gin.Context) {
	if err := h.fileUC.DeleteFile(c.Request.Context(), c.Param("filename")); err != nil {
		c.Error(err)
		return
	}
	response.Fields(c, http.StatusOK, gin.H{"message": "File deleted successfully"})
}
