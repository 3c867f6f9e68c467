package composer

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentify/internal/backend"
	"rentify/internal/middleware"
	"rentify/internal/modules/uploads"
	"rentify/internal/pkg/response"
	"rentify/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Open(c *gin.Context) {
	// the body is optional; chunked requests report ContentLength -1, so
	// decode whatever is there and tolerate only an empty body
	var req OpenRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	sess := h.service.Open(c.Request.Context(), c.GetString(middleware.CtxUserID), c.GetString(middleware.CtxToken), req)
	response.Success(c, http.StatusCreated, toStateResponse(sess))
}

func (h *Handler) Get(c *gin.Context) {
	sess, err := h.service.Get(c.Param("id"), c.GetString(middleware.CtxUserID))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toStateResponse(sess))
}

func (h *Handler) SetFields(c *gin.Context) {
	var req SetFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	sess, err := h.service.SetFields(c.Param("id"), c.GetString(middleware.CtxUserID), req.Fields)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownField), errors.Is(err, ErrFieldType), errors.Is(err, ErrFieldValue):
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_FIELD", err.Error())
		default:
			h.sessionError(c, err)
		}
		return
	}
	response.Success(c, http.StatusOK, toStateResponse(sess))
}

func (h *Handler) Next(c *gin.Context) {
	sess, missing, err := h.service.Next(c.Param("id"), c.GetString(middleware.CtxUserID))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	if len(missing) > 0 {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "STEP_INCOMPLETE", "Required fields are missing", missing)
		return
	}
	response.Success(c, http.StatusOK, toStateResponse(sess))
}

func (h *Handler) Back(c *gin.Context) {
	sess, err := h.service.Back(c.Param("id"), c.GetString(middleware.CtxUserID))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toStateResponse(sess))
}

func (h *Handler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Expected multipart form data")
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		response.Error(c, http.StatusBadRequest, "NO_FILES", "No files provided")
		return
	}

	files := make([]uploads.File, 0, len(headers))
	for _, fh := range headers {
		fh := fh
		files = append(files, uploads.File{
			Name: fh.Filename,
			Size: fh.Size,
			Open: func() (io.ReadCloser, error) { return fh.Open() },
		})
	}

	sess, results, err := h.service.UploadImages(c.Request.Context(), c.Param("id"), c.GetString(middleware.CtxUserID), files)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	response.Success(c, http.StatusOK, UploadResponse{
		Results: toUploadResults(results),
		Images:  sess.Draft().Images,
	})
}

func (h *Handler) RemoveImage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INDEX", "Image index must be a number")
		return
	}

	sess, err := h.service.RemoveImage(c.Param("id"), c.GetString(middleware.CtxUserID), index)
	if err != nil {
		if errors.Is(err, ErrImageIndex) {
			response.Error(c, http.StatusNotFound, "IMAGE_NOT_FOUND", "No image at that position")
			return
		}
		h.sessionError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toStateResponse(sess))
}

func (h *Handler) Submit(c *gin.Context) {
	raw, fieldErrs, err := h.service.Submit(c.Request.Context(), c.Param("id"), c.GetString(middleware.CtxUserID))
	if err != nil {
		switch {
		case errors.Is(err, ErrSubmitInFlight):
			response.Error(c, http.StatusConflict, "SUBMIT_IN_FLIGHT", "A submission is already in progress")
		case errors.Is(err, ErrNotFinalStep):
			response.Error(c, http.StatusConflict, "NOT_READY", "Finish the remaining steps before submitting")
		case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrSessionForbidden):
			h.sessionError(c, err)
		default:
			var apiErr *backend.APIError
			if errors.As(err, &apiErr) && !apiErr.Temporary() {
				response.Error(c, http.StatusBadRequest, "LISTING_REJECTED", backend.Detail(err, "Failed to create property"))
				return
			}
			response.Error(c, http.StatusBadGateway, "BACKEND_UNAVAILABLE", backend.Detail(err, "Failed to create property"))
		}
		return
	}
	if len(fieldErrs) > 0 {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Draft has invalid values", fieldErrs)
		return
	}
	response.Success(c, http.StatusCreated, SubmitResponse{Listing: raw})
}

func (h *Handler) Abandon(c *gin.Context) {
	if err := h.service.Abandon(c.Param("id"), c.GetString(middleware.CtxUserID)); err != nil {
		h.sessionError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Session discarded"})
}

func (h *Handler) sessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Composer session not found")
	case errors.Is(err, ErrSessionForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "This session belongs to another user")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
