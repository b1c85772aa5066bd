package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/smartmeethq/meeting-assistant-api/errors"
	"github.com/smartmeethq/meeting-assistant-api/internal/adapter/dto"
	"github.com/smartmeethq/meeting-assistant-api/internal/usecase/meeting"
	"github.com/smartmeethq/meeting-assistant-api/pkg/config"
)

// MeetingHandler serves the plan and summarize endpoints for the wizard UI.
// Handlers are stateless per call; the backend never assumes step ordering.
type MeetingHandler struct {
	svc    meeting.Service
	upload config.UploadConfig
	logger *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(svc meeting.Service, upload config.UploadConfig, logger *zap.Logger) *MeetingHandler {
	return &MeetingHandler{svc: svc, upload: upload, logger: logger}
}

// Plan generates a meeting agenda from structured form fields.
// Success: 200 {status:"success", plan}. Any failure is reported as a
// structured payload with an empty plan so the UI renders an error instead
// of crashing.
func (h *MeetingHandler) Plan(c echo.Context) error {
	var req dto.PlanRequest
	if err := c.Bind(&req); err != nil {
		return h.planError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return h.planError(c, http.StatusBadRequest, err.Error())
	}

	plan, err := h.svc.GeneratePlan(c.Request().Context(), req)
	if err != nil {
		appErr, ok := errors.As(err)
		if !ok {
			appErr = errors.ErrInternal(err)
		}
		if h.logger != nil {
			h.logger.Error("plan generation failed",
				zap.String("request_id", getRequestID(c)),
				zap.String("app_code", appErr.Code.String()),
				zap.Error(err),
			)
		}
		return h.planError(c, appErr.HTTPCode, appErr.Message)
	}

	return HandleSuccess(h.logger, c, dto.PlanResponse{Status: "success", Plan: plan})
}

// Summarize accepts a multipart audio upload, transcribes it and returns
// the structured summary. 413 over the size limit, 400 on empty transcript,
// 500 on upstream failure.
func (h *MeetingHandler) Summarize(c echo.Context) error {
	// Reject oversized requests before reading the body
	if cl := c.Request().ContentLength; cl > 0 && cl > h.upload.MaxBytes {
		return HandleError(h.logger, c, errors.ErrUploadTooLarge(cl, h.upload.MaxBytes))
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrUnreadableUpload(err))
	}
	if fileHeader.Size > h.upload.MaxBytes {
		return HandleError(h.logger, c, errors.ErrUploadTooLarge(fileHeader.Size, h.upload.MaxBytes))
	}

	tmpPath, err := h.saveUpload(fileHeader)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrUnreadableUpload(err))
	}
	// Temp files are scoped to the request: deleted on every exit path
	defer os.Remove(tmpPath)

	resp, err := h.svc.ProcessRecording(c.Request().Context(), tmpPath)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, resp)
}

// Health returns liveness status
func (h *MeetingHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// saveUpload copies the multipart file to a uniquely named temp file so
// simultaneous uploads never collide
func (h *MeetingHandler) saveUpload(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dir := h.upload.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	tmpPath := filepath.Join(dir, uuid.NewString()+filepath.Ext(fileHeader.Filename))

	dst, err := os.Create(tmpPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(tmpPath)
		return "", err
	}
	return tmpPath, nil
}

func (h *MeetingHandler) planError(c echo.Context, httpCode int, message string) error {
	return c.JSON(httpCode, dto.PlanErrorResponse{
		Status:  "error",
		Message: message,
		Plan:    "",
	})
}
