package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler accepts multipart image uploads.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// Upload stores the multipart field "file" under the optional "folder".
func (h *UploadHandler) Upload(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	input := &usecase.UploadInput{Folder: c.FormValue("folder")}

	fileHeader, err := c.FormFile("file")
	if err == nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			return openErr
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
					Warn("Failed to close upload", slog.Any("error", closeErr))
			}
		}()

		input.FileName = fileHeader.Filename
		input.ContentType = fileHeader.Header.Get(echo.HeaderContentType)
		input.Size = fileHeader.Size
		input.Body = file
	}

	output, err := h.uploadUC.Upload(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output)
}
