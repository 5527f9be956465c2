package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/image-variants/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/image-variants/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/image-variants/internal/domain/valueobject"
	"github.com/marcos-nsantos/image-variants/internal/pkg/httputil"
	"github.com/marcos-nsantos/image-variants/internal/usecase/upload"
)

const defaultMaxUploadSize = 10 << 20 // 10MB

type UploadHandlerConfig struct {
	// Defaults apply when the request leaves a field empty.
	Defaults upload.Options
	MaxSize  int64
	// TempDir receives the uploaded file before processing. Empty means the
	// OS default.
	TempDir string
}

type UploadHandler struct {
	uploadSvc UploadService
	cfg       UploadHandlerConfig
}

func NewUploadHandler(uploadSvc UploadService, cfg UploadHandlerConfig) *UploadHandler {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = defaultMaxUploadSize
	}
	return &UploadHandler{uploadSvc: uploadSvc, cfg: cfg}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httputil.ErrorWithCode(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE",
				fmt.Sprintf("file exceeds %d bytes", h.cfg.MaxSize))
			return
		}
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "file is required")
		return
	}
	defer file.Close()

	var req request.UploadRequest
	if err := c.ShouldBind(&req); err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if req.RelocateOnly() && len(req.DimensionList()) > 1 {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("dimensions=%s cannot be combined with sizes", request.DimensionsNone))
		return
	}

	tmpPath, err := h.spool(file)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}
	// a relocated upload has already moved the file away
	defer os.Remove(tmpPath)

	result, err := h.uploadSvc.Upload(c.Request.Context(), upload.UploadInput{
		OriginalName: header.Filename,
		SourcePath:   tmpPath,
	}, h.options(req))
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.UploadResultToResponse(result))
}

func (h *UploadHandler) Get(c *gin.Context) {
	set, err := h.uploadSvc.GetVariantSet(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.VariantSetFromEntity(set))
}

func (h *UploadHandler) options(req request.UploadRequest) upload.Options {
	opts := h.cfg.Defaults
	switch dims := req.DimensionList(); {
	case req.RelocateOnly():
		opts.Dimensions = nil
	case len(dims) > 0:
		opts.Dimensions = dims
	}
	if req.Mode != "" {
		opts.Resize = valueobject.ResizeMode(req.Mode)
	}
	if req.Token != "" {
		opts.UniqueToken = req.Token
	}
	return opts
}

// spool copies the multipart file to a temp file the upload service can
// move or decode.
func (h *UploadHandler) spool(file multipart.File) (string, error) {
	tmp, err := os.CreateTemp(h.cfg.TempDir, "upload-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("spooling upload: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	return tmp.Name(), nil
}
