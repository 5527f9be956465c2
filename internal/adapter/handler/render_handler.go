package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/image-variants/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/image-variants/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/image-variants/internal/pkg/httputil"
	"github.com/marcos-nsantos/image-variants/internal/usecase/render"
)

type RenderHandler struct {
	renderSvc RenderService
}

func NewRenderHandler(renderSvc RenderService) *RenderHandler {
	return &RenderHandler{renderSvc: renderSvc}
}

// Attributes returns the img attributes that fit an image into the
// requested box.
func (h *RenderHandler) Attributes(c *gin.Context) {
	var req request.RenderRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	attrs := h.renderSvc.ImageAttributes(render.ImageInput{
		Src:           req.Src,
		Caption:       req.Caption,
		NaturalWidth:  req.NaturalWidth,
		NaturalHeight: req.NaturalHeight,
		DesiredWidth:  req.Width,
		DesiredHeight: req.Height,
		Attributes:    req.Attributes(),
	})

	httputil.OK(c, response.RenderResponse{Attributes: attrs})
}
