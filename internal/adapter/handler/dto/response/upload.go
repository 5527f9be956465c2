package response

import (
	"time"

	"github.com/marcos-nsantos/image-variants/internal/domain/entity"
	"github.com/marcos-nsantos/image-variants/internal/usecase/upload"
)

type VariantResponse struct {
	Label    string `json:"label"`
	FileName string `json:"file_name"`
	URL      string `json:"url,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

type UploadResponse struct {
	ID       string            `json:"id,omitempty"`
	Token    string            `json:"token"`
	BaseName string            `json:"base_name"`
	Files    map[string]string `json:"files"`
	Variants []VariantResponse `json:"variants"`
}

func UploadResultToResponse(result *upload.UploadResult) UploadResponse {
	resp := UploadResponse{
		Token:    result.Token,
		BaseName: result.BaseName,
		Files:    result.Files,
		Variants: make([]VariantResponse, 0, len(result.Variants)),
	}
	if result.VariantSet != nil {
		resp.ID = result.VariantSet.ID.String()
	}

	for _, v := range result.Variants {
		resp.Variants = append(resp.Variants, VariantResponse{
			Label:    v.Label,
			FileName: v.FileName,
			URL:      result.URLs[v.Label],
			Width:    v.Width,
			Height:   v.Height,
		})
	}

	return resp
}

type VariantSetResponse struct {
	ID           string            `json:"id"`
	OriginalName string            `json:"original_name"`
	Token        string            `json:"token"`
	BaseName     string            `json:"base_name"`
	UploadPath   string            `json:"upload_path"`
	ResizeMode   string            `json:"resize_mode"`
	Files        map[string]string `json:"files"`
	Variants     []VariantResponse `json:"variants"`
	CreatedAt    time.Time         `json:"created_at"`
}

func VariantSetFromEntity(set *entity.VariantSet) VariantSetResponse {
	variants := make([]VariantResponse, 0, len(set.Variants))
	for _, v := range set.Variants {
		variants = append(variants, VariantResponse{
			Label:    v.Label,
			FileName: v.FileName,
			Width:    v.Width,
			Height:   v.Height,
		})
	}

	return VariantSetResponse{
		ID:           set.ID.String(),
		OriginalName: set.OriginalName,
		Token:        set.Token,
		BaseName:     set.BaseName,
		UploadPath:   set.UploadPath,
		ResizeMode:   set.ResizeMode,
		Files:        set.Files(),
		Variants:     variants,
		CreatedAt:    set.CreatedAt,
	}
}

type RenderResponse struct {
	Attributes map[string]string `json:"attributes"`
}
