package entity

import (
	"time"

	"github.com/google/uuid"
)

// VariantSet records the files produced by one upload. Every file in the set
// shares Token, which is how the set is recognized on disk.
type VariantSet struct {
	ID           uuid.UUID
	OriginalName string
	Token        string
	BaseName     string
	UploadPath   string
	ResizeMode   string
	Variants     []Variant
	CreatedAt    time.Time
}

// Variant is one stored file. Label is the requested "WxH" string, or empty
// when the upload was relocated without resizing.
type Variant struct {
	Label    string
	FileName string
	Width    int
	Height   int
}

func NewVariantSet(originalName, token, baseName, uploadPath, resizeMode string, variants []Variant) *VariantSet {
	return &VariantSet{
		ID:           uuid.New(),
		OriginalName: originalName,
		Token:        token,
		BaseName:     baseName,
		UploadPath:   uploadPath,
		ResizeMode:   resizeMode,
		Variants:     variants,
		CreatedAt:    time.Now().UTC(),
	}
}

// Files maps each variant label to its stored file name.
func (s *VariantSet) Files() map[string]string {
	files := make(map[string]string, len(s.Variants))
	for _, v := range s.Variants {
		files[v.Label] = v.FileName
	}
	return files
}
