package naming_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/image-variants/internal/pkg/naming"
)

func TestNamer_Name(t *testing.T) {
	namer := naming.NewNamer("ab12c")

	tests := []struct {
		name     string
		original string
		width    int
		want     string
	}{
		{"plain name without width", "photo.jpg", 0, "photo-ab12c.jpg"},
		{"plain name with width", "photo.jpg", 200, "photo-200-ab12c.jpg"},
		{"spaces become dashes", "my holiday photo.png", 100, "my-holiday-photo-100-ab12c.png"},
		{"inner dots become dashes", "archive.v2.final.gif", 0, "archive-v2-final-ab12c.gif"},
		{"dash runs collapse", "a - - b.jpg", 0, "a-b-ab12c.jpg"},
		{"quotes are stripped", `it's "mine".jpeg`, 0, "its-mine-ab12c.jpeg"},
		{"quote between dashes leaves one dash", "a-'-b.jpg", 0, "a-b-ab12c.jpg"},
		{"extension case is kept", "Photo.JPG", 0, "Photo-ab12c.JPG"},
		{"directory part is dropped", "uploads/tmp/photo.jpg", 0, "photo-ab12c.jpg"},
		{"missing extension ends with a dot", "README", 0, "README-ab12c."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, namer.Name(tt.original, tt.width))
		})
	}
}

func TestNamer_BaseName(t *testing.T) {
	t.Run("keeps legacy shape without dot before extension", func(t *testing.T) {
		namer := naming.NewNamer("ab12c")

		assert.Equal(t, "my-photo-ab12cjpg", namer.BaseName("my photo.jpg"))
	})

	t.Run("ignores width", func(t *testing.T) {
		namer := naming.NewNamer("zz")

		assert.Equal(t, namer.BaseName("a.png"), namer.BaseName("a.png"))
		assert.Equal(t, "a-zzpng", namer.BaseName("a.png"))
	})
}

func TestSanitize(t *testing.T) {
	inputs := []string{
		"a b c",
		"a..b",
		"a . . b",
		`"quoted" 'name'`,
		`-'-"-.-`,
		"  leading and trailing  ",
		"x'--'y",
	}

	for _, in := range inputs {
		out := naming.Sanitize(in)
		assert.NotContains(t, out, " ", "input %q", in)
		assert.NotContains(t, out, ".", "input %q", in)
		assert.NotContains(t, out, "'", "input %q", in)
		assert.NotContains(t, out, `"`, "input %q", in)
		assert.NotContains(t, out, "--", "input %q", in)
	}
}

func TestSplit(t *testing.T) {
	t.Run("splits at last dot", func(t *testing.T) {
		base, ext := naming.Split("archive.tar.gz")
		assert.Equal(t, "archive.tar", base)
		assert.Equal(t, "gz", ext)
	})

	t.Run("no dot means no extension", func(t *testing.T) {
		base, ext := naming.Split("Makefile")
		assert.Equal(t, "Makefile", base)
		assert.Empty(t, ext)
	})

	t.Run("extension is lowercased by Extension", func(t *testing.T) {
		assert.Equal(t, "jpeg", naming.Extension("IMG_0001.JPEG"))
	})
}

func TestToken(t *testing.T) {
	t.Run("explicit token wins", func(t *testing.T) {
		assert.Equal(t, "custom", naming.Token("custom", time.Now()))
	})

	t.Run("derives five hex characters from unix seconds", func(t *testing.T) {
		// md5("0") = cfcd208495d565ef66e7dff9f98764da
		assert.Equal(t, "cfcd2", naming.Token("", time.Unix(0, 0)))
	})

	t.Run("same second yields same token", func(t *testing.T) {
		now := time.Unix(1700000000, 0)
		a := naming.Token("", now)
		b := naming.Token("", now.Add(500*time.Millisecond))

		assert.Equal(t, a, b)
		assert.Len(t, a, 5)
		assert.Equal(t, strings.ToLower(a), a)
	})
}

func TestNamer_Deterministic(t *testing.T) {
	first := naming.NewNamer("tok01")
	second := naming.NewNamer("tok01")

	for _, width := range []int{0, 100, 200} {
		assert.Equal(t, first.Name("Some File.jpg", width), second.Name("Some File.jpg", width))
	}
}
