package naming

import (
	"crypto/md5"
	"encoding/hex"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const tokenLength = 5

var (
	dashRuns   = regexp.MustCompile(`-+`)
	quoteChars = regexp.MustCompile(`['"]+`)
	spaceOrDot = strings.NewReplacer(" ", "-", ".", "-")
)

// Namer builds file names for one upload. All names from the same Namer end
// in the same token so the files can be recognized as a set.
type Namer struct {
	token string
}

func NewNamer(token string) *Namer {
	return &Namer{token: token}
}

func (n *Namer) Token() string {
	return n.token
}

// Name returns {base}[-{width}]-{token}.{ext}. A width of zero is omitted.
// An original name without an extension yields a name ending in ".".
func (n *Namer) Name(originalName string, width int) string {
	base, ext := Split(originalName)

	var suffix strings.Builder
	if width > 0 {
		suffix.WriteString("-")
		suffix.WriteString(strconv.Itoa(width))
	}
	suffix.WriteString("-")
	suffix.WriteString(n.token)

	return Sanitize(base) + suffix.String() + "." + ext
}

// BaseName returns {base}-{token}{ext}. There is no dot before the extension;
// names stored by earlier releases have this exact shape.
func (n *Namer) BaseName(originalName string) string {
	base, ext := Split(originalName)
	return Sanitize(base) + "-" + n.token + ext
}

// Split separates a file name into its base and the extension after the last
// dot. Any directory part is dropped first.
func Split(originalName string) (base, ext string) {
	name := path.Base(strings.ReplaceAll(originalName, "\\", "/"))
	if name == "." || name == "/" {
		return "", ""
	}
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[idx+1:]
}

// Extension returns the lowercased extension of originalName.
func Extension(originalName string) string {
	_, ext := Split(originalName)
	return strings.ToLower(ext)
}

// Sanitize replaces spaces and dots with dashes, drops quote characters and
// collapses dash runs. Quotes go before collapsing so that removing one can
// never leave "--" behind.
func Sanitize(base string) string {
	s := spaceOrDot.Replace(base)
	s = quoteChars.ReplaceAllString(s, "")
	return dashRuns.ReplaceAllString(s, "-")
}

// Token returns explicit when set. Otherwise it derives a short token from
// the MD5 of the unix time in seconds, matching names stored by the legacy
// uploader.
func Token(explicit string, now time.Time) string {
	if explicit != "" {
		return explicit
	}
	sum := md5.Sum([]byte(strconv.FormatInt(now.Unix(), 10)))
	return hex.EncodeToString(sum[:])[:tokenLength]
}
