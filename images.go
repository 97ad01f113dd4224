package showcase

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	defaultPlaceholderWidth  = 400
	defaultPlaceholderHeight = 300
	maxPlaceholderSide       = 2000
	maxCachedPlaceholders    = 64
	placeholderRendersPerMin = 30
	imagesSubdir             = "images"
)

var (
	placeholderTop    = color.RGBA{R: 0x63, G: 0x66, B: 0xf1, A: 0xff} // indigo
	placeholderBottom = color.RGBA{R: 0xf4, G: 0x3f, B: 0x5e, A: 0xff} // rose
	placeholderBase   = color.RGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 0xff}
	placeholderInk    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x99}
)

// ImageResolver serves project images from a file system. Missing or
// undecodable images resolve to a generated placeholder of the default size.
type ImageResolver struct {
	fsys   fs.FS
	logger *zap.Logger

	mu    sync.Mutex
	cache map[[2]int][]byte
}

// NewImageResolver creates a resolver reading images/ from fsys.
func NewImageResolver(fsys fs.FS, logger *zap.Logger) *ImageResolver {
	return &ImageResolver{fsys: fsys, logger: logger, cache: make(map[[2]int][]byte)}
}

// Resolve returns the bytes and content type of the image at name, relative
// to the images directory. It never fails for a missing image; it only
// fails when the placeholder itself cannot be encoded.
func (r *ImageResolver) Resolve(name string) ([]byte, string, error) {
	p := path.Join(imagesSubdir, path.Clean("/" + name)[1:])
	if fs.ValidPath(p) {
		data, err := fs.ReadFile(r.fsys, p)
		if err == nil {
			if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
				return data, contentType(p), nil
			}
			r.logger.Warn("undecodable image, serving placeholder", zap.String("path", p))
		} else if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("read image", zap.String("path", p), zap.Error(err))
		}
	}
	data, err := r.Placeholder(defaultPlaceholderWidth, defaultPlaceholderHeight)
	return data, "image/png", err
}

// Placeholder returns a PNG of the given size with a gradient wash and the
// dimensions printed in the middle. Sizes are clamped to a sane range.
func (r *ImageResolver) Placeholder(w, h int) ([]byte, error) {
	w, h = clampSide(w, defaultPlaceholderWidth), clampSide(h, defaultPlaceholderHeight)
	key := [2]int{w, h}

	r.mu.Lock()
	if data, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return data, nil
	}
	r.mu.Unlock()

	data, err := renderPlaceholder(w, h)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if len(r.cache) < maxCachedPlaceholders {
		r.cache[key] = data
	}
	r.mu.Unlock()
	return data, nil
}

// Cached reports whether a placeholder of the given size is already rendered.
func (r *ImageResolver) Cached(w, h int) bool {
	key := [2]int{clampSide(w, defaultPlaceholderWidth), clampSide(h, defaultPlaceholderHeight)}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.cache[key]
	return ok
}

func renderPlaceholder(w, h int) ([]byte, error) {
	// A 2x2 tile scaled up bilinearly gives a smooth diagonal wash.
	tile := image.NewRGBA(image.Rect(0, 0, 2, 2))
	tile.Set(0, 0, placeholderTop)
	tile.Set(1, 0, placeholderBase)
	tile.Set(0, 1, placeholderBase)
	tile.Set(1, 1, placeholderBottom)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), tile, tile.Bounds(), draw.Src, nil)

	label := fmt.Sprintf("%d x %d", w, h)
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(placeholderInk),
		Face: face,
	}
	width := d.MeasureString(label)
	d.Dot = fixed.Point26_6{
		X: (fixed.I(w) - width) / 2,
		Y: fixed.I((h + face.Ascent - face.Descent) / 2),
	}
	d.DrawString(label)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}

func clampSide(v, fallback int) int {
	switch {
	case v <= 0:
		return fallback
	case v > maxPlaceholderSide:
		return maxPlaceholderSide
	default:
		return v
	}
}

func contentType(p string) string {
	if ct := mime.TypeByExtension(strings.ToLower(path.Ext(p))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func (a *App) handlePlaceholder(c echo.Context) error {
	w, _ := strconv.Atoi(c.QueryParam("width"))
	h, _ := strconv.Atoi(c.QueryParam("height"))
	if !a.images.Cached(w, h) && !a.renders.Allow(c.RealIP()) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many placeholder renders")
	}
	data, err := a.images.Placeholder(w, h)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", data)
}

func (a *App) handleImage(c echo.Context) error {
	data, ct, err := a.images.Resolve(c.Param("*"))
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, ct, data)
}
