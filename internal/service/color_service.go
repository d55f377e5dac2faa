package service

import (
	"context"
	"fmt"
	"image"
	"math"
	"math/rand"
	"net/http"
	"time"

	// Register decoders for the image formats the CDN serves
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"github.com/site-content-api/internal/models"
)

// sampleSize is the fixed downsampling grid for the average
const sampleSize = 50

// fallbackPalette is served when extraction fails, so the UI always gets
// a usable tint
var fallbackPalette = []string{
	"rgb(120,100,80)",  // warm brown
	"rgb(100,120,100)", // muted green
	"rgb(120,110,100)", // beige
	"rgb(110,100,120)", // muted purple
	"rgb(100,100,100)", // neutral gray
	"rgb(130,110,90)",  // warm taupe
	"rgb(90,110,100)",  // sage green
	"rgb(110,120,110)", // soft green
	"rgb(100,90,110)",  // muted lavender
	"rgb(120,100,90)",  // warm beige
}

// colorService is the concrete implementation of ColorService
type colorService struct {
	http *http.Client
	log  zerolog.Logger
}

// newColorService creates a new color service
func newColorService(log zerolog.Logger) ColorService {
	return &colorService{
		http: &http.Client{Timeout: 15 * time.Second},
		log:  log.With().Str("component", "color").Logger(),
	}
}

// Extract downloads the image, downsamples it to a fixed 50x50 grid and
// returns the arithmetic mean of the RGB channels. Extraction never
// fails outward: any error falls back to a fixed palette with
// success=false.
func (s *colorService) Extract(ctx context.Context, imageURL string) *models.ColorResult {
	if imageURL == "" {
		return s.fallback(imageURL, fmt.Errorf("image URL is required"))
	}

	img, err := s.load(ctx, imageURL)
	if err != nil {
		return s.fallback(imageURL, err)
	}

	small := imaging.Resize(img, sampleSize, sampleSize, imaging.Box)

	var r, g, b, count uint64
	for y := 0; y < sampleSize; y++ {
		for x := 0; x < sampleSize; x++ {
			c := small.NRGBAAt(x, y)
			r += uint64(c.R)
			g += uint64(c.G)
			b += uint64(c.B)
			count++
		}
	}
	if count == 0 {
		return s.fallback(imageURL, fmt.Errorf("image has no pixels"))
	}

	return &models.ColorResult{
		Color: fmt.Sprintf("rgb(%d,%d,%d)",
			int(math.Round(float64(r)/float64(count))),
			int(math.Round(float64(g)/float64(count))),
			int(math.Round(float64(b)/float64(count)))),
		Success: true,
	}
}

// load fetches and decodes the remote image
func (s *colorService) load(ctx context.Context, imageURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid image URL: %w", err)
	}

	res, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream returned status %d", res.StatusCode)
	}

	img, _, err := image.Decode(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// fallback picks a pseudo-random palette color and reports the failure
func (s *colorService) fallback(imageURL string, cause error) *models.ColorResult {
	s.log.Warn().Err(cause).Str("image_url", imageURL).Msg("Color extraction failed, using fallback")
	return &models.ColorResult{
		Color:   fallbackPalette[rand.Intn(len(fallbackPalette))],
		Success: false,
		Error:   cause.Error(),
	}
}
