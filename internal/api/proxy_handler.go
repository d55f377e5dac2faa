package api

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/site-content-api/internal/config"
)

// imageMimeTypes maps file extensions to content types when the upstream
// response does not say
var imageMimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".avif": "image/avif",
}

// ProxyHandler relays media bytes from the allow-listed CDN through the
// origin server, so the browser never talks to the CDN directly
type ProxyHandler struct {
	cfg  *config.ProxyConfig
	http *http.Client
	log  zerolog.Logger
}

// NewProxyHandler creates a new proxy handler
func NewProxyHandler(cfg *config.ProxyConfig, log zerolog.Logger) *ProxyHandler {
	return &ProxyHandler{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log.With().Str("handler", "proxy").Logger(),
	}
}

// resolveTarget validates the url parameter against the allow-list
func (h *ProxyHandler) resolveTarget(c *gin.Context) (*url.URL, bool) {
	raw := c.Query("url")
	if raw == "" {
		respondError(c, http.StatusBadRequest, "Missing url parameter")
		return nil, false
	}

	target, err := url.Parse(raw)
	if err != nil || target.Hostname() == "" {
		respondError(c, http.StatusBadRequest, "Invalid url parameter")
		return nil, false
	}
	if !h.cfg.HostAllowed(target.Hostname()) {
		respondError(c, http.StatusBadRequest, "Host not allowed")
		return nil, false
	}
	return target, true
}

// fetchUpstream performs the server-side GET, optionally forwarding a
// Range header
func (h *ProxyHandler) fetchUpstream(c *gin.Context, target *url.URL, forwardRange bool) (*http.Response, error) {
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	if forwardRange {
		if rangeHeader := c.GetHeader("Range"); rangeHeader != "" {
			req.Header.Set("Range", rangeHeader)
		}
	}
	return h.http.Do(req)
}

// Image handles GET /api/proxy-image. Bytes are relayed verbatim with
// long-lived immutable caching and no cookies.
func (h *ProxyHandler) Image(c *gin.Context) {
	target, ok := h.resolveTarget(c)
	if !ok {
		return
	}

	res, err := h.fetchUpstream(c, target, false)
	if err != nil {
		h.log.Error().Err(err).Str("target", target.String()).Msg("Image proxy fetch failed")
		respondError(c, http.StatusInternalServerError, "Proxy failed")
		return
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		respondError(c, res.StatusCode, fmt.Sprintf("Upstream error %d", res.StatusCode))
		return
	}

	contentType := res.Header.Get("Content-Type")
	if contentType == "" {
		ext := strings.ToLower(path.Ext(target.Path))
		if mapped, ok := imageMimeTypes[ext]; ok {
			contentType = mapped
		} else {
			contentType = "image/jpeg"
		}
	}

	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	if contentLength := res.Header.Get("Content-Length"); contentLength != "" {
		c.Header("Content-Length", contentLength)
	}

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, res.Body); err != nil {
		h.log.Warn().Err(err).Str("target", target.String()).Msg("Image proxy stream interrupted")
	}
}

// Video handles GET /api/proxy-video. Range requests are forwarded
// upstream and a 206 response is relayed, so media elements can seek;
// CORS headers allow the video to be used as a cross-origin texture.
func (h *ProxyHandler) Video(c *gin.Context) {
	target, ok := h.resolveTarget(c)
	if !ok {
		return
	}

	res, err := h.fetchUpstream(c, target, true)
	if err != nil {
		h.log.Error().Err(err).Str("target", target.String()).Msg("Video proxy fetch failed")
		respondError(c, http.StatusInternalServerError, "Proxy failed")
		return
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusPartialContent {
		respondError(c, res.StatusCode, fmt.Sprintf("Upstream error %d", res.StatusCode))
		return
	}

	contentType := res.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "video/mp4"
	}

	c.Header("Content-Type", contentType)
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Range")
	c.Header("Access-Control-Expose-Headers", "Content-Length, Content-Range, Accept-Ranges")
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Header("Accept-Ranges", "bytes")
	if contentLength := res.Header.Get("Content-Length"); contentLength != "" {
		c.Header("Content-Length", contentLength)
	}

	status := http.StatusOK
	if res.StatusCode == http.StatusPartialContent {
		status = http.StatusPartialContent
		if contentRange := res.Header.Get("Content-Range"); contentRange != "" {
			c.Header("Content-Range", contentRange)
		}
	}

	c.Status(status)
	if _, err := io.Copy(c.Writer, res.Body); err != nil {
		h.log.Warn().Err(err).Str("target", target.String()).Msg("Video proxy stream interrupted")
	}
}
