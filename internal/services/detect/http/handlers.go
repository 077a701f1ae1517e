// Package http provides http transport for detect
package http

import (
	stdhttp "net/http"

	"polyglot/internal/modkit/httpkit"
	"polyglot/internal/services/detect/domain"
)

// Register mounts the JSON and plain text routes
func Register(r httpkit.Router, s domain.DetectorPort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.DetectInput](r, "/", h.detect)
	httpkit.PostJSON[domain.TextInput](r, "/text", h.text)
}

type handlers struct{ svc domain.DetectorPort }

// swagger:route POST /detect Detect detect
// @Summary Detect the language of a text
// @Tags detect
// @Accept json
// @Produce json
// @Param payload body domain.DetectInput true "Text"
// @Success 200 {object} domain.DetectOutput "ok"
// @Failure 400 {object} httpkit.Envelope "bad request"
// @Failure 500 {object} httpkit.Envelope "tokenizer or classifier failure"
// @Router /detect [post]
func (h *handlers) detect(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	return h.svc.Detect(r.Context(), in)
}

// swagger:route POST /detect/text Detect detectText
// @Summary Detect and return the display string
// @Tags detect
// @Accept json
// @Produce plain
// @Param payload body domain.TextInput true "Text"
// @Success 200 {string} string "Language: th\nConfidence: 97.31%"
// @Failure 500 {object} httpkit.Envelope "tokenizer or classifier failure"
// @Router /detect/text [post]
func (h *handlers) text(r *stdhttp.Request, in domain.TextInput) (any, error) {
	out, err := h.svc.HandleRequest(r.Context(), in.Text)
	if err != nil {
		return nil, err
	}
	return httpkit.Text(out), nil
}
