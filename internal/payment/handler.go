package payment

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/dorm-management/internal/transport"
	"github.com/go-chi/chi"
)

// EngineAPI is the surface the webhook handler drives.
type EngineAPI interface {
	ProcessSuccess(ctx context.Context, params CallbackParams) Result
	ProcessFailure(params CallbackParams) Result
	ProcessCancel(params CallbackParams) Result
}

// Handler terminates the gateway's server-to-server callbacks. The endpoints
// are deliberately unauthenticated; the gateway cannot carry our tokens, so
// trust is established by validating the transaction back at the gateway.
type Handler struct {
	*transport.BaseHandler
	engine EngineAPI
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger, engine EngineAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger),
		engine:      engine,
		logger:      logger,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/payment/ipn/success", h.SuccessCallback)
	r.Post("/payment/ipn/fail", h.FailCallback)
	r.Post("/payment/ipn/cancel", h.CancelCallback)
}

func (h *Handler) SuccessCallback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("malformed callback body", "error", err)
		http.Redirect(w, r, errorRedirectPath, http.StatusSeeOther)
		return
	}

	params := CallbackFromForm(r.PostForm)
	result := h.engine.ProcessSuccess(r.Context(), params)
	h.redirect(w, r, result)
}

func (h *Handler) FailCallback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("malformed callback body", "error", err)
		http.Redirect(w, r, errorRedirectPath, http.StatusSeeOther)
		return
	}

	params := CallbackFromForm(r.PostForm)
	result := h.engine.ProcessFailure(params)
	h.redirect(w, r, result)
}

func (h *Handler) CancelCallback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("malformed callback body", "error", err)
		http.Redirect(w, r, errorRedirectPath, http.StatusSeeOther)
		return
	}

	params := CallbackFromForm(r.PostForm)
	result := h.engine.ProcessCancel(params)
	h.redirect(w, r, result)
}

// redirect always answers 303 regardless of outcome. The gateway retries on
// 5xx; a rejected callback is our terminal decision and retrying it would
// only replay the same rejection.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, result Result) {
	h.logger.Info("callback processed",
		"state", result.State,
		"success", result.Success,
		"message", result.Message)
	http.Redirect(w, r, result.RedirectURL, http.StatusSeeOther)
}
