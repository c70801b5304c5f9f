package server

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"wifi-access-portal/internal/config"
	"wifi-access-portal/internal/metrics"
	"wifi-access-portal/internal/portal"
	"wifi-access-portal/internal/ui"
	"wifi-access-portal/internal/wifi"
)

const sessionCookie = "portal_session"

// Server renders the portal: the Collecting form, the Granted credential
// page, the QR image, and the copy endpoint. Each browser session maps to
// one stage controller through the session registry.
type Server struct {
	cfg      config.Config
	log      *zap.Logger
	sessions *portal.Sessions
	metrics  *metrics.Metrics
}

func New(cfg config.Config, log *zap.Logger, m *metrics.Metrics) *Server {
	cred := wifi.Network()

	encode := func(payload string) ([]byte, error) {
		png, err := wifi.EncodePNG(payload)
		if err != nil {
			m.IncrementQRFailures()
		}
		return png, err
	}

	sessions := portal.NewSessions(cfg.SessionMaxIdle, func() *portal.Controller {
		return portal.NewController(cred, encode, log)
	}, log)
	sessions.OnCount(m.SetActiveSessions)

	return &Server{
		cfg:      cfg,
		log:      log,
		sessions: sessions,
		metrics:  m,
	}
}

// Sessions exposes the registry so main can run its eviction loop.
func (s *Server) Sessions() *portal.Sessions { return s.sessions }

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHome)
	r.Post("/join", s.handleJoin)
	r.Post("/reset", s.handleReset)
	r.Get("/wifi/qr.png", s.handleQRImage)
	r.Post("/copy", s.handleCopy)
	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

// controller resolves the request's session, lazily creating a fresh
// Collecting controller (and cookie) for new or expired visitors.
func (s *Server) controller(w http.ResponseWriter, r *http.Request) *portal.Controller {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if ctrl, ok := s.sessions.Get(c.Value); ok {
			return ctrl
		}
	}

	id, ctrl := s.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return ctrl
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	ctrl := s.controller(w, r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if ctrl.Stage() == portal.StageGranted {
		cred := ctrl.Credential()
		form := ctrl.Form()
		err := ui.Credentials.Execute(w, ui.CredentialsPage{
			SSID:     cred.SSID,
			Password: cred.Password,
			Name:     ui.SanitizeName(form.Name),
			Phone:    form.Phone,
		})
		if err != nil {
			s.log.Error("render credentials page", zap.Error(err))
		}
		return
	}

	form := ctrl.Form()
	errs := ctrl.Errors()
	err := ui.Form.Execute(w, ui.FormPage{
		Name:       form.Name,
		Phone:      form.Phone,
		NameError:  errs.Name(),
		PhoneError: errs.Phone(),
	})
	if err != nil {
		s.log.Error("render form page", zap.Error(err))
	}
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	ctrl := s.controller(w, r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	ctrl.SetName(r.PostFormValue("name"))
	ctrl.SetPhone(r.PostFormValue("phone"))

	errs := ctrl.Submit()
	s.metrics.IncrementSubmissions(errs.Valid())
	if errs.Valid() {
		s.log.Info("access granted", zap.String("stage", ctrl.Stage().String()))
	} else {
		s.log.Info("submission rejected", zap.Int("field_errors", len(errs)))
	}

	// POST/redirect/GET so a refresh re-renders the current stage.
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	ctrl := s.controller(w, r)
	ctrl.Reset()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleQRImage blocks until the session's QR job resolves. The credential
// text never waits on this: the page renders immediately and the browser
// fetches the image separately, hiding the section on 404.
func (s *Server) handleQRImage(w http.ResponseWriter, r *http.Request) {
	ctrl := s.controller(w, r)

	png, ok := ctrl.QRImage(r.Context())
	if !ok {
		http.Error(w, "qr image unavailable", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}

// responseClipboard satisfies portal.Clipboard by handing the literal string
// to the client, which performs the platform copy.
type responseClipboard struct{ w http.ResponseWriter }

func (c responseClipboard) Copy(text string) error {
	c.w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, err := io.WriteString(c.w, text)
	return err
}

func (s *Server) handleCopy(w http.ResponseWriter, r *http.Request) {
	ctrl := s.controller(w, r)
	field := r.URL.Query().Get("field")

	if err := ctrl.CopyField(field, responseClipboard{w: w}); err != nil {
		s.metrics.IncrementCopyRequests(false)
		s.log.Warn("copy request failed", zap.String("field", field), zap.Error(err))
		http.Error(w, "Could not copy to clipboard", http.StatusBadRequest)
		return
	}
	s.metrics.IncrementCopyRequests(true)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
