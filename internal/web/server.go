// Package web serves the portfolio as a server-rendered page whose tab bar and
// detail modal are swapped in place with HTMX fragments.
package web

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/athaploo/portfolio/internal/config"
	"github.com/athaploo/portfolio/internal/content"
	"github.com/athaploo/portfolio/internal/logger"
	"github.com/athaploo/portfolio/internal/portfolio"
	"github.com/athaploo/portfolio/internal/sitemap"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server is the HTTP front end.
type Server struct {
	cfg      *config.Config
	content  *content.Portfolio
	sessions *sessionStore
	mailer   Mailer
	markdown goldmark.Markdown
	engine   *gin.Engine
	log      *slog.Logger
	now      func() time.Time
}

// Option customises a Server.
type Option func(*Server)

// WithMailer replaces the SMTP relay used by the contact form.
func WithMailer(m Mailer) Option {
	return func(s *Server) { s.mailer = m }
}

// WithClock fixes the time source used for the sitemap and footer.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New builds the gin engine and registers every route.
func New(cfg *config.Config, p *content.Portfolio, opts ...Option) (*Server, error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	to := cfg.SMTP.To
	if to == "" {
		to = p.Profile.Email
	}

	s := &Server{
		cfg:      cfg,
		content:  p,
		sessions: newSessionStore(p, cfg.Session.Capacity, cfg.Session.TTL),
		mailer:   NewSMTPMailer(cfg.SMTP, to),
		markdown: goldmark.New(),
		log:      logger.ComponentLogger("web"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log))
	r.SetHTMLTemplate(tmpl)
	r.Static("/static", cfg.StaticDir)

	s.engine = r
	s.routes()
	return s, nil
}

// Handler exposes the engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info("Shutting down")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) baseURL() string {
	if s.cfg.BaseURL != "" {
		return s.cfg.BaseURL
	}
	return s.content.Profile.BaseURL
}

func (s *Server) routes() {
	r := s.engine

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/sitemap.xml", func(c *gin.Context) {
		data, err := sitemap.Build(s.baseURL(), s.now())
		if err != nil {
			s.log.Error("Building sitemap", "error", err)
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "application/xml; charset=utf-8", data)
	})

	r.GET("/robots.txt", func(c *gin.Context) {
		c.String(http.StatusOK, sitemap.Robots(s.baseURL()))
	})

	// Stateless derivation, no session needed
	r.GET("/api/detail/:category", func(c *gin.Context) {
		sel, ok := selectionFromRequest(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "no such item"})
			return
		}
		payload, ok := portfolio.Derive(s.content, sel)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "no such item"})
			return
		}
		c.JSON(http.StatusOK, newDetailView(payload))
	})

	// HTMX contact form fragment
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})
	r.POST("/contact", s.handleContact)

	ui := r.Group("/")
	ui.Use(s.sessions.sessionMiddleware())

	ui.GET("/", func(c *gin.Context) {
		sess := sessionFrom(c)
		sess.mu.Lock()
		view := pageView{
			Profile: s.content.Profile,
			About:   renderProse(s.markdown, s.content.Profile.About),
			Browser: newBrowserView(s.content, sess.tabs.Current()),
			Modal:   s.currentModal(sess),
			BaseURL: s.baseURL(),
			Year:    s.now().Year(),
		}
		sess.mu.Unlock()

		c.HTML(http.StatusOK, "index.html", view)
	})

	ui.GET("/tabs/:tab", func(c *gin.Context) {
		category, err := portfolio.ParseCategory(c.Param("tab"))
		if err != nil {
			c.HTML(http.StatusNotFound, "not-found.html", gin.H{"what": c.Param("tab")})
			return
		}

		sess := sessionFrom(c)
		sess.mu.Lock()
		sess.tabs.Activate(category)
		view := newBrowserView(s.content, sess.tabs.Current())
		sess.mu.Unlock()

		c.HTML(http.StatusOK, "browser.html", view)
	})

	// Invalid selections close the modal rather than erroring.
	ui.GET("/focus/:category", func(c *gin.Context) {
		sess := sessionFrom(c)
		sess.mu.Lock()
		if sel, ok := selectionFromRequest(c); ok {
			sess.focus.Open(sel)
		} else {
			sess.focus.Close()
		}
		modal := s.currentModal(sess)
		sess.mu.Unlock()

		c.HTML(http.StatusOK, "modal.html", modal)
	})

	ui.DELETE("/focus", func(c *gin.Context) {
		sess := sessionFrom(c)
		sess.mu.Lock()
		sess.focus.Close()
		sess.mu.Unlock()

		c.HTML(http.StatusOK, "modal.html", (*detailView)(nil))
	})
}

// currentModal must be called with sess.mu held.
func (s *Server) currentModal(sess *session) *detailView {
	payload, ok := sess.focus.Payload()
	if !ok {
		return nil
	}
	return newDetailView(payload)
}

type contactForm struct {
	FullName string `form:"fullName" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Message  string `form:"message" binding:"required"`
}

func (s *Server) handleContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email and a message.",
		})
		return
	}

	err := s.mailer.Send(ContactMessage{Name: form.FullName, Email: form.Email, Message: form.Message})
	if err != nil {
		s.log.Error("Sending contact email", "error", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	s.log.Info("Contact email sent", "name", form.FullName)
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}

// selectionFromRequest reads :category plus either ?index= or ?label=.
func selectionFromRequest(c *gin.Context) (portfolio.Selection, bool) {
	category, err := portfolio.ParseCategory(c.Param("category"))
	if err != nil {
		return portfolio.Selection{}, false
	}
	if !category.Indexed() {
		return portfolio.Skill(c.Query("label")), true
	}
	index, err := strconv.Atoi(c.Query("index"))
	if err != nil {
		return portfolio.Selection{}, false
	}
	return portfolio.Item(category, index), true
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("Request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
