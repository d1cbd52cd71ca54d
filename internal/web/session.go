package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/athaploo/portfolio/internal/content"
	"github.com/athaploo/portfolio/internal/portfolio"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	sessionCookie = "portfolio_session"
	sessionKey    = "session"
)

// session is the view state of one browser. The core types are not
// goroutine-safe, so every handler holds mu while it touches them.
type session struct {
	mu    sync.Mutex
	tabs  *portfolio.TabController
	focus *portfolio.FocusResolver
}

type sessionStore struct {
	content *content.Portfolio
	ttl     time.Duration
	cache   *expirable.LRU[string, *session]
}

func newSessionStore(p *content.Portfolio, capacity int, ttl time.Duration) *sessionStore {
	return &sessionStore{
		content: p,
		ttl:     ttl,
		cache:   expirable.NewLRU[string, *session](capacity, nil, ttl),
	}
}

// lookup returns the session for id and refreshes its expiry.
func (s *sessionStore) lookup(id string) (*session, bool) {
	sess, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	s.cache.Add(id, sess)
	return sess, true
}

func (s *sessionStore) create() (string, *session) {
	id := uuid.NewString()
	sess := &session{
		tabs:  portfolio.NewTabController(),
		focus: portfolio.NewFocusResolver(s.content),
	}
	s.cache.Add(id, sess)
	return id, sess
}

func (s *sessionStore) len() int {
	return s.cache.Len()
}

// sessionMiddleware attaches the caller's session, minting one when the
// cookie is missing, malformed or expired. The cookie is reissued on every
// request.
func (s *sessionStore) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := c.Cookie(sessionCookie); err == nil {
			if _, perr := uuid.Parse(id); perr == nil {
				if sess, ok := s.lookup(id); ok {
					s.setCookie(c, id)
					c.Set(sessionKey, sess)
					c.Next()
					return
				}
			}
		}

		id, sess := s.create()
		s.setCookie(c, id)
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// setCookie (re)issues the session cookie so its lifetime slides with the
// server-side expiry.
func (s *sessionStore) setCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, int(s.ttl.Seconds()), "/", "", false, true)
}

func sessionFrom(c *gin.Context) *session {
	return c.MustGet(sessionKey).(*session)
}
