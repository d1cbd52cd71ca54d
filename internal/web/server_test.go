package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/athaploo/portfolio/internal/config"
	"github.com/athaploo/portfolio/internal/content"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dialogMarker = `role="dialog"`

type fakeMailer struct {
	mu   sync.Mutex
	sent []ContactMessage
	err  error
}

func (m *fakeMailer) Send(msg ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	p, err := content.Default()
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.StaticDir = t.TempDir()

	s, err := New(cfg, p, opts...)
	require.NoError(t, err)
	return s
}

// browser replays the session cookie like a real client would.
type browser struct {
	handler http.Handler
	cookies []*http.Cookie
}

func newBrowser(s *Server) *browser {
	return &browser{handler: s.Handler()}
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	b.handler.ServeHTTP(rec, req)
	if cookies := rec.Result().Cookies(); len(cookies) > 0 {
		b.cookies = cookies
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, path, nil)
}

func TestIndex_DefaultsToProjects(t *testing.T) {
	b := newBrowser(newTestServer(t))

	rec := b.get("/")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Aaditya Thaploo")
	assert.Contains(t, body, `data-active="projects"`)
	assert.Contains(t, body, "AI Virtual Assistant for Customer Support")
	assert.Contains(t, body, "Professional Experience")
	assert.NotContains(t, body, dialogMarker)
	assert.Contains(t, body, `id="theme-toggle"`)
	assert.Contains(t, body, "function toggleTheme()")

	require.Len(t, b.cookies, 1)
	assert.Equal(t, sessionCookie, b.cookies[0].Name)
	assert.True(t, b.cookies[0].HttpOnly)
}

func TestSkillScenario(t *testing.T) {
	b := newBrowser(newTestServer(t))

	rec := b.get("/tabs/skills")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-active="skills"`)
	assert.Contains(t, rec.Body.String(), "/focus/skill?label=Python")

	rec = b.get("/focus/skill?label=Python")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, dialogMarker)
	assert.Contains(t, body, "Python")
	assert.Contains(t, body, "One of Aaditya’s core tools/skills used across projects and experience.")
	assert.NotContains(t, body, "Problem • Approach • Outcomes")

	// The tab survives a full reload.
	assert.Contains(t, b.get("/").Body.String(), `data-active="skills"`)
}

func TestFocus_ProjectModalPersistsAcrossReload(t *testing.T) {
	b := newBrowser(newTestServer(t))
	b.get("/")

	rec := b.get("/focus/project?index=0")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, dialogMarker)
	assert.Contains(t, body, "AI Virtual Assistant for Customer Support")
	assert.Contains(t, body, "Problem • Approach • Outcomes")
	for _, tag := range []string{"Python", "NLP", "APIs", "Automation"} {
		assert.Contains(t, body, tag)
	}
	assert.Contains(t, body, "Reduced average resolution time by 38%")

	page := b.get("/").Body.String()
	assert.Contains(t, page, dialogMarker)
	assert.Contains(t, page, "Scaled to ~2k requests/week")
}

func TestFocus_FailsClosed(t *testing.T) {
	b := newBrowser(newTestServer(t))
	b.get("/")

	for _, path := range []string{
		"/focus/project?index=999",
		"/focus/project?index=abc",
		"/focus/honor",
		"/focus/skill",
		"/focus/hobby?index=0",
	} {
		b.get("/focus/project?index=1")
		rec := b.get(path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotContains(t, rec.Body.String(), dialogMarker, path)
		assert.NotContains(t, b.get("/").Body.String(), dialogMarker, path)
	}
}

func TestFocus_LastOpenWins(t *testing.T) {
	b := newBrowser(newTestServer(t))

	b.get("/focus/project?index=0")
	rec := b.get("/focus/experience?index=0")

	body := rec.Body.String()
	assert.Contains(t, body, "IT Support &amp; Automation — Logenix International · Internship")
	assert.NotContains(t, body, "AI Virtual Assistant for Customer Support")
}

func TestCloseIsIdempotent(t *testing.T) {
	b := newBrowser(newTestServer(t))

	rec := b.do(http.MethodDelete, "/focus", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), dialogMarker)

	b.get("/focus/education?index=0")
	b.do(http.MethodDelete, "/focus", nil)
	rec = b.do(http.MethodDelete, "/focus", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, b.get("/").Body.String(), dialogMarker)
}

func TestSessionsAreIsolated(t *testing.T) {
	s := newTestServer(t)
	alice := newBrowser(s)
	bob := newBrowser(s)

	alice.get("/tabs/certifications")
	alice.get("/focus/certification?index=1")

	page := bob.get("/").Body.String()
	assert.Contains(t, page, `data-active="projects"`)
	assert.NotContains(t, page, dialogMarker)

	page = alice.get("/").Body.String()
	assert.Contains(t, page, `data-active="certifications"`)
	assert.Contains(t, page, "https://coursera.org/verify/ESWBLBF75GJE")
	assert.Equal(t, 2, s.sessions.len())
}

func TestUnknownSessionCookieGetsFreshSession(t *testing.T) {
	s := newTestServer(t)
	b := newBrowser(s)
	b.cookies = []*http.Cookie{{Name: sessionCookie, Value: "not-a-uuid"}}

	rec := b.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, b.cookies, 1)
	assert.NotEqual(t, "not-a-uuid", b.cookies[0].Value)
}

func TestSessionCookieIsRefreshedOnReuse(t *testing.T) {
	s := newTestServer(t)
	b := newBrowser(s)

	require.Equal(t, http.StatusOK, b.get("/").Code)
	require.Len(t, b.cookies, 1)
	first := b.cookies[0].Value

	rec := b.get("/tabs/skills")
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookie, cookies[0].Name)
	assert.Equal(t, first, cookies[0].Value)
	assert.Equal(t, int(s.cfg.Session.TTL.Seconds()), cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 1, s.sessions.len())
}

func TestTabs_Unknown(t *testing.T) {
	b := newBrowser(newTestServer(t))

	rec := b.get("/tabs/hobbies")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, b.get("/").Body.String(), `data-active="projects"`)
}

func TestTabs_HonorsRenderBothDescriptionForms(t *testing.T) {
	b := newBrowser(newTestServer(t))

	body := b.get("/tabs/honors").Body.String()
	assert.Contains(t, body, "Capstone Project Award – Best in Department")
	assert.Contains(t, body, "<li class=\"line-clamp-2\">I served as Captain")
}

func TestConcurrentRequestsShareSession(t *testing.T) {
	s := newTestServer(t)
	b := newBrowser(s)
	b.get("/")
	cookies := b.cookies

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path := "/focus/project?index=0"
			if i%2 == 0 {
				path = "/tabs/education"
			}
			req := httptest.NewRequest(http.MethodGet, path, nil)
			for _, c := range cookies {
				req.AddCookie(c)
			}
			s.Handler().ServeHTTP(httptest.NewRecorder(), req)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, s.sessions.len())
	page := b.get("/").Body.String()
	assert.Contains(t, page, `data-active="education"`)
	assert.Contains(t, page, dialogMarker)
}

func TestAPIDetail(t *testing.T) {
	s := newTestServer(t)

	get := func(path string) (*httptest.ResponseRecorder, detailView) {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		var v detailView
		if rec.Code == http.StatusOK {
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
		}
		return rec, v
	}

	rec, v := get("/api/detail/project?index=0")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "AI Virtual Assistant for Customer Support", v.Title)
	assert.Equal(t, "Problem • Approach • Outcomes", v.Subtitle)
	require.NotNil(t, v.Body)
	assert.Equal(t, bodySections, v.Body.Kind)
	assert.Len(t, v.Body.Outcomes, 3)

	_, v = get("/api/detail/certification?index=0")
	assert.Equal(t, []metaView{{Text: "Issued: Jan 6, 2024"}}, v.Meta)

	_, v = get("/api/detail/certifications?index=1")
	require.Len(t, v.Meta, 2)
	assert.Equal(t, metaView{Text: "Verify", URL: "https://coursera.org/verify/ESWBLBF75GJE"}, v.Meta[1])

	_, v = get("/api/detail/honor?index=1")
	require.NotNil(t, v.Body)
	assert.Equal(t, bodyList, v.Body.Kind)
	assert.Len(t, v.Body.Items, 4)

	_, v = get("/api/detail/skill?label=Go")
	assert.Equal(t, "Go", v.Title)
	assert.Empty(t, v.Subtitle)
	assert.Empty(t, v.Tags)

	rec, _ = get("/api/detail/project?index=999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec, _ = get("/api/detail/skill")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec, _ = get("/api/detail/unknown?index=0")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContact(t *testing.T) {
	t.Run("sends", func(t *testing.T) {
		mailer := &fakeMailer{}
		b := newBrowser(newTestServer(t, WithMailer(mailer)))

		rec := b.do(http.MethodPost, "/contact", url.Values{
			"fullName": {"Jo"},
			"email":    {"jo@example.com"},
			"message":  {"Hello"},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "get back to you soon")
		require.Len(t, mailer.sent, 1)
		assert.Equal(t, ContactMessage{Name: "Jo", Email: "jo@example.com", Message: "Hello"}, mailer.sent[0])
	})

	t.Run("invalid form", func(t *testing.T) {
		mailer := &fakeMailer{}
		b := newBrowser(newTestServer(t, WithMailer(mailer)))

		rec := b.do(http.MethodPost, "/contact", url.Values{
			"fullName": {"Jo"},
			"email":    {"not-an-email"},
			"message":  {"Hello"},
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "valid email")
		assert.Empty(t, mailer.sent)
	})

	t.Run("mailer failure", func(t *testing.T) {
		mailer := &fakeMailer{err: errors.New("connection refused")}
		b := newBrowser(newTestServer(t, WithMailer(mailer)))

		rec := b.do(http.MethodPost, "/contact", url.Values{
			"fullName": {"Jo"},
			"email":    {"jo@example.com"},
			"message":  {"Hello"},
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Please try again later")
	})

	t.Run("form fragment", func(t *testing.T) {
		b := newBrowser(newTestServer(t))
		rec := b.get("/contact-form")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `hx-post="/contact"`)
	})
}

func TestDisabledSMTPMailer(t *testing.T) {
	m := NewSMTPMailer(config.SMTPConfig{Host: "localhost", Port: "25"}, "me@example.com")
	err := m.Send(ContactMessage{Name: "Jo"})
	assert.ErrorIs(t, err, ErrMailerDisabled)
}

func TestComposeContactEmail_StripsHeaderBreaks(t *testing.T) {
	raw := string(composeContactEmail("from@example.com", "to@example.com", ContactMessage{
		Name:    "Jo\r\nBcc: victim@example.com",
		Email:   "jo@example.com",
		Message: "line one\nline two",
	}))

	headers, body, found := strings.Cut(raw, "\r\n\r\n")
	require.True(t, found)
	assert.Contains(t, headers, "Subject: Portfolio Contact: Jo  Bcc: victim@example.com")
	assert.NotContains(t, headers, "\r\nBcc:")
	assert.Contains(t, body, "line one\nline two")
}

func TestSitemapAndRobots(t *testing.T) {
	clock := func() time.Time { return time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC) }
	s := newTestServer(t, WithClock(clock))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, rec.Body.String(), "<loc>https://aadityathaploo.com/</loc>")
	assert.Contains(t, rec.Body.String(), "<lastmod>2025-09-01T00:00:00Z</lastmod>")

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	assert.Contains(t, rec.Body.String(), "Sitemap: https://aadityathaploo.com/sitemap.xml")

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
