package auth

import (
	"bufio"
	"net"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
)

// sessionWriter makes sure the session cookie goes out with the first
// byte of the response; once headers are flushed it is too late to
// commit the session.
type sessionWriter struct {
	gin.ResponseWriter
	sessions *SessionManager
	request  *http.Request
	flushed  bool
}

func (w *sessionWriter) beforeBody() {
	if w.flushed {
		return
	}
	w.flushed = true
	w.commitSession()
}

func (w *sessionWriter) WriteHeader(code int) {
	w.beforeBody()
	w.ResponseWriter.WriteHeader(code)
}

func (w *sessionWriter) WriteHeaderNow() {
	w.beforeBody()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *sessionWriter) Write(b []byte) (int, error) {
	w.beforeBody()
	return w.ResponseWriter.Write(b)
}

func (w *sessionWriter) commitSession() {
	ctx := w.request.Context()
	switch w.sessions.Status(ctx) {
	case scs.Modified:
		token, expiry, err := w.sessions.Commit(ctx)
		if err != nil {
			return
		}
		w.sessions.WriteSessionCookie(ctx, w.ResponseWriter, token, expiry)
	case scs.Destroyed:
		w.sessions.WriteSessionCookie(ctx, w.ResponseWriter, "", time.Time{})
	}
}

// Hijack keeps the wrapped writer usable for connection upgrades.
func (w *sessionWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.Hijack()
}

// SessionLoadSave adapts scs's LoadAndSave wrapping to gin's handler
// chain: the session is loaded into the request context on the way in
// and committed through the wrapped writer on the way out. It must run
// before anything that touches the session.
func (sm *SessionManager) SessionLoadSave() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if cookie, err := c.Request.Cookie(sm.Cookie.Name); err == nil {
			token = cookie.Value
		}

		ctx, err := sm.Load(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Request = c.Request.WithContext(ctx)

		writer := &sessionWriter{
			ResponseWriter: c.Writer,
			sessions:       sm,
			request:        c.Request,
		}
		c.Writer = writer

		c.Next()

		// Responses with no body still need the cookie
		writer.beforeBody()
	}
}
