package auth

// Terminology: User Identifiers
//   - UserID / userID / user_id: the ObjectID of the signed-in account, as
//     issued by the identity service that owns login. This service never
//     creates or changes sessions; it only reads them.
//   - MemberID: the _id of a Membership record. A user has one per workspace.

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/projecthub/internal/app/system/jsonutil"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	userIDKey    = "user_id"
	userNameKey  = "user_name"
	userEmailKey = "user_email"
)

// SessionUser is what we read from the session and inject into r.Context().
type SessionUser struct {
	ID    string
	Name  string
	Email string
}

// ObjectID parses the user ID.
func (u *SessionUser) ObjectID() (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(u.ID)
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// SessionManager reads the signed session cookie shared with the identity
// service.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager builds a cookie-backed session reader. sessionKey must
// match the key the issuing service signs cookies with.
func NewSessionManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if name == "" {
		return nil, fmt.Errorf("session name is empty")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts
	store.MaxAge(opts.MaxAge)

	logger.Info("session manager initialized",
		zap.String("name", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{store: store, name: name, log: logger}, nil
}

// CurrentUser returns the user and a "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// CurrentUserID returns the signed-in user's ObjectID. ok is false when no
// user is in context or the stored ID is malformed.
func CurrentUserID(r *http.Request) (primitive.ObjectID, bool) {
	u, ok := CurrentUser(r)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := u.ObjectID()
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// LoadSessionUser injects the user into context when the request carries a
// valid session. A cookie that fails to decode (tampered, expired or signed
// with another key) is treated as no session.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := sm.store.Get(r, sm.name)
		if err != nil {
			var scErr securecookie.Error
			if errors.As(err, &scErr) && scErr.IsDecode() {
				sm.log.Debug("ignoring undecodable session cookie", zap.Error(err))
			} else {
				sm.log.Warn("session read failed", zap.Error(err))
			}
			next.ServeHTTP(w, r)
			return
		}

		if id := getString(sess, userIDKey); id != "" {
			r = withUser(r, &SessionUser{
				ID:    id,
				Name:  getString(sess, userNameKey),
				Email: getString(sess, userEmailKey),
			})
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn answers 401 unless LoadSessionUser placed a user with a
// well-formed ID in context.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUserID(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		jsonutil.WriteError(w, http.StatusUnauthorized, "Unauthorized")
	})
}

// WithTestUser injects a user into the request context. Tests use it to
// bypass cookie handling.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// getString safely extracts a string from a session value.
func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}
