package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	demoClientID  = "demo-client-id.apps.googleusercontent.com"
	demoSecret    = "menuverse-demo-secret"
	sessionTTL    = 24 * time.Hour
	sessionIssuer = "menuverse"
)

// Demo credentials used when the sign-in request carries none.
const (
	demoEmail = "demo@menuverse.app"
	demoName  = "Demo User"
)

type SessionUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type SessionClaims struct {
	SessionUser
	Provider string `json:"provider"`
	jwt.RegisteredClaims
}

type Session struct {
	User    *SessionUser `json:"user,omitempty"`
	Expires string       `json:"expires,omitempty"`
	Token   string       `json:"token,omitempty"`
}

type provider struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	SignInURL   string `json:"signinUrl"`
	CallbackURL string `json:"callbackUrl"`
	ClientID    string `json:"clientId"`
}

func (g *Gateway) secret() []byte {
	if g.config.AuthSecret == "" {
		return []byte(demoSecret)
	}
	return []byte(g.config.AuthSecret)
}

// Auth is the stubbed OAuth surface. Any credentials sign in and nothing
// downstream checks the session.
func (g *Gateway) Auth(w http.ResponseWriter, r *http.Request) {
	action := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/auth/"), "/")

	switch action {
	case "providers":
		writeJSON(w, http.StatusOK, map[string]provider{
			"google": {
				ID:          "google",
				Name:        "Google",
				Type:        "oauth",
				SignInURL:   "/api/auth/signin/google",
				CallbackURL: "/api/auth/callback/google",
				ClientID:    g.config.GoogleClientID,
			},
		})
	case "signin", "signin/google", "callback/google":
		g.signIn(w, r)
	case "session":
		writeJSON(w, http.StatusOK, g.session(r))
	case "signout":
		writeJSON(w, http.StatusOK, Session{})
	case "csrf":
		writeJSON(w, http.StatusOK, map[string]string{"csrfToken": "demo"})
	default:
		http.Error(w, "unknown auth action", http.StatusNotFound)
	}
}

func (g *Gateway) signIn(w http.ResponseWriter, r *http.Request) {
	user := SessionUser{
		Email: r.FormValue("email"),
		Name:  r.FormValue("name"),
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
	}
	if user.Email == "" {
		user.Email = demoEmail
	}
	if user.Name == "" {
		user.Name = demoName
	}

	session, err := g.issue(user, time.Now())
	if err != nil {
		g.logger.Error("failed to sign session", zap.Error(err))
		http.Error(w, "sign in failed", http.StatusInternalServerError)
		return
	}
	g.logger.Info("demo sign in", zap.String("email", user.Email))
	writeJSON(w, http.StatusOK, session)
}

func (g *Gateway) issue(user SessionUser, now time.Time) (*Session, error) {
	expires := now.Add(sessionTTL)
	claims := SessionClaims{
		SessionUser: user,
		Provider:    "google",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret())
	if err != nil {
		return nil, err
	}
	return &Session{User: &user, Expires: expires.UTC().Format(time.RFC3339), Token: token}, nil
}

// session decodes the bearer token. A missing or unreadable token yields an
// empty session.
func (g *Gateway) session(r *http.Request) Session {
	raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if raw == "" || raw == r.Header.Get("Authorization") {
		return Session{}
	}

	claims, err := g.parse(raw)
	if err != nil {
		g.logger.Debug("ignoring session token", zap.Error(err))
		return Session{}
	}
	return Session{
		User:    &claims.SessionUser,
		Expires: claims.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

func (g *Gateway) parse(raw string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
