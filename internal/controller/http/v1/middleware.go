package v1

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"
)

const (
	AnonymousUploader = "anonymous"
	UploadedByHeader  = "X-Uploaded-By"
)

type uploaderKey struct{}

// Identity resolves who is uploading. A bearer token signed with secret wins; without a token the
// X-Uploaded-By header is trusted. Tokens are only checked when secret is set.
func Identity(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uploader := strings.TrimSpace(r.Header.Get(UploadedByHeader))

			if token, ok := bearerToken(r); ok && secret != "" {
				subject, err := verifyToken(token, secret)
				if err != nil {
					writeError(w, http.StatusUnauthorized, "Invalid token")
					return
				}
				uploader = subject
			}

			ctx := r.Context()
			if uploader != "" {
				ctx = context.WithValue(ctx, uploaderKey{}, uploader)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// uploaderFrom returns the uploader resolved by Identity, then the uploadedBy form field.
func uploaderFrom(r *http.Request) string {
	if uploader, ok := r.Context().Value(uploaderKey{}).(string); ok {
		return uploader
	}

	if uploader := strings.TrimSpace(r.FormValue("uploadedBy")); uploader != "" {
		return uploader
	}

	return AnonymousUploader
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", false
	}

	return strings.TrimSpace(token), true
}

func verifyToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if subject == "" {
		return "", jwt.ErrTokenRequiredClaimMissing
	}

	return subject, nil
}

// RateLimit rejects requests with 429 once limiter runs dry. A nil limiter lets everything through.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter != nil && !limiter.Allow() {
				writeError(w, http.StatusTooManyRequests, "Too many uploads, try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
