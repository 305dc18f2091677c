package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/Vinlogg/configs"
	"droscher.com/Vinlogg/pkg/model"
	"droscher.com/Vinlogg/pkg/repository"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNoUser          = errors.New("no user in context")
)

const (
	unauthenticatedMessage = "Du måste vara inloggad"
	internalMessage        = "Ett fel uppstod"
)

type UserKey struct{}

// UserStore is the subset of the repository the middleware needs to sync users.
type UserStore interface {
	repository.UserRepository
	LinkPendingInvites(ctx context.Context, email string, userID uuid.UUID) ([]*model.PartnerLink, error)
}

type Manager struct {
	conf   *configs.Config
	repo   UserStore
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, repo UserStore, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, repo: repo, logger: logger}
}

// Middleware verifies the provider access token and puts the matching user in the request context.
func (a *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, email, err := a.verify(r.Header)
		if err != nil {
			a.logger.Warn("rejecting request", zap.String("path", r.URL.Path), zap.Error(err))
			writeError(w, http.StatusUnauthorized, unauthenticatedMessage)

			return
		}

		user, err := a.syncUser(r.Context(), subject, email)
		if err != nil {
			a.logger.Error("error authenticating user", zap.Error(err))
			writeError(w, http.StatusInternalServerError, internalMessage)

			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func (a *Manager) verify(header http.Header) (uuid.UUID, string, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrUnauthenticated, token.Header["alg"])
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	accessToken, err := extractTokenFromHeader(header)
	if err != nil {
		return uuid.Nil, "", err
	}

	token, err := jwt.ParseWithClaims(accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: error parsing token: %w", ErrUnauthenticated, err)
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		return uuid.Nil, "", fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	}

	if a.conf.Auth.Audience != "" && !claims.VerifyAudience(a.conf.Auth.Audience, true) {
		return uuid.Nil, "", fmt.Errorf("%w: wrong audience", ErrUnauthenticated)
	}

	if a.conf.Auth.Issuer != "" && !claims.VerifyIssuer(a.conf.Auth.Issuer, true) {
		return uuid.Nil, "", fmt.Errorf("%w: wrong issuer", ErrUnauthenticated)
	}

	sub, _ := claims["sub"].(string)

	subject, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: unable to get user id from token", ErrUnauthenticated)
	}

	email, _ := claims["email"].(string)

	return subject, model.NormalizeEmail(email), nil
}

// syncUser creates the local user row on first sight and accepts any invites waiting for its email.
func (a *Manager) syncUser(ctx context.Context, subject uuid.UUID, email string) (*model.User, error) {
	user, err := a.repo.GetUserByUUID(ctx, subject)
	if err == nil {
		a.refreshEmail(ctx, user, email)

		return user, nil
	}

	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	user, err = a.repo.AddUser(ctx, subject, email)
	if err != nil {
		// parallel first requests race on the uuid index, the loser reads the winner's row
		existing, lookupErr := a.repo.GetUserByUUID(ctx, subject)
		if lookupErr != nil {
			return nil, multierr.Append(err, lookupErr)
		}

		a.logger.Debug("user created by concurrent request", zap.String("user", subject.String()))

		return existing, nil
	}

	a.linkInvites(ctx, email, subject)

	return user, nil
}

// refreshEmail stores the token's email when it differs from the one on record.
func (a *Manager) refreshEmail(ctx context.Context, user *model.User, email string) {
	if email == "" || email == user.Email {
		return
	}

	if err := a.repo.UpdateUserEmail(ctx, user.UUID, email); err != nil {
		a.logger.Warn("could not update user email", zap.String("user", user.UUID.String()), zap.Error(err))

		return
	}

	user.Email = email
	a.linkInvites(ctx, email, user.UUID)
}

func (a *Manager) linkInvites(ctx context.Context, email string, subject uuid.UUID) {
	if email == "" {
		return
	}

	linked, err := a.repo.LinkPendingInvites(ctx, email, subject)
	if err != nil {
		a.logger.Warn("could not link pending invites", zap.String("email", email), zap.Error(err))
	} else if len(linked) > 0 {
		a.logger.Info("linked pending invites", zap.String("email", email), zap.Int("count", len(linked)))
	}
}

func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserKey{}, user)
}

func UserFromContext(ctx context.Context) (*model.User, error) {
	user, ok := ctx.Value(UserKey{}).(*model.User)
	if !ok || user == nil {
		return nil, ErrNoUser
	}

	return user, nil
}

func extractTokenFromHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		return "", fmt.Errorf("%w: authorization header not found", ErrUnauthenticated)
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return "", fmt.Errorf("%w: authorization format must be Bearer {token}", ErrUnauthenticated)
	}

	return token, nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
