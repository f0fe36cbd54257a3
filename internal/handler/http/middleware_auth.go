package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-vault-adder/internal/app"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/utils"
)

// auth enforces bearer-token authentication. On success the token subject
// is stored in the request context under [utils.SubjectCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgNoAuthorizationHeader, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.security.TokenSignKey, h.security.TokenIssuer)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				log.Err(err).Msg("token expired")
				utils.WriteError(w, app.MsgTokenIsExpired, http.StatusUnauthorized)
			default:
				log.Err(err).Msg("error occurred during parsing token")
				utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			}
			return
		}

		ctx := context.WithValue(r.Context(), utils.SubjectCtxKey, token.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
