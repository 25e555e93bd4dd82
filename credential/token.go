package credential

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// NewToken wraps raw token value, the exp claim of a JWT becomes token expiry
func NewToken(raw string) *oauth2.Token {
	token := &oauth2.Token{AccessToken: raw}
	if expiry, ok := expiryOf(raw); ok {
		token.Expiry = expiry
	}
	return token
}

func expiryOf(raw string) (time.Time, bool) {
	if strings.Count(raw, ".") != 2 {
		return time.Time{}, false
	}
	var claims jwt.MapClaims
	if _, _, err := new(jwt.Parser).ParseUnverified(raw, &claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func accessToken(token *oauth2.Token) (string, bool) {
	if !token.Valid() {
		return "", false
	}
	return token.AccessToken, true
}
