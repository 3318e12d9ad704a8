package driver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/cors"
)

// NewCORS builds the CORS policy: the configured origin list, any
// Railway subdomain, and private-network origins so phones on the
// local LAN can reach the API during testing.
func NewCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return originAllowed(allowedOrigins, origin)
		},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "x-admin-token"},
		AllowCredentials: true,
	})
}

func originAllowed(allowed []string, origin string) bool {
	if origin == "" {
		return true
	}

	for _, candidate := range allowed {
		if candidate == origin {
			return true
		}
		// Suffix entries like ".onrender.com" match any subdomain.
		if strings.HasPrefix(candidate, ".") && strings.HasSuffix(origin, candidate) {
			return true
		}
	}

	if strings.Contains(origin, ".railway.app") {
		return true
	}

	if strings.HasPrefix(origin, "http://192.168.") || strings.HasPrefix(origin, "http://10.") {
		return true
	}
	if strings.HasPrefix(origin, "http://172.") {
		parts := strings.Split(strings.TrimPrefix(origin, "http://"), ".")
		if len(parts) >= 2 {
			if octet, err := strconv.Atoi(parts[1]); err == nil && octet >= 16 && octet <= 31 {
				return true
			}
		}
	}

	return false
}
