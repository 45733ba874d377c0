package web

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Theme is the page colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const (
	themeCookie    = "theme"
	themeCookieTTL = 365 * 24 * time.Hour
	// prefersSchemeHeader is the client hint carrying the OS colour scheme.
	prefersSchemeHeader = "Sec-CH-Prefers-Color-Scheme"
)

// ParseTheme returns the theme named by raw and whether it was recognized.
func ParseTheme(raw string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(raw))) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return "", false
	}
}

// ResolveTheme picks the theme to render: a valid stored choice wins, then the
// system preference, then light.
func ResolveTheme(stored string, systemPrefersDark bool) Theme {
	if t, ok := ParseTheme(stored); ok {
		return t
	}
	if systemPrefersDark {
		return ThemeDark
	}
	return ThemeLight
}

func themeFromRequest(c *gin.Context) Theme {
	stored, _ := c.Cookie(themeCookie)
	prefersDark := strings.EqualFold(strings.Trim(c.GetHeader(prefersSchemeHeader), `" `), "dark")
	return ResolveTheme(stored, prefersDark)
}

func persistTheme(c *gin.Context, t Theme) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     themeCookie,
		Value:    string(t),
		Path:     "/",
		MaxAge:   int(themeCookieTTL / time.Second),
		SameSite: http.SameSiteLaxMode,
	})
}
