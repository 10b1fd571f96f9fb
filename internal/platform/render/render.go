// Package render builds the HTML templates and the common page data shared by all handlers.
package render

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authentity "blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/platform/identity"
)

//go:embed templates/*.html
var files embed.FS

const avatarSize = 80

var funcs = template.FuncMap{
	"avatar": func(u *authentity.User) string {
		if u == nil {
			return ""
		}
		return u.AvatarURL(avatarSize)
	},
	"date": func(t time.Time) string {
		return t.Format("2006-01-02 15:04")
	},
}

// Templates parses every embedded page template.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}

// MustTemplates is like Templates but panics on a parse error.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}

// Page merges data with the fields every layout needs.
func Page(c *gin.Context, title string, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	id, ok := identity.From(c)
	data["Title"] = title
	data["LoggedIn"] = ok
	data["Current"] = id
	return data
}

// HTML renders the named page with the common layout data.
func HTML(c *gin.Context, status int, name, title string, data gin.H) {
	c.HTML(status, name, Page(c, title, data))
}

// Error renders the generic error page for status and aborts the handler chain.
func Error(c *gin.Context, status int) {
	HTML(c, status, "error.html", http.StatusText(status), gin.H{"Message": errorMessage(status)})
	c.Abort()
}

func errorMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "The page you are looking for does not exist."
	case http.StatusTooManyRequests:
		return "Too many attempts, try again later."
	default:
		return "Something went wrong."
	}
}
