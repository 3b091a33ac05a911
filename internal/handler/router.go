package handler

import (
	"net/http"

	"github.com/Aravind-ihub855/Mom-Automation/internal/middleware"
	"github.com/Aravind-ihub855/Mom-Automation/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth        *AuthHandler
	Pages       *PageHandler
	Reports     *ReportHandler
	Users       *UserHandler
	ActionItems *ActionItemHandler
	Export      *ExportHandler

	SessionSecret []byte
	AdminLookup   middleware.AdminLookup
}

// NewRouter wires the full HTTP surface. Report submission and the check
// endpoint are public; everything that views or manages data sits behind the
// session cookie.
func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", http.FS(web.Static()))

	r.GET("/", h.Pages.Home)
	r.GET("/login", h.Pages.Login)
	r.POST("/login", h.Auth.Login)
	r.POST("/logout", h.Auth.Logout)
	r.GET("/check_report/:date/:name", h.Reports.Check)
	r.POST("/save_report", h.Reports.Save)

	admin := r.Group("/", middleware.SessionAuth(h.SessionSecret, h.AdminLookup))
	admin.GET("/admin", h.Pages.TeamMembers)
	admin.GET("/team_members", h.Pages.TeamMembers)
	admin.GET("/reports", h.Pages.Reports)
	admin.GET("/users", h.Users.List)
	admin.POST("/add_user", h.Users.Add)
	admin.POST("/delete_user", h.Users.Delete)
	admin.GET("/reports/:date", h.Reports.ListByDate)
	admin.GET("/generate_action_items/:date", h.ActionItems.Generate)
	admin.GET("/action_items/:date", h.ActionItems.Cached)
	admin.GET("/download_report/:date", h.Export.Download)

	return r
}
