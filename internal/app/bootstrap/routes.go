// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/dalemusser/projecthub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/projecthub/internal/app/features/health"
	membersfeature "github.com/dalemusser/projecthub/internal/app/features/members"
	projectsfeature "github.com/dalemusser/projecthub/internal/app/features/projects"
	tasksfeature "github.com/dalemusser/projecthub/internal/app/features/tasks"
	workspacesfeature "github.com/dalemusser/projecthub/internal/app/features/workspaces"
	"github.com/dalemusser/projecthub/internal/app/store/audit"
	"github.com/dalemusser/projecthub/internal/app/system/auditlog"
	"github.com/dalemusser/projecthub/internal/app/system/auth"
	"github.com/dalemusser/projecthub/internal/app/system/jsonutil"
	"github.com/dalemusser/projecthub/internal/app/system/requestlog"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. Every /api route requires a signed-in
// session; /health does not.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}
	return newRouter(deps, appCfg, sessionMgr, logger), nil
}

func newRouter(deps DBDeps, appCfg AppConfig, sessionMgr *auth.SessionManager, logger *zap.Logger) chi.Router {
	db := deps.ProjectHubMongoDatabase
	errLog := errorsfeature.NewErrorLogger(logger)
	auditLog := auditlog.New(audit.New(db), logger, appCfg.AuditLog)

	r := chi.NewRouter()
	r.Use(requestlog.Middleware(logger))

	// Loads SessionUser into context when the request carries a valid cookie.
	r.Use(sessionMgr.LoadSessionUser)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		jsonutil.WriteError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		jsonutil.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.ProjectHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Route("/api", func(api chi.Router) {
		workspacesHandler := workspacesfeature.NewHandler(db, errLog, auditLog, logger)
		api.Mount("/workspaces", workspacesfeature.Routes(workspacesHandler, sessionMgr))

		membersHandler := membersfeature.NewHandler(db, errLog, auditLog, logger)
		api.Mount("/members", membersfeature.Routes(membersHandler, sessionMgr))

		projectsHandler := projectsfeature.NewHandler(db, errLog, auditLog, logger)
		api.Mount("/projects", projectsfeature.Routes(projectsHandler, sessionMgr))

		tasksHandler := tasksfeature.NewHandler(db, errLog, logger)
		api.Mount("/tasks", tasksfeature.Routes(tasksHandler, sessionMgr))
	})

	return r
}
