package router

import (
	appuser "github.com/xpnews/xpnews-backend/internal/application"
	"github.com/xpnews/xpnews-backend/internal/container"
	repouser "github.com/xpnews/xpnews-backend/internal/domain/repository"
	pginfra "github.com/xpnews/xpnews-backend/internal/infrastructure/postgres"
	handlers "github.com/xpnews/xpnews-backend/internal/interface/http"
	usermodule "github.com/xpnews/xpnews-backend/internal/router/modules"
)

type UserModuleDeps struct {
	Repo    repouser.UserRepository
	Service *appuser.Service
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	repo := pginfra.NewUserRepository(container.GetPGPool())

	service := appuser.NewService(
		repo,
		container.GetUserClient(),
		container.GetLogger(),
	)

	handler := handlers.NewUserHandler(service, container.GetLogger())

	return UserModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	userDeps := buildUserDeps()
	r.Add(usermodule.NewUserModule(userDeps.Handler))
}
