package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/xpnews/xpnews-backend/config"
	"github.com/xpnews/xpnews-backend/internal/application"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire themselves from these singletons.

var (
	cfg        *config.Config
	logger     *logrus.Logger
	pgPool     *pgxpool.Pool
	userClient application.UserListClient
)

func SetConfig(c *config.Config)                   { cfg = c }
func GetConfig() *config.Config                    { return cfg }
func SetLogger(l *logrus.Logger)                   { logger = l }
func GetLogger() *logrus.Logger                    { return logger }
func SetPGPool(p *pgxpool.Pool)                    { pgPool = p }
func GetPGPool() *pgxpool.Pool                     { return pgPool }
func SetUserClient(c application.UserListClient)   { userClient = c }
func GetUserClient() application.UserListClient    { return userClient }
