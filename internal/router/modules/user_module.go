package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/xpnews/xpnews-backend/internal/interface/http"
)

// UserModule wires the user HTTP handlers into routes under the base group:
//
//	POST   /xp-news/users/create
//	GET    /xp-news/users/find-all
//	GET    /xp-news/users/find-all/client
//	GET    /xp-news/users/find-by-id?id=
//	GET    /xp-news/users/find-by-username?username=
//	GET    /xp-news/users/find-by-email?email=
//	PUT    /xp-news/users/update?id=
//	PUT    /xp-news/users/update-user?id=
//	DELETE /xp-news/users/delete?id=
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("/create", m.Handler.Create)
		users.GET("/find-all", m.Handler.FindAll)
		users.GET("/find-all/client", m.Handler.FindAllWithClient)
		users.GET("/find-by-id", m.Handler.FindByID)
		users.GET("/find-by-username", m.Handler.FindByUsername)
		users.GET("/find-by-email", m.Handler.FindByEmail)
		users.PUT("/update", m.Handler.UpdatePassword)
		users.PUT("/update-user", m.Handler.UpdateUser)
		users.DELETE("/delete", m.Handler.Delete)
	}
}
