package api

import (
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/schoolhub/portal/docs"
	v1 "github.com/schoolhub/portal/internal/api/handler/v1"
	"github.com/schoolhub/portal/internal/api/middleware"
	"github.com/schoolhub/portal/internal/cache"
	"github.com/schoolhub/portal/internal/config"
	"github.com/schoolhub/portal/internal/pkg/inflight"
	"github.com/schoolhub/portal/internal/repository"
	"github.com/schoolhub/portal/internal/repository/dao"
	"github.com/schoolhub/portal/internal/service"
	"github.com/schoolhub/portal/internal/session"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

// NewServer wires the screens against the school API. rdb may be nil, in
// which case the province cache and the in-flight guard stay in process.
func NewServer(conf *config.AppConfig, rdb *redis.Client) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	cookies, err := session.NewCookies(conf.Session.Secret, conf.Session.Secure, conf.Session.MaxAge())
	if err != nil {
		return nil, fmt.Errorf("session.NewCookies -> %w", err)
	}

	client := dao.NewClient(conf.Backend.BaseURL, conf.Backend.Headers, conf.Backend.Timeout)
	guard := inflight.New(rdb, conf.Inflight.TTL)

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(client, guard, cookies)
	addressHandler := s.initAddressHandler(client, rdb, guard, cookies)
	s.MountHandlers(authHandler, addressHandler)

	return s, nil
}

func (s *Server) initAuthHandler(client *dao.Client, guard inflight.Guard, cookies *session.Cookies) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(client)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo, guard)
	handler := v1.NewAuthHandler(svc, cookies)

	return handler
}

func (s *Server) initAddressHandler(client *dao.Client, rdb *redis.Client, guard inflight.Guard, cookies *session.Cookies) *v1.AddressHandler {
	geoRepo := repository.NewGeoRepository(dao.NewGeoDAO(client))
	geoSvc := service.NewGeoService(geoRepo, cache.New(rdb, s.Config.Geo.CacheTTL))

	addressRepo := repository.NewAddressRepository(dao.NewAddressDAO(client))
	svc := service.NewAddressService(addressRepo, geoSvc, guard)
	handler := v1.NewAddressHandler(geoSvc, svc, cookies)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New(requestid.WithGenerator(uuid.NewString)))
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, addressHandler *v1.AddressHandler) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.GET("/auth/login", authHandler.HandleLoginScreen)
		auth.POST("/auth/login", authHandler.HandleLogin)
		auth.POST("/auth/logout", authHandler.HandleLogout)
	}

	address := s.Router.Group(basePath)
	{
		address.GET("/address/provinces", addressHandler.HandleGetProvinces)
		address.GET("/address/form", addressHandler.HandleGetForm)
		address.POST("/address", addressHandler.HandleSubmitAddress)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "School portal API"
	docs.SwaggerInfo.Description = "Login and address screens backed by the school API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
