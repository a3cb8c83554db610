package router

import (
	"fmt"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"opencsg.com/bookmark-server/api/handler"
	"opencsg.com/bookmark-server/api/middleware"
	bldprometheus "opencsg.com/bookmark-server/builder/prometheus"
	"opencsg.com/bookmark-server/common/config"
)

func NewRouter(config *config.Config, enableSwagger bool) (*gin.Engine, error) {
	r := gin.New()
	r.Use(middleware.Request())
	r.Use(middleware.CORS())
	// Log wraps Recovery so requests that panic still get an access log line
	r.Use(middleware.Log())
	r.Use(middleware.Recovery())

	if config.Metrics.Enable {
		bldprometheus.InitMetrics()
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(bldprometheus.Handler()))
	}

	healthHandler := handler.NewHealthHandler()
	r.GET("/healthz", healthHandler.Healthz)
	r.HEAD("/healthz", healthHandler.Healthz)

	if config.EnablePprof {
		//add router for golang pprof
		debugGroup := r.Group("/debug")
		pprof.RouteRegister(debugGroup, "pprof")
	}

	if enableSwagger {
		r.GET("/api/v1/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	bookmarkHandler, err := handler.NewBookmarkHandler(config)
	if err != nil {
		return nil, fmt.Errorf("error creating bookmark handler:%w", err)
	}
	createBookmarkRoutes(r, bookmarkHandler)

	return r, nil
}

func createBookmarkRoutes(r *gin.Engine, bookmarkHandler *handler.BookmarkHandler) {
	bookmarkGroup := r.Group("/bookmarkfile")
	{
		bookmarkGroup.GET("", bookmarkHandler.List)
		bookmarkGroup.POST("", bookmarkHandler.Create)
	}
}
