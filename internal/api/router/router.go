package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-school/backend/config"
	"blog-school/backend/internal/api/handler"
	"blog-school/backend/internal/api/middleware"
	"blog-school/backend/internal/model"
	"blog-school/backend/pkg/jwt"
	"blog-school/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(8 << 20)) // 8MB，给 xlsx 导入留余量

	// 限速默认关闭；启用时 Redis 缺失也会降级放行
	if cfg.Feature.RateLimitEnabled {
		r.Use(middleware.RateLimit(rdb, cfg.Feature.RateLimitPerMin, time.Minute))
	}

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		v1.POST("/auth/login", h.Auth.Login)

		// 文章读接口公开
		v1.GET("/posts", h.Post.List)
		v1.GET("/posts/:id", h.Post.Get)

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr))
		{
			// 文章写接口：角色门在此，归属门在 Service 层
			authorized.POST("/posts", middleware.RoleAuth(model.RoleTeacher), h.Post.Create)
			authorized.PUT("/posts/:id", middleware.RoleAuth(model.RoleTeacher), h.Post.Update)
			authorized.DELETE("/posts/:id", middleware.RoleAuth(model.RoleTeacher), h.Post.Delete)

			// 教师管理：仅管理员
			teachers := authorized.Group("/teachers")
			teachers.Use(middleware.AdminOnly())
			{
				teachers.GET("", h.Teacher.List)
				teachers.GET("/:id", h.Teacher.Get)
				teachers.POST("", h.Teacher.Create)
				teachers.PUT("/:id", h.Teacher.Update)
				teachers.DELETE("/:id", h.Teacher.Delete)
			}

			// 学生管理：列表对教师开放（管理员经 RoleAuth 旁路放行），写操作仅管理员
			students := authorized.Group("/students")
			{
				students.GET("", middleware.RoleAuth(model.RoleTeacher), h.Student.List)
				students.GET("/:id", middleware.RoleAuth(model.RoleTeacher), h.Student.Get)
				students.POST("", middleware.AdminOnly(), h.Student.Create)
				students.PUT("/:id", middleware.AdminOnly(), h.Student.Update)
				students.DELETE("/:id", middleware.AdminOnly(), h.Student.Delete)
				students.POST("/import", middleware.AdminOnly(), h.Student.Import)
			}
		}
	}

	return r
}
