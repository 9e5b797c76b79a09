package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"socialnet-backend/config"
	"socialnet-backend/internal/api/comment"
	"socialnet-backend/internal/api/follow"
	"socialnet-backend/internal/api/like"
	"socialnet-backend/internal/api/post"
	"socialnet-backend/internal/api/upload"
	"socialnet-backend/internal/api/user"
	"socialnet-backend/internal/middleware"
	"socialnet-backend/internal/repository/mysql"
	"socialnet-backend/internal/service"
	"socialnet-backend/internal/storage"
	"socialnet-backend/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	config.Init()

	// 初始化日志
	util.InitLogger(config.AppConfig.LogLevel)
	defer util.Logger.Sync()

	util.Logger.Info("正在启动服务器...")

	// 注册自定义验证器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("username", util.ValidateUsername)
	}

	// 连接数据库
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBHost,
		config.AppConfig.DBPort,
		config.AppConfig.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		util.Logger.Fatal("无法连接到数据库", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		util.Logger.Fatal("数据库连接测试失败", zap.Error(err))
	}
	util.Logger.Info("数据库连接成功")

	// 执行数据库迁移
	if err := mysql.RunMigrations(db); err != nil {
		util.Logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 初始化文件存储
	fileStorage, err := storage.NewFromConfig()
	if err != nil {
		util.Logger.Fatal("初始化文件存储失败", zap.Error(err))
	}

	// 初始化仓库层
	userRepo := mysql.NewUserRepository(db)
	postRepo := mysql.NewPostRepository(db)
	commentRepo := mysql.NewCommentRepository(db)
	likeRepo := mysql.NewLikeRepository(db)
	followRepo := mysql.NewFollowRepository(db)

	// 初始化服务层
	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo, userService)
	commentService := service.NewCommentService(commentRepo, postService)
	likeService := service.NewLikeService(likeRepo, postService)
	followService := service.NewFollowService(followRepo, userService)

	// 初始化处理器
	authHandler := user.NewAuthHandler(userService)
	profileHandler := user.NewProfileHandler(userService, fileStorage)
	userHandler := user.NewUserHandler(userService)
	postHandler := post.NewPostHandler(postService)
	commentHandler := comment.NewCommentHandler(commentService)
	likeHandler := like.NewLikeHandler(likeService)
	followHandler := follow.NewFollowHandler(followService)
	uploadHandler := upload.NewUploadHandler(fileStorage)

	// 设置路由
	r := gin.New()
	r.Use(middleware.RecoveryMiddleware())

	errorMonitor := middleware.NewErrorMonitor()
	r.Use(middleware.ErrorMonitorMiddleware(errorMonitor))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 本地存储时直接暴露上传目录
	if config.AppConfig.StorageDriver == "local" {
		r.Static("/uploads", config.AppConfig.LocalStoragePath)
	}

	authRequired := middleware.AuthMiddleware(userService)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authRequired, authHandler.RefreshToken)
			auth.POST("/logout", authRequired, authHandler.Logout)
		}

		profile := api.Group("/profile", authRequired)
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PATCH("", profileHandler.UpdateProfile)
			profile.DELETE("", profileHandler.DeleteAccount)
			profile.POST("/avatar", profileHandler.UploadAvatar)
		}

		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/username/:username", userHandler.GetUserByUsername)
			users.GET("/:id", userHandler.GetUser)
			users.GET("/:id/posts", postHandler.ListUserPosts)
			users.GET("/:id/followers", followHandler.GetFollowers)
			users.GET("/:id/following", followHandler.GetFollowing)
			users.POST("/:id/follow", authRequired, followHandler.FollowUser)
			users.DELETE("/:id/follow", authRequired, followHandler.UnfollowUser)
			users.GET("/:id/follow-status", authRequired, followHandler.GetFollowStatus)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", postHandler.ListPosts)
			posts.POST("", authRequired, postHandler.CreatePost)
			posts.GET("/:id", postHandler.GetPost)
			posts.PATCH("/:id", authRequired, postHandler.UpdatePost)
			posts.DELETE("/:id", authRequired, postHandler.DeletePost)
			posts.GET("/:id/likes", likeHandler.ListPostLikes)
			posts.POST("/:id/like", authRequired, likeHandler.LikePost)
			posts.DELETE("/:id/like", authRequired, likeHandler.UnlikePost)
			posts.GET("/:id/like-status", authRequired, likeHandler.GetLikeStatus)
			posts.GET("/:id/comments", commentHandler.ListPostComments)
			posts.POST("/:id/comments", authRequired, commentHandler.CreateComment)
		}

		comments := api.Group("/comments")
		{
			comments.GET("/:id", commentHandler.GetComment)
			comments.PATCH("/:id", authRequired, commentHandler.UpdateComment)
			comments.DELETE("/:id", authRequired, commentHandler.DeleteComment)
			comments.GET("/:id/replies", commentHandler.GetReplies)
			comments.POST("/:id/replies", authRequired, commentHandler.CreateReply)
		}

		api.POST("/upload", authRequired, uploadHandler.UploadFile)
	}

	// 启动服务器并支持优雅关闭
	srv := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}

	go func() {
		util.Logger.Info("服务器启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			util.Logger.Fatal("服务器启动失败", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	util.Logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		util.Logger.Fatal("服务器强制关闭", zap.Error(err))
	}

	util.Logger.Info("服务器已退出")
}
