package server

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"anoa.com/clanportal/internal/config"
	"anoa.com/clanportal/internal/handler"
	"anoa.com/clanportal/internal/middleware"
	"anoa.com/clanportal/internal/model"
	"anoa.com/clanportal/internal/repository"
	"anoa.com/clanportal/internal/service"
	"anoa.com/clanportal/pkg/storage"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(db *gorm.DB, redisClient *redis.Client, imageStorage storage.ImageStorage, cfg *config.Config) *Server {
	userRepo := repository.NewUserRepository(db)
	clanRepo := repository.NewClanRepository(db)
	requestRepo := repository.NewJoinRequestRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	rankingRepo := repository.NewRankingRepository(db)

	var states service.StateStore
	if redisClient != nil {
		states = service.NewRedisStateStore(redisClient)
	} else {
		var err error
		states, err = service.NewStaticStateStore()
		if err != nil {
			log.Fatalf("failed to initialize oauth state store: %v", err)
		}
	}

	authSvc := service.NewAuthService(userRepo, states, cfg)
	authHandler := handler.NewAuthHandler(authSvc, cfg)

	membershipSvc := service.NewMembershipService(userRepo, clanRepo, requestRepo)
	membershipHandler := handler.NewMembershipHandler(membershipSvc)

	clanSvc := service.NewClanService(clanRepo, announcementRepo)
	clanHandler := handler.NewClanHandler(clanSvc)

	adminSvc := service.NewAdminService(userRepo, clanRepo)
	adminHandler := handler.NewAdminHandler(adminSvc)

	rankingSvc := service.NewRankingService(rankingRepo)
	rankingHandler := handler.NewRankingHandler(rankingSvc)

	announcementSvc := service.NewAnnouncementService(announcementRepo)
	announcementHandler := handler.NewAnnouncementHandler(announcementSvc)

	uploadHandler := handler.NewUploadHandler(imageStorage)
	viewHandler := handler.NewViewHandler(cfg.ViewsDir)

	router := gin.New()

	setupCORS(router, cfg)
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(userRepo, cfg.SessionSecret)
	router.Use(authMiddleware.ResolveUser())

	// Views
	router.GET("/", viewHandler.Render("index.html"))
	router.GET("/login", viewHandler.Render("login.html"))
	router.GET("/register", viewHandler.Render("register.html"))
	router.GET("/clans", viewHandler.Render("clan_list.html"))
	router.GET("/clan/:id", viewHandler.Render("clan_detail.html"))
	router.GET("/admin", authMiddleware.RequireRole(model.RoleAdmin), viewHandler.Render("admin.html"))
	router.GET("/clan-owner", authMiddleware.RequireRole(model.RoleClanOwner), viewHandler.Render("clan_owner.html"))

	// Discord OAuth
	router.GET("/auth/discord", authHandler.DiscordLogin)
	router.GET("/auth/discord/callback", authHandler.DiscordCallback)
	router.GET("/logout", authHandler.Logout)

	api := router.Group("/api")

	// Public API
	api.POST("/register", membershipHandler.Register)
	api.GET("/clans", clanHandler.ListClans)
	api.GET("/clan/:id", clanHandler.ClanDetail)
	api.GET("/me", authHandler.Me)
	api.GET("/ranking", rankingHandler.GetRanking)

	// Clan owner API
	requests := api.Group("/requests")
	requests.Use(authMiddleware.RequireRole(model.RoleClanOwner))
	{
		requests.GET("", membershipHandler.ListRequests)
		requests.POST("/:id/approve", membershipHandler.Approve)
		requests.POST("/:id/reject", membershipHandler.Reject)
	}

	// Admin API
	admin := api.Group("/admin")
	admin.Use(authMiddleware.RequireRole(model.RoleAdmin))
	{
		admin.GET("/data", adminHandler.GetData)
		admin.POST("/setrole/:id", adminHandler.SetRole)
		admin.POST("/deleteclan/:id", adminHandler.DeleteClan)
	}

	// Authenticated API
	authed := api.Group("")
	authed.Use(authMiddleware.RequireAuth())
	{
		authed.GET("/announcement", announcementHandler.List)
		authed.POST("/announcement", announcementHandler.Create)
		authed.POST("/upload", uploadHandler.Upload)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, cfg *config.Config) {
	var origins []string
	if cfg.AllowedOrigins != "" {
		origins = strings.Split(cfg.AllowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
