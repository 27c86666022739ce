package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	authentapp "github.com/geotrail/backend/internal/application/authent"
	commonapp "github.com/geotrail/backend/internal/application/common"
	coreapp "github.com/geotrail/backend/internal/application/core"
	feedbackapp "github.com/geotrail/backend/internal/application/feedback"
	infraapp "github.com/geotrail/backend/internal/application/infrastructure"
	"github.com/geotrail/backend/internal/application/jobs"
	landapp "github.com/geotrail/backend/internal/application/land"
	maintapp "github.com/geotrail/backend/internal/application/maintenance"
	signapp "github.com/geotrail/backend/internal/application/signage"
	tourismapp "github.com/geotrail/backend/internal/application/tourism"
	trekapp "github.com/geotrail/backend/internal/application/trekking"
	"github.com/geotrail/backend/internal/infrastructure/auth"
	"github.com/geotrail/backend/internal/infrastructure/cache"
	"github.com/geotrail/backend/internal/infrastructure/capture"
	"github.com/geotrail/backend/internal/infrastructure/config"
	"github.com/geotrail/backend/internal/infrastructure/logger"
	"github.com/geotrail/backend/internal/infrastructure/persistence"
	"github.com/geotrail/backend/internal/infrastructure/scheduler"
	"github.com/geotrail/backend/internal/infrastructure/storage"
	"github.com/geotrail/backend/internal/infrastructure/sync"
	"github.com/geotrail/backend/internal/interfaces/http/handler"
	"github.com/geotrail/backend/internal/interfaces/http/middleware"
	"github.com/geotrail/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/geotrail/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Geotrail API
//	@version		1.0
//	@description	Trail network management backend: paths, treks, signage, infrastructure, tourism and maintenance.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	https://github.com/geotrail/backend

//	@license.name	BSD-2-Clause
//	@license.url	https://opensource.org/licenses/BSD-2-Clause

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Geotrail Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Redis backs the token blacklist and the published layer cache.
	// Without it both fall back to in-process stores.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis unreachable, using in-memory fallbacks", zap.Error(err))
			redisClient = nil
		}
		cancel()
	}

	var blacklist auth.TokenBlacklist
	var layerCache cache.LayerCache
	if redisClient != nil {
		blacklist = auth.NewRedisTokenBlacklistWithClient(redisClient)
		layerCache = cache.NewRedisLayerCacheWithClient(redisClient, "layers")
		log.Info("Redis connected successfully")
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		layerCache = cache.NewInMemoryLayerCache()
	}

	// Object storage for exports and uploaded photos
	var objectStore storage.ObjectStorage
	if cfg.Storage.AccessKeyID != "" {
		s3Store, err := storage.NewS3ObjectStorage(&cfg.Storage)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		objectStore = s3Store
		log.Info("Object storage initialized", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		objectStore = storage.NewMemoryObjectStorage()
		log.Warn("No storage credentials configured, using in-memory object storage")
	}

	// Headless browser capturer for static map images and profile rendering
	var capturer capture.MapCapturer
	if cfg.Capture.Enabled {
		chromeCapturer, err := capture.NewChromedpCapturer(&capture.ChromedpConfig{
			DefaultTimeout: cfg.Capture.Timeout,
			Headless:       true,
			DisableGPU:     true,
			NoSandbox:      true,
			DefaultWidth:   cfg.Capture.ImageWidth,
			DefaultHeight:  cfg.Capture.ImageHeight,
		})
		if err != nil {
			log.Fatal("Failed to initialize map capturer", zap.Error(err))
		}
		capturer = chromeCapturer
		log.Info("Map capture enabled", zap.String("map_url", cfg.Capture.MapURL))
	}

	// Initialize repositories
	structureRepo := persistence.NewGormStructureRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	roleRepo := persistence.NewGormRoleRepository(db.DB)
	pathRepo := persistence.NewGormPathRepository(db.DB)
	trailRepo := persistence.NewGormTrailRepository(db.DB)
	stakeRepo := persistence.NewGormStakeRepository(db.DB)
	networkRepo := persistence.NewGormNetworkRepository(db.DB)
	usageRepo := persistence.NewGormUsageRepository(db.DB)
	trailCategoryRepo := persistence.NewGormTrailCategoryRepository(db.DB)
	trekRepo := persistence.NewGormTrekRepository(db.DB)
	poiRepo := persistence.NewGormPOIRepository(db.DB)
	servicePointRepo := persistence.NewGormServiceRepository(db.DB)
	practiceRepo := persistence.NewGormPracticeRepository(db.DB)
	trekDifficultyRepo := persistence.NewGormDifficultyLevelRepository(db.DB)
	routeRepo := persistence.NewGormRouteRepository(db.DB)
	accessibilityRepo := persistence.NewGormAccessibilityRepository(db.DB)
	trekNetworkRepo := persistence.NewGormTrekNetworkRepository(db.DB)
	webLinkRepo := persistence.NewGormWebLinkRepository(db.DB)
	poiTypeRepo := persistence.NewGormPOITypeRepository(db.DB)
	serviceTypeRepo := persistence.NewGormServiceTypeRepository(db.DB)
	signageRepo := persistence.NewGormSignageRepository(db.DB)
	bladeRepo := persistence.NewGormBladeRepository(db.DB)
	signageTypeRepo := persistence.NewGormSignageTypeRepository(db.DB)
	themeRepo := persistence.NewGormThemeRepository(db.DB)
	organismRepo := persistence.NewGormOrganismRepository(db.DB)
	infraRepo := persistence.NewGormInfrastructureRepository(db.DB)
	infraTypeRepo := persistence.NewGormInfrastructureTypeRepository(db.DB)
	infraDifficultyRepo := persistence.NewGormInfraDifficultyLevelRepository(db.DB)
	landEdgeRepo := persistence.NewGormLandEdgeRepository(db.DB)
	physicalTypeRepo := persistence.NewGormPhysicalTypeRepository(db.DB)
	landTypeRepo := persistence.NewGormLandTypeRepository(db.DB)
	interventionRepo := persistence.NewGormInterventionRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)
	contentRepo := persistence.NewGormTouristicContentRepository(db.DB)
	contentCategoryRepo := persistence.NewGormTouristicContentCategoryRepository(db.DB)
	contentTypeRepo := persistence.NewGormTouristicContentTypeRepository(db.DB)
	deskRepo := persistence.NewGormInformationDeskRepository(db.DB)
	deskTypeRepo := persistence.NewGormInformationDeskTypeRepository(db.DB)

	// DEM-backed elevation sampler, used for altimetry on paths and treks
	sampler := persistence.NewPostgisElevationSampler(db.DB, "")

	// Background job pipeline: scheduler, nightly trigger and executor
	var touristicSource jobs.TouristicSource
	if cfg.Sync.SourceURL != "" {
		touristicSource = sync.NewHTTPTouristicSource(cfg.Sync.SourceURL, cfg.Sync.APIKey, cfg.Sync.Timeout, log)
		log.Info("Touristic sync source configured", zap.String("url", cfg.Sync.SourceURL))
	}
	executor := jobs.NewExecutor(
		trekRepo,
		pathRepo,
		contentRepo,
		touristicSource,
		capturer,
		objectStore,
		sampler,
		cfg.Capture.MapURL,
		log,
	)
	jobScheduler := scheduler.NewScheduler(scheduler.SchedulerConfig{
		Enabled:           cfg.Scheduler.Enabled,
		MaxConcurrentJobs: cfg.Scheduler.MaxConcurrentJobs,
		JobTimeout:        cfg.Scheduler.JobTimeout,
		RetryAttempts:     cfg.Scheduler.RetryAttempts,
		RetryDelay:        cfg.Scheduler.RetryDelay,
	}, executor, log)
	cronTrigger := scheduler.NewCronTrigger(scheduler.DefaultCronTriggerConfig(), jobScheduler, structureRepo, log)

	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	if cfg.Scheduler.Enabled {
		if err := jobScheduler.Start(schedulerCtx); err != nil {
			log.Fatal("Failed to start job scheduler", zap.Error(err))
		}
		if err := cronTrigger.Start(schedulerCtx); err != nil {
			log.Fatal("Failed to start cron trigger", zap.Error(err))
		}
		log.Info("Job scheduler started",
			zap.Int("max_concurrent_jobs", cfg.Scheduler.MaxConcurrentJobs))
	}

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := authentapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := authentapp.NewUserService(userRepo, structureRepo, roleRepo, log)
	structureService := authentapp.NewStructureService(structureRepo, log)
	roleService := authentapp.NewRoleService(roleRepo, log)

	pathService := coreapp.NewPathService(pathRepo, stakeRepo, networkRepo, usageRepo, sampler, capturer, log)
	trailService := coreapp.NewTrailService(trailRepo, trailCategoryRepo, log)
	corePicklistService := coreapp.NewPicklistService(stakeRepo, networkRepo, usageRepo, trailCategoryRepo, log)

	trekService := trekapp.NewTrekService(
		trekRepo, themeRepo, trekNetworkRepo, accessibilityRepo, webLinkRepo,
		layerCache, jobScheduler, log,
	)
	poiService := trekapp.NewPOIService(poiRepo, poiTypeRepo, trekRepo, log)
	servicePointService := trekapp.NewServiceService(servicePointRepo, serviceTypeRepo, trekRepo, log)
	trekPicklistService := trekapp.NewPicklistService(
		practiceRepo, trekDifficultyRepo, routeRepo, poiTypeRepo, serviceTypeRepo,
		poiRepo, servicePointRepo, log,
	)

	signageService := signapp.NewSignageService(signageRepo, signageTypeRepo, log)
	bladeService := signapp.NewBladeService(bladeRepo, signageRepo, log)
	signageExportService := signapp.NewExportService(signageRepo, bladeRepo, objectStore, log)

	themeService := commonapp.NewThemeService(themeRepo, log)
	organismService := commonapp.NewOrganismService(organismRepo, log)

	infraService := infraapp.NewService(infraRepo, infraTypeRepo, log)
	infraTypeService := infraapp.NewTypeService(infraTypeRepo, infraDifficultyRepo, infraRepo, log)
	infraExportService := infraapp.NewExportService(infraRepo, objectStore, log)

	landEdgeService := landapp.NewEdgeService(landEdgeRepo, physicalTypeRepo, landTypeRepo, organismRepo, log)
	landTypeService := landapp.NewTypeService(physicalTypeRepo, landTypeRepo, landEdgeRepo, log)

	contentService := tourismapp.NewContentService(
		contentRepo, contentCategoryRepo, contentTypeRepo, themeRepo, trekRepo, log,
	)
	deskService := tourismapp.NewDeskService(deskRepo, deskTypeRepo, objectStore, log)
	tourismPicklistService := tourismapp.NewPicklistService(contentCategoryRepo, contentTypeRepo, deskTypeRepo, log)

	interventionService := maintapp.NewInterventionService(interventionRepo, signageRepo, bladeRepo, infraRepo, log)

	defaultStructureID := resolveDefaultStructureID(context.Background(), structureRepo, log)
	reportService := feedbackapp.NewReportService(reportRepo, trekRepo, defaultStructureID, log)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(structureService, userService, roleService)
	coreHandler := handler.NewCoreHandler(pathService, trailService, corePicklistService)
	trekkingHandler := handler.NewTrekkingHandler(trekService, poiService, servicePointService, trekPicklistService)
	signageHandler := handler.NewSignageHandler(signageService, bladeService, signageExportService)
	infraHandler := handler.NewInfrastructureHandler(infraService, infraTypeService, infraExportService)
	landHandler := handler.NewLandHandler(landEdgeService, landTypeService)
	tourismHandler := handler.NewTourismHandler(contentService, deskService, tourismPicklistService)
	maintenanceHandler := handler.NewMaintenanceHandler(interventionService)
	feedbackHandler := handler.NewFeedbackHandler(reportService)
	commonHandler := handler.NewCommonHandler(themeService, organismService)
	systemHandler := handler.NewSystemHandler(db, redisClient, jobScheduler)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Liveness and readiness endpoints (outside API versioning)
	engine.GET("/health", systemHandler.Health)
	engine.GET("/ready", systemHandler.Ready)

	// Swagger documentation endpoint
	if cfg.Swagger.Enabled {
		swaggerGroup := engine.Group("/swagger")
		swaggerGroup.Use(middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:     cfg.Swagger.Enabled,
			RequireAuth: cfg.Swagger.RequireAuth,
			AllowedIPs:  cfg.Swagger.AllowedIPs,
		}, middleware.JWTAuthMiddleware(jwtService)))
		swaggerGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware to API routes.
	// The visitor report submission and the published layers stay public.
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/feedback/reports",
			"/api/v1/system/info",
		},
		SkipPathPrefixes: []string{
			"/api/v1/public",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Authentication
	authRoutes := router.NewDomainGroup("auth", "/auth")
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRoutes.Use(middleware.AuthRateLimit(authLimiter))
	}
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.Me)
	authRoutes.PUT("/password", authHandler.ChangePassword)

	// Administration (structures, users, roles)
	adminRoutes := router.NewDomainGroup("admin", "/admin")
	adminRoutes.POST("/structures", middleware.RequireResource("structure"), adminHandler.CreateStructure)
	adminRoutes.GET("/structures", middleware.RequireResource("structure"), adminHandler.ListStructures)
	adminRoutes.GET("/structures/:id", middleware.RequireResource("structure"), adminHandler.GetStructure)
	adminRoutes.PUT("/structures/:id", middleware.RequireResource("structure"), adminHandler.RenameStructure)
	adminRoutes.DELETE("/structures/:id", middleware.RequireResource("structure"), adminHandler.DeleteStructure)
	adminRoutes.POST("/users", middleware.RequireResource("user"), adminHandler.CreateUser)
	adminRoutes.GET("/users", middleware.RequireResource("user"), adminHandler.ListUsers)
	adminRoutes.GET("/users/:id", middleware.RequireResource("user"), adminHandler.GetUser)
	adminRoutes.PUT("/users/:id", middleware.RequireResource("user"), adminHandler.UpdateUser)
	adminRoutes.DELETE("/users/:id", middleware.RequireResource("user"), adminHandler.DeleteUser)
	adminRoutes.POST("/roles", middleware.RequireResource("role"), adminHandler.CreateRole)
	adminRoutes.GET("/roles", middleware.RequireResource("role"), adminHandler.ListRoles)
	adminRoutes.GET("/roles/:id", middleware.RequireResource("role"), adminHandler.GetRole)
	adminRoutes.PUT("/roles/:id", middleware.RequireResource("role"), adminHandler.UpdateRole)
	adminRoutes.DELETE("/roles/:id", middleware.RequireResource("role"), adminHandler.DeleteRole)

	// Core network (paths, trails and their picklists)
	coreRoutes := router.NewDomainGroup("core", "/core")
	coreRoutes.POST("/paths", coreHandler.CreatePath)
	coreRoutes.GET("/paths", coreHandler.ListPaths)
	coreRoutes.GET("/paths.geojson", coreHandler.PathLayer)
	coreRoutes.POST("/paths/near", coreHandler.ListPathsNear)
	coreRoutes.GET("/paths/:id", coreHandler.GetPath)
	coreRoutes.PUT("/paths/:id", coreHandler.UpdatePath)
	coreRoutes.DELETE("/paths/:id", coreHandler.DeletePath)
	coreRoutes.GET("/paths/:id/profile", coreHandler.PathElevationProfile)
	coreRoutes.GET("/paths/:id/profile.svg", coreHandler.PathElevationProfileSVG)
	coreRoutes.GET("/paths/:id/profile.png", coreHandler.PathElevationProfilePNG)
	coreRoutes.POST("/trails", coreHandler.CreateTrail)
	coreRoutes.GET("/trails", coreHandler.ListTrails)
	coreRoutes.GET("/trails/:id", coreHandler.GetTrail)
	coreRoutes.PUT("/trails/:id", coreHandler.UpdateTrail)
	coreRoutes.DELETE("/trails/:id", coreHandler.DeleteTrail)
	coreRoutes.POST("/stakes", coreHandler.CreateStake)
	coreRoutes.GET("/stakes", coreHandler.ListStakes)
	coreRoutes.PUT("/stakes/:id", coreHandler.RenameStake)
	coreRoutes.DELETE("/stakes/:id", coreHandler.DeleteStake)
	coreRoutes.POST("/networks", coreHandler.CreateNetwork)
	coreRoutes.GET("/networks", coreHandler.ListNetworks)
	coreRoutes.DELETE("/networks/:id", coreHandler.DeleteNetwork)
	coreRoutes.POST("/usages", coreHandler.CreateUsage)
	coreRoutes.GET("/usages", coreHandler.ListUsages)
	coreRoutes.DELETE("/usages/:id", coreHandler.DeleteUsage)
	coreRoutes.POST("/trail-categories", coreHandler.CreateTrailCategory)
	coreRoutes.GET("/trail-categories", coreHandler.ListTrailCategories)
	coreRoutes.DELETE("/trail-categories/:id", coreHandler.DeleteTrailCategory)

	// Trekking (treks, POIs, service points and their picklists)
	trekkingRoutes := router.NewDomainGroup("trekking", "/trekking")
	trekkingRoutes.POST("/treks", trekkingHandler.CreateTrek)
	trekkingRoutes.GET("/treks", trekkingHandler.ListTreks)
	trekkingRoutes.GET("/treks/:id", trekkingHandler.GetTrek)
	trekkingRoutes.PUT("/treks/:id", trekkingHandler.UpdateTrek)
	trekkingRoutes.DELETE("/treks/:id", trekkingHandler.DeleteTrek)
	trekkingRoutes.POST("/treks/:id/publish", trekkingHandler.PublishTrek)
	trekkingRoutes.POST("/treks/:id/unpublish", trekkingHandler.UnpublishTrek)
	trekkingRoutes.GET("/treks/:id/children", trekkingHandler.TrekChildren)
	trekkingRoutes.PUT("/treks/:id/children", trekkingHandler.ReorderTrekChildren)
	trekkingRoutes.GET("/treks/:id/relationships", trekkingHandler.TrekRelationships)
	trekkingRoutes.POST("/treks/:id/relationships", trekkingHandler.RelateTrek)
	trekkingRoutes.DELETE("/treks/:id/relationships/:relationship_id", trekkingHandler.UnrelateTrek)
	trekkingRoutes.GET("/treks/:id/kml", trekkingHandler.ExportTrekKML)
	trekkingRoutes.POST("/pois", trekkingHandler.CreatePOI)
	trekkingRoutes.GET("/pois", trekkingHandler.ListPOIs)
	trekkingRoutes.GET("/pois/:id", trekkingHandler.GetPOI)
	trekkingRoutes.PUT("/pois/:id", trekkingHandler.UpdatePOI)
	trekkingRoutes.DELETE("/pois/:id", trekkingHandler.DeletePOI)
	trekkingRoutes.POST("/pois/:id/publish", trekkingHandler.PublishPOI)
	trekkingRoutes.POST("/pois/:id/unpublish", trekkingHandler.UnpublishPOI)
	trekkingRoutes.POST("/services", trekkingHandler.CreateServicePoint)
	trekkingRoutes.GET("/services", trekkingHandler.ListServicePoints)
	trekkingRoutes.GET("/services/:id", trekkingHandler.GetServicePoint)
	trekkingRoutes.PUT("/services/:id", trekkingHandler.UpdateServicePoint)
	trekkingRoutes.DELETE("/services/:id", trekkingHandler.DeleteServicePoint)
	trekkingRoutes.POST("/practices", trekkingHandler.CreatePractice)
	trekkingRoutes.GET("/practices", trekkingHandler.ListPractices)
	trekkingRoutes.PUT("/practices/:id", trekkingHandler.UpdatePractice)
	trekkingRoutes.DELETE("/practices/:id", trekkingHandler.DeletePractice)
	trekkingRoutes.POST("/difficulties", trekkingHandler.CreateDifficulty)
	trekkingRoutes.GET("/difficulties", trekkingHandler.ListDifficulties)
	trekkingRoutes.DELETE("/difficulties/:id", trekkingHandler.DeleteDifficulty)
	trekkingRoutes.POST("/routes", trekkingHandler.CreateRoute)
	trekkingRoutes.GET("/routes", trekkingHandler.ListRoutes)
	trekkingRoutes.DELETE("/routes/:id", trekkingHandler.DeleteRoute)
	trekkingRoutes.POST("/poi-types", trekkingHandler.CreatePOIType)
	trekkingRoutes.GET("/poi-types", trekkingHandler.ListPOITypes)
	trekkingRoutes.DELETE("/poi-types/:id", trekkingHandler.DeletePOIType)
	trekkingRoutes.POST("/service-types", trekkingHandler.CreateServiceType)
	trekkingRoutes.GET("/service-types", trekkingHandler.ListServiceTypes)
	trekkingRoutes.DELETE("/service-types/:id", trekkingHandler.DeleteServiceType)

	// Public, unauthenticated read surface
	publicRoutes := router.NewDomainGroup("public", "/public")
	publicRoutes.GET("/treks.geojson", trekkingHandler.PublishedTrekLayer)

	// Signage (signposts, blades, exports)
	signageRoutes := router.NewDomainGroup("signage", "/signage")
	signageRoutes.POST("/signages", signageHandler.CreateSignage)
	signageRoutes.GET("/signages", signageHandler.ListSignages)
	signageRoutes.GET("/signages/export", signageHandler.ExportSignages)
	signageRoutes.GET("/signages/:id", signageHandler.GetSignage)
	signageRoutes.PUT("/signages/:id", signageHandler.UpdateSignage)
	signageRoutes.DELETE("/signages/:id", signageHandler.DeleteSignage)
	signageRoutes.POST("/signages/:id/publish", signageHandler.PublishSignage)
	signageRoutes.POST("/signages/:id/unpublish", signageHandler.UnpublishSignage)
	signageRoutes.POST("/signages/:id/blades", signageHandler.CreateBlade)
	signageRoutes.GET("/signages/:id/blades", signageHandler.ListBlades)
	signageRoutes.GET("/blades/export", signageHandler.ExportBlades)
	signageRoutes.GET("/blades/:id", signageHandler.GetBlade)
	signageRoutes.PUT("/blades/:id", signageHandler.UpdateBlade)
	signageRoutes.PUT("/blades/:id/lines", signageHandler.ReplaceBladeLines)
	signageRoutes.DELETE("/blades/:id", signageHandler.DeleteBlade)

	// Infrastructure works (buildings, facilities, equipments)
	infraRoutes := router.NewDomainGroup("infrastructure", "/infrastructure")
	infraRoutes.POST("/infrastructures", infraHandler.CreateInfrastructure)
	infraRoutes.GET("/infrastructures", infraHandler.ListInfrastructures)
	infraRoutes.POST("/infrastructures/near", infraHandler.ListInfrastructuresNear)
	infraRoutes.GET("/infrastructures/export", infraHandler.ExportInfrastructures)
	infraRoutes.GET("/infrastructures/:id", infraHandler.GetInfrastructure)
	infraRoutes.PUT("/infrastructures/:id", infraHandler.UpdateInfrastructure)
	infraRoutes.DELETE("/infrastructures/:id", infraHandler.DeleteInfrastructure)
	infraRoutes.POST("/infrastructures/:id/publish", infraHandler.PublishInfrastructure)
	infraRoutes.POST("/infrastructures/:id/unpublish", infraHandler.UnpublishInfrastructure)
	infraRoutes.POST("/types", infraHandler.CreateInfrastructureType)
	infraRoutes.GET("/types", infraHandler.ListInfrastructureTypes)
	infraRoutes.DELETE("/types/:id", infraHandler.DeleteInfrastructureType)
	infraRoutes.POST("/difficulties", infraHandler.CreateInfrastructureDifficulty)
	infraRoutes.GET("/difficulties", infraHandler.ListInfrastructureDifficulties)
	infraRoutes.DELETE("/difficulties/:id", infraHandler.DeleteInfrastructureDifficulty)

	// Land layers (physical, tenure, competence and management edges)
	landRoutes := router.NewDomainGroup("land", "/land")
	landRoutes.POST("/edges", landHandler.CreateEdge)
	landRoutes.GET("/edges", landHandler.ListEdges)
	landRoutes.GET("/edges/:id", landHandler.GetEdge)
	landRoutes.PUT("/edges/:id", landHandler.UpdateEdge)
	landRoutes.DELETE("/edges/:id", landHandler.DeleteEdge)
	landRoutes.POST("/physical-types", landHandler.CreatePhysicalType)
	landRoutes.GET("/physical-types", landHandler.ListPhysicalTypes)
	landRoutes.DELETE("/physical-types/:id", landHandler.DeletePhysicalType)
	landRoutes.POST("/types", landHandler.CreateLandType)
	landRoutes.GET("/types", landHandler.ListLandTypes)
	landRoutes.DELETE("/types/:id", landHandler.DeleteLandType)

	// Tourism (touristic contents, information desks, picklists)
	tourismRoutes := router.NewDomainGroup("tourism", "/tourism")
	tourismRoutes.POST("/contents", tourismHandler.CreateContent)
	tourismRoutes.GET("/contents", tourismHandler.ListContents)
	tourismRoutes.GET("/contents/:id", tourismHandler.GetContent)
	tourismRoutes.PUT("/contents/:id", tourismHandler.UpdateContent)
	tourismRoutes.DELETE("/contents/:id", tourismHandler.DeleteContent)
	tourismRoutes.POST("/contents/:id/approve", tourismHandler.ApproveContent)
	tourismRoutes.POST("/contents/:id/publish", tourismHandler.PublishContent)
	tourismRoutes.POST("/contents/:id/unpublish", tourismHandler.UnpublishContent)
	tourismRoutes.POST("/desks", tourismHandler.CreateDesk)
	tourismRoutes.GET("/desks", tourismHandler.ListDesks)
	tourismRoutes.GET("/desks/:id", tourismHandler.GetDesk)
	tourismRoutes.PUT("/desks/:id", tourismHandler.UpdateDesk)
	tourismRoutes.DELETE("/desks/:id", tourismHandler.DeleteDesk)
	tourismRoutes.POST("/desks/:id/photo", tourismHandler.UploadDeskPhoto)
	tourismRoutes.POST("/categories", tourismHandler.CreateContentCategory)
	tourismRoutes.GET("/categories", tourismHandler.ListContentCategories)
	tourismRoutes.DELETE("/categories/:id", tourismHandler.DeleteContentCategory)
	tourismRoutes.POST("/content-types", tourismHandler.CreateContentType)
	tourismRoutes.GET("/content-types", tourismHandler.ListContentTypes)
	tourismRoutes.DELETE("/content-types/:id", tourismHandler.DeleteContentType)
	tourismRoutes.POST("/desk-types", tourismHandler.CreateDeskType)
	tourismRoutes.GET("/desk-types", tourismHandler.ListDeskTypes)
	tourismRoutes.DELETE("/desk-types/:id", tourismHandler.DeleteDeskType)

	// Maintenance interventions
	maintenanceRoutes := router.NewDomainGroup("maintenance", "/maintenance")
	maintenanceRoutes.POST("/interventions", maintenanceHandler.CreateIntervention)
	maintenanceRoutes.GET("/interventions", maintenanceHandler.ListInterventions)
	maintenanceRoutes.GET("/interventions/costs", maintenanceHandler.InterventionCosts)
	maintenanceRoutes.GET("/interventions/:id", maintenanceHandler.GetIntervention)
	maintenanceRoutes.PUT("/interventions/:id", maintenanceHandler.UpdateIntervention)
	maintenanceRoutes.DELETE("/interventions/:id", maintenanceHandler.DeleteIntervention)
	maintenanceRoutes.POST("/interventions/:id/start", maintenanceHandler.StartIntervention)
	maintenanceRoutes.POST("/interventions/:id/finish", maintenanceHandler.FinishIntervention)

	// Visitor feedback reports. The anonymous submit endpoint gets its
	// own per-IP throttle, sharing the login throttle settings.
	feedbackRoutes := router.NewDomainGroup("feedback", "/feedback")
	if cfg.HTTP.AuthRateLimitEnabled {
		reportLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		feedbackRoutes.POST("/reports", middleware.RateLimitByKey(reportLimiter, func(c *gin.Context) string {
			return "report:" + c.ClientIP()
		}), feedbackHandler.SubmitReport)
	} else {
		feedbackRoutes.POST("/reports", feedbackHandler.SubmitReport)
	}
	feedbackRoutes.GET("/reports", feedbackHandler.ListReports)
	feedbackRoutes.GET("/reports/status-counts", feedbackHandler.ReportStatusCounts)
	feedbackRoutes.GET("/reports/:id", feedbackHandler.GetReport)
	feedbackRoutes.DELETE("/reports/:id", feedbackHandler.DeleteReport)
	feedbackRoutes.POST("/reports/:id/assign", feedbackHandler.AssignReport)
	feedbackRoutes.POST("/reports/:id/transition", feedbackHandler.TransitionReport)

	// Shared picklists (themes, organisms)
	commonRoutes := router.NewDomainGroup("common", "/common")
	commonRoutes.POST("/themes", commonHandler.CreateTheme)
	commonRoutes.GET("/themes", commonHandler.ListThemes)
	commonRoutes.PUT("/themes/:id", commonHandler.UpdateTheme)
	commonRoutes.DELETE("/themes/:id", commonHandler.DeleteTheme)
	commonRoutes.POST("/organisms", commonHandler.CreateOrganism)
	commonRoutes.GET("/organisms", commonHandler.ListOrganisms)
	commonRoutes.PUT("/organisms/:id", commonHandler.RenameOrganism)
	commonRoutes.DELETE("/organisms/:id", commonHandler.DeleteOrganism)

	// System
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/jobs", systemHandler.ListJobs)
	systemRoutes.GET("/jobs/:id", systemHandler.GetJob)

	// Register all domain groups
	r.Register(authRoutes).
		Register(adminRoutes).
		Register(coreRoutes).
		Register(trekkingRoutes).
		Register(publicRoutes).
		Register(signageRoutes).
		Register(infraRoutes).
		Register(landRoutes).
		Register(tourismRoutes).
		Register(maintenanceRoutes).
		Register(feedbackRoutes).
		Register(commonRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if cfg.Scheduler.Enabled {
		if err := cronTrigger.Stop(ctx); err != nil {
			log.Warn("Cron trigger did not stop cleanly", zap.Error(err))
		}
		if err := jobScheduler.Stop(ctx); err != nil {
			log.Warn("Job scheduler did not stop cleanly", zap.Error(err))
		}
	}
	stopScheduler()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// resolveDefaultStructureID finds the structure anonymous feedback reports are
// filed under. Falls back to the first structure by name, then to the nil UUID
// when the database has none yet.
func resolveDefaultStructureID(ctx context.Context, repo *persistence.GormStructureRepository, log *zap.Logger) uuid.UUID {
	if structure, err := repo.FindByName(ctx, "Default"); err == nil {
		return structure.ID
	}
	ids, err := repo.GetAllStructureIDs(ctx)
	if err != nil || len(ids) == 0 {
		log.Warn("No structure found for anonymous reports, run migrations and seed first")
		return uuid.Nil
	}
	return ids[0]
}
