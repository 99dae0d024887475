package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travel-crm-api/internal/database"
	"travel-crm-api/internal/handler"
	"travel-crm-api/internal/metrics"
	"travel-crm-api/internal/middleware"
	"travel-crm-api/internal/repository"
	"travel-crm-api/internal/service"
)

// Config holds everything the router needs
type Config struct {
	DB          *gorm.DB
	Redis       *redis.Client
	Logger      *zap.Logger
	JWTSecret   string
	BasePath    string
	CORSOrigins []string
	Metrics     *metrics.Metrics
}

// Setup wires repositories, services and handlers and returns the engine
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Repositories
	agencyRepo := repository.NewAgencyRepository(cfg.DB)
	stageRepo := repository.NewStageRepository(cfg.DB)
	proposalRepo := repository.NewProposalRepository(cfg.DB)
	itemRepo := repository.NewServiceItemRepository(cfg.DB)
	collaboratorRepo := repository.NewCollaboratorRepository(cfg.DB)
	transactionRepo := repository.NewTransactionRepository(cfg.DB)
	commissionRepo := repository.NewCommissionRepository(cfg.DB)
	historyRepo := repository.NewHistoryRepository(cfg.DB)

	// Services
	summaryService := service.NewSummaryService(stageRepo, proposalRepo, cfg.Redis, cfg.Logger)
	agencyService := service.NewAgencyService(agencyRepo, stageRepo)
	stageService := service.NewStageService(stageRepo, agencyRepo, proposalRepo, cfg.Logger)
	itemService := service.NewServiceItemService(itemRepo, proposalRepo, summaryService, cfg.Logger)
	proposalService := service.NewProposalService(
		proposalRepo, stageRepo, transactionRepo, commissionRepo, historyRepo,
		summaryService, cfg.Metrics, cfg.Logger,
	)
	collaboratorService := service.NewCollaboratorService(collaboratorRepo, agencyRepo)
	financeService := service.NewFinanceService(transactionRepo, commissionRepo, cfg.Metrics)
	transitionService := service.NewTransitionService(
		cfg.DB, proposalRepo, stageRepo, itemRepo, collaboratorRepo,
		transactionRepo, commissionRepo, historyRepo,
		itemService, summaryService, cfg.Metrics, cfg.Logger,
	)

	// Handlers
	agencyHandler := handler.NewAgencyHandler(agencyService)
	stageHandler := handler.NewStageHandler(stageService)
	proposalHandler := handler.NewProposalHandler(proposalService, transitionService)
	itemHandler := handler.NewServiceItemHandler(itemService)
	collaboratorHandler := handler.NewCollaboratorHandler(collaboratorService)
	financeHandler := handler.NewFinanceHandler(financeService)
	summaryHandler := handler.NewSummaryHandler(summaryService)

	// Operational endpoints stay outside the base path and skip auth
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		status := http.StatusOK
		dbOK := database.IsConnected()
		if !dbOK {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"database": dbOK,
			"redis":    cfg.Redis != nil,
		})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group(cfg.BasePath)
	api.Use(middleware.Auth(cfg.JWTSecret))
	{
		agencies := api.Group("/agencies")
		{
			agencies.POST("", agencyHandler.CreateAgency)
			agencies.GET("/:agencyId", agencyHandler.GetAgency)
			agencies.PATCH("/:agencyId", agencyHandler.UpdateAgency)
			agencies.GET("/:agencyId/stages", stageHandler.GetStages)
			agencies.PUT("/:agencyId/stages/reorder", stageHandler.ReorderStages)
			agencies.GET("/:agencyId/proposals", proposalHandler.GetProposals)
			agencies.GET("/:agencyId/collaborators", collaboratorHandler.GetCollaborators)
			agencies.GET("/:agencyId/transactions", financeHandler.GetTransactionsByAgency)
			agencies.GET("/:agencyId/pipeline-summary", summaryHandler.PipelineSummary)
		}

		stages := api.Group("/stages")
		{
			stages.POST("", stageHandler.CreateStage)
			stages.PATCH("/:stageId", stageHandler.UpdateStage)
			stages.DELETE("/:stageId", stageHandler.DeleteStage)
		}

		proposals := api.Group("/proposals")
		{
			proposals.POST("", proposalHandler.CreateProposal)
			proposals.GET("/:proposalId", proposalHandler.GetProposal)
			proposals.PATCH("/:proposalId", proposalHandler.UpdateProposal)
			proposals.DELETE("/:proposalId", proposalHandler.DeleteProposal)
			proposals.GET("/:proposalId/history", proposalHandler.GetHistory)
			proposals.POST("/:proposalId/transition", proposalHandler.Transition)
			proposals.GET("/:proposalId/services", itemHandler.GetItems)
			proposals.GET("/:proposalId/totals", itemHandler.GetTotals)
			proposals.GET("/:proposalId/transactions", financeHandler.GetTransactionsByProposal)
			proposals.GET("/:proposalId/commissions", financeHandler.GetCommissionsByProposal)
		}

		services := api.Group("/services")
		{
			services.POST("", itemHandler.CreateItem)
			services.PATCH("/:serviceId", itemHandler.UpdateItem)
			services.DELETE("/:serviceId", itemHandler.DeleteItem)
		}

		collaborators := api.Group("/collaborators")
		{
			collaborators.POST("", collaboratorHandler.CreateCollaborator)
			collaborators.PATCH("/:collaboratorId", collaboratorHandler.UpdateCollaborator)
			collaborators.DELETE("/:collaboratorId", collaboratorHandler.DeleteCollaborator)
			collaborators.GET("/:collaboratorId/commission-report", financeHandler.CommissionReport)
		}

		transactions := api.Group("/transactions")
		{
			transactions.POST("/:transactionId/cancel", financeHandler.CancelTransaction)
		}
	}

	return r
}
