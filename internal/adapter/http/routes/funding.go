package routes

import (
	"nexus_settlement/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathFundingRequests = "/funding-requests"

func addFundingRequestRoutes(rg *gin.RouterGroup, h *handlers.FundingRequestHandler) {
	funding := rg.Group(PathFundingRequests)
	{
		funding.POST("", h.Create)
		funding.GET("", h.List)
		funding.GET("/mine", h.ListMine)
		funding.GET("/:id", h.GetByID)
		funding.PUT("/:id", h.Update)
		funding.POST("/:id/investment", h.Invest)
		funding.POST("/:id/distribute-returns", h.DistributeReturns)
	}
}
