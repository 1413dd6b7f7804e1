package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rmussard/easyloc-api/internal/http/middleware"
)

func NewRouter(h *Handler, log zerolog.Logger, environment string) *gin.Engine {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.Default())

	api := router.Group("/api")

	customers := api.Group("/customers")
	customers.GET("", h.listCustomers)
	customers.GET("/:last_name/:first_name", h.getCustomerByName)
	customers.POST("", h.createCustomer)
	customers.PATCH("/:id", h.updateCustomer)
	customers.DELETE("/:id", h.deleteCustomer)

	vehicles := api.Group("/vehicles")
	vehicles.GET("", h.listVehicles)
	vehicles.GET("/:licence_plate", h.getVehicleByPlate)
	vehicles.POST("", h.createVehicle)
	vehicles.PATCH("/:id", h.updateVehicle)
	vehicles.DELETE("/:id", h.deleteVehicle)

	contracts := api.Group("/contracts")
	contracts.GET("", h.listContracts)
	contracts.GET("/:id", h.getContract)
	contracts.POST("", h.createContract)
	contracts.PATCH("/:id", h.updateContract)
	contracts.DELETE("/:id", h.deleteContract)
	contracts.GET("/search/queryparams", h.searchContracts)
	contracts.GET("/search/delays", h.contractDelays)
	contracts.GET("/search/groupby/customer", h.contractCountByCustomer)
	contracts.GET("/search/groupby/vehicle", h.contractCountByVehicle)
	contracts.GET("/search/groupby/delay/customer", h.delayRateByCustomer)
	contracts.GET("/search/groupby/delay/vehicle", h.delayAverageByVehicle)

	billings := api.Group("/billings")
	billings.GET("", h.listBillings)
	billings.GET("/:id", h.getBilling)
	billings.POST("", h.createBilling)
	billings.PATCH("/:id", h.updateBilling)
	billings.DELETE("/:id", h.deleteBilling)
	billings.GET("/search/queryparams", h.searchBillings)
	billings.GET("/search/groupby/contract", h.billingSettlement)
	billings.GET("/search/groupby/contract/export", h.billingSettlementExcel)
	billings.GET("/search/groupby/contract/export/pdf", h.billingSettlementPDF)

	return router
}
