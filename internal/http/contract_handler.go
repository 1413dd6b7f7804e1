package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmussard/easyloc-api/internal/service"
)

type createContractRequest struct {
	VehicleID            string   `json:"vehicle_id" binding:"required"`
	CustomerID           string   `json:"customer_id" binding:"required"`
	SignDatetime         string   `json:"sign_datetime"`
	LocBeginDatetime     string   `json:"loc_begin_datetime" binding:"required"`
	LocEndDatetime       string   `json:"loc_end_datetime" binding:"required"`
	LocReturningDatetime string   `json:"loc_returning_datetime"`
	Price                *float64 `json:"price" binding:"required"`
}

func (h *Handler) listContracts(c *gin.Context) {
	contracts, err := h.contracts.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "", contracts)
}

func (h *Handler) getContract(c *gin.Context) {
	contract, err := h.contracts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "", contract)
}

func (h *Handler) createContract(c *gin.Context) {
	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Status: err.Error()})
		return
	}

	sign, err := parseOptionalDate(req.SignDatetime)
	if err != nil {
		h.respondError(c, err)
		return
	}
	begin, err := parseDate(req.LocBeginDatetime)
	if err != nil {
		h.respondError(c, err)
		return
	}
	end, err := parseDate(req.LocEndDatetime)
	if err != nil {
		h.respondError(c, err)
		return
	}
	returning, err := parseOptionalDate(req.LocReturningDatetime)
	if err != nil {
		h.respondError(c, err)
		return
	}

	contract, err := h.contracts.Create(c.Request.Context(), service.CreateContractInput{
		VehicleID:            req.VehicleID,
		CustomerID:           req.CustomerID,
		SignDatetime:         sign,
		LocBeginDatetime:     begin,
		LocEndDatetime:       end,
		LocReturningDatetime: returning,
		Price:                *req.Price,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "Contract successfully created", contract)
}

func (h *Handler) updateContract(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Status: err.Error()})
		return
	}

	id := c.Param("id")
	contract, err := h.contracts.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, fmt.Sprintf("Contract with id:%s successfully updated", id), contract)
}

func (h *Handler) deleteContract(c *gin.Context) {
	id := c.Param("id")
	contract, err := h.contracts.Delete(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, fmt.Sprintf("Contract with id:%s successfully deleted", id), contract)
}

func (h *Handler) searchContracts(c *gin.Context) {
	views, err := h.reports.SearchContracts(c.Request.Context(), service.ContractSearchParams{
		CustomerID: c.Query("customer_id"),
		VehicleID:  c.Query("vehicle_id"),
		Status:     c.Query("status"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "", views)
}

func (h *Handler) contractDelays(c *gin.Context) {
	begin, err := parseDate(c.Query("date_begin"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	end, err := parseDate(c.Query("date_end"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	count, err := h.reports.LateWindowCount(c.Request.Context(), begin, end)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "", count)
}

func (h *Handler) contractCountByCustomer(c *gin.Context) {
	rows, err := h.reports.ContractCountByCustomer(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "", rows)
}

func (h *Handler) contractCountByVehicle(c *gin.Context) {
	rows, err := h.reports.ContractCountByVehicle(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "", rows)
}

func (h *Handler) delayRateByCustomer(c *gin.Context) {
	rows, err := h.reports.DelayRateByCustomer(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "", rows)
}

func (h *Handler) delayAverageByVehicle(c *gin.Context) {
	rows, err := h.reports.DelayAverageByVehicle(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "", rows)
}
