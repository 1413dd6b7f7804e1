package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmussard/easyloc-api/internal/service"
)

type createBillingRequest struct {
	ContractID *int64   `json:"contract_id" binding:"required"`
	Amount     *float64 `json:"amount" binding:"required"`
}

func (h *Handler) listBillings(c *gin.Context) {
	billings, err := h.billings.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "", billings)
}

func (h *Handler) getBilling(c *gin.Context) {
	billing, err := h.billings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "", billing)
}

func (h *Handler) createBilling(c *gin.Context) {
	var req createBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Status: err.Error()})
		return
	}

	billing, err := h.billings.Create(c.Request.Context(), service.CreateBillingInput{
		ContractID: *req.ContractID,
		Amount:     *req.Amount,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "Billing successfully created", billing)
}

func (h *Handler) updateBilling(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Status: err.Error()})
		return
	}

	id := c.Param("id")
	billing, err := h.billings.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, fmt.Sprintf("Billing with id:%s successfully updated", id), billing)
}

func (h *Handler) deleteBilling(c *gin.Context) {
	id := c.Param("id")
	billing, err := h.billings.Delete(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, fmt.Sprintf("Billing with id:%s successfully deleted", id), billing)
}

func (h *Handler) searchBillings(c *gin.Context) {
	billings, err := h.reports.SearchBillings(c.Request.Context(), c.Query("contract_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "", billings)
}

func (h *Handler) billingSettlement(c *gin.Context) {
	rows, err := h.reports.Settlement(c.Request.Context(), settlementParams(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "", rows)
}

func (h *Handler) billingSettlementExcel(c *gin.Context) {
	result, err := h.reports.SettlementExcel(c.Request.Context(), settlementParams(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentType, result.Content)
}

func (h *Handler) billingSettlementPDF(c *gin.Context) {
	result, err := h.reports.SettlementPDF(c.Request.Context(), settlementParams(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func settlementParams(c *gin.Context) service.SettlementParams {
	return service.SettlementParams{
		ContractID: c.Query("contract_id"),
		State:      c.Query("state"),
	}
}
