package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmussard/easyloc-api/internal/service"
)

type createCustomerRequest struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Address      string `json:"address" binding:"required"`
	PermitNumber string `json:"permit_number" binding:"required"`
}

func (h *Handler) listCustomers(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "", customers)
}

func (h *Handler) getCustomerByName(c *gin.Context) {
	customer, err := h.customers.GetByName(c.Request.Context(), c.Param("last_name"), c.Param("first_name"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "", customer)
}

func (h *Handler) createCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Status: err.Error()})
		return
	}

	customer, err := h.customers.Create(c.Request.Context(), service.CreateCustomerInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Address:      req.Address,
		PermitNumber: req.PermitNumber,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "Customer successfully created", customer)
}

func (h *Handler) updateCustomer(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Status: err.Error()})
		return
	}

	id := c.Param("id")
	customer, err := h.customers.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, fmt.Sprintf("Customer with id:%s successfully updated", id), customer)
}

func (h *Handler) deleteCustomer(c *gin.Context) {
	id := c.Param("id")
	customer, err := h.customers.Delete(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, fmt.Sprintf("Customer with id:%s successfully deleted", id), customer)
}
