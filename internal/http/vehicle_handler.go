package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmussard/easyloc-api/internal/service"
)

type createVehicleRequest struct {
	LicencePlate string `json:"licence_plate" binding:"required"`
	Informations string `json:"informations"`
	Km           *int64 `json:"km" binding:"required"`
}

func (h *Handler) listVehicles(c *gin.Context) {
	vehicles, err := h.vehicles.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "", vehicles)
}

func (h *Handler) getVehicleByPlate(c *gin.Context) {
	vehicle, err := h.vehicles.GetByPlate(c.Request.Context(), c.Param("licence_plate"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "", vehicle)
}

func (h *Handler) createVehicle(c *gin.Context) {
	var req createVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Status: err.Error()})
		return
	}

	vehicle, err := h.vehicles.Create(c.Request.Context(), service.CreateVehicleInput{
		LicencePlate: req.LicencePlate,
		Informations: req.Informations,
		Km:           *req.Km,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, "Vehicle successfully created", vehicle)
}

func (h *Handler) updateVehicle(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Status: err.Error()})
		return
	}

	id := c.Param("id")
	vehicle, err := h.vehicles.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, fmt.Sprintf("Vehicle with id:%s successfully updated", id), vehicle)
}

func (h *Handler) deleteVehicle(c *gin.Context) {
	id := c.Param("id")
	vehicle, err := h.vehicles.Delete(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, fmt.Sprintf("Vehicle with id:%s successfully deleted", id), vehicle)
}
