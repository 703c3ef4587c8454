package handlers

import (
	"net/http"

	"dompet-api/models"
	"dompet-api/services"

	"github.com/gin-gonic/gin"
)

type SavingHandler struct {
	Service *services.SavingService
}

func NewSavingHandler(service *services.SavingService) *SavingHandler {
	return &SavingHandler{Service: service}
}

func (h *SavingHandler) Create(c *gin.Context) {
	var req models.CreateSavingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saving, err := h.Service.Create(c.Request.Context(), currentUser(c).ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": saving})
}

func (h *SavingHandler) Get(c *gin.Context) {
	saving, err := h.Service.Get(c.Request.Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": saving})
}

func (h *SavingHandler) List(c *gin.Context) {
	savings, err := h.Service.List(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": savings})
}

func (h *SavingHandler) Update(c *gin.Context) {
	var req models.UpdateSavingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saving, err := h.Service.Update(c.Request.Context(), currentUser(c).ID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": saving})
}

func (h *SavingHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), currentUser(c).ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Saving deleted"}})
}

func (h *SavingHandler) AddTo(c *gin.Context) {
	var req models.AddToSavingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saving, err := h.Service.AddTo(c.Request.Context(), currentUser(c).ID, c.Param("id"), req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": saving})
}
