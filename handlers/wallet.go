package handlers

import (
	"net/http"

	"dompet-api/models"
	"dompet-api/services"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	Service *services.WalletService
}

func NewWalletHandler(service *services.WalletService) *WalletHandler {
	return &WalletHandler{Service: service}
}

func (h *WalletHandler) Create(c *gin.Context) {
	var req models.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wallet, err := h.Service.Create(c.Request.Context(), currentUser(c).ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": wallet})
}

func (h *WalletHandler) GetAll(c *gin.Context) {
	wallets, err := h.Service.GetAll(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": wallets})
}

func (h *WalletHandler) GetByID(c *gin.Context) {
	wallet, err := h.Service.GetByID(c.Request.Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": wallet})
}

func (h *WalletHandler) Update(c *gin.Context) {
	var req models.UpdateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wallet, err := h.Service.Update(c.Request.Context(), currentUser(c).ID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": wallet})
}

func (h *WalletHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), currentUser(c).ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Wallet deleted"}})
}

func (h *WalletHandler) SetDefault(c *gin.Context) {
	if err := h.Service.SetDefault(c.Request.Context(), currentUser(c).ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Default wallet updated"}})
}

func (h *WalletHandler) GetSummary(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.Service.GetSummary(c.Request.Context(), currentUser(c).ID, c.Param("id"), start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": summary})
}
