package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/locki-io/locki-id-addon/core"
	"github.com/locki-io/locki-id-addon/service"
)

// PanelHandlers contains HTTP handlers for the panel actions. Each handler
// is a thin adapter: it invokes one lifecycle operator and renders the
// operator's message, so the wire responses carry the same short strings
// the add-on panel would display.
type PanelHandlers struct {
	sessions *service.SessionService
}

// NewPanelHandlers creates new panel handlers
func NewPanelHandlers(sessions *service.SessionService) *PanelHandlers {
	return &PanelHandlers{sessions: sessions}
}

// Status handles the status request.
func (h *PanelHandlers) Status(c *gin.Context) {
	st := h.sessions.Status()

	c.JSON(http.StatusOK, gin.H{
		"state":       st.State,
		"address":     st.Address,
		"endpoint":    st.Endpoint,
		"expiry_hint": st.ExpiryHint,
		"nonce":       st.Nonce,
		"nft_count":   st.NFTCount,
	})
}

// Login handles the login request.
func (h *PanelHandlers) Login(c *gin.Context) {
	var req struct {
		Address string `json:"address" binding:"required"`
		APIKey  string `json:"api_key" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	msg, err := h.sessions.Login(c.Request.Context(), req.Address, req.APIKey)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// Validate handles the token validation request.
func (h *PanelHandlers) Validate(c *gin.Context) {
	msg, err := h.sessions.Validate(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// Logout handles the logout request.
func (h *PanelHandlers) Logout(c *gin.Context) {
	msg, err := h.sessions.Logout(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// RefreshNonce handles the nonce refresh request.
func (h *PanelHandlers) RefreshNonce(c *gin.Context) {
	msg, err := h.sessions.RefreshNonce(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// RefreshNFTs handles the NFT refresh request.
func (h *PanelHandlers) RefreshNFTs(c *gin.Context) {
	msg, err := h.sessions.RefreshNFTs(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// NFTs returns the stored NFT display URLs.
func (h *PanelHandlers) NFTs(c *gin.Context) {
	urls := h.sessions.NFTs()
	c.JSON(http.StatusOK, gin.H{"nfts": urls})
}

// statusFor maps lifecycle errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrNotLoggedIn):
		return http.StatusConflict
	case errors.Is(err, core.ErrValidationFailed), errors.Is(err, core.ErrAuthRejected):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrNetworkFailure), errors.Is(err, core.ErrLedgerUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
