package handlers

import (
	"encoding/json"
	"time"

	"dompet-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

type walletUpdate struct {
	Type     string `json:"type"`
	WalletID string `json:"wallet_id"`
}

func walletUpdateMessage(walletID string) ([]byte, error) {
	return json.Marshal(walletUpdate{Type: "wallet_updated", WalletID: walletID})
}

// WSHandler pushes wallet-update signals to the owning user's open
// sessions. It implements services.WalletNotifier.
type WSHandler struct {
	M *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 1024
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleDisconnect(func(s *melody.Session) {
		userID, _ := s.Get("user_id")
		utils.LogDebug("ws client disconnected: %v", userID)
	})

	m.HandleError(func(s *melody.Session, err error) {
		utils.LogError("websocket error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS upgrades an authenticated request; the session is keyed by the
// principal so broadcasts stay within one user's connections.
func (h *WSHandler) HandleWS(c *gin.Context) {
	user := currentUser(c)

	err := h.M.HandleRequestWithKeys(c.Writer, c.Request, map[string]interface{}{
		"user_id": user.ID,
	})
	if err != nil {
		utils.LogError("failed to upgrade websocket: %v", err)
	}
}

// WalletChanged broadcasts a balance-change signal to the owner's sessions.
func (h *WSHandler) WalletChanged(userID, walletID string) {
	msg, err := walletUpdateMessage(walletID)
	if err != nil {
		utils.LogError("failed to encode wallet update: %v", err)
		return
	}

	err = h.M.BroadcastFilter(msg, func(s *melody.Session) bool {
		id, ok := s.Get("user_id")
		return ok && id == userID
	})
	if err != nil {
		utils.LogError("failed to broadcast wallet update: %v", err)
	}
}
