package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/carebridge/careworker-go/internal/application"
	"github.com/carebridge/careworker-go/pkg/response"
	"github.com/carebridge/careworker-go/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NotificationHandler struct {
	svc *application.NotificationService
}

func NewNotificationHandler(svc *application.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List godoc
// @Summary List the caller's notifications
// @Tags notifications
// @Produce json
// @Param unread query bool false "Only unread"
// @Param limit query int false "Max rows"
// @Success 200 {object} response.Envelope
// @Router /api/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}

	unreadOnly := c.Query("unread") == "true"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	notes, err := h.svc.List(userID, unreadOnly, limit)
	if err != nil {
		fail(c, err)
		return
	}
	unread, err := h.svc.UnreadCount(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(gin.H{
		"notifications": notes,
		"unreadCount":   unread,
	}))
}

// MarkRead godoc
// @Summary Mark one notification read
// @Tags notifications
// @Produce json
// @Param id path int true "Notification id"
// @Success 200 {object} response.Envelope
// @Router /api/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := h.svc.MarkRead(userID, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Notification marked read"))
}

// MarkAllRead godoc
// @Summary Mark every notification read
// @Tags notifications
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}

	if err := h.svc.MarkAllRead(userID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message("All notifications marked read"))
}

// Stream upgrades to a websocket and pushes the caller's notifications as
// they are created. Heartbeat pings keep the connection alive.
func (h *NotificationHandler) Stream(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("Unauthorized"))
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Fail("websocket upgrade failed"))
		return
	}

	feed, cancel := h.svc.Subscribe(userID)
	defer cancel()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})

	// Reader loop: only pongs and close frames are expected.
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("notification websocket error: %v", err)
				}
				return
			}
		}
	}()

	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()
	defer conn.Close()

	for {
		select {
		case n := <-feed:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(n); err != nil {
				return
			}

		case <-pingTicker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-done:
			return
		}
	}
}
