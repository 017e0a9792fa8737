package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/rest/middleware"
	"github.com/Guyuepp/bloggers-platform/internal/rest/response"
)

// DeviceHandler serves the session management of the current user. Its
// routes run behind middleware.RefreshSession.
type DeviceHandler struct {
	Service domain.DeviceUsecase
}

func NewDeviceHandler(svc domain.DeviceUsecase) *DeviceHandler {
	return &DeviceHandler{
		Service: svc,
	}
}

func (h *DeviceHandler) Fetch(c *gin.Context) {
	sess, ok := middleware.Session(c)
	if !ok {
		respondError(c, domain.ErrUnauthorized)
		return
	}
	devices, err := h.Service.Fetch(c.Request.Context(), sess.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	res := make([]response.Device, len(devices))
	for i := range devices {
		res[i] = response.NewDeviceFromDomain(&devices[i])
	}
	c.JSON(http.StatusOK, res)
}

func (h *DeviceHandler) TerminateOthers(c *gin.Context) {
	sess, ok := middleware.Session(c)
	if !ok {
		respondError(c, domain.ErrUnauthorized)
		return
	}
	if err := h.Service.TerminateOthers(c.Request.Context(), sess.UserID, sess.DeviceID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DeviceHandler) Terminate(c *gin.Context) {
	sess, ok := middleware.Session(c)
	if !ok {
		respondError(c, domain.ErrUnauthorized)
		return
	}
	if err := h.Service.Terminate(c.Request.Context(), sess.UserID, c.Param("deviceId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
