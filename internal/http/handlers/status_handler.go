// Operational HTTP handlers.
//
//   - GET /health          (datastore reachability)
//   - GET /storage-status  (object-store configuration)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @ID          health
// @Summary     Datastore health
// @Description Probes the datastore with a bounded one-row read. Always 200; check the status field.
// @Tags        Status
// @Produce     json
// @Success     200  {object}  services.Health
// @Router      /health [get]
func (h *Handlers) Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	ok(c, http.StatusOK, h.statusSvc.Health(c.Request.Context()))
}

// StorageStatus godoc
// @ID          storageStatus
// @Summary     Object storage status
// @Description Reports whether media storage is configured, without exposing credentials.
// @Tags        Status
// @Produce     json
// @Success     200  {object}  storage.Status
// @Router      /storage-status [get]
func (h *Handlers) StorageStatus(c *gin.Context) {
	ok(c, http.StatusOK, h.statusSvc.StorageStatus())
}
