package httpserver

import (
	"item-gallery/pkg/response"

	"github.com/gin-gonic/gin"
)

// Identity reported by the probe endpoints.
const (
	HealthMessage = "Item gallery is up"
	HealthVersion = "1.0.0"
	ServiceName   = "item-gallery"
)

// healthCheck reports the gallery process as up.
// @Summary Health Check
// @Description Reports that the gallery web client process is up
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Gallery is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports the items API this instance talks to.
// @Summary Readiness Check
// @Description Readiness probe; reports the items API URL and transport the gallery uses
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Gallery is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":    "ready",
		"message":   HealthMessage,
		"version":   HealthVersion,
		"service":   ServiceName,
		"items_api": srv.apiURL,
		"transport": srv.transport.Name(),
	})
}

// liveCheck answers the liveness probe without touching the items API.
// @Summary Liveness Check
// @Description Liveness probe for the gallery web client; does not call the items API
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Gallery is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
