package wish_module

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the wish routes on the engine root and under the api group
func RegisterRoutes(engine *gin.Engine, api *gin.RouterGroup, ctl *Controller) {
	engine.POST("/submit-wish", ctl.SubmitWish) // Path used by existing front-ends

	api.POST("/wishes", ctl.SubmitWish)
}
