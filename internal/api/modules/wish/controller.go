package wish_module

import (
	"net/http"

	"github.com/ethanbaker/wishes/pkg/sdk"
	"github.com/ethanbaker/wishes/pkg/wish"
	"github.com/gin-gonic/gin"
)

const (
	MESSAGE_MISSING        = "Wish content is missing."
	MESSAGE_SAVED          = "Wish saved to Google Sheets successfully."
	MESSAGE_SAVED_NOTIFIED = "Wish saved to Google Sheets & email sent successfully!"
	MESSAGE_SERVER_ERROR   = "Internal server error."
	MESSAGE_NOT_CONFIGURED = "Spreadsheet is not configured."
	MESSAGE_NOTIFY_FAILED  = "Wish saved but notification failed."
)

// Controller serves the wish endpoints
type Controller struct {
	service *WishService
}

func NewController(service *WishService) *Controller {
	return &Controller{service: service}
}

// SubmitWish handles POST requests carrying a wish
func (ctl *Controller) SubmitWish(c *gin.Context) {
	// Parse request body; anything unreadable counts as a missing wish
	var req sdk.WishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, MESSAGE_MISSING, nil).AsGinResponse())
		return
	}

	result, err := ctl.service.Submit(c.Request.Context(), req.Wish)
	switch {
	case err == nil:
		message := MESSAGE_SAVED
		if result.Outcome == wish.OutcomeSent {
			message = MESSAGE_SAVED_NOTIFIED
		}
		c.JSON(sdk.NewSuccess(message).AsGinResponse())

	case wish.IsValidation(err):
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, MESSAGE_MISSING, nil).AsGinResponse())

	case result != nil:
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, MESSAGE_NOTIFY_FAILED, err).AsGinResponse())

	case wish.IsConfiguration(err):
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, MESSAGE_NOT_CONFIGURED, err).AsGinResponse())

	default:
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, MESSAGE_SERVER_ERROR, err).AsGinResponse())
	}
}
