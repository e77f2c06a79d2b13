package api

import (
	"net/http"

	"gas-agency/internal/handler/dto/response"
	"gas-agency/internal/handler/httperr"
	"gas-agency/internal/handler/middleware"
	"gas-agency/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NoticeHandler struct {
	queries queries.NoticeQueries
}

func NewNoticeHandler(noticeQueries queries.NoticeQueries) *NoticeHandler {
	return &NoticeHandler{queries: noticeQueries}
}

// @Summary List notices visible to the customer
// @Description Global notices plus notices addressed to the caller, newest first
// @Tags notices
// @Security BearerAuth
// @Produce json
// @Success 200 {array} response.NoticeResponse
// @Router /notices [get]
func (h *NoticeHandler) ListVisible(c *gin.Context) {
	customerID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	views, err := h.queries.ListVisibleToCustomer(c.Request.Context(), customerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp, err := response.NewNoticeListResponse(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}
