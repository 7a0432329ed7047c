package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	ucSalon "github.com/BruksfildServices01/salon-booking/internal/usecase/salon"
)

type AuditLogsHandler struct {
	list *ucSalon.ListSalonAuditLogs
}

func NewAuditLogsHandler(list *ucSalon.ListSalonAuditLogs) *AuditLogsHandler {
	return &AuditLogsHandler{list: list}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	res, err := h.list.Execute(
		c.Request.Context(),
		middleware.CurrentIdentity(c),
		c.Param("id"),
		ucSalon.AuditLogsInput{
			Action: c.Query("action"),
			Entity: c.Query("entity"),
			From:   c.Query("from"),
			To:     c.Query("to"),
			Page:   queryInt(c, "page"),
			Limit:  queryInt(c, "limit"),
		},
	)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.List(c, res.Logs, httpresp.NewPagination(res.Page, res.Limit, res.Total))
}
