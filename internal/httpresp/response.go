package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// Envelope is the shape of every JSON answer.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	ErrorCode  string      `json:"errorCode,omitempty"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

func List[T any](c *gin.Context, data []T, p Pagination) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Pagination: &p})
}

// Items answers an unpaginated list; nil becomes [].
func Items[T any](c *gin.Context, message string, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func Fail(c *gin.Context, err error) {
	c.JSON(httperr.StatusOf(err), failure(err))
}

// Abort is Fail for middlewares: the rest of the chain is skipped.
func Abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(httperr.StatusOf(err), failure(err))
}

func failure(err error) Envelope {
	return Envelope{
		Success:   false,
		Message:   httperr.MessageOf(err),
		ErrorCode: httperr.CodeOf(err),
	}
}
