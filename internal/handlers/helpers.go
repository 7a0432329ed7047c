package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
)

// fail records err on the context for the request logger and writes the
// envelope.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	httpresp.Fail(c, err)
}

// bindJSON writes the validation envelope itself when binding fails.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		failBinding(c, err)
		return false
	}
	return true
}

func failBinding(c *gin.Context, err error) {
	fail(c, httperr.Validation("invalid_request", "Invalid request body: "+err.Error()))
}

func queryInt(c *gin.Context, key string) int {
	n, _ := strconv.Atoi(c.Query(key))
	return n
}

// queryFloat returns nil for an absent parameter.
func queryFloat(c *gin.Context, key string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, httperr.Validation("invalid_"+key, key+" must be a number")
	}
	return &v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
