package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
	// Products keeps the listing envelope intact when a product listing fails.
	Products *[]any `json:"products,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	resp := Response{Status: status, Error: msg, Detail: detail}
	abort(c, err, resp)
}

// AbortWithEmptyList aborts a listing endpoint with `products: []` next to the error.
func AbortWithEmptyList(c *gin.Context, status int, err error, msg string) {
	empty := []any{}
	resp := Response{Status: status, Error: msg, Products: &empty}
	abort(c, err, resp)
}

func abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		err = errors.New(resp.Error)
	}
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
