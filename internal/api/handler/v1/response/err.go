package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	statusCode int
	err        error

	Msg string `json:"error"`
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.statusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.Int("status", e.statusCode),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.err),
		)
	}

	ctx.AbortWithStatusJSON(e.statusCode, e)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		statusCode: http.StatusBadRequest,
		err:        err,
		Msg:        err.Error(),
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		statusCode: http.StatusUnauthorized,
		err:        err,
		Msg:        err.Error(),
	}
}

func ErrNotFound(err error) *Err {
	return &Err{
		statusCode: http.StatusNotFound,
		err:        err,
		Msg:        err.Error(),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		statusCode: http.StatusConflict,
		err:        err,
		Msg:        err.Error(),
	}
}

// ErrUnprocessable is for requests that parse fine but violate a business
// rule, e.g. issuing more stock than is on hand.
func ErrUnprocessable(err error) *Err {
	return &Err{
		statusCode: http.StatusUnprocessableEntity,
		err:        err,
		Msg:        err.Error(),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		statusCode: http.StatusInternalServerError,
		err:        err,
		Msg:        "internal server error",
	}
}
