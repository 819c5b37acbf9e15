package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"uvalue/model"
)

// HTTPError 统一的错误响应
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func asHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	switch {
	case errors.Is(err, model.ErrUnknownAssembly):
		return NewHTTPError(http.StatusNotFound, "unknown_assembly", err.Error(), err)
	case errors.Is(err, model.ErrUnknownMaterial):
		return NewHTTPError(http.StatusBadRequest, "unknown_material", err.Error(), err)
	case errors.Is(err, model.ErrInvalidThickness):
		return NewHTTPError(http.StatusBadRequest, "invalid_thickness", err.Error(), err)
	case errors.Is(err, model.ErrIncompleteMaterialData):
		return NewHTTPError(http.StatusUnprocessableEntity, "incomplete_material_data", err.Error(), err)
	case errors.Is(err, model.ErrNoAssemblies):
		return NewHTTPError(http.StatusBadRequest, "no_assemblies", err.Error(), err)
	case errors.Is(err, model.ErrTooManyAssemblies):
		return NewHTTPError(http.StatusBadRequest, "too_many_assemblies", err.Error(), err)
	case errors.Is(err, errBothModes):
		return NewHTTPError(http.StatusBadRequest, "invalid_request", err.Error(), err)
	}
	return NewHTTPError(http.StatusInternalServerError, "internal_error", "something went wrong", err)
}

func (e *HTTPError) body() errorBody {
	return errorBody{Code: e.Code, Message: e.Message}
}

func writeError(c *gin.Context, e *HTTPError) {
	_ = c.Error(e)
	c.AbortWithStatusJSON(e.Status, gin.H{"error": e.body()})
}
