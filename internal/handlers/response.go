package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/SscSPs/product_pricing_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const validationFailedMessage = "Validation failed"

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// min/max/required on money fields compare the numeric value.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterTagNameFunc(requestFieldName)
}

// requestFieldName reports validation errors under the name the client sent.
func requestFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func respondSuccess(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, dto.Response{Success: true, Message: message, Data: data})
}

func respondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, dto.Response{Success: true, Message: message, Data: data})
}

func respondPage(c *gin.Context, message string, data any, meta *dto.PageMeta) {
	c.JSON(http.StatusOK, dto.Response{Success: true, Message: message, Data: data, Meta: meta})
}

func respondFailure(c *gin.Context, status int, message string) {
	c.JSON(status, dto.Response{Success: false, Message: message})
}

func respondValidation(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
		Success: false,
		Message: validationFailedMessage,
		Errors:  fields,
	})
}

// respondError maps a service error onto a status and a client-safe body.
// Unknown causes are logged and reported with fallbackMessage only.
func respondError(c *gin.Context, err error, fallbackMessage string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Field != "" {
			logger.Warn("Request rejected", slog.String("field", appErr.Field), slog.String("error", err.Error()))
			respondValidation(c, map[string]string{appErr.Field: appErr.Message})
			return
		}
		if appErr.Code >= http.StatusInternalServerError || appErr.Code == 0 {
			logger.Error(fallbackMessage, slog.String("error", err.Error()))
			respondFailure(c, http.StatusInternalServerError, fallbackMessage)
			return
		}
		logger.Warn("Request rejected", slog.Int("status", appErr.Code), slog.String("error", err.Error()))
		respondFailure(c, appErr.Code, appErr.Message)
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respondFailure(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		respondFailure(c, http.StatusUnprocessableEntity, validationDetail(err))
	case errors.Is(err, apperrors.ErrDuplicate):
		respondFailure(c, http.StatusUnprocessableEntity, "Resource already exists")
	case errors.Is(err, apperrors.ErrConflict):
		respondFailure(c, http.StatusConflict, "Resource is in use")
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthenticated."})
	default:
		logger.Error(fallbackMessage, slog.String("error", err.Error()))
		respondFailure(c, http.StatusInternalServerError, fallbackMessage)
	}
}

// validationDetail strips the sentinel prefix from a wrapped domain
// validation error, leaving the rule that failed.
func validationDetail(err error) string {
	msg := strings.TrimPrefix(err.Error(), apperrors.ErrValidation.Error()+": ")
	if msg == "" {
		return validationFailedMessage
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// bindJSON decodes the body into req and writes the failure response when it
// cannot. Callers return immediately on false.
// An empty body counts as an empty object so that it reaches field validation.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(req)
	}
	if err != nil {
		writeBindError(c, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		writeBindError(c, err)
		return false
	}
	return true
}

func writeBindError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fieldErrorMessage(fe)
		}
		logger.Warn("Request validation failed", slog.Any("fields", fields))
		respondValidation(c, fields)
		return
	}

	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	respondFailure(c, http.StatusBadRequest, "Invalid request body")
}

func fieldErrorMessage(fe validator.FieldError) string {
	name := strings.ReplaceAll(fe.Field(), "_", " ")
	numeric := fe.Kind() != reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", name)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", name)
	case "min":
		if numeric {
			return fmt.Sprintf("The %s field must be at least %s.", name, fe.Param())
		}
		return fmt.Sprintf("The %s field must be at least %s characters.", name, fe.Param())
	case "max":
		if numeric {
			return fmt.Sprintf("The %s field must not be greater than %s.", name, fe.Param())
		}
		return fmt.Sprintf("The %s field must not be greater than %s characters.", name, fe.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", name)
	}
}

// parseID reads a positive integer path parameter. Anything else cannot name
// a stored record, so the caller answers 404.
func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
