package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"clinic-server/internal/apperrors"
	"clinic-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("clocktime", validateClockTime)
	}
}

// validateClockTime backs the `clocktime` binding tag used on schedule
// slot times.
func validateClockTime(fl validator.FieldLevel) bool {
	return utils.ClockTimePattern.MatchString(fl.Field().String())
}

// respondError maps a store error onto the HTTP response. Anything
// outside the apperrors taxonomy is a 500 with no internals leaked.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// parseIDParam reads a numeric path parameter, answering 400 itself on
// garbage input.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(value), true
}
