package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"planner-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Context keys set by the auth middleware.
const (
	UserIDKey = "userID"
	UserKey   = "user"
	TokenKey  = "token"
)

// CurrentUserID returns the authenticated user's id.
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(UserIDKey)
}

// EnsureUserScope rejects requests whose legacy user_id parameter names someone other than the caller.
// An absent parameter is fine: the scope always comes from the token.
func EnsureUserScope(c *gin.Context, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return apperror.BadRequest("invalid user_id")
	}
	if uint(id) != CurrentUserID(c) {
		return apperror.Forbidden()
	}
	return nil
}

// EnsureBodyUserScope is EnsureUserScope for a user_id sent in a create body.
func EnsureBodyUserScope(c *gin.Context, userID *uint) error {
	if userID == nil {
		return nil
	}
	if *userID != CurrentUserID(c) {
		return apperror.Forbidden()
	}
	return nil
}

// ParamID parses a positive integer path parameter.
func ParamID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.BadRequest("invalid " + name)
	}
	return uint(id), nil
}

// BindJSON binds and validates a request body, translating validator failures into MissingField or BadRequest.
func BindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return translateBindError(err)
	}
	return nil
}

// BindOptionalJSON is BindJSON for endpoints whose body may be omitted. An empty body leaves obj
// untouched; any other body is bound whatever its framing, chunked included.
func BindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return translateBindError(err)
	}
	return nil
}

// BindStrictJSON is BindJSON with unknown fields rejected. PATCH bodies go through here so that
// fields outside a resource's allow-list are refused instead of silently ignored.
func BindStrictJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil {
		return apperror.BadRequest("request body is required")
	}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return apperror.BadRequest("request body is required")
		}
		if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
			return apperror.BadRequest("field cannot be updated: " + strings.Trim(field, `"`))
		}
		return apperror.BadRequest("invalid request body: " + err.Error())
	}
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return translateBindError(err)
	}
	return nil
}

func translateBindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := fe.Field()
		if fe.Tag() == "required" {
			return apperror.MissingField(field)
		}
		return apperror.BadRequest(fmt.Sprintf("invalid value for %s (%s)", field, fe.Tag()))
	}
	if errors.Is(err, io.EOF) {
		return apperror.BadRequest("request body is required")
	}
	return apperror.BadRequest("invalid request body: " + err.Error())
}
