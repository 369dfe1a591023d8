package httputil

import (
	"log"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

var initOnce sync.Once

// InitValidator registers the custom binding rules on gin's validator engine.
// Safe to call more than once.
func InitValidator() {
	initOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			log.Println("[Validator] gin validator engine is not go-playground/validator, custom rules disabled")
			return
		}

		// Report JSON names in validation errors so clients see the field they sent.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})

		_ = v.RegisterValidation("timezone", ValidateTimezoneRule)
		_ = v.RegisterValidation("cronspec", ValidateCronSpecRule)
	})
}

func ValidateTimezoneRule(fl validator.FieldLevel) bool {
	return ValidTimezone(fl.Field().String())
}

func ValidateCronSpecRule(fl validator.FieldLevel) bool {
	return ValidCronSpec(fl.Field().String())
}

// ValidTimezone reports whether name is a loadable IANA time zone.
func ValidTimezone(name string) bool {
	if name == "" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

// ValidCronSpec accepts standard five-field cron expressions and @descriptors such as @daily.
// The empty string means "does not recur".
func ValidCronSpec(spec string) bool {
	if spec == "" {
		return true
	}
	_, err := cron.ParseStandard(spec)
	return err == nil
}
