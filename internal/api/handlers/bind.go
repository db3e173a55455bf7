package handlers

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/yoga-studio/front/internal/views"
)

// bindForm maps the submitted form onto obj. A value that does not parse into its
// field is reported under that field; every other field is still mapped.
func bindForm(c *gin.Context, obj interface{}) *views.ValidationError {
	if err := c.ShouldBind(obj); err == nil {
		return nil
	}

	verr := &views.ValidationError{Fields: map[string]string{}}
	accepted := url.Values{}
	t := reflect.TypeOf(obj).Elem()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		values, ok := c.Request.Form[name]
		if !ok || len(values) == 0 {
			continue
		}
		if rule := refusedRule(field.Type.Kind(), values[0]); rule != "" {
			verr.Fields[name] = rule
			continue
		}
		accepted[name] = values
	}

	if len(verr.Fields) == 0 {
		verr.Fields["form"] = "invalid"
		return verr
	}
	// gin stops at the first bad field, map the rest ourselves
	_ = binding.MapFormWithTag(obj, accepted, "form")
	return verr
}

// refusedRule names the rule value breaks for a field of kind k, or "" when it parses.
func refusedRule(k reflect.Kind, value string) string {
	if value == "" {
		return ""
	}
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			return "numeric"
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if _, err := strconv.ParseUint(value, 10, 64); err != nil {
			return "numeric"
		}
	case reflect.Float32, reflect.Float64:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return "numeric"
		}
	case reflect.Bool:
		if _, err := strconv.ParseBool(value); err != nil {
			return "boolean"
		}
	}
	return ""
}
