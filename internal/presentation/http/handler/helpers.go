package handler

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/sangkips/menu-api/internal/presentation/http/dto/response"
	"github.com/sangkips/menu-api/pkg/utils"
)

const maxFormMemory = 32 << 20

// paramID parses the named path parameter as a UUID, writing a 400 on
// failure
func paramID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := utils.ParseUUID(c.Param(name))
	if err != nil {
		response.Error(c, err)
		return uuid.Nil, false
	}
	return id, true
}

// bindBody binds a JSON or multipart body. An empty body binds nothing.
func bindBody(c *gin.Context, obj interface{}) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if ct := c.ContentType(); ct == binding.MIMEMultipartPOSTForm || ct == binding.MIMEPOSTForm {
		if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			response.BadRequest(c, "Invalid request body")
			return false
		}
		dropBlankFormValues(c.Request, obj)
	}
	if err := c.ShouldBind(obj); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}

// dropBlankFormValues removes blank form values bound to non-string fields.
// Form binding would otherwise read them as zero rather than absent.
func dropBlankFormValues(req *http.Request, obj interface{}) {
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return
	}

	sets := []map[string][]string{req.Form, req.PostForm}
	if req.MultipartForm != nil {
		sets = append(sets, req.MultipartForm.Value)
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		key := strings.Split(field.Tag.Get("form"), ",")[0]
		kind := field.Type.Kind()
		if kind == reflect.Ptr {
			kind = field.Type.Elem().Kind()
		}
		if key == "" || key == "-" || kind == reflect.String {
			continue
		}
		for _, values := range sets {
			if v, ok := values[key]; ok && blank(v) {
				delete(values, key)
			}
		}
	}
}

func blank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
