package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"

	"github.com/classicmodels/api/internal/metrics"
	"github.com/classicmodels/api/internal/service"
)

const msgNoJSON = "No JSON data provided"

// Resource describes one single-key REST resource. Mounting it registers the
// five standard endpoints under Path:
//
//	GET    Path            list
//	POST   Path            create
//	GET    Path/:id        fetch
//	PUT    Path/:id        update
//	DELETE Path/:id        delete
//
// C is the create payload, T the record and K the key type.
type Resource[C, T any, K comparable] struct {
	Name    string // metrics label, e.g. "offices"
	Path    string // URL prefix, e.g. "/offices"
	IDParam string // path parameter name, e.g. "office_code"

	Service *service.CRUD[T, K]

	ParseID    func(string) (K, error)
	FromCreate func(C) T
	KeyOf      func(T) K
	Fields     func(T) map[string]any
}

// Mount registers the resource's endpoints on the router.
func Mount[C, T any, K comparable](r gin.IRouter, v *validator.Validate, res Resource[C, T, K]) {
	item := res.Path + "/:" + res.IDParam

	r.GET(res.Path, func(c *gin.Context) {
		items, err := res.Service.List(c.Request.Context())
		if err != nil {
			writeFailure(c, err)
			return
		}
		writeData(c, http.StatusOK, newListResponse(items))
	})

	r.GET(item, func(c *gin.Context) {
		key, err := res.ParseID(c.Param(res.IDParam))
		if err != nil {
			writeError(c, http.StatusNotFound, fmt.Errorf("invalid %s", res.IDParam))
			return
		}
		rec, err := res.Service.Get(c.Request.Context(), key)
		if err != nil {
			writeFailure(c, err)
			return
		}
		writeData(c, http.StatusOK, rec)
	})

	r.POST(res.Path, func(c *gin.Context) {
		var in C
		if !decodeBody(c, v, &in, nil) {
			return
		}
		created, err := res.Service.Create(c.Request.Context(), res.FromCreate(in))
		if err != nil {
			writeFailure(c, err)
			return
		}
		metrics.RecordWrite(res.Name, "create")
		writeData(c, http.StatusCreated, created)
	})

	r.PUT(item, func(c *gin.Context) {
		key, err := res.ParseID(c.Param(res.IDParam))
		if err != nil {
			writeError(c, http.StatusNotFound, fmt.Errorf("invalid %s", res.IDParam))
			return
		}
		var rec T
		var present map[string]bool
		if !decodeBody(c, v, &rec, &present) {
			return
		}
		if res.KeyOf(rec) != key {
			writeError(c, http.StatusBadRequest, fmt.Errorf(
				"%s in URL must match %s in request body", res.IDParam, res.IDParam))
			return
		}
		fields := presentFields(res.Fields(rec), present)
		updated, err := res.Service.Update(c.Request.Context(), key, fields)
		if err != nil {
			writeFailure(c, err)
			return
		}
		metrics.RecordWrite(res.Name, "update")
		writeData(c, http.StatusOK, updated)
	})

	r.DELETE(item, func(c *gin.Context) {
		key, err := res.ParseID(c.Param(res.IDParam))
		if err != nil {
			writeError(c, http.StatusNotFound, fmt.Errorf("invalid %s", res.IDParam))
			return
		}
		if err := res.Service.Delete(c.Request.Context(), key); err != nil {
			writeFailure(c, err)
			return
		}
		metrics.RecordWrite(res.Name, "delete")
		c.Status(http.StatusNoContent)
	})
}

// decodeBody reads the request body into dst and validates it. When present
// is non-nil it also captures which top-level keys the body carried, which
// drives partial updates. It writes the error response itself and reports
// whether decoding succeeded.
func decodeBody(c *gin.Context, v *validator.Validate, dst any, present *map[string]bool) bool {
	if !decodeRawBody(c, dst, present) {
		return false
	}
	if err := v.Struct(dst); err != nil {
		writeFailure(c, err)
		return false
	}
	return true
}

// decodeRawBody decodes without validating, for handlers that fill in URL
// derived fields before validation runs.
func decodeRawBody(c *gin.Context, dst any, present *map[string]bool) bool {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return false
	}
	if len(raw) == 0 {
		writeError(c, http.StatusBadRequest, errors.New(msgNoJSON))
		return false
	}
	if !gjson.ValidBytes(raw) {
		writeError(c, http.StatusBadRequest, errors.New("invalid JSON body"))
		return false
	}
	parsed := gjson.ParseBytes(raw)
	if !parsed.IsObject() || len(parsed.Map()) == 0 {
		writeError(c, http.StatusBadRequest, errors.New(msgNoJSON))
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return false
	}
	if present != nil {
		keys := make(map[string]bool, len(parsed.Map()))
		for k := range parsed.Map() {
			keys[k] = true
		}
		*present = keys
	}
	return true
}

// presentFields keeps only the columns the request body actually carried.
// Fields the body omitted keep their stored values.
func presentFields(fields map[string]any, present map[string]bool) map[string]any {
	for col := range fields {
		if !present[col] {
			delete(fields, col)
		}
	}
	return fields
}
