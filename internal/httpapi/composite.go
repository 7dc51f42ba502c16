package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/classicmodels/api/internal/metrics"
	"github.com/classicmodels/api/internal/service"
)

// CompositeResource describes a resource addressed by a two-column key, such
// as payments (customer_number, check_number). Item URLs carry both key
// segments, and an extra listing endpoint scopes rows to the first key's
// parent resource, e.g. GET /customers/:customer_number/payments.
//
// There is no separate create payload; both keys are caller supplied, so the
// record type T doubles as the create schema.
type CompositeResource[T any, K1, K2 comparable] struct {
	Name       string // metrics label, e.g. "payments"
	Path       string // URL prefix, e.g. "/payments"
	ParentPath string // parent-scoped listing, e.g. "/customers/:customer_number/payments"
	Param1     string // first key parameter, e.g. "customer_number"
	Param2     string // second key parameter, e.g. "check_number"

	Service *service.CompositeCRUD[T, K1, K2]

	ParseK1 func(string) (K1, error)
	ParseK2 func(string) (K2, error)
	SetKeys func(*T, K1, K2)
	Fields  func(T) map[string]any
}

// MountComposite registers the composite resource's endpoints on the router.
func MountComposite[T any, K1, K2 comparable](r gin.IRouter, v *validator.Validate, res CompositeResource[T, K1, K2]) {
	item := res.Path + "/:" + res.Param1 + "/:" + res.Param2

	parseKeys := func(c *gin.Context) (K1, K2, bool) {
		k1, err := res.ParseK1(c.Param(res.Param1))
		if err != nil {
			var zero2 K2
			writeError(c, http.StatusNotFound, fmt.Errorf("invalid %s", res.Param1))
			return k1, zero2, false
		}
		k2, err := res.ParseK2(c.Param(res.Param2))
		if err != nil {
			writeError(c, http.StatusNotFound, fmt.Errorf("invalid %s", res.Param2))
			return k1, k2, false
		}
		return k1, k2, true
	}

	r.GET(res.Path, func(c *gin.Context) {
		items, err := res.Service.List(c.Request.Context())
		if err != nil {
			writeFailure(c, err)
			return
		}
		writeData(c, http.StatusOK, newListResponse(items))
	})

	r.GET(res.ParentPath, func(c *gin.Context) {
		parent, err := res.ParseK1(c.Param(res.Param1))
		if err != nil {
			writeError(c, http.StatusNotFound, fmt.Errorf("invalid %s", res.Param1))
			return
		}
		items, err := res.Service.ListByParent(c.Request.Context(), parent)
		if err != nil {
			writeFailure(c, err)
			return
		}
		writeData(c, http.StatusOK, newListResponse(items))
	})

	r.GET(item, func(c *gin.Context) {
		k1, k2, ok := parseKeys(c)
		if !ok {
			return
		}
		rec, err := res.Service.Get(c.Request.Context(), k1, k2)
		if err != nil {
			writeFailure(c, err)
			return
		}
		writeData(c, http.StatusOK, rec)
	})

	r.POST(res.Path, func(c *gin.Context) {
		var rec T
		if !decodeBody(c, v, &rec, nil) {
			return
		}
		created, err := res.Service.Create(c.Request.Context(), rec)
		if err != nil {
			writeFailure(c, err)
			return
		}
		metrics.RecordWrite(res.Name, "create")
		writeData(c, http.StatusCreated, created)
	})

	// The URL is authoritative for both key components: they are written
	// into the decoded body before validation, so the body may omit them.
	r.PUT(item, func(c *gin.Context) {
		k1, k2, ok := parseKeys(c)
		if !ok {
			return
		}
		var rec T
		var present map[string]bool
		if !decodeRawBody(c, &rec, &present) {
			return
		}
		res.SetKeys(&rec, k1, k2)
		if err := v.Struct(&rec); err != nil {
			writeFailure(c, err)
			return
		}
		fields := presentFields(res.Fields(rec), present)
		updated, err := res.Service.Update(c.Request.Context(), k1, k2, fields)
		if err != nil {
			writeFailure(c, err)
			return
		}
		metrics.RecordWrite(res.Name, "update")
		writeData(c, http.StatusOK, updated)
	})

	r.DELETE(item, func(c *gin.Context) {
		k1, k2, ok := parseKeys(c)
		if !ok {
			return
		}
		if err := res.Service.Delete(c.Request.Context(), k1, k2); err != nil {
			writeFailure(c, err)
			return
		}
		metrics.RecordWrite(res.Name, "delete")
		writeMessage(c, http.StatusOK, "Deleted")
	})
}
