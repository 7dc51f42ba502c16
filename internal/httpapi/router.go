package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/classicmodels/api/internal/domain/customer"
	"github.com/classicmodels/api/internal/domain/employee"
	"github.com/classicmodels/api/internal/domain/office"
	"github.com/classicmodels/api/internal/domain/order"
	"github.com/classicmodels/api/internal/domain/orderdetail"
	"github.com/classicmodels/api/internal/domain/payment"
	"github.com/classicmodels/api/internal/domain/product"
	"github.com/classicmodels/api/internal/domain/productline"
	"github.com/classicmodels/api/internal/metrics"
	"github.com/classicmodels/api/internal/service"
)

func parseInt(s string) (int, error) { return strconv.Atoi(s) }

func parseString(s string) (string, error) { return s, nil }

// NewRouter assembles the gin engine with all resource routes, the liveness
// endpoints and the middleware chain. rps bounds the process-wide request
// rate; zero disables limiting.
func NewRouter(svcs *service.Services, log zerolog.Logger, rps float64) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(log), instrument(), rateLimit(rps))

	v := validator.New(validator.WithRequiredStructEnabled())

	r.GET("/", func(c *gin.Context) {
		writeMessage(c, http.StatusOK, "Hello, World!")
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	Mount(r, v, Resource[office.CreateInput, office.Office, string]{
		Name:       "offices",
		Path:       "/offices",
		IDParam:    "office_code",
		Service:    svcs.Offices,
		ParseID:    parseString,
		FromCreate: office.FromCreate,
		KeyOf:      func(o office.Office) string { return o.OfficeCode },
		Fields:     office.Fields,
	})

	Mount(r, v, Resource[employee.CreateInput, employee.Employee, int]{
		Name:       "employees",
		Path:       "/employees",
		IDParam:    "employee_number",
		Service:    svcs.Employees,
		ParseID:    parseInt,
		FromCreate: employee.FromCreate,
		KeyOf:      func(e employee.Employee) int { return e.EmployeeNumber },
		Fields:     employee.Fields,
	})

	Mount(r, v, Resource[customer.CreateInput, customer.Customer, int]{
		Name:       "customers",
		Path:       "/customers",
		IDParam:    "customer_number",
		Service:    svcs.Customers,
		ParseID:    parseInt,
		FromCreate: customer.FromCreate,
		KeyOf:      func(c customer.Customer) int { return c.CustomerNumber },
		Fields:     customer.Fields,
	})

	Mount(r, v, Resource[order.CreateInput, order.Order, int]{
		Name:       "orders",
		Path:       "/orders",
		IDParam:    "order_number",
		Service:    svcs.Orders,
		ParseID:    parseInt,
		FromCreate: order.FromCreate,
		KeyOf:      func(o order.Order) int { return o.OrderNumber },
		Fields:     order.Fields,
	})

	Mount(r, v, Resource[product.CreateInput, product.Product, string]{
		Name:       "products",
		Path:       "/products",
		IDParam:    "product_code",
		Service:    svcs.Products,
		ParseID:    parseString,
		FromCreate: product.FromCreate,
		KeyOf:      func(p product.Product) string { return p.ProductCode },
		Fields:     product.Fields,
	})

	Mount(r, v, Resource[productline.CreateInput, productline.ProductLine, string]{
		Name:       "product_lines",
		Path:       "/product-lines",
		IDParam:    "product_line",
		Service:    svcs.ProductLines,
		ParseID:    parseString,
		FromCreate: productline.FromCreate,
		KeyOf:      func(pl productline.ProductLine) string { return pl.ProductLine },
		Fields:     productline.Fields,
	})

	MountComposite(r, v, CompositeResource[orderdetail.OrderDetail, int, string]{
		Name:       "order_details",
		Path:       "/order-details",
		ParentPath: "/orders/:order_number/details",
		Param1:     "order_number",
		Param2:     "product_code",
		Service:    svcs.OrderDetails,
		ParseK1:    parseInt,
		ParseK2:    parseString,
		SetKeys: func(d *orderdetail.OrderDetail, orderNumber int, productCode string) {
			d.OrderNumber = orderNumber
			d.ProductCode = productCode
		},
		Fields: orderdetail.Fields,
	})

	MountComposite(r, v, CompositeResource[payment.Payment, int, string]{
		Name:       "payments",
		Path:       "/payments",
		ParentPath: "/customers/:customer_number/payments",
		Param1:     "customer_number",
		Param2:     "check_number",
		Service:    svcs.Payments,
		ParseK1:    parseInt,
		ParseK2:    parseString,
		SetKeys: func(p *payment.Payment, customerNumber int, checkNumber string) {
			p.CustomerNumber = customerNumber
			p.CheckNumber = checkNumber
		},
		Fields: payment.Fields,
	})

	return r
}
