// Package storage declares the persistence interfaces the services depend on.
package storage

import (
	"context"
	"errors"

	"github.com/classicmodels/api/internal/domain/customer"
	"github.com/classicmodels/api/internal/domain/employee"
	"github.com/classicmodels/api/internal/domain/office"
	"github.com/classicmodels/api/internal/domain/order"
	"github.com/classicmodels/api/internal/domain/orderdetail"
	"github.com/classicmodels/api/internal/domain/payment"
	"github.com/classicmodels/api/internal/domain/product"
	"github.com/classicmodels/api/internal/domain/productline"
)

// ErrNotFound is returned when no row matches the requested identifying
// value(s). Every store implementation maps its driver-level miss onto this
// sentinel so callers can test with errors.Is.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a create collides with an existing row's
// identifying value(s). The postgres store reports this through the driver's
// constraint errors instead; only stores without a real unique index wrap
// this sentinel.
var ErrConflict = errors.New("already exists")

// Update operations take a sparse column→value map holding only the fields
// that were explicitly present in the request payload; absent columns are
// left untouched. Identifying columns are never part of the map.

// OfficeStore persists office rows.
type OfficeStore interface {
	CreateOffice(ctx context.Context, o office.Office) (office.Office, error)
	GetOffice(ctx context.Context, code string) (office.Office, error)
	ListOffices(ctx context.Context) ([]office.Office, error)
	UpdateOffice(ctx context.Context, code string, fields map[string]any) (office.Office, error)
	DeleteOffice(ctx context.Context, code string) error
}

// EmployeeStore persists employee rows.
type EmployeeStore interface {
	CreateEmployee(ctx context.Context, e employee.Employee) (employee.Employee, error)
	GetEmployee(ctx context.Context, number int) (employee.Employee, error)
	ListEmployees(ctx context.Context) ([]employee.Employee, error)
	UpdateEmployee(ctx context.Context, number int, fields map[string]any) (employee.Employee, error)
	DeleteEmployee(ctx context.Context, number int) error
}

// CustomerStore persists customer rows.
type CustomerStore interface {
	CreateCustomer(ctx context.Context, c customer.Customer) (customer.Customer, error)
	GetCustomer(ctx context.Context, number int) (customer.Customer, error)
	ListCustomers(ctx context.Context) ([]customer.Customer, error)
	UpdateCustomer(ctx context.Context, number int, fields map[string]any) (customer.Customer, error)
	DeleteCustomer(ctx context.Context, number int) error
}

// OrderStore persists order rows.
type OrderStore interface {
	CreateOrder(ctx context.Context, o order.Order) (order.Order, error)
	GetOrder(ctx context.Context, number int) (order.Order, error)
	ListOrders(ctx context.Context) ([]order.Order, error)
	UpdateOrder(ctx context.Context, number int, fields map[string]any) (order.Order, error)
	DeleteOrder(ctx context.Context, number int) error
}

// ProductStore persists product rows.
type ProductStore interface {
	CreateProduct(ctx context.Context, p product.Product) (product.Product, error)
	GetProduct(ctx context.Context, code string) (product.Product, error)
	ListProducts(ctx context.Context) ([]product.Product, error)
	UpdateProduct(ctx context.Context, code string, fields map[string]any) (product.Product, error)
	DeleteProduct(ctx context.Context, code string) error
}

// ProductLineStore persists product line rows.
type ProductLineStore interface {
	CreateProductLine(ctx context.Context, pl productline.ProductLine) (productline.ProductLine, error)
	GetProductLine(ctx context.Context, line string) (productline.ProductLine, error)
	ListProductLines(ctx context.Context) ([]productline.ProductLine, error)
	UpdateProductLine(ctx context.Context, line string, fields map[string]any) (productline.ProductLine, error)
	DeleteProductLine(ctx context.Context, line string) error
}

// OrderDetailStore persists order line items, identified by the composite
// pair (order number, product code).
type OrderDetailStore interface {
	CreateOrderDetail(ctx context.Context, d orderdetail.OrderDetail) (orderdetail.OrderDetail, error)
	GetOrderDetail(ctx context.Context, orderNumber int, productCode string) (orderdetail.OrderDetail, error)
	ListOrderDetails(ctx context.Context) ([]orderdetail.OrderDetail, error)
	ListOrderDetailsByOrder(ctx context.Context, orderNumber int) ([]orderdetail.OrderDetail, error)
	UpdateOrderDetail(ctx context.Context, orderNumber int, productCode string, fields map[string]any) (orderdetail.OrderDetail, error)
	DeleteOrderDetail(ctx context.Context, orderNumber int, productCode string) error
}

// PaymentStore persists payments, identified by the composite pair
// (customer number, check number).
type PaymentStore interface {
	CreatePayment(ctx context.Context, p payment.Payment) (payment.Payment, error)
	GetPayment(ctx context.Context, customerNumber int, checkNumber string) (payment.Payment, error)
	ListPayments(ctx context.Context) ([]payment.Payment, error)
	ListPaymentsByCustomer(ctx context.Context, customerNumber int) ([]payment.Payment, error)
	UpdatePayment(ctx context.Context, customerNumber int, checkNumber string, fields map[string]any) (payment.Payment, error)
	DeletePayment(ctx context.Context, customerNumber int, checkNumber string) error
}

// Store is the union of every entity store, implemented by both the postgres
// and the in-memory backends.
type Store interface {
	OfficeStore
	EmployeeStore
	CustomerStore
	OrderStore
	ProductStore
	ProductLineStore
	OrderDetailStore
	PaymentStore
}
