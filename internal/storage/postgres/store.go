// Package postgres implements the storage interfaces on PostgreSQL via sqlx.
package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/classicmodels/api/internal/domain/customer"
	"github.com/classicmodels/api/internal/domain/employee"
	"github.com/classicmodels/api/internal/domain/office"
	"github.com/classicmodels/api/internal/domain/order"
	"github.com/classicmodels/api/internal/domain/orderdetail"
	"github.com/classicmodels/api/internal/domain/payment"
	"github.com/classicmodels/api/internal/domain/product"
	"github.com/classicmodels/api/internal/domain/productline"
	"github.com/classicmodels/api/internal/storage"
)

// Store implements every storage interface backed by PostgreSQL. Each write
// is a single statement, so the driver's transaction per statement gives the
// all-or-nothing unit the API relies on.
type Store struct {
	db *sqlx.DB

	offices      table[office.Office]
	employees    table[employee.Employee]
	customers    table[customer.Customer]
	orders       table[order.Order]
	products     table[product.Product]
	productLines table[productline.ProductLine]
	orderDetails table[orderdetail.OrderDetail]
	payments     table[payment.Payment]
}

var _ storage.Store = (*Store)(nil)

// New creates a Store using the provided database handle.
func New(db *sqlx.DB) *Store {
	return &Store{
		db:           db,
		offices:      newTable[office.Office](office.Table, office.KeyColumns, office.Columns, office.InsertColumns, office.UpdateColumns),
		employees:    newTable[employee.Employee](employee.Table, employee.KeyColumns, employee.Columns, employee.InsertColumns, employee.UpdateColumns),
		customers:    newTable[customer.Customer](customer.Table, customer.KeyColumns, customer.Columns, customer.InsertColumns, customer.UpdateColumns),
		orders:       newTable[order.Order](order.Table, order.KeyColumns, order.Columns, order.InsertColumns, order.UpdateColumns),
		products:     newTable[product.Product](product.Table, product.KeyColumns, product.Columns, product.InsertColumns, product.UpdateColumns),
		productLines: newTable[productline.ProductLine](productline.Table, productline.KeyColumns, productline.Columns, productline.InsertColumns, productline.UpdateColumns),
		orderDetails: newTable[orderdetail.OrderDetail](orderdetail.Table, orderdetail.KeyColumns, orderdetail.Columns, orderdetail.InsertColumns, orderdetail.UpdateColumns),
		payments:     newTable[payment.Payment](payment.Table, payment.KeyColumns, payment.Columns, payment.InsertColumns, payment.UpdateColumns),
	}
}

// --- OfficeStore ------------------------------------------------------------

func (s *Store) CreateOffice(ctx context.Context, o office.Office) (office.Office, error) {
	return s.offices.insert(ctx, s.db, o)
}

func (s *Store) GetOffice(ctx context.Context, code string) (office.Office, error) {
	return s.offices.get(ctx, s.db, code)
}

func (s *Store) ListOffices(ctx context.Context) ([]office.Office, error) {
	return s.offices.all(ctx, s.db)
}

func (s *Store) UpdateOffice(ctx context.Context, code string, fields map[string]any) (office.Office, error) {
	return s.offices.update(ctx, s.db, fields, code)
}

func (s *Store) DeleteOffice(ctx context.Context, code string) error {
	return s.offices.del(ctx, s.db, code)
}

// --- EmployeeStore ----------------------------------------------------------

func (s *Store) CreateEmployee(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return s.employees.insert(ctx, s.db, e)
}

func (s *Store) GetEmployee(ctx context.Context, number int) (employee.Employee, error) {
	return s.employees.get(ctx, s.db, number)
}

func (s *Store) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	return s.employees.all(ctx, s.db)
}

func (s *Store) UpdateEmployee(ctx context.Context, number int, fields map[string]any) (employee.Employee, error) {
	return s.employees.update(ctx, s.db, fields, number)
}

func (s *Store) DeleteEmployee(ctx context.Context, number int) error {
	return s.employees.del(ctx, s.db, number)
}

// --- CustomerStore ----------------------------------------------------------

func (s *Store) CreateCustomer(ctx context.Context, c customer.Customer) (customer.Customer, error) {
	return s.customers.insert(ctx, s.db, c)
}

func (s *Store) GetCustomer(ctx context.Context, number int) (customer.Customer, error) {
	return s.customers.get(ctx, s.db, number)
}

func (s *Store) ListCustomers(ctx context.Context) ([]customer.Customer, error) {
	return s.customers.all(ctx, s.db)
}

func (s *Store) UpdateCustomer(ctx context.Context, number int, fields map[string]any) (customer.Customer, error) {
	return s.customers.update(ctx, s.db, fields, number)
}

func (s *Store) DeleteCustomer(ctx context.Context, number int) error {
	return s.customers.del(ctx, s.db, number)
}

// --- OrderStore -------------------------------------------------------------

func (s *Store) CreateOrder(ctx context.Context, o order.Order) (order.Order, error) {
	return s.orders.insert(ctx, s.db, o)
}

func (s *Store) GetOrder(ctx context.Context, number int) (order.Order, error) {
	return s.orders.get(ctx, s.db, number)
}

func (s *Store) ListOrders(ctx context.Context) ([]order.Order, error) {
	return s.orders.all(ctx, s.db)
}

func (s *Store) UpdateOrder(ctx context.Context, number int, fields map[string]any) (order.Order, error) {
	return s.orders.update(ctx, s.db, fields, number)
}

func (s *Store) DeleteOrder(ctx context.Context, number int) error {
	return s.orders.del(ctx, s.db, number)
}

// --- ProductStore -----------------------------------------------------------

func (s *Store) CreateProduct(ctx context.Context, p product.Product) (product.Product, error) {
	return s.products.insert(ctx, s.db, p)
}

func (s *Store) GetProduct(ctx context.Context, code string) (product.Product, error) {
	return s.products.get(ctx, s.db, code)
}

func (s *Store) ListProducts(ctx context.Context) ([]product.Product, error) {
	return s.products.all(ctx, s.db)
}

func (s *Store) UpdateProduct(ctx context.Context, code string, fields map[string]any) (product.Product, error) {
	return s.products.update(ctx, s.db, fields, code)
}

func (s *Store) DeleteProduct(ctx context.Context, code string) error {
	return s.products.del(ctx, s.db, code)
}

// --- ProductLineStore -------------------------------------------------------

func (s *Store) CreateProductLine(ctx context.Context, pl productline.ProductLine) (productline.ProductLine, error) {
	return s.productLines.insert(ctx, s.db, pl)
}

func (s *Store) GetProductLine(ctx context.Context, line string) (productline.ProductLine, error) {
	return s.productLines.get(ctx, s.db, line)
}

func (s *Store) ListProductLines(ctx context.Context) ([]productline.ProductLine, error) {
	return s.productLines.all(ctx, s.db)
}

func (s *Store) UpdateProductLine(ctx context.Context, line string, fields map[string]any) (productline.ProductLine, error) {
	return s.productLines.update(ctx, s.db, fields, line)
}

func (s *Store) DeleteProductLine(ctx context.Context, line string) error {
	return s.productLines.del(ctx, s.db, line)
}

// --- OrderDetailStore -------------------------------------------------------

func (s *Store) CreateOrderDetail(ctx context.Context, d orderdetail.OrderDetail) (orderdetail.OrderDetail, error) {
	return s.orderDetails.insert(ctx, s.db, d)
}

func (s *Store) GetOrderDetail(ctx context.Context, orderNumber int, productCode string) (orderdetail.OrderDetail, error) {
	return s.orderDetails.get(ctx, s.db, orderNumber, productCode)
}

func (s *Store) ListOrderDetails(ctx context.Context) ([]orderdetail.OrderDetail, error) {
	return s.orderDetails.all(ctx, s.db)
}

func (s *Store) ListOrderDetailsByOrder(ctx context.Context, orderNumber int) ([]orderdetail.OrderDetail, error) {
	return s.orderDetails.listBy(ctx, s.db, "order_number", orderNumber)
}

func (s *Store) UpdateOrderDetail(ctx context.Context, orderNumber int, productCode string, fields map[string]any) (orderdetail.OrderDetail, error) {
	return s.orderDetails.update(ctx, s.db, fields, orderNumber, productCode)
}

func (s *Store) DeleteOrderDetail(ctx context.Context, orderNumber int, productCode string) error {
	return s.orderDetails.del(ctx, s.db, orderNumber, productCode)
}

// --- PaymentStore -----------------------------------------------------------

func (s *Store) CreatePayment(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	return s.payments.insert(ctx, s.db, p)
}

func (s *Store) GetPayment(ctx context.Context, customerNumber int, checkNumber string) (payment.Payment, error) {
	return s.payments.get(ctx, s.db, customerNumber, checkNumber)
}

func (s *Store) ListPayments(ctx context.Context) ([]payment.Payment, error) {
	return s.payments.all(ctx, s.db)
}

func (s *Store) ListPaymentsByCustomer(ctx context.Context, customerNumber int) ([]payment.Payment, error) {
	return s.payments.listBy(ctx, s.db, "customer_number", customerNumber)
}

func (s *Store) UpdatePayment(ctx context.Context, customerNumber int, checkNumber string, fields map[string]any) (payment.Payment, error) {
	return s.payments.update(ctx, s.db, fields, customerNumber, checkNumber)
}

func (s *Store) DeletePayment(ctx context.Context, customerNumber int, checkNumber string) error {
	return s.payments.del(ctx, s.db, customerNumber, checkNumber)
}
