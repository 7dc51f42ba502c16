// Package memory is an in-memory implementation of the storage interfaces.
// It is safe for concurrent use and is intended for tests and local
// development.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/classicmodels/api/internal/domain/customer"
	"github.com/classicmodels/api/internal/domain/employee"
	"github.com/classicmodels/api/internal/domain/office"
	"github.com/classicmodels/api/internal/domain/order"
	"github.com/classicmodels/api/internal/domain/orderdetail"
	"github.com/classicmodels/api/internal/domain/payment"
	"github.com/classicmodels/api/internal/domain/product"
	"github.com/classicmodels/api/internal/domain/productline"
	"github.com/classicmodels/api/internal/storage"
	"github.com/classicmodels/api/internal/types"
)

// bucket keeps rows addressable by a string form of their key while
// preserving insertion order for listings.
type bucket[T any] struct {
	rows  map[string]T
	order []string
}

func newBucket[T any]() *bucket[T] {
	return &bucket[T]{rows: make(map[string]T)}
}

func (b *bucket[T]) put(key string, row T) {
	if _, ok := b.rows[key]; !ok {
		b.order = append(b.order, key)
	}
	b.rows[key] = row
}

func (b *bucket[T]) get(key string) (T, bool) {
	row, ok := b.rows[key]
	return row, ok
}

func (b *bucket[T]) list() []T {
	out := make([]T, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.rows[key])
	}
	return out
}

func (b *bucket[T]) remove(key string) bool {
	if _, ok := b.rows[key]; !ok {
		return false
	}
	delete(b.rows, key)
	for i, k := range b.order {
		if k == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

func key1(v any) string {
	return fmt.Sprintf("%v", v)
}

func key2(a, b any) string {
	return fmt.Sprintf("%v/%v", a, b)
}

// Store is the in-memory backend.
type Store struct {
	mu         sync.RWMutex
	nextNumber int

	offices      *bucket[office.Office]
	employees    *bucket[employee.Employee]
	customers    *bucket[customer.Customer]
	orders       *bucket[order.Order]
	products     *bucket[product.Product]
	productLines *bucket[productline.ProductLine]
	orderDetails *bucket[orderdetail.OrderDetail]
	payments     *bucket[payment.Payment]
}

var _ storage.Store = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		nextNumber:   1,
		offices:      newBucket[office.Office](),
		employees:    newBucket[employee.Employee](),
		customers:    newBucket[customer.Customer](),
		orders:       newBucket[order.Order](),
		products:     newBucket[product.Product](),
		productLines: newBucket[productline.ProductLine](),
		orderDetails: newBucket[orderdetail.OrderDetail](),
		payments:     newBucket[payment.Payment](),
	}
}

func (s *Store) nextID() int {
	n := s.nextNumber
	s.nextNumber++
	return n
}

// --- OfficeStore ------------------------------------------------------------

func (s *Store) CreateOffice(_ context.Context, o office.Office) (office.Office, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.offices.get(key1(o.OfficeCode)); ok {
		return office.Office{}, fmt.Errorf("office %s: %w", o.OfficeCode, storage.ErrConflict)
	}
	s.offices.put(key1(o.OfficeCode), o)
	return o, nil
}

func (s *Store) GetOffice(_ context.Context, code string) (office.Office, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.offices.get(key1(code))
	if !ok {
		return office.Office{}, storage.ErrNotFound
	}
	return o, nil
}

func (s *Store) ListOffices(_ context.Context) ([]office.Office, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.offices.list(), nil
}

func (s *Store) UpdateOffice(_ context.Context, code string, fields map[string]any) (office.Office, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.offices.get(key1(code))
	if !ok {
		return office.Office{}, storage.ErrNotFound
	}
	for col, v := range fields {
		switch col {
		case "city":
			o.City = v.(string)
		case "phone":
			o.Phone = v.(*string)
		case "address_line_1":
			o.AddressLine1 = v.(*string)
		case "address_line_2":
			o.AddressLine2 = v.(*string)
		case "state":
			o.State = v.(*string)
		case "country":
			o.Country = v.(*string)
		case "postal_code":
			o.PostalCode = v.(*string)
		case "territory":
			o.Territory = v.(*string)
		}
	}
	s.offices.put(key1(code), o)
	return o, nil
}

func (s *Store) DeleteOffice(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.offices.remove(key1(code)) {
		return storage.ErrNotFound
	}
	return nil
}

// --- EmployeeStore ----------------------------------------------------------

func (s *Store) CreateEmployee(_ context.Context, e employee.Employee) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.EmployeeNumber == 0 {
		e.EmployeeNumber = s.nextID()
	} else if _, ok := s.employees.get(key1(e.EmployeeNumber)); ok {
		return employee.Employee{}, fmt.Errorf("employee %d: %w", e.EmployeeNumber, storage.ErrConflict)
	}
	s.employees.put(key1(e.EmployeeNumber), e)
	return e, nil
}

func (s *Store) GetEmployee(_ context.Context, number int) (employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.employees.get(key1(number))
	if !ok {
		return employee.Employee{}, storage.ErrNotFound
	}
	return e, nil
}

func (s *Store) ListEmployees(_ context.Context) ([]employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.employees.list(), nil
}

func (s *Store) UpdateEmployee(_ context.Context, number int, fields map[string]any) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees.get(key1(number))
	if !ok {
		return employee.Employee{}, storage.ErrNotFound
	}
	for col, v := range fields {
		switch col {
		case "first_name":
			e.FirstName = v.(string)
		case "last_name":
			e.LastName = v.(string)
		case "email":
			e.Email = v.(string)
		case "extension":
			e.Extension = v.(*string)
		case "job_title":
			e.JobTitle = v.(string)
		case "office_code":
			e.OfficeCode = v.(*string)
		case "reports_to":
			e.ReportsTo = v.(*int)
		}
	}
	s.employees.put(key1(number), e)
	return e, nil
}

func (s *Store) DeleteEmployee(_ context.Context, number int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.employees.remove(key1(number)) {
		return storage.ErrNotFound
	}
	return nil
}

// --- CustomerStore ----------------------------------------------------------

func (s *Store) CreateCustomer(_ context.Context, c customer.Customer) (customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.CustomerNumber == 0 {
		c.CustomerNumber = s.nextID()
	} else if _, ok := s.customers.get(key1(c.CustomerNumber)); ok {
		return customer.Customer{}, fmt.Errorf("customer %d: %w", c.CustomerNumber, storage.ErrConflict)
	}
	s.customers.put(key1(c.CustomerNumber), c)
	return c, nil
}

func (s *Store) GetCustomer(_ context.Context, number int) (customer.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers.get(key1(number))
	if !ok {
		return customer.Customer{}, storage.ErrNotFound
	}
	return c, nil
}

func (s *Store) ListCustomers(_ context.Context) ([]customer.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customers.list(), nil
}

func (s *Store) UpdateCustomer(_ context.Context, number int, fields map[string]any) (customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers.get(key1(number))
	if !ok {
		return customer.Customer{}, storage.ErrNotFound
	}
	for col, v := range fields {
		switch col {
		case "customer_name":
			c.CustomerName = v.(string)
		case "contact_last_name":
			c.ContactLastName = v.(string)
		case "contact_first_name":
			c.ContactFirstName = v.(string)
		case "phone":
			c.Phone = v.(string)
		case "address_line_1":
			c.AddressLine1 = v.(string)
		case "address_line_2":
			c.AddressLine2 = v.(*string)
		case "city":
			c.City = v.(string)
		case "state":
			c.State = v.(*string)
		case "postal_code":
			c.PostalCode = v.(*string)
		case "country":
			c.Country = v.(string)
		case "sales_rep_employee_number":
			c.SalesRepEmployeeNumber = v.(*int)
		case "credit_limit":
			c.CreditLimit = v.(*float64)
		}
	}
	s.customers.put(key1(number), c)
	return c, nil
}

func (s *Store) DeleteCustomer(_ context.Context, number int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.customers.remove(key1(number)) {
		return storage.ErrNotFound
	}
	return nil
}

// --- OrderStore -------------------------------------------------------------

func (s *Store) CreateOrder(_ context.Context, o order.Order) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.OrderNumber == 0 {
		o.OrderNumber = s.nextID()
	} else if _, ok := s.orders.get(key1(o.OrderNumber)); ok {
		return order.Order{}, fmt.Errorf("order %d: %w", o.OrderNumber, storage.ErrConflict)
	}
	s.orders.put(key1(o.OrderNumber), o)
	return o, nil
}

func (s *Store) GetOrder(_ context.Context, number int) (order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders.get(key1(number))
	if !ok {
		return order.Order{}, storage.ErrNotFound
	}
	return o, nil
}

func (s *Store) ListOrders(_ context.Context) ([]order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders.list(), nil
}

func (s *Store) UpdateOrder(_ context.Context, number int, fields map[string]any) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders.get(key1(number))
	if !ok {
		return order.Order{}, storage.ErrNotFound
	}
	for col, v := range fields {
		switch col {
		case "order_date":
			o.OrderDate = v.(types.Date)
		case "required_date":
			o.RequiredDate = v.(types.Date)
		case "shipped_date":
			o.ShippedDate = v.(*types.Date)
		case "status":
			o.Status = v.(string)
		case "comments":
			o.Comments = v.(*string)
		case "customer_number":
			o.CustomerNumber = v.(int)
		}
	}
	s.orders.put(key1(number), o)
	return o, nil
}

func (s *Store) DeleteOrder(_ context.Context, number int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.orders.remove(key1(number)) {
		return storage.ErrNotFound
	}
	return nil
}

// --- ProductStore -----------------------------------------------------------

func (s *Store) CreateProduct(_ context.Context, p product.Product) (product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products.get(key1(p.ProductCode)); ok {
		return product.Product{}, fmt.Errorf("product %s: %w", p.ProductCode, storage.ErrConflict)
	}
	s.products.put(key1(p.ProductCode), p)
	return p, nil
}

func (s *Store) GetProduct(_ context.Context, code string) (product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products.get(key1(code))
	if !ok {
		return product.Product{}, storage.ErrNotFound
	}
	return p, nil
}

func (s *Store) ListProducts(_ context.Context) ([]product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.list(), nil
}

func (s *Store) UpdateProduct(_ context.Context, code string, fields map[string]any) (product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products.get(key1(code))
	if !ok {
		return product.Product{}, storage.ErrNotFound
	}
	for col, v := range fields {
		switch col {
		case "product_name":
			p.ProductName = v.(string)
		case "product_line":
			p.ProductLine = v.(string)
		case "product_scale":
			p.ProductScale = v.(string)
		case "product_vendor":
			p.ProductVendor = v.(string)
		case "product_description":
			p.ProductDescription = v.(string)
		case "quantity_in_stock":
			p.QuantityInStock = v.(int)
		case "buy_price":
			p.BuyPrice = v.(float64)
		case "msrp":
			p.MSRP = v.(float64)
		}
	}
	s.products.put(key1(code), p)
	return p, nil
}

func (s *Store) DeleteProduct(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.products.remove(key1(code)) {
		return storage.ErrNotFound
	}
	return nil
}

// --- ProductLineStore -------------------------------------------------------

func (s *Store) CreateProductLine(_ context.Context, pl productline.ProductLine) (productline.ProductLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.productLines.get(key1(pl.ProductLine)); ok {
		return productline.ProductLine{}, fmt.Errorf("product line %s: %w", pl.ProductLine, storage.ErrConflict)
	}
	s.productLines.put(key1(pl.ProductLine), pl)
	return pl, nil
}

func (s *Store) GetProductLine(_ context.Context, line string) (productline.ProductLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pl, ok := s.productLines.get(key1(line))
	if !ok {
		return productline.ProductLine{}, storage.ErrNotFound
	}
	return pl, nil
}

func (s *Store) ListProductLines(_ context.Context) ([]productline.ProductLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.productLines.list(), nil
}

func (s *Store) UpdateProductLine(_ context.Context, line string, fields map[string]any) (productline.ProductLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pl, ok := s.productLines.get(key1(line))
	if !ok {
		return productline.ProductLine{}, storage.ErrNotFound
	}
	for col, v := range fields {
		switch col {
		case "text_description":
			pl.TextDescription = v.(*string)
		case "html_description":
			pl.HTMLDescription = v.(*string)
		}
	}
	s.productLines.put(key1(line), pl)
	return pl, nil
}

func (s *Store) DeleteProductLine(_ context.Context, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.productLines.remove(key1(line)) {
		return storage.ErrNotFound
	}
	return nil
}

// --- OrderDetailStore -------------------------------------------------------

func (s *Store) CreateOrderDetail(_ context.Context, d orderdetail.OrderDetail) (orderdetail.OrderDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orderDetails.get(key2(d.OrderNumber, d.ProductCode)); ok {
		return orderdetail.OrderDetail{}, fmt.Errorf("order detail %d/%s: %w", d.OrderNumber, d.ProductCode, storage.ErrConflict)
	}
	s.orderDetails.put(key2(d.OrderNumber, d.ProductCode), d)
	return d, nil
}

func (s *Store) GetOrderDetail(_ context.Context, orderNumber int, productCode string) (orderdetail.OrderDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.orderDetails.get(key2(orderNumber, productCode))
	if !ok {
		return orderdetail.OrderDetail{}, storage.ErrNotFound
	}
	return d, nil
}

func (s *Store) ListOrderDetails(_ context.Context) ([]orderdetail.OrderDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orderDetails.list(), nil
}

func (s *Store) ListOrderDetailsByOrder(_ context.Context, orderNumber int) ([]orderdetail.OrderDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []orderdetail.OrderDetail
	for _, d := range s.orderDetails.list() {
		if d.OrderNumber == orderNumber {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *Store) UpdateOrderDetail(_ context.Context, orderNumber int, productCode string, fields map[string]any) (orderdetail.OrderDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.orderDetails.get(key2(orderNumber, productCode))
	if !ok {
		return orderdetail.OrderDetail{}, storage.ErrNotFound
	}
	for col, v := range fields {
		switch col {
		case "quantity_ordered":
			d.QuantityOrdered = v.(int)
		case "price_each":
			d.PriceEach = v.(float64)
		case "order_line_number":
			d.OrderLineNumber = v.(int)
		}
	}
	s.orderDetails.put(key2(orderNumber, productCode), d)
	return d, nil
}

func (s *Store) DeleteOrderDetail(_ context.Context, orderNumber int, productCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.orderDetails.remove(key2(orderNumber, productCode)) {
		return storage.ErrNotFound
	}
	return nil
}

// --- PaymentStore -----------------------------------------------------------

func (s *Store) CreatePayment(_ context.Context, p payment.Payment) (payment.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.payments.get(key2(p.CustomerNumber, p.CheckNumber)); ok {
		return payment.Payment{}, fmt.Errorf("payment %d/%s: %w", p.CustomerNumber, p.CheckNumber, storage.ErrConflict)
	}
	s.payments.put(key2(p.CustomerNumber, p.CheckNumber), p)
	return p, nil
}

func (s *Store) GetPayment(_ context.Context, customerNumber int, checkNumber string) (payment.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.payments.get(key2(customerNumber, checkNumber))
	if !ok {
		return payment.Payment{}, storage.ErrNotFound
	}
	return p, nil
}

func (s *Store) ListPayments(_ context.Context) ([]payment.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payments.list(), nil
}

func (s *Store) ListPaymentsByCustomer(_ context.Context, customerNumber int) ([]payment.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []payment.Payment
	for _, p := range s.payments.list() {
		if p.CustomerNumber == customerNumber {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) UpdatePayment(_ context.Context, customerNumber int, checkNumber string, fields map[string]any) (payment.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments.get(key2(customerNumber, checkNumber))
	if !ok {
		return payment.Payment{}, storage.ErrNotFound
	}
	for col, v := range fields {
		switch col {
		case "payment_date":
			p.PaymentDate = v.(types.Date)
		case "amount":
			p.Amount = v.(float64)
		}
	}
	s.payments.put(key2(customerNumber, checkNumber), p)
	return p, nil
}

func (s *Store) DeletePayment(_ context.Context, customerNumber int, checkNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.payments.remove(key2(customerNumber, checkNumber)) {
		return storage.ErrNotFound
	}
	return nil
}
