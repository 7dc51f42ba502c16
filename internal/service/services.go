package service

import (
	"github.com/rs/zerolog"

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

// Services holds one service per resource, all backed by the same store.
type Services struct {
	Offices      *CRUD[office.Office, string]
	Employees    *CRUD[employee.Employee, int]
	Customers    *CRUD[customer.Customer, int]
	Orders       *CRUD[order.Order, int]
	Products     *CRUD[product.Product, string]
	ProductLines *CRUD[productline.ProductLine, string]
	OrderDetails *CompositeCRUD[orderdetail.OrderDetail, int, string]
	Payments     *CompositeCRUD[payment.Payment, int, string]
}

// New wires every resource service to the given store.
func New(store storage.Store, log zerolog.Logger) *Services {
	return &Services{
		Offices: NewCRUD("offices", Ops[office.Office, string]{
			List:   store.ListOffices,
			Get:    store.GetOffice,
			Create: store.CreateOffice,
			Update: store.UpdateOffice,
			Delete: store.DeleteOffice,
		}, log),
		Employees: NewCRUD("employees", Ops[employee.Employee, int]{
			List:   store.ListEmployees,
			Get:    store.GetEmployee,
			Create: store.CreateEmployee,
			Update: store.UpdateEmployee,
			Delete: store.DeleteEmployee,
		}, log),
		Customers: NewCRUD("customers", Ops[customer.Customer, int]{
			List:   store.ListCustomers,
			Get:    store.GetCustomer,
			Create: store.CreateCustomer,
			Update: store.UpdateCustomer,
			Delete: store.DeleteCustomer,
		}, log),
		Orders: NewCRUD("orders", Ops[order.Order, int]{
			List:   store.ListOrders,
			Get:    store.GetOrder,
			Create: store.CreateOrder,
			Update: store.UpdateOrder,
			Delete: store.DeleteOrder,
		}, log),
		Products: NewCRUD("products", Ops[product.Product, string]{
			List:   store.ListProducts,
			Get:    store.GetProduct,
			Create: store.CreateProduct,
			Update: store.UpdateProduct,
			Delete: store.DeleteProduct,
		}, log),
		ProductLines: NewCRUD("product_lines", Ops[productline.ProductLine, string]{
			List:   store.ListProductLines,
			Get:    store.GetProductLine,
			Create: store.CreateProductLine,
			Update: store.UpdateProductLine,
			Delete: store.DeleteProductLine,
		}, log),
		OrderDetails: NewCompositeCRUD("order_details", CompositeOps[orderdetail.OrderDetail, int, string]{
			List:         store.ListOrderDetails,
			ListByParent: store.ListOrderDetailsByOrder,
			Get:          store.GetOrderDetail,
			Create:       store.CreateOrderDetail,
			Update:       store.UpdateOrderDetail,
			Delete:       store.DeleteOrderDetail,
		}, log),
		Payments: NewCompositeCRUD("payments", CompositeOps[payment.Payment, int, string]{
			List:         store.ListPayments,
			ListByParent: store.ListPaymentsByCustomer,
			Get:          store.GetPayment,
			Create:       store.CreatePayment,
			Update:       store.UpdatePayment,
			Delete:       store.DeletePayment,
		}, log),
	}
}
