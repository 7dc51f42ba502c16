package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/classicmodels/api/internal/domain/customer"
	"github.com/classicmodels/api/internal/domain/office"
	"github.com/classicmodels/api/internal/domain/orderdetail"
	"github.com/classicmodels/api/internal/domain/payment"
	"github.com/classicmodels/api/internal/storage"
	"github.com/classicmodels/api/internal/types"
)

func strptr(s string) *string { return &s }

func TestOfficeLifecycle(t *testing.T) {
	store := New()
	ctx := context.Background()

	created, err := store.CreateOffice(ctx, office.Office{
		OfficeCode: "NYC",
		City:       "New York",
		Phone:      strptr("+1 212 555 0100"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.OfficeCode != "NYC" {
		t.Fatalf("unexpected code %q", created.OfficeCode)
	}

	got, err := store.GetOffice(ctx, "NYC")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.City != "New York" {
		t.Fatalf("unexpected city %q", got.City)
	}

	updated, err := store.UpdateOffice(ctx, "NYC", map[string]any{"city": "New York City"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.City != "New York City" {
		t.Fatalf("city not updated: %q", updated.City)
	}
	if updated.Phone == nil || *updated.Phone != "+1 212 555 0100" {
		t.Fatal("untouched field should keep its value")
	}

	if err := store.DeleteOffice(ctx, "NYC"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetOffice(ctx, "NYC"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.DeleteOffice(ctx, "NYC"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestCustomerNumberAssignment(t *testing.T) {
	store := New()
	ctx := context.Background()

	first, err := store.CreateCustomer(ctx, testCustomer("Alpha Models"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := store.CreateCustomer(ctx, testCustomer("Beta Models"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.CustomerNumber == 0 || second.CustomerNumber == 0 {
		t.Fatal("expected customer numbers to be assigned")
	}
	if first.CustomerNumber == second.CustomerNumber {
		t.Fatalf("numbers must be distinct, both were %d", first.CustomerNumber)
	}
}

func TestCreateDuplicateKeyConflicts(t *testing.T) {
	store := New()
	ctx := context.Background()

	if _, err := store.CreateOffice(ctx, office.Office{OfficeCode: "NYC", City: "New York"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.CreateOffice(ctx, office.Office{OfficeCode: "NYC", City: "Boston"}); !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate office, got %v", err)
	}
	got, err := store.GetOffice(ctx, "NYC")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.City != "New York" {
		t.Fatalf("duplicate create must not overwrite, city is %q", got.City)
	}

	date := types.NewDate(2024, time.March, 5)
	if _, err := store.CreatePayment(ctx, payment.Payment{
		CustomerNumber: 7, CheckNumber: "CHK-1", PaymentDate: date, Amount: 50,
	}); err != nil {
		t.Fatalf("create payment: %v", err)
	}
	if _, err := store.CreatePayment(ctx, payment.Payment{
		CustomerNumber: 7, CheckNumber: "CHK-1", PaymentDate: date, Amount: 99,
	}); !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate payment, got %v", err)
	}

	created, err := store.CreateCustomer(ctx, testCustomer("Alpha Models"))
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	dup := testCustomer("Beta Models")
	dup.CustomerNumber = created.CustomerNumber
	if _, err := store.CreateCustomer(ctx, dup); !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate customer number, got %v", err)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	store := New()
	ctx := context.Background()

	for _, code := range []string{"PAR", "TYO", "SFO"} {
		if _, err := store.CreateOffice(ctx, office.Office{OfficeCode: code, City: code}); err != nil {
			t.Fatalf("create %s: %v", code, err)
		}
	}

	offices, err := store.ListOffices(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(offices) != 3 {
		t.Fatalf("expected 3 offices, got %d", len(offices))
	}
	for i, want := range []string{"PAR", "TYO", "SFO"} {
		if offices[i].OfficeCode != want {
			t.Fatalf("offices[%d] = %q, want %q", i, offices[i].OfficeCode, want)
		}
	}
}

func TestPaymentsCompositeKey(t *testing.T) {
	store := New()
	ctx := context.Background()
	date := types.NewDate(2024, time.January, 1)

	if _, err := store.CreatePayment(ctx, payment.Payment{
		CustomerNumber: 1, CheckNumber: "A1", PaymentDate: date, Amount: 100,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.CreatePayment(ctx, payment.Payment{
		CustomerNumber: 1, CheckNumber: "A2", PaymentDate: date, Amount: 250,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.CreatePayment(ctx, payment.Payment{
		CustomerNumber: 2, CheckNumber: "A1", PaymentDate: date, Amount: 75,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.GetPayment(ctx, 1, "A1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Amount != 100 {
		t.Fatalf("unexpected amount %v", got.Amount)
	}

	byCustomer, err := store.ListPaymentsByCustomer(ctx, 1)
	if err != nil {
		t.Fatalf("list by customer: %v", err)
	}
	if len(byCustomer) != 2 {
		t.Fatalf("expected 2 payments for customer 1, got %d", len(byCustomer))
	}

	updated, err := store.UpdatePayment(ctx, 1, "A1", map[string]any{"amount": 125.0})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Amount != 125 {
		t.Fatalf("amount not updated: %v", updated.Amount)
	}

	if err := store.DeletePayment(ctx, 1, "A1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetPayment(ctx, 1, "A1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// The sibling rows sharing one key component must survive.
	if _, err := store.GetPayment(ctx, 1, "A2"); err != nil {
		t.Fatalf("sibling payment lost: %v", err)
	}
	if _, err := store.GetPayment(ctx, 2, "A1"); err != nil {
		t.Fatalf("payment of other customer lost: %v", err)
	}
}

func TestOrderDetailsByOrder(t *testing.T) {
	store := New()
	ctx := context.Background()

	details := []orderdetail.OrderDetail{
		{OrderNumber: 10, ProductCode: "S10_1678", QuantityOrdered: 2, PriceEach: 95.7, OrderLineNumber: 1},
		{OrderNumber: 10, ProductCode: "S10_2016", QuantityOrdered: 1, PriceEach: 119, OrderLineNumber: 2},
		{OrderNumber: 11, ProductCode: "S10_1678", QuantityOrdered: 5, PriceEach: 90, OrderLineNumber: 1},
	}
	for _, d := range details {
		if _, err := store.CreateOrderDetail(ctx, d); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	forOrder, err := store.ListOrderDetailsByOrder(ctx, 10)
	if err != nil {
		t.Fatalf("list by order: %v", err)
	}
	if len(forOrder) != 2 {
		t.Fatalf("expected 2 details for order 10, got %d", len(forOrder))
	}
}

func testCustomer(name string) customer.Customer {
	return customer.Customer{
		CustomerName:     name,
		ContactLastName:  "Doe",
		ContactFirstName: "Jan",
		Phone:            "555-0100",
		AddressLine1:     "1 Main St",
		City:             "Springfield",
		Country:          "USA",
	}
}
