package etorder

import (
	"testing"
	"time"
)

func TestOrder_Total(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{ProductID: 1, Quantity: 5, Price: 29.99},
			{ProductID: 2, Quantity: 2, Price: 10.00},
		},
	}
	want := 5*29.99 + 2*10.00
	if got := order.Total(); got != want {
		t.Fatalf("Total() = %v, want %v", got, want)
	}
}

func TestOrder_Total_EmptyAndNilItems(t *testing.T) {
	empty := &Order{Items: []OrderItem{}}
	if got := empty.Total(); got != 0 {
		t.Fatalf("empty items: Total() = %v, want 0", got)
	}

	var nilItems Order
	if got := nilItems.Total(); got != 0 {
		t.Fatalf("nil items: Total() = %v, want 0", got)
	}
}

func TestOrder_Validate_CustomerRefExclusivity(t *testing.T) {
	id := int64(42)

	both := &Order{SupplierID: 1, CustomerID: &id, CustomerEmail: "a@b.com"}
	if err := both.Validate(); err != ErrMissingCustomerRef {
		t.Fatalf("both refs set: err = %v, want ErrMissingCustomerRef", err)
	}

	neither := &Order{SupplierID: 1}
	if err := neither.Validate(); err != ErrMissingCustomerRef {
		t.Fatalf("no refs set: err = %v, want ErrMissingCustomerRef", err)
	}

	idOnly := &Order{SupplierID: 1, CustomerID: &id}
	if err := idOnly.Validate(); err != nil {
		t.Fatalf("id only: err = %v, want nil", err)
	}

	emailOnly := &Order{SupplierID: 2, CustomerEmail: "a@b.com"}
	if err := emailOnly.Validate(); err != nil {
		t.Fatalf("email only: err = %v, want nil", err)
	}
}

func TestOrder_TransitionTo(t *testing.T) {
	order := &Order{Status: OrderStatusReceived, UpdatedAt: time.Now()}

	if err := order.TransitionTo(OrderStatusPicking); err != nil {
		t.Fatalf("RECEIVED -> PICKING: %v", err)
	}
	if order.Status != OrderStatusPicking {
		t.Fatalf("status = %s, want PICKING", order.Status)
	}

	// 跳级推进不允许
	if err := order.TransitionTo(OrderStatusDelivered); err != ErrInvalidStatusTransition {
		t.Fatalf("PICKING -> DELIVERED: err = %v, want ErrInvalidStatusTransition", err)
	}

	// 回退不允许
	if err := order.TransitionTo(OrderStatusReceived); err != ErrInvalidStatusTransition {
		t.Fatalf("PICKING -> RECEIVED: err = %v, want ErrInvalidStatusTransition", err)
	}

	if err := order.TransitionTo(OrderStatusDispatched); err != nil {
		t.Fatalf("PICKING -> DISPATCHED: %v", err)
	}
	if err := order.TransitionTo(OrderStatusDelivered); err != nil {
		t.Fatalf("DISPATCHED -> DELIVERED: %v", err)
	}
}
