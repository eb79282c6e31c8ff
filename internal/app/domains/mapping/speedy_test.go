package mapping

import (
	"reflect"
	"testing"
	"time"

	"sop/apiserver/internal/app/domains/apimodel/request"
	"sop/apiserver/internal/app/domains/entity/etorder"
	"sop/apiserver/internal/app/domains/entity/etsupplier"
)

func speedyRequest() *request.SpeedyOrderRequest {
	return &request.SpeedyOrderRequest{
		CustomerID: 42,
		OrderDate:  time.Date(2024, 1, 15, 10, 50, 0, 0, time.UTC),
		BillingAddress: &request.SpeedyAddress{
			StreetAddress: "123 Billing St",
			City:          "London",
			Region:        "Greater London",
			PostCode:      "SW1A 1AA",
			Country:       "United Kingdom",
		},
		Items: []*request.SpeedyOrderItem{
			{ProductID: 1, Qty: 5, UnitPrice: 29.99},
		},
	}
}

func TestSpeedyOrder_AddressFieldRename(t *testing.T) {
	order := SpeedyOrder(speedyRequest())

	want := &etorder.Address{
		Street:     "123 Billing St",
		City:       "London",
		County:     "Greater London",
		PostalCode: "SW1A 1AA",
		Country:    "United Kingdom",
	}
	if !reflect.DeepEqual(order.BillingAddress, want) {
		t.Fatalf("billing address = %+v, want %+v", order.BillingAddress, want)
	}
	if order.DeliveryAddress != nil {
		t.Fatalf("shipping absent in source, delivery address = %+v, want nil", order.DeliveryAddress)
	}
}

func TestSpeedyOrder_ItemFieldRename(t *testing.T) {
	order := SpeedyOrder(speedyRequest())

	if len(order.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(order.Items))
	}
	want := etorder.OrderItem{ProductID: 1, Quantity: 5, Price: 29.99}
	if order.Items[0] != want {
		t.Fatalf("item = %+v, want %+v", order.Items[0], want)
	}
}

func TestSpeedyOrder_CustomerIdentityAndProvenance(t *testing.T) {
	order := SpeedyOrder(speedyRequest())

	if order.CustomerID == nil || *order.CustomerID != 42 {
		t.Fatalf("customer id = %v, want 42", order.CustomerID)
	}
	if order.CustomerEmail != "" {
		t.Fatalf("customer email = %q, want empty", order.CustomerEmail)
	}
	if order.SupplierID != etsupplier.IDSpeedy {
		t.Fatalf("supplier id = %d, want %d", order.SupplierID, etsupplier.IDSpeedy)
	}
	if order.Status != etorder.OrderStatusReceived {
		t.Fatalf("status = %s, want RECEIVED", order.Status)
	}
	if err := order.Validate(); err != nil {
		t.Fatalf("mapped order invalid: %v", err)
	}
}

func TestSpeedyOrder_Idempotent(t *testing.T) {
	req := speedyRequest()
	first := SpeedyOrder(req)
	second := SpeedyOrder(req)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("mapping not idempotent:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestSpeedyOrder_NilItemsYieldEmptySlice(t *testing.T) {
	req := speedyRequest()
	req.Items = nil

	order := SpeedyOrder(req)
	if order.Items == nil {
		t.Fatal("items = nil, want empty slice")
	}
	if len(order.Items) != 0 {
		t.Fatalf("items = %d, want 0", len(order.Items))
	}
	if order.Total() != 0 {
		t.Fatalf("total = %v, want 0", order.Total())
	}
}

func TestSpeedyOrder_AbsentAddressesStayAbsent(t *testing.T) {
	req := speedyRequest()
	req.BillingAddress = nil
	req.ShippingAddress = nil

	order := SpeedyOrder(req)
	if order.BillingAddress != nil || order.DeliveryAddress != nil {
		t.Fatalf("addresses = %+v / %+v, want nil / nil", order.BillingAddress, order.DeliveryAddress)
	}
}

func TestSpeedyOrder_TimestampKeptUTC(t *testing.T) {
	req := speedyRequest()
	loc := time.FixedZone("CET", 3600)
	req.OrderDate = time.Date(2024, 1, 15, 11, 50, 0, 0, loc)

	order := SpeedyOrder(req)
	want := time.Date(2024, 1, 15, 10, 50, 0, 0, time.UTC)
	if !order.OrderDate.Equal(want) || order.OrderDate.Location() != time.UTC {
		t.Fatalf("order date = %v, want %v (UTC)", order.OrderDate, want)
	}
}

func TestSpeedyOrder_NilItemSkipped(t *testing.T) {
	req := speedyRequest()
	req.Items = append(req.Items, nil)

	order := SpeedyOrder(req)
	if len(order.Items) != 1 {
		t.Fatalf("items = %d, want 1 (nil element skipped)", len(order.Items))
	}
	if order.Total() != 5*29.99 {
		t.Fatalf("total = %v, want %v", order.Total(), 5*29.99)
	}
}
