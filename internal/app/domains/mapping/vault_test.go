package mapping

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"sop/apiserver/internal/app/domains/apimodel/request"
	"sop/apiserver/internal/app/domains/entity/etorder"
	"sop/apiserver/internal/app/domains/entity/etproduct"
	"sop/apiserver/internal/app/domains/entity/etsupplier"
)

var (
	vaultCodeA = uuid.MustParse("7f9c24e5-2b31-4bc0-bb7a-80a1b6e0c9d4")
	vaultCodeB = uuid.MustParse("3c1a8fd2-9e47-4f6b-a2d8-5b0c7e91f3a6")
)

func vaultRequest() *request.VaultOrderRequest {
	return &request.VaultOrderRequest{
		CustomerEmail:  "buyer@example.com",
		OrderTimestamp: 1705315800,
		DeliveryDetails: &request.VaultDeliveryDetails{
			Billing: &request.VaultLocation{
				AddressLine:   "456 Delivery Ave",
				CityName:      "Manchester",
				StateProvince: "Greater Manchester",
				ZipPostal:     "M1 1AE",
				CountryCode:   "GB",
			},
		},
		Items: []*request.VaultOrderItem{
			{ProductCode: vaultCodeA.String(), QuantityOrdered: 3, PricePerUnit: 15.50},
			{ProductCode: vaultCodeB.String(), QuantityOrdered: 1, PricePerUnit: 89.50},
		},
	}
}

func vaultResolver() (*Resolver, *fakeProductRepo) {
	repo := newFakeProductRepo(
		&etproduct.Product{ID: 10, Name: "Wireless Mouse", ProductCode: vaultCodeA},
		&etproduct.Product{ID: 20, Name: "Mechanical Keyboard", ProductCode: vaultCodeB},
	)
	return NewResolver(repo, nil, 0), repo
}

func TestVaultOrder_TimestampConversion(t *testing.T) {
	resolver, _ := vaultResolver()
	order, err := VaultOrder(context.Background(), resolver, vaultRequest())
	if err != nil {
		t.Fatalf("VaultOrder: %v", err)
	}

	want := time.Date(2024, 1, 15, 10, 50, 0, 0, time.UTC)
	if !order.OrderDate.Equal(want) {
		t.Fatalf("order date = %v, want %v", order.OrderDate, want)
	}
	if order.OrderDate.Location() != time.UTC {
		t.Fatalf("order date location = %v, want UTC", order.OrderDate.Location())
	}
}

func TestVaultOrder_CustomerIdentityAndProvenance(t *testing.T) {
	resolver, _ := vaultResolver()
	order, err := VaultOrder(context.Background(), resolver, vaultRequest())
	if err != nil {
		t.Fatalf("VaultOrder: %v", err)
	}

	if order.CustomerID != nil {
		t.Fatalf("customer id = %v, want nil", order.CustomerID)
	}
	if order.CustomerEmail != "buyer@example.com" {
		t.Fatalf("customer email = %q, want buyer@example.com", order.CustomerEmail)
	}
	if order.SupplierID != etsupplier.IDVault {
		t.Fatalf("supplier id = %d, want %d", order.SupplierID, etsupplier.IDVault)
	}
	if order.Status != etorder.OrderStatusReceived {
		t.Fatalf("status = %s, want RECEIVED", order.Status)
	}
	if err := order.Validate(); err != nil {
		t.Fatalf("mapped order invalid: %v", err)
	}
}

func TestVaultOrder_AddressFieldRename(t *testing.T) {
	resolver, _ := vaultResolver()
	order, err := VaultOrder(context.Background(), resolver, vaultRequest())
	if err != nil {
		t.Fatalf("VaultOrder: %v", err)
	}

	billing := order.BillingAddress
	if billing == nil {
		t.Fatal("billing address = nil, want present")
	}
	if billing.Street != "456 Delivery Ave" ||
		billing.City != "Manchester" ||
		billing.County != "Greater Manchester" ||
		billing.PostalCode != "M1 1AE" ||
		billing.Country != "GB" {
		t.Fatalf("billing address = %+v", billing)
	}
	// shipping 未出现在 deliveryDetails 中
	if order.DeliveryAddress != nil {
		t.Fatalf("delivery address = %+v, want nil", order.DeliveryAddress)
	}
}

func TestVaultOrder_AbsentDeliveryDetails(t *testing.T) {
	resolver, _ := vaultResolver()
	req := vaultRequest()
	req.DeliveryDetails = nil

	order, err := VaultOrder(context.Background(), resolver, req)
	if err != nil {
		t.Fatalf("VaultOrder: %v", err)
	}
	if order.BillingAddress != nil || order.DeliveryAddress != nil {
		t.Fatalf("addresses = %+v / %+v, want nil / nil", order.BillingAddress, order.DeliveryAddress)
	}
}

func TestVaultOrder_ResolvesCodesInOrder(t *testing.T) {
	resolver, _ := vaultResolver()
	order, err := VaultOrder(context.Background(), resolver, vaultRequest())
	if err != nil {
		t.Fatalf("VaultOrder: %v", err)
	}

	if len(order.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(order.Items))
	}
	if order.Items[0].ProductID != 10 || order.Items[0].Quantity != 3 || order.Items[0].Price != 15.50 {
		t.Fatalf("item 0 = %+v", order.Items[0])
	}
	if order.Items[1].ProductID != 20 || order.Items[1].Quantity != 1 || order.Items[1].Price != 89.50 {
		t.Fatalf("item 1 = %+v", order.Items[1])
	}
}

func TestVaultOrder_UnresolvedItemSilentlyDropped(t *testing.T) {
	resolver, _ := vaultResolver()
	req := vaultRequest()
	req.Items = append(req.Items, &request.VaultOrderItem{
		ProductCode:     uuid.New().String(),
		QuantityOrdered: 7,
		PricePerUnit:    99.99,
	})

	order, err := VaultOrder(context.Background(), resolver, req)
	if err != nil {
		t.Fatalf("VaultOrder: %v", err)
	}

	// 未解析的明细被跳过：两条保留，总额不含第三条
	if len(order.Items) != 2 {
		t.Fatalf("items = %d, want 2 (unresolved item dropped)", len(order.Items))
	}
	want := 3*15.50 + 1*89.50
	if order.Total() != want {
		t.Fatalf("total = %v, want %v", order.Total(), want)
	}
}

func TestVaultOrder_EmptyItems(t *testing.T) {
	resolver, _ := vaultResolver()
	req := vaultRequest()
	req.Items = nil

	order, err := VaultOrder(context.Background(), resolver, req)
	if err != nil {
		t.Fatalf("VaultOrder: %v", err)
	}
	if order.Items == nil || len(order.Items) != 0 {
		t.Fatalf("items = %v, want empty slice", order.Items)
	}
	if order.Total() != 0 {
		t.Fatalf("total = %v, want 0", order.Total())
	}
}

func TestVaultOrderWith_ReusesResolvedMap(t *testing.T) {
	// 预解析映射直接复用，不触发任何仓储查询
	resolved := map[uuid.UUID]*etproduct.Product{
		vaultCodeA: {ID: 10, ProductCode: vaultCodeA},
		vaultCodeB: {ID: 20, ProductCode: vaultCodeB},
	}

	order := VaultOrderWith(vaultRequest(), resolved)
	if len(order.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(order.Items))
	}
	if order.Items[0].ProductID != 10 || order.Items[1].ProductID != 20 {
		t.Fatalf("items = %+v", order.Items)
	}
}

func TestItemCodes_MalformedCodeFailsFast(t *testing.T) {
	items := []*request.VaultOrderItem{
		{ProductCode: "not-a-guid", QuantityOrdered: 1, PricePerUnit: 1},
	}
	if _, err := ItemCodes(items); err == nil {
		t.Fatal("malformed code accepted, want error")
	}
}

func TestItemCodes_NilItemSkipped(t *testing.T) {
	items := []*request.VaultOrderItem{
		nil,
		{ProductCode: vaultCodeA.String(), QuantityOrdered: 1, PricePerUnit: 1},
	}
	codes, err := ItemCodes(items)
	if err != nil {
		t.Fatalf("ItemCodes: %v", err)
	}
	if len(codes) != 1 || codes[0] != vaultCodeA {
		t.Fatalf("codes = %v, want [%s]", codes, vaultCodeA)
	}
}

func TestVaultOrder_NilItemSkipped(t *testing.T) {
	resolver, _ := vaultResolver()
	req := vaultRequest()
	req.Items = append(req.Items, nil)

	order, err := VaultOrder(context.Background(), resolver, req)
	if err != nil {
		t.Fatalf("VaultOrder: %v", err)
	}
	if len(order.Items) != 2 {
		t.Fatalf("items = %d, want 2 (nil element skipped)", len(order.Items))
	}
}
