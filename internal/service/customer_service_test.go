package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rmussard/easyloc-api/internal/model"
)

func TestCustomerCreate(t *testing.T) {
	store := newFakeCustomerStore()
	svc := NewCustomerService(store, &fakeContractRefs{})

	customer, err := svc.Create(context.Background(), CreateCustomerInput{
		FirstName:    "  Jean ",
		LastName:     "Dupont",
		Address:      "12 rue des Lilas",
		PermitNumber: "B123456",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if customer.FirstName != "Jean" {
		t.Fatalf("expected trimmed first name, got %q", customer.FirstName)
	}
	if customer.ID.IsZero() {
		t.Fatal("expected an assigned id")
	}
}

func TestCustomerCreateDuplicateName(t *testing.T) {
	store := newFakeCustomerStore(model.Customer{
		ID:        primitive.NewObjectID(),
		FirstName: "Jean",
		LastName:  "Dupont",
	})
	svc := NewCustomerService(store, &fakeContractRefs{})

	_, err := svc.Create(context.Background(), CreateCustomerInput{
		FirstName:    "Jean",
		LastName:     "Dupont",
		Address:      "12 rue des Lilas",
		PermitNumber: "B123456",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestCustomerCreateMissingField(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerStore(), &fakeContractRefs{})

	_, err := svc.Create(context.Background(), CreateCustomerInput{
		FirstName: "Jean",
		LastName:  "   ",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCustomerGetByName(t *testing.T) {
	store := newFakeCustomerStore(model.Customer{
		ID:        primitive.NewObjectID(),
		FirstName: "Jean",
		LastName:  "Dupont",
	})
	svc := NewCustomerService(store, &fakeContractRefs{})

	customer, err := svc.GetByName(context.Background(), " Dupont ", "Jean")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if customer.LastName != "Dupont" {
		t.Fatalf("got %q", customer.LastName)
	}

	if _, err := svc.GetByName(context.Background(), "Martin", "Paul"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetByName(context.Background(), "Dupont", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCustomerUpdateUnknownField(t *testing.T) {
	id := primitive.NewObjectID()
	store := newFakeCustomerStore(model.Customer{ID: id, FirstName: "Jean", LastName: "Dupont"})
	svc := NewCustomerService(store, &fakeContractRefs{})

	_, err := svc.Update(context.Background(), id.Hex(), map[string]interface{}{"shoe_size": 42})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCustomerDeleteMalformedID(t *testing.T) {
	store := newFakeCustomerStore()
	refs := &fakeContractRefs{}
	svc := NewCustomerService(store, refs)

	_, err := svc.Delete(context.Background(), "zz")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if refs.calls != 0 {
		t.Fatalf("shape check must reject before any store call, got %d", refs.calls)
	}
}

func TestCustomerDeleteGuard(t *testing.T) {
	id := primitive.NewObjectID()
	store := newFakeCustomerStore(model.Customer{ID: id, FirstName: "Jean", LastName: "Dupont"})
	refs := &fakeContractRefs{byCustomer: map[string]bool{id.Hex(): true}}
	svc := NewCustomerService(store, refs)

	if _, err := svc.Delete(context.Background(), id.Hex()); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict while contracts reference the customer, got %v", err)
	}
	if _, ok := store.customers[id.Hex()]; !ok {
		t.Fatal("guarded customer must not be deleted")
	}

	refs.byCustomer[id.Hex()] = false
	customer, err := svc.Delete(context.Background(), id.Hex())
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if customer.ID != id {
		t.Fatalf("expected the deleted customer back, got %s", customer.ID.Hex())
	}
	if len(store.customers) != 0 {
		t.Fatal("customer should be gone")
	}
}

func TestCustomerDeleteNotFound(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerStore(), &fakeContractRefs{})

	_, err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
