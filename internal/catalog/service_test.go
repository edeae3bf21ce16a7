package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rabbinur71/quickbite-frontend/internal/api"
	"github.com/rabbinur71/quickbite-frontend/internal/localstore"
)

func newTestService(handler http.HandlerFunc) (*Service, *httptest.Server) {
	backend := httptest.NewServer(handler)
	client := api.NewClient(backend.URL, localstore.NewMemoryStore())
	return NewService(client), backend
}

func TestAvailableMenuItems(t *testing.T) {
	service, backend := newTestService(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/menu-items/available" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode([]MenuItem{
			{ID: 1, Name: "Paratha", Price: 2.5, Category: "breakfast", IsAvailable: true, ImageURLs: []string{"/paratha.jpg"}},
		})
	})
	defer backend.Close()

	items, err := service.AvailableMenuItems(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Paratha" || !items[0].IsAvailable {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestMenuItemsAdminPath(t *testing.T) {
	var gotPath string
	service, backend := newTestService(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]MenuItem{})
	})
	defer backend.Close()

	if _, err := service.MenuItems(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/menu-items" {
		t.Errorf("expected admin list path, got %s", gotPath)
	}
}

func TestSpecialOrdersPaths(t *testing.T) {
	var gotPath string
	service, backend := newTestService(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]SpecialOrder{})
	})
	defer backend.Close()

	ctx := context.Background()
	if _, err := service.SpecialOrders(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/special-orders" {
		t.Errorf("public list hit %s", gotPath)
	}

	if _, err := service.AllSpecialOrders(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/special-orders/admin" {
		t.Errorf("admin list hit %s", gotPath)
	}
}

func TestCreateMenuItemForwardsMultipart(t *testing.T) {
	var gotName, gotPrice string
	var gotImages int
	service, backend := newTestService(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		gotName = r.FormValue("name")
		gotPrice = r.FormValue("price")
		gotImages = len(r.MultipartForm.File["images"])
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(MenuItem{ID: 7, Name: gotName})
	})
	defer backend.Close()

	item, err := service.CreateMenuItem(context.Background(), map[string]string{
		"name":  "Paratha",
		"price": "2.50",
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotName != "Paratha" || gotPrice != "2.50" {
		t.Errorf("fields not forwarded: name=%q price=%q", gotName, gotPrice)
	}
	if gotImages != 0 {
		t.Errorf("expected no images, backend saw %d", gotImages)
	}
	if item.ID != 7 {
		t.Errorf("created item not decoded: %+v", item)
	}
}

func TestUpdateMenuItemSendsJSON(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody map[string]interface{}
	service, backend := newTestService(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(MenuItem{ID: 3, Name: "Updated"})
	})
	defer backend.Close()

	item, err := service.UpdateMenuItem(context.Background(), 3, map[string]interface{}{
		"name":         "Updated",
		"is_available": false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotMethod != http.MethodPut || gotPath != "/menu-items/3" {
		t.Errorf("unexpected request: %s %s", gotMethod, gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("unexpected content type %q", gotContentType)
	}
	if gotBody["name"] != "Updated" {
		t.Errorf("body not forwarded: %v", gotBody)
	}
	if item.Name != "Updated" {
		t.Errorf("response not decoded: %+v", item)
	}
}

func TestDeleteSpecialOrder(t *testing.T) {
	var gotMethod, gotPath string
	service, backend := newTestService(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
	})
	defer backend.Close()

	if err := service.DeleteSpecialOrder(context.Background(), 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/special-orders/9" {
		t.Errorf("unexpected request: %s %s", gotMethod, gotPath)
	}
}

func TestListErrorCarriesFallback(t *testing.T) {
	service, backend := newTestService(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer backend.Close()

	_, err := service.MenuItems(context.Background())

	var reqErr *api.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Message != "Failed to fetch menu items" {
		t.Errorf("unexpected message %q", reqErr.Message)
	}
}
