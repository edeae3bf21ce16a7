package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/rabbinur71/quickbite-frontend/internal/api"
)

// Service exposes the catalog operations against the upstream backend:
// public reads for the storefront and full CRUD for the admin console.
type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// --------------------------------------------------
// Menu items
// --------------------------------------------------

// MenuItems lists every menu item, unavailable ones included (admin view).
func (s *Service) MenuItems(ctx context.Context) ([]MenuItem, error) {
	var items []MenuItem
	if err := s.client.Get(ctx, "/menu-items", "Failed to fetch menu items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AvailableMenuItems lists only what the storefront may sell today.
func (s *Service) AvailableMenuItems(ctx context.Context) ([]MenuItem, error) {
	var items []MenuItem
	if err := s.client.Get(ctx, "/menu-items/available", "Failed to fetch menu items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) CreateMenuItem(ctx context.Context, fields map[string]string, images []*multipart.FileHeader) (*MenuItem, error) {
	body, contentType, err := encodeMultipart(fields, images)
	if err != nil {
		return nil, err
	}

	var item MenuItem
	if err := s.client.PostMultipart(ctx, "/menu-items", contentType, body, "Failed to create menu item", &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) UpdateMenuItem(ctx context.Context, id int, fields map[string]interface{}) (*MenuItem, error) {
	var item MenuItem
	path := fmt.Sprintf("/menu-items/%d", id)
	if err := s.client.Put(ctx, path, fields, "Failed to update menu item", &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) DeleteMenuItem(ctx context.Context, id int) error {
	path := fmt.Sprintf("/menu-items/%d", id)
	return s.client.Delete(ctx, path, "Failed to delete menu item", nil)
}

// --------------------------------------------------
// Special orders
// --------------------------------------------------

// SpecialOrders lists the publicly bookable packages.
func (s *Service) SpecialOrders(ctx context.Context) ([]SpecialOrder, error) {
	var orders []SpecialOrder
	if err := s.client.Get(ctx, "/special-orders", "Failed to fetch special orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// AllSpecialOrders lists every package, unavailable ones included (admin view).
func (s *Service) AllSpecialOrders(ctx context.Context) ([]SpecialOrder, error) {
	var orders []SpecialOrder
	if err := s.client.Get(ctx, "/special-orders/admin", "Failed to fetch special orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Service) CreateSpecialOrder(ctx context.Context, fields map[string]string, images []*multipart.FileHeader) (*SpecialOrder, error) {
	body, contentType, err := encodeMultipart(fields, images)
	if err != nil {
		return nil, err
	}

	var order SpecialOrder
	if err := s.client.PostMultipart(ctx, "/special-orders", contentType, body, "Failed to create special order", &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Service) UpdateSpecialOrder(ctx context.Context, id int, fields map[string]interface{}) (*SpecialOrder, error) {
	var order SpecialOrder
	path := fmt.Sprintf("/special-orders/%d", id)
	if err := s.client.Put(ctx, path, fields, "Failed to update special order", &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Service) DeleteSpecialOrder(ctx context.Context, id int) error {
	path := fmt.Sprintf("/special-orders/%d", id)
	return s.client.Delete(ctx, path, "Failed to delete special order", nil)
}

// encodeMultipart rebuilds the admin form as a multipart body for the
// upstream, fields first, then each image under the images key.
func encodeMultipart(fields map[string]string, images []*multipart.FileHeader) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	for _, header := range images {
		file, err := header.Open()
		if err != nil {
			return nil, "", err
		}

		part, err := writer.CreateFormFile("images", header.Filename)
		if err != nil {
			file.Close()
			return nil, "", err
		}
		if _, err := io.Copy(part, file); err != nil {
			file.Close()
			return nil, "", err
		}
		file.Close()
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}
