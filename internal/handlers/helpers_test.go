package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"STOREHUB_BACK-END/internal/config"
	"STOREHUB_BACK-END/internal/middleware"
	"STOREHUB_BACK-END/internal/models"
	"STOREHUB_BACK-END/internal/service"
	"STOREHUB_BACK-END/internal/store"
)

// memStore is an in-memory stand-in for the Postgres gateway, backing
// the full route table so handler tests can drive real request flows.
type memStore struct {
	now        time.Time
	users      map[uuid.UUID]models.User
	categories map[uuid.UUID]models.Category
	products   map[uuid.UUID]models.Product
}

func newMemStore() *memStore {
	return &memStore{
		now:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:      map[uuid.UUID]models.User{},
		categories: map[uuid.UUID]models.Category{},
		products:   map[uuid.UUID]models.Product{},
	}
}

func (m *memStore) tick() time.Time {
	m.now = m.now.Add(time.Second)
	return m.now
}

func (m *memStore) CreateUser(_ context.Context, u models.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return store.ErrConflict
		}
	}
	u.CreatedAt = m.tick()
	m.users[u.ID] = u
	return nil
}

func (m *memStore) EmailTaken(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) UserByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (m *memStore) UserByID(_ context.Context, id uuid.UUID) (models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	u.PasswordHash = ""
	return u, nil
}

func (m *memStore) ListUsers(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		u.PasswordHash = ""
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) ListCategories(_ context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memStore) CategoryByID(_ context.Context, id uuid.UUID) (models.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return models.Category{}, store.ErrNotFound
	}
	return c, nil
}

func (m *memStore) CategoryNameTaken(_ context.Context, name string, exclude uuid.UUID) (bool, error) {
	for _, c := range m.categories {
		if c.Name == name && c.ID != exclude {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) CategoryExists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.categories[id]
	return ok, nil
}

func (m *memStore) CreateCategory(_ context.Context, id uuid.UUID, name string) error {
	if taken, _ := m.CategoryNameTaken(context.Background(), name, uuid.Nil); taken {
		return store.ErrConflict
	}
	m.categories[id] = models.Category{ID: id, Name: name, CreatedAt: m.tick()}
	return nil
}

func (m *memStore) RenameCategory(_ context.Context, id uuid.UUID, name string) error {
	c, ok := m.categories[id]
	if !ok {
		return store.ErrNotFound
	}
	if taken, _ := m.CategoryNameTaken(context.Background(), name, id); taken {
		return store.ErrConflict
	}
	c.Name = name
	m.categories[id] = c
	return nil
}

func (m *memStore) DeleteCategory(_ context.Context, id uuid.UUID) error {
	if _, ok := m.categories[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.categories, id)
	// ON DELETE SET NULL
	for pid, p := range m.products {
		if p.CategoryID != nil && *p.CategoryID == id {
			p.CategoryID = nil
			m.products[pid] = p
		}
	}
	return nil
}

func (m *memStore) join(p models.Product) models.ProductWithCategory {
	joined := models.ProductWithCategory{Product: p}
	if p.CategoryID != nil {
		if c, ok := m.categories[*p.CategoryID]; ok {
			joined.CategoryName = &c.Name
		}
	}
	return joined
}

func (m *memStore) ListProducts(_ context.Context) ([]models.ProductWithCategory, error) {
	out := make([]models.ProductWithCategory, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, m.join(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) ProductByID(_ context.Context, id uuid.UUID) (models.ProductWithCategory, error) {
	p, ok := m.products[id]
	if !ok {
		return models.ProductWithCategory{}, store.ErrNotFound
	}
	return m.join(p), nil
}

func (m *memStore) CreateProduct(_ context.Context, id uuid.UUID, name string, categoryID *uuid.UUID) error {
	m.products[id] = models.Product{ID: id, Name: name, CategoryID: categoryID, CreatedAt: m.tick()}
	return nil
}

func (m *memStore) UpdateProduct(_ context.Context, id uuid.UUID, patch store.ProductPatch) error {
	p, ok := m.products[id]
	if !ok {
		return store.ErrNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.SetCategory {
		p.CategoryID = patch.CategoryID
	}
	m.products[id] = p
	return nil
}

func (m *memStore) DeleteProduct(_ context.Context, id uuid.UUID) error {
	if _, ok := m.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

// newTestMux wires the handlers under test onto a mux over a fresh
// in-memory store, mirroring the production route table.
func newTestMux() (*http.ServeMux, *memStore) {
	st := newMemStore()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TokenTTL = time.Hour
	cfg.Auth.BcryptCost = bcrypt.MinCost

	authHandler := NewAuthHandler(service.NewUserService(st, cfg))
	categoryHandler := NewCategoryHandler(service.NewCategoryService(st))
	productHandler := NewProductHandler(service.NewProductService(st, st))

	mux := http.NewServeMux()
	mux.HandleFunc("/api/signup", authHandler.Signup)
	mux.HandleFunc("/api/login", authHandler.Login)
	mux.HandleFunc("/api/users", authHandler.ListUsers)
	mux.HandleFunc("/api/me", middleware.AuthMiddleware(authHandler.Me, &cfg.JWT))
	mux.HandleFunc("/api/categories", categoryHandler.Categories)
	mux.HandleFunc("/api/categories/", categoryHandler.CategoryByID)
	mux.HandleFunc("/api/products", productHandler.Products)
	mux.HandleFunc("/api/products/", productHandler.ProductByID)
	return mux, st
}

// doJSON performs a request against the mux and decodes the JSON body
// into a generic map. Requests without a body pass an empty string.
func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string) (int, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	var decoded map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding %s %s response %q: %v", method, path, w.Body.String(), err)
	}
	return w.Code, decoded
}
