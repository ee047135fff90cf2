package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"STOREHUB_BACK-END/internal/models"
	"STOREHUB_BACK-END/internal/store"
)

// clock hands out strictly increasing timestamps so created_at ordering
// is deterministic in tests.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *clock) next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type fakeUserStore struct {
	clock *clock
	users map[uuid.UUID]models.User
	fail  error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{clock: newClock(), users: map[uuid.UUID]models.User{}}
}

func (f *fakeUserStore) CreateUser(_ context.Context, u models.User) error {
	if f.fail != nil {
		return f.fail
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return store.ErrConflict
		}
	}
	u.CreatedAt = f.clock.next()
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserStore) EmailTaken(_ context.Context, email string) (bool, error) {
	if f.fail != nil {
		return false, f.fail
	}
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) UserByEmail(_ context.Context, email string) (models.User, error) {
	if f.fail != nil {
		return models.User{}, f.fail
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (f *fakeUserStore) UserByID(_ context.Context, id uuid.UUID) (models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	u.PasswordHash = ""
	return u, nil
}

func (f *fakeUserStore) ListUsers(_ context.Context) ([]models.User, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	users := []models.User{}
	for _, u := range f.users {
		u.PasswordHash = ""
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

type fakeCategoryStore struct {
	clock      *clock
	categories map[uuid.UUID]models.Category
	products   *fakeProductStore // FK action: delete nulls references
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{clock: newClock(), categories: map[uuid.UUID]models.Category{}}
}

func (f *fakeCategoryStore) ListCategories(_ context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	for _, c := range f.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

func (f *fakeCategoryStore) CategoryByID(_ context.Context, id uuid.UUID) (models.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return models.Category{}, store.ErrNotFound
	}
	return c, nil
}

func (f *fakeCategoryStore) CategoryExists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.categories[id]
	return ok, nil
}

func (f *fakeCategoryStore) CategoryNameTaken(_ context.Context, name string, exclude uuid.UUID) (bool, error) {
	for id, c := range f.categories {
		if c.Name == name && id != exclude {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryStore) CreateCategory(_ context.Context, id uuid.UUID, name string) error {
	for _, c := range f.categories {
		if c.Name == name {
			return store.ErrConflict
		}
	}
	f.categories[id] = models.Category{ID: id, Name: name, CreatedAt: f.clock.next()}
	return nil
}

func (f *fakeCategoryStore) RenameCategory(_ context.Context, id uuid.UUID, name string) error {
	c, ok := f.categories[id]
	if !ok {
		return store.ErrNotFound
	}
	for other, oc := range f.categories {
		if oc.Name == name && other != id {
			return store.ErrConflict
		}
	}
	c.Name = name
	f.categories[id] = c
	return nil
}

func (f *fakeCategoryStore) DeleteCategory(_ context.Context, id uuid.UUID) error {
	if _, ok := f.categories[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.categories, id)
	if f.products != nil {
		for pid, p := range f.products.products {
			if p.CategoryID != nil && *p.CategoryID == id {
				p.CategoryID = nil
				f.products.products[pid] = p
			}
		}
	}
	return nil
}

type fakeProductStore struct {
	clock      *clock
	products   map[uuid.UUID]models.Product
	categories *fakeCategoryStore // for the joined read view
}

func newFakeProductStore(categories *fakeCategoryStore) *fakeProductStore {
	f := &fakeProductStore{clock: newClock(), products: map[uuid.UUID]models.Product{}, categories: categories}
	if categories != nil {
		categories.products = f
	}
	return f
}

func (f *fakeProductStore) join(p models.Product) models.ProductWithCategory {
	joined := models.ProductWithCategory{Product: p}
	if p.CategoryID != nil && f.categories != nil {
		if c, ok := f.categories.categories[*p.CategoryID]; ok {
			name := c.Name
			joined.CategoryName = &name
		}
	}
	return joined
}

func (f *fakeProductStore) ListProducts(_ context.Context) ([]models.ProductWithCategory, error) {
	products := []models.ProductWithCategory{}
	for _, p := range f.products {
		products = append(products, f.join(p))
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (f *fakeProductStore) ProductByID(_ context.Context, id uuid.UUID) (models.ProductWithCategory, error) {
	p, ok := f.products[id]
	if !ok {
		return models.ProductWithCategory{}, store.ErrNotFound
	}
	return f.join(p), nil
}

func (f *fakeProductStore) CreateProduct(_ context.Context, id uuid.UUID, name string, categoryID *uuid.UUID) error {
	f.products[id] = models.Product{ID: id, Name: name, CategoryID: categoryID, CreatedAt: f.clock.next()}
	return nil
}

func (f *fakeProductStore) UpdateProduct(_ context.Context, id uuid.UUID, patch store.ProductPatch) error {
	p, ok := f.products[id]
	if !ok {
		return store.ErrNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.SetCategory {
		p.CategoryID = patch.CategoryID
	}
	f.products[id] = p
	return nil
}

func (f *fakeProductStore) DeleteProduct(_ context.Context, id uuid.UUID) error {
	if _, ok := f.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.products, id)
	return nil
}
