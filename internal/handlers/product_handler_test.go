package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/PatinhasPetShop01/petshop-api/internal/domain/catalog"
	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

func seedProduct(t *testing.T, e *env, name, category string, price int) *models.Product {
	t.Helper()
	p := &models.Product{
		Name:        name,
		Description: "desc",
		Price:       price,
		Category:    category,
		ImageURL:    "https://example.com/p.jpg",
	}
	if err := e.products.Create(context.Background(), p); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func TestProductCRUD(t *testing.T) {
	e := newEnv(t)
	admin := e.adminCookie(t)

	// create
	w := e.do(t, http.MethodPost, "/api/products", map[string]any{
		"name":        "Ração Premium",
		"description": "Ração de alta qualidade.",
		"price":       24990,
		"category":    "Ração",
		"imageUrl":    "https://example.com/racao.jpg",
	}, admin)
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d, body = %s", w.Code, w.Body.String())
	}
	var created models.Product
	decodeBody(t, w, &created)
	if created.ID == 0 || created.Price != 24990 {
		t.Fatalf("produto criado = %+v", created)
	}

	// list público
	w = e.do(t, http.MethodGet, "/api/products", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	var listed []models.Product
	decodeBody(t, w, &listed)
	if len(listed) != 1 || listed[0].Name != "Ração Premium" {
		t.Fatalf("listagem = %+v", listed)
	}

	// get público
	w = e.do(t, http.MethodGet, "/api/products/1", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get = %d", w.Code)
	}

	// update parcial: só o nome muda, preço fica
	w = e.do(t, http.MethodPut, "/api/products/1", map[string]any{
		"name": "Ração Premium 15kg",
	}, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("update = %d, body = %s", w.Code, w.Body.String())
	}
	var updated models.Product
	decodeBody(t, w, &updated)
	if updated.Name != "Ração Premium 15kg" || updated.Price != 24990 {
		t.Fatalf("update parcial alterou demais: %+v", updated)
	}

	// delete
	if w = e.do(t, http.MethodDelete, "/api/products/1", nil, admin); w.Code != http.StatusNoContent {
		t.Fatalf("delete = %d", w.Code)
	}
	if w = e.do(t, http.MethodGet, "/api/products/1", nil, nil); w.Code != http.StatusNotFound {
		t.Fatalf("get após delete = %d, esperado 404", w.Code)
	}
}

func TestProductCategoryFilterIsExact(t *testing.T) {
	e := newEnv(t)
	seedProduct(t, e, "Ração Premium", "Ração", 24990)
	seedProduct(t, e, "Mordedor", "Brinquedos", 4990)

	cases := []struct {
		query string
		want  int
	}{
		{"/api/products", 2},
		{"/api/products?category=Ra%C3%A7%C3%A3o", 1},
		{"/api/products?category=Brinquedos", 1},
		// comparação sensível a maiúsculas: "brinquedos" não casa
		{"/api/products?category=brinquedos", 0},
		{"/api/products?category=Inexistente", 0},
	}

	for _, tc := range cases {
		w := e.do(t, http.MethodGet, tc.query, nil, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s = %d", tc.query, w.Code)
		}
		var listed []models.Product
		decodeBody(t, w, &listed)
		if len(listed) != tc.want {
			t.Errorf("%s devolveu %d produtos, esperado %d", tc.query, len(listed), tc.want)
		}
	}
}

func TestProductGetNotFound(t *testing.T) {
	e := newEnv(t)

	for _, path := range []string{"/api/products/999", "/api/products/abc", "/api/products/0"} {
		w := e.do(t, http.MethodGet, path, nil, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("GET %s = %d, esperado 404", path, w.Code)
		}
	}
}

func TestProductDeleteIsIdempotent(t *testing.T) {
	e := newEnv(t)
	admin := e.adminCookie(t)

	w := e.do(t, http.MethodDelete, "/api/products/999", nil, admin)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete de produto inexistente = %d, esperado 204", w.Code)
	}
}

func TestProductAdminGate(t *testing.T) {
	e := newEnv(t)
	_, userCookie := e.seedUser(t, "cliente@example.com", "secret123", "user")

	cases := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"anônimo", nil},
		{"usuário comum", userCookie},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := e.do(t, http.MethodPost, "/api/products", map[string]any{
				"name":        "X",
				"description": "X",
				"price":       100,
				"category":    "X",
				"imageUrl":    "https://example.com/x.jpg",
			}, tc.cookie)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, esperado 401", w.Code)
			}

			// o gate barra antes de qualquer efeito colateral
			listed, _ := e.products.List(context.Background(), catalog.ProductFilter{})
			if len(listed) != 0 {
				t.Fatalf("requisição barrada criou produto: %+v", listed)
			}
		})
	}
}

func TestProductUploadImageDisabled(t *testing.T) {
	e := newEnv(t)
	admin := e.adminCookie(t)
	seedProduct(t, e, "Ração", "Ração", 100)

	// sem uploader configurado a rota existe mas responde indisponível
	w := e.do(t, http.MethodPost, "/api/products/1/image", nil, admin)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, esperado 503", w.Code)
	}
	var body map[string]any
	decodeBody(t, w, &body)
	if body["error_code"] != "uploads_disabled" {
		t.Errorf("error_code = %v", body["error_code"])
	}
}

func TestProductCreateValidation(t *testing.T) {
	e := newEnv(t)
	admin := e.adminCookie(t)

	w := e.do(t, http.MethodPost, "/api/products", map[string]any{
		"name":        "Ração",
		"description": "desc",
		"price":       -1,
		"category":    "Ração",
		"imageUrl":    "https://example.com/x.jpg",
	}, admin)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("preço negativo = %d, esperado 400", w.Code)
	}
}
