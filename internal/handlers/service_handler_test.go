package handlers_test

import (
	"net/http"
	"testing"

	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

func TestServiceCreateAndList(t *testing.T) {
	e := newEnv(t)
	admin := e.adminCookie(t)

	w := e.do(t, http.MethodPost, "/api/services", map[string]any{
		"name":        "Banho Completo",
		"description": "Lavagem, secagem e corte de unhas.",
		"price":       6000,
		"duration":    60,
		"imageUrl":    "https://example.com/banho.jpg",
	}, admin)
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d, body = %s", w.Code, w.Body.String())
	}
	var created models.Service
	decodeBody(t, w, &created)
	if created.DurationMin != 60 || created.Price != 6000 {
		t.Fatalf("serviço criado = %+v", created)
	}

	// listagem é pública
	w = e.do(t, http.MethodGet, "/api/services", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	var listed []models.Service
	decodeBody(t, w, &listed)
	if len(listed) != 1 || listed[0].Name != "Banho Completo" {
		t.Fatalf("listagem = %+v", listed)
	}
}

func TestServiceUpdatePartial(t *testing.T) {
	e := newEnv(t)
	admin := e.adminCookie(t)

	w := e.do(t, http.MethodPost, "/api/services", map[string]any{
		"name":        "Tosa Higiênica",
		"description": "Corte dos pelos.",
		"price":       4000,
		"duration":    30,
		"imageUrl":    "https://example.com/tosa.jpg",
	}, admin)
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d", w.Code)
	}

	w = e.do(t, http.MethodPut, "/api/services/1", map[string]any{
		"price": 4500,
	}, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("update = %d, body = %s", w.Code, w.Body.String())
	}
	var updated models.Service
	decodeBody(t, w, &updated)
	if updated.Price != 4500 || updated.DurationMin != 30 || updated.Name != "Tosa Higiênica" {
		t.Fatalf("update parcial alterou demais: %+v", updated)
	}
}

func TestServiceUpdateNotFound(t *testing.T) {
	e := newEnv(t)
	admin := e.adminCookie(t)

	w := e.do(t, http.MethodPut, "/api/services/42", map[string]any{"price": 100}, admin)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, esperado 404", w.Code)
	}
}

func TestServiceAdminGate(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/api/services", map[string]any{
		"name":        "X",
		"description": "X",
		"price":       100,
		"duration":    10,
		"imageUrl":    "https://example.com/x.jpg",
	}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, esperado 401", w.Code)
	}
}
