package handlers_test

import (
	"net/http"
	"testing"

	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

func orderPayload(total int) map[string]any {
	return map[string]any{
		"customerName": "João Souza",
		"total":        total,
		"items": []map[string]any{
			{"productId": 1, "name": "Ração Premium", "price": 24990, "quantity": 1},
			{"productId": 2, "name": "Mordedor", "price": 4990, "quantity": 2},
		},
	}
}

func TestCreateOrderAsGuest(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/api/orders", orderPayload(34970), nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d, body = %s", w.Code, w.Body.String())
	}

	var o models.Order
	decodeBody(t, w, &o)

	if o.ID == 0 || o.Status != "pending" {
		t.Fatalf("pedido = %+v", o)
	}
	if o.UserID != nil {
		t.Errorf("pedido de visitante não tem dono: %v", *o.UserID)
	}
	if len(o.Items) != 2 {
		t.Fatalf("itens = %+v", o.Items)
	}

	// snapshot dos itens exatamente como enviados
	first := o.Items[0]
	if first.ProductID != 1 || first.Name != "Ração Premium" || first.Price != 24990 || first.Quantity != 1 {
		t.Errorf("snapshot do item alterado: %+v", first)
	}
}

func TestCreateOrderStampsAuthenticatedUser(t *testing.T) {
	e := newEnv(t)
	user, cookie := e.seedUser(t, "joao@example.com", "secret123", "user")

	w := e.do(t, http.MethodPost, "/api/orders", orderPayload(34970), cookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d", w.Code)
	}

	var o models.Order
	decodeBody(t, w, &o)
	if o.UserID == nil || *o.UserID != user.ID {
		t.Fatalf("userId = %v, esperado %d", o.UserID, user.ID)
	}
}

func TestCreateOrderTotalMismatch(t *testing.T) {
	e := newEnv(t)

	// soma real é 34970
	w := e.do(t, http.MethodPost, "/api/orders", orderPayload(1), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400", w.Code)
	}
	var body map[string]any
	decodeBody(t, w, &body)
	if body["error_code"] != "total_mismatch" {
		t.Errorf("error_code = %v", body["error_code"])
	}

	// pedido rejeitado não persiste
	w = e.do(t, http.MethodGet, "/api/orders", nil, e.adminCookie(t))
	var listed []models.Order
	decodeBody(t, w, &listed)
	if len(listed) != 0 {
		t.Fatalf("pedido inválido foi persistido: %+v", listed)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	e := newEnv(t)

	cases := []struct {
		name    string
		payload map[string]any
	}{
		{"sem itens", map[string]any{
			"customerName": "João",
			"total":        0,
			"items":        []map[string]any{},
		}},
		{"quantidade zero", map[string]any{
			"customerName": "João",
			"total":        100,
			"items": []map[string]any{
				{"productId": 1, "name": "X", "price": 100, "quantity": 0},
			},
		}},
		{"preço negativo", map[string]any{
			"customerName": "João",
			"total":        0,
			"items": []map[string]any{
				{"productId": 1, "name": "X", "price": -5, "quantity": 1},
			},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := e.do(t, http.MethodPost, "/api/orders", tc.payload, nil)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, esperado 400", w.Code)
			}
		})
	}
}

func TestOrderStatusFlow(t *testing.T) {
	e := newEnv(t)
	admin := e.adminCookie(t)

	if w := e.do(t, http.MethodPost, "/api/orders", orderPayload(34970), nil); w.Code != http.StatusCreated {
		t.Fatalf("create = %d", w.Code)
	}

	// pending -> paid
	w := e.do(t, http.MethodPatch, "/api/orders/1/status", map[string]any{
		"status": "paid",
	}, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("pagar = %d, body = %s", w.Code, w.Body.String())
	}
	var paid models.Order
	decodeBody(t, w, &paid)
	if paid.Status != "paid" {
		t.Fatalf("status = %s", paid.Status)
	}

	// paid é terminal
	w = e.do(t, http.MethodPatch, "/api/orders/1/status", map[string]any{
		"status": "cancelled",
	}, admin)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("cancelar pedido pago = %d, esperado 400", w.Code)
	}
	var body map[string]any
	decodeBody(t, w, &body)
	if body["error_code"] != "invalid_state" {
		t.Errorf("error_code = %v", body["error_code"])
	}
}

func TestOrderStatusRejectsUnknownTarget(t *testing.T) {
	e := newEnv(t)
	admin := e.adminCookie(t)

	if w := e.do(t, http.MethodPost, "/api/orders", orderPayload(34970), nil); w.Code != http.StatusCreated {
		t.Fatalf("create = %d", w.Code)
	}

	w := e.do(t, http.MethodPatch, "/api/orders/1/status", map[string]any{
		"status": "shipped",
	}, admin)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400", w.Code)
	}
}

func TestOrderStatusNotFound(t *testing.T) {
	e := newEnv(t)
	admin := e.adminCookie(t)

	w := e.do(t, http.MethodPatch, "/api/orders/77/status", map[string]any{
		"status": "paid",
	}, admin)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, esperado 404", w.Code)
	}
}

func TestOrderListRequiresAdmin(t *testing.T) {
	e := newEnv(t)
	_, userCookie := e.seedUser(t, "cliente@example.com", "secret123", "user")

	if w := e.do(t, http.MethodGet, "/api/orders", nil, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("anônimo = %d, esperado 401", w.Code)
	}
	if w := e.do(t, http.MethodGet, "/api/orders", nil, userCookie); w.Code != http.StatusUnauthorized {
		t.Fatalf("usuário comum = %d, esperado 401", w.Code)
	}
}
