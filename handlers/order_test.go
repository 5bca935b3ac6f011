package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"food-court-api/config"
	"food-court-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLifecycle(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "billy", models.RoleCustomer)

	// Total price is whatever the caller says it is
	w := doJSON(t, r, http.MethodPost, "/orders", gin.H{"total_price": 850}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decodeBody(t, w)["order"].(map[string]any)
	orderID := uint(order["id"].(float64))
	assert.Equal(t, "pending", order["status"])
	assert.EqualValues(t, 850, order["total_price"])

	var before models.Order
	require.NoError(t, config.DB.First(&before, orderID).Error)

	// Patching status leaves total and creation time alone
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/orders/%d", orderID), gin.H{"status": "confirmed"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var after models.Order
	require.NoError(t, config.DB.First(&after, orderID).Error)
	assert.Equal(t, "confirmed", after.Status)
	assert.Equal(t, before.TotalPrice, after.TotalPrice)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/orders/%d", orderID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderItemsSubtotalDefault(t *testing.T) {
	r := setupServer(t)
	adminToken := registerUser(t, r, "root", models.RoleAdmin)
	ownerToken := registerUser(t, r, "mary", models.RoleOwner)
	custToken := registerUser(t, r, "billy", models.RoleCustomer)
	_, _, itemID := buildFoodCourt(t, r, adminToken, ownerToken)

	w := doJSON(t, r, http.MethodPost, "/orders", nil, custToken)
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := uint(decodeBody(t, w)["order"].(map[string]any)["id"].(float64))

	// Subtotal defaults to quantity * menu price when omitted
	w = doJSON(t, r, http.MethodPost, "/order-items", gin.H{
		"order_id": orderID, "menuitem_id": itemID, "quantity": 2,
	}, custToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	line := decodeBody(t, w)["order_item"].(map[string]any)
	assert.EqualValues(t, 700, line["sub_total"])

	// A caller-supplied subtotal wins
	w = doJSON(t, r, http.MethodPost, "/order-items", gin.H{
		"order_id": orderID, "menuitem_id": itemID, "quantity": 1, "sub_total": 42.5,
	}, custToken)
	require.Equal(t, http.StatusCreated, w.Code)
	line = decodeBody(t, w)["order_item"].(map[string]any)
	assert.EqualValues(t, 42.5, line["sub_total"])
}

func TestDeleteOrderCascadesItemsButKeepsReservation(t *testing.T) {
	r := setupServer(t)
	adminToken := registerUser(t, r, "root", models.RoleAdmin)
	ownerToken := registerUser(t, r, "mary", models.RoleOwner)
	custToken := registerUser(t, r, "billy", models.RoleCustomer)
	_, _, itemID := buildFoodCourt(t, r, adminToken, ownerToken)
	tableID := createTable(t, 1)

	w := doJSON(t, r, http.MethodPost, "/orders", nil, custToken)
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := uint(decodeBody(t, w)["order"].(map[string]any)["id"].(float64))

	w = doJSON(t, r, http.MethodPost, "/order-items", gin.H{
		"order_id": orderID, "menuitem_id": itemID, "quantity": 1,
	}, custToken)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/reservations", gin.H{
		"table_id":     tableID,
		"booking_time": time.Now().Add(time.Hour).Format(time.RFC3339),
		"order_id":     orderID,
	}, custToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resID := uint(decodeBody(t, w)["reservation"].(map[string]any)["id"].(float64))

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/orders/%d", orderID), nil, custToken)
	require.Equal(t, http.StatusOK, w.Code)

	// Lines are gone; the reservation survives with its order unlinked
	var lines int64
	config.DB.Model(&models.OrderItem{}).Where("order_id = ?", orderID).Count(&lines)
	assert.Zero(t, lines)

	var res models.Reservation
	require.NoError(t, config.DB.First(&res, resID).Error)
	assert.Nil(t, res.OrderID)
}

func TestOrdersAreScopedToOwner(t *testing.T) {
	r := setupServer(t)
	billyToken := registerUser(t, r, "billy", models.RoleCustomer)
	agnesToken := registerUser(t, r, "agnes", models.RoleCustomer)
	adminToken := registerUser(t, r, "root", models.RoleAdmin)

	w := doJSON(t, r, http.MethodPost, "/orders", gin.H{"total_price": 100}, billyToken)
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := uint(decodeBody(t, w)["order"].(map[string]any)["id"].(float64))

	// Agnes sees an empty list and cannot read billy's order
	w = doJSON(t, r, http.MethodGet, "/orders", nil, agnesToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["orders"])

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), nil, agnesToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin sees everything
	w = doJSON(t, r, http.MethodGet, "/orders", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["orders"], 1)
}
