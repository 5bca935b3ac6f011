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

func reservationPayload(tableID uint) gin.H {
	return gin.H{
		"table_id":     tableID,
		"booking_time": time.Now().Add(30 * time.Minute).Format(time.RFC3339),
		"no_of_people": 2,
	}
}

func TestReservationExclusivity(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "billy", models.RoleCustomer)
	tableID := createTable(t, 1)

	w := doJSON(t, r, http.MethodPost, "/reservations", reservationPayload(tableID), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, models.TableReserved, tableStatus(t, tableID))

	// Second attempt must fail without touching the table or adding a row
	w = doJSON(t, r, http.MethodPost, "/reservations", reservationPayload(tableID), token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION", decodeBody(t, w)["code"])
	assert.Equal(t, models.TableReserved, tableStatus(t, tableID))

	var count int64
	config.DB.Model(&models.Reservation{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestReservationDeleteReleasesTable(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "billy", models.RoleCustomer)
	tableID := createTable(t, 1)

	w := doJSON(t, r, http.MethodPost, "/reservations", reservationPayload(tableID), token)
	require.Equal(t, http.StatusCreated, w.Code)
	resID := uint(decodeBody(t, w)["reservation"].(map[string]any)["id"].(float64))

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/reservations/%d", resID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	// Table is reservable again immediately
	assert.Equal(t, models.TableAvailable, tableStatus(t, tableID))
	w = doJSON(t, r, http.MethodPost, "/reservations", reservationPayload(tableID), token)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestReservationMoveToAnotherTable(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "billy", models.RoleCustomer)
	first := createTable(t, 1)
	second := createTable(t, 2)

	w := doJSON(t, r, http.MethodPost, "/reservations", reservationPayload(first), token)
	require.Equal(t, http.StatusCreated, w.Code)
	resID := uint(decodeBody(t, w)["reservation"].(map[string]any)["id"].(float64))

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/reservations/%d", resID), gin.H{"table_id": second}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, models.TableAvailable, tableStatus(t, first))
	assert.Equal(t, models.TableReserved, tableStatus(t, second))
}

func TestReservationMoveToReservedTableAppliesNothing(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "billy", models.RoleCustomer)
	first := createTable(t, 1)
	second := createTable(t, 2)

	w := doJSON(t, r, http.MethodPost, "/reservations", reservationPayload(first), token)
	require.Equal(t, http.StatusCreated, w.Code)
	resID := uint(decodeBody(t, w)["reservation"].(map[string]any)["id"].(float64))

	w = doJSON(t, r, http.MethodPost, "/reservations", reservationPayload(second), token)
	require.Equal(t, http.StatusCreated, w.Code)

	// Moving onto the taken table fails and no part of the patch lands
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/reservations/%d", resID), gin.H{
		"table_id":     second,
		"no_of_people": 9,
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION", decodeBody(t, w)["code"])

	var res models.Reservation
	require.NoError(t, config.DB.First(&res, resID).Error)
	assert.Equal(t, first, res.TableID)
	assert.Equal(t, 2, res.NoOfPeople)
	assert.Equal(t, models.TableReserved, tableStatus(t, first))
}

// Full journey from the registration desk to a released table
func TestRegisterLoginReserveScenario(t *testing.T) {
	r := setupServer(t)
	tableID := createTable(t, 1)

	w := doJSON(t, r, http.MethodPost, "/register", gin.H{
		"name": "userA", "email": "a@x.com", "password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/register", gin.H{
		"name": "userB", "email": "a@x.com", "password": "secret123",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "CONFLICT", decodeBody(t, w)["code"])

	w = doJSON(t, r, http.MethodPost, "/login", gin.H{"email": "a@x.com", "password": "nope-nope"}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/login", gin.H{"email": "a@x.com", "password": "secret123"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token := decodeBody(t, w)["token"].(string)

	w = doJSON(t, r, http.MethodPost, "/reservations", reservationPayload(tableID), token)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, models.TableReserved, tableStatus(t, tableID))
	resID := uint(decodeBody(t, w)["reservation"].(map[string]any)["id"].(float64))

	w = doJSON(t, r, http.MethodPost, "/reservations", reservationPayload(tableID), token)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/reservations/%d", resID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, models.TableAvailable, tableStatus(t, tableID))
}

func TestReservationRequiresAuth(t *testing.T) {
	r := setupServer(t)
	tableID := createTable(t, 1)

	w := doJSON(t, r, http.MethodPost, "/reservations", reservationPayload(tableID), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReservationOnMissingTable(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "billy", models.RoleCustomer)

	w := doJSON(t, r, http.MethodPost, "/reservations", reservationPayload(4242), token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION", decodeBody(t, w)["code"])
}
