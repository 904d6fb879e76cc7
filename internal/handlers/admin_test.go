package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tulisaja/tulisaja/storage/db"
)

func TestHandleStats(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()
	ctx := context.Background()

	userA, err := CreateTestUserWithEmail(queries, "pertama@example.com")
	require.NoError(t, err)
	userB, err := CreateTestUserWithEmail(queries, "kedua@example.com")
	require.NoError(t, err)

	seedContent(t, queries, userA, "Kopi Nusantara", "description", "", "Deskripsi kopi.")
	seedContent(t, queries, userA, "Kopi Nusantara", "caption", "instagram", "Caption kopi. #kopi")

	request, err := queries.CreateContentRequest(ctx, db.CreateContentRequestParams{
		ID:            ulid.Make().String(),
		UserID:        userB.ID,
		ProductName:   "Keripik Balado",
		CategoryID:    "makanan-minuman",
		Tone:          "casual",
		ContentTypeID: "description",
		Length:        "short",
		Variations:    1,
	})
	require.NoError(t, err)
	_, err = queries.CreateGeneratedContent(ctx, db.CreateGeneratedContentParams{
		ID:               uuid.New().String(),
		UserID:           userB.ID,
		RequestID:        request.ID,
		VariationIndex:   0,
		PromptText:       "Buatlah teks promosi untuk Keripik Balado",
		RawText:          "Keripik balado renyah.",
		ModelID:          "nova-pro-v1",
		PromptTokens:     120,
		CompletionTokens: 60,
		EstimatedCostUsd: 0.00021,
	})
	require.NoError(t, err)

	handler := NewAdminHandler(store)
	c, rec := NewTestContext(http.MethodGet, "/api/admin/stats", nil)

	require.NoError(t, handler.HandleStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var stats AdminStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.EqualValues(t, 2, stats.TotalUsers)
	assert.EqualValues(t, 2, stats.ActiveUsers)
	assert.EqualValues(t, 3, stats.TotalContents)
	assert.Equal(t, map[string]int64{"caption": 1, "description": 2}, stats.ContentsByType)
	assert.InDelta(t, 0.00021, stats.EstimatedCostUsd, 1e-9)
}

func TestHandleListUsers(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	userA, err := CreateTestUserWithEmail(queries, "pertama@example.com")
	require.NoError(t, err)
	_, err = CreateTestUserWithEmail(queries, "kedua@example.com")
	require.NoError(t, err)

	err = queries.UpdateUserLimits(context.Background(), db.UpdateUserLimitsParams{
		ID:                 userA.ID,
		DailyLimitOverride: nullInt64(50),
	})
	require.NoError(t, err)

	handler := NewAdminHandler(store)
	c, rec := NewTestContext(http.MethodGet, "/api/admin/users", nil)

	require.NoError(t, handler.HandleListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var users []AdminUserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 2)

	var withOverride *AdminUserResponse
	for i := range users {
		if users[i].ID == userA.ID {
			withOverride = &users[i]
		}
	}
	require.NotNil(t, withOverride)
	require.NotNil(t, withOverride.DailyLimitOverride)
	assert.EqualValues(t, 50, *withOverride.DailyLimitOverride)
	assert.Nil(t, withOverride.MonthlyLimitOverride)
}

func TestHandleUpdateUserLimits_SetAndClear(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	user, err := CreateTestUser(queries)
	require.NoError(t, err)

	handler := NewAdminHandler(store)

	c, rec := NewTestContext(http.MethodPut, "/api/admin/users/"+user.ID+"/limits", map[string]interface{}{
		"daily_limit":   50,
		"monthly_limit": 500,
	})
	c.SetParamNames("id")
	c.SetParamValues(user.ID)

	require.NoError(t, handler.HandleUpdateUserLimits(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp AdminUserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.DailyLimitOverride)
	assert.EqualValues(t, 50, *resp.DailyLimitOverride)
	require.NotNil(t, resp.MonthlyLimitOverride)
	assert.EqualValues(t, 500, *resp.MonthlyLimitOverride)

	c2, rec2 := NewTestContext(http.MethodPut, "/api/admin/users/"+user.ID+"/limits", map[string]interface{}{
		"daily_limit":   nil,
		"monthly_limit": nil,
	})
	c2.SetParamNames("id")
	c2.SetParamValues(user.ID)

	require.NoError(t, handler.HandleUpdateUserLimits(c2))
	assert.Equal(t, http.StatusOK, rec2.Code)

	var cleared AdminUserResponse
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &cleared))
	assert.Nil(t, cleared.DailyLimitOverride)
	assert.Nil(t, cleared.MonthlyLimitOverride)
}

func TestHandleUpdateUserLimits_NegativeRejected(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	user, err := CreateTestUser(queries)
	require.NoError(t, err)

	handler := NewAdminHandler(store)
	c, _ := NewTestContext(http.MethodPut, "/api/admin/users/"+user.ID+"/limits", map[string]interface{}{
		"daily_limit": -1,
	})
	c.SetParamNames("id")
	c.SetParamValues(user.ID)

	err = handler.HandleUpdateUserLimits(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestHandleUpdateUserLimits_UnknownUser(t *testing.T) {
	store, _, cleanup := NewTestDB()
	defer cleanup()

	handler := NewAdminHandler(store)
	c, _ := NewTestContext(http.MethodPut, "/api/admin/users/missing/limits", map[string]interface{}{
		"daily_limit": 10,
	})
	c.SetParamNames("id")
	c.SetParamValues(ulid.Make().String())

	err := handler.HandleUpdateUserLimits(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestHandleCreateCategory(t *testing.T) {
	store, _, cleanup := NewTestDB()
	defer cleanup()

	handler := NewAdminHandler(store)
	body := map[string]interface{}{"id": "kerajinan-kayu", "label": "Kerajinan Kayu", "sort_order": 9}

	c, rec := NewTestContext(http.MethodPost, "/api/admin/categories", body)
	require.NoError(t, handler.HandleCreateCategory(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	c2, _ := NewTestContext(http.MethodPost, "/api/admin/categories", body)
	err := handler.HandleCreateCategory(c2)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestHandleCreateCategory_MissingLabel(t *testing.T) {
	store, _, cleanup := NewTestDB()
	defer cleanup()

	handler := NewAdminHandler(store)
	c, _ := NewTestContext(http.MethodPost, "/api/admin/categories", map[string]interface{}{"id": "tanpa-label"})

	err := handler.HandleCreateCategory(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestHandleDeleteCategory(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	err := queries.CreateProductCategory(context.Background(), db.CreateProductCategoryParams{
		ID: "kerajinan-kayu", Label: "Kerajinan Kayu", SortOrder: 9,
	})
	require.NoError(t, err)

	handler := NewAdminHandler(store)
	c, rec := NewTestContext(http.MethodDelete, "/api/admin/categories/kerajinan-kayu", nil)
	c.SetParamNames("id")
	c.SetParamValues("kerajinan-kayu")

	require.NoError(t, handler.HandleDeleteCategory(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c2, _ := NewTestContext(http.MethodDelete, "/api/admin/categories/kerajinan-kayu", nil)
	c2.SetParamNames("id")
	c2.SetParamValues("kerajinan-kayu")

	err = handler.HandleDeleteCategory(c2)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestHandleDeleteCategory_InUse(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	user, err := CreateTestUser(queries)
	require.NoError(t, err)
	seedContent(t, queries, user, "Kopi Nusantara", "description", "", "Deskripsi kopi.")

	handler := NewAdminHandler(store)
	c, _ := NewTestContext(http.MethodDelete, "/api/admin/categories/makanan-minuman", nil)
	c.SetParamNames("id")
	c.SetParamValues("makanan-minuman")

	err = handler.HandleDeleteCategory(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestHandleCreateContentType(t *testing.T) {
	store, _, cleanup := NewTestDB()
	defer cleanup()

	handler := NewAdminHandler(store)
	c, rec := NewTestContext(http.MethodPost, "/api/admin/content-types", map[string]interface{}{
		"id": "promo-flash", "label": "Promo Kilat", "default_platform": "instagram", "max_variations": 3,
	})

	require.NoError(t, handler.HandleCreateContentType(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var opt ContentTypeOption
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opt))
	assert.Equal(t, "promo-flash", opt.ID)
	assert.Equal(t, "instagram", opt.DefaultPlatform)
	assert.EqualValues(t, 3, opt.MaxVariations)
}

func TestHandleCreateContentType_InvalidVariations(t *testing.T) {
	store, _, cleanup := NewTestDB()
	defer cleanup()

	handler := NewAdminHandler(store)
	c, _ := NewTestContext(http.MethodPost, "/api/admin/content-types", map[string]interface{}{
		"id": "promo-flash", "label": "Promo Kilat", "max_variations": 11,
	})

	err := handler.HandleCreateContentType(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestHandleUpdateContentType(t *testing.T) {
	store, _, cleanup := NewTestDB()
	defer cleanup()

	handler := NewAdminHandler(store)
	c, rec := NewTestContext(http.MethodPut, "/api/admin/content-types/headline", map[string]interface{}{
		"label": "Judul Iklan", "max_variations": 8,
	})
	c.SetParamNames("id")
	c.SetParamValues("headline")

	require.NoError(t, handler.HandleUpdateContentType(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var opt ContentTypeOption
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opt))
	assert.Equal(t, "Judul Iklan", opt.Label)
	assert.EqualValues(t, 8, opt.MaxVariations)
}

func TestHandleDeleteContentType_InUse(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	user, err := CreateTestUser(queries)
	require.NoError(t, err)
	seedContent(t, queries, user, "Kopi Nusantara", "caption", "instagram", "Caption kopi.")

	handler := NewAdminHandler(store)
	c, _ := NewTestContext(http.MethodDelete, "/api/admin/content-types/caption", nil)
	c.SetParamNames("id")
	c.SetParamValues("caption")

	err = handler.HandleDeleteContentType(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestHandlePurgeCache(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	admin, err := CreateTestUser(queries)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		err := queries.UpsertPromptCache(context.Background(), db.UpsertPromptCacheParams{
			ID:        ulid.Make().String(),
			CacheKey:  ulid.Make().String(),
			ModelID:   "nova-lite-v1",
			RawText:   "teks tersimpan",
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		})
		require.NoError(t, err)
	}

	handler := NewAdminHandler(store)
	c, rec := NewTestContext(http.MethodDelete, "/api/admin/cache", nil)
	SetTestUser(c, admin)

	require.NoError(t, handler.HandlePurgeCache(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body, err := AssertJSONResponse(rec)
	require.NoError(t, err)
	assert.EqualValues(t, 2, body["deleted"])
}

func nullInt64(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: true}
}
