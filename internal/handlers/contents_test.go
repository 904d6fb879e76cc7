package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tulisaja/tulisaja/storage/db"
)

// seedContent creates a completed content request with one generated row.
func seedContent(t *testing.T, queries *db.Queries, user *db.User, productName, contentTypeID, platform, text string) db.GeneratedContent {
	t.Helper()
	ctx := context.Background()

	request, err := queries.CreateContentRequest(ctx, db.CreateContentRequestParams{
		ID:            ulid.Make().String(),
		UserID:        user.ID,
		ProductName:   productName,
		CategoryID:    "makanan-minuman",
		Tone:          "casual",
		ContentTypeID: contentTypeID,
		Platform:      sql.NullString{String: platform, Valid: platform != ""},
		Length:        "medium",
		Variations:    1,
	})
	require.NoError(t, err)

	content, err := queries.CreateGeneratedContent(ctx, db.CreateGeneratedContentParams{
		ID:             uuid.New().String(),
		UserID:         user.ID,
		RequestID:      request.ID,
		VariationIndex: 0,
		PromptText:     "Buatlah teks promosi untuk " + productName,
		RawText:        text,
		ModelID:        "nova-lite-v1",
		PromptTokens:   100,
	})
	require.NoError(t, err)
	return content
}

func TestHandleListContents_Pagination(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewContentsHandler(store)
	user, err := CreateTestUser(queries)
	require.NoError(t, err)

	for i := 0; i < 12; i++ {
		seedContent(t, queries, user, "Kopi Nusantara", "description", "", "Teks promosi nomor sekian.")
	}

	c, rec := NewTestContext(http.MethodGet, "/api/contents", nil)
	SetTestUser(c, user)

	require.NoError(t, handler.HandleListContents(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body, err := AssertJSONResponse(rec)
	require.NoError(t, err)
	assert.EqualValues(t, 12, body["total"])
	assert.EqualValues(t, 2, body["total_pages"])
	assert.Len(t, body["contents"], 10, "default page size is 10")
}

func TestHandleListContents_Filters(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewContentsHandler(store)
	user, err := CreateTestUser(queries)
	require.NoError(t, err)

	seedContent(t, queries, user, "Kopi Nusantara", "description", "", "Deskripsi kopi.")
	seedContent(t, queries, user, "Keripik Balado", "caption", "instagram", "Caption pedas! #keripik")
	seedContent(t, queries, user, "Keripik Balado", "caption", "tiktok", "Caption buat fyp.")

	cases := []struct {
		name  string
		query string
		want  int
	}{
		{"by content type", "content_type=caption", 2},
		{"by platform", "platform=instagram", 1},
		{"by search on product name", "search=keripik", 2},
		{"by search on text", "search=fyp", 1},
		{"no match", "search=sepatu", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := NewTestContext(http.MethodGet, "/api/contents?"+tc.query, nil)
			SetTestUser(c, user)

			require.NoError(t, handler.HandleListContents(c))
			body, err := AssertJSONResponse(rec)
			require.NoError(t, err)
			assert.EqualValues(t, tc.want, body["total"])
		})
	}
}

func TestHandleListContents_FavoritesOnly(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewContentsHandler(store)
	user, err := CreateTestUser(queries)
	require.NoError(t, err)

	starred := seedContent(t, queries, user, "Kopi Nusantara", "description", "", "Favorit saya.")
	seedContent(t, queries, user, "Kopi Nusantara", "description", "", "Biasa saja.")

	_, err = queries.ToggleGeneratedContentFavorite(context.Background(), db.ToggleGeneratedContentFavoriteParams{
		ID: starred.ID, UserID: user.ID,
	})
	require.NoError(t, err)

	c, rec := NewTestContext(http.MethodGet, "/api/contents?favorites=true", nil)
	SetTestUser(c, user)

	require.NoError(t, handler.HandleListContents(c))
	body, err := AssertJSONResponse(rec)
	require.NoError(t, err)
	assert.EqualValues(t, 1, body["total"])
}

func TestHandleListContents_ScopedToOwner(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewContentsHandler(store)
	owner, err := CreateTestUserWithEmail(queries, "owner@example.com")
	require.NoError(t, err)
	other, err := CreateTestUserWithEmail(queries, "other@example.com")
	require.NoError(t, err)

	seedContent(t, queries, owner, "Kopi Nusantara", "description", "", "Milik owner.")

	c, rec := NewTestContext(http.MethodGet, "/api/contents", nil)
	SetTestUser(c, other)

	require.NoError(t, handler.HandleListContents(c))
	body, err := AssertJSONResponse(rec)
	require.NoError(t, err)
	assert.EqualValues(t, 0, body["total"], "users never see each other's contents")
}

func TestHandleGetContent_WithStats(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewContentsHandler(store)
	user, err := CreateTestUser(queries)
	require.NoError(t, err)

	content := seedContent(t, queries, user, "Kopi Nusantara", "caption", "instagram", "Kopi mantap banget! Yuk cobain. #kopi #ngopi")

	c, rec := NewTestContext(http.MethodGet, "/api/contents/"+content.ID, nil)
	SetTestUser(c, user)
	c.SetParamNames("id")
	c.SetParamValues(content.ID)

	require.NoError(t, handler.HandleGetContent(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body, err := AssertJSONResponse(rec)
	require.NoError(t, err)
	assert.Equal(t, "Kopi Nusantara", body["product_name"])
	assert.Equal(t, "instagram", body["platform"])
	assert.NotEmpty(t, body["prompt_text"])

	stats, ok := body["stats"].(map[string]interface{})
	require.True(t, ok, "detail response carries analyzer stats")
	assert.EqualValues(t, 7, stats["word_count"])
	hashtags, ok := stats["hashtags"].([]interface{})
	require.True(t, ok)
	assert.Len(t, hashtags, 2)
}

func TestHandleGetContent_NotFound(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewContentsHandler(store)
	user, err := CreateTestUser(queries)
	require.NoError(t, err)

	c, _ := NewTestContext(http.MethodGet, "/api/contents/tidak-ada", nil)
	SetTestUser(c, user)
	c.SetParamNames("id")
	c.SetParamValues("tidak-ada")

	err = handler.HandleGetContent(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestHandleUpdateContent_EditPreservesRawText(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewContentsHandler(store)
	user, err := CreateTestUser(queries)
	require.NoError(t, err)

	content := seedContent(t, queries, user, "Kopi Nusantara", "description", "", "Teks asli dari model.")

	c, rec := NewTestContext(http.MethodPut, "/api/contents/"+content.ID, map[string]interface{}{
		"edited_text": "Teks yang sudah saya rapikan.",
	})
	SetTestUser(c, user)
	c.SetParamNames("id")
	c.SetParamValues(content.ID)

	require.NoError(t, handler.HandleUpdateContent(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body, err := AssertJSONResponse(rec)
	require.NoError(t, err)
	assert.Equal(t, "Teks asli dari model.", body["raw_text"], "raw text survives edits")
	assert.Equal(t, "Teks yang sudah saya rapikan.", body["edited_text"])
	assert.Equal(t, "Teks yang sudah saya rapikan.", body["display_text"])
}

func TestHandleUpdateContent_ClearEdit(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewContentsHandler(store)
	user, err := CreateTestUser(queries)
	require.NoError(t, err)

	content := seedContent(t, queries, user, "Kopi Nusantara", "description", "", "Teks asli.")

	edit := func(text string) map[string]interface{} {
		return map[string]interface{}{"edited_text": text}
	}

	c, _ := NewTestContext(http.MethodPut, "/api/contents/"+content.ID, edit("Versi edit."))
	SetTestUser(c, user)
	c.SetParamNames("id")
	c.SetParamValues(content.ID)
	require.NoError(t, handler.HandleUpdateContent(c))

	c2, rec := NewTestContext(http.MethodPut, "/api/contents/"+content.ID, edit(""))
	SetTestUser(c2, user)
	c2.SetParamNames("id")
	c2.SetParamValues(content.ID)
	require.NoError(t, handler.HandleUpdateContent(c2))

	body, err := AssertJSONResponse(rec)
	require.NoError(t, err)
	assert.Nil(t, body["edited_text"], "empty edit clears back to raw text")
	assert.Equal(t, "Teks asli.", body["display_text"])
}

func TestHandleUpdateContent_Rating(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewContentsHandler(store)
	user, err := CreateTestUser(queries)
	require.NoError(t, err)

	content := seedContent(t, queries, user, "Kopi Nusantara", "description", "", "Teks asli.")

	c, rec := NewTestContext(http.MethodPut, "/api/contents/"+content.ID, map[string]interface{}{
		"quality_rating": 4,
	})
	SetTestUser(c, user)
	c.SetParamNames("id")
	c.SetParamValues(content.ID)

	require.NoError(t, handler.HandleUpdateContent(c))
	body, err := AssertJSONResponse(rec)
	require.NoError(t, err)
	assert.EqualValues(t, 4, body["quality_rating"])
}

func TestHandleUpdateContent_InvalidRating(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewContentsHandler(store)
	user, err := CreateTestUser(queries)
	require.NoError(t, err)

	content := seedContent(t, queries, user, "Kopi Nusantara", "description", "", "Teks asli.")

	c, _ := NewTestContext(http.MethodPut, "/api/contents/"+content.ID, map[string]interface{}{
		"quality_rating": 7,
	})
	SetTestUser(c, user)
	c.SetParamNames("id")
	c.SetParamValues(content.ID)

	err = handler.HandleUpdateContent(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestHandleToggleFavorite(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewContentsHandler(store)
	user, err := CreateTestUser(queries)
	require.NoError(t, err)

	content := seedContent(t, queries, user, "Kopi Nusantara", "description", "", "Teks.")

	toggle := func() map[string]interface{} {
		c, rec := NewTestContext(http.MethodPost, "/api/contents/"+content.ID+"/favorite", nil)
		SetTestUser(c, user)
		c.SetParamNames("id")
		c.SetParamValues(content.ID)
		require.NoError(t, handler.HandleToggleFavorite(c))
		body, err := AssertJSONResponse(rec)
		require.NoError(t, err)
		return body
	}

	assert.Equal(t, true, toggle()["is_favorite"])
	assert.Equal(t, false, toggle()["is_favorite"])
}

func TestHandleMarkCopied(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewContentsHandler(store)
	user, err := CreateTestUser(queries)
	require.NoError(t, err)

	content := seedContent(t, queries, user, "Kopi Nusantara", "description", "", "Teks.")

	c, rec := NewTestContext(http.MethodPost, "/api/contents/"+content.ID+"/copied", nil)
	SetTestUser(c, user)
	c.SetParamNames("id")
	c.SetParamValues(content.ID)

	require.NoError(t, handler.HandleMarkCopied(c))
	body, err := AssertJSONResponse(rec)
	require.NoError(t, err)
	assert.EqualValues(t, 1, body["copy_count"])
}

func TestHandleDeleteContent(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewContentsHandler(store)
	user, err := CreateTestUser(queries)
	require.NoError(t, err)

	content := seedContent(t, queries, user, "Kopi Nusantara", "description", "", "Teks.")

	c, rec := NewTestContext(http.MethodDelete, "/api/contents/"+content.ID, nil)
	SetTestUser(c, user)
	c.SetParamNames("id")
	c.SetParamValues(content.ID)

	require.NoError(t, handler.HandleDeleteContent(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c2, _ := NewTestContext(http.MethodDelete, "/api/contents/"+content.ID, nil)
	SetTestUser(c2, user)
	c2.SetParamNames("id")
	c2.SetParamValues(content.ID)

	err = handler.HandleDeleteContent(c2)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestHandleDeleteContent_OtherUsersContent(t *testing.T) {
	store, queries, cleanup := NewTestDB()
	defer cleanup()

	handler := NewContentsHandler(store)
	owner, err := CreateTestUserWithEmail(queries, "owner@example.com")
	require.NoError(t, err)
	other, err := CreateTestUserWithEmail(queries, "other@example.com")
	require.NoError(t, err)

	content := seedContent(t, queries, owner, "Kopi Nusantara", "description", "", "Teks.")

	c, _ := NewTestContext(http.MethodDelete, "/api/contents/"+content.ID, nil)
	SetTestUser(c, other)
	c.SetParamNames("id")
	c.SetParamValues(content.ID)

	err = handler.HandleDeleteContent(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.Code, "ownership mismatch reads as not found")
}
