package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omsayari/sayari-api/internal/application/auth"
	"github.com/omsayari/sayari-api/internal/application/dto"
	"github.com/omsayari/sayari-api/internal/application/usecase"
	"github.com/omsayari/sayari-api/internal/domain/entity"
	"github.com/omsayari/sayari-api/internal/infrastructure/memory"
	"github.com/omsayari/sayari-api/internal/infrastructure/pdf"
	apphttp "github.com/omsayari/sayari-api/internal/interfaces/http"
)

const testAdminPassword = "clave-de-test"

// buildTestApp construye una app Fiber completa sobre el store en memoria.
func buildTestApp(t *testing.T) (*fiber.App, *memory.ItemRepo) {
	t.Helper()
	repo := memory.NewItemRepository()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ItemUC:   usecase.NewItemUseCase(repo),
		ExportUC: usecase.NewExportUseCase(repo, "Om The Flirter"),
		PDF:      pdf.NewMarotoExportGenerator(),
		Verifier: auth.NewStaticSecretVerifier(testAdminPassword, ""),
		AppTitle: "Om The Flirter",
	})
	return app, repo
}

// seedItem inserta un item directo en el store con fecha controlada.
func seedItem(t *testing.T, repo *memory.ItemRepo, content string, cat entity.Category, at time.Time) *entity.Item {
	t.Helper()
	item := &entity.Item{
		ID:        uuid.New().String(),
		Content:   content,
		Category:  cat,
		CreatedAt: at,
	}
	require.NoError(t, repo.Create(context.Background(), item))
	return item
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, password string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if password != "" {
		req.Header.Set("x-admin-password", password)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeItem(t *testing.T, resp *http.Response) dto.ItemResponse {
	t.Helper()
	defer resp.Body.Close()
	var out dto.ItemResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeItems(t *testing.T, resp *http.Response) []dto.ItemResponse {
	t.Helper()
	defer resp.Body.Close()
	var out []dto.ItemResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// Ciclo completo: crear → listar → editar con clave mala → editar bien → borrar.
func TestItems_CicloCompleto(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/items",
		dto.CreateItemRequest{Content: "hi", Category: "flirting"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	created := decodeItem(t, resp)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "flirting", created.Category)

	resp = doJSON(t, app, http.MethodGet, "/api/items/flirting", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeItems(t, resp)
	require.NotEmpty(t, list)
	assert.Equal(t, created.ID, list[0].ID, "el item nuevo debe listar primero")

	// Clave incorrecta: 401 y el contenido queda intacto.
	resp = doJSON(t, app, http.MethodPut, "/api/items/"+created.ID,
		dto.UpdateItemRequest{Content: "bye"}, "clave-incorrecta")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/items/flirting", nil, "")
	list = decodeItems(t, resp)
	assert.Equal(t, "hi", list[0].Content, "la mutación rechazada no debe tocar el store")

	// Clave correcta: contenido nuevo, categoría y fecha intactas.
	resp = doJSON(t, app, http.MethodPut, "/api/items/"+created.ID,
		dto.UpdateItemRequest{Content: "bye"}, testAdminPassword)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeItem(t, resp)
	assert.Equal(t, "bye", updated.Content)
	assert.Equal(t, created.Category, updated.Category)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt), "createdAt es inmutable")

	resp = doJSON(t, app, http.MethodDelete, "/api/items/"+created.ID, nil, testAdminPassword)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/items/flirting", nil, "")
	assert.Empty(t, decodeItems(t, resp), "el item borrado no debe listar")
}

func TestItems_CrearSinContenido_Retorna400(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/items",
		dto.CreateItemRequest{Content: "   ", Category: "mix"}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestItems_CrearCategoriaDesconocida_Retorna400(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/items",
		dto.CreateItemRequest{Content: "hola", Category: "otra"}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_CATEGORY")
}

func TestItems_ListarCategoriaDesconocida_Retorna400(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/items/desconocida", nil, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestItems_ListAll_OrdenMasRecientePrimero(t *testing.T) {
	app, repo := buildTestApp(t)
	base := time.Now()
	seedItem(t, repo, "viejo", entity.CategoryFlirting, base.Add(-2*time.Hour))
	seedItem(t, repo, "medio", entity.CategorySayari, base.Add(-time.Hour))
	seedItem(t, repo, "nuevo", entity.CategoryMix, base)

	resp := doJSON(t, app, http.MethodGet, "/api/items", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeItems(t, resp)
	require.Len(t, list, 3)
	assert.Equal(t, "nuevo", list[0].Content)
	assert.Equal(t, "medio", list[1].Content)
	assert.Equal(t, "viejo", list[2].Content)
}

func TestItems_UpdateSinHeader_Retorna401SinMutacion(t *testing.T) {
	app, repo := buildTestApp(t)
	item := seedItem(t, repo, "original", entity.CategorySayari, time.Now())

	resp := doJSON(t, app, http.MethodPut, "/api/items/"+item.ID,
		dto.UpdateItemRequest{Content: "cambiado"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	stored, err := repo.ListByCategory(context.Background(), entity.CategorySayari)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "original", stored[0].Content)
}

func TestItems_UpdateIdMalformado_Retorna400(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPut, "/api/items/no-es-uuid",
		dto.UpdateItemRequest{Content: "x"}, testAdminPassword)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_ID")
}

func TestItems_UpdateIdInexistente_Retorna404(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPut, "/api/items/"+uuid.New().String(),
		dto.UpdateItemRequest{Content: "x"}, testAdminPassword)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

// Borrar dos veces el mismo id: la segunda es un 404 limpio, nunca un crash.
func TestItems_DeleteDosVeces_SegundaRetorna404(t *testing.T) {
	app, repo := buildTestApp(t)
	item := seedItem(t, repo, "efímero", entity.CategoryMix, time.Now())

	resp := doJSON(t, app, http.MethodDelete, "/api/items/"+item.ID, nil, testAdminPassword)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/items/"+item.ID, nil, testAdminPassword)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestItems_DeleteSinHeader_Retorna401SinMutacion(t *testing.T) {
	app, repo := buildTestApp(t)
	item := seedItem(t, repo, "protegido", entity.CategoryFlirting, time.Now())

	resp := doJSON(t, app, http.MethodDelete, "/api/items/"+item.ID, nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	stored, err := repo.ListByCategory(context.Background(), entity.CategoryFlirting)
	require.NoError(t, err)
	assert.Len(t, stored, 1, "el item debe seguir en el store")
}
