package http_test

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omsayari/sayari-api/internal/domain/entity"
)

func TestExport_CategoriaVacia_TotalCero(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/export/sayari", nil, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(body)

	assert.Contains(t, text, "Om The Flirter - Sayari")
	assert.Contains(t, text, "Total Items: 0")
	assert.NotContains(t, text, "1.", "sin items no debe haber entradas numeradas")
}

func TestExport_ListaNumeradaMasRecientePrimero(t *testing.T) {
	app, repo := buildTestApp(t)
	base := time.Now()
	seedItem(t, repo, "primero en entrar", entity.CategoryFlirting, base.Add(-time.Hour))
	seedItem(t, repo, "último en entrar", entity.CategoryFlirting, base)

	resp := doJSON(t, app, http.MethodGet, "/api/export/flirting", nil, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	text := string(body)

	assert.Contains(t, text, "Total Items: 2")
	assert.Contains(t, text, "1. último en entrar")
	assert.Contains(t, text, "2. primero en entrar")

	disposition := resp.Header.Get("Content-Disposition")
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, "flirting-")
	assert.Contains(t, disposition, ".txt")
}

func TestExport_CategoriaInvalida_Retorna400(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/export/otra", nil, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExport_PDF_AdjuntoConFirmaPDF(t *testing.T) {
	app, repo := buildTestApp(t)
	seedItem(t, repo, "contenido exportable", entity.CategoryMix, time.Now())

	resp := doJSON(t, app, http.MethodGet, "/api/export/mix/pdf", nil, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".pdf")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, len(body) > 4)
	assert.Equal(t, "%PDF", string(body[:4]), "el cuerpo debe ser un PDF")
}
