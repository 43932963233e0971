package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/omsayari/sayari-api/internal/application/dto"
	"github.com/omsayari/sayari-api/internal/domain/entity"
)

// Client cliente JSON de la API. El header de administración solo viaja en
// update y delete; create es público, igual que en el servidor.
type Client struct {
	baseURL  string
	password string
	hc       *http.Client
}

// NewClient construye el cliente contra baseURL (ej. http://localhost:3000).
func NewClient(baseURL, password string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		password: password,
		hc:       http.DefaultClient,
	}
}

// ListByCategory trae los items de una categoría, más recientes primero.
func (c *Client) ListByCategory(ctx context.Context, category entity.Category) ([]dto.ItemResponse, error) {
	var out []dto.ItemResponse
	err := c.do(ctx, http.MethodGet, "/api/items/"+category.String(), nil, false, &out)
	return out, err
}

// Create crea un item en la categoría dada.
func (c *Client) Create(ctx context.Context, content string, category entity.Category) (*dto.ItemResponse, error) {
	body := dto.CreateItemRequest{Content: content, Category: category.String()}
	var out dto.ItemResponse
	if err := c.do(ctx, http.MethodPost, "/api/items", body, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reemplaza el contenido de un item existente.
func (c *Client) Update(ctx context.Context, id, content string) (*dto.ItemResponse, error) {
	body := dto.UpdateItemRequest{Content: content}
	var out dto.ItemResponse
	if err := c.do(ctx, http.MethodPut, "/api/items/"+id, body, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un item por id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/items/"+id, nil, true, nil)
}

// ExportText trae el reporte de texto de una categoría.
func (c *Client) ExportText(ctx context.Context, category entity.Category) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/export/"+category.String(), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", apiError(resp)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// do arma la petición JSON, agrega el header de administración si corresponde
// y decodifica la respuesta en out (si out no es nil).
func (c *Client) do(ctx context.Context, method, path string, body any, admin bool, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("x-admin-password", c.password)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// apiError interpreta el cuerpo de error {code, message} del servidor.
func apiError(resp *http.Response) error {
	var body dto.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return fmt.Errorf("%s (%d)", body.Message, resp.StatusCode)
	}
	return fmt.Errorf("error del servidor (%d)", resp.StatusCode)
}
