package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// Client est le client typé de l'API commerce distante. Le token bearer
// est passé appel par appel : le client ne stocke aucun état de session.
// Chaque appel est tenté exactement une fois, pas de retry.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// Enveloppe uniforme renvoyée par tous les endpoints distants
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// Error porte le message distant tel quel : il est affiché à l'utilisateur
// sans reformulation.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// do exécute un appel et décode l'enveloppe. success=false ou statut non-2xx
// sont traités pareil : l'opération a échoué, aucun état n'est appliqué.
func (c *Client) do(ctx context.Context, token, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if len(raw) > 0 {
		// Un body illisible sur un statut 2xx est une vraie erreur ;
		// sur un statut d'erreur on garde le message par défaut
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
			return err
		}
	}

	if resp.StatusCode >= 300 || (len(raw) > 0 && !env.Success && (env.Message != "" || env.Error != "")) {
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		if msg == "" {
			msg = "Une erreur est survenue"
		}
		return &Error{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}

	// L'API renvoie soit {success, data: ...} soit le document directement
	if len(env.Data) > 0 && string(env.Data) != "null" {
		return json.Unmarshal(env.Data, out)
	}
	return json.Unmarshal(raw, out)
}
