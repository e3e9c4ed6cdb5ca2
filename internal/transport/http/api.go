package http

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"quizpad/internal/app"
	"quizpad/internal/domain"
	"quizpad/internal/prompt"
)

const maxDocumentBytes = 1 << 20

// APIHandler exposes the normalizer and prompt builder as plain JSON endpoints.
type APIHandler struct {
	defaults prompt.Options
}

func NewAPIHandler(defaults prompt.Options) *APIHandler {
	return &APIHandler{defaults: defaults}
}

type validationPayload struct {
	Kind    string         `json:"kind"`
	Message string         `json:"message"`
	Issues  []prompt.Issue `json:"issues"`
}

// Normalize accepts pasted text and returns canonical quiz data.
func (h *APIHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorPayload{Kind: domain.KindInvalid, Message: "method not allowed"})
		return
	}
	text, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentBytes))
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorPayload{Kind: domain.KindInvalid, Message: "document too large"})
		return
	}

	data, err := app.Parse(text)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if domain.ErrorKind(err) == domain.KindParse {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, errorPayload{Kind: domain.ErrorKind(err), Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// Prompt builds the LLM prompt from posted quiz options; missing fields take the defaults.
func (h *APIHandler) Prompt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorPayload{Kind: domain.KindInvalid, Message: "method not allowed"})
		return
	}
	opts := h.defaults
	if err := json.NewDecoder(io.LimitReader(r.Body, maxDocumentBytes)).Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorPayload{Kind: domain.KindParse, Message: "invalid JSON: " + err.Error()})
		return
	}

	text, err := prompt.Build(opts)
	if err != nil {
		var verr *prompt.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, validationPayload{Kind: domain.KindInvalid, Message: err.Error(), Issues: verr.Issues})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorPayload{Kind: domain.KindUnknown, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, promptPayload{Text: text})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}
