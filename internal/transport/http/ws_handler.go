package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"quizpad/internal/app"
	"quizpad/internal/domain"
	"quizpad/internal/prompt"
	"quizpad/internal/textfmt"
)

// WSHandler serves the websocket display surface. Every connection owns one workspace.
type WSHandler struct {
	surfaces  app.SurfaceRepository
	documents app.DocumentRepository
	defaults  prompt.Options
	upgrader  websocket.Upgrader
}

// NewWSHandler wires the surface registry and an optional document source (may be nil).
func NewWSHandler(surfaces app.SurfaceRepository, documents app.DocumentRepository, defaults prompt.Options) *WSHandler {
	return &WSHandler{
		surfaces:  surfaces,
		documents: documents,
		defaults:  defaults,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type loadPayload struct {
	Text       string `json:"text"`
	DocumentID string `json:"documentId"`
}

type selectPayload struct {
	Question int `json:"question"`
	Choice   int `json:"choice"`
}

type gotoPayload struct {
	Index int `json:"index"`
}

type promptPayload struct {
	Text string `json:"text"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type stateView struct {
	Surface string `json:"surface"`
	app.View
	QuestionMarkdown    string `json:"questionMarkdown,omitempty"`
	ExplanationMarkdown string `json:"explanationMarkdown,omitempty"`
}

// ServeWS upgrades HTTP requests to websockets and forwards user actions into the workspace.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	surfaceID := uuid.NewString()
	workspace := app.NewWorkspace()
	h.surfaces.Register(surfaceID, workspace)
	defer h.surfaces.Remove(surfaceID)

	if err := conn.WriteJSON(h.state(surfaceID, workspace)); err != nil {
		log.Printf("ws write error: %v", err)
		return
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		reply := h.handle(r, surfaceID, workspace, inbound)
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("ws write error: %v", err)
			return
		}
	}
}

func (h *WSHandler) handle(r *http.Request, surfaceID string, workspace *app.Workspace, inbound inboundMessage) any {
	session := workspace.Session()
	switch inbound.Type {
	case "load":
		var payload loadPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return invalid("invalid load payload")
		}
		var loadErr error
		if payload.DocumentID != "" {
			if h.documents == nil {
				return invalid("no document source configured")
			}
			_, loadErr = workspace.LoadFrom(r.Context(), h.documents, payload.DocumentID)
		} else {
			_, loadErr = workspace.Load([]byte(payload.Text))
		}
		if loadErr != nil {
			return failure(loadErr)
		}
	case "select":
		var payload selectPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return invalid("invalid select payload")
		}
		if !session.SelectAnswer(payload.Question, payload.Choice) {
			return invalid("choice out of range")
		}
	case "goto":
		var payload gotoPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return invalid("invalid goto payload")
		}
		session.GoTo(payload.Index)
	case "next":
		session.Next()
	case "previous":
		session.Previous()
	case "restart":
		session.Restart()
	case "prompt":
		opts := h.defaults
		if len(inbound.Payload) > 0 {
			if err := json.Unmarshal(inbound.Payload, &opts); err != nil {
				return invalid("invalid prompt payload")
			}
		}
		text, err := prompt.Build(opts)
		if err != nil {
			return invalid(err.Error())
		}
		return outboundMessage[promptPayload]{Type: "prompt", Payload: promptPayload{Text: text}}
	default:
		return invalid("unsupported message type")
	}
	return h.state(surfaceID, workspace)
}

func (h *WSHandler) state(surfaceID string, workspace *app.Workspace) outboundMessage[stateView] {
	view := workspace.Session().View()
	state := stateView{Surface: surfaceID, View: view}
	if !view.Empty {
		state.QuestionMarkdown = textfmt.FormatForMarkdown(view.Question.Text)
		if view.Answered {
			state.ExplanationMarkdown = textfmt.FormatForMarkdown(view.Question.Explanation)
		}
	}
	return outboundMessage[stateView]{Type: "state", Payload: state}
}

func failure(err error) outboundMessage[errorPayload] {
	return outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Kind: domain.ErrorKind(err), Message: err.Error()}}
}

func invalid(message string) outboundMessage[errorPayload] {
	return outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Kind: domain.KindInvalid, Message: message}}
}
