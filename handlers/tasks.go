package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/tasklight/tasklight/services"
	"github.com/tasklight/tasklight/tasklist"
)

// TaskHandler handles the task-list endpoints
type TaskHandler struct {
	list *tasklist.List
	hub  *services.Hub
}

func NewTaskHandler(list *tasklist.List, hub *services.Hub) *TaskHandler {
	return &TaskHandler{
		list: list,
		hub:  hub,
	}
}

// Register wires the handler's routes onto the router
func (h *TaskHandler) Register(r *mux.Router) {
	r.HandleFunc("/api/state", h.GetState).Methods("GET")
	r.HandleFunc("/api/tasks", h.AddTask).Methods("POST")
	r.HandleFunc("/api/tasks/{id}/delete", h.DeleteTask).Methods("POST")
	r.HandleFunc("/api/tasks/{id}/restore", h.RestoreTask).Methods("POST")
	r.HandleFunc("/api/tasks/{id}/position", h.MoveTask).Methods("POST")
	r.HandleFunc("/api/tasks/{id}", h.PurgeTask).Methods("DELETE")
	r.HandleFunc("/api/theme/toggle", h.ToggleTheme).Methods("POST")
	r.HandleFunc("/api/history/toggle", h.ToggleHistory).Methods("POST")
	r.HandleFunc("/api/ws", h.HandleWebSocket)
}

// GetState returns the current snapshot; the page calls this once on load
func (h *TaskHandler) GetState(w http.ResponseWriter, r *http.Request) {
	writeState(w, h.list.Snapshot())
}

// AddTask creates a task from the posted text. Blank text is silently
// rejected: the response is still a success carrying the unchanged state.
func (h *TaskHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	state := h.list.Add(req.Text)
	h.broadcast(state)
	writeState(w, state)
}

// DeleteTask moves a task to history
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	state := h.list.Delete(mux.Vars(r)["id"])
	h.broadcast(state)
	writeState(w, state)
}

// RestoreTask moves a task from history back to the active list
func (h *TaskHandler) RestoreTask(w http.ResponseWriter, r *http.Request) {
	state := h.list.Restore(mux.Vars(r)["id"])
	h.broadcast(state)
	writeState(w, state)
}

// PurgeTask permanently removes a task from history
func (h *TaskHandler) PurgeTask(w http.ResponseWriter, r *http.Request) {
	state := h.list.Purge(mux.Vars(r)["id"])
	h.broadcast(state)
	writeState(w, state)
}

// MoveTask repositions a task within the active list. The page calls
// this repeatedly while a drag is in progress, once per crossed item.
func (h *TaskHandler) MoveTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	state := h.list.Reorder(mux.Vars(r)["id"], req.Index)
	h.broadcast(state)
	writeState(w, state)
}

// ToggleTheme flips the light/dark flag
func (h *TaskHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	state := h.list.ToggleTheme()
	h.broadcast(state)
	writeState(w, state)
}

// ToggleHistory flips the history panel's visibility
func (h *TaskHandler) ToggleHistory(w http.ResponseWriter, r *http.Request) {
	state := h.list.ToggleHistory()
	h.broadcast(state)
	writeState(w, state)
}

// HandleWebSocket upgrades the HTTP connection to a WebSocket connection
func (h *TaskHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true // local single-user app, any origin is fine
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading to WebSocket: %v", err)
		return
	}

	client := &services.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	h.hub.Register(client)

	// Start goroutines for reading and writing
	go client.WritePump()
	go client.ReadPump()
}

// broadcast pushes the post-mutation snapshot to every open tab
func (h *TaskHandler) broadcast(state tasklist.State) {
	h.hub.Broadcast(services.WebSocketMessage{
		Type: "state",
		Data: state,
	})
}

func writeState(w http.ResponseWriter, state tasklist.State) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status": "success",
		"data":   state,
	})
}
