package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gorilla/websocket"

	"github.com/relabs-tech/inertial_pipeline/internal/config"
	"github.com/relabs-tech/inertial_pipeline/internal/pipeline"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// poseHub keeps the latest report and fans new ones out to websocket
// clients.
type poseHub struct {
	mu      sync.Mutex
	last    pipeline.Report
	have    bool
	clients map[*websocket.Conn]struct{}
}

func newPoseHub() *poseHub {
	return &poseHub{clients: make(map[*websocket.Conn]struct{})}
}

// publish records r and pushes it to every connected client. Clients that
// fail the write are dropped.
func (h *poseHub) publish(r pipeline.Report) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = r
	h.have = true
	for conn := range h.clients {
		if err := conn.WriteJSON(r); err != nil {
			log.Printf("web: websocket write error: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *poseHub) latest() (pipeline.Report, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last, h.have
}

func (h *poseHub) onMessage(_ mqtt.Client, msg mqtt.Message) {
	var r pipeline.Report
	if err := json.Unmarshal(msg.Payload(), &r); err != nil {
		log.Printf("web: MQTT payload unmarshal error: %v", err)
		return
	}
	h.publish(r)
}

func (h *poseHub) handleLatest(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.latest()
	if !ok {
		http.Error(w, "no data yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rep); err != nil {
		log.Printf("web: json encode error: %v", err)
	}
}

func (h *poseHub) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("web: websocket upgrade error: %v", err)
		return
	}

	h.mu.Lock()
	if h.have {
		if err := conn.WriteJSON(h.last); err != nil {
			h.mu.Unlock()
			conn.Close()
			return
		}
	}
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	// Reads only detect the client going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("web: websocket error: %v", err)
			}
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

func (h *poseHub) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/orientation", h.handleLatest)
	mux.HandleFunc("GET /ws/orientation", h.handleStream)
	mux.Handle("/", http.FileServer(http.Dir("web")))
	return mux
}

// RunWeb subscribes to the orientation topic and serves the latest report
// over HTTP and a websocket stream.
func RunWeb(cfg *config.Config) error {
	if cfg.MQTTBroker == "" {
		return fmt.Errorf("MQTT_BROKER is required for the web server")
	}
	hub := newPoseHub()

	// 1) Connect to MQTT broker
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDWeb)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer client.Disconnect(250)
	log.Printf("web: connected to MQTT broker at %s", cfg.MQTTBroker)

	// 2) Subscribe to the orientation topic
	token := client.Subscribe(cfg.TopicOrientation, 0, hub.onMessage)
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("web: subscribed to MQTT topic %s", cfg.TopicOrientation)

	addr := fmt.Sprintf(":%d", cfg.WebServerPort)
	log.Printf("web: server listening on %s", addr)
	return http.ListenAndServe(addr, hub.routes())
}
