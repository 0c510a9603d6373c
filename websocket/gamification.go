package websocket

import (
	"log"
	"sync"

	"ecostep/models"

	"github.com/gorilla/websocket"
)

// GamificationClient represents a client connected for gamification updates
type GamificationClient struct {
	ID      string
	Email   string
	Conn    *websocket.Conn
	writeMu sync.Mutex
}

// SafeWriteJSON safely writes JSON data to the client's WebSocket connection
func (gc *GamificationClient) SafeWriteJSON(v interface{}) error {
	gc.writeMu.Lock()
	defer gc.writeMu.Unlock()
	return gc.Conn.WriteJSON(v)
}

var (
	gamificationClients = make(map[string]*GamificationClient)
	gamificationMutex   sync.RWMutex
)

// RegisterGamificationClient registers a client for gamification updates
func RegisterGamificationClient(client *GamificationClient) {
	gamificationMutex.Lock()
	defer gamificationMutex.Unlock()
	gamificationClients[client.ID] = client
	log.Printf("Gamification client registered. Total clients: %d", len(gamificationClients))
}

// UnregisterGamificationClient removes a client from gamification updates
func UnregisterGamificationClient(client *GamificationClient) {
	gamificationMutex.Lock()
	defer gamificationMutex.Unlock()
	delete(gamificationClients, client.ID)
	client.Conn.Close()
	log.Printf("Gamification client unregistered. Total clients: %d", len(gamificationClients))
}

// BroadcastGamificationEvent pushes an event to every connection belonging
// to the event's user.
func BroadcastGamificationEvent(event models.GamificationEvent) {
	gamificationMutex.RLock()
	defer gamificationMutex.RUnlock()

	for _, client := range gamificationClients {
		if client.Email != event.Email {
			continue
		}
		if err := client.SafeWriteJSON(event); err != nil {
			log.Printf("Error broadcasting gamification event to client: %v", err)
			go UnregisterGamificationClient(client)
		}
	}
}

// GamificationClientsCount returns the number of connected clients
func GamificationClientsCount() int {
	gamificationMutex.RLock()
	defer gamificationMutex.RUnlock()
	return len(gamificationClients)
}
