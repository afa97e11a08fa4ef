package player

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/abhiguop/netflix/internal/log"
)

// MPVIPCClient provides communication with a running MPV instance
type MPVIPCClient struct {
	socketPath string
	conn       net.Conn
	events     chan MPVEvent
}

// MPVEvent represents a raw event from MPV's JSON IPC protocol
type MPVEvent struct {
	Event     string          `json:"event"`
	Name      string          `json:"name,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	RequestID int             `json:"request_id,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// NewMPVIPCClient creates a new MPV IPC client
func NewMPVIPCClient(socketPath string) *MPVIPCClient {
	return &MPVIPCClient{
		socketPath: socketPath,
		events:     make(chan MPVEvent, 100),
	}
}

// GetMPVSocketPath returns the socket path for MPV IPC communication
func GetMPVSocketPath() string {
	var socketPath string

	// Use environment variable if set
	if path := os.Getenv("MPV_IPC_SOCKET"); path != "" {
		return path
	}

	// Otherwise use default location based on OS
	switch runtime.GOOS {
	case "windows":
		// Windows uses named pipes instead of unix sockets
		return `\\.\pipe\mpv-pipe`
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Error("Failed to get user home directory", "error", err)
			return "/tmp/mpv-socket"
		}
		socketPath = filepath.Join(homeDir, ".config", "mpv", "socket")
	default:
		// Linux and others
		runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
		if runtimeDir != "" {
			socketPath = filepath.Join(runtimeDir, "mpv-socket")
		} else {
			socketPath = "/tmp/mpv-socket"
		}
	}

	return socketPath
}

// WaitForConnection attempts to connect to MPV with retries
func (c *MPVIPCClient) WaitForConnection(ctx context.Context, maxAttempts int, retryDelay time.Duration) error {
	log.Debug("Waiting for MPV to create socket", "socket_path", c.socketPath, "max_attempts", maxAttempts)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		// Check if socket file exists for unix sockets
		if runtime.GOOS != "windows" {
			if _, err := os.Stat(c.socketPath); os.IsNotExist(err) {
				log.Debug("MPV socket does not exist yet", "attempt", attempt, "path", c.socketPath)
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(retryDelay):
					continue
				}
			}
		}

		// Try to connect
		err := c.Connect(ctx)
		if err == nil {
			log.Info("Successfully connected to MPV", "attempt", attempt)
			return nil
		}

		log.Debug("Failed to connect to MPV", "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryDelay):
			// Continue and retry
		}
	}

	return fmt.Errorf("failed to connect to MPV after %d attempts", maxAttempts)
}

// Close closes the connection to MPV
func (c *MPVIPCClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// readEvents continuously reads events from MPV
func (c *MPVIPCClient) readEvents() {
	scanner := bufio.NewScanner(c.conn)
	for scanner.Scan() {
		line := scanner.Text()

		log.Trace("Raw MPV event", "data", line)

		var event MPVEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			log.Error("Failed to unmarshal MPV event", "error", err)
			continue
		}

		log.Trace("Received MPV event", "event", event.Event)
		c.events <- event
	}

	if err := scanner.Err(); err != nil {
		log.Error("Error reading from MPV socket", "error", err)
	}

	log.Debug("MPV event reader stopped")
	close(c.events)
}

// Events returns the channel for raw MPV events
func (c *MPVIPCClient) Events() <-chan MPVEvent {
	return c.events
}

// SendCommand sends a command to MPV
func (c *MPVIPCClient) SendCommand(cmd []interface{}) error {
	if c.conn == nil {
		return fmt.Errorf("not connected to MPV")
	}

	cmdObj := map[string]interface{}{
		"command": cmd,
	}

	data, err := json.Marshal(cmdObj)
	if err != nil {
		return fmt.Errorf("failed to marshal command: %w", err)
	}

	data = append(data, '\n')
	_, err = c.conn.Write(data)
	if err != nil {
		return fmt.Errorf("failed to send command: %w", err)
	}

	return nil
}

// SetProperty sets an MPV property
func (c *MPVIPCClient) SetProperty(name string, value interface{}) error {
	return c.SendCommand([]interface{}{"set_property", name, value})
}

// ObserveProperty starts observing an MPV property
func (c *MPVIPCClient) ObserveProperty(id int, name string) error {
	return c.SendCommand([]interface{}{"observe_property", id, name})
}
