//go:build windows

package player

import (
	"context"
	"fmt"

	"github.com/abhiguop/netflix/internal/log"
	"gopkg.in/natefinch/npipe.v2"
)

// Connect establishes a connection with MPV for Windows
func (c *MPVIPCClient) Connect(ctx context.Context) error {
	log.Debug("Connecting to Windows named pipe", "path", c.socketPath)

	// Connect using the Windows-specific named pipe package
	conn, err := npipe.Dial(c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to connect to MPV pipe: %w", err)
	}

	c.conn = conn
	go c.readEvents()
	return nil
}
