package main

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/telepathic-chat/chatkit/pkg/chat"
)

// startBridge forwards relay messages from the transport channel into the
// bubbletea program. The goroutine only calls p.Send() — it never touches
// model state directly. The returned cancel function stops the bridge and
// waits for the goroutine to exit so no stale messages arrive after it
// returns.
func startBridge(ctx context.Context, p *tea.Program, incoming <-chan chat.Message) context.CancelFunc {
	bridgeCtx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Go(func() {
		for {
			select {
			case <-bridgeCtx.Done():
				return
			case msg, ok := <-incoming:
				if !ok {
					return
				}
				p.Send(chatMessageMsg{msg: msg})
			}
		}
	})

	return func() {
		cancel()
		wg.Wait()
	}
}
