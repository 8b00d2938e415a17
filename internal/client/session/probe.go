// Package session answers one question for protected views: is anyone
// logged in right now? Every failure reads as "no".
package session

import (
	"context"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// Identifier is the remote identity query (GET /test).
type Identifier interface {
	Session(ctx context.Context) (models.Session, error)
}

// Prober decides whether a Session exists. It keeps no state between calls
// so that logout or expiry on the server is seen on the next mount.
type Prober struct {
	remote Identifier
	log    logging.Logger
}

func NewProber(remote Identifier, log logging.Logger) *Prober {
	return &Prober{remote: remote, log: log}
}

// Probe returns the current session and true, or a zero Session and false.
// Network errors, rejections and malformed or empty bodies are not told apart.
func (p *Prober) Probe(ctx context.Context) (models.Session, bool) {
	s, err := p.remote.Session(ctx)
	if err != nil {
		p.log.Debug(ctx, "session probe: logged out", logging.Err(err))
		return models.Session{}, false
	}
	if !s.Valid() {
		p.log.Debug(ctx, "session probe: empty identity")
		return models.Session{}, false
	}
	return s, true
}
