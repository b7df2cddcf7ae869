// Package identity resolves a handle to a DID and data-server address,
// and analyzes the identity's PLC operation log.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/dsablic/skylens/internal/fetcher"
	"github.com/dsablic/skylens/internal/model"
)

// ServiceTypePDS is the DID-document service type of the server hosting
// the identity's data.
const ServiceTypePDS = "AtprotoPersonalDataServer"

// ResolutionError is fatal: a failed handle or directory lookup aborts
// the whole pipeline run.
type ResolutionError struct {
	Stage  string // "resolve-handle" or "did-document"
	Handle string
	Err    error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %s (%s): %v", e.Handle, e.Stage, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Resolver turns handles into identities via the AppView's handle
// resolution endpoint and the PLC directory.
type Resolver struct {
	AppViewURL string
	PLCURL     string
	Client     *fetcher.Client
}

// Resolve maps a handle to its DID and then to the service endpoint of
// the personal data server hosting it. No retries; a single failure at
// either hop returns a ResolutionError.
func (r *Resolver) Resolve(ctx context.Context, handle string) (model.Identity, error) {
	var res struct {
		DID string `json:"did"`
	}
	u := fmt.Sprintf("%s/xrpc/com.atproto.identity.resolveHandle?handle=%s",
		r.AppViewURL, url.QueryEscape(handle))
	if err := r.Client.GetJSON(ctx, u, &res); err != nil {
		return model.Identity{}, &ResolutionError{Stage: "resolve-handle", Handle: handle, Err: err}
	}
	if res.DID == "" {
		return model.Identity{}, &ResolutionError{
			Stage:  "resolve-handle",
			Handle: handle,
			Err:    errors.New("no did in resolution response"),
		}
	}

	var doc struct {
		Service []struct {
			ID              string `json:"id"`
			Type            string `json:"type"`
			ServiceEndpoint string `json:"serviceEndpoint"`
		} `json:"service"`
	}
	if err := r.Client.GetJSON(ctx, r.PLCURL+"/"+res.DID, &doc); err != nil {
		return model.Identity{}, &ResolutionError{Stage: "did-document", Handle: handle, Err: err}
	}

	for _, s := range doc.Service {
		if s.Type == ServiceTypePDS {
			return model.Identity{
				Handle:          handle,
				DID:             res.DID,
				ServiceEndpoint: s.ServiceEndpoint,
			}, nil
		}
	}
	return model.Identity{}, &ResolutionError{
		Stage:  "did-document",
		Handle: handle,
		Err:    errors.New("no personal data server entry in DID document"),
	}
}
