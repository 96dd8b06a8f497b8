package metadata

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/digitalax/dlx-indexer/internal/adapter"
	"github.com/digitalax/dlx-indexer/internal/logger"
	"github.com/digitalax/dlx-indexer/internal/metrics"
)

// Config holds configuration for the metadata fetcher
type Config struct {
	// IPFSGateways is the list of IPFS gateways to try
	IPFSGateways []string
}

// AttributeValue accepts both string and numeric JSON values, keeping
// the literal text for numbers
type AttributeValue string

func (v *AttributeValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = AttributeValue(s)
		return nil
	}
	*v = AttributeValue(strings.Trim(string(data), `"`))
	return nil
}

// Attribute is one trait of a garment metadata document
type Attribute struct {
	TraitType string         `json:"trait_type"`
	Value     AttributeValue `json:"value"`
}

// Garment is the parsed token metadata document
type Garment struct {
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Image        string      `json:"image"`
	AnimationURL string      `json:"animation_url"`
	Attributes   []Attribute `json:"attributes"`

	// Raw is the metadata document as fetched
	Raw json.RawMessage `json:"-"`
	// Hash is the hex sha256 of the JCS-canonicalized document
	Hash string `json:"-"`
}

// Fetcher resolves a token URI and parses the metadata document behind
// it. A failure yields ok=false and a warn log; callers fall back to
// empty metadata instead of aborting.
//
//go:generate mockgen -source=fetcher.go -destination=../mocks/fetcher.go -package=mocks -mock_names=Fetcher=MockFetcher
type Fetcher interface {
	// Fetch fetches and parses metadata. Token URIs without an IPFS
	// marker are skipped and yield ok=false.
	Fetch(ctx context.Context, tokenURI string) (*Garment, bool)
}

type fetcher struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	jcs        adapter.JCS
	base64     adapter.Base64
	config     *Config
}

func NewFetcher(httpClient adapter.HTTPClient, json adapter.JSON, jcs adapter.JCS, base64 adapter.Base64, config *Config) Fetcher {
	return &fetcher{
		httpClient: httpClient,
		json:       json,
		jcs:        jcs,
		base64:     base64,
		config:     config,
	}
}

const dataURIPrefix = "data:application/json;base64,"

func (f *fetcher) Fetch(ctx context.Context, tokenURI string) (*Garment, bool) {
	// Inline base64 documents carry the metadata in the URI itself
	if encoded, ok := strings.CutPrefix(tokenURI, dataURIPrefix); ok {
		raw, err := f.base64.Decode(encoded)
		if err != nil {
			logger.WarnCtx(ctx, "failed to decode data URI metadata",
				zap.Error(err))
			metrics.IncMetadataFetch("failure")
			return nil, false
		}
		return f.parse(ctx, "data:", raw)
	}

	// Only IPFS-hosted documents are fetched. Anything else is left as
	// an opaque URI on the garment.
	if tokenURI == "" || !strings.Contains(tokenURI, "ipfs") {
		metrics.IncMetadataFetch("skipped")
		return nil, false
	}

	url, err := f.resolve(ctx, tokenURI)
	if err != nil {
		logger.WarnCtx(ctx, "failed to resolve token URI",
			zap.String("token_uri", tokenURI),
			zap.Error(err))
		metrics.IncMetadataFetch("failure")
		return nil, false
	}

	var raw json.RawMessage
	if err := f.httpClient.Get(ctx, url, &raw); err != nil {
		logger.WarnCtx(ctx, "failed to fetch metadata",
			zap.String("url", url),
			zap.Error(err))
		metrics.IncMetadataFetch("failure")
		return nil, false
	}

	return f.parse(ctx, url, raw)
}

// parse validates, unmarshals and hashes a fetched metadata document
func (f *fetcher) parse(ctx context.Context, source string, raw json.RawMessage) (*Garment, bool) {
	if !isJSONDocument(raw) {
		logger.WarnCtx(ctx, "metadata document is not JSON",
			zap.String("url", source))
		metrics.IncMetadataFetch("failure")
		return nil, false
	}

	var garment Garment
	if err := f.json.Unmarshal(raw, &garment); err != nil {
		logger.WarnCtx(ctx, "failed to parse metadata document",
			zap.String("url", source),
			zap.Error(err))
		metrics.IncMetadataFetch("failure")
		return nil, false
	}
	garment.Raw = raw

	canonical, err := f.jcs.Transform(raw)
	if err != nil {
		logger.WarnCtx(ctx, "failed to canonicalize metadata",
			zap.String("url", source),
			zap.Error(err))
	} else {
		hash := sha256.Sum256(canonical)
		garment.Hash = hex.EncodeToString(hash[:])
	}

	metrics.IncMetadataFetch("success")
	return &garment, true
}

// resolve turns a token URI into a fetchable gateway URL
func (f *fetcher) resolve(ctx context.Context, tokenURI string) (string, error) {
	if cid, ok := strings.CutPrefix(tokenURI, "ipfs://"); ok {
		return f.resolveIPFS(ctx, cid)
	}

	// Gateway URLs are re-resolved so a dead pinned gateway does not
	// block the fetch
	if strings.Contains(tokenURI, "/ipfs/") {
		parts := strings.Split(tokenURI, "/ipfs/")
		if len(parts) >= 2 {
			return f.resolveIPFS(ctx, parts[1])
		}
	}

	return tokenURI, nil
}

// resolveIPFS finds a working IPFS gateway for the given CID
func (f *fetcher) resolveIPFS(ctx context.Context, cid string) (string, error) {
	if len(f.config.IPFSGateways) == 0 {
		return "", fmt.Errorf("no IPFS gateways configured")
	}

	// Try all gateways in parallel
	type result struct {
		url string
		err error
	}

	resultCh := make(chan result, len(f.config.IPFSGateways))
	var wg sync.WaitGroup

	// Test each gateway with HEAD request
	for _, gateway := range f.config.IPFSGateways {
		wg.Add(1)
		go func(gw string) {
			defer wg.Done()

			url := fmt.Sprintf("%s/ipfs/%s", gw, cid)
			resp, err := f.httpClient.Head(ctx, url)
			if err != nil {
				resultCh <- result{err: err}
				return
			}
			if err := resp.Body.Close(); err != nil {
				logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", url))
			}

			if resp.StatusCode == http.StatusOK {
				resultCh <- result{url: url}
			} else {
				resultCh <- result{err: fmt.Errorf("gateway returned status %d", resp.StatusCode)}
			}
		}(gateway)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// Return the first successful result
	for res := range resultCh {
		if res.err == nil {
			return res.url, nil
		}
	}

	return "", fmt.Errorf("no working IPFS gateway found for CID: %s", cid)
}
