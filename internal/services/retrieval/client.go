package retrieval

import (
	"context"
	"fmt"
	"time"

	domsvc "TradeScout/internal/domain/service"
	"TradeScout/pkg/config"
	xhttp "TradeScout/pkg/http"
)

// HTTPSnippetRetriever implements SnippetRetriever against an embedding
// sidecar service. The sidecar owns the embedding model and vector index;
// this client is stateless.
type HTTPSnippetRetriever struct {
	baseURL string
	topK    int
	client  *xhttp.Client
}

func NewHTTPSnippetRetriever(cfg *config.Config) *HTTPSnippetRetriever {
	timeout := cfg.Retrieval.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	topK := cfg.Retrieval.TopK
	if topK <= 0 {
		topK = 4
	}
	return &HTTPSnippetRetriever{
		baseURL: cfg.Retrieval.ServiceURL,
		topK:    topK,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

type retrieveReq struct {
	Query  string `json:"query"`
	Corpus string `json:"corpus"`
	K      int    `json:"k"`
}

type retrieveResp struct {
	Text string `json:"text"`
}

// Retrieve returns the corpus text most relevant to query.
func (r *HTTPSnippetRetriever) Retrieve(ctx context.Context, query, corpus string) (string, error) {
	if r.baseURL == "" {
		return "", fmt.Errorf("retrieval service not configured")
	}

	var resp retrieveResp
	err := r.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    r.baseURL + "/retrieve",
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: retrieveReq{Query: query, Corpus: corpus, K: r.topK},
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("post retrieve: %w", err)
	}
	return resp.Text, nil
}

var _ domsvc.SnippetRetriever = (*HTTPSnippetRetriever)(nil)
