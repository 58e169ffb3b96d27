package ethrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"sync/atomic"

	"nairagate.com/internal/domain/port"
	"nairagate.com/internal/infrastructure/config"
)

const balanceOfSelector = "0x70a08231"

// Client is a minimal JSON-RPC read client routing contract calls to the
// configured endpoint for each network. It deliberately carries no timeout
// of its own; pass an *http.Client with a deadline or cancel the context.
type Client struct {
	rpcURLs    map[string]string
	httpClient *http.Client
	idCounter  uint64
}

// NewClient creates a read client. rpcURLs maps a network name to its
// JSON-RPC endpoint; keys are re-keyed through config.NormalizeNetworkKey so
// display names and viper-lowercased yaml keys resolve alike.
func NewClient(rpcURLs map[string]string, httpClient *http.Client) (*Client, error) {
	if len(rpcURLs) == 0 {
		return nil, errors.New("at least one rpc endpoint is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	normalized := make(map[string]string, len(rpcURLs))
	for network, url := range rpcURLs {
		normalized[config.NormalizeNetworkKey(network)] = url
	}
	return &Client{
		rpcURLs:    normalized,
		httpClient: httpClient,
	}, nil
}

// CallContractMethod implements port.ChainReader. Only balanceOf(address)
// is supported; the transfer UI needs nothing else from the read path.
func (c *Client) CallContractMethod(ctx context.Context, network, contractAddress, abiMethod string, args ...string) (*big.Int, error) {
	url, ok := c.rpcURLs[config.NormalizeNetworkKey(network)]
	if !ok || url == "" {
		return nil, fmt.Errorf("no rpc endpoint configured for network %q", network)
	}

	var calldata string
	switch abiMethod {
	case "balanceOf":
		if len(args) != 1 {
			return nil, fmt.Errorf("balanceOf expects 1 argument, got %d", len(args))
		}
		data, err := encodeBalanceOf(args[0])
		if err != nil {
			return nil, err
		}
		calldata = data
	default:
		return nil, fmt.Errorf("unsupported abi method %q", abiMethod)
	}

	params := []any{
		map[string]any{
			"to":   contractAddress,
			"data": calldata,
		},
		"latest",
	}

	var result string
	if err := c.call(ctx, url, "eth_call", params, &result); err != nil {
		return nil, err
	}
	return parseHexBig(result)
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (c *Client) call(ctx context.Context, url, method string, params []any, result any) error {
	id := atomic.AddUint64(&c.idCounter, 1)
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      id,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("rpc http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out rpcResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return fmt.Errorf("decode rpc response: %w", err)
	}
	if out.Error != nil {
		return fmt.Errorf("rpc error %d: %s", out.Error.Code, out.Error.Message)
	}
	return json.Unmarshal(out.Result, result)
}

// encodeBalanceOf builds calldata for balanceOf(address): the 4-byte
// selector followed by the holder address left-padded to 32 bytes.
func encodeBalanceOf(holder string) (string, error) {
	h := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(holder)), "0x")
	if len(h) != 40 {
		return "", fmt.Errorf("invalid holder address length: %d", len(h))
	}
	for _, ch := range h {
		if (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') {
			continue
		}
		return "", fmt.Errorf("invalid holder address: %s", holder)
	}
	return balanceOfSelector + strings.Repeat("0", 64-40) + h, nil
}

func parseHexBig(raw string) (*big.Int, error) {
	clean := strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	if clean == "" {
		return big.NewInt(0), nil
	}
	value := new(big.Int)
	if _, ok := value.SetString(clean, 16); !ok {
		return nil, fmt.Errorf("invalid hex result: %s", raw)
	}
	return value, nil
}

var _ port.ChainReader = (*Client)(nil)
