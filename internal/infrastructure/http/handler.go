package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"nairagate.com/internal/application/usecase"
	"nairagate.com/internal/domain/entity"
	"nairagate.com/internal/domain/port"
	"nairagate.com/internal/infrastructure/logger"
)

// Handler holds HTTP handlers and their dependencies
type Handler struct {
	getBalanceUseCase   *usecase.GetWalletBalanceUseCase
	sealTransferUseCase *usecase.SealTransferUseCase
	registry            port.NetworkRegistry
	logger              logger.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(
	getBalanceUseCase *usecase.GetWalletBalanceUseCase,
	sealTransferUseCase *usecase.SealTransferUseCase,
	registry port.NetworkRegistry,
	logger logger.Logger,
) *Handler {
	return &Handler{
		getBalanceUseCase:   getBalanceUseCase,
		sealTransferUseCase: sealTransferUseCase,
		registry:            registry,
		logger:              logger,
	}
}

// networkView is the wire shape for GET /networks entries.
type networkView struct {
	Name           string         `json:"name"`
	ChainID        int64          `json:"chainId"`
	GatewayAddress string         `json:"gatewayAddress"`
	ExplorerTxURL  string         `json:"explorerTxUrl"`
	Tokens         []entity.Token `json:"tokens"`
}

// HandleNetworks handles GET /networks requests
func (h *Handler) HandleNetworks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestLogger := ctx.Value("logger").(logger.Logger)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	networks := h.registry.Networks()
	views := make([]networkView, 0, len(networks))
	for _, n := range networks {
		chainID, err := entity.ChainIDFromCAIP2(n.ChainID)
		if err != nil {
			requestLogger.LogError(ctx, "Malformed chain id in registry", err, "network", n.Name)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		views = append(views, networkView{
			Name:           n.Name,
			ChainID:        chainID,
			GatewayAddress: n.GatewayAddress,
			ExplorerTxURL:  n.ExplorerTxURL,
			Tokens:         n.Tokens,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(views); err != nil {
		requestLogger.LogError(ctx, "Failed to encode networks response", err)
	}
}

// HandleBalance handles GET /balance/{network}/{address} requests
func (h *Handler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestLogger := ctx.Value("logger").(logger.Logger)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Extract network and address from path
	path := strings.TrimPrefix(r.URL.Path, "/balance/")
	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		http.Error(w, "Missing network or address parameter", http.StatusBadRequest)
		return
	}

	network, err := url.PathUnescape(parts[0])
	if err != nil {
		http.Error(w, "Invalid network parameter", http.StatusBadRequest)
		return
	}
	address := parts[1]

	balance, err := h.getBalanceUseCase.Execute(ctx, network, address)
	if err != nil {
		requestLogger.LogError(ctx, "Failed to fetch wallet balance", err,
			"network", network,
			"address", address)
		http.Error(w, "Failed to fetch wallet balance", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(balance); err != nil {
		requestLogger.LogError(ctx, "Failed to encode balance response", err)
		return
	}

	requestLogger.LogInfo(ctx, "Wallet balance retrieved",
		"network", network,
		"address", address,
		"tokens", len(balance.Balances))
}

// HandleSealTransfer handles POST /transfers/seal requests
func (h *Handler) HandleSealTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestLogger := ctx.Value("logger").(logger.Logger)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req entity.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestLogger.LogError(ctx, "Failed to parse JSON body", err)
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	sealed, err := h.sealTransferUseCase.Execute(ctx, &req)
	if err != nil {
		if isBadTransferRequest(err) {
			requestLogger.LogWarning(ctx, "Rejected transfer request",
				"network", req.Network,
				"token", req.TokenSymbol,
				"reason", err.Error())
			http.Error(w, fmt.Sprintf("Invalid transfer request: %v", err), http.StatusBadRequest)
			return
		}
		requestLogger.LogError(ctx, "Failed to seal transfer payload", err,
			"network", req.Network,
			"token", req.TokenSymbol)
		http.Error(w, "Failed to seal transfer payload", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(sealed); err != nil {
		requestLogger.LogError(ctx, "Failed to encode sealed transfer", err)
		return
	}

	requestLogger.LogInfo(ctx, "Transfer payload sealed",
		"network", req.Network,
		"token", req.TokenSymbol,
		"nonce", sealed.Nonce)
}

func isBadTransferRequest(err error) bool {
	return errors.Is(err, entity.ErrMissingNetwork) ||
		errors.Is(err, entity.ErrMissingRecipient) ||
		errors.Is(err, entity.ErrMissingToken) ||
		errors.Is(err, entity.ErrMissingAmount) ||
		errors.Is(err, entity.ErrInvalidAmount) ||
		errors.Is(err, entity.ErrUnsupportedNetwork) ||
		errors.Is(err, entity.ErrUnsupportedToken)
}

// SetupRoutes sets up all HTTP routes
func (h *Handler) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	networksHandler := RequestIDMiddleware(
		LoggingMiddleware(h.HandleNetworks, h.logger),
		h.logger,
	)
	balanceHandler := RequestIDMiddleware(
		LoggingMiddleware(h.HandleBalance, h.logger),
		h.logger,
	)
	sealHandler := RequestIDMiddleware(
		LoggingMiddleware(h.HandleSealTransfer, h.logger),
		h.logger,
	)

	mux.HandleFunc("/networks", networksHandler)
	mux.HandleFunc("/balance/", balanceHandler)
	mux.HandleFunc("/transfers/seal", sealHandler)

	return mux
}
