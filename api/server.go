package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/teleport-relayer/app"
	"github.com/dan13ram/teleport-relayer/models"
	"github.com/dan13ram/teleport-relayer/notify"
	"github.com/dan13ram/teleport-relayer/proof"
	"github.com/dan13ram/teleport-relayer/teleport"
)

const (
	ServerName = "API"

	writeWait      = 10 * time.Second
	pingPeriod     = 30 * time.Second
	shutdownWait   = 5 * time.Second
	maxRequestBody = 1 << 20
)

// Server exposes proofs, teleport records and transition notifications over
// HTTP.
type Server struct {
	proofs      proof.Provider
	store       teleport.RecordStore
	broadcaster *notify.Broadcaster
	healthy     func() bool
	timeout     time.Duration
	upgrader    websocket.Upgrader

	wg     *sync.WaitGroup
	server *http.Server
}

type errorResponse struct {
	Error      string `json:"error"`
	Field      string `json:"field,omitempty"`
	ExistingID string `json:"existing_id,omitempty"`
}

type claimRequest struct {
	ClaimTxHash string `json:"claim_tx_hash"`
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/proofs/{tokenId}", s.getProof)
	mux.HandleFunc("GET /v1/proofs/burn/{burnTxHash}", s.getProofByBurnTx)
	mux.HandleFunc("POST /v1/teleports", s.initiateTeleport)
	mux.HandleFunc("GET /v1/teleports/{burnTxHash}", s.getTeleport)
	mux.HandleFunc("POST /v1/teleports/{burnTxHash}/claim", s.claimTeleport)
	mux.HandleFunc("GET /v1/subscribe", s.subscribe)
	mux.HandleFunc("GET /healthz", s.health)
	mux.Handle("GET /metrics", promhttp.Handler())

	return logging(mux)
}

func logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Debug("[", ServerName, "] Handled request")
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Warn("[", ServerName, "] Error writing response: ", err)
	}
}

// writeError maps domain errors to status codes.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError
	var duplicateErr *models.DuplicateInitiationError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Field: validationErr.Field})
	case errors.As(err, &duplicateErr):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), ExistingID: duplicateErr.ExistingID})
	case errors.Is(err, models.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrNotReady):
		writeJSON(w, http.StatusTooEarly, errorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrInvalidTransition), errors.Is(err, models.ErrStaleRecord):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusGatewayTimeout, errorResponse{Error: err.Error()})
	default:
		log.Error("[", ServerName, "] Internal error: ", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (s *Server) context(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.timeout)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return &models.ValidationError{Field: "body", Reason: err.Error()}
	}
	return nil
}

func (s *Server) getProof(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.context(r)
	defer cancel()

	p, err := s.proofs.GetProof(ctx, r.URL.Query().Get("source_chain_id"), r.PathValue("tokenId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) getProofByBurnTx(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.context(r)
	defer cancel()

	p, err := s.proofs.GetProofByBurnTx(ctx, r.PathValue("burnTxHash"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// initiateTeleport registers a burn the caller has just sent.
func (s *Server) initiateTeleport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.context(r)
	defer cancel()

	var req teleport.InitiateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	record, err := s.store.Initiate(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}

	burning, err := s.store.MarkBurning(ctx, record.BurnTxHash)
	switch {
	case err == nil:
		record = burning
	case errors.Is(err, models.ErrInvalidTransition), errors.Is(err, models.ErrStaleRecord):
		// the burn monitor got there first
		if record, err = s.store.Get(ctx, record.BurnTxHash); err != nil {
			writeError(w, err)
			return
		}
	default:
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (s *Server) getTeleport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.context(r)
	defer cancel()

	record, err := s.store.Get(ctx, r.PathValue("burnTxHash"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) claimTeleport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.context(r)
	defer cancel()

	var req claimRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	record, err := s.store.MarkClaiming(ctx, r.PathValue("burnTxHash"), req.ClaimTxHash)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// subscribe streams notifications to a websocket until either side closes.
// burn_tx_hash limits the stream to one teleport.
func (s *Server) subscribe(w http.ResponseWriter, r *http.Request) {
	burnTxHash := r.URL.Query().Get("burn_tx_hash")
	if burnTxHash != "" {
		normalized, err := teleport.NormalizeTxHash(burnTxHash)
		if err != nil {
			writeError(w, &models.ValidationError{Field: "burn_tx_hash", Reason: err.Error()})
			return
		}
		burnTxHash = normalized
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("[", ServerName, "] Error upgrading connection: ", err)
		return
	}
	defer conn.Close()

	id, notifications := s.broadcaster.Subscribe()
	defer s.broadcaster.Unsubscribe(id)
	log.Debug("[", ServerName, "] Subscriber ", id, " connected from ", conn.RemoteAddr())

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			log.Debug("[", ServerName, "] Subscriber ", id, " disconnected")
			return
		case n, ok := <-notifications:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
				return
			}
			if burnTxHash != "" && n.BurnTxHash != burnTxHash {
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(n); err != nil {
				log.Debug("[", ServerName, "] Error writing to subscriber ", id, ": ", err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	healthy := s.healthy == nil || s.healthy()
	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]bool{"healthy": healthy})
}

func (s *Server) Start() {
	log.Info("[", ServerName, "] Listening on ", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("[", ServerName, "] Server error: ", err)
	}
	log.Info("[", ServerName, "] Stopped service")
	s.wg.Done()
}

func (s *Server) Stop() {
	log.Debug("[", ServerName, "] Stopping service")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownWait)
	defer cancel()
	s.broadcaster.Close()
	if err := s.server.Shutdown(ctx); err != nil {
		log.Error("[", ServerName, "] Error shutting down: ", err)
	}
}

func (s *Server) Health() models.ServiceHealth {
	now := time.Now()
	return models.ServiceHealth{
		Name:         ServerName,
		LastSyncTime: now,
		NextSyncTime: now,
		Healthy:      true,
	}
}

func NewServer(
	config models.APIConfig,
	wg *sync.WaitGroup,
	proofs proof.Provider,
	store teleport.RecordStore,
	broadcaster *notify.Broadcaster,
	healthy func() bool,
) *Server {
	timeout := time.Duration(config.TimeoutMillis) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if broadcaster == nil {
		broadcaster = notify.NewBroadcaster()
	}

	s := &Server{
		proofs:      proofs,
		store:       store,
		broadcaster: broadcaster,
		healthy:     healthy,
		timeout:     timeout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		wg: wg,
	}
	s.server = &http.Server{
		Addr:              config.ListenAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: timeout,
	}
	return s
}

func NewAPIService(
	wg *sync.WaitGroup,
	proofs proof.Provider,
	store teleport.RecordStore,
	broadcaster *notify.Broadcaster,
	healthy func() bool,
) app.Service {
	if !app.Config.API.Enabled {
		log.Debug("[", ServerName, "] API disabled")
		return app.NewEmptyService(wg)
	}

	log.Debug("[", ServerName, "] Initializing API")
	s := NewServer(app.Config.API, wg, proofs, store, broadcaster, healthy)
	log.Info("[", ServerName, "] Initialized API")
	return s
}
