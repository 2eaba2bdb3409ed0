package transport

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/byteZorvin/piltover/internal/model"
	"github.com/byteZorvin/piltover/internal/program"
)

// callerHeader carries the address acting on behalf of the request.
// Authentication of the address itself happens upstream.
const callerHeader = "X-Operator-Address"

const defaultUpdatesLimit = 50

// Handler serves the settlement REST API.
type Handler struct {
	logger  *zap.Logger
	service Settlement
}

// NewHandler returns a Handler instance.
func NewHandler(logger *zap.Logger, service Settlement) *Handler {
	return &Handler{
		logger:  logger.Named("handler"),
		service: service,
	}
}

// Register mounts the API routes on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/state/updates", h.submitStateUpdate)
	mux.HandleFunc("GET /v1/state/updates", h.listStateUpdates)
	mux.HandleFunc("GET /v1/state", h.getState)
	mux.HandleFunc("POST /v1/state/init", h.initializeState)
	mux.HandleFunc("GET /v1/messages/starknet", h.listMessagesToStarknet)
	mux.HandleFunc("GET /v1/operators", h.listOperators)
	mux.HandleFunc("POST /v1/operators", h.registerOperator)
	mux.HandleFunc("DELETE /v1/operators/{address}", h.unregisterOperator)
	mux.HandleFunc("POST /v1/owner/transfer", h.transferOwnership)
	mux.HandleFunc("GET /v1/program", h.getProgram)
	mux.HandleFunc("PUT /v1/program", h.setProgram)
	mux.HandleFunc("PUT /v1/program/fact-registry", h.setFactRegistry)
}

type stateResponse struct {
	Root        string `json:"root"`
	BlockNumber string `json:"block_number"`
	BlockHash   string `json:"block_hash"`
}

func newStateResponse(s model.State) stateResponse {
	return stateResponse{
		Root:        model.FeltToHex(&s.Root),
		BlockNumber: model.FeltToHex(&s.BlockNumber),
		BlockHash:   model.FeltToHex(&s.BlockHash),
	}
}

type submitStateUpdateRequest struct {
	Output []string `json:"output"`
}

func (h *Handler) submitStateUpdate(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req submitStateUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	stream, err := model.ParseFelts(req.Output)
	if err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, "INVALID_FELT", err.Error())
		return
	}

	state, err := h.service.SubmitStateUpdate(r.Context(), caller, stream)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newStateResponse(state))
}

func (h *Handler) getState(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, newStateResponse(h.service.GetState()))
}

type initializeStateRequest struct {
	Root        string `json:"root"`
	BlockNumber string `json:"block_number"`
	BlockHash   string `json:"block_hash"`
}

func (h *Handler) initializeState(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req initializeStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	state, err := parseState(req)
	if err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, "INVALID_FELT", err.Error())
		return
	}

	if err := h.service.Initialize(r.Context(), caller, state); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newStateResponse(state))
}

func parseState(req initializeStateRequest) (model.State, error) {
	root, err := model.HexToFelt(req.Root)
	if err != nil {
		return model.State{}, err
	}
	number, err := model.HexToFelt(req.BlockNumber)
	if err != nil {
		return model.State{}, err
	}
	hash, err := model.HexToFelt(req.BlockHash)
	if err != nil {
		return model.State{}, err
	}
	return model.State{Root: root, BlockNumber: number, BlockHash: hash}, nil
}

type stateUpdateResponse struct {
	BlockNumber      string `json:"block_number"`
	OldRoot          string `json:"old_root"`
	NewRoot          string `json:"new_root"`
	BlockHash        string `json:"block_hash"`
	Fact             string `json:"fact,omitempty"`
	Operator         string `json:"operator"`
	StarknetMsgCount uint32 `json:"starknet_msg_count"`
	AppchainMsgCount uint32 `json:"appchain_msg_count"`
	AcceptedAt       string `json:"accepted_at"`
}

func (h *Handler) listStateUpdates(w http.ResponseWriter, r *http.Request) {
	limit := uint64(defaultUpdatesLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			h.writeErrorCode(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	records, err := h.service.StateUpdates(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]stateUpdateResponse, 0, len(records))
	for _, record := range records {
		out = append(out, stateUpdateResponse{
			BlockNumber:      record.BlockNumber.String(),
			OldRoot:          record.OldRoot,
			NewRoot:          record.NewRoot,
			BlockHash:        record.BlockHash,
			Fact:             record.Fact,
			Operator:         record.Operator,
			StarknetMsgCount: record.StarknetMsgCount,
			AppchainMsgCount: record.AppchainMsgCount,
			AcceptedAt:       record.AcceptedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}

type starknetMessageResponse struct {
	BlockNumber  string   `json:"block_number"`
	MessageIndex uint32   `json:"message_index"`
	FromAddress  string   `json:"from_address"`
	ToAddress    string   `json:"to_address"`
	Payload      []string `json:"payload"`
}

func (h *Handler) listMessagesToStarknet(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("block")
	blockNumber, ok := new(big.Int).SetString(raw, 10)
	if !ok || blockNumber.Sign() < 0 {
		h.writeErrorCode(w, http.StatusBadRequest, "INVALID_BLOCK", "block must be a non-negative integer")
		return
	}

	records, err := h.service.MessagesToStarknetByBlock(r.Context(), blockNumber)
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]starknetMessageResponse, 0, len(records))
	for _, record := range records {
		out = append(out, starknetMessageResponse{
			BlockNumber:  record.BlockNumber.String(),
			MessageIndex: record.MessageIndex,
			FromAddress:  record.FromAddress,
			ToAddress:    record.ToAddress,
			Payload:      record.Payload,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}

type operatorsResponse struct {
	Owner     string   `json:"owner"`
	Operators []string `json:"operators"`
}

func (h *Handler) listOperators(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, operatorsResponse{
		Owner:     h.service.Owner(),
		Operators: h.service.Operators(),
	})
}

type operatorRequest struct {
	Operator string `json:"operator"`
}

func (h *Handler) registerOperator(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req operatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	if err := h.service.RegisterOperator(caller, req.Operator); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) unregisterOperator(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	if err := h.service.UnregisterOperator(caller, r.PathValue("address")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type transferOwnershipRequest struct {
	NewOwner string `json:"new_owner"`
}

func (h *Handler) transferOwnership(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req transferOwnershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	if err := h.service.TransferOwnership(caller, req.NewOwner); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type programResponse struct {
	Registered   bool   `json:"registered"`
	ProgramHash  string `json:"program_hash,omitempty"`
	ConfigHash   string `json:"config_hash,omitempty"`
	FactRegistry string `json:"fact_registry,omitempty"`
}

func (h *Handler) getProgram(w http.ResponseWriter, _ *http.Request) {
	info, registered := h.service.ProgramInfo()
	resp := programResponse{
		Registered:   registered,
		FactRegistry: h.service.FactRegistry(),
	}
	if registered {
		resp.ProgramHash = model.FeltToHex(&info.ProgramHash)
		resp.ConfigHash = model.FeltToHex(&info.ConfigHash)
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type setProgramRequest struct {
	ProgramHash string `json:"program_hash"`
	ConfigHash  string `json:"config_hash"`
}

func (h *Handler) setProgram(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req setProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	programHash, err := model.HexToFelt(req.ProgramHash)
	if err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, "INVALID_FELT", err.Error())
		return
	}
	configHash, err := model.HexToFelt(req.ConfigHash)
	if err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, "INVALID_FELT", err.Error())
		return
	}

	if err := h.service.SetProgramInfo(caller, program.Info{ProgramHash: programHash, ConfigHash: configHash}); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type setFactRegistryRequest struct {
	Address string `json:"address"`
}

func (h *Handler) setFactRegistry(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req setFactRegistryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	if err := h.service.SetFactRegistry(caller, req.Address); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (string, bool) {
	caller := r.Header.Get(callerHeader)
	if caller == "" {
		h.writeErrorCode(w, http.StatusBadRequest, "MISSING_CALLER_ADDRESS", callerHeader+" header is required")
		return "", false
	}
	return caller, true
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP statuses and stable codes.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, model.ErrUnauthorized):
		status, code = http.StatusForbidden, "UNAUTHORIZED"
	case errors.Is(err, model.ErrMalformedStream):
		status, code = http.StatusBadRequest, "MALFORMED_STREAM"
	case errors.Is(err, model.ErrUnsupportedMode):
		status, code = http.StatusBadRequest, "UNSUPPORTED_MODE"
	case errors.Is(err, model.ErrInvalidPreviousBlockNumber):
		status, code = http.StatusConflict, "INVALID_PREVIOUS_BLOCK_NUMBER"
	case errors.Is(err, model.ErrInvalidBlockNumber):
		status, code = http.StatusConflict, "INVALID_BLOCK_NUMBER"
	case errors.Is(err, model.ErrInvalidPreviousBlockHash):
		status, code = http.StatusConflict, "INVALID_PREVIOUS_BLOCK_HASH"
	case errors.Is(err, model.ErrInvalidPreviousRoot):
		status, code = http.StatusConflict, "INVALID_PREVIOUS_ROOT"
	case errors.Is(err, model.ErrInvalidConfigHash):
		status, code = http.StatusConflict, "INVALID_CONFIG_HASH"
	case errors.Is(err, model.ErrInvalidFact):
		status, code = http.StatusConflict, "INVALID_FACT"
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	}
	h.writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: err.Error()}})
}

func (h *Handler) writeErrorCode(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("response not encoded", zap.Error(err))
	}
}
