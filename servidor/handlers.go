package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"VoxelVision/servidor/internal/generate"
	"VoxelVision/servidor/internal/history"
	"VoxelVision/shared/voxel"
)

// Server junta o gerador, o histórico e o hub de WebSocket.
type Server struct {
	hub     *Hub
	gen     generate.Generator
	history *history.Store // nil desativa o histórico
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	SchematicPath *string       `json:"schematic_path"`
	Voxels        []voxel.Coord `json:"voxels"`
	Test          bool          `json:"test,omitempty"`
}

// routes monta o roteador HTTP.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("GET /test", s.handleTest)
	mux.HandleFunc("GET /history", s.handleHistory)
	mux.HandleFunc("GET /history/{id}", s.handleHistoryItem)
	mux.HandleFunc("/ws", s.hub.serveWs)
	return mux
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo inválido: esperado {\"prompt\": string}")
		return
	}
	log.Printf("[Generate] Prompt: %q", req.Prompt)

	start := time.Now()
	out, err := s.gen.Generate(r.Context(), req.Prompt)
	if err != nil {
		log.Printf("[Generate] ERRO ao gerar %q: %v", req.Prompt, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	took := time.Since(start)

	voxels := out.Voxels
	if voxels == nil {
		voxels = []voxel.Coord{}
	}
	writeJSON(w, http.StatusOK, generateResponse{
		SchematicPath: out.SchematicPath,
		Voxels:        voxels,
		Test:          out.Test,
	})

	st := voxel.Structure{Prompt: req.Prompt, Voxels: voxels}
	if s.history != nil {
		path := ""
		if out.SchematicPath != nil {
			path = *out.SchematicPath
		}
		if _, err := s.history.Record(st, out.Test, path, took); err != nil {
			log.Printf("[Generate] Histórico indisponível: %v", err)
		}
	}
	s.hub.BroadcastStructure(st)
}

func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "API is working!"})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusServiceUnavailable, "histórico desativado")
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit inválido")
			return
		}
		limit = min(n, 500)
	}

	recs, err := s.history.Recent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if recs == nil {
		recs = []history.GenerationRecord{}
	}
	writeJSON(w, http.StatusOK, recs)
}

// handleHistoryItem devolve uma geração antiga no mesmo formato do /generate.
func (s *Server) handleHistoryItem(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusServiceUnavailable, "histórico desativado")
		return
	}

	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id inválido")
		return
	}

	rec, st, err := s.history.Get(uint(id))
	if errors.Is(err, history.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var path *string
	if rec.SchematicPath != "" {
		path = &rec.SchematicPath
	}
	voxels := st.Voxels
	if voxels == nil {
		voxels = []voxel.Coord{}
	}
	writeJSON(w, http.StatusOK, generateResponse{SchematicPath: path, Voxels: voxels, Test: rec.Test})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[HTTP] Erro ao escrever resposta: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
