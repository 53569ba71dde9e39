// apps/solver/internal/httpserver/routes_rounds.go
//
// HTTP routes for solving rounds.
//   - POST /rounds              → start a round over the server dictionary
//   - GET  /rounds/{id}         → current candidates and turns
//   - POST /rounds/{id}/turns   → apply one guess + reply
//   - DELETE /rounds/{id}       → forget a round
//
// Rounds live in the in-memory store only. When a round finishes its outcome
// is recorded to history (best effort) under the owner that started it.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/history"
	"github.com/robalobadob/wordle/apps/solver/internal/picker"
	"github.com/robalobadob/wordle/apps/solver/internal/round"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

// mountRounds registers all /rounds routes.
func (s *Server) mountRounds(r chi.Router) {
	r.Route("/rounds", func(r chi.Router) {
		r.Post("/", s.handleNewRound)
		r.Get("/{id}", s.handleGetRound)
		r.Delete("/{id}", s.handleDeleteRound)
		r.Post("/{id}/turns", s.handleTurn)
	})
}

// turnView is one applied turn in "+.-" notation.
type turnView struct {
	Guess string `json:"guess"`
	Reply string `json:"reply"`
}

// roundView is the response shape for every /rounds endpoint.
type roundView struct {
	RoundID     string               `json:"roundId"`
	State       round.State          `json:"state"`
	Remaining   int                  `json:"remaining"`
	Suggestions []string             `json:"suggestions"`
	Frequencies []picker.LetterCount `json:"frequencies"`
	Turns       []turnView           `json:"turns"`
}

func viewOf(r *round.Round) roundView {
	v := roundView{
		RoundID:     r.ID,
		State:       r.State(),
		Remaining:   r.Remaining(),
		Suggestions: r.Suggestions(),
		Frequencies: r.Frequencies().Ranked(),
		Turns:       []turnView{},
	}
	for _, t := range r.Turns() {
		v.Turns = append(v.Turns, turnView{Guess: t.Word(), Reply: game.FormatReply(t.Feedback())})
	}
	return v
}

// handleNewRound creates a round owned by the caller (user or anonymous id).
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	rd := round.New(s.dict)
	rd.OwnerID = s.ownerID(w, r)
	if err := s.store.Save(r.Context(), rd); err != nil {
		log.Error().Err(err).Msg("save round")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("roundId", rd.ID).Int("candidates", rd.Remaining()).Msg("round started")
	writeJSON(w, http.StatusCreated, viewOf(rd))
}

func (s *Server) handleGetRound(w http.ResponseWriter, r *http.Request) {
	var v roundView
	err := s.store.Update(r.Context(), chi.URLParam(r, "id"), func(rd *round.Round) error {
		v = viewOf(rd)
		return nil
	})
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleDeleteRound(w http.ResponseWriter, r *http.Request) {
	_ = s.store.Delete(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// turnReq carries a guess and its reply, either as "+.-" symbols or as an
// array of feedback names ("exact", "present", "absent").
type turnReq struct {
	Guess    string          `json:"guess"`
	Reply    string          `json:"reply"`
	Feedback []game.Feedback `json:"feedback"`
}

func (req turnReq) turn() (game.Turn, error) {
	guess, err := game.ParseGuess(req.Guess)
	if err != nil {
		return game.Turn{}, err
	}
	fb := req.Feedback
	if req.Reply != "" {
		if fb, err = game.ParseReply(req.Reply); err != nil {
			return game.Turn{}, err
		}
	}
	return game.NewTurn(guess, fb)
}

// handleTurn applies a turn and, when it finishes the round, records the outcome.
func (s *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	var req turnReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	turn, err := req.turn()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var v roundView
	var result *history.Result
	err = s.store.Update(r.Context(), chi.URLParam(r, "id"), func(rd *round.Round) error {
		st, err := rd.Apply(turn)
		if err != nil {
			return err
		}
		v = viewOf(rd)
		if st.Finished() {
			result = &history.Result{
				RoundID: rd.ID,
				OwnerID: rd.OwnerID,
				Outcome: string(st),
				Guesses: len(v.Turns),
			}
		}
		return nil
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case errors.Is(err, round.ErrFinished):
		writeError(w, http.StatusConflict, "round_finished")
		return
	case err != nil:
		log.Error().Err(err).Msg("apply turn")
		writeError(w, http.StatusInternalServerError, "apply_failed")
		return
	}

	if result != nil && s.history != nil {
		if err := s.history.Record(r.Context(), *result); err != nil {
			log.Warn().Err(err).Str("roundId", result.RoundID).Msg("record round outcome")
		}
	}
	writeJSON(w, http.StatusOK, v)
}
