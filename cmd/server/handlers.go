package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	latvian "github.com/cours-de-latin/latvian"
)

// ---- JSON request/response types ----------------------------------------

type declensionResponse struct {
	Word   string          `json:"word"`
	Case   latvian.Case    `json:"case"`
	Number latvian.GNumber `json:"number"`
	Form   string          `json:"form"`
}

// optionsJSON mirrors the query parameters of the GET endpoints. UseAr
// defaults to true when absent.
type optionsJSON struct {
	Gender       latvian.Gender `json:"gender"`
	ProperNoun   bool           `json:"proper_noun"`
	UseAr        *bool          `json:"use_ar,omitempty"`
	PalatalizedR bool           `json:"palatalized_r"`
}

func (o optionsJSON) config() latvian.Config {
	cfg := latvian.DefaultConfig()
	cfg.OverrideGender = o.Gender
	cfg.ProperNoun = o.ProperNoun
	cfg.UsePalatalizedR = o.PalatalizedR
	if o.UseAr != nil {
		cfg.UseArWithInstrumental = *o.UseAr
	}
	return cfg
}

type batchRequest struct {
	Words []string `json:"words"`
	optionsJSON
}

type batchResult struct {
	Word     string            `json:"word"`
	Paradigm *latvian.Paradigm `json:"paradigm,omitempty"`
	Error    *errorResponse    `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchResult `json:"results"`
}

type registerRequest struct {
	Word  string                  `json:"word"`
	Entry latvian.SpecialCaseSpec `json:"entry"`
}

type registerResponse struct {
	Word         string `json:"word"`
	SpecialCases int    `json:"special_cases"`
}

type healthResponse struct {
	Status       string `json:"status"`
	SpecialCases int    `json:"special_cases"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// toErrorResponse keeps the engine error code for clients.
func toErrorResponse(err error) errorResponse {
	var lerr *latvian.Error
	if errors.As(err, &lerr) {
		return errorResponse{Error: lerr.Error(), Code: lerr.Code}
	}
	return errorResponse{Error: err.Error()}
}

// statusFor maps engine errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, latvian.ErrInvalidWord), errors.Is(err, latvian.ErrMixedCaps):
		return http.StatusBadRequest
	case errors.Is(err, latvian.ErrNoCase):
		return http.StatusNotFound
	case errors.Is(err, latvian.ErrInvalidPluralForm):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeEngineError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), toErrorResponse(err))
}

// queryOptions reads gender, proper, ar and palatalized_r.
func queryOptions(r *http.Request) (latvian.Config, error) {
	q := r.URL.Query()
	cfg := latvian.DefaultConfig()

	gender, err := latvian.ParseGender(q.Get("gender"))
	if err != nil {
		return cfg, err
	}
	cfg.OverrideGender = gender

	for _, p := range []struct {
		name string
		dst  *bool
	}{
		{"proper", &cfg.ProperNoun},
		{"ar", &cfg.UseArWithInstrumental},
		{"palatalized_r", &cfg.UsePalatalizedR},
	} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %q parameter: %q", p.name, v)
		}
		*p.dst = b
	}
	return cfg, nil
}

// ---- handlers -----------------------------------------------------------

func handleDeclension(s *server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		word := q.Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		c, err := latvian.ParseCase(q.Get("case"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		num, err := latvian.ParseGNumber(q.Get("number"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		cfg, err := queryOptions(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		n, err := s.registry().NewNoun(word, cfg)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		form, err := n.Form(c, num)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		if n.PluralOnly() {
			num = latvian.Plural
		}
		writeJSON(w, http.StatusOK, declensionResponse{Word: word, Case: c, Number: num, Form: form})
	}
}

func handleParadigm(s *server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		cfg, err := queryOptions(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		p, err := s.paradigm(word, cfg)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// handleParadigms declines a batch of words concurrently. Per-word failures
// are reported inline; the request fails only when the body is unusable.
func handleParadigms(s *server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body batchRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Words) == 0 {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'words' array")
			return
		}
		if len(body.Words) > s.cfg.MaxBatch {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("at most %d words per batch", s.cfg.MaxBatch))
			return
		}
		cfg := body.config()

		results := make([]batchResult, len(body.Words))
		g, ctx := errgroup.WithContext(r.Context())
		g.SetLimit(s.cfg.BatchLimit)
		for i, word := range body.Words {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[i].Word = word
				p, err := s.paradigm(word, cfg)
				if err != nil {
					e := toErrorResponse(err)
					results[i].Error = &e
					return nil
				}
				results[i].Paradigm = &p
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, batchResponse{Results: results})
	}
}

func handleRegister(s *server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.cfg.AllowRegister {
			writeError(w, http.StatusForbidden, "runtime registration is disabled")
			return
		}
		var body registerRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Word == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'word' field")
			return
		}
		entry, err := body.Entry.SpecialCase()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := latvian.ValidateSpecialCase(body.Word, entry); err != nil {
			var lerr *latvian.Error
			if errors.As(err, &lerr) {
				writeEngineError(w, err)
				return
			}
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		reg := s.registry()
		reg.Register(body.Word, entry)
		s.purge()
		s.log.Info("special case registered", zap.String("word", body.Word), zap.Stringer("group", entry.Group))
		writeJSON(w, http.StatusCreated, registerResponse{Word: body.Word, SpecialCases: reg.Len()})
	}
}

func handleHealth(s *server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok", SpecialCases: s.registry().Len()})
	}
}
