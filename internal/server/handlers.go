package server

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/jonathan/linkedin-profile/internal/profile"
)

// profileRequest is the decoded query string of GET /profile.
type profileRequest struct {
	Query   string `validate:"required,max=2048"`
	Company bool
	Index   int
}

var validate = validator.New()

func parseProfileRequest(r *http.Request) (*profileRequest, error) {
	q := r.URL.Query()

	req := &profileRequest{
		Query: q.Get("q"),
		Index: profile.DefaultIndex,
	}

	if raw := q.Get("company"); raw != "" {
		company, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, &ErrValidation{Field: "company", Message: "must be a boolean"}
		}
		req.Company = company
	}

	if raw := q.Get("index"); raw != "" {
		index, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &ErrValidation{Field: "index", Message: "must be an integer"}
		}
		req.Index = index
	}

	if err := validate.Struct(req); err != nil {
		return nil, &ErrValidation{Field: "q", Message: "required, at most 2048 characters"}
	}

	return req, nil
}

// handleProfile resolves a LinkedIn profile for the q parameter.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	req, err := parseProfileRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sel, err := s.finder.Find(r.Context(), req.Query, req.Company, req.Index)
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Str("query", req.Query).Msg("Profile lookup failed")
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, sel)
}
