package server

import (
	"context"
	"net/http"

	"github.com/Milover/isbnref/internal/batch"
	"github.com/Milover/isbnref/internal/isbn"
	"github.com/Milover/isbnref/internal/numdb"
	"github.com/danielgtaylor/huma/v2"
)

// Info describes a single number.
type Info struct {
	Input     string      `json:"input"`
	Valid     bool        `json:"valid"`
	Type      string      `json:"type,omitempty"`
	Compact   string      `json:"compact,omitempty"`
	ISBN13    string      `json:"isbn13,omitempty"`
	ISBN10    string      `json:"isbn10,omitempty"`
	Formatted string      `json:"formatted,omitempty"`
	Parts     *isbn.Parts `json:"parts,omitempty"`
	Agency    string      `json:"agency,omitempty" doc:"Registration group agency"`
	Kind      string      `json:"kind,omitempty" enum:"format,length,component,checksum"`
	Error     string      `json:"error,omitempty"`
}

type PlainOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type LookupInput struct {
	ISBN string `path:"isbn" maxLength:"64" doc:"ISBN-10 or ISBN-13, separators allowed"`
}

type LookupOutput struct {
	Body Info
}

type FormatInput struct {
	ISBN      string `path:"isbn" maxLength:"64" doc:"ISBN-10 or ISBN-13, separators allowed"`
	Separator string `query:"separator" default:"-" maxLength:"3" doc:"Separator placed between the parts"`
	Convert   bool   `query:"convert" doc:"Convert an ISBN-10 to ISBN-13"`
}

type FormatOutput struct {
	Body struct {
		Input     string `json:"input"`
		Formatted string `json:"formatted"`
	}
}

type ValidateInput struct {
	Body struct {
		ISBNs   []string `json:"isbns" minItems:"1" maxItems:"1000" doc:"Numbers to validate"`
		Convert bool     `json:"convert,omitempty" doc:"Return ISBN-10s converted to ISBN-13"`
	}
}

type ValidateOutput struct {
	Body struct {
		Failed  int    `json:"failed"`
		Results []Info `json:"results"`
	}
}

func (s *Server) setup(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "HealthCheck",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Health check",
		Description: "Check if the API is running",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, input *struct{}) (*PlainOutput, error) {
		return &PlainOutput{
			ContentType: "text/plain",
			Body:        []byte("OK"),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "GetISBN",
		Method:      http.MethodGet,
		Path:        "/v1/isbn/{isbn}",
		Summary:     "Describe an ISBN",
		Description: "Validate an ISBN and return its compact, converted and split forms",
		Tags:        []string{"ISBN"},
	}, func(ctx context.Context, input *LookupInput) (*LookupOutput, error) {
		info, err := s.describe(input.ISBN, false)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return &LookupOutput{Body: info}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "FormatISBN",
		Method:      http.MethodGet,
		Path:        "/v1/isbn/{isbn}/format",
		Summary:     "Format an ISBN",
		Description: "Validate an ISBN and return it with its parts joined by a separator",
		Tags:        []string{"ISBN"},
	}, func(ctx context.Context, input *FormatInput) (*FormatOutput, error) {
		formatted, err := isbn.Format(input.ISBN, input.Separator, input.Convert)
		s.observe(input.ISBN, err)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		resp := &FormatOutput{}
		resp.Body.Input = input.ISBN
		resp.Body.Formatted = formatted
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "ValidateISBNs",
		Method:      http.MethodPost,
		Path:        "/v1/isbn/validate",
		Summary:     "Validate ISBNs",
		Description: "Validate a list of ISBNs, invalid ones are reported per number",
		Tags:        []string{"ISBN"},
	}, func(ctx context.Context, input *ValidateInput) (*ValidateOutput, error) {
		convert := input.Body.Convert
		results, err := batch.Run(ctx, input.Body.ISBNs, s.Jobs, func(in string) (Info, error) {
			return s.describe(in, convert)
		})
		if err != nil {
			return nil, huma.Error503ServiceUnavailable("request canceled", err)
		}
		resp := &ValidateOutput{}
		resp.Body.Failed = batch.Failed(results)
		resp.Body.Results = make([]Info, len(results))
		for i, r := range results {
			resp.Body.Results[i] = r.Value
		}
		return resp, nil
	})
}

// describe validates the number and fills in everything that can be
// derived from it. An invalid number is described by its error.
func (s *Server) describe(number string, convert bool) (Info, error) {
	info := Info{Input: number}
	canon, err := isbn.Validate(number, convert)
	s.observe(number, err)
	if err != nil {
		info.Kind = isbn.Kind(err)
		info.Error = err.Error()
		return info, err
	}

	info.Valid = true
	info.Compact = canon
	info.Type = isbn.TypeOf(canon).String()
	info.ISBN13, _ = isbn.ToISBN13(canon)
	if s10, err := isbn.ToISBN10(canon); err == nil {
		info.ISBN10 = s10
	}
	if p, err := isbn.Split(canon, false); err == nil {
		info.Parts = &p
		info.Formatted = p.Join("-")
	}
	if db, ok := isbn.Ranges().(*numdb.DB); ok {
		full := isbn.Compact(canon, true)
		if parts := db.Info(full[:12]); len(parts) > 1 {
			info.Agency = parts[1].Props["agency"]
		}
	}
	return info, nil
}

func (s *Server) observe(number string, err error) {
	if err != nil {
		s.metrics.ObserveValidation("", isbn.Kind(err))
		return
	}
	s.metrics.ObserveValidation(isbn.TypeOf(number).String(), "valid")
}
