package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "salesboard/internal/platform/errors"
)

type payload struct {
	Metric string `json:"metric" validate:"omitempty,oneof=revenue quantity"`
	Limit  int    `json:"limit" validate:"gte=0,max=1000"`
	Name   string `json:"name" validate:"required,min=2"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestParseJSON_Success(t *testing.T) {
	t.Parallel()
	got, err := ParseJSON[payload](post(`{"metric":"quantity","limit":5,"name":"Al"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Metric != "quantity" || got.Limit != 5 || got.Name != "Al" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name, body string
		code       perr.ErrorCode
		field, msg string
	}{
		{"empty", ``, perr.ErrorCodeJSON, "", "empty body"},
		{"blank", "  \n", perr.ErrorCodeJSON, "", "empty body"},
		{"malformed", `{"name":`, perr.ErrorCodeJSON, "", "invalid JSON"},
		{"unknown field", `{"name":"Al","extra":1}`, perr.ErrorCodeJSON, "", "invalid JSON"},
		{"trailing", `{"name":"Al"} {}`, perr.ErrorCodeJSON, "", "trailing"},
		{"required", `{"limit":1}`, perr.ErrorCodeValidation, "name", "name is a required field"},
		{"min", `{"name":"A"}`, perr.ErrorCodeValidation, "name", "name must be at least 2"},
		{"max", `{"name":"Al","limit":5000}`, perr.ErrorCodeValidation, "limit", "limit must be at most 1000"},
		{"oneof", `{"name":"Al","metric":"profit"}`, perr.ErrorCodeValidation, "metric", "metric must be one of [revenue quantity]"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseJSON[payload](post(tc.body))
			if perr.CodeOf(err) != tc.code {
				t.Fatalf("code = %v, want %v (%v)", perr.CodeOf(err), tc.code, err)
			}
			e, _ := perr.As(err)
			if e.Field() != tc.field {
				t.Fatalf("field = %q, want %q", e.Field(), tc.field)
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("error %q does not contain %q", err.Error(), tc.msg)
			}
		})
	}
}

func TestParseJSON_Options(t *testing.T) {
	t.Parallel()
	type loose struct {
		Note string `json:"note"`
	}

	got, err := ParseJSON[loose](post(``), Optional)
	if err != nil || got != (loose{}) {
		t.Fatalf("optional empty body: %+v %v", got, err)
	}

	if _, err := ParseJSON[loose](post(`{"note":"x","other":1}`), JSONOptions{}); err != nil {
		t.Fatalf("unknown fields allowed when not disallowed: %v", err)
	}

	_, err = ParseJSON[loose](post(`{"note":"`+strings.Repeat("x", 64)+`"}`), JSONOptions{MaxBytes: 16})
	if perr.CodeOf(err) != perr.ErrorCodeJSON || !strings.Contains(err.Error(), "exceeds") {
		t.Fatalf("want size error, got %v", err)
	}
}

func TestRegisterValidation_CustomMessage(t *testing.T) {
	err := RegisterValidation("even", "{0} must be even", func(fl FieldLevel) bool {
		return fl.Field().Int()%2 == 0
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	type evenIn struct {
		N int `json:"n" validate:"even"`
	}
	if err := Validate(evenIn{N: 2}); err != nil {
		t.Fatalf("even value rejected: %v", err)
	}
	err = Validate(&evenIn{N: 3})
	if perr.CodeOf(err) != perr.ErrorCodeValidation || !strings.Contains(err.Error(), "n must be even") {
		t.Fatalf("want custom message, got %v", err)
	}
	if Validate(42) != nil {
		t.Fatalf("non struct values pass")
	}
}
