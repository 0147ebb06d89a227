package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"salesboard/internal/core/facts"
	"salesboard/internal/modkit"
	phttp "salesboard/internal/platform/net/http"
	"salesboard/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Error      string          `json:"error"`
	Field      string          `json:"field"`
	Data       json.RawMessage `json:"data"`
}

func dataset() *facts.Snapshot {
	return facts.Build(facts.Tables{
		Products: []facts.Product{
			{Key: "P1", Name: "Runner", Category: "Shoes", Subcategory: "Road"},
			{Key: "P2", Name: "Tote", Category: "Bags", Subcategory: "Canvas"},
		},
		Customers: []facts.Customer{
			{ID: "C1", FirstName: "Ada", LastName: "Lee", Gender: "M", Country: "USA"},
			{ID: "C2", FirstName: "Bo", LastName: "Kim", Gender: "F", Country: "Germany"},
		},
		Sales: []facts.Sale{
			{OrderNumber: "A", ProductKey: "P1", CustomerID: "C1", OrderDate: "3/14/2023", SalesAmount: 100, Quantity: 2},
			{OrderNumber: "A", ProductKey: "P2", CustomerID: "C1", OrderDate: "3/14/2023", SalesAmount: 50, Quantity: 1},
			{OrderNumber: "B", ProductKey: "P1", CustomerID: "C2", OrderDate: "3/15/2023", SalesAmount: 100, Quantity: 2},
		},
	})
}

func newServer(t *testing.T, data modkit.Snapshots) http.Handler {
	t.Helper()
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), Options{Data: data})
	return mux
}

func call(t *testing.T, h http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: body is not an envelope: %q", method, path, rec.Body.String())
	}
	if env.StatusCode != rec.Code {
		t.Fatalf("envelope status %d != response status %d", env.StatusCode, rec.Code)
	}
	return rec.Code, env
}

func TestAPI_Endpoints(t *testing.T) {
	t.Parallel()
	h := newServer(t, facts.Preloaded(dataset()))

	cases := []struct {
		name, method, path, body string
		status                   int
		contains                 string
	}{
		{"health", http.MethodGet, "/api/v1/meta/health", "", 200, `"ok":true`},
		{"ready", http.MethodGet, "/api/v1/meta/ready", "", 200, `"status":"ok"`},
		{"version", http.MethodGet, "/api/v1/meta/version", "", 200, `"dashboard"`},
		{"meta", http.MethodGet, "/api/v1/dashboard/meta", "", 200, `"categories":["Bags","Shoes"]`},
		{"counts", http.MethodPost, "/api/v1/dashboard/counts", `{"filter":{"category":"Shoes"}}`, 200, `"Bags":1`},
		{"counts empty body", http.MethodPost, "/api/v1/dashboard/counts", "", 200, `"matching":3`},
		{"aggregate", http.MethodPost, "/api/v1/dashboard/aggregate", `{"groupBy":"category","limit":1}`, 200, `[{"name":"Shoes","value":200,"count":2}]`},
		{"matrix", http.MethodPost, "/api/v1/dashboard/matrix", `{"rows":"country","columns":"category"}`, 200, `"columns":["Bags","Shoes"]`},
		{"histogram", http.MethodPost, "/api/v1/dashboard/histogram", `{"bucketWidth":100}`, 200, `"name":"100-200"`},
		{"trend", http.MethodPost, "/api/v1/dashboard/trend", `{"comparison":{"gender":["F"]}}`, 200, `"comparison":100`},
		{"category trend", http.MethodPost, "/api/v1/dashboard/category-trend", `{}`, 200, `"category":"Bags"`},
		{"geo", http.MethodPost, "/api/v1/dashboard/geo", `{}`, 200, `"United States"`},
		{"kpis", http.MethodPost, "/api/v1/performance/kpis", `{"filter":{"country":"USA"}}`, 200, `"totalRevenue":150`},
		{"monthly", http.MethodPost, "/api/v1/performance/monthly", "", 200, `"name":"2023-03"`},
		{"compare", http.MethodPost, "/api/v1/performance/compare", `{"filter":{},"comparison":{"gender":"F"}}`, 200, `"deltas"`},
		{"customers", http.MethodPost, "/api/v1/performance/customers", `{"limit":1}`, 200, `"id":"C1"`},
		{"insights", http.MethodPost, "/api/v1/performance/customers/insights", "", 200, `"topCountries"`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			h.ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tc.status, rec.Body.String())
			}
			testkit.MustContain(t, rec.Body.String(), tc.contains)
		})
	}
}

func TestAPI_BadRequests(t *testing.T) {
	t.Parallel()
	h := newServer(t, facts.Preloaded(dataset()))

	cases := []struct {
		name, path, body string
		field            string
	}{
		{"unknown body field", "/api/v1/dashboard/aggregate", `{"group":"category"}`, ""},
		{"bad group field", "/api/v1/dashboard/aggregate", `{"groupBy":"shoeSize"}`, "groupBy"},
		{"matrix needs rows", "/api/v1/dashboard/matrix", `{}`, "rows"},
		{"matrix needs a body", "/api/v1/dashboard/matrix", ``, ""},
		{"negative width", "/api/v1/dashboard/histogram", `{"bucketWidth":-5}`, "bucketWidth"},
		{"bad selection", "/api/v1/dashboard/counts", `{"filter":{"gender":42}}`, ""},
		{"bad date", "/api/v1/dashboard/geo", `{"filter":{"dateRange":["someday"]}}`, "dateRange"},
		{"bad comparison date", "/api/v1/performance/compare", `{"comparison":{"dateRange":["someday"]}}`, "comparison.dateRange"},
		{"trailing data", "/api/v1/performance/kpis", `{} {}`, ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			code, env := call(t, h, http.MethodPost, tc.path, tc.body)
			if code < 400 || code >= 500 {
				t.Fatalf("status = %d (%s)", code, env.Error)
			}
			if tc.field != "" && env.Field != tc.field {
				t.Fatalf("field = %q, want %q (%s)", env.Field, tc.field, env.Error)
			}
		})
	}
}

func TestAPI_DatasetUnavailable(t *testing.T) {
	t.Parallel()
	h := newServer(t, facts.NewHandle(nil))

	code, env := call(t, h, http.MethodGet, "/api/v1/dashboard/meta", "")
	if code != http.StatusServiceUnavailable {
		t.Fatalf("meta status = %d (%s)", code, env.Error)
	}
	code, _ = call(t, h, http.MethodPost, "/api/v1/performance/kpis", "")
	if code != http.StatusServiceUnavailable {
		t.Fatalf("kpis status = %d", code)
	}

	code, env = call(t, h, http.MethodGet, "/api/v1/meta/ready", "")
	if code != http.StatusOK {
		t.Fatalf("ready status = %d", code)
	}
	testkit.MustContain(t, string(env.Data), `"status":"degraded"`)
}
