package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "salesboard/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type stub struct {
	mounted bool
	ports   any
}

func (s *stub) MountRoutes(_ phttp.Router) { s.mounted = true }
func (s *stub) Ports() any                 { return s.ports }
func (s *stub) Name() string               { return "stub" }

var _ Module = (*stub)(nil)

func TestBuilder_Signature(t *testing.T) {
	t.Parallel()

	var b Builder = func(_ Deps, opts ...Option) Module {
		return &stub{ports: Build(opts...).Ports}
	}

	m := b(Deps{}, WithPorts("ok"))
	if p := m.Ports(); p != "ok" {
		t.Fatalf("Ports = %v, want ok", p)
	}
}

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults: %+v", b)
	}

	var r phttp.Router
	if b.Subrouter(r) != r {
		t.Fatalf("default Subrouter should be identity")
	}
	b.Register(r)
}

func TestBuild_CopiesMiddlewares(t *testing.T) {
	t.Parallel()

	mw := []func(http.Handler) http.Handler{func(h http.Handler) http.Handler { return h }}
	b := Build(WithName("dash"), WithPrefix("/dashboard"), WithMiddlewares(mw...))
	mw[0] = nil

	if b.Name != "dash" || b.Prefix != "/dashboard" {
		t.Fatalf("name/prefix = %q %q", b.Name, b.Prefix)
	}
	if len(b.Mw) != 1 || b.Mw[0] == nil {
		t.Fatalf("Build must copy the middleware slice")
	}
}

func TestBuilt_MountOrder(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Module", "dash")
			next.ServeHTTP(w, r)
		})
	}

	b := Build(
		WithPrefix("dashboard/"),
		WithMiddlewares(tag),
		WithSubrouter(func(r phttp.Router) phttp.Router {
			order = append(order, "sub")
			return r
		}),
		WithRegister(func(r phttp.Router) {
			order = append(order, "extra")
			phttp.GetJSON(r, "/extra", func(*http.Request) (any, error) { return "x", nil })
		}),
	)

	mux := chi.NewRouter()
	b.Mount(phttp.AdaptChi(mux), func(r phttp.Router) {
		order = append(order, "own")
		phttp.GetJSON(r, "/meta", func(*http.Request) (any, error) { return "m", nil })
	})

	if len(order) != 3 || order[0] != "sub" || order[1] != "own" || order[2] != "extra" {
		t.Fatalf("hook order = %v", order)
	}

	for _, path := range []string{"/dashboard/meta", "/dashboard/extra"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d", path, rec.Code)
		}
		if rec.Header().Get("X-Module") != "dash" {
			t.Fatalf("%s missing module middleware", path)
		}
	}
}
