package http

import (
	"context"
	"io"
	"net"
	gohttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rhuss/mathsolver/pkg/api"
	"github.com/rhuss/mathsolver/pkg/transport"
)

func fixedSolver(result string) transport.QuestionSolverFunc {
	return func(ctx context.Context, req *api.SolveRequest) (*api.SolveResponse, error) {
		return &api.SolveResponse{Result: result, Provider: "test"}, nil
	}
}

func startServer(t *testing.T, srv *Server) (string, context.CancelFunc, <-chan error) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ServeOn(ctx, ln) }()
	return "http://" + ln.Addr().String(), cancel, done
}

func TestServerStartsAndAcceptsRequests(t *testing.T) {
	srv := NewServer(fixedSolver("42"))
	base, cancel, done := startServer(t, srv)

	resp, err := gohttp.Post(base+"/api/solve", "application/json", strings.NewReader(`{"question":"6*7"}`))
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != gohttp.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, gohttp.StatusOK)
	}
	if !strings.Contains(string(body), `"result":"42"`) {
		t.Errorf("body = %s", body)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("ServeOn returned %v after cancel", err)
	}
}

func TestServerGracefulShutdown(t *testing.T) {
	started := make(chan struct{})
	slow := transport.QuestionSolverFunc(func(ctx context.Context, req *api.SolveRequest) (*api.SolveResponse, error) {
		close(started)
		time.Sleep(200 * time.Millisecond)
		return &api.SolveResponse{Result: "done", Provider: "slow"}, nil
	})

	srv := NewServer(slow, WithShutdownTimeout(5*time.Second))
	base, cancel, done := startServer(t, srv)

	responseCh := make(chan int, 1)
	go func() {
		resp, err := gohttp.Post(base+"/api/solve", "application/json", strings.NewReader(`{"question":"q"}`))
		if err != nil {
			responseCh <- 0
			return
		}
		resp.Body.Close()
		responseCh <- resp.StatusCode
	}()

	<-started
	cancel()

	if status := <-responseCh; status != gohttp.StatusOK {
		t.Errorf("in-flight request status = %d, want %d", status, gohttp.StatusOK)
	}
	if err := <-done; err != nil {
		t.Errorf("shutdown error: %v", err)
	}
}

func TestServerMountsExtraHandlers(t *testing.T) {
	srv := NewServer(fixedSolver("x"),
		WithHandler("GET /metrics", gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
			io.WriteString(w, "# metrics")
		})),
	)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(gohttp.MethodGet, "/metrics", nil))

	if rec.Body.String() != "# metrics" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestServerFunctionalOptions(t *testing.T) {
	srv := NewServer(fixedSolver("x"),
		WithAddr(":9999"),
		WithMaxBodySize(1024),
		WithTimeouts(time.Second, 2*time.Second),
		WithShutdownTimeout(10*time.Second),
		WithCORSOrigins([]string{"https://a.example"}),
	)

	if srv.config.Addr != ":9999" {
		t.Errorf("addr = %q, want %q", srv.config.Addr, ":9999")
	}
	if srv.config.MaxBodySize != 1024 {
		t.Errorf("max body size = %d, want %d", srv.config.MaxBodySize, 1024)
	}
	if srv.httpServer.ReadTimeout != time.Second || srv.httpServer.WriteTimeout != 2*time.Second {
		t.Errorf("timeouts = %v/%v", srv.httpServer.ReadTimeout, srv.httpServer.WriteTimeout)
	}
	if srv.config.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout = %v, want %v", srv.config.ShutdownTimeout, 10*time.Second)
	}
	if len(srv.config.CORSOrigins) != 1 {
		t.Errorf("cors origins = %v", srv.config.CORSOrigins)
	}
}

func TestServerRunFailsOnBadAddr(t *testing.T) {
	srv := NewServer(fixedSolver("x"), WithAddr("256.0.0.1:bad"))
	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected listen error")
	}
}
